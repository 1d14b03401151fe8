package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/blastbay/mazelib/pkg/buildinfo"
)

func TestRootRejectsUnknownFormat(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"generate", "--format", "gif"})
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)

	if err := root.ExecuteContext(context.Background()); err == nil {
		t.Fatal("generate with an unknown format should fail")
	}
}

func TestRootVersionOutput(t *testing.T) {
	var out bytes.Buffer
	root := newRootCmd()
	root.SetArgs([]string{"--version"})
	root.SetOut(&out)

	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("--version: %v", err)
	}
	got := out.String()
	for _, want := range []string{"mazelib", buildinfo.Version, buildinfo.Commit} {
		if !strings.Contains(got, want) {
			t.Errorf("version output missing %q:\n%s", want, got)
		}
	}
}

package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func writePreset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "preset.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write preset: %v", err)
	}
	return path
}

func TestLoadPreset(t *testing.T) {
	path := writePreset(t, `
width = 40
height = 20
seed = 12345
threshold = 60
format = "svg"
`)

	p, err := loadPreset(path)
	if err != nil {
		t.Fatalf("loadPreset: %v", err)
	}
	if p.Width != 40 || p.Height != 20 {
		t.Errorf("dimensions = %dx%d, want 40x20", p.Width, p.Height)
	}
	if p.Seed != 12345 {
		t.Errorf("seed = %d, want 12345", p.Seed)
	}
	if p.Threshold != 60 {
		t.Errorf("threshold = %d, want 60", p.Threshold)
	}
	if p.Format != "svg" {
		t.Errorf("format = %q, want svg", p.Format)
	}
}

func TestLoadPresetPartial(t *testing.T) {
	path := writePreset(t, `width = 7`)

	p, err := loadPreset(path)
	if err != nil {
		t.Fatalf("loadPreset: %v", err)
	}
	if p.Width != 7 {
		t.Errorf("width = %d, want 7", p.Width)
	}
	if p.Height != 0 || p.Format != "" {
		t.Errorf("unset fields should be zero: %+v", p)
	}
}

func TestLoadPresetMissingFile(t *testing.T) {
	if _, err := loadPreset(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("missing preset file should fail")
	}
}

func TestLoadPresetInvalidTOML(t *testing.T) {
	path := writePreset(t, `width = "not a number`)
	if _, err := loadPreset(path); err == nil {
		t.Error("invalid TOML should fail")
	}
}

package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/blastbay/mazelib/pkg/render"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(New(Options{}).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, url string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, body
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)

	resp, body := get(t, ts.URL+"/healthz")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if strings.TrimSpace(string(body)) != "ok" {
		t.Errorf("body = %q, want ok", body)
	}
}

func TestMazeJSON(t *testing.T) {
	ts := newTestServer(t)

	resp, body := get(t, ts.URL+"/v1/maze?width=5&height=4&seed=7&threshold=50")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", resp.StatusCode, body)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %q", ct)
	}
	if resp.Header.Get("X-Request-ID") == "" {
		t.Error("missing X-Request-ID header")
	}

	var doc render.Document
	if err := json.Unmarshal(body, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if doc.Width != 5 || doc.Height != 4 || doc.Seed != 7 {
		t.Errorf("params = %+v", doc.Params)
	}
	if len(doc.Cells) != 20 {
		t.Errorf("cells = %d, want 20", len(doc.Cells))
	}
}

func TestMazeDeterministicAcrossRequests(t *testing.T) {
	ts := newTestServer(t)

	const url = "/v1/maze?width=8&height=8&seed=123&threshold=30"
	_, a := get(t, ts.URL+url)
	_, b := get(t, ts.URL+url)
	if string(a) != string(b) {
		t.Error("identical requests returned different mazes")
	}
}

func TestMazeTextFormat(t *testing.T) {
	ts := newTestServer(t)

	resp, body := get(t, ts.URL+"/v1/maze?width=3&height=3&seed=1&format=text")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d: %s", resp.StatusCode, body)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("content type = %q", ct)
	}
	// 3x3 maze: blockwise grid has 2*3+1 = 7 rows.
	lines := strings.Split(strings.TrimRight(string(body), "\n"), "\n")
	if len(lines) != 7 {
		t.Errorf("got %d lines, want 7", len(lines))
	}
}

func TestMazeSVGFormat(t *testing.T) {
	ts := newTestServer(t)

	resp, body := get(t, ts.URL+"/v1/maze?width=4&height=4&seed=1&format=svg")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("content type = %q", ct)
	}
	if !strings.HasPrefix(string(body), "<svg ") {
		t.Errorf("body does not look like SVG: %.40s", body)
	}
}

func TestMazeBadRequests(t *testing.T) {
	ts := newTestServer(t)

	urls := []string{
		"/v1/maze",                                  // missing dimensions
		"/v1/maze?width=5",                          // missing height
		"/v1/maze?width=0&height=5",                 // zero width
		"/v1/maze?width=5&height=5&format=gif",      // unknown format
		"/v1/maze?width=5&height=5&threshold=200",   // threshold out of range
		"/v1/maze?width=100000&height=5",            // above max dimension
		"/v1/maze?width=5&height=5&seed=notanumber", // bad seed
	}
	for _, u := range urls {
		resp, _ := get(t, ts.URL+u)
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", u, resp.StatusCode)
		}
	}
}

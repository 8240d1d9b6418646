package web

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-bounce/internal/bounce"
	"github.com/vovakirdan/tui-bounce/internal/config"
)

func newTestServer(t *testing.T, cfg config.ServerConfig) *httptest.Server {
	t.Helper()
	s := NewServer(cfg, bounce.Controls(config.DefaultBounceConfig().Scoring), nil)
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, string(body)
}

func TestServeGame(t *testing.T) {
	ts := newTestServer(t, config.ServerConfig{Root: t.TempDir()})

	resp, body := get(t, ts.URL+"/game")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, expected 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var status GameStatus
	if err := json.Unmarshal([]byte(body), &status); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if status.Status != "ready" || status.Message != "Game is ready to play" {
		t.Errorf("status = %+v", status)
	}

	want := map[string]string{
		"space": "Add random ball (+10 pts)",
		"click": "Add ball at cursor (+5 pts)",
		"r":     "Reset game",
		"esc":   "Exit",
	}
	if len(status.Controls) != len(want) {
		t.Errorf("controls = %v", status.Controls)
	}
	for k, v := range want {
		if status.Controls[k] != v {
			t.Errorf("controls[%q] = %q, expected %q", k, status.Controls[k], v)
		}
	}
}

func TestServeIndex(t *testing.T) {
	dir := t.TempDir()
	custom := filepath.Join(dir, "landing.html")
	if err := os.WriteFile(custom, []byte("<h1>custom</h1>"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		index  string
		path   string
		status int
		want   string
	}{
		{"built-in root", "", "/", http.StatusOK, "Bouncing Balls"},
		{"built-in index.html", "", "/index.html", http.StatusOK, "Bouncing Balls"},
		{"configured", custom, "/", http.StatusOK, "<h1>custom</h1>"},
		{"missing", filepath.Join(dir, "nope.html"), "/", http.StatusNotFound, "Index page not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t, config.ServerConfig{Root: dir, Index: tt.index})

			resp, body := get(t, ts.URL+tt.path)
			if resp.StatusCode != tt.status {
				t.Errorf("status = %d, expected %d", resp.StatusCode, tt.status)
			}
			if !strings.Contains(body, tt.want) {
				t.Errorf("body %q does not contain %q", body, tt.want)
			}
		})
	}
}

func TestServeStatic(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log(1)"), 0o644); err != nil {
		t.Fatal(err)
	}
	ts := newTestServer(t, config.ServerConfig{Root: dir})

	resp, body := get(t, ts.URL+"/app.js")
	if resp.StatusCode != http.StatusOK || body != "console.log(1)" {
		t.Errorf("GET /app.js = %d %q", resp.StatusCode, body)
	}

	resp, _ = get(t, ts.URL+"/missing.js")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("GET /missing.js = %d, expected 404", resp.StatusCode)
	}
}

func TestCORS(t *testing.T) {
	ts := newTestServer(t, config.ServerConfig{Root: t.TempDir()})

	resp, _ := get(t, ts.URL+"/game")
	checkCORS(t, resp.Header)

	req, err := http.NewRequest(http.MethodOptions, ts.URL+"/game", nil)
	if err != nil {
		t.Fatal(err)
	}
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("OPTIONS: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("OPTIONS status = %d, expected 204", resp.StatusCode)
	}
	checkCORS(t, resp.Header)
}

func checkCORS(t *testing.T, h http.Header) {
	t.Helper()
	want := map[string]string{
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Methods": "GET, POST, OPTIONS",
		"Access-Control-Allow-Headers": "Content-Type",
	}
	for k, v := range want {
		if got := h.Get(k); got != v {
			t.Errorf("%s = %q, expected %q", k, got, v)
		}
	}
}

func TestRequestLog(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)

	s := NewServer(config.ServerConfig{Root: t.TempDir()}, nil, logger)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	req.RemoteAddr = "10.0.0.1:4242"
	s.Handler().ServeHTTP(rec, req)

	if line := buf.String(); !strings.Contains(line, "[10.0.0.1:4242] GET /missing 404") {
		t.Errorf("log line = %q", line)
	}
}

func TestListenAndServeShutdown(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	addr := l.Addr().String()
	l.Close()

	s := NewServer(config.ServerConfig{Address: addr, Root: t.TempDir()}, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- s.ListenAndServe(ctx)
	}()

	// Wait for the listener.
	deadline := time.Now().Add(2 * time.Second)
	for {
		resp, err := http.Get("http://" + addr + "/game")
		if err == nil {
			resp.Body.Close()
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("server did not start: %v", err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("ListenAndServe = %v, expected nil", err)
		}
	case <-time.After(shutdownTimeout + time.Second):
		t.Fatal("server did not shut down")
	}
}

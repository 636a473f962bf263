package server

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/me/membergate/internal/config"
	"github.com/me/membergate/internal/store"
)

func testServer(t *testing.T) *Server {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelError}))
	st, err := store.NewSQLiteStore(":memory:", logger)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	if err := st.Migrate(context.Background()); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	cfg := config.DefaultServerConfig()
	cfg.AssetsDir = writeTestAssets(t)
	return New(cfg, st, logger)
}

func writeTestAssets(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "001.avif"), []byte("image-bytes"), 0o644); err != nil {
		t.Fatalf("write asset: %v", err)
	}
	return dir
}

func TestHomePage(t *testing.T) {
	srv := testServer(t)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "MemberGate") {
		t.Error("landing page should mention MemberGate")
	}
}

func TestUnmatchedRoute_Renders404(t *testing.T) {
	srv := testServer(t)

	req := httptest.NewRequest("GET", "/nope", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status=%d, want 404", w.Code)
	}
	if !strings.Contains(w.Body.String(), "404") {
		t.Error("expected 404 page body")
	}
}

func TestUnmatchedMethod_Renders404(t *testing.T) {
	srv := testServer(t)

	req := httptest.NewRequest("DELETE", "/signUp", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status=%d, want 404", w.Code)
	}
}

func TestStaticAssets(t *testing.T) {
	srv := testServer(t)

	req := httptest.NewRequest("GET", "/static/001.avif", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want 200", w.Code)
	}
	if w.Body.String() != "image-bytes" {
		t.Errorf("body = %q, want asset content", w.Body.String())
	}
}

func TestRequestIDHeader(t *testing.T) {
	srv := testServer(t)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	if id := w.Header().Get("X-Request-ID"); !strings.HasPrefix(id, "req_") {
		t.Errorf("X-Request-ID = %q, want req_ prefix", id)
	}
}

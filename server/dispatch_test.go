package server

import (
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/echosite/echosite/config"
	"github.com/echosite/echosite/logger"
)

func newTestServer(t *testing.T, assetsDir string) *Server {
	t.Helper()
	cfg := &config.ServerConfig{
		ListenIP:        "127.0.0.1",
		Port:            0,
		AssetsDir:       assetsDir,
		MaxBodyBytes:    1 << 20,
		ShutdownTimeout: 2,
	}
	return NewServer(cfg, logger.NewLogger(logger.ERROR))
}

func writeFavicon(t *testing.T, dir string) {
	t.Helper()
	svg := `<svg xmlns="http://www.w3.org/2000/svg"></svg>`
	if err := os.WriteFile(filepath.Join(dir, "favicon.svg"), []byte(svg), 0644); err != nil {
		t.Fatal(err)
	}
}

func decodeJSON(t *testing.T, data []byte) map[string]interface{} {
	t.Helper()
	var v map[string]interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	return v
}

func TestDispatchRouting(t *testing.T) {
	dir := t.TempDir()
	writeFavicon(t, dir)
	s := newTestServer(t, dir)

	tests := []struct {
		method      string
		path        string
		wantStatus  int
		wantType    string
		wantBody    string
	}{
		{"GET", "/", 200, "text/html", "<h1>Bienvenido</h1>"},
		{"GET", "/about", 200, "text/html", "<h1>Acerca de</h1>"},
		{"GET", "/favicon.svg", 200, "image/svg+xml", "<svg"},
		{"GET", "/missing", 404, "text/plain", "Not Found"},
		{"GET", "/about/deeper", 404, "text/plain", "Not Found"},
		{"PUT", "/", 405, "text/plain", "Método no permitido"},
		{"DELETE", "/about", 405, "text/plain", "Método no permitido"},
		{"PATCH", "/anything", 405, "text/plain", "Método no permitido"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rec := httptest.NewRecorder()
			s.dispatch(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			ct := rec.Header().Get("Content-Type")
			if !strings.HasPrefix(ct, tt.wantType) {
				t.Errorf("content type = %q, want prefix %q", ct, tt.wantType)
			}
			if !strings.Contains(rec.Body.String(), tt.wantBody) {
				t.Errorf("body %q does not contain %q", rec.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestEchoWrapsParsedBody(t *testing.T) {
	s := newTestServer(t, t.TempDir())

	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"a":1}`))
	rec := httptest.NewRecorder()
	s.dispatch(rec, req)

	if rec.Code != 201 {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %q, want application/json", ct)
	}

	got := decodeJSON(t, rec.Body.Bytes())
	want := map[string]interface{}{
		"message": "Datos recibidos",
		"data":    map[string]interface{}{"a": float64(1)},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("body = %#v, want %#v", got, want)
	}
}

func TestEchoAcceptsAnyPath(t *testing.T) {
	s := newTestServer(t, t.TempDir())

	for _, path := range []string{"/", "/api", "/deep/nested/path"} {
		req := httptest.NewRequest("POST", path, strings.NewReader(`[1,2,3]`))
		rec := httptest.NewRecorder()
		s.dispatch(rec, req)

		if rec.Code != 201 {
			t.Errorf("POST %s: status = %d, want 201", path, rec.Code)
		}
	}
}

func TestEchoRejectsMalformedJSON(t *testing.T) {
	s := newTestServer(t, t.TempDir())

	req := httptest.NewRequest("POST", "/", strings.NewReader("not-json"))
	rec := httptest.NewRecorder()
	s.dispatch(rec, req)

	if rec.Code != 400 {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestEchoRejectsOversizeBody(t *testing.T) {
	s := newTestServer(t, t.TempDir())
	s.config.MaxBodyBytes = 16

	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"padding":"`+strings.Repeat("x", 64)+`"}`))
	rec := httptest.NewRecorder()
	s.dispatch(rec, req)

	if rec.Code != 413 {
		t.Fatalf("status = %d, want 413", rec.Code)
	}
}

func TestFaviconMissingAssetIs404(t *testing.T) {
	s := newTestServer(t, t.TempDir())

	req := httptest.NewRequest("GET", "/favicon.svg", nil)
	rec := httptest.NewRecorder()
	s.dispatch(rec, req)

	if rec.Code != 404 {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestEveryRequestGetsRecorded(t *testing.T) {
	s := newTestServer(t, t.TempDir())

	for _, method := range []string{"GET", "POST", "DELETE"} {
		req := httptest.NewRequest(method, "/", strings.NewReader("{}"))
		rec := httptest.NewRecorder()
		s.dispatch(rec, req)
		if rec.Code == 0 {
			t.Errorf("%s request left unanswered", method)
		}
	}

	stats := s.logger.GetStats()
	if stats.TotalRequests != 3 {
		t.Errorf("TotalRequests = %d, want 3", stats.TotalRequests)
	}
	if stats.ActiveRequests != 0 {
		t.Errorf("ActiveRequests = %d, want 0", stats.ActiveRequests)
	}
	if len(s.logger.GetRecentRequests(0)) != 3 {
		t.Errorf("recorded %d requests, want 3", len(s.logger.GetRecentRequests(0)))
	}
}

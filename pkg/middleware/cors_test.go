package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/akilimali/parapheur/pkg/middleware"
)

func testHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}

func testCORSConfig() middleware.CORSConfig {
	cfg := middleware.CORSConfig{
		Enabled: true,
		Origins: []string{"http://localhost:5173"},
	}
	cfg.Finalize(nil)
	return cfg
}

func TestCORS_Disabled(t *testing.T) {
	handler := middleware.CORS(middleware.CORSConfig{})(testHandler())

	r := httptest.NewRequest("GET", "/documents", nil)
	r.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("Allow-Origin = %q, want empty when disabled", got)
	}
	if w.Code != http.StatusNoContent {
		t.Errorf("status = %d, want request passed through", w.Code)
	}
}

func TestCORS_AllowedOrigin(t *testing.T) {
	handler := middleware.CORS(testCORSConfig())(testHandler())

	r := httptest.NewRequest("GET", "/documents", nil)
	r.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("Allow-Origin = %q, want the request origin", got)
	}
	if got := w.Header().Get("Access-Control-Allow-Headers"); got == "" {
		t.Error("Allow-Headers not set")
	}
}

func TestCORS_UnknownOrigin(t *testing.T) {
	handler := middleware.CORS(testCORSConfig())(testHandler())

	r := httptest.NewRequest("GET", "/documents", nil)
	r.Header.Set("Origin", "http://evil.example")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("Allow-Origin = %q, want empty for unknown origin", got)
	}
}

func TestCORS_Preflight(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})
	handler := middleware.CORS(testCORSConfig())(next)

	r := httptest.NewRequest("OPTIONS", "/documents", nil)
	r.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Errorf("preflight status = %d, want 200", w.Code)
	}
	if called {
		t.Error("preflight reached the wrapped handler")
	}
}

func TestCORSConfig_Defaults(t *testing.T) {
	cfg := middleware.CORSConfig{}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("Finalize() failed: %v", err)
	}

	if len(cfg.AllowedMethods) == 0 {
		t.Error("AllowedMethods default not applied")
	}

	found := false
	for _, h := range cfg.AllowedHeaders {
		if h == "X-User-Id" {
			found = true
		}
	}
	if !found {
		t.Errorf("AllowedHeaders = %v, want X-User-Id included", cfg.AllowedHeaders)
	}
	if cfg.MaxAge != 3600 {
		t.Errorf("MaxAge = %d, want 3600", cfg.MaxAge)
	}
}

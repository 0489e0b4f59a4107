package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/harmonia-music/harmonia-backend/internal/config"
)

func corsConfig(origins string) config.CORSConfig {
	return config.CORSConfig{
		AllowedOrigins:   origins,
		AllowedMethods:   "GET,POST,PUT,DELETE,OPTIONS",
		AllowedHeaders:   "Authorization,Content-Type",
		AllowCredentials: true,
		MaxAge:           600,
	}
}

func serveCORS(t *testing.T, cfg config.CORSConfig, method, origin string) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	reached := false
	h := CORS(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(method, "/playlists", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec, reached
}

func TestCORS_PreflightStopsAtMiddleware(t *testing.T) {
	cfg := corsConfig("https://app.harmonia.fm")

	rec, reached := serveCORS(t, cfg, http.MethodOptions, "https://app.harmonia.fm")

	if reached {
		t.Error("preflight must not reach the handler")
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNoContent)
	}
	wantHeaders := map[string]string{
		"Access-Control-Allow-Origin":      "https://app.harmonia.fm",
		"Access-Control-Allow-Methods":     "GET,POST,PUT,DELETE,OPTIONS",
		"Access-Control-Allow-Headers":     "Authorization,Content-Type",
		"Access-Control-Allow-Credentials": "true",
		"Access-Control-Max-Age":           "600",
	}
	for k, want := range wantHeaders {
		if got := rec.Header().Get(k); got != want {
			t.Errorf("%s = %q, want %q", k, got, want)
		}
	}
}

func TestCORS_ListedOriginAllowed(t *testing.T) {
	cfg := corsConfig("https://app.harmonia.fm, https://staging.harmonia.fm")

	rec, reached := serveCORS(t, cfg, http.MethodGet, "https://staging.harmonia.fm")

	if !reached {
		t.Error("plain request must pass through")
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://staging.harmonia.fm" {
		t.Errorf("Access-Control-Allow-Origin = %q, want the listed origin", got)
	}
}

func TestCORS_UnlistedOriginGetsNoAllowHeader(t *testing.T) {
	cfg := corsConfig("https://app.harmonia.fm")

	rec, reached := serveCORS(t, cfg, http.MethodGet, "https://evil.example")

	if !reached {
		t.Error("request should still be served, just without CORS headers")
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("Access-Control-Allow-Origin = %q, want empty", got)
	}
}

func TestCORS_WildcardEchoesConcreteOrigin(t *testing.T) {
	cfg := corsConfig("*")
	cfg.AllowCredentials = false

	rec, _ := serveCORS(t, cfg, http.MethodGet, "https://anywhere.example")

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://anywhere.example" {
		t.Errorf("Access-Control-Allow-Origin = %q, want the request origin echoed", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Credentials"); got != "" {
		t.Errorf("Access-Control-Allow-Credentials = %q, want unset", got)
	}
}

func TestCORS_SetsVaryOrigin(t *testing.T) {
	cfg := corsConfig("https://app.harmonia.fm")

	rec, _ := serveCORS(t, cfg, http.MethodGet, "")

	if got := rec.Header().Get("Vary"); got != "Origin" {
		t.Errorf("Vary = %q, want Origin", got)
	}
}

package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type pingerStub struct {
	err error
}

func (p pingerStub) Ping(context.Context) error { return p.err }

func decodeHealth(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode health body: %v", err)
	}
	return body
}

func TestHealth_Live_IgnoresDatabase(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(pingerStub{err: errors.New("db is gone")}, "1.2.3")
	rec := httptest.NewRecorder()

	h.Live(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 even with the database down", rec.Code)
	}
	if body := decodeHealth(t, rec); body["status"] != "ok" {
		t.Errorf("status field = %v, want ok", body["status"])
	}
}

func TestHealth_Ready_TracksDatabase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		pingErr    error
		wantCode   int
		wantStatus string
	}{
		{"database up", nil, http.StatusOK, "ok"},
		{"database down", errors.New("refused"), http.StatusServiceUnavailable, "down"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := NewHealthHandler(pingerStub{err: tt.pingErr}, "1.2.3")
			rec := httptest.NewRecorder()

			h.Ready(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

			if rec.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantCode)
			}
			if body := decodeHealth(t, rec); body["status"] != tt.wantStatus {
				t.Errorf("status field = %v, want %s", body["status"], tt.wantStatus)
			}
		})
	}
}

func TestHealth_FullReport(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(pingerStub{}, "1.2.3")
	rec := httptest.NewRecorder()

	h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := decodeHealth(t, rec)

	if body["version"] != "1.2.3" {
		t.Errorf("version = %v, want 1.2.3", body["version"])
	}
	if _, ok := body["uptime"]; !ok {
		t.Error("uptime field missing")
	}

	components, ok := body["components"].(map[string]any)
	if !ok {
		t.Fatalf("components = %v, want object", body["components"])
	}
	db, ok := components["database"].(map[string]any)
	if !ok {
		t.Fatalf("database component = %v, want object", components["database"])
	}
	if db["status"] != "ok" {
		t.Errorf("database status = %v, want ok", db["status"])
	}
	if db["latency"] == "" {
		t.Error("database latency missing for a healthy probe")
	}
}

func TestHealth_FullReportDatabaseDown(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(pingerStub{err: errors.New("refused")}, "1.2.3")
	rec := httptest.NewRecorder()

	h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
	if body := decodeHealth(t, rec); body["status"] != "down" {
		t.Errorf("status field = %v, want down", body["status"])
	}
}

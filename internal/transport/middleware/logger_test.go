package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/harmonia-music/harmonia-backend/pkg/ctxutil"
)

func captureLogLine(t *testing.T, status int, decorate func(*http.Request) *http.Request) map[string]any {
	t.Helper()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	h := Logger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte("body"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/albums/taller-than-the-trees", nil)
	if decorate != nil {
		req = decorate(req)
	}
	h.ServeHTTP(httptest.NewRecorder(), req)

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("log output is not one JSON line: %v\n%s", err, buf.String())
	}
	return line
}

func TestLogger_RecordsRequestShape(t *testing.T) {
	line := captureLogLine(t, http.StatusOK, nil)

	if line["msg"] != "request served" {
		t.Errorf("msg = %v, want %q", line["msg"], "request served")
	}
	if line["method"] != "GET" {
		t.Errorf("method = %v, want GET", line["method"])
	}
	if line["path"] != "/albums/taller-than-the-trees" {
		t.Errorf("path = %v", line["path"])
	}
	if line["status"] != float64(http.StatusOK) {
		t.Errorf("status = %v, want 200", line["status"])
	}
	if line["bytes"] != float64(4) {
		t.Errorf("bytes = %v, want 4", line["bytes"])
	}
	if line["level"] != "INFO" {
		t.Errorf("level = %v, want INFO", line["level"])
	}
	if _, ok := line["elapsed"]; !ok {
		t.Error("elapsed attr missing")
	}
}

func TestLogger_LevelTracksStatus(t *testing.T) {
	tests := []struct {
		status    int
		wantLevel string
	}{
		{http.StatusNoContent, "INFO"},
		{http.StatusNotFound, "WARN"},
		{http.StatusConflict, "WARN"},
		{http.StatusInternalServerError, "ERROR"},
	}

	for _, tt := range tests {
		line := captureLogLine(t, tt.status, nil)
		if line["level"] != tt.wantLevel {
			t.Errorf("status %d: level = %v, want %s", tt.status, line["level"], tt.wantLevel)
		}
	}
}

func TestLogger_CarriesContextIdentity(t *testing.T) {
	userID := uuid.New()

	line := captureLogLine(t, http.StatusOK, func(req *http.Request) *http.Request {
		ctx := ctxutil.WithRequestID(req.Context(), "req-listen-42")
		ctx = ctxutil.WithUserID(ctx, userID)
		return req.WithContext(ctx)
	})

	if line["request_id"] != "req-listen-42" {
		t.Errorf("request_id = %v, want req-listen-42", line["request_id"])
	}
	if line["user_id"] != userID.String() {
		t.Errorf("user_id = %v, want %s", line["user_id"], userID)
	}
}

func TestLogger_AnonymousRequestHasNoUserAttr(t *testing.T) {
	line := captureLogLine(t, http.StatusOK, nil)

	if _, ok := line["user_id"]; ok {
		t.Errorf("user_id attr present for anonymous request: %v", line["user_id"])
	}
}

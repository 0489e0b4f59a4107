package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/harmonia-music/harmonia-backend/pkg/ctxutil"
)

func serveWithRequestID(t *testing.T, req *http.Request) (string, *httptest.ResponseRecorder) {
	t.Helper()

	var ctxID string
	h := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxID = ctxutil.RequestIDFromCtx(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return ctxID, rec
}

func TestRequestID_HonorsIncomingHeader(t *testing.T) {
	incoming := uuid.New().String()

	req := httptest.NewRequest(http.MethodGet, "/songs", nil)
	req.Header.Set(RequestIDHeader, incoming)

	ctxID, rec := serveWithRequestID(t, req)

	if ctxID != incoming {
		t.Errorf("context ID = %q, want %q", ctxID, incoming)
	}
	if got := rec.Header().Get(RequestIDHeader); got != incoming {
		t.Errorf("response header = %q, want %q", got, incoming)
	}
}

func TestRequestID_GeneratesWhenAbsent(t *testing.T) {
	ctxID, rec := serveWithRequestID(t, httptest.NewRequest(http.MethodGet, "/songs", nil))

	if ctxID == "" {
		t.Fatal("no request ID reached the handler")
	}
	if _, err := uuid.Parse(ctxID); err != nil {
		t.Errorf("context ID %q is not a UUID: %v", ctxID, err)
	}
	if got := rec.Header().Get(RequestIDHeader); got != ctxID {
		t.Errorf("response header %q differs from context ID %q", got, ctxID)
	}
}

func TestRequestID_ReplacesOversizedHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/songs", nil)
	req.Header.Set(RequestIDHeader, strings.Repeat("x", maxRequestIDLen+1))

	ctxID, _ := serveWithRequestID(t, req)

	if _, err := uuid.Parse(ctxID); err != nil {
		t.Errorf("oversized header should be replaced with a UUID, got %q", ctxID)
	}
}

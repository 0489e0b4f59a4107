package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/harmonia-music/harmonia-backend/pkg/ctxutil"
)

// RequestIDHeader carries the correlation ID between clients, proxies
// and the response.
const RequestIDHeader = "X-Request-Id"

// maxRequestIDLen caps client-supplied IDs so log lines stay bounded.
const maxRequestIDLen = 64

// RequestID tags every request with a correlation ID. A short
// client-supplied header value is honored; anything else gets a fresh
// UUID. The final ID lands in the context and is echoed back on the
// response.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if id == "" || len(id) > maxRequestIDLen {
				id = uuid.New().String()
			}

			w.Header().Set(RequestIDHeader, id)
			next.ServeHTTP(w, r.WithContext(ctxutil.WithRequestID(r.Context(), id)))
		})
	}
}

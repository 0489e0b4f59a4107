package rest

import (
	"context"
	"net/http"
	"time"
)

// checkTimeout bounds every dependency probe so a stalled database
// cannot hang the orchestrator's health checks.
const checkTimeout = 3 * time.Second

type dbPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler answers the liveness, readiness and full health probes.
type HealthHandler struct {
	db        dbPinger
	version   string
	startedAt time.Time
}

func NewHealthHandler(db dbPinger, version string) *HealthHandler {
	return &HealthHandler{db: db, version: version, startedAt: time.Now()}
}

// healthPayload is the JSON body shared by all three probes.
type healthPayload struct {
	Status     string                     `json:"status"`
	Version    string                     `json:"version,omitempty"`
	Uptime     string                     `json:"uptime,omitempty"`
	Components map[string]componentHealth `json:"components,omitempty"`
	Timestamp  time.Time                  `json:"timestamp"`
}

type componentHealth struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live reports process liveness and nothing else; it must stay cheap
// and dependency-free so a broken database does not trigger restarts.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthPayload{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready reports whether the instance can serve traffic: 200 when the
// database answers, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	db := h.checkDatabase(r.Context())

	status, code := "ok", http.StatusOK
	if db.Status != "ok" {
		status, code = "down", http.StatusServiceUnavailable
	}

	writeJSON(w, code, healthPayload{
		Status:    status,
		Timestamp: time.Now(),
	})
}

// Health is the diagnostic endpoint: per-component state, probe
// latency, build version and uptime.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	db := h.checkDatabase(r.Context())

	status, code := "ok", http.StatusOK
	if db.Status != "ok" {
		status, code = "down", http.StatusServiceUnavailable
	}

	writeJSON(w, code, healthPayload{
		Status:     status,
		Version:    h.version,
		Uptime:     time.Since(h.startedAt).Round(time.Second).String(),
		Components: map[string]componentHealth{"database": db},
		Timestamp:  time.Now(),
	})
}

func (h *HealthHandler) checkDatabase(ctx context.Context) componentHealth {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		return componentHealth{Status: "down"}
	}
	return componentHealth{Status: "ok", Latency: time.Since(start).String()}
}

package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/harmonia-music/harmonia-backend/internal/service/activity"
	"github.com/harmonia-music/harmonia-backend/pkg/ctxutil"
)

type activityService interface {
	ListByPlaylist(ctx context.Context, actorID, playlistID uuid.UUID) ([]activity.Record, error)
}

// ActivityHandler serves the playlist activity history endpoint.
type ActivityHandler struct {
	svc activityService
	log *slog.Logger
}

// NewActivityHandler creates an ActivityHandler.
func NewActivityHandler(svc activityService, logger *slog.Logger) *ActivityHandler {
	return &ActivityHandler{svc: svc, log: logger.With("handler", "activity")}
}

type activityResponse struct {
	Username string    `json:"username"`
	Title    string    `json:"title"`
	Action   string    `json:"action"`
	Time     time.Time `json:"time"`
}

// ListByPlaylist handles GET /playlists/{id}/activities. Records come back
// oldest first.
func (h *ActivityHandler) ListByPlaylist(w http.ResponseWriter, r *http.Request) {
	actorID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	playlistID, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	records, err := h.svc.ListByPlaylist(r.Context(), actorID, playlistID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]activityResponse, len(records))
	for i, rec := range records {
		out[i] = activityResponse{
			Username: rec.Username,
			Title:    rec.Title,
			Action:   rec.Activity.Action.String(),
			Time:     rec.Activity.CreatedAt,
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"playlistId": playlistID.String(),
		"activities": out,
	})
}

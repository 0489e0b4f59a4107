package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/harmonia-music/harmonia-backend/internal/domain"
	"github.com/harmonia-music/harmonia-backend/internal/service/playlist"
	"github.com/harmonia-music/harmonia-backend/pkg/ctxutil"
)

type playlistService interface {
	Create(ctx context.Context, actorID uuid.UUID, input playlist.CreatePlaylistInput) (*domain.Playlist, error)
	List(ctx context.Context, actorID uuid.UUID) ([]domain.PlaylistWithOwner, error)
	Delete(ctx context.Context, actorID, playlistID uuid.UUID) error

	AddCollaborator(ctx context.Context, actorID uuid.UUID, input playlist.CollaborationInput) (uuid.UUID, error)
	RemoveCollaborator(ctx context.Context, actorID uuid.UUID, input playlist.CollaborationInput) error
}

// PlaylistHandler serves playlist endpoints. All of them require an
// authenticated user; the auth middleware guarantees the id in context.
type PlaylistHandler struct {
	svc playlistService
	log *slog.Logger
}

// NewPlaylistHandler creates a PlaylistHandler.
func NewPlaylistHandler(svc playlistService, logger *slog.Logger) *PlaylistHandler {
	return &PlaylistHandler{svc: svc, log: logger.With("handler", "playlist")}
}

type createPlaylistRequest struct {
	Name string `json:"name"`
}

type playlistResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username,omitempty"`
}

type collaborationRequest struct {
	UserID string `json:"userId"`
}

// Create handles POST /playlists.
func (h *PlaylistHandler) Create(w http.ResponseWriter, r *http.Request) {
	actorID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req createPlaylistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.svc.Create(r.Context(), actorID, playlist.CreatePlaylistInput{Name: req.Name})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, playlistResponse{ID: p.ID.String(), Name: p.Name})
}

// List handles GET /playlists: playlists the actor owns or collaborates on.
func (h *PlaylistHandler) List(w http.ResponseWriter, r *http.Request) {
	actorID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	playlists, err := h.svc.List(r.Context(), actorID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]playlistResponse, len(playlists))
	for i, p := range playlists {
		out[i] = playlistResponse{
			ID:       p.ID.String(),
			Name:     p.Name,
			Username: p.OwnerUsername,
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{"playlists": out})
}

// Delete handles DELETE /playlists/{id}.
func (h *PlaylistHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actorID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.svc.Delete(r.Context(), actorID, id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// AddCollaborator handles POST /playlists/{id}/collaborations.
func (h *PlaylistHandler) AddCollaborator(w http.ResponseWriter, r *http.Request) {
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

	var req collaborationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		handleError(w, r, h.log, domain.NewValidationError("userId", "must be a valid uuid"))
		return
	}

	collabID, err := h.svc.AddCollaborator(r.Context(), actorID, playlist.CollaborationInput{
		PlaylistID: playlistID,
		UserID:     userID,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"collaborationId": collabID.String()})
}

// RemoveCollaborator handles DELETE /playlists/{id}/collaborations.
func (h *PlaylistHandler) RemoveCollaborator(w http.ResponseWriter, r *http.Request) {
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

	var req collaborationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		handleError(w, r, h.log, domain.NewValidationError("userId", "must be a valid uuid"))
		return
	}

	err = h.svc.RemoveCollaborator(r.Context(), actorID, playlist.CollaborationInput{
		PlaylistID: playlistID,
		UserID:     userID,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

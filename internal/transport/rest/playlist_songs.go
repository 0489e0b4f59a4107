package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/harmonia-music/harmonia-backend/internal/domain"
	"github.com/harmonia-music/harmonia-backend/internal/service/playlistsong"
	"github.com/harmonia-music/harmonia-backend/pkg/ctxutil"
)

type membershipService interface {
	AddSong(ctx context.Context, actorID uuid.UUID, input playlistsong.MembershipInput) (uuid.UUID, error)
	RemoveSong(ctx context.Context, actorID uuid.UUID, input playlistsong.MembershipInput) error
	GetContents(ctx context.Context, actorID, playlistID uuid.UUID) (*playlistsong.PlaylistContents, error)
}

// PlaylistSongHandler serves playlist membership endpoints.
type PlaylistSongHandler struct {
	svc membershipService
	log *slog.Logger
}

// NewPlaylistSongHandler creates a PlaylistSongHandler.
func NewPlaylistSongHandler(svc membershipService, logger *slog.Logger) *PlaylistSongHandler {
	return &PlaylistSongHandler{svc: svc, log: logger.With("handler", "playlistsong")}
}

type membershipRequest struct {
	SongID string `json:"songId"`
}

func (h *PlaylistSongHandler) parseMembership(w http.ResponseWriter, r *http.Request) (uuid.UUID, playlistsong.MembershipInput, bool) {
	actorID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return uuid.Nil, playlistsong.MembershipInput{}, false
	}

	playlistID, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return uuid.Nil, playlistsong.MembershipInput{}, false
	}

	var req membershipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return uuid.Nil, playlistsong.MembershipInput{}, false
	}
	songID, err := uuid.Parse(req.SongID)
	if err != nil {
		handleError(w, r, h.log, domain.NewValidationError("songId", "must be a valid uuid"))
		return uuid.Nil, playlistsong.MembershipInput{}, false
	}

	return actorID, playlistsong.MembershipInput{PlaylistID: playlistID, SongID: songID}, true
}

// AddSong handles POST /playlists/{id}/songs.
func (h *PlaylistSongHandler) AddSong(w http.ResponseWriter, r *http.Request) {
	actorID, input, ok := h.parseMembership(w, r)
	if !ok {
		return
	}

	membershipID, err := h.svc.AddSong(r.Context(), actorID, input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"playlistSongId": membershipID.String()})
}

// RemoveSong handles DELETE /playlists/{id}/songs.
func (h *PlaylistSongHandler) RemoveSong(w http.ResponseWriter, r *http.Request) {
	actorID, input, ok := h.parseMembership(w, r)
	if !ok {
		return
	}

	if err := h.svc.RemoveSong(r.Context(), actorID, input); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetContents handles GET /playlists/{id}/songs.
func (h *PlaylistSongHandler) GetContents(w http.ResponseWriter, r *http.Request) {
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

	contents, err := h.svc.GetContents(r.Context(), actorID, playlistID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	songs := make([]songResponse, len(contents.Songs))
	for i, s := range contents.Songs {
		songs[i] = toSongResponse(s)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"playlist": playlistResponse{
			ID:   contents.Playlist.ID.String(),
			Name: contents.Playlist.Name,
		},
		"songs": songs,
	})
}

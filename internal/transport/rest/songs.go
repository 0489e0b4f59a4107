package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/harmonia-music/harmonia-backend/internal/domain"
	"github.com/harmonia-music/harmonia-backend/internal/service/song"
)

type songService interface {
	Create(ctx context.Context, input song.SongInput) (*domain.Song, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Song, error)
	List(ctx context.Context, filter domain.SongFilter) ([]domain.Song, error)
	Update(ctx context.Context, id uuid.UUID, input song.SongInput) (*domain.Song, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// SongHandler serves song catalog endpoints.
type SongHandler struct {
	svc songService
	log *slog.Logger
}

// NewSongHandler creates a SongHandler.
func NewSongHandler(svc songService, logger *slog.Logger) *SongHandler {
	return &SongHandler{svc: svc, log: logger.With("handler", "song")}
}

type songRequest struct {
	Title     string  `json:"title"`
	Year      int     `json:"year"`
	Genre     string  `json:"genre"`
	Performer string  `json:"performer"`
	Duration  *int    `json:"duration,omitempty"`
	AlbumID   *string `json:"albumId,omitempty"`
}

type songResponse struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Year      int     `json:"year"`
	Genre     string  `json:"genre"`
	Performer string  `json:"performer"`
	Duration  *int    `json:"duration,omitempty"`
	AlbumID   *string `json:"albumId,omitempty"`
}

func (req songRequest) toInput() (song.SongInput, error) {
	input := song.SongInput{
		Title:     req.Title,
		Year:      req.Year,
		Genre:     req.Genre,
		Performer: req.Performer,
		Duration:  req.Duration,
	}
	if req.AlbumID != nil {
		id, err := uuid.Parse(*req.AlbumID)
		if err != nil {
			return song.SongInput{}, domain.NewValidationError("albumId", "must be a valid uuid")
		}
		input.AlbumID = &id
	}
	return input, nil
}

// Create handles POST /songs.
func (h *SongHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req songRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input, err := req.toInput()
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	created, err := h.svc.Create(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toSongResponse(*created))
}

// List handles GET /songs with optional title and performer filters.
func (h *SongHandler) List(w http.ResponseWriter, r *http.Request) {
	songs, err := h.svc.List(r.Context(), domain.SongFilter{
		Title:     r.URL.Query().Get("title"),
		Performer: r.URL.Query().Get("performer"),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]songResponse, len(songs))
	for i, s := range songs {
		out[i] = toSongResponse(s)
	}

	writeJSON(w, http.StatusOK, map[string]any{"songs": out})
}

// GetByID handles GET /songs/{id}.
func (h *SongHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	s, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toSongResponse(*s))
}

// Update handles PUT /songs/{id}.
func (h *SongHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req songRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input, err := req.toInput()
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	updated, err := h.svc.Update(r.Context(), id, input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toSongResponse(*updated))
}

// Delete handles DELETE /songs/{id}.
func (h *SongHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func toSongResponse(s domain.Song) songResponse {
	resp := songResponse{
		ID:        s.ID.String(),
		Title:     s.Title,
		Year:      s.Year,
		Genre:     s.Genre,
		Performer: s.Performer,
		Duration:  s.Duration,
	}
	if s.AlbumID != nil {
		id := s.AlbumID.String()
		resp.AlbumID = &id
	}
	return resp
}

package rest

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/harmonia-music/harmonia-backend/internal/domain"
	"github.com/harmonia-music/harmonia-backend/internal/service/album"
	"github.com/harmonia-music/harmonia-backend/pkg/ctxutil"
)

type albumService interface {
	Create(ctx context.Context, input album.AlbumInput) (*domain.Album, error)
	GetByID(ctx context.Context, id uuid.UUID) (*album.AlbumWithSongs, error)
	Update(ctx context.Context, id uuid.UUID, input album.AlbumInput) (*domain.Album, error)
	Delete(ctx context.Context, id uuid.UUID) error

	Like(ctx context.Context, actorID, albumID uuid.UUID) error
	Unlike(ctx context.Context, actorID, albumID uuid.UUID) error
	CountLikes(ctx context.Context, albumID uuid.UUID) (*album.LikeCount, error)
}

type coverUploader interface {
	UploadCover(ctx context.Context, albumID uuid.UUID, r io.Reader, contentType string, size int64) (string, error)
}

// AlbumHandler serves album catalog endpoints.
type AlbumHandler struct {
	svc     albumService
	uploads coverUploader
	log     *slog.Logger
}

// NewAlbumHandler creates an AlbumHandler.
func NewAlbumHandler(svc albumService, uploads coverUploader, logger *slog.Logger) *AlbumHandler {
	return &AlbumHandler{svc: svc, uploads: uploads, log: logger.With("handler", "album")}
}

type albumRequest struct {
	Name string `json:"name"`
	Year int    `json:"year"`
}

type albumResponse struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Year     int            `json:"year"`
	CoverURL *string        `json:"coverUrl,omitempty"`
	Songs    []songResponse `json:"songs,omitempty"`
}

// Create handles POST /albums.
func (h *AlbumHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req albumRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.Create(r.Context(), album.AlbumInput{Name: req.Name, Year: req.Year})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toAlbumResponse(created, nil))
}

// GetByID handles GET /albums/{id}. The album comes with its songs.
func (h *AlbumHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	got, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toAlbumResponse(&got.Album, got.Songs))
}

// Update handles PUT /albums/{id}.
func (h *AlbumHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req albumRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.Update(r.Context(), id, album.AlbumInput{Name: req.Name, Year: req.Year})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toAlbumResponse(updated, nil))
}

// Delete handles DELETE /albums/{id}.
func (h *AlbumHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

// UploadCover handles POST /albums/{id}/covers as multipart form data.
func (h *AlbumHandler) UploadCover(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	file, header, err := r.FormFile("cover")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing cover file")
		return
	}
	defer file.Close()

	url, err := h.uploads.UploadCover(r.Context(), id, file, header.Header.Get("Content-Type"), header.Size)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"coverUrl": url})
}

// Like handles POST /albums/{id}/likes.
func (h *AlbumHandler) Like(w http.ResponseWriter, r *http.Request) {
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

	if err := h.svc.Like(r.Context(), actorID, id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"status": "ok"})
}

// Unlike handles DELETE /albums/{id}/likes.
func (h *AlbumHandler) Unlike(w http.ResponseWriter, r *http.Request) {
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

	if err := h.svc.Unlike(r.Context(), actorID, id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// CountLikes handles GET /albums/{id}/likes. A count served from cache is
// marked with the X-Data-Source header.
func (h *AlbumHandler) CountLikes(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	count, err := h.svc.CountLikes(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if count.FromCache {
		w.Header().Set("X-Data-Source", "cache")
	}
	writeJSON(w, http.StatusOK, map[string]int{"likes": count.Count})
}

func toAlbumResponse(a *domain.Album, songs []domain.Song) albumResponse {
	resp := albumResponse{
		ID:       a.ID.String(),
		Name:     a.Name,
		Year:     a.Year,
		CoverURL: a.CoverURL,
	}
	if songs != nil {
		resp.Songs = make([]songResponse, len(songs))
		for i, s := range songs {
			resp.Songs[i] = toSongResponse(s)
		}
	}
	return resp
}

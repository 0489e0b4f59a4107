package app

import (
	"net/http"

	"github.com/harmonia-music/harmonia-backend/internal/transport/rest"
)

type handlers struct {
	health        *rest.HealthHandler
	auth          *rest.AuthHandler
	users         *rest.UserHandler
	albums        *rest.AlbumHandler
	songs         *rest.SongHandler
	playlists     *rest.PlaylistHandler
	playlistSongs *rest.PlaylistSongHandler
	activities    *rest.ActivityHandler
}

// newRouter registers all routes on a ServeMux. Method matching and path
// parameters come from the standard router; auth is resolved by middleware
// and enforced per handler.
func newRouter(h handlers, coversDir string) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.health.Health)
	mux.HandleFunc("GET /health/live", h.health.Live)
	mux.HandleFunc("GET /health/ready", h.health.Ready)

	mux.HandleFunc("POST /users", h.auth.Register)
	mux.HandleFunc("GET /users/{id}", h.users.GetByID)

	mux.HandleFunc("POST /authentications", h.auth.Login)
	mux.HandleFunc("PUT /authentications", h.auth.Refresh)
	mux.HandleFunc("DELETE /authentications", h.auth.Logout)

	mux.HandleFunc("POST /albums", h.albums.Create)
	mux.HandleFunc("GET /albums/{id}", h.albums.GetByID)
	mux.HandleFunc("PUT /albums/{id}", h.albums.Update)
	mux.HandleFunc("DELETE /albums/{id}", h.albums.Delete)
	mux.HandleFunc("POST /albums/{id}/covers", h.albums.UploadCover)
	mux.HandleFunc("POST /albums/{id}/likes", h.albums.Like)
	mux.HandleFunc("DELETE /albums/{id}/likes", h.albums.Unlike)
	mux.HandleFunc("GET /albums/{id}/likes", h.albums.CountLikes)

	mux.HandleFunc("POST /songs", h.songs.Create)
	mux.HandleFunc("GET /songs", h.songs.List)
	mux.HandleFunc("GET /songs/{id}", h.songs.GetByID)
	mux.HandleFunc("PUT /songs/{id}", h.songs.Update)
	mux.HandleFunc("DELETE /songs/{id}", h.songs.Delete)

	mux.HandleFunc("POST /playlists", h.playlists.Create)
	mux.HandleFunc("GET /playlists", h.playlists.List)
	mux.HandleFunc("DELETE /playlists/{id}", h.playlists.Delete)

	mux.HandleFunc("POST /playlists/{id}/songs", h.playlistSongs.AddSong)
	mux.HandleFunc("GET /playlists/{id}/songs", h.playlistSongs.GetContents)
	mux.HandleFunc("DELETE /playlists/{id}/songs", h.playlistSongs.RemoveSong)

	mux.HandleFunc("GET /playlists/{id}/activities", h.activities.ListByPlaylist)

	mux.HandleFunc("POST /playlists/{id}/collaborations", h.playlists.AddCollaborator)
	mux.HandleFunc("DELETE /playlists/{id}/collaborations", h.playlists.RemoveCollaborator)

	mux.Handle("GET /covers/", http.StripPrefix("/covers/", http.FileServer(http.Dir(coversDir))))

	return mux
}

//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/harmonia-music/harmonia-backend/internal/adapter/postgres"
	activityrepo "github.com/harmonia-music/harmonia-backend/internal/adapter/postgres/activity"
	albumrepo "github.com/harmonia-music/harmonia-backend/internal/adapter/postgres/album"
	playlistrepo "github.com/harmonia-music/harmonia-backend/internal/adapter/postgres/playlist"
	playlistsongrepo "github.com/harmonia-music/harmonia-backend/internal/adapter/postgres/playlistsong"
	songrepo "github.com/harmonia-music/harmonia-backend/internal/adapter/postgres/song"
	"github.com/harmonia-music/harmonia-backend/internal/adapter/postgres/testhelper"
	tokenrepo "github.com/harmonia-music/harmonia-backend/internal/adapter/postgres/token"
	userrepo "github.com/harmonia-music/harmonia-backend/internal/adapter/postgres/user"
	"github.com/harmonia-music/harmonia-backend/internal/adapter/rediscache"
	authpkg "github.com/harmonia-music/harmonia-backend/internal/auth"
	"github.com/harmonia-music/harmonia-backend/internal/config"
	activitysvc "github.com/harmonia-music/harmonia-backend/internal/service/activity"
	albumsvc "github.com/harmonia-music/harmonia-backend/internal/service/album"
	authsvc "github.com/harmonia-music/harmonia-backend/internal/service/auth"
	playlistsvc "github.com/harmonia-music/harmonia-backend/internal/service/playlist"
	playlistsongsvc "github.com/harmonia-music/harmonia-backend/internal/service/playlistsong"
	songsvc "github.com/harmonia-music/harmonia-backend/internal/service/song"
	usersvc "github.com/harmonia-music/harmonia-backend/internal/service/user"
	"github.com/harmonia-music/harmonia-backend/internal/transport/middleware"
	"github.com/harmonia-music/harmonia-backend/internal/transport/rest"
)

// testServer bundles the running HTTP API and its database pool.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// setupTestServer spins up the full REST stack against a containerized
// PostgreSQL instance. The likes cache is disabled so tests do not need a
// Redis container.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.Default()

	authCfg := config.AuthConfig{
		JWTSecret:        "e2e-test-secret",
		JWTIssuer:        "harmonia-test",
		AccessTokenTTL:   15 * time.Minute,
		RefreshTokenTTL:  24 * time.Hour,
		PasswordHashCost: 4,
	}

	users := userrepo.New(pool)
	tokens := tokenrepo.New(pool)
	albums := albumrepo.New(pool)
	songs := songrepo.New(pool)
	playlists := playlistrepo.New(pool)
	memberships := playlistsongrepo.New(pool)
	activities := activityrepo.New(pool)

	txManager := postgres.NewTxManager(pool)
	jwtManager := authpkg.NewJWTManager(authCfg.JWTSecret, authCfg.JWTIssuer, authCfg.AccessTokenTTL)

	// A nil *LikesCache is the disabled-cache mode; its methods are
	// nil-receiver safe.
	var likesCache *rediscache.LikesCache

	authService := authsvc.NewService(logger, users, tokens, txManager, jwtManager, authCfg)
	userService := usersvc.NewService(logger, users)
	albumService := albumsvc.NewService(logger, albums, songs, likesCache)
	songService := songsvc.NewService(logger, songs, albums)
	playlistService := playlistsvc.NewService(logger, playlists, users)
	membershipService := playlistsongsvc.NewService(logger, memberships, activities, songs, playlistService, playlists)
	activityService := activitysvc.NewService(logger, activities, playlistService, users, songs)

	authHandler := rest.NewAuthHandler(authService, logger)
	userHandler := rest.NewUserHandler(userService, logger)
	songHandler := rest.NewSongHandler(songService, logger)
	albumHandler := rest.NewAlbumHandler(albumService, nil, logger)
	playlistHandler := rest.NewPlaylistHandler(playlistService, logger)
	membershipHandler := rest.NewPlaylistSongHandler(membershipService, logger)
	activityHandler := rest.NewActivityHandler(activityService, logger)
	healthHandler := rest.NewHealthHandler(pool, "e2e-test")

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", healthHandler.Health)
	mux.HandleFunc("GET /health/live", healthHandler.Live)
	mux.HandleFunc("GET /health/ready", healthHandler.Ready)
	mux.HandleFunc("POST /users", authHandler.Register)
	mux.HandleFunc("GET /users/{id}", userHandler.GetByID)
	mux.HandleFunc("POST /authentications", authHandler.Login)
	mux.HandleFunc("PUT /authentications", authHandler.Refresh)
	mux.HandleFunc("DELETE /authentications", authHandler.Logout)
	mux.HandleFunc("POST /songs", songHandler.Create)
	mux.HandleFunc("GET /songs", songHandler.List)
	mux.HandleFunc("GET /songs/{id}", songHandler.GetByID)
	mux.HandleFunc("POST /albums", albumHandler.Create)
	mux.HandleFunc("GET /albums/{id}", albumHandler.GetByID)
	mux.HandleFunc("POST /playlists", playlistHandler.Create)
	mux.HandleFunc("GET /playlists", playlistHandler.List)
	mux.HandleFunc("DELETE /playlists/{id}", playlistHandler.Delete)
	mux.HandleFunc("POST /playlists/{id}/songs", membershipHandler.AddSong)
	mux.HandleFunc("GET /playlists/{id}/songs", membershipHandler.GetContents)
	mux.HandleFunc("DELETE /playlists/{id}/songs", membershipHandler.RemoveSong)
	mux.HandleFunc("GET /playlists/{id}/activities", activityHandler.ListByPlaylist)
	mux.HandleFunc("POST /playlists/{id}/collaborations", playlistHandler.AddCollaborator)
	mux.HandleFunc("DELETE /playlists/{id}/collaborations", playlistHandler.RemoveCollaborator)

	handler := middleware.Stack{
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.Auth(authService),
	}.Handler(mux)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
	}
}

// doJSON sends a JSON request with an optional bearer token and returns the
// status code and decoded body.
func (ts *testServer) doJSON(t *testing.T, method, path string, body any, token string) (int, map[string]any) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, reqBody)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded), "body: %s", raw)
	}

	return resp.StatusCode, decoded
}

// registerUser creates a fresh user through the API and returns its id,
// access token, and refresh token.
func (ts *testServer) registerUser(t *testing.T) (userID, accessToken, refreshToken string) {
	t.Helper()

	suffix := uuid.New().String()[:8]
	status, body := ts.doJSON(t, http.MethodPost, "/users", map[string]string{
		"email":    fmt.Sprintf("user-%s@example.com", suffix),
		"username": "user_" + suffix,
		"fullname": "User " + suffix,
		"password": "correct-horse-battery",
	}, "")
	require.Equal(t, http.StatusCreated, status, "register: %v", body)

	user, ok := body["user"].(map[string]any)
	require.True(t, ok, "expected user object in response")

	return user["id"].(string), body["accessToken"].(string), body["refreshToken"].(string)
}

// createSong inserts a song through the API and returns its id.
func (ts *testServer) createSong(t *testing.T, token, title string) string {
	t.Helper()

	status, body := ts.doJSON(t, http.MethodPost, "/songs", map[string]any{
		"title":     title,
		"year":      2020,
		"genre":     "Rock",
		"performer": "The Integration Testers",
	}, token)
	require.Equal(t, http.StatusCreated, status, "create song: %v", body)

	return body["id"].(string)
}

// createPlaylist creates a playlist owned by the token's user and returns its id.
func (ts *testServer) createPlaylist(t *testing.T, token, name string) string {
	t.Helper()

	status, body := ts.doJSON(t, http.MethodPost, "/playlists", map[string]string{
		"name": name,
	}, token)
	require.Equal(t, http.StatusCreated, status, "create playlist: %v", body)

	return body["id"].(string)
}

// Package app wires configuration, storage, services, and transport into a
// running HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/harmonia-music/harmonia-backend/internal/adapter/filestore"
	"github.com/harmonia-music/harmonia-backend/internal/adapter/postgres"
	activityrepo "github.com/harmonia-music/harmonia-backend/internal/adapter/postgres/activity"
	albumrepo "github.com/harmonia-music/harmonia-backend/internal/adapter/postgres/album"
	playlistrepo "github.com/harmonia-music/harmonia-backend/internal/adapter/postgres/playlist"
	playlistsongrepo "github.com/harmonia-music/harmonia-backend/internal/adapter/postgres/playlistsong"
	songrepo "github.com/harmonia-music/harmonia-backend/internal/adapter/postgres/song"
	tokenrepo "github.com/harmonia-music/harmonia-backend/internal/adapter/postgres/token"
	userrepo "github.com/harmonia-music/harmonia-backend/internal/adapter/postgres/user"
	"github.com/harmonia-music/harmonia-backend/internal/adapter/rediscache"
	"github.com/harmonia-music/harmonia-backend/internal/auth"
	"github.com/harmonia-music/harmonia-backend/internal/config"
	activitysvc "github.com/harmonia-music/harmonia-backend/internal/service/activity"
	albumsvc "github.com/harmonia-music/harmonia-backend/internal/service/album"
	authsvc "github.com/harmonia-music/harmonia-backend/internal/service/auth"
	playlistsvc "github.com/harmonia-music/harmonia-backend/internal/service/playlist"
	playlistsongsvc "github.com/harmonia-music/harmonia-backend/internal/service/playlistsong"
	songsvc "github.com/harmonia-music/harmonia-backend/internal/service/song"
	uploadsvc "github.com/harmonia-music/harmonia-backend/internal/service/upload"
	usersvc "github.com/harmonia-music/harmonia-backend/internal/service/user"
	"github.com/harmonia-music/harmonia-backend/internal/transport/middleware"
	"github.com/harmonia-music/harmonia-backend/internal/transport/rest"
)

// Run is the application entry point. It blocks until ctx is cancelled,
// then shuts the server down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer pool.Close()

	if cfg.Database.MigrateOnStart {
		if err := migrate(pool); err != nil {
			return err
		}
		logger.Info("migrations applied")
	}

	likesCache, err := rediscache.New(ctx, cfg.Redis)
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	if likesCache != nil {
		defer likesCache.Close()
		logger.Info("likes cache enabled", slog.String("addr", cfg.Redis.Addr))
	}

	covers, err := filestore.New(cfg.Upload)
	if err != nil {
		return fmt.Errorf("init cover store: %w", err)
	}

	users := userrepo.New(pool)
	tokens := tokenrepo.New(pool)
	albums := albumrepo.New(pool)
	songs := songrepo.New(pool)
	playlists := playlistrepo.New(pool)
	memberships := playlistsongrepo.New(pool)
	activities := activityrepo.New(pool)

	txManager := postgres.NewTxManager(pool)
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	authService := authsvc.NewService(logger, users, tokens, txManager, jwtManager, cfg.Auth)
	userService := usersvc.NewService(logger, users)
	albumService := albumsvc.NewService(logger, albums, songs, likesCache)
	songService := songsvc.NewService(logger, songs, albums)
	playlistService := playlistsvc.NewService(logger, playlists, users)
	membershipService := playlistsongsvc.NewService(logger, memberships, activities, songs, playlistService, playlists)
	activityService := activitysvc.NewService(logger, activities, playlistService, users, songs)
	uploadService := uploadsvc.NewService(logger, covers, albumService, cfg.Upload.MaxSizeBytes)

	h := handlers{
		health:        rest.NewHealthHandler(pool, BuildVersion()),
		auth:          rest.NewAuthHandler(authService, logger),
		users:         rest.NewUserHandler(userService, logger),
		albums:        rest.NewAlbumHandler(albumService, uploadService, logger),
		songs:         rest.NewSongHandler(songService, logger),
		playlists:     rest.NewPlaylistHandler(playlistService, logger),
		playlistSongs: rest.NewPlaylistSongHandler(membershipService, logger),
		activities:    rest.NewActivityHandler(activityService, logger),
	}

	mux := newRouter(h, covers.Dir())

	limiter := middleware.NewRateLimiter(5 * time.Minute)
	defer limiter.Stop()

	// Auth runs before the limiter so buckets key on the user, not the IP.
	handler := middleware.Stack{
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(authService),
		limiter.Limit(cfg.Server.RatePerMinute),
	}.Handler(mux)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}

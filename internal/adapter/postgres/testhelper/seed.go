package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/harmonia-music/harmonia-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with a throwaway password hash.
// Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "listener-" + suffix + "@example.com",
		Username:     "listener_" + suffix,
		Fullname:     "Listener " + suffix,
		PasswordHash: "$2a$10$TestHashNotUsableForLogin................",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, username, fullname, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Email, user.Username, user.Fullname, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert: %v", err)
	}

	return user
}

// SeedAlbum creates an album.
func SeedAlbum(t *testing.T, pool *pgxpool.Pool, name string, year int) domain.Album {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	album := domain.Album{
		ID:        uuid.New(),
		Name:      name,
		Year:      year,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO albums (id, name, year, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		album.ID, album.Name, album.Year, album.CreatedAt, album.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAlbum insert: %v", err)
	}

	return album
}

// SeedSong creates a song, optionally attached to an album (pass uuid.Nil for none).
func SeedSong(t *testing.T, pool *pgxpool.Pool, title, performer string, albumID uuid.UUID) domain.Song {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	song := domain.Song{
		ID:        uuid.New(),
		Title:     title,
		Year:      2020,
		Genre:     "Rock",
		Performer: performer,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if albumID != uuid.Nil {
		song.AlbumID = &albumID
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO songs (id, title, year, genre, performer, duration, album_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		song.ID, song.Title, song.Year, song.Genre, song.Performer, song.Duration, song.AlbumID, song.CreatedAt, song.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSong insert: %v", err)
	}

	return song
}

// SeedPlaylist creates a playlist owned by the given user.
func SeedPlaylist(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID, name string) domain.Playlist {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	playlist := domain.Playlist{
		ID:        uuid.New(),
		Name:      name,
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO playlists (id, name, owner_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		playlist.ID, playlist.Name, playlist.OwnerID, playlist.CreatedAt, playlist.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPlaylist insert: %v", err)
	}

	return playlist
}

// SeedCollaboration makes userID a collaborator on playlistID.
func SeedCollaboration(t *testing.T, pool *pgxpool.Pool, playlistID, userID uuid.UUID) uuid.UUID {
	t.Helper()
	ctx := context.Background()

	id := uuid.New()
	_, err := pool.Exec(ctx,
		`INSERT INTO collaborations (id, playlist_id, user_id, created_at)
		 VALUES ($1, $2, $3, $4)`,
		id, playlistID, userID, time.Now().UTC(),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCollaboration insert: %v", err)
	}

	return id
}

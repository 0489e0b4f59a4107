package testhelper

import (
	"context"
	"testing"
)

// Exercises the container bootstrap end to end: migrations applied,
// foreign keys in place, seed helpers compatible with the live schema.
func TestSetupTestDB_SchemaReady(t *testing.T) {
	pool := SetupTestDB(t)
	ctx := context.Background()

	owner := SeedUser(t, pool)
	album := SeedAlbum(t, pool, "Night Drives", 2021)
	song := SeedSong(t, pool, "Neon Mile", "The Radio Hearts", album.ID)
	playlist := SeedPlaylist(t, pool, owner.ID, "Late Shift")

	var songTitle, albumName string
	err := pool.QueryRow(ctx,
		`SELECT s.title, a.name
		 FROM songs s
		 JOIN albums a ON a.id = s.album_id
		 WHERE s.id = $1`,
		song.ID,
	).Scan(&songTitle, &albumName)
	if err != nil {
		t.Fatalf("song/album join: %v", err)
	}
	if songTitle != "Neon Mile" || albumName != "Night Drives" {
		t.Fatalf("joined row = (%q, %q), want seeded titles", songTitle, albumName)
	}

	var ownerEmail string
	err = pool.QueryRow(ctx,
		`SELECT u.email
		 FROM playlists p
		 JOIN users u ON u.id = p.owner_id
		 WHERE p.id = $1`,
		playlist.ID,
	).Scan(&ownerEmail)
	if err != nil {
		t.Fatalf("playlist/owner join: %v", err)
	}
	if ownerEmail != owner.Email {
		t.Fatalf("owner email = %q, want %q", ownerEmail, owner.Email)
	}
}

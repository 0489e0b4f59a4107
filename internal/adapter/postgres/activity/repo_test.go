package activity

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/require"

	"github.com/harmonia-music/harmonia-backend/internal/domain"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { mock.Close() })
	return mock
}

func TestRepo_Append(t *testing.T) {
	rec := domain.Activity{
		ID:         uuid.New(),
		PlaylistID: uuid.New(),
		SongID:     uuid.New(),
		UserID:     uuid.New(),
		Action:     domain.ActivityActionAdded,
		CreatedAt:  time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}

	t.Run("inserts the record as given", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectExec(`INSERT INTO playlist_song_activities`).
			WithArgs(rec.ID, rec.PlaylistID, rec.SongID, rec.UserID, "added", rec.CreatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		repo := New(mock)
		require.NoError(t, repo.Append(context.Background(), rec))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("fills id and timestamp when zero", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectExec(`INSERT INTO playlist_song_activities`).
			WithArgs(pgxmock.AnyArg(), rec.PlaylistID, rec.SongID, rec.UserID, "deleted", pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		repo := New(mock)
		bare := domain.Activity{
			PlaylistID: rec.PlaylistID,
			SongID:     rec.SongID,
			UserID:     rec.UserID,
			Action:     domain.ActivityActionDeleted,
		}
		require.NoError(t, repo.Append(context.Background(), bare))
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepo_ListByPlaylist(t *testing.T) {
	playlistID := uuid.New()
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	first := domain.Activity{
		ID: uuid.New(), Seq: 1, PlaylistID: playlistID,
		SongID: uuid.New(), UserID: uuid.New(),
		Action: domain.ActivityActionAdded, CreatedAt: base,
	}
	second := domain.Activity{
		ID: uuid.New(), Seq: 2, PlaylistID: playlistID,
		SongID: first.SongID, UserID: first.UserID,
		Action: domain.ActivityActionDeleted, CreatedAt: base,
	}

	mock := newMock(t)
	rows := pgxmock.NewRows([]string{"id", "seq", "playlist_id", "song_id", "user_id", "action", "created_at"}).
		AddRow(first.ID, first.Seq, first.PlaylistID, first.SongID, first.UserID, string(first.Action), first.CreatedAt).
		AddRow(second.ID, second.Seq, second.PlaylistID, second.SongID, second.UserID, string(second.Action), second.CreatedAt)
	mock.ExpectQuery(`SELECT .+ FROM playlist_song_activities .+ ORDER BY created_at ASC, seq ASC`).
		WithArgs(playlistID).
		WillReturnRows(rows)

	repo := New(mock)
	got, err := repo.ListByPlaylist(context.Background(), playlistID)
	require.NoError(t, err)
	require.Equal(t, []domain.Activity{first, second}, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

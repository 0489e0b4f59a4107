package playlist

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/google/uuid"

	"github.com/harmonia-music/harmonia-backend/internal/domain"
)

type playlistRepoMock struct {
	CreateFunc     func(ctx context.Context, name string, ownerID uuid.UUID) (*domain.Playlist, error)
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.Playlist, error)
	ListByUserFunc func(ctx context.Context, userID uuid.UUID) ([]domain.PlaylistWithOwner, error)
	DeleteFunc     func(ctx context.Context, id uuid.UUID) error

	AddCollaboratorFunc    func(ctx context.Context, playlistID, userID uuid.UUID) (uuid.UUID, error)
	RemoveCollaboratorFunc func(ctx context.Context, playlistID, userID uuid.UUID) error
	IsCollaboratorFunc     func(ctx context.Context, playlistID, userID uuid.UUID) (bool, error)
}

func (m *playlistRepoMock) Create(ctx context.Context, name string, ownerID uuid.UUID) (*domain.Playlist, error) {
	return m.CreateFunc(ctx, name, ownerID)
}

func (m *playlistRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Playlist, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *playlistRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.PlaylistWithOwner, error) {
	return m.ListByUserFunc(ctx, userID)
}

func (m *playlistRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	return m.DeleteFunc(ctx, id)
}

func (m *playlistRepoMock) AddCollaborator(ctx context.Context, playlistID, userID uuid.UUID) (uuid.UUID, error) {
	return m.AddCollaboratorFunc(ctx, playlistID, userID)
}

func (m *playlistRepoMock) RemoveCollaborator(ctx context.Context, playlistID, userID uuid.UUID) error {
	return m.RemoveCollaboratorFunc(ctx, playlistID, userID)
}

func (m *playlistRepoMock) IsCollaborator(ctx context.Context, playlistID, userID uuid.UUID) (bool, error) {
	return m.IsCollaboratorFunc(ctx, playlistID, userID)
}

type userRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

func (m *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return m.GetByIDFunc(ctx, id)
}

func newTestService(playlists *playlistRepoMock, users *userRepoMock) *Service {
	return NewService(slog.Default(), playlists, users)
}

func ownedPlaylist(ownerID uuid.UUID) *playlistRepoMock {
	return &playlistRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Playlist, error) {
			return &domain.Playlist{ID: id, Name: "road trip", OwnerID: ownerID}, nil
		},
	}
}

func TestVerifyAccess(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	collaboratorID := uuid.New()
	strangerID := uuid.New()
	playlistID := uuid.New()

	tests := []struct {
		name    string
		actorID uuid.UUID
		wantErr error
	}{
		{name: "owner passes", actorID: ownerID},
		{name: "collaborator passes", actorID: collaboratorID},
		{name: "stranger is forbidden", actorID: strangerID, wantErr: domain.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := ownedPlaylist(ownerID)
			repo.IsCollaboratorFunc = func(ctx context.Context, pid, uid uuid.UUID) (bool, error) {
				return uid == collaboratorID, nil
			}
			svc := newTestService(repo, nil)

			err := svc.VerifyAccess(context.Background(), tt.actorID, playlistID)
			if tt.wantErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestVerifyAccess_MissingPlaylist(t *testing.T) {
	t.Parallel()

	repo := &playlistRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Playlist, error) {
			return nil, fmt.Errorf("playlist %s: %w", id, domain.ErrNotFound)
		},
	}
	svc := newTestService(repo, nil)

	err := svc.VerifyAccess(context.Background(), uuid.New(), uuid.New())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestVerifyOwnership_Collaborator(t *testing.T) {
	t.Parallel()

	// Collaborators have access but not ownership.
	ownerID := uuid.New()
	collaboratorID := uuid.New()

	svc := newTestService(ownedPlaylist(ownerID), nil)

	err := svc.VerifyOwnership(context.Background(), collaboratorID, uuid.New())
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestCreate(t *testing.T) {
	t.Parallel()

	actorID := uuid.New()

	repo := &playlistRepoMock{
		CreateFunc: func(ctx context.Context, name string, ownerID uuid.UUID) (*domain.Playlist, error) {
			return &domain.Playlist{ID: uuid.New(), Name: name, OwnerID: ownerID}, nil
		},
	}
	svc := newTestService(repo, nil)

	p, err := svc.Create(context.Background(), actorID, CreatePlaylistInput{Name: "  road trip  "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != "road trip" {
		t.Errorf("name not trimmed: got %q", p.Name)
	}
	if p.OwnerID != actorID {
		t.Errorf("owner: got %v, want %v", p.OwnerID, actorID)
	}
}

func TestCreate_EmptyName(t *testing.T) {
	t.Parallel()

	svc := newTestService(nil, nil)

	_, err := svc.Create(context.Background(), uuid.New(), CreatePlaylistInput{Name: "   "})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestDelete_OnlyOwner(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	var deleted int

	repo := ownedPlaylist(ownerID)
	repo.DeleteFunc = func(ctx context.Context, id uuid.UUID) error {
		deleted++
		return nil
	}
	svc := newTestService(repo, nil)

	if err := svc.Delete(context.Background(), ownerID, uuid.New()); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if deleted != 1 {
		t.Fatalf("delete calls: got %d, want 1", deleted)
	}

	err := svc.Delete(context.Background(), uuid.New(), uuid.New())
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-owner, got %v", err)
	}
	if deleted != 1 {
		t.Fatalf("delete calls after forbidden: got %d, want 1", deleted)
	}
}

func TestAddCollaborator(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	otherID := uuid.New()
	collabID := uuid.New()

	repo := ownedPlaylist(ownerID)
	repo.AddCollaboratorFunc = func(ctx context.Context, pid, uid uuid.UUID) (uuid.UUID, error) {
		return collabID, nil
	}
	users := &userRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
			return &domain.User{ID: id, Username: "jordan"}, nil
		},
	}
	svc := newTestService(repo, users)

	got, err := svc.AddCollaborator(context.Background(), ownerID, CollaborationInput{PlaylistID: uuid.New(), UserID: otherID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != collabID {
		t.Errorf("collaboration id: got %v, want %v", got, collabID)
	}
}

func TestAddCollaborator_OwnerAsCollaborator(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	svc := newTestService(ownedPlaylist(ownerID), nil)

	_, err := svc.AddCollaborator(context.Background(), ownerID, CollaborationInput{PlaylistID: uuid.New(), UserID: ownerID})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestAddCollaborator_NotOwner(t *testing.T) {
	t.Parallel()

	svc := newTestService(ownedPlaylist(uuid.New()), nil)

	_, err := svc.AddCollaborator(context.Background(), uuid.New(), CollaborationInput{PlaylistID: uuid.New(), UserID: uuid.New()})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/pennyflow/backend/internal/domain/entity"
	domainerror "github.com/pennyflow/backend/internal/domain/error"
)

func TestUserRepository_FindByEmail(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	user := entity.NewUser("ana@example.com", "Ana")
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	t.Run("returns the user for a known email", func(t *testing.T) {
		found, err := repo.FindByEmail(ctx, "ana@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found.ID != user.ID {
			t.Errorf("expected user %s, got %s", user.ID, found.ID)
		}
		if !found.Active {
			t.Error("expected new user to be active")
		}
	})

	t.Run("returns ErrUserNotFound for an unknown email", func(t *testing.T) {
		_, err := repo.FindByEmail(ctx, "nobody@example.com")
		if !errors.Is(err, domainerror.ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})
}

func TestUserRepository_Deactivate(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	user := entity.NewUser("bruno@example.com", "Bruno")
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	t.Run("deactivating an active user reports a modification", func(t *testing.T) {
		modified, err := repo.Deactivate(ctx, user.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !modified {
			t.Error("expected Deactivate to report a modification")
		}

		found, err := repo.FindByID(ctx, user.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found.Active {
			t.Error("expected user to be inactive")
		}
	})

	t.Run("deactivating again reports no modification", func(t *testing.T) {
		modified, err := repo.Deactivate(ctx, user.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if modified {
			t.Error("expected second Deactivate to report no modification")
		}
	})

	t.Run("deactivating an unknown user reports no modification", func(t *testing.T) {
		modified, err := repo.Deactivate(ctx, uuid.New())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if modified {
			t.Error("expected no modification for unknown user")
		}
	})
}

func TestUserRepository_DeleteByID(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	user := entity.NewUser("carla@example.com", "Carla")
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	deleted, err := repo.DeleteByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted != 1 {
		t.Errorf("expected 1 deleted row, got %d", deleted)
	}

	deleted, err = repo.DeleteByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted != 0 {
		t.Errorf("expected 0 deleted rows on repeat, got %d", deleted)
	}
}

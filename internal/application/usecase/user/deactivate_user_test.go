// Package user contains user lifecycle use cases.
package user

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/pennyflow/backend/internal/domain/entity"
	domainerror "github.com/pennyflow/backend/internal/domain/error"
)

func TestDeactivateUserUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("active user is deactivated and notified", func(t *testing.T) {
		repo := newFakeUserRepo()
		existing := entity.NewUser("alice@example.com", "Alice")
		repo.add(existing)
		emails := &fakeEmailService{}
		uc := NewDeactivateUserUseCase(repo, emails)

		output, err := uc.Execute(ctx, DeactivateUserInput{UserID: existing.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.Modified {
			t.Error("expected Modified to be true")
		}
		if repo.users[existing.ID].Active {
			t.Error("expected the user to be inactive")
		}
		if len(emails.deactivated) != 1 {
			t.Fatalf("expected 1 queued notification, got %d", len(emails.deactivated))
		}
		if emails.deactivated[0].UserEmail != "alice@example.com" {
			t.Errorf("expected notification for alice@example.com, got %s", emails.deactivated[0].UserEmail)
		}
	})

	t.Run("unknown user returns UserNotFound", func(t *testing.T) {
		repo := newFakeUserRepo()
		uc := NewDeactivateUserUseCase(repo, &fakeEmailService{})

		_, err := uc.Execute(ctx, DeactivateUserInput{UserID: uuid.New()})
		if err == nil {
			t.Fatal("expected an error for an unknown user")
		}

		var userErr *domainerror.UserError
		if !errors.As(err, &userErr) {
			t.Fatalf("expected a UserError, got %T", err)
		}
		if userErr.Code != domainerror.ErrCodeUserNotFound {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeUserNotFound, userErr.Code)
		}
	})

	t.Run("already-deactivated user reads as not found", func(t *testing.T) {
		repo := newFakeUserRepo()
		existing := entity.NewUser("bob@example.com", "Bob")
		existing.Active = false
		repo.add(existing)
		emails := &fakeEmailService{}
		uc := NewDeactivateUserUseCase(repo, emails)

		_, err := uc.Execute(ctx, DeactivateUserInput{UserID: existing.ID})
		if !errors.Is(err, domainerror.ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
		if len(emails.deactivated) != 0 {
			t.Error("expected no notification for a repeated deactivation")
		}
	})

	t.Run("notification failure does not fail the deactivation", func(t *testing.T) {
		repo := newFakeUserRepo()
		existing := entity.NewUser("carol@example.com", "Carol")
		repo.add(existing)
		emails := &fakeEmailService{queueErr: errors.New("queue unavailable")}
		uc := NewDeactivateUserUseCase(repo, emails)

		output, err := uc.Execute(ctx, DeactivateUserInput{UserID: existing.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Modified {
			t.Error("expected Modified to be true despite the email failure")
		}
	})

	t.Run("nil email service is tolerated", func(t *testing.T) {
		repo := newFakeUserRepo()
		existing := entity.NewUser("dave@example.com", "Dave")
		repo.add(existing)
		uc := NewDeactivateUserUseCase(repo, nil)

		output, err := uc.Execute(ctx, DeactivateUserInput{UserID: existing.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Modified {
			t.Error("expected Modified to be true")
		}
	})
}

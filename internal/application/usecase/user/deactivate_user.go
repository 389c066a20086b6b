// Package user contains user lifecycle use cases.
package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pennyflow/backend/internal/application/adapter"
	domainerror "github.com/pennyflow/backend/internal/domain/error"
)

// DeactivateUserInput represents the input for account deactivation.
type DeactivateUserInput struct {
	UserID uuid.UUID
}

// DeactivateUserOutput represents the output of account deactivation.
type DeactivateUserOutput struct {
	// Modified reports whether the record actually changed. It is false only
	// when the flag was flipped by another request between the find and the
	// update.
	Modified bool
}

// DeactivateUserUseCase handles account deactivation logic.
type DeactivateUserUseCase struct {
	userRepo     adapter.UserRepository
	emailService adapter.EmailService
}

// NewDeactivateUserUseCase creates a new DeactivateUserUseCase instance.
func NewDeactivateUserUseCase(userRepo adapter.UserRepository, emailService adapter.EmailService) *DeactivateUserUseCase {
	return &DeactivateUserUseCase{
		userRepo:     userRepo,
		emailService: emailService,
	}
}

// Execute performs the account deactivation.
func (uc *DeactivateUserUseCase) Execute(ctx context.Context, input DeactivateUserInput) (*DeactivateUserOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, domainerror.NewUserError(
				domainerror.ErrCodeUserNotFound,
				"user not found",
				domainerror.ErrUserNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	// An already-inactive account is indistinguishable from a missing one
	// for this operation.
	if !user.Active {
		return nil, domainerror.NewUserError(
			domainerror.ErrCodeUserNotFound,
			"user not found",
			domainerror.ErrUserNotFound,
		)
	}

	modified, err := uc.userRepo.Deactivate(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to deactivate user: %w", err)
	}

	// Best-effort notification; the deactivation itself already succeeded.
	if uc.emailService != nil {
		if err := uc.emailService.QueueAccountDeactivatedEmail(ctx, adapter.QueueLifecycleEmailInput{
			UserEmail: user.Email,
			UserName:  user.Name,
		}); err != nil {
			slog.Warn("Failed to queue account-deactivated email", "user_id", input.UserID, "error", err)
		}
	}

	return &DeactivateUserOutput{Modified: modified}, nil
}

// Package user contains user lifecycle use cases.
package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/badoux/checkmail"

	"github.com/pennyflow/backend/internal/application/adapter"
	"github.com/pennyflow/backend/internal/domain/entity"
	domainerror "github.com/pennyflow/backend/internal/domain/error"
)

// LoginUserInput represents the input for user login.
type LoginUserInput struct {
	Email string
	Name  string
}

// LoginUserOutput represents the output of user login.
type LoginUserOutput struct {
	User    *entity.User
	Created bool
}

// LoginUserUseCase handles login against an externally asserted identity.
// An unseen email provisions a new active user; a deactivated account is
// rejected without mutation.
type LoginUserUseCase struct {
	userRepo adapter.UserRepository
}

// NewLoginUserUseCase creates a new LoginUserUseCase instance.
func NewLoginUserUseCase(userRepo adapter.UserRepository) *LoginUserUseCase {
	return &LoginUserUseCase{
		userRepo: userRepo,
	}
}

// Execute performs the user login.
func (uc *LoginUserUseCase) Execute(ctx context.Context, input LoginUserInput) (*LoginUserOutput, error) {
	if err := checkmail.ValidateFormat(input.Email); err != nil {
		return nil, domainerror.NewUserError(
			domainerror.ErrCodeInvalidEmail,
			"invalid email format",
			domainerror.ErrInvalidEmail,
		)
	}

	existing, err := uc.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if !errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, fmt.Errorf("failed to look up user by email: %w", err)
		}

		// First login with this email: provision a new active user. The
		// unique index on email closes the concurrent first-login race.
		newUser := entity.NewUser(input.Email, input.Name)
		if err := uc.userRepo.Create(ctx, newUser); err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}

		return &LoginUserOutput{User: newUser, Created: true}, nil
	}

	if !existing.Active {
		return nil, domainerror.NewUserError(
			domainerror.ErrCodeAccountDeactivated,
			"this account is deactivated, please contact support",
			domainerror.ErrAccountDeactivated,
		)
	}

	return &LoginUserOutput{User: existing, Created: false}, nil
}

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

// PurgeAccountInput represents the input for a full account purge.
type PurgeAccountInput struct {
	UserID uuid.UUID
}

// PurgeAccountOutput carries the number of rows removed per collection.
type PurgeAccountOutput struct {
	Transactions int64
	Budgets      int64
	Categories   int64
	Users        int64
}

// PurgeAccountUseCase permanently deletes a user and every record they own.
// The deletions are not wrapped in a cross-collection transaction: deleting
// an already-absent set of records is a no-op, so the remediation for a
// partial failure is to re-run the whole purge.
type PurgeAccountUseCase struct {
	userRepo        adapter.UserRepository
	categoryRepo    adapter.CategoryRepository
	transactionRepo adapter.TransactionRepository
	budgetRepo      adapter.BudgetRepository
	tokenService    adapter.TokenService
	emailService    adapter.EmailService
}

// NewPurgeAccountUseCase creates a new PurgeAccountUseCase instance.
func NewPurgeAccountUseCase(
	userRepo adapter.UserRepository,
	categoryRepo adapter.CategoryRepository,
	transactionRepo adapter.TransactionRepository,
	budgetRepo adapter.BudgetRepository,
	tokenService adapter.TokenService,
	emailService adapter.EmailService,
) *PurgeAccountUseCase {
	return &PurgeAccountUseCase{
		userRepo:        userRepo,
		categoryRepo:    categoryRepo,
		transactionRepo: transactionRepo,
		budgetRepo:      budgetRepo,
		tokenService:    tokenService,
		emailService:    emailService,
	}
}

// Execute performs the account purge and returns per-entity deletion counts.
func (uc *PurgeAccountUseCase) Execute(ctx context.Context, input PurgeAccountInput) (*PurgeAccountOutput, error) {
	// The farewell email has to be queued before the user record is gone.
	// A retried purge finds no user and skips the notification.
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil && !errors.Is(err, domainerror.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if uc.tokenService != nil {
		if err := uc.tokenService.InvalidateAllUserTokens(ctx, input.UserID); err != nil {
			return nil, fmt.Errorf("failed to invalidate user tokens: %w", err)
		}
	}

	output := &PurgeAccountOutput{}

	output.Transactions, err = uc.transactionRepo.DeleteByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete transactions: %w", err)
	}

	output.Budgets, err = uc.budgetRepo.DeleteByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete budgets: %w", err)
	}

	output.Categories, err = uc.categoryRepo.DeleteByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete categories: %w", err)
	}

	output.Users, err = uc.userRepo.DeleteByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete user: %w", err)
	}

	if user != nil && uc.emailService != nil {
		if err := uc.emailService.QueueAccountPurgedEmail(ctx, adapter.QueueLifecycleEmailInput{
			UserEmail: user.Email,
			UserName:  user.Name,
		}); err != nil {
			slog.Warn("Failed to queue account-purged email", "user_id", input.UserID, "error", err)
		}
	}

	slog.Info("Account purged",
		"user_id", input.UserID,
		"transactions", output.Transactions,
		"budgets", output.Budgets,
		"categories", output.Categories,
		"users", output.Users,
	)

	return output, nil
}

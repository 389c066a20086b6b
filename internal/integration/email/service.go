// Package email provides email sending functionality.
package email

import (
	"context"

	"github.com/pennyflow/backend/internal/application/adapter"
	"github.com/pennyflow/backend/internal/domain/entity"
	domainerror "github.com/pennyflow/backend/internal/domain/error"
)

// Service handles email queueing operations.
type Service struct {
	queue      adapter.EmailQueueRepository
	appBaseURL string
}

// NewService creates a new email service.
func NewService(queue adapter.EmailQueueRepository, appBaseURL string) *Service {
	return &Service{
		queue:      queue,
		appBaseURL: appBaseURL,
	}
}

// QueueAccountDeactivatedEmail queues the notification sent after an account
// is deactivated.
func (s *Service) QueueAccountDeactivatedEmail(ctx context.Context, input adapter.QueueLifecycleEmailInput) error {
	subject := "Your account has been deactivated - Pennyflow"

	templateData := map[string]interface{}{
		"user_name":   input.UserName,
		"support_url": s.appBaseURL + "/support",
	}

	job := entity.NewEmailJob(
		entity.TemplateAccountDeactivated,
		input.UserEmail,
		input.UserName,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue account deactivated email",
			err,
		)
	}

	return nil
}

// QueueAccountPurgedEmail queues the final confirmation sent after an account
// and all its data are permanently deleted.
func (s *Service) QueueAccountPurgedEmail(ctx context.Context, input adapter.QueueLifecycleEmailInput) error {
	subject := "Your account has been deleted - Pennyflow"

	templateData := map[string]interface{}{
		"user_name": input.UserName,
	}

	job := entity.NewEmailJob(
		entity.TemplateAccountPurged,
		input.UserEmail,
		input.UserName,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue account purged email",
			err,
		)
	}

	return nil
}

// Ensure Service implements adapter.EmailService.
var _ adapter.EmailService = (*Service)(nil)

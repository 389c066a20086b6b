// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
)

// SendEmailInput represents the input for sending an email.
type SendEmailInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult represents the result of sending an email.
type SendEmailResult struct {
	ResendID string
}

// EmailSender defines the interface for sending emails via an external provider.
type EmailSender interface {
	// Send sends an email via the email provider (e.g., Resend).
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// EmailService defines the interface for queueing lifecycle notification emails.
type EmailService interface {
	// QueueAccountDeactivatedEmail queues the notification sent after an
	// account is deactivated.
	QueueAccountDeactivatedEmail(ctx context.Context, input QueueLifecycleEmailInput) error

	// QueueAccountPurgedEmail queues the final confirmation sent after an
	// account and all its data are permanently deleted.
	QueueAccountPurgedEmail(ctx context.Context, input QueueLifecycleEmailInput) error
}

// QueueLifecycleEmailInput represents the input for queueing a lifecycle email.
type QueueLifecycleEmailInput struct {
	UserEmail string
	UserName  string
}

package adapter

import (
	"context"
)

// SendEmailInput is one outbound email, rendered and ready to send.
type SendEmailInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult carries the provider's ID for a delivered email.
type SendEmailResult struct {
	ResendID string
}

// EmailSender delivers a rendered email through the mail provider.
type EmailSender interface {
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// EmailService enqueues domain emails for background delivery.
type EmailService interface {
	QueuePasswordResetEmail(ctx context.Context, input QueuePasswordResetInput) error
}

// QueuePasswordResetInput describes a password reset email to enqueue.
type QueuePasswordResetInput struct {
	UserID    string
	UserEmail string
	UserName  string
	ResetURL  string
	ExpiresIn string
}

package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finansync/backend/internal/domain/entity"
)

// EmailQueueRepository is the durable queue behind outbound mail. The
// API enqueues jobs; the worker polls, sends and updates them.
type EmailQueueRepository interface {
	// Create adds a new email job to the queue.
	Create(ctx context.Context, job *entity.EmailJob) error

	// GetPendingJobs retrieves due jobs ordered by scheduled time.
	GetPendingJobs(ctx context.Context, limit int) ([]*entity.EmailJob, error)

	// Update saves changes to an email job.
	Update(ctx context.Context, job *entity.EmailJob) error

	// GetByID retrieves a job by its ID.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.EmailJob, error)

	// GetByRecipient retrieves jobs addressed to an email, newest first.
	GetByRecipient(ctx context.Context, email string) ([]*entity.EmailJob, error)

	// DeleteOldSentJobs prunes sent jobs older than the given number of
	// days and reports how many were removed.
	DeleteOldSentJobs(ctx context.Context, olderThanDays int) (int64, error)
}

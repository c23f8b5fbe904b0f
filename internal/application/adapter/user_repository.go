package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finansync/backend/internal/domain/entity"
)

// UserRepository persists user accounts. Emails are unique across the
// table.
type UserRepository interface {
	// Create creates a new user in the database.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a user by email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Update updates an existing user in the database.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes a user and, through cascades, everything they own.
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsByEmail reports whether an account already uses the email.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/pulsecheck-app/pulsecheck-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store. It hashes the plaintext password
	// before persisting and clears it from the entity.
	// Returns ErrEmailExists if the email is already taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByEmail retrieves a user by their email address.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// WithTx returns a UserStore bound to the given transaction, so several
	// operations can run atomically under a caller-managed transaction.
	WithTx(tx *sql.Tx) UserStore
}

package ports

import (
	"context"

	"github.com/ezelectronics/server/internal/core/domain"
)

// UserRepository defines the interface for durable account persistence.
// Implementations own credential hashing and translate storage-level
// integrity violations into domain errors; they have no authorization
// awareness.
type UserRepository interface {
	// Create hashes the plaintext password with a fresh random salt and
	// stores a new account. Returns domain.ErrUserExists on a username
	// collision.
	Create(ctx context.Context, username, name, surname, password string, role domain.Role) error

	// GetAll returns every account, in storage order.
	GetAll(ctx context.Context) ([]*domain.User, error)

	// GetAllByRole returns every account holding the given role.
	GetAllByRole(ctx context.Context, role domain.Role) ([]*domain.User, error)

	// GetByUsername returns exactly one account, or domain.ErrUserNotFound.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)

	// Update mutates name, surname, address and birthdate of the identified
	// account; role and credential are untouched. A nil address or birthdate
	// writes SQL NULL. Returns the fresh post-update record, or
	// domain.ErrUserNotFound when no row was affected.
	Update(ctx context.Context, username, name, surname string, address, birthdate *string) (*domain.User, error)

	// Delete removes exactly one account, or returns domain.ErrUserNotFound.
	Delete(ctx context.Context, username string) error

	// DeleteAllNonAdmins removes every account whose role is not Admin.
	// An empty result set is not an error.
	DeleteAllNonAdmins(ctx context.Context) error

	// CheckCredentials verifies a username/password pair against the stored
	// credential and returns the matching account. Returns
	// domain.ErrInvalidCredentials on mismatch, domain.ErrUserNotFound when
	// the username is unknown.
	CheckCredentials(ctx context.Context, username, password string) (*domain.User, error)
}

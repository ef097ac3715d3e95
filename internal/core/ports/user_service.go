package ports

import (
	"context"

	"github.com/ezelectronics/server/internal/core/domain"
)

// UserService is the authorization-aware account management layer. Every
// operation except CreateUser receives the authenticated caller resolved by
// the auth boundary; the service evaluates access-control and validity rules
// before delegating to the repository, and performs zero storage calls once
// a rejection is determined.
type UserService interface {
	// CreateUser registers a new account. Unauthenticated: anyone may
	// self-register. The role is validated against the closed set before any
	// storage call.
	CreateUser(ctx context.Context, username, name, surname, password, role string) error

	// GetUsers returns every account. Admin-only.
	GetUsers(ctx context.Context, caller *domain.User) ([]*domain.User, error)

	// GetUsersByRole returns every account holding the given role. Admin-only.
	GetUsersByRole(ctx context.Context, caller *domain.User, role string) ([]*domain.User, error)

	// GetUserByUsername returns a single account. Admins may look up anyone;
	// other callers only themselves.
	GetUserByUsername(ctx context.Context, caller *domain.User, username string) (*domain.User, error)

	// UpdateUserInfo mutates name, surname, address and birthdate of the
	// target account and returns its fresh state. Birthdate validity is
	// checked before anything else; non-admins may only update themselves;
	// admins may update anyone except another admin.
	UpdateUserInfo(ctx context.Context, caller *domain.User, name, surname string, address, birthdate *string, username string) (*domain.User, error)

	// DeleteUser removes the target account. Non-admins may only delete
	// themselves; admins may delete anyone except an admin.
	DeleteUser(ctx context.Context, caller *domain.User, username string) error

	// DeleteAll removes every non-admin account. Admin-only access is
	// enforced at the HTTP boundary.
	DeleteAll(ctx context.Context) error
}

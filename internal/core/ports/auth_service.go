package ports

import (
	"context"

	"github.com/ezelectronics/server/internal/core/domain"
)

// AuthService handles session lifecycle at the boundary: credential
// verification, token issuance and revocation.
type AuthService interface {
	// Login verifies the credentials and returns a signed session token plus
	// the authenticated account.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)

	// Logout revokes the given token for the remainder of its lifetime.
	Logout(ctx context.Context, token string) error
}

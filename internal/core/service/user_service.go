package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/ezelectronics/server/internal/core/domain"
	"github.com/ezelectronics/server/internal/core/ports"
)

const dateLayout = "2006-01-02"

// UserService enforces the account access-control policy on top of the
// repository. It holds no cross-call state; each call re-fetches and
// re-validates as needed. Once a rejection is determined no storage call is
// made.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

// CreateUser registers a new account. No authorization check: anyone may
// self-register. The role is validated before the repository is touched.
func (s *UserService) CreateUser(ctx context.Context, username, name, surname, password, role string) error {
	parsedRole, err := domain.ParseRole(role)
	if err != nil {
		return err
	}

	if err := s.repo.Create(ctx, username, name, surname, password, parsedRole); err != nil {
		return err
	}

	s.logger.Info().Str("username", username).Str("role", role).Msg("user created")
	return nil
}

// GetUsers returns every account. Admin-only.
func (s *UserService) GetUsers(ctx context.Context, caller *domain.User) ([]*domain.User, error) {
	if !caller.Role.IsAdmin() {
		return nil, domain.ErrUnauthorizedUser
	}
	return s.repo.GetAll(ctx)
}

// GetUsersByRole returns every account holding the given role. Admin-only.
func (s *UserService) GetUsersByRole(ctx context.Context, caller *domain.User, role string) ([]*domain.User, error) {
	if !caller.Role.IsAdmin() {
		return nil, domain.ErrUnauthorizedUser
	}
	parsedRole, err := domain.ParseRole(role)
	if err != nil {
		return nil, err
	}
	return s.repo.GetAllByRole(ctx, parsedRole)
}

// GetUserByUsername returns one account. Admins may look up anyone; any
// other caller only themselves, rejected before the lookup otherwise.
func (s *UserService) GetUserByUsername(ctx context.Context, caller *domain.User, username string) (*domain.User, error) {
	if !caller.Role.IsAdmin() && username != caller.Username {
		return nil, domain.ErrUnauthorizedUser
	}
	return s.repo.GetByUsername(ctx, username)
}

// UpdateUserInfo mutates the profile fields of the target account and returns
// its fresh state. Rule order is load-bearing: birthdate validity first,
// then self-vs-admin authorization, then target existence, then the
// admin-vs-admin conflict, and only then the update itself.
func (s *UserService) UpdateUserInfo(ctx context.Context, caller *domain.User, name, surname string, address, birthdate *string, username string) (*domain.User, error) {
	if birthdate != nil {
		if _, err := ValidDate(*birthdate); err != nil {
			return nil, err
		}
	}

	if !caller.Role.IsAdmin() {
		if username != caller.Username {
			return nil, domain.ErrUnauthorizedUser
		}
		// Self-update applies directly to the caller's own record.
		return s.repo.Update(ctx, username, name, surname, address, birthdate)
	}

	if username != caller.Username {
		target, err := s.repo.GetByUsername(ctx, username)
		if err != nil {
			return nil, err
		}
		if target.Role.IsAdmin() {
			return nil, domain.ErrUserIsAdmin
		}
	}

	return s.repo.Update(ctx, username, name, surname, address, birthdate)
}

// DeleteUser removes the target account. Non-admins may only delete
// themselves; admins may delete anyone except an admin (their own account
// included).
func (s *UserService) DeleteUser(ctx context.Context, caller *domain.User, username string) error {
	if !caller.Role.IsAdmin() {
		if username != caller.Username {
			return domain.ErrUserNotAdmin
		}
		return s.repo.Delete(ctx, username)
	}

	target, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if target.Role.IsAdmin() {
		return domain.ErrUserIsAdmin
	}

	if err := s.repo.Delete(ctx, username); err != nil {
		return err
	}
	s.logger.Info().Str("username", username).Str("deleted_by", caller.Username).Msg("user deleted")
	return nil
}

// DeleteAll removes every non-admin account. Admin-only access is enforced
// by the RBAC middleware at the boundary, not re-checked here.
func (s *UserService) DeleteAll(ctx context.Context) error {
	if err := s.repo.DeleteAllNonAdmins(ctx); err != nil {
		return err
	}
	s.logger.Info().Msg("all non-admin users deleted")
	return nil
}

// ValidDate parses a YYYY-MM-DD calendar string and rejects days strictly
// after today. The comparison is between calendar days in the local zone,
// not instants, so today is accepted for the whole local day. Returns the
// input unchanged when valid.
func ValidDate(s string) (string, error) {
	d, err := time.ParseInLocation(dateLayout, s, time.Local)
	if err != nil {
		return "", domain.ErrInvalidDate
	}
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	if d.After(today) {
		return "", domain.ErrInvalidDate
	}
	return s, nil
}

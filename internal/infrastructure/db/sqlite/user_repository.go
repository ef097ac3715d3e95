package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sqlitedrv "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/ezelectronics/server/internal/core/domain"
)

// SQLiteUserRepository implements ports.UserRepository on the shared SQLite
// handle. It is the exclusive owner of the users table and of credential
// hashing; it has no authorization awareness.
type SQLiteUserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *SQLiteUserRepository {
	return &SQLiteUserRepository{db: db}
}

func (r *SQLiteUserRepository) Create(ctx context.Context, username, name, surname, password string, role domain.Role) error {
	salt, err := newSalt()
	if err != nil {
		return err
	}
	hash, err := hashPassword(password, salt)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx,
		"INSERT INTO users (username, name, surname, role, password_hash, salt) VALUES (?, ?, ?, ?, ?, ?)",
		username, name, surname, string(role), hash, salt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUserExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *SQLiteUserRepository) GetAll(ctx context.Context) ([]*domain.User, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT username, name, surname, role, address, birthdate FROM users")
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()
	return scanUsers(rows)
}

func (r *SQLiteUserRepository) GetAllByRole(ctx context.Context, role domain.Role) ([]*domain.User, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT username, name, surname, role, address, birthdate FROM users WHERE role = ?",
		string(role),
	)
	if err != nil {
		return nil, fmt.Errorf("query users by role: %w", err)
	}
	defer rows.Close()
	return scanUsers(rows)
}

func (r *SQLiteUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT username, name, surname, role, address, birthdate FROM users WHERE username = ?",
		username,
	)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("query user: %w", err)
	}
	return u, nil
}

func (r *SQLiteUserRepository) Update(ctx context.Context, username, name, surname string, address, birthdate *string) (*domain.User, error) {
	res, err := r.db.ExecContext(ctx,
		"UPDATE users SET name = ?, surname = ?, address = ?, birthdate = ? WHERE username = ?",
		name, surname, toNullString(address), toNullString(birthdate), username,
	)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("update user: rows affected: %w", err)
	}
	if affected == 0 {
		return nil, domain.ErrUserNotFound
	}

	// Return the fresh post-update state.
	return r.GetByUsername(ctx, username)
}

func (r *SQLiteUserRepository) Delete(ctx context.Context, username string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM users WHERE username = ?", username)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete user: rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *SQLiteUserRepository) DeleteAllNonAdmins(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM users WHERE role <> ?", string(domain.RoleAdmin))
	if err != nil {
		return fmt.Errorf("delete users: %w", err)
	}
	return nil
}

func (r *SQLiteUserRepository) CheckCredentials(ctx context.Context, username, password string) (*domain.User, error) {
	var (
		u               domain.User
		roleRaw         string
		addr, birthdate sql.NullString
		hash, salt      []byte
	)
	err := r.db.QueryRowContext(ctx,
		"SELECT username, name, surname, role, address, birthdate, password_hash, salt FROM users WHERE username = ?",
		username,
	).Scan(&u.Username, &u.Name, &u.Surname, &roleRaw, &addr, &birthdate, &hash, &salt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("query credentials: %w", err)
	}

	ok, err := verifyPassword(password, salt, hash)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}

	u.Role = domain.Role(roleRaw)
	u.Address = fromNullString(addr)
	u.Birthdate = fromNullString(birthdate)
	return &u, nil
}

// ---------------------------------------------------------------------------
// Scanning helpers
// ---------------------------------------------------------------------------

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var (
		u               domain.User
		roleRaw         string
		addr, birthdate sql.NullString
	)
	if err := row.Scan(&u.Username, &u.Name, &u.Surname, &roleRaw, &addr, &birthdate); err != nil {
		return nil, err
	}
	u.Role = domain.Role(roleRaw)
	u.Address = fromNullString(addr)
	u.Birthdate = fromNullString(birthdate)
	return &u, nil
}

func scanUsers(rows *sql.Rows) ([]*domain.User, error) {
	users := make([]*domain.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return users, nil
}

func toNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func fromNullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func isUniqueViolation(err error) bool {
	var liteErr *sqlitedrv.Error
	if !errors.As(err, &liteErr) {
		return false
	}
	switch liteErr.Code() {
	case sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3.SQLITE_CONSTRAINT_UNIQUE:
		return true
	default:
		return false
	}
}

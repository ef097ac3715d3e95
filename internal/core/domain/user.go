package domain

// Role is the closed set of account roles. Fixed at creation, never changed
// by any operation.
type Role string

const (
	RoleCustomer Role = "Customer"
	RoleManager  Role = "Manager"
	RoleAdmin    Role = "Admin"
)

// ParseRole validates a raw role string against the recognized set.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleCustomer, RoleManager, RoleAdmin:
		return Role(s), nil
	default:
		return "", ErrInvalidRole
	}
}

// IsAdmin reports whether the role grants administrative access.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// User models a persisted account. Address and Birthdate are optional: a nil
// pointer means the field is absent (stored as SQL NULL), distinct from an
// explicitly empty string. Credential material (salt, password hash) never
// leaves the persistence layer and is deliberately not part of this struct.
type User struct {
	Username  string  `json:"username"`
	Name      string  `json:"name"`
	Surname   string  `json:"surname"`
	Role      Role    `json:"role"`
	Address   *string `json:"address"`
	Birthdate *string `json:"birthdate"`
}

package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type createUserRequest struct {
	Username string `json:"username" validate:"required"`
	Name     string `json:"name"     validate:"required"`
	Surname  string `json:"surname"  validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"     validate:"required,oneof=Customer Manager Admin"`
}

// Address and Birthdate are optional: omitted in the request body means the
// stored field is cleared to its absent (null) state, while an explicit empty
// string is stored as such.
type updateUserRequest struct {
	Name      string  `json:"name"      validate:"required"`
	Surname   string  `json:"surname"   validate:"required"`
	Address   *string `json:"address"`
	Birthdate *string `json:"birthdate" validate:"omitempty,datetime=2006-01-02"`
}

package domain

import "errors"

// Account errors.
var (
	ErrUserExists       = errors.New("user already exists")
	ErrUserNotFound     = errors.New("user not found")
	ErrUnauthorizedUser = errors.New("unauthorized access to user")
	ErrUserNotAdmin     = errors.New("caller is not an admin")
	ErrUserIsAdmin      = errors.New("target user is an admin")
	ErrInvalidRole      = errors.New("invalid role")
	ErrInvalidDate      = errors.New("invalid date")
)

// Session errors.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Product errors.
var (
	ErrProductExists   = errors.New("product already exists")
	ErrProductNotFound = errors.New("product not found")
	ErrEmptyProduct    = errors.New("product stock is empty")
	ErrInvalidCategory = errors.New("invalid category")
)

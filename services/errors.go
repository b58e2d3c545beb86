package services

import "errors"

// Common errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrActivityNotFound   = errors.New("activity not found")
	ErrMissingFields      = errors.New("nome, email and senha are required")
	ErrPasswordTooShort   = errors.New("password must have at least 6 characters")
	ErrPasswordTooLong    = errors.New("password must have at most 72 bytes")
	ErrEmailInUse         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTitleRequired      = errors.New("title is required")
	ErrInvalidDate        = errors.New("invalid date")
	ErrMissingSecret      = errors.New("token signing secret not configured")
	ErrInvalidToken       = errors.New("invalid token")
)

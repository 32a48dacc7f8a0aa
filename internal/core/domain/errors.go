package domain

import "errors"

var (
	ErrNotFound        = errors.New("resource not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrForbidden       = errors.New("access forbidden")
	ErrUnauthenticated = errors.New("authentication required")

	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountInactive    = errors.New("account inactive")
	ErrSessionNotFound    = errors.New("session not found")

	ErrAlreadyDischarged = errors.New("patient already discharged")
)

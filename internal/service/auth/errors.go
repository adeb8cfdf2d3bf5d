package auth

import "errors"

var (
	// ErrInvalidCredentials is returned on any username/password mismatch.
	// Deliberately indistinguishable from an unknown username.
	ErrInvalidCredentials = errors.New("auth: invalid credentials")

	// ErrInvalidInput is returned on empty username or password.
	ErrInvalidInput = errors.New("auth: invalid input data")

	// ErrInternal is returned on storage failures.
	ErrInternal = errors.New("auth: internal error")
)

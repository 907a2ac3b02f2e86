package store

import "errors"

var (
	// ErrEmailTaken means the email already belongs to a registered user.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials deliberately covers both unknown email and
	// wrong password so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrNotFound covers both a missing quote and a quote owned by
	// someone else; the two are indistinguishable to the caller.
	ErrNotFound = errors.New("quote not found")
)

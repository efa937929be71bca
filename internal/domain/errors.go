package domain

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrDuplicateEmail   = errors.New("email already registered")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrInvalidInput     = errors.New("invalid input")
	ErrAlreadyRequested = errors.New("listing already requested")
	ErrOwnListing       = errors.New("cannot request own listing")
	ErrAlreadyHandled   = errors.New("request already handled")
)

package domain

import "errors"

var (
	// ErrUnauthorized covers missing/invalid sessions and failed role gates.
	ErrUnauthorized = errors.New("unauthorized access")

	// ErrForbidden means the caller is authenticated but acting on another
	// identity's data.
	ErrForbidden = errors.New("forbidden access")

	ErrNotFound = errors.New("record not found")
)

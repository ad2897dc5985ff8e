package services

import "errors"

var (
	// ErrInvalidArgument reports a missing or empty required field
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrForbidden reports a failed authorization check
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidCredentials reports a failed login attempt
	ErrInvalidCredentials = errors.New("invalid credentials")
)

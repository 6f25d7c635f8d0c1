package service

import "errors"

var (
	// ErrUserNotFound is returned when upstream has no user with the
	// requested id, or returned an empty record for it.
	ErrUserNotFound = errors.New("user not found")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

package domain

import "errors"

// Sentinel errors returned by repositories and services. Controllers map
// these onto the HTTP error contract.
var (
	ErrNotFound          = errors.New("not found")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrDuplicateUserName = errors.New("user_name already taken for this event")
	ErrDuplicateID       = errors.New("identifier already exists")
	ErrInvalidInput      = errors.New("invalid input")
)

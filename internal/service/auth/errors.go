package auth

import "errors"

var (
	ErrMissingCredentials    = errors.New("phone and password are required")
	ErrMissingRequiredFields = errors.New("missing required fields")
)

package services

import "errors"

var (
	ErrMissingField       = errors.New("required field missing")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrSignupRejected     = errors.New("signup failed, email may already be in use")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidResetToken  = errors.New("invalid token or server error")
	ErrEmptyQuery         = errors.New("empty search query")
)

package domain

import "errors"

var (
	ErrNotFound           = errors.New("resource not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserInactive       = errors.New("user is inactive")
	ErrDuplicateEmail     = errors.New("email already exists")
	ErrInsufficientRole   = errors.New("insufficient role for this action")

	ErrPersonaInactive  = errors.New("persona is inactive")
	ErrSessionCompleted = errors.New("simulation session already completed")
	ErrEmptyMessage     = errors.New("message content is empty")

	ErrAnswerCountInvalid = errors.New("answer count does not match question count")

	ErrPasswordResetTokenInvalid = errors.New("password reset token is invalid or expired")

	ErrModelUnavailable = errors.New("all language model providers are unavailable")
)

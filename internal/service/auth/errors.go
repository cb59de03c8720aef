package auth

import "errors"

var (
	ErrInvalidToken      = errors.New("invalid or expired token")
	ErrTokenGenerateFail = errors.New("failed to generate tokens")
	ErrUnexpected        = errors.New("unexpected error")
)

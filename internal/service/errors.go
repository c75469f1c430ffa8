package service

import (
	"errors"
	"fmt"
)

// Boundary errors. Transport maps these to HTTP statuses; anything
// else becomes a generic 500.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("token is invalid or expired")
	ErrNotFound           = errors.New("not found")
)

func invalidInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

func notFound(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

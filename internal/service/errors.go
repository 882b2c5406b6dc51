package service

import (
	"errors"
	"fmt"

	"github.com/JonnyWalker81/daybook/backend/internal/repository"
)

var (
	// ErrNotFound indicates the resource does not exist or is not visible to the caller
	ErrNotFound = errors.New("not found")
	// ErrForbidden indicates the caller acted on behalf of another user
	ErrForbidden = errors.New("forbidden")
	// ErrConflict indicates a client-supplied id that is already taken
	ErrConflict = errors.New("conflict")
	// ErrInvalidInput indicates a request value the binding layer could not reject
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidCredentials indicates a failed password sign-in
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrLoginUnavailable indicates password sign-in is not configured
	ErrLoginUnavailable = errors.New("password login is not configured")
)

// notFound translates a repository miss into ErrNotFound and wraps anything
// else with the failed action.
func notFound(err error, action string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}

func invalidInput(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

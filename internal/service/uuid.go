package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrInvalidUUID indicates the string is not a valid UUID format
	ErrInvalidUUID = errors.New("invalid UUID format")
	// ErrNotUUIDv7 indicates the UUID is not version 7
	ErrNotUUIDv7 = errors.New("UUID must be version 7")
	// ErrFutureTimestamp indicates the UUIDv7 timestamp is too far in the future
	ErrFutureTimestamp = errors.New("UUID timestamp is too far in the future")
)

// MaxClockSkew is how far ahead of the server a client-generated id may be
const MaxClockSkew = time.Minute

// NewID returns a time-ordered UUIDv7 for a new record.
func NewID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// ValidateUUIDv7 checks that a client-supplied id is a UUIDv7 whose embedded
// timestamp is not more than MaxClockSkew ahead of now.
// Returns nil if valid, or ErrInvalidUUID, ErrNotUUIDv7, or ErrFutureTimestamp.
func ValidateUUIDv7(id string, now time.Time) error {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidUUID, err)
	}

	if parsed.Version() != 7 {
		return fmt.Errorf("%w: got version %d", ErrNotUUIDv7, parsed.Version())
	}

	timestamp := UUIDv7Time(parsed)
	if timestamp.After(now.Add(MaxClockSkew)) {
		return fmt.Errorf("%w: %v is more than %v ahead",
			ErrFutureTimestamp, timestamp.Format(time.RFC3339), MaxClockSkew)
	}

	return nil
}

// UUIDv7Time extracts the embedded Unix millisecond timestamp.
func UUIDv7Time(id uuid.UUID) time.Time {
	sec, nsec := id.Time().UnixTime()
	return time.Unix(sec, nsec).UTC()
}

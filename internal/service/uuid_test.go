package service

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

// newUUIDv7AtTime creates a UUIDv7 with a specific timestamp: 48 bits of
// Unix milliseconds, the version nibble, the variant bits, then fixed bytes.
func newUUIDv7AtTime(t time.Time) uuid.UUID {
	var id uuid.UUID

	ms := uint64(t.UnixMilli())
	for i := 0; i < 6; i++ {
		id[i] = byte(ms >> (40 - 8*i))
	}
	id[6] = 0x70
	id[8] = 0x80
	id[15] = 0x01

	return id
}

func TestValidateUUIDv7(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		id      string
		at      time.Time
		wantErr error
	}{
		{"generated id", NewID(), time.Now(), nil},
		{"past timestamp", newUUIDv7AtTime(now.Add(-24 * time.Hour)).String(), now, nil},
		{"within skew", newUUIDv7AtTime(now.Add(30 * time.Second)).String(), now, nil},
		{"too far ahead", newUUIDv7AtTime(now.Add(5 * time.Minute)).String(), now, ErrFutureTimestamp},
		{"version 4", uuid.New().String(), now, ErrNotUUIDv7},
		{"garbage", "not-a-uuid", now, ErrInvalidUUID},
		{"empty", "", now, ErrInvalidUUID},
		{"truncated", "019471a0-0000-7000-8000-", now, ErrInvalidUUID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUUIDv7(tt.id, tt.at)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("ValidateUUIDv7(%q) = %v, want nil", tt.id, err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ValidateUUIDv7(%q) = %v, want %v", tt.id, err, tt.wantErr)
			}
		})
	}
}

func TestUUIDv7Time(t *testing.T) {
	at := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	got := UUIDv7Time(newUUIDv7AtTime(at))
	if got.UnixMilli() != at.UnixMilli() {
		t.Errorf("UUIDv7Time = %v, want %v", got, at)
	}
}

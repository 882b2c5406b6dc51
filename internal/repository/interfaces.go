package repository

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_repository.go -package=mocks

import (
	"context"
	"errors"

	"github.com/JonnyWalker81/daybook/backend/internal/models"
)

// ErrNotFound is returned when a lookup by id matches no row
var ErrNotFound = errors.New("record not found")

// JournalEntryRepository defines the interface for journal entry data access
type JournalEntryRepository interface {
	GetByUserID(ctx context.Context, userID string, limit, offset int) ([]models.JournalEntryRow, error)
	GetByID(ctx context.Context, id string) (*models.JournalEntryRow, error)
	Create(ctx context.Context, row *models.JournalEntryRow) (*models.JournalEntryRow, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) (*models.JournalEntryRow, error)
	Delete(ctx context.Context, id string) error
}

// CheckInRepository defines the interface for check-in data access
type CheckInRepository interface {
	GetByUserID(ctx context.Context, userID string, limit, offset int) ([]models.CheckInRow, error)
	Create(ctx context.Context, row *models.CheckInRow) (*models.CheckInRow, error)
}

// GoalRepository defines the interface for goal data access
type GoalRepository interface {
	GetByUserID(ctx context.Context, userID string, limit, offset int) ([]models.GoalRow, error)
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	GetByUserID(ctx context.Context, userID string, limit, offset int) ([]models.TaskRow, error)
}

// FinanceRepository defines the interface for finance entry data access
type FinanceRepository interface {
	GetByUserID(ctx context.Context, userID string, limit, offset int) ([]models.FinanceEntryRow, error)
}

// PersonRepository defines the interface for people data access
type PersonRepository interface {
	GetByUserID(ctx context.Context, userID string, limit, offset int) ([]models.PersonRow, error)
}

// RecapRepository defines the interface for stored recaps
type RecapRepository interface {
	GetByUserID(ctx context.Context, userID string, limit, offset int) ([]models.RecapRow, error)
	GetByID(ctx context.Context, id string) (*models.RecapRow, error)
	Create(ctx context.Context, row *models.RecapRow) (*models.RecapRow, error)
}

// WheelOfLifeRepository defines the interface for wheel-of-life assessments.
// GetLatest returns ErrNotFound when the user has none.
type WheelOfLifeRepository interface {
	GetLatest(ctx context.Context, userID string) (*models.WheelOfLifeRow, error)
	Create(ctx context.Context, row *models.WheelOfLifeRow) (*models.WheelOfLifeRow, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) (*models.WheelOfLifeRow, error)
}

// PersonalityRepository defines the interface for personality profiles, one
// per user.
type PersonalityRepository interface {
	GetByUserID(ctx context.Context, userID string) (*models.PersonalityProfileRow, error)
	Upsert(ctx context.Context, row *models.PersonalityProfileRow) (*models.PersonalityProfileRow, error)
}

// IdempotencyRepository defines the interface for idempotency key operations
type IdempotencyRepository interface {
	// Get retrieves an existing idempotency record, or nil if there is none
	Get(ctx context.Context, key, route, userID string) (*models.IdempotencyKey, error)

	// Store saves a new idempotency record
	Store(ctx context.Context, key, route, userID string, responseBody []byte, statusCode int) error
}

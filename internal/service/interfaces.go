package service

import (
	"context"

	"github.com/JonnyWalker81/daybook/backend/internal/auth"
	"github.com/JonnyWalker81/daybook/backend/internal/models"
)

// CorrelationsService derives mood, energy, sleep and content correlations
type CorrelationsService interface {
	GetCorrelations(ctx context.Context, userID string, periodDays int, section string) (*models.CorrelationsResponse, error)
}

// RecapService builds recap cards and stores generated recaps
type RecapService interface {
	GenerateCards(ctx context.Context, userID, period string) ([]models.RecapCard, error)
	Generate(ctx context.Context, callerID string, req *models.GenerateRecapRequest) (*models.GenerateRecapResponse, error)
	List(ctx context.Context, userID string, limit, offset int) ([]models.Recap, error)
	Get(ctx context.Context, userID, recapID string) (*models.Recap, error)
}

// JournalService defines the interface for journal entry business logic
type JournalService interface {
	CreateEntry(ctx context.Context, userID string, req *models.CreateJournalEntryRequest) (*models.JournalEntry, error)
	GetEntry(ctx context.Context, userID, entryID string) (*models.JournalEntry, error)
	ListEntries(ctx context.Context, userID string, limit, offset int) ([]models.JournalEntry, error)
	UpdateEntry(ctx context.Context, userID, entryID string, req *models.UpdateJournalEntryRequest) (*models.JournalEntry, error)
	DeleteEntry(ctx context.Context, userID, entryID string) error
}

// CheckInService defines the interface for check-in business logic
type CheckInService interface {
	CreateCheckIn(ctx context.Context, userID string, req *models.CreateCheckInRequest) (*models.CheckIn, error)
	ListCheckIns(ctx context.Context, userID string, limit, offset int) ([]models.CheckIn, error)
}

// WheelOfLifeService reads and rescores wheel-of-life areas
type WheelOfLifeService interface {
	GetArea(ctx context.Context, userID, slug string) (*models.LifeAreaDetail, error)
	UpdateArea(ctx context.Context, userID, slug string, req *models.UpdateLifeAreaRequest) (*models.LifeAreaDetail, error)
}

// InsightsService serves nudges and personality estimates
type InsightsService interface {
	GetNudges(ctx context.Context, userID string) (*models.NudgesResponse, error)
	GetPersonality(ctx context.Context, userID string) (*models.PersonalityProfile, error)
	RefreshPersonality(ctx context.Context, userID string) (*models.PersonalityProfile, error)
}

// AuthService defines the interface for authentication business logic
type AuthService interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	Me(ctx context.Context, identity auth.Identity) *models.User
}

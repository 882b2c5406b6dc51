package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/JonnyWalker81/daybook/backend/internal/analysis"
	"github.com/JonnyWalker81/daybook/backend/internal/clock"
	"github.com/JonnyWalker81/daybook/backend/internal/logger"
	"github.com/JonnyWalker81/daybook/backend/internal/models"
	"github.com/JonnyWalker81/daybook/backend/internal/repository"
)

const personalityTable = "personality_profiles"

type insightsService struct {
	entryRepo       repository.JournalEntryRepository
	checkInRepo     repository.CheckInRepository
	goalRepo        repository.GoalRepository
	personalityRepo repository.PersonalityRepository
	clock           clock.Clock
	opts            Options
}

// NewInsightsService creates a new insights service
func NewInsightsService(
	entryRepo repository.JournalEntryRepository,
	checkInRepo repository.CheckInRepository,
	goalRepo repository.GoalRepository,
	personalityRepo repository.PersonalityRepository,
	clk clock.Clock,
	opts Options,
) InsightsService {
	return &insightsService{
		entryRepo:       entryRepo,
		checkInRepo:     checkInRepo,
		goalRepo:        goalRepo,
		personalityRepo: personalityRepo,
		clock:           clk,
		opts:            opts,
	}
}

func (s *insightsService) GetNudges(ctx context.Context, userID string) (*models.NudgesResponse, error) {
	limit := s.opts.fetchLimit()
	entries, err := loadEntries(ctx, s.entryRepo, userID, limit)
	if err != nil {
		return nil, err
	}
	checkIns, err := loadCheckIns(ctx, s.checkInRepo, userID, limit)
	if err != nil {
		return nil, err
	}
	goals, err := loadGoals(ctx, s.goalRepo, userID, limit)
	if err != nil {
		return nil, err
	}

	resp := analysis.GenerateNudges(analysis.NudgeInput{
		Entries:  entries,
		CheckIns: checkIns,
		Goals:    goals,
		Now:      s.clock.Now(),
	})
	return &resp, nil
}

// GetPersonality returns the stored profile, computing and storing one the
// first time it is asked for.
func (s *insightsService) GetPersonality(ctx context.Context, userID string) (*models.PersonalityProfile, error) {
	row, err := s.personalityRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return s.RefreshPersonality(ctx, userID)
		}
		return nil, fmt.Errorf("failed to get personality profile: %w", err)
	}

	var traits map[string]float64
	if err := repository.DecodeJSONColumn(row.Traits, &traits, personalityTable, "traits", row.ID); err != nil {
		return nil, err
	}

	profile := &models.PersonalityProfile{
		UserID:     row.UserID,
		Traits:     analysis.TraitScores(traits, s.opts.Rules.Traits),
		Confidence: models.ConfidenceLow,
		ComputedAt: analysis.ParseTimestamp(row.UpdatedAt),
	}
	if row.EntryCount != nil {
		profile.EntryCount = *row.EntryCount
	}
	if row.Confidence != nil {
		profile.Confidence = models.Confidence(*row.Confidence)
	}
	return profile, nil
}

// RefreshPersonality recomputes the profile from the user's entries and
// upserts it, keeping the id of an existing profile.
func (s *insightsService) RefreshPersonality(ctx context.Context, userID string) (*models.PersonalityProfile, error) {
	entries, err := loadEntries(ctx, s.entryRepo, userID, s.opts.fetchLimit())
	if err != nil {
		return nil, err
	}

	profile := analysis.CalculatePersonality(entries, s.opts.Rules.Traits)
	profile.UserID = userID
	profile.ComputedAt = s.clock.Now()

	traits, err := repository.EncodeJSONColumn(analysis.TraitMap(profile.Traits))
	if err != nil {
		return nil, fmt.Errorf("failed to encode traits: %w", err)
	}

	now := models.FormatTimestamp(profile.ComputedAt)
	row := &models.PersonalityProfileRow{
		ID:         NewID(),
		UserID:     userID,
		Traits:     traits,
		EntryCount: &profile.EntryCount,
		Confidence: (*string)(&profile.Confidence),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	existing, err := s.personalityRepo.GetByUserID(ctx, userID)
	switch {
	case err == nil:
		row.ID = existing.ID
		row.CreatedAt = existing.CreatedAt
	case !errors.Is(err, repository.ErrNotFound):
		return nil, fmt.Errorf("failed to get personality profile: %w", err)
	}

	if _, err := s.personalityRepo.Upsert(ctx, row); err != nil {
		return nil, fmt.Errorf("failed to store personality profile: %w", err)
	}

	logger.Ctx(ctx).Info("personality refreshed",
		logger.Int("entries", profile.EntryCount),
		logger.String("confidence", string(profile.Confidence)),
	)
	return &profile, nil
}

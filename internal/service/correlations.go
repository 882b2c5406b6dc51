package service

import (
	"context"

	"github.com/JonnyWalker81/daybook/backend/internal/analysis"
	"github.com/JonnyWalker81/daybook/backend/internal/clock"
	"github.com/JonnyWalker81/daybook/backend/internal/logger"
	"github.com/JonnyWalker81/daybook/backend/internal/models"
	"github.com/JonnyWalker81/daybook/backend/internal/repository"
)

// MaxPeriodDays bounds the correlations window
const MaxPeriodDays = 365

type correlationsService struct {
	entryRepo   repository.JournalEntryRepository
	checkInRepo repository.CheckInRepository
	goalRepo    repository.GoalRepository
	clock       clock.Clock
	opts        Options
}

// NewCorrelationsService creates a new correlations service
func NewCorrelationsService(
	entryRepo repository.JournalEntryRepository,
	checkInRepo repository.CheckInRepository,
	goalRepo repository.GoalRepository,
	clk clock.Clock,
	opts Options,
) CorrelationsService {
	return &correlationsService{
		entryRepo:   entryRepo,
		checkInRepo: checkInRepo,
		goalRepo:    goalRepo,
		clock:       clk,
		opts:        opts,
	}
}

// GetCorrelations runs the insight pipeline over the last periodDays days.
// A zero period uses the configured default and an empty section means all.
func (s *correlationsService) GetCorrelations(ctx context.Context, userID string, periodDays int, section string) (*models.CorrelationsResponse, error) {
	if periodDays == 0 {
		periodDays = s.opts.DefaultPeriodDays
	}
	if periodDays < 1 || periodDays > MaxPeriodDays {
		return nil, invalidInput("period must be between 1 and %d days", MaxPeriodDays)
	}
	if section == "" {
		section = analysis.SectionAll
	}
	if !analysis.ValidSection(section) {
		return nil, invalidInput("unknown correlation type %q", section)
	}

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

	resp := analysis.BuildCorrelations(analysis.CorrelationInput{
		Entries:  entries,
		CheckIns: checkIns,
		Goals:    goals,
		Window:   analysis.WindowForDays(s.clock.Now(), periodDays),
		Section:  section,
		Rules:    s.opts.Rules,
	})

	logger.Ctx(ctx).Debug("correlations computed",
		logger.Int("period_days", periodDays),
		logger.String("type", section),
		logger.Int("entries", len(entries)),
		logger.Int("check_ins", len(checkIns)),
		logger.Int("insights", len(resp.Insights)),
	)

	return &resp, nil
}

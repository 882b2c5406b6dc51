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

const wheelTable = "wheel_of_life"

type wheelOfLifeService struct {
	wheelRepo repository.WheelOfLifeRepository
	goalRepo  repository.GoalRepository
	entryRepo repository.JournalEntryRepository
	clock     clock.Clock
	opts      Options
}

// NewWheelOfLifeService creates a new wheel-of-life service
func NewWheelOfLifeService(
	wheelRepo repository.WheelOfLifeRepository,
	goalRepo repository.GoalRepository,
	entryRepo repository.JournalEntryRepository,
	clk clock.Clock,
	opts Options,
) WheelOfLifeService {
	return &wheelOfLifeService{
		wheelRepo: wheelRepo,
		goalRepo:  goalRepo,
		entryRepo: entryRepo,
		clock:     clk,
		opts:      opts,
	}
}

func (s *wheelOfLifeService) GetArea(ctx context.Context, userID, slug string) (*models.LifeAreaDetail, error) {
	if !analysis.ValidLifeArea(s.opts.Rules, slug) {
		return nil, ErrNotFound
	}

	wheel, err := s.latest(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.detail(ctx, userID, slug, wheel)
}

// UpdateArea rescores one area of the latest assessment, creating the
// assessment on first use. Notes are kept when the request omits them.
func (s *wheelOfLifeService) UpdateArea(ctx context.Context, userID, slug string, req *models.UpdateLifeAreaRequest) (*models.LifeAreaDetail, error) {
	if !analysis.ValidLifeArea(s.opts.Rules, slug) {
		return nil, ErrNotFound
	}
	if req.Score == nil {
		return nil, invalidInput("score is required")
	}

	wheel, err := s.latest(ctx, userID)
	if err != nil {
		return nil, err
	}

	area := wheel.LifeAreas[slug]
	area.Score = *req.Score
	if req.Notes != nil {
		area.Notes = *req.Notes
	}
	wheel.LifeAreas[slug] = area

	lifeAreas, err := repository.EncodeJSONColumn(wheel.LifeAreas)
	if err != nil {
		return nil, fmt.Errorf("failed to encode life areas: %w", err)
	}
	now := models.FormatTimestamp(s.clock.Now())

	if wheel.ID == "" {
		priorities, err := repository.EncodeJSONColumn(wheel.Priorities)
		if err != nil {
			return nil, fmt.Errorf("failed to encode priorities: %w", err)
		}
		created, err := s.wheelRepo.Create(ctx, &models.WheelOfLifeRow{
			ID:         NewID(),
			UserID:     userID,
			LifeAreas:  lifeAreas,
			Priorities: priorities,
			CreatedAt:  now,
			UpdatedAt:  now,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create wheel of life: %w", err)
		}
		wheel.ID = created.ID
	} else {
		if _, err := s.wheelRepo.Update(ctx, wheel.ID, map[string]interface{}{
			"life_areas": lifeAreas,
			"updated_at": now,
		}); err != nil {
			return nil, notFound(err, "update wheel of life")
		}
	}

	logger.Ctx(ctx).Info("life area rescored",
		logger.String("area", slug),
		logger.Float64("score", area.Score),
	)
	return s.detail(ctx, userID, slug, wheel)
}

// latest decodes the newest assessment. A user without one gets an empty
// wheel. Unreadable life areas fail the request; unreadable priorities
// only lose the priority flags.
func (s *wheelOfLifeService) latest(ctx context.Context, userID string) (*models.WheelOfLife, error) {
	wheel := &models.WheelOfLife{
		UserID:     userID,
		LifeAreas:  make(map[string]models.LifeAreaScore),
		Priorities: make([]string, 0),
	}

	row, err := s.wheelRepo.GetLatest(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return wheel, nil
		}
		return nil, fmt.Errorf("failed to get wheel of life: %w", err)
	}

	wheel.ID = row.ID
	wheel.UpdatedAt = analysis.ParseTimestamp(row.UpdatedAt)

	if err := repository.DecodeJSONColumn(row.LifeAreas, &wheel.LifeAreas, wheelTable, "life_areas", row.ID); err != nil {
		return nil, err
	}
	if wheel.LifeAreas == nil {
		wheel.LifeAreas = make(map[string]models.LifeAreaScore)
	}

	var priorities []string
	if err := repository.DecodeJSONColumn(row.Priorities, &priorities, wheelTable, "priorities", row.ID); err != nil {
		logger.Ctx(ctx).Warn("ignoring malformed priorities", logger.String("wheel_id", row.ID), logger.Err(err))
		priorities = nil
	}
	if priorities != nil {
		wheel.Priorities = priorities
	}
	return wheel, nil
}

func (s *wheelOfLifeService) detail(ctx context.Context, userID, slug string, wheel *models.WheelOfLife) (*models.LifeAreaDetail, error) {
	limit := s.opts.fetchLimit()
	goals, err := loadGoals(ctx, s.goalRepo, userID, limit)
	if err != nil {
		return nil, err
	}
	entries, err := loadEntries(ctx, s.entryRepo, userID, limit)
	if err != nil {
		return nil, err
	}

	isPriority := false
	for _, p := range wheel.Priorities {
		if p == slug {
			isPriority = true
			break
		}
	}

	detail := analysis.BuildLifeAreaDetail(analysis.LifeAreaInput{
		Slug:       slug,
		Stored:     wheel.LifeAreas[slug],
		IsPriority: isPriority,
		Goals:      goals,
		Entries:    entries,
		Rules:      s.opts.Rules,
	})
	return &detail, nil
}

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/JonnyWalker81/daybook/backend/internal/analysis"
	"github.com/JonnyWalker81/daybook/backend/internal/clock"
	"github.com/JonnyWalker81/daybook/backend/internal/models"
	"github.com/JonnyWalker81/daybook/backend/internal/repository"
)

type checkInService struct {
	checkInRepo repository.CheckInRepository
	clock       clock.Clock
}

// NewCheckInService creates a new check-in service
func NewCheckInService(checkInRepo repository.CheckInRepository, clk clock.Clock) CheckInService {
	return &checkInService{checkInRepo: checkInRepo, clock: clk}
}

func (s *checkInService) CreateCheckIn(ctx context.Context, userID string, req *models.CreateCheckInRequest) (*models.CheckIn, error) {
	mood := strings.TrimSpace(req.Mood)
	if mood == "" {
		return nil, invalidInput("mood is required")
	}
	row := &models.CheckInRow{
		ID:           NewID(),
		UserID:       userID,
		Mood:         &mood,
		Energy:       req.Energy,
		SleepHours:   req.SleepHours,
		SleepMinutes: req.SleepMinutes,
		Note:         optional(req.Note),
		CreatedAt:    models.FormatTimestamp(s.clock.Now()),
	}

	created, err := s.checkInRepo.Create(ctx, row)
	if err != nil {
		return nil, fmt.Errorf("failed to create check-in: %w", err)
	}
	checkIn := analysis.NormalizeCheckIn(*created)
	return &checkIn, nil
}

func (s *checkInService) ListCheckIns(ctx context.Context, userID string, limit, offset int) ([]models.CheckIn, error) {
	limit, offset = page(limit, offset)

	rows, err := s.checkInRepo.GetByUserID(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list check-ins: %w", err)
	}
	return analysis.NormalizeCheckIns(rows), nil
}

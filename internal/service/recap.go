package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/JonnyWalker81/daybook/backend/internal/analysis"
	"github.com/JonnyWalker81/daybook/backend/internal/clock"
	"github.com/JonnyWalker81/daybook/backend/internal/logger"
	"github.com/JonnyWalker81/daybook/backend/internal/models"
	"github.com/JonnyWalker81/daybook/backend/internal/recap"
	"github.com/JonnyWalker81/daybook/backend/internal/repository"
)

// Card periods accepted by GenerateCards
const (
	PeriodWeek  = "week"
	PeriodMonth = "month"
)

const recapsTable = "recaps"

// RecapRepositories is the data a recap reads and writes
type RecapRepositories struct {
	Entries  repository.JournalEntryRepository
	CheckIns repository.CheckInRepository
	Goals    repository.GoalRepository
	Tasks    repository.TaskRepository
	Finance  repository.FinanceRepository
	People   repository.PersonRepository
	Recaps   repository.RecapRepository
}

type recapService struct {
	repos RecapRepositories
	clock clock.Clock
	opts  Options
}

// NewRecapService creates a new recap service
func NewRecapService(repos RecapRepositories, clk clock.Clock, opts Options) RecapService {
	return &recapService{repos: repos, clock: clk, opts: opts}
}

func (s *recapService) GenerateCards(ctx context.Context, userID, period string) ([]models.RecapCard, error) {
	var days int
	switch period {
	case PeriodWeek, "":
		days = models.RecapWeekly.Days()
	case PeriodMonth:
		days = models.RecapMonthly.Days()
	default:
		return nil, invalidInput("period must be %q or %q", PeriodWeek, PeriodMonth)
	}

	in, err := s.load(ctx, userID, days, true)
	if err != nil {
		return nil, err
	}

	cards := recap.BuildCards(in)
	logger.Ctx(ctx).Debug("recap cards built",
		logger.String("period", period),
		logger.Int("cards", len(cards)),
	)
	return cards, nil
}

// Generate computes and stores a recap. Callers may only generate their
// own recaps.
func (s *recapService) Generate(ctx context.Context, callerID string, req *models.GenerateRecapRequest) (*models.GenerateRecapResponse, error) {
	if req.UserID != callerID {
		return nil, ErrForbidden
	}

	in, err := s.load(ctx, callerID, req.Type.Days(), false)
	if err != nil {
		return nil, err
	}
	summary := recap.Summarize(in, req.Type)

	content, err := repository.EncodeJSONColumn(summary.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to encode recap content: %w", err)
	}
	insights, err := repository.EncodeJSONColumn(summary.Insights)
	if err != nil {
		return nil, fmt.Errorf("failed to encode recap insights: %w", err)
	}
	recommendations, err := repository.EncodeJSONColumn(summary.Recommendations)
	if err != nil {
		return nil, fmt.Errorf("failed to encode recap recommendations: %w", err)
	}

	row := &models.RecapRow{
		ID:              NewID(),
		UserID:          callerID,
		Type:            string(req.Type),
		PeriodStart:     models.FormatTimestamp(in.Window.Start),
		PeriodEnd:       models.FormatTimestamp(in.Window.End),
		Content:         content,
		Insights:        insights,
		Recommendations: recommendations,
		CreatedAt:       models.FormatTimestamp(s.clock.Now()),
	}

	created, err := s.repos.Recaps.Create(ctx, row)
	if err != nil {
		return nil, fmt.Errorf("failed to store recap: %w", err)
	}

	stored, err := decodeRecap(*created)
	if err != nil {
		return nil, err
	}

	logger.Ctx(ctx).Info("recap generated",
		logger.String("recap_id", stored.ID),
		logger.String("type", string(stored.Type)),
	)

	return &models.GenerateRecapResponse{
		ID:      stored.ID,
		Message: fmt.Sprintf("%s recap generated", recapLabel(req.Type)),
		Recap:   stored,
	}, nil
}

// List returns stored recaps, newest first. Rows whose JSON columns cannot
// be decoded are skipped so one bad record does not hide the history.
func (s *recapService) List(ctx context.Context, userID string, limit, offset int) ([]models.Recap, error) {
	limit, offset = page(limit, offset)

	rows, err := s.repos.Recaps.GetByUserID(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list recaps: %w", err)
	}

	recaps := make([]models.Recap, 0, len(rows))
	for _, row := range rows {
		r, err := decodeRecap(row)
		if err != nil {
			var malformed *models.MalformedStoredDataError
			if errors.As(err, &malformed) {
				logger.Ctx(ctx).Warn("skipping malformed recap", logger.String("recap_id", row.ID), logger.Err(err))
				continue
			}
			return nil, err
		}
		recaps = append(recaps, *r)
	}
	return recaps, nil
}

func (s *recapService) Get(ctx context.Context, userID, recapID string) (*models.Recap, error) {
	row, err := s.repos.Recaps.GetByID(ctx, recapID)
	if err != nil {
		return nil, notFound(err, "get recap")
	}
	if row.UserID != userID {
		return nil, ErrForbidden
	}
	return decodeRecap(*row)
}

func (s *recapService) load(ctx context.Context, userID string, days int, withCards bool) (recap.Input, error) {
	limit := s.opts.fetchLimit()
	in := recap.Input{
		Window: analysis.WindowForDays(s.clock.Now(), days),
		Rules:  s.opts.Rules,
	}

	var err error
	if in.Entries, err = loadEntries(ctx, s.repos.Entries, userID, limit); err != nil {
		return in, err
	}
	if in.CheckIns, err = loadCheckIns(ctx, s.repos.CheckIns, userID, limit); err != nil {
		return in, err
	}
	if in.Goals, err = loadGoals(ctx, s.repos.Goals, userID, limit); err != nil {
		return in, err
	}
	if !withCards {
		return in, nil
	}

	if in.Tasks, err = loadTasks(ctx, s.repos.Tasks, userID, limit); err != nil {
		return in, err
	}
	if in.Finance, err = loadFinance(ctx, s.repos.Finance, userID, limit); err != nil {
		return in, err
	}
	if in.People, err = loadPeople(ctx, s.repos.People, userID, limit); err != nil {
		return in, err
	}
	return in, nil
}

func decodeRecap(row models.RecapRow) (*models.Recap, error) {
	r := &models.Recap{
		ID:              row.ID,
		UserID:          row.UserID,
		Type:            models.RecapType(row.Type),
		PeriodStart:     analysis.ParseTimestamp(row.PeriodStart),
		PeriodEnd:       analysis.ParseTimestamp(row.PeriodEnd),
		Insights:        make([]models.Insight, 0),
		Recommendations: make([]models.Insight, 0),
		CreatedAt:       analysis.ParseTimestamp(row.CreatedAt),
	}
	if err := repository.DecodeJSONColumn(row.Content, &r.Content, recapsTable, "content", row.ID); err != nil {
		return nil, err
	}
	if err := repository.DecodeJSONColumn(row.Insights, &r.Insights, recapsTable, "insights", row.ID); err != nil {
		return nil, err
	}
	if err := repository.DecodeJSONColumn(row.Recommendations, &r.Recommendations, recapsTable, "recommendations", row.ID); err != nil {
		return nil, err
	}
	return r, nil
}

func recapLabel(t models.RecapType) string {
	if t == models.RecapMonthly {
		return "Monthly"
	}
	return "Weekly"
}

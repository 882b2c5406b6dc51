package service

import (
	"context"
	"fmt"

	"github.com/JonnyWalker81/daybook/backend/internal/analysis"
	"github.com/JonnyWalker81/daybook/backend/internal/models"
	"github.com/JonnyWalker81/daybook/backend/internal/repository"
)

// DefaultFetchLimit bounds the rows read per entity for one analysis request
const DefaultFetchLimit = 1000

// Pagination bounds for list endpoints
const (
	DefaultPageSize = 50
	MaxPageSize     = 100
)

// Options tunes the analysis services.
type Options struct {
	Rules             analysis.Rules
	FetchLimit        int
	DefaultPeriodDays int
}

// DefaultOptions returns built-in rules and limits.
func DefaultOptions() Options {
	return Options{Rules: analysis.DefaultRules(), FetchLimit: DefaultFetchLimit, DefaultPeriodDays: 30}
}

func (o Options) fetchLimit() int {
	if o.FetchLimit <= 0 {
		return DefaultFetchLimit
	}
	return o.FetchLimit
}

func page(limit, offset int) (int, int) {
	if limit <= 0 || limit > MaxPageSize {
		limit = DefaultPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

func loadEntries(ctx context.Context, repo repository.JournalEntryRepository, userID string, limit int) ([]models.JournalEntry, error) {
	rows, err := repo.GetByUserID(ctx, userID, limit, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch journal entries: %w", err)
	}
	return analysis.NormalizeJournalEntries(rows), nil
}

func loadCheckIns(ctx context.Context, repo repository.CheckInRepository, userID string, limit int) ([]models.CheckIn, error) {
	rows, err := repo.GetByUserID(ctx, userID, limit, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch check-ins: %w", err)
	}
	return analysis.NormalizeCheckIns(rows), nil
}

func loadGoals(ctx context.Context, repo repository.GoalRepository, userID string, limit int) ([]models.Goal, error) {
	rows, err := repo.GetByUserID(ctx, userID, limit, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch goals: %w", err)
	}
	return analysis.NormalizeGoals(rows), nil
}

func loadTasks(ctx context.Context, repo repository.TaskRepository, userID string, limit int) ([]models.Task, error) {
	rows, err := repo.GetByUserID(ctx, userID, limit, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tasks: %w", err)
	}
	return analysis.NormalizeTasks(rows), nil
}

func loadFinance(ctx context.Context, repo repository.FinanceRepository, userID string, limit int) ([]models.FinanceEntry, error) {
	rows, err := repo.GetByUserID(ctx, userID, limit, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch finance entries: %w", err)
	}
	return analysis.NormalizeFinanceEntries(rows), nil
}

func loadPeople(ctx context.Context, repo repository.PersonRepository, userID string, limit int) ([]models.Person, error) {
	rows, err := repo.GetByUserID(ctx, userID, limit, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch people: %w", err)
	}
	return analysis.NormalizePeople(rows), nil
}

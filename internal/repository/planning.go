package repository

import (
	"context"

	"github.com/JonnyWalker81/daybook/backend/internal/models"
	"github.com/JonnyWalker81/daybook/backend/pkg/supabase"
)

// Goals, tasks, finance entries and people are written by other clients;
// this service only reads them.

type goalRepository struct {
	table table[models.GoalRow]
}

// NewGoalRepository creates a new goal repository
func NewGoalRepository(client *supabase.Client) GoalRepository {
	return &goalRepository{table: newTable[models.GoalRow](client, "goals")}
}

func (r *goalRepository) GetByUserID(ctx context.Context, userID string, limit, offset int) ([]models.GoalRow, error) {
	return r.table.list(ctx, userPage(userID, limit, offset))
}

type taskRepository struct {
	table table[models.TaskRow]
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(client *supabase.Client) TaskRepository {
	return &taskRepository{table: newTable[models.TaskRow](client, "tasks")}
}

func (r *taskRepository) GetByUserID(ctx context.Context, userID string, limit, offset int) ([]models.TaskRow, error) {
	return r.table.list(ctx, userPage(userID, limit, offset))
}

type financeRepository struct {
	table table[models.FinanceEntryRow]
}

// NewFinanceRepository creates a new finance entry repository
func NewFinanceRepository(client *supabase.Client) FinanceRepository {
	return &financeRepository{table: newTable[models.FinanceEntryRow](client, "finance_entries")}
}

func (r *financeRepository) GetByUserID(ctx context.Context, userID string, limit, offset int) ([]models.FinanceEntryRow, error) {
	return r.table.list(ctx, userPage(userID, limit, offset))
}

type personRepository struct {
	table table[models.PersonRow]
}

// NewPersonRepository creates a new people repository
func NewPersonRepository(client *supabase.Client) PersonRepository {
	return &personRepository{table: newTable[models.PersonRow](client, "people")}
}

func (r *personRepository) GetByUserID(ctx context.Context, userID string, limit, offset int) ([]models.PersonRow, error) {
	return r.table.list(ctx, userPage(userID, limit, offset))
}

package repository

import (
	"context"

	"github.com/JonnyWalker81/daybook/backend/internal/models"
	"github.com/JonnyWalker81/daybook/backend/pkg/supabase"
)

type wheelOfLifeRepository struct {
	table table[models.WheelOfLifeRow]
}

// NewWheelOfLifeRepository creates a new wheel-of-life repository
func NewWheelOfLifeRepository(client *supabase.Client) WheelOfLifeRepository {
	return &wheelOfLifeRepository{table: newTable[models.WheelOfLifeRow](client, "wheel_of_life")}
}

func (r *wheelOfLifeRepository) GetLatest(ctx context.Context, userID string) (*models.WheelOfLifeRow, error) {
	return r.table.one(ctx, userPage(userID, 1, 0))
}

func (r *wheelOfLifeRepository) Create(ctx context.Context, row *models.WheelOfLifeRow) (*models.WheelOfLifeRow, error) {
	return r.table.insert(ctx, row)
}

func (r *wheelOfLifeRepository) Update(ctx context.Context, id string, fields map[string]interface{}) (*models.WheelOfLifeRow, error) {
	return r.table.update(ctx, id, fields)
}

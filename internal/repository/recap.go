package repository

import (
	"context"

	"github.com/JonnyWalker81/daybook/backend/internal/models"
	"github.com/JonnyWalker81/daybook/backend/pkg/supabase"
)

type recapRepository struct {
	table table[models.RecapRow]
}

// NewRecapRepository creates a new recap repository
func NewRecapRepository(client *supabase.Client) RecapRepository {
	return &recapRepository{table: newTable[models.RecapRow](client, "recaps")}
}

func (r *recapRepository) GetByUserID(ctx context.Context, userID string, limit, offset int) ([]models.RecapRow, error) {
	return r.table.list(ctx, userPage(userID, limit, offset))
}

func (r *recapRepository) GetByID(ctx context.Context, id string) (*models.RecapRow, error) {
	return r.table.byID(ctx, id)
}

func (r *recapRepository) Create(ctx context.Context, row *models.RecapRow) (*models.RecapRow, error) {
	return r.table.insert(ctx, row)
}

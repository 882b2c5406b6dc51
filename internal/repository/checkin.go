package repository

import (
	"context"

	"github.com/JonnyWalker81/daybook/backend/internal/models"
	"github.com/JonnyWalker81/daybook/backend/pkg/supabase"
)

type checkInRepository struct {
	table table[models.CheckInRow]
}

// NewCheckInRepository creates a new check-in repository
func NewCheckInRepository(client *supabase.Client) CheckInRepository {
	return &checkInRepository{table: newTable[models.CheckInRow](client, "check_ins")}
}

func (r *checkInRepository) GetByUserID(ctx context.Context, userID string, limit, offset int) ([]models.CheckInRow, error) {
	return r.table.list(ctx, userPage(userID, limit, offset))
}

func (r *checkInRepository) Create(ctx context.Context, row *models.CheckInRow) (*models.CheckInRow, error) {
	return r.table.insert(ctx, row)
}

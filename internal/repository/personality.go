package repository

import (
	"context"
	"fmt"

	"github.com/JonnyWalker81/daybook/backend/internal/models"
	"github.com/JonnyWalker81/daybook/backend/pkg/supabase"
)

type personalityRepository struct {
	table table[models.PersonalityProfileRow]
}

// NewPersonalityRepository creates a new personality profile repository
func NewPersonalityRepository(client *supabase.Client) PersonalityRepository {
	return &personalityRepository{table: newTable[models.PersonalityProfileRow](client, "personality_profiles")}
}

func (r *personalityRepository) GetByUserID(ctx context.Context, userID string) (*models.PersonalityProfileRow, error) {
	return r.table.one(ctx, map[string]interface{}{"user_id": fmt.Sprintf("eq.%s", userID)})
}

func (r *personalityRepository) Upsert(ctx context.Context, row *models.PersonalityProfileRow) (*models.PersonalityProfileRow, error) {
	return r.table.upsert(ctx, row, "user_id")
}

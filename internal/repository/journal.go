package repository

import (
	"context"

	"github.com/JonnyWalker81/daybook/backend/internal/models"
	"github.com/JonnyWalker81/daybook/backend/pkg/supabase"
)

type journalEntryRepository struct {
	table table[models.JournalEntryRow]
}

// NewJournalEntryRepository creates a new journal entry repository
func NewJournalEntryRepository(client *supabase.Client) JournalEntryRepository {
	return &journalEntryRepository{table: newTable[models.JournalEntryRow](client, "journal_entries")}
}

func (r *journalEntryRepository) GetByUserID(ctx context.Context, userID string, limit, offset int) ([]models.JournalEntryRow, error) {
	return r.table.list(ctx, userPage(userID, limit, offset))
}

func (r *journalEntryRepository) GetByID(ctx context.Context, id string) (*models.JournalEntryRow, error) {
	return r.table.byID(ctx, id)
}

func (r *journalEntryRepository) Create(ctx context.Context, row *models.JournalEntryRow) (*models.JournalEntryRow, error) {
	return r.table.insert(ctx, row)
}

func (r *journalEntryRepository) Update(ctx context.Context, id string, fields map[string]interface{}) (*models.JournalEntryRow, error) {
	return r.table.update(ctx, id, fields)
}

func (r *journalEntryRepository) Delete(ctx context.Context, id string) error {
	return r.table.delete(ctx, id)
}

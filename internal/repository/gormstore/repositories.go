package gormstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/JonnyWalker81/daybook/backend/internal/models"
	"github.com/JonnyWalker81/daybook/backend/internal/repository"
)

type journalEntries struct {
	table[models.JournalEntryRow]
}

func (r *journalEntries) GetByUserID(ctx context.Context, userID string, limit, offset int) ([]models.JournalEntryRow, error) {
	return r.listByUser(ctx, userID, limit, offset)
}

func (r *journalEntries) GetByID(ctx context.Context, id string) (*models.JournalEntryRow, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *journalEntries) Create(ctx context.Context, row *models.JournalEntryRow) (*models.JournalEntryRow, error) {
	return r.create(ctx, row)
}

func (r *journalEntries) Update(ctx context.Context, id string, fields map[string]interface{}) (*models.JournalEntryRow, error) {
	return r.update(ctx, id, fields)
}

func (r *journalEntries) Delete(ctx context.Context, id string) error {
	return r.delete(ctx, id)
}

type checkIns struct {
	table[models.CheckInRow]
}

func (r *checkIns) GetByUserID(ctx context.Context, userID string, limit, offset int) ([]models.CheckInRow, error) {
	return r.listByUser(ctx, userID, limit, offset)
}

func (r *checkIns) Create(ctx context.Context, row *models.CheckInRow) (*models.CheckInRow, error) {
	return r.create(ctx, row)
}

type recaps struct {
	table[models.RecapRow]
}

func (r *recaps) GetByUserID(ctx context.Context, userID string, limit, offset int) ([]models.RecapRow, error) {
	return r.listByUser(ctx, userID, limit, offset)
}

func (r *recaps) GetByID(ctx context.Context, id string) (*models.RecapRow, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *recaps) Create(ctx context.Context, row *models.RecapRow) (*models.RecapRow, error) {
	return r.create(ctx, row)
}

type wheelOfLife struct {
	table[models.WheelOfLifeRow]
}

func (r *wheelOfLife) GetLatest(ctx context.Context, userID string) (*models.WheelOfLifeRow, error) {
	return r.first(ctx, "user_id = ?", userID)
}

func (r *wheelOfLife) Create(ctx context.Context, row *models.WheelOfLifeRow) (*models.WheelOfLifeRow, error) {
	return r.create(ctx, row)
}

func (r *wheelOfLife) Update(ctx context.Context, id string, fields map[string]interface{}) (*models.WheelOfLifeRow, error) {
	return r.update(ctx, id, fields)
}

type personality struct {
	table[models.PersonalityProfileRow]
}

func (r *personality) GetByUserID(ctx context.Context, userID string) (*models.PersonalityProfileRow, error) {
	return r.first(ctx, "user_id = ?", userID)
}

func (r *personality) Upsert(ctx context.Context, row *models.PersonalityProfileRow) (*models.PersonalityProfileRow, error) {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"traits", "entry_count", "confidence", "updated_at"}),
	}).Create(row).Error
	if err != nil {
		return nil, fmt.Errorf("failed to upsert personality profile: %w", err)
	}
	return r.first(ctx, "user_id = ?", row.UserID)
}

type idempotency struct {
	db *gorm.DB
}

func (r *idempotency) Get(ctx context.Context, key, route, userID string) (*models.IdempotencyKey, error) {
	var record models.IdempotencyKey
	err := r.db.WithContext(ctx).
		Where(&models.IdempotencyKey{Key: key, Route: route, UserID: userID}).
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query idempotency key: %w", err)
	}
	return &record, nil
}

func (r *idempotency) Store(ctx context.Context, key, route, userID string, responseBody []byte, statusCode int) error {
	record := models.IdempotencyKey{
		ID:           uuid.NewString(),
		Key:          key,
		Route:        route,
		UserID:       userID,
		ResponseBody: responseBody,
		StatusCode:   statusCode,
		CreatedAt:    models.FormatTimestamp(time.Now()),
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&record).Error
	if err != nil {
		return fmt.Errorf("failed to store idempotency key: %w", err)
	}
	return nil
}

var _ repository.IdempotencyRepository = (*idempotency)(nil)

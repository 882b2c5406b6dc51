// Package gormstore implements the repository interfaces on a relational
// database through gorm, for deployments that do not use Supabase.
package gormstore

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/JonnyWalker81/daybook/backend/internal/models"
	"github.com/JonnyWalker81/daybook/backend/internal/repository"
)

// Supported drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Open connects to the database named by driver and dsn.
func Open(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case DriverPostgres:
		dialector = postgres.Open(dsn)
	case DriverSQLite:
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driver, err)
	}
	return db, nil
}

// AutoMigrate creates or updates every table the service uses.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.JournalEntryRow{},
		&models.CheckInRow{},
		&models.GoalRow{},
		&models.TaskRow{},
		&models.FinanceEntryRow{},
		&models.PersonRow{},
		&models.RecapRow{},
		&models.WheelOfLifeRow{},
		&models.PersonalityProfileRow{},
		&models.IdempotencyKey{},
	)
}

// New builds every repository over db.
func New(db *gorm.DB) repository.Repositories {
	return repository.Repositories{
		JournalEntries: &journalEntries{table[models.JournalEntryRow]{db}},
		CheckIns:       &checkIns{table[models.CheckInRow]{db}},
		Goals:          &userRows[models.GoalRow]{table[models.GoalRow]{db}},
		Tasks:          &userRows[models.TaskRow]{table[models.TaskRow]{db}},
		Finance:        &userRows[models.FinanceEntryRow]{table[models.FinanceEntryRow]{db}},
		People:         &userRows[models.PersonRow]{table[models.PersonRow]{db}},
		Recaps:         &recaps{table[models.RecapRow]{db}},
		WheelOfLife:    &wheelOfLife{table[models.WheelOfLifeRow]{db}},
		Personality:    &personality{table[models.PersonalityProfileRow]{db}},
		Idempotency:    &idempotency{db},
	}
}

type table[T any] struct {
	db *gorm.DB
}

func (t table[T]) listByUser(ctx context.Context, userID string, limit, offset int) ([]T, error) {
	q := t.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}

	rows := make([]T, 0)
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list rows: %w", err)
	}
	return rows, nil
}

func (t table[T]) first(ctx context.Context, query string, args ...interface{}) (*T, error) {
	var row T
	err := t.db.WithContext(ctx).Where(query, args...).Order("created_at DESC").First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get row: %w", err)
	}
	return &row, nil
}

func (t table[T]) create(ctx context.Context, row *T) (*T, error) {
	if err := t.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, fmt.Errorf("failed to create row: %w", err)
	}
	return row, nil
}

func (t table[T]) update(ctx context.Context, id string, fields map[string]interface{}) (*T, error) {
	var model T
	res := t.db.WithContext(ctx).Model(&model).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update row: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, repository.ErrNotFound
	}
	return t.first(ctx, "id = ?", id)
}

func (t table[T]) delete(ctx context.Context, id string) error {
	var model T
	if err := t.db.WithContext(ctx).Where("id = ?", id).Delete(&model).Error; err != nil {
		return fmt.Errorf("failed to delete row: %w", err)
	}
	return nil
}

type userRows[T any] struct {
	table[T]
}

func (r *userRows[T]) GetByUserID(ctx context.Context, userID string, limit, offset int) ([]T, error) {
	return r.listByUser(ctx, userID, limit, offset)
}

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/JonnyWalker81/daybook/backend/internal/analysis"
	"github.com/JonnyWalker81/daybook/backend/internal/clock"
	"github.com/JonnyWalker81/daybook/backend/internal/models"
	"github.com/JonnyWalker81/daybook/backend/internal/repository"
)

type journalService struct {
	entryRepo repository.JournalEntryRepository
	clock     clock.Clock
}

// NewJournalService creates a new journal entry service
func NewJournalService(entryRepo repository.JournalEntryRepository, clk clock.Clock) JournalService {
	return &journalService{entryRepo: entryRepo, clock: clk}
}

func (s *journalService) CreateEntry(ctx context.Context, userID string, req *models.CreateJournalEntryRequest) (*models.JournalEntry, error) {
	now := s.clock.Now()

	id := NewID()
	if req.ID != nil {
		if err := ValidateUUIDv7(*req.ID, now); err != nil {
			return nil, fmt.Errorf("%w: id: %w", ErrInvalidInput, err)
		}
		if err := s.checkIDFree(ctx, *req.ID); err != nil {
			return nil, err
		}
		id = *req.ID
	}

	processingType := req.ProcessingType
	if processingType == "" {
		processingType = models.ProcessingTranscribeOnly
	}
	status := req.ProcessingStatus
	if status == "" {
		status = models.StatusDraft
	}

	row := &models.JournalEntryRow{
		ID:               id,
		UserID:           userID,
		Title:            optional(req.Title),
		Content:          optional(req.Content),
		Transcription:    optional(req.Transcription),
		ProcessingType:   optional(string(processingType)),
		ProcessingStatus: optional(string(status)),
		CreatedAt:        models.FormatTimestamp(now),
		UpdatedAt:        models.FormatTimestamp(now),
	}

	created, err := s.entryRepo.Create(ctx, row)
	if err != nil {
		return nil, fmt.Errorf("failed to create journal entry: %w", err)
	}
	entry := analysis.NormalizeJournalEntry(*created)
	return &entry, nil
}

func (s *journalService) GetEntry(ctx context.Context, userID, entryID string) (*models.JournalEntry, error) {
	row, err := s.owned(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}
	entry := analysis.NormalizeJournalEntry(*row)
	return &entry, nil
}

func (s *journalService) ListEntries(ctx context.Context, userID string, limit, offset int) ([]models.JournalEntry, error) {
	limit, offset = page(limit, offset)

	rows, err := s.entryRepo.GetByUserID(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	return analysis.NormalizeJournalEntries(rows), nil
}

// UpdateEntry applies only the fields present in the request. An explicit
// null clears a text column.
func (s *journalService) UpdateEntry(ctx context.Context, userID, entryID string, req *models.UpdateJournalEntryRequest) (*models.JournalEntry, error) {
	if req.IsEmpty() {
		return nil, invalidInput("update has no fields")
	}
	if _, err := s.owned(ctx, userID, entryID); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{
		"updated_at": models.FormatTimestamp(s.clock.Now()),
	}
	if req.Title.Set {
		fields["title"] = req.Title.ToPtr()
	}
	if req.Content.Set {
		fields["content"] = req.Content.ToPtr()
	}
	if req.Transcription.Set {
		fields["transcription"] = req.Transcription.ToPtr()
	}
	if req.ProcessingType != nil {
		fields["processing_type"] = string(*req.ProcessingType)
	}
	if req.ProcessingStatus != nil {
		fields["processing_status"] = string(*req.ProcessingStatus)
	}

	updated, err := s.entryRepo.Update(ctx, entryID, fields)
	if err != nil {
		return nil, notFound(err, "update journal entry")
	}
	entry := analysis.NormalizeJournalEntry(*updated)
	return &entry, nil
}

func (s *journalService) DeleteEntry(ctx context.Context, userID, entryID string) error {
	if _, err := s.owned(ctx, userID, entryID); err != nil {
		return err
	}
	if err := s.entryRepo.Delete(ctx, entryID); err != nil {
		return notFound(err, "delete journal entry")
	}
	return nil
}

// checkIDFree rejects a client-supplied id that already names an entry, so
// a retried create never overwrites or duplicates it.
func (s *journalService) checkIDFree(ctx context.Context, id string) error {
	_, err := s.entryRepo.GetByID(ctx, id)
	switch {
	case err == nil:
		return fmt.Errorf("%w: journal entry %s already exists", ErrConflict, id)
	case errors.Is(err, repository.ErrNotFound):
		return nil
	default:
		return fmt.Errorf("failed to check journal entry id: %w", err)
	}
}

// owned fetches an entry, rejecting entries of other users as forbidden.
func (s *journalService) owned(ctx context.Context, userID, entryID string) (*models.JournalEntryRow, error) {
	row, err := s.entryRepo.GetByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get journal entry: %w", err)
	}
	if row.UserID != userID {
		return nil, ErrForbidden
	}
	return row, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

package models

import "time"

// ProcessingType describes how much analysis a journal entry asked for
type ProcessingType string

const (
	ProcessingTranscribeOnly ProcessingType = "transcribe-only"
	ProcessingFullAnalysis   ProcessingType = "full-analysis"
)

// ProcessingStatus tracks a journal entry through transcription and analysis
type ProcessingStatus string

const (
	StatusDraft       ProcessingStatus = "draft"
	StatusTranscribed ProcessingStatus = "transcribed"
	StatusAnalyzed    ProcessingStatus = "analyzed"
	StatusCompleted   ProcessingStatus = "completed"
)

// JournalEntryRow is a journal_entries row as the data store returns it.
type JournalEntryRow struct {
	ID               string  `json:"id" gorm:"primaryKey"`
	UserID           string  `json:"user_id" gorm:"index"`
	Title            *string `json:"title,omitempty"`
	Content          *string `json:"content,omitempty"`
	Transcription    *string `json:"transcription,omitempty"`
	ProcessingType   *string `json:"processing_type,omitempty"`
	ProcessingStatus *string `json:"processing_status,omitempty"`
	CreatedAt        string  `json:"created_at" gorm:"index"`
	UpdatedAt        string  `json:"updated_at"`
}

// TableName maps the row onto its table
func (JournalEntryRow) TableName() string { return "journal_entries" }

// JournalEntry is the normalized journal entry used by the insight pipeline
// and returned by the API.
type JournalEntry struct {
	ID               string           `json:"id"`
	UserID           string           `json:"userId"`
	Title            string           `json:"title"`
	Content          string           `json:"content"`
	Transcription    string           `json:"transcription"`
	ProcessingType   ProcessingType   `json:"processingType"`
	ProcessingStatus ProcessingStatus `json:"processingStatus"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
}

// EffectiveText is the text the pipeline analyzes: the transcription when
// present, otherwise the typed content.
func (e JournalEntry) EffectiveText() string {
	if e.Transcription != "" {
		return e.Transcription
	}
	return e.Content
}

// CreateJournalEntryRequest represents the request to create a journal entry
type CreateJournalEntryRequest struct {
	ID               *string          `json:"id"`
	Title            string           `json:"title" binding:"max=200"`
	Content          string           `json:"content"`
	Transcription    string           `json:"transcription"`
	ProcessingType   ProcessingType   `json:"processingType" binding:"omitempty,oneof=transcribe-only full-analysis"`
	ProcessingStatus ProcessingStatus `json:"processingStatus" binding:"omitempty,oneof=draft transcribed analyzed completed"`
}

// UpdateJournalEntryRequest distinguishes absent fields from explicit nulls so
// a client can clear content or transcription.
type UpdateJournalEntryRequest struct {
	Title            Nullable[string]  `json:"title"`
	Content          Nullable[string]  `json:"content"`
	Transcription    Nullable[string]  `json:"transcription"`
	ProcessingType   *ProcessingType   `json:"processingType" binding:"omitempty,oneof=transcribe-only full-analysis"`
	ProcessingStatus *ProcessingStatus `json:"processingStatus" binding:"omitempty,oneof=draft transcribed analyzed completed"`
}

// IsEmpty reports whether the update carries no fields at all
func (r *UpdateJournalEntryRequest) IsEmpty() bool {
	return !r.Title.Set && !r.Content.Set && !r.Transcription.Set &&
		r.ProcessingType == nil && r.ProcessingStatus == nil
}

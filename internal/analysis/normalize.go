// Package analysis derives journaling insights from normalized entries and
// check-ins. Every function here is pure: no I/O, no clocks, no errors for
// missing optional data.
package analysis

import (
	"strings"
	"time"

	"github.com/JonnyWalker81/daybook/backend/internal/models"
)

// DefaultMood is used when a check-in has no mood label
const DefaultMood = "neutral"

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999Z07",
	"2006-01-02 15:04:05.999999999",
	models.DateLayout,
}

// ParseTimestamp parses the timestamp formats the stores emit. An empty or
// unparseable value yields the zero time, which falls outside every window.
func ParseTimestamp(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}

func parseOptionalTime(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t := ParseTimestamp(*s)
	if t.IsZero() {
		return nil
	}
	return &t
}

func str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func num(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

// NormalizeJournalEntry converts a stored row into a JournalEntry.
func NormalizeJournalEntry(row models.JournalEntryRow) models.JournalEntry {
	processingType := models.ProcessingType(str(row.ProcessingType))
	if processingType == "" {
		processingType = models.ProcessingTranscribeOnly
	}
	status := models.ProcessingStatus(str(row.ProcessingStatus))
	if status == "" {
		status = models.StatusDraft
	}

	return models.JournalEntry{
		ID:               row.ID,
		UserID:           row.UserID,
		Title:            str(row.Title),
		Content:          str(row.Content),
		Transcription:    str(row.Transcription),
		ProcessingType:   processingType,
		ProcessingStatus: status,
		CreatedAt:        ParseTimestamp(row.CreatedAt),
		UpdatedAt:        ParseTimestamp(row.UpdatedAt),
	}
}

// NormalizeJournalEntries converts rows, preserving order.
func NormalizeJournalEntries(rows []models.JournalEntryRow) []models.JournalEntry {
	entries := make([]models.JournalEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, NormalizeJournalEntry(row))
	}
	return entries
}

// NormalizeCheckIn converts a stored row into a CheckIn and scores its mood.
func NormalizeCheckIn(row models.CheckInRow) models.CheckIn {
	mood := str(row.Mood)
	if mood == "" {
		mood = DefaultMood
	}

	return models.CheckIn{
		ID:           row.ID,
		UserID:       row.UserID,
		Mood:         mood,
		MoodScore:    MoodScore(mood),
		Energy:       num(row.Energy),
		SleepHours:   num(row.SleepHours),
		SleepMinutes: num(row.SleepMinutes),
		HasSleep:     row.SleepHours != nil || row.SleepMinutes != nil,
		Note:         str(row.Note),
		CreatedAt:    ParseTimestamp(row.CreatedAt),
	}
}

// NormalizeCheckIns converts rows, preserving order.
func NormalizeCheckIns(rows []models.CheckInRow) []models.CheckIn {
	checkIns := make([]models.CheckIn, 0, len(rows))
	for _, row := range rows {
		checkIns = append(checkIns, NormalizeCheckIn(row))
	}
	return checkIns
}

// NormalizeGoals converts goal rows, preserving order.
func NormalizeGoals(rows []models.GoalRow) []models.Goal {
	goals := make([]models.Goal, 0, len(rows))
	for _, row := range rows {
		goals = append(goals, models.Goal{
			ID:          row.ID,
			UserID:      row.UserID,
			Title:       str(row.Title),
			Description: str(row.Description),
			LifeArea:    str(row.LifeArea),
			Status:      str(row.Status),
			Progress:    num(row.Progress),
			TargetDate:  parseOptionalTime(row.TargetDate),
			CompletedAt: parseOptionalTime(row.CompletedAt),
			CreatedAt:   ParseTimestamp(row.CreatedAt),
		})
	}
	return goals
}

// NormalizeTasks converts task rows, preserving order.
func NormalizeTasks(rows []models.TaskRow) []models.Task {
	tasks := make([]models.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, models.Task{
			ID:          row.ID,
			UserID:      row.UserID,
			GoalID:      str(row.GoalID),
			Title:       str(row.Title),
			Completed:   row.Completed != nil && *row.Completed,
			CompletedAt: parseOptionalTime(row.CompletedAt),
			DueDate:     parseOptionalTime(row.DueDate),
			CreatedAt:   ParseTimestamp(row.CreatedAt),
		})
	}
	return tasks
}

// NormalizeFinanceEntries converts finance rows, preserving order. Rows
// without a date fall back to their creation time.
func NormalizeFinanceEntries(rows []models.FinanceEntryRow) []models.FinanceEntry {
	entries := make([]models.FinanceEntry, 0, len(rows))
	for _, row := range rows {
		date := ParseTimestamp(row.Date)
		if row.Date == "" {
			date = ParseTimestamp(row.CreatedAt)
		}
		entries = append(entries, models.FinanceEntry{
			ID:          row.ID,
			UserID:      row.UserID,
			Type:        str(row.Type),
			Amount:      num(row.Amount),
			Category:    str(row.Category),
			Description: str(row.Description),
			Date:        date,
		})
	}
	return entries
}

// NormalizePeople converts people rows, preserving order.
func NormalizePeople(rows []models.PersonRow) []models.Person {
	people := make([]models.Person, 0, len(rows))
	for _, row := range rows {
		people = append(people, models.Person{
			ID:           row.ID,
			UserID:       row.UserID,
			Name:         str(row.Name),
			Relationship: str(row.Relationship),
			CreatedAt:    ParseTimestamp(row.CreatedAt),
		})
	}
	return people
}

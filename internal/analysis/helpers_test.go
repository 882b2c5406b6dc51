package analysis

import (
	"strings"
	"testing"
	"time"

	"github.com/JonnyWalker81/daybook/backend/internal/models"
)

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t.Fatalf("bad test timestamp %q: %v", s, err)
	}
	return ts.UTC()
}

func checkInAt(t *testing.T, mood string, at string) models.CheckIn {
	t.Helper()
	return models.CheckIn{
		ID:        "c-" + at,
		Mood:      mood,
		MoodScore: MoodScore(mood),
		CreatedAt: mustTime(t, at),
	}
}

func sleepCheckIn(t *testing.T, hours, minutes float64, at string) models.CheckIn {
	t.Helper()
	c := checkInAt(t, "okay", at)
	c.SleepHours = hours
	c.SleepMinutes = minutes
	c.HasSleep = true
	return c
}

func entryAt(t *testing.T, id, content string, at string) models.JournalEntry {
	t.Helper()
	return models.JournalEntry{
		ID:               id,
		Content:          content,
		ProcessingType:   models.ProcessingTranscribeOnly,
		ProcessingStatus: models.StatusDraft,
		CreatedAt:        mustTime(t, at),
	}
}

func textOfLength(n int) string {
	return strings.Repeat("a", n)
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

package analysis

import (
	"time"

	"github.com/JonnyWalker81/daybook/backend/internal/models"
)

// Window is an inclusive time range
type Window struct {
	Start time.Time
	End   time.Time
}

// WindowForDays returns the window covering the last n days up to now.
func WindowForDays(now time.Time, days int) Window {
	return Window{Start: now.AddDate(0, 0, -days), End: now}
}

// Contains reports whether Start <= t <= End.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

func filterBy[T any](items []T, w Window, at func(T) time.Time) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if w.Contains(at(item)) {
			out = append(out, item)
		}
	}
	return out
}

// FilterEntries keeps entries created inside the window, in input order.
func FilterEntries(entries []models.JournalEntry, w Window) []models.JournalEntry {
	return filterBy(entries, w, func(e models.JournalEntry) time.Time { return e.CreatedAt })
}

// FilterCheckIns keeps check-ins created inside the window, in input order.
func FilterCheckIns(checkIns []models.CheckIn, w Window) []models.CheckIn {
	return filterBy(checkIns, w, func(c models.CheckIn) time.Time { return c.CreatedAt })
}

// FilterFinanceEntries keeps finance entries dated inside the window.
func FilterFinanceEntries(entries []models.FinanceEntry, w Window) []models.FinanceEntry {
	return filterBy(entries, w, func(f models.FinanceEntry) time.Time { return f.Date })
}

// DayKey is the UTC calendar day of t as YYYY-MM-DD.
func DayKey(t time.Time) string {
	return t.UTC().Format(models.DateLayout)
}

// PreviousDayKey is the UTC calendar day before t.
func PreviousDayKey(t time.Time) string {
	return t.UTC().AddDate(0, 0, -1).Format(models.DateLayout)
}

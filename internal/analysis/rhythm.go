package analysis

import (
	"fmt"
	"math"

	"github.com/JonnyWalker81/daybook/backend/internal/models"
)

var dayNames = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// CalculateWritingRhythm reports on which weekdays and hours (UTC) entries
// are written.
func CalculateWritingRhythm(entries []models.JournalEntry) models.WritingRhythm {
	return models.WritingRhythm{
		DayOfWeek: calculateDayOfWeekPattern(entries),
		Hour:      calculateHourPattern(entries),
	}
}

// calculateDayOfWeekPattern analyzes day-of-week distribution
func calculateDayOfWeekPattern(entries []models.JournalEntry) models.TimePattern {
	counts := make([]float64, 7)
	for _, e := range entries {
		counts[int(e.CreatedAt.UTC().Weekday())]++
	}
	p := buildTimePattern("day_of_week", counts, len(entries))
	if len(entries) > 0 {
		p.PeakLabel = dayNames[p.PeakValue]
	}
	return p
}

// calculateHourPattern analyzes hour-of-day distribution
func calculateHourPattern(entries []models.JournalEntry) models.TimePattern {
	counts := make([]float64, 24)
	for _, e := range entries {
		counts[e.CreatedAt.UTC().Hour()]++
	}
	p := buildTimePattern("hour_of_day", counts, len(entries))
	if len(entries) > 0 {
		p.PeakLabel = formatHour(p.PeakValue)
	}
	return p
}

func buildTimePattern(kind string, counts []float64, total int) models.TimePattern {
	if total == 0 {
		return models.TimePattern{PatternType: kind, Distribution: make([]float64, len(counts))}
	}

	peak := 0
	for i, count := range counts {
		if count > counts[peak] {
			peak = i
		}
	}

	distribution := make([]float64, len(counts))
	for i, count := range counts {
		distribution[i] = (count / float64(total)) * 100
	}

	return models.TimePattern{
		PatternType:  kind,
		Distribution: distribution,
		PeakValue:    peak,
		PeakPercent:  distribution[peak],
		Consistency:  calculateConsistency(counts),
	}
}

// calculateConsistency computes normalized entropy (1 = very consistent, 0 = random)
func calculateConsistency(distribution []float64) float64 {
	n := len(distribution)
	if n == 0 {
		return 0
	}

	var total float64
	for _, v := range distribution {
		total += v
	}
	if total == 0 {
		return 0
	}

	var entropy float64
	for _, v := range distribution {
		if v > 0 {
			prob := v / total
			entropy -= prob * math.Log2(prob)
		}
	}

	maxEntropy := math.Log2(float64(n))
	if maxEntropy == 0 {
		return 1
	}
	return 1 - (entropy / maxEntropy)
}

// formatHour formats an hour (0-23) as a readable string
func formatHour(hour int) string {
	switch {
	case hour == 0:
		return "12 AM"
	case hour < 12:
		return fmt.Sprintf("%d AM", hour)
	case hour == 12:
		return "12 PM"
	default:
		return fmt.Sprintf("%d PM", hour-12)
	}
}

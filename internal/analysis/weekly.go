package analysis

import (
	"sort"
	"time"

	"github.com/JonnyWalker81/daybook/backend/internal/models"
)

// WeekKey is the UTC date of the Sunday starting t's week.
func WeekKey(t time.Time) string {
	d := startOfDay(t)
	return d.AddDate(0, 0, -int(d.Weekday())).Format(models.DateLayout)
}

type weekAccumulator struct {
	moods        []float64
	energies     []float64
	sleeps       []float64
	entryLengths []float64
}

// GroupByWeek buckets entries and check-ins into Sunday-start UTC weeks,
// ordered by week start.
func GroupByWeek(entries []models.JournalEntry, checkIns []models.CheckIn) []models.WeeklyBucket {
	weeks := make(map[string]*weekAccumulator)
	get := func(key string) *weekAccumulator {
		acc, ok := weeks[key]
		if !ok {
			acc = &weekAccumulator{}
			weeks[key] = acc
		}
		return acc
	}

	for _, c := range checkIns {
		acc := get(WeekKey(c.CreatedAt))
		acc.moods = append(acc.moods, c.MoodScore)
		acc.energies = append(acc.energies, c.Energy)
		if c.HasSleep {
			acc.sleeps = append(acc.sleeps, c.TotalSleep())
		}
	}
	for _, e := range entries {
		acc := get(WeekKey(e.CreatedAt))
		acc.entryLengths = append(acc.entryLengths, float64(EntryLength(e)))
	}

	buckets := make([]models.WeeklyBucket, 0, len(weeks))
	for key, acc := range weeks {
		buckets = append(buckets, models.WeeklyBucket{
			WeekStart:          key,
			AverageMood:        Mean(acc.moods),
			AverageEnergy:      Mean(acc.energies),
			AverageSleep:       Mean(acc.sleeps),
			CheckInCount:       len(acc.moods),
			EntryCount:         len(acc.entryLengths),
			AverageEntryLength: Mean(acc.entryLengths),
		})
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].WeekStart < buckets[j].WeekStart })
	return buckets
}

// weeklySeries extracts one metric from the weeks where include holds.
func weeklySeries(buckets []models.WeeklyBucket, include func(models.WeeklyBucket) bool, value func(models.WeeklyBucket) float64) []float64 {
	series := make([]float64, 0, len(buckets))
	for _, b := range buckets {
		if include(b) {
			series = append(series, value(b))
		}
	}
	return series
}

// BuildTrends groups the window by week and classifies each metric with
// strategy. Weeks without data for a metric are left out of its series.
func BuildTrends(entries []models.JournalEntry, checkIns []models.CheckIn, strategy TrendStrategy) models.Trends {
	buckets := GroupByWeek(entries, checkIns)
	hasCheckIns := func(b models.WeeklyBucket) bool { return b.CheckInCount > 0 }
	hasSleep := func(b models.WeeklyBucket) bool { return b.AverageSleep > 0 }
	hasEntries := func(b models.WeeklyBucket) bool { return b.EntryCount > 0 }

	trends := models.Trends{
		Weekly:           buckets,
		MoodTrend:        strategy.Direction(weeklySeries(buckets, hasCheckIns, func(b models.WeeklyBucket) float64 { return b.AverageMood })),
		EnergyTrend:      strategy.Direction(weeklySeries(buckets, hasCheckIns, func(b models.WeeklyBucket) float64 { return b.AverageEnergy })),
		SleepTrend:       strategy.Direction(weeklySeries(buckets, hasSleep, func(b models.WeeklyBucket) float64 { return b.AverageSleep })),
		EntryLengthTrend: strategy.Direction(weeklySeries(buckets, hasEntries, func(b models.WeeklyBucket) float64 { return b.AverageEntryLength })),
	}
	if len(entries) > 0 {
		rhythm := CalculateWritingRhythm(entries)
		trends.Rhythm = &rhythm
	}
	return trends
}

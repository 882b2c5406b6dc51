package analysis

import (
	"sort"

	"github.com/JonnyWalker81/daybook/backend/internal/models"
)

type dayAccumulator struct {
	moodTotal   float64
	count       int
	energyTotal float64
	energyMin   float64
	energyMax   float64
	sleepTotal  float64
	sleepCount  int
	moodCounts  map[string]int
	moodOrder   []string
}

// AggregateByDay groups check-ins by UTC day and averages each day.
func AggregateByDay(checkIns []models.CheckIn) map[string]models.DailyAggregate {
	days := make(map[string]*dayAccumulator)

	for _, c := range checkIns {
		key := DayKey(c.CreatedAt)
		acc, ok := days[key]
		if !ok {
			acc = &dayAccumulator{
				energyMin:  c.Energy,
				energyMax:  c.Energy,
				moodCounts: make(map[string]int),
			}
			days[key] = acc
		}

		acc.count++
		acc.moodTotal += c.MoodScore
		acc.energyTotal += c.Energy
		if c.Energy < acc.energyMin {
			acc.energyMin = c.Energy
		}
		if c.Energy > acc.energyMax {
			acc.energyMax = c.Energy
		}
		if c.HasSleep {
			acc.sleepTotal += c.TotalSleep()
			acc.sleepCount++
		}
		if _, seen := acc.moodCounts[c.Mood]; !seen {
			acc.moodOrder = append(acc.moodOrder, c.Mood)
		}
		acc.moodCounts[c.Mood]++
	}

	result := make(map[string]models.DailyAggregate, len(days))
	for key, acc := range days {
		var avgSleep float64
		if acc.sleepCount > 0 {
			avgSleep = acc.sleepTotal / float64(acc.sleepCount)
		}

		result[key] = models.DailyAggregate{
			Date:          key,
			AverageMood:   acc.moodTotal / float64(acc.count),
			MoodCount:     acc.count,
			DominantMood:  dominantLabel(acc.moodOrder, acc.moodCounts),
			AverageEnergy: acc.energyTotal / float64(acc.count),
			EnergyRange:   models.EnergyRange{Min: acc.energyMin, Max: acc.energyMax},
			AverageSleep:  avgSleep,
			SleepCount:    acc.sleepCount,
			SleepQuality:  ClassifySleep(avgSleep),
		}
	}
	return result
}

// SortedAggregates returns the aggregates ordered by day.
func SortedAggregates(daily map[string]models.DailyAggregate) []models.DailyAggregate {
	out := make([]models.DailyAggregate, 0, len(daily))
	for _, agg := range daily {
		out = append(out, agg)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// ClassifySleep buckets average hours of sleep.
func ClassifySleep(hours float64) models.SleepQuality {
	switch {
	case hours >= 8:
		return models.SleepExcellent
	case hours >= 7:
		return models.SleepGood
	case hours >= 6:
		return models.SleepFair
	default:
		return models.SleepPoor
	}
}

// dominantLabel picks the most frequent label; on a tie the label seen first wins.
func dominantLabel(order []string, counts map[string]int) string {
	best := ""
	bestCount := 0
	for _, label := range order {
		if counts[label] > bestCount {
			best = label
			bestCount = counts[label]
		}
	}
	return best
}

// DominantMood returns the most frequent mood label across check-ins.
func DominantMood(checkIns []models.CheckIn) string {
	counts := make(map[string]int)
	var order []string
	for _, c := range checkIns {
		if _, seen := counts[c.Mood]; !seen {
			order = append(order, c.Mood)
		}
		counts[c.Mood]++
	}
	return dominantLabel(order, counts)
}

package recap

import (
	"fmt"

	"github.com/JonnyWalker81/daybook/backend/internal/analysis"
	"github.com/JonnyWalker81/daybook/backend/internal/models"
)

// MaxTopThemes bounds the themes listed in a stored recap
const MaxTopThemes = 3

// Summary is what gets persisted for a generated recap.
type Summary struct {
	Content         models.RecapContent
	Insights        []models.Insight
	Recommendations []models.Insight
}

// Summarize computes the stored body of a recap for the period. Trends use
// ThresholdTrend, like the mood card.
func Summarize(in Input, recapType models.RecapType) Summary {
	entries := analysis.FilterEntries(in.Entries, in.Window)
	checkIns := analysis.FilterCheckIns(in.CheckIns, in.Window)
	daily := analysis.AggregateByDay(checkIns)
	sorted := analysis.SortedAggregates(daily)

	moods := make([]float64, 0, len(sorted))
	energies := make([]float64, 0, len(sorted))
	sleeps := make([]float64, 0, len(sorted))
	for _, d := range sorted {
		moods = append(moods, d.AverageMood)
		energies = append(energies, d.AverageEnergy)
		if d.SleepCount > 0 {
			sleeps = append(sleeps, d.AverageSleep)
		}
	}

	themeCounts := make(map[string]int)
	for _, e := range entries {
		for _, theme := range analysis.ExtractContentThemes(e.EffectiveText(), in.Rules.BasicThemes) {
			themeCounts[theme]++
		}
	}
	themes := analysis.RankThemes(themeCounts)
	if len(themes) > MaxTopThemes {
		themes = themes[:MaxTopThemes]
	}

	goals := analysis.GoalCompletion(in.Goals)
	stats := models.RecapStats{
		EntryCount:     len(entries),
		CheckInCount:   len(checkIns),
		AverageMood:    round1(analysis.Mean(moods)),
		AverageEnergy:  round1(analysis.Mean(energies)),
		AverageSleep:   round1(analysis.Mean(sleeps)),
		MoodTrend:      analysis.ThresholdTrend{}.Direction(moods),
		EnergyTrend:    analysis.ThresholdTrend{}.Direction(energies),
		TopThemes:      themes,
		GoalsCompleted: goals.Completed,
		GoalsTotal:     goals.Total,
	}

	insightInput := analysis.InsightInput{
		Daily:            sorted,
		MoodCorrelations: analysis.ScoreMoodCorrelations(entries, daily),
		EntryCount:       len(entries),
		Goals:            in.Goals,
	}
	insights := analysis.GenerateRecapInsights(insightInput)

	return Summary{
		Content: models.RecapContent{
			Summary: summaryText(recapType, stats),
			Stats:   stats,
			Weekly:  analysis.GroupByWeek(entries, checkIns),
		},
		Insights:        insights,
		Recommendations: analysis.GenerateRecommendations(insights, len(entries)),
	}
}

func summaryText(recapType models.RecapType, s models.RecapStats) string {
	period := "week"
	if recapType == models.RecapMonthly {
		period = "month"
	}

	text := fmt.Sprintf("This %s you wrote %d %s and checked in %d %s.",
		period, s.EntryCount, plural(s.EntryCount, "entry", "entries"), s.CheckInCount, plural(s.CheckInCount, "time", "times"))
	if s.CheckInCount > 0 {
		text += fmt.Sprintf(" Your average mood was %.1f and your mood trend was %s.", s.AverageMood, s.MoodTrend)
	}
	if len(s.TopThemes) > 0 {
		text += fmt.Sprintf(" You wrote most about %s.", s.TopThemes[0].Theme)
	}
	return text
}

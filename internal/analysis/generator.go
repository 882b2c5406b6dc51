package analysis

import (
	"fmt"

	"github.com/JonnyWalker81/daybook/backend/internal/models"
)

// Goal completion rate bounds, in percent
const (
	StrongGoalRate = 70.0
	WeakGoalRate   = 30.0

	MinEntriesPerWindow = 3
)

// Insight titles
const (
	TitlePositiveMood       = "Positive Mood Trend"
	TitleMoodImprovement    = "Mood Improvement Opportunity"
	TitleHighEnergy         = "High Energy Levels"
	TitleEnergyBoost        = "Energy Boost Needed"
	TitleHealthySleep       = "Healthy Sleep Pattern"
	TitleSleepImprovement   = "Sleep Improvement Needed"
	TitleExpressiveGoodDays = "Expressive on Good Days"
	TitleBriefHardDays      = "Brief Entries on Hard Days"
	TitleStrongGoalProgress = "Strong Goal Progress"
	TitleGoalChallenge      = "Goal Completion Challenge"
	TitleIncreaseJournaling = "Increase Journaling"
	TitleProtectSleep       = "Protect Your Sleep"
	TitleEnergizingRoutine  = "Build an Energizing Routine"
	TitleSmallerGoalSteps   = "Break Goals into Smaller Steps"
	TitleReachOut           = "Reach Out for Support"
)

// InsightInput carries the aggregates the rule table reads.
type InsightInput struct {
	Daily            []models.DailyAggregate
	MoodCorrelations []models.MoodCorrelation
	EntryCount       int
	Goals            []models.Goal
}

// GenerateInsights applies the independent observation rules. Rules over
// empty collections never fire.
func GenerateInsights(in InsightInput) []models.Insight {
	insights := make([]models.Insight, 0)
	insights = append(insights, moodInsights(in.Daily)...)
	insights = append(insights, energyInsights(in.Daily)...)
	insights = append(insights, sleepInsights(in.Daily)...)
	insights = append(insights, writingInsights(in.MoodCorrelations)...)
	insights = append(insights, goalInsights(in.Goals)...)
	return insights
}

// GenerateRecommendations derives follow-up actions from fired insights and
// the journaling frequency of the window.
func GenerateRecommendations(insights []models.Insight, entryCount int) []models.Insight {
	recs := make([]models.Insight, 0)
	if entryCount < MinEntriesPerWindow {
		recs = append(recs, models.Insight{
			Type:     models.InsightTypeRecommendation,
			Title:    TitleIncreaseJournaling,
			Message:  fmt.Sprintf("You wrote %d %s in this period. Try journaling at least %d times to see clearer patterns.", entryCount, plural(entryCount, "entry", "entries"), MinEntriesPerWindow),
			Priority: models.PriorityMedium,
		})
	}

	for _, in := range insights {
		switch in.Title {
		case TitleSleepImprovement:
			recs = append(recs, recommendation(TitleProtectSleep, "Set a consistent bedtime and aim for at least 7 hours of sleep.", models.PriorityHigh))
		case TitleEnergyBoost:
			recs = append(recs, recommendation(TitleEnergizingRoutine, "Short walks, regular meals and breaks away from screens can lift low-energy days.", models.PriorityMedium))
		case TitleGoalChallenge:
			recs = append(recs, recommendation(TitleSmallerGoalSteps, "Split your open goals into tasks you can finish this week.", models.PriorityMedium))
		case TitleMoodImprovement:
			recs = append(recs, recommendation(TitleReachOut, "Consider talking with a friend or someone you trust about how you have been feeling.", models.PriorityHigh))
		}
	}
	return recs
}

// GenerateCorrelationInsights is the rule output for the correlations view:
// observations followed by recommendations.
func GenerateCorrelationInsights(in InsightInput) []models.Insight {
	insights := GenerateInsights(in)
	return append(insights, GenerateRecommendations(insights, in.EntryCount)...)
}

// GenerateRecapInsights returns the observations stored with a recap.
func GenerateRecapInsights(in InsightInput) []models.Insight {
	return GenerateInsights(in)
}

func moodInsights(daily []models.DailyAggregate) []models.Insight {
	var values []float64
	for _, d := range daily {
		if d.MoodCount > 0 {
			values = append(values, d.AverageMood)
		}
	}
	if len(values) == 0 {
		return nil
	}

	high, low := countAbove(values, HighMoodThreshold), countBelow(values, LowMoodThreshold)
	avg := Mean(values)
	switch {
	case high > low:
		return []models.Insight{{
			Type:     models.InsightTypeMood,
			Title:    TitlePositiveMood,
			Message:  fmt.Sprintf("You had %d high-mood %s against %d low ones, with an average mood of %.1f.", high, plural(high, "day", "days"), low, avg),
			Priority: models.PriorityLow,
		}}
	case low > high:
		return []models.Insight{{
			Type:     models.InsightTypeMood,
			Title:    TitleMoodImprovement,
			Message:  fmt.Sprintf("You had %d low-mood %s against %d high ones, with an average mood of %.1f.", low, plural(low, "day", "days"), high, avg),
			Priority: models.PriorityHigh,
		}}
	}
	return nil
}

func energyInsights(daily []models.DailyAggregate) []models.Insight {
	var values []float64
	for _, d := range daily {
		if d.MoodCount > 0 {
			values = append(values, d.AverageEnergy)
		}
	}
	if len(values) == 0 {
		return nil
	}

	high, low := countAbove(values, HighEnergyThreshold), countBelow(values, LowEnergyThreshold)
	avg := Mean(values)
	switch {
	case high > low:
		return []models.Insight{{
			Type:     models.InsightTypeEnergy,
			Title:    TitleHighEnergy,
			Message:  fmt.Sprintf("Your energy was high on %d %s, averaging %.1f.", high, plural(high, "day", "days"), avg),
			Priority: models.PriorityLow,
		}}
	case low > high:
		return []models.Insight{{
			Type:     models.InsightTypeEnergy,
			Title:    TitleEnergyBoost,
			Message:  fmt.Sprintf("Your energy was low on %d %s, averaging %.1f.", low, plural(low, "day", "days"), avg),
			Priority: models.PriorityHigh,
		}}
	}
	return nil
}

func sleepInsights(daily []models.DailyAggregate) []models.Insight {
	var values []float64
	for _, d := range daily {
		if d.SleepCount > 0 {
			values = append(values, d.AverageSleep)
		}
	}
	if len(values) == 0 {
		return nil
	}

	good := countAtLeast(values, GoodSleepThreshold)
	poor := countBelow(values, PoorSleepThreshold)
	avg := Mean(values)
	switch {
	case good > poor:
		return []models.Insight{{
			Type:     models.InsightTypeSleep,
			Title:    TitleHealthySleep,
			Message:  fmt.Sprintf("You slept 7 hours or more on %d %s, averaging %.1f hours.", good, plural(good, "night", "nights"), avg),
			Priority: models.PriorityLow,
		}}
	case poor > good:
		return []models.Insight{{
			Type:     models.InsightTypeSleep,
			Title:    TitleSleepImprovement,
			Message:  fmt.Sprintf("You slept under 6 hours on %d %s, averaging %.1f hours.", poor, plural(poor, "night", "nights"), avg),
			Priority: models.PriorityHigh,
		}}
	}
	return nil
}

func writingInsights(correlations []models.MoodCorrelation) []models.Insight {
	var longGood, shortHard int
	for _, c := range correlations {
		if c.HighMoodLongEntries {
			longGood++
		}
		if c.LowMoodShortEntries {
			shortHard++
		}
	}

	var out []models.Insight
	if longGood > 0 {
		out = append(out, models.Insight{
			Type:     models.InsightTypeWriting,
			Title:    TitleExpressiveGoodDays,
			Message:  fmt.Sprintf("You wrote longer entries on %d high-mood %s.", longGood, plural(longGood, "day", "days")),
			Priority: models.PriorityMedium,
		})
	}
	if shortHard > 0 {
		out = append(out, models.Insight{
			Type:     models.InsightTypeWriting,
			Title:    TitleBriefHardDays,
			Message:  fmt.Sprintf("You kept entries short on %d low-mood %s. Writing a little more on hard days can help you process them.", shortHard, plural(shortHard, "day", "days")),
			Priority: models.PriorityMedium,
		})
	}
	return out
}

func goalInsights(goals []models.Goal) []models.Insight {
	if len(goals) == 0 {
		return nil
	}
	stats := GoalCompletion(goals)
	switch {
	case stats.CompletionRate > StrongGoalRate:
		return []models.Insight{{
			Type:     models.InsightTypeGoals,
			Title:    TitleStrongGoalProgress,
			Message:  fmt.Sprintf("You completed %d of %d goals (%.0f%%).", stats.Completed, stats.Total, stats.CompletionRate),
			Priority: models.PriorityLow,
		}}
	case stats.CompletionRate < WeakGoalRate:
		return []models.Insight{{
			Type:     models.InsightTypeGoals,
			Title:    TitleGoalChallenge,
			Message:  fmt.Sprintf("You have completed %d of %d goals (%.0f%%).", stats.Completed, stats.Total, stats.CompletionRate),
			Priority: models.PriorityHigh,
		}}
	}
	return nil
}

// GoalCompletion counts completed goals. The rate is 0 when there are none.
func GoalCompletion(goals []models.Goal) models.GoalStats {
	stats := models.GoalStats{Total: len(goals)}
	for _, g := range goals {
		if g.IsCompleted() {
			stats.Completed++
		}
	}
	if stats.Total > 0 {
		stats.CompletionRate = float64(stats.Completed*100) / float64(stats.Total)
	}
	return stats
}

func recommendation(title, message string, priority models.Priority) models.Insight {
	return models.Insight{Type: models.InsightTypeRecommendation, Title: title, Message: message, Priority: priority}
}

func countAbove(values []float64, threshold float64) int {
	n := 0
	for _, v := range values {
		if v > threshold {
			n++
		}
	}
	return n
}

func countAtLeast(values []float64, threshold float64) int {
	n := 0
	for _, v := range values {
		if v >= threshold {
			n++
		}
	}
	return n
}

func countBelow(values []float64, threshold float64) int {
	n := 0
	for _, v := range values {
		if v < threshold {
			n++
		}
	}
	return n
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

package analysis

import (
	"fmt"
	"sort"
	"time"

	"github.com/JonnyWalker81/daybook/backend/internal/models"
)

// Nudge thresholds
const (
	InactivityDays     = 3
	RecentMoodCheckIns = 3
	SleepLookbackDays  = 7
	DeadlineWindowDays = 3
	MinStreakForNudge  = 2
)

const day = 24 * time.Hour

// NudgeInput is the data the nudge rules look at.
type NudgeInput struct {
	Entries  []models.JournalEntry
	CheckIns []models.CheckIn
	Goals    []models.Goal
	Now      time.Time
}

// CalculateStreaks finds the current and longest runs of consecutive UTC
// days with at least one entry. The current streak is active when the
// last entry was written today or yesterday.
func CalculateStreaks(entries []models.JournalEntry, now time.Time) (current, longest models.Streak) {
	days := make(map[string]bool)
	for _, e := range entries {
		if !e.CreatedAt.IsZero() {
			days[DayKey(e.CreatedAt)] = true
		}
	}
	if len(days) == 0 {
		return
	}

	dates := make([]time.Time, 0, len(days))
	for key := range days {
		t, _ := time.Parse(models.DateLayout, key)
		dates = append(dates, t)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	currentStart := dates[0]
	currentLength := 1
	longest = models.Streak{Length: 1, StartDate: DayKey(dates[0]), EndDate: DayKey(dates[0])}

	for i := 1; i < len(dates); i++ {
		if dates[i].Sub(dates[i-1]) <= day {
			currentLength++
		} else {
			currentStart = dates[i]
			currentLength = 1
		}
		if currentLength > longest.Length {
			longest = models.Streak{Length: currentLength, StartDate: DayKey(currentStart), EndDate: DayKey(dates[i])}
		}
	}

	last := dates[len(dates)-1]
	today := startOfDay(now)
	if today.Sub(last) <= day {
		current = models.Streak{
			Length:    currentLength,
			StartDate: DayKey(currentStart),
			EndDate:   DayKey(last),
			IsActive:  true,
		}
	}
	longest.IsActive = current.IsActive && longest.EndDate == current.EndDate
	return
}

// GenerateNudges applies the nudge rules and reports streaks.
func GenerateNudges(in NudgeInput) models.NudgesResponse {
	current, longest := CalculateStreaks(in.Entries, in.Now)
	nudges := make([]models.Insight, 0)

	if current.IsActive && current.Length >= MinStreakForNudge {
		nudges = append(nudges, models.Insight{
			Type:     models.InsightTypeStreak,
			Title:    "Keep Your Streak Going",
			Message:  fmt.Sprintf("You have journaled %d days in a row. Write today to keep it going.", current.Length),
			Priority: models.PriorityLow,
		})
	}

	if n := inactivityNudge(in.Entries, in.Now); n != nil {
		nudges = append(nudges, *n)
	}
	if n := lowMoodNudge(in.CheckIns); n != nil {
		nudges = append(nudges, *n)
	}
	if n := shortSleepNudge(in.CheckIns, in.Now); n != nil {
		nudges = append(nudges, *n)
	}
	nudges = append(nudges, deadlineNudges(in.Goals, in.Now)...)

	return models.NudgesResponse{Nudges: nudges, CurrentStreak: current, LongestStreak: longest}
}

func inactivityNudge(entries []models.JournalEntry, now time.Time) *models.Insight {
	var last time.Time
	for _, e := range entries {
		if e.CreatedAt.After(last) {
			last = e.CreatedAt
		}
	}
	if last.IsZero() {
		return &models.Insight{
			Type:     models.InsightTypeInactivity,
			Title:    "Start Your Journal",
			Message:  "Write your first entry to start seeing insights about your days.",
			Priority: models.PriorityMedium,
		}
	}

	idle := int(now.Sub(last) / day)
	if idle < InactivityDays {
		return nil
	}
	return &models.Insight{
		Type:     models.InsightTypeInactivity,
		Title:    "Time to Reflect",
		Message:  fmt.Sprintf("It has been %d days since your last entry. A few lines is enough to get back into it.", idle),
		Priority: models.PriorityMedium,
	}
}

func lowMoodNudge(checkIns []models.CheckIn) *models.Insight {
	if len(checkIns) == 0 {
		return nil
	}
	recent := make([]models.CheckIn, len(checkIns))
	copy(recent, checkIns)
	sort.SliceStable(recent, func(i, j int) bool { return recent[i].CreatedAt.After(recent[j].CreatedAt) })
	if len(recent) > RecentMoodCheckIns {
		recent = recent[:RecentMoodCheckIns]
	}

	scores := make([]float64, len(recent))
	for i, c := range recent {
		scores[i] = c.MoodScore
	}
	avg := Mean(scores)
	if avg >= LowMoodThreshold {
		return nil
	}
	return &models.Insight{
		Type:     models.InsightTypeMood,
		Title:    "Checking In on You",
		Message:  fmt.Sprintf("Your last %d check-ins averaged a mood of %.1f. Writing about what is weighing on you may help.", len(recent), avg),
		Priority: models.PriorityHigh,
	}
}

func shortSleepNudge(checkIns []models.CheckIn, now time.Time) *models.Insight {
	window := WindowForDays(now, SleepLookbackDays)
	var sleeps []float64
	for _, c := range checkIns {
		if c.HasSleep && window.Contains(c.CreatedAt) {
			sleeps = append(sleeps, c.TotalSleep())
		}
	}
	if len(sleeps) == 0 {
		return nil
	}
	avg := Mean(sleeps)
	if avg >= PoorSleepThreshold {
		return nil
	}
	return &models.Insight{
		Type:     models.InsightTypeSleep,
		Title:    "Rest Up",
		Message:  fmt.Sprintf("You averaged %.1f hours of sleep over the last %d days.", avg, SleepLookbackDays),
		Priority: models.PriorityMedium,
	}
}

func deadlineNudges(goals []models.Goal, now time.Time) []models.Insight {
	out := make([]models.Insight, 0)
	today := startOfDay(now)
	horizon := today.AddDate(0, 0, DeadlineWindowDays)
	for _, g := range goals {
		if g.IsCompleted() || g.TargetDate == nil {
			continue
		}
		target := startOfDay(*g.TargetDate)
		if target.Before(today) || target.After(horizon) {
			continue
		}
		daysLeft := int(target.Sub(today) / day)
		out = append(out, models.Insight{
			Type:     models.InsightTypeDeadline,
			Title:    "Goal Deadline Approaching",
			Message:  fmt.Sprintf("%q is due in %d %s.", g.Title, daysLeft, plural(daysLeft, "day", "days")),
			Priority: models.PriorityMedium,
		})
	}
	return out
}

func startOfDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

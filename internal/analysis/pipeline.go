package analysis

import "github.com/JonnyWalker81/daybook/backend/internal/models"

// Sections of the correlations response that can be requested on their own
const (
	SectionAll     = "all"
	SectionMood    = "mood"
	SectionEnergy  = "energy"
	SectionSleep   = "sleep"
	SectionContent = "content"
)

// ValidSection reports whether s names a correlations section.
func ValidSection(s string) bool {
	switch s {
	case SectionAll, SectionMood, SectionEnergy, SectionSleep, SectionContent:
		return true
	}
	return false
}

// CorrelationInput is the normalized data for one correlations request.
type CorrelationInput struct {
	Entries  []models.JournalEntry
	CheckIns []models.CheckIn
	Goals    []models.Goal
	Window   Window
	Section  string
	Rules    Rules
}

// BuildCorrelations runs the pipeline: window filter, daily aggregation,
// correlation scoring, content analysis, weekly trends and insights.
// Sections not requested are returned empty. Insights always read the full
// mood correlations so the section filter never changes them.
func BuildCorrelations(in CorrelationInput) models.CorrelationsResponse {
	entries := FilterEntries(in.Entries, in.Window)
	checkIns := FilterCheckIns(in.CheckIns, in.Window)
	daily := AggregateByDay(checkIns)
	moodCorrelations := ScoreMoodCorrelations(entries, daily)

	want := func(section string) bool { return in.Section == SectionAll || in.Section == "" || in.Section == section }

	resp := models.CorrelationsResponse{
		MoodCorrelations:   make([]models.MoodCorrelation, 0),
		EnergyCorrelations: make([]models.EnergyCorrelation, 0),
		SleepCorrelations:  make([]models.SleepCorrelation, 0),
	}
	if want(SectionMood) {
		resp.MoodCorrelations = moodCorrelations
	}
	if want(SectionEnergy) {
		resp.EnergyCorrelations = ScoreEnergyCorrelations(entries, daily)
	}
	if want(SectionSleep) {
		resp.SleepCorrelations = ScoreSleepCorrelations(entries, daily)
	}
	if want(SectionContent) {
		patterns := AnalyzeContentPatterns(entries, in.Rules)
		resp.ContentPatterns = &patterns
	}

	resp.Trends = BuildTrends(entries, checkIns, RelativeTrend{})
	resp.Insights = GenerateCorrelationInsights(InsightInput{
		Daily:            SortedAggregates(daily),
		MoodCorrelations: moodCorrelations,
		EntryCount:       len(entries),
		Goals:            in.Goals,
	})
	return resp
}

package analysis

import (
	"reflect"
	"testing"

	"github.com/JonnyWalker81/daybook/backend/internal/models"
)

func TestExtractContentThemes(t *testing.T) {
	rules := DefaultRules()

	got := ExtractContentThemes("I went to work and talked to my friend about money", rules.BasicThemes)
	want := []string{"work", "relationships", "finance"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("themes = %v, want %v", got, want)
	}

	if got := ExtractContentThemes("", rules.BasicThemes); len(got) != 0 {
		t.Errorf("empty text themes = %v, want none", got)
	}
}

func TestExtractContentThemes_LifeAreas(t *testing.T) {
	rules := DefaultRules()
	got := ExtractContentThemes("Called Mom, then went to the gym and read a book at church", rules.LifeAreaThemes)
	want := []string{AreaHealth, AreaFamily, AreaPersonalGrowth, AreaSpirituality}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("themes = %v, want %v", got, want)
	}
}

func TestSentimentStrategiesDiverge(t *testing.T) {
	rules := DefaultRules()
	substring := rules.Substring()
	token := rules.Token()

	// "goodness" contains "good" as a substring but is not the token "good".
	text := "Goodness, what a day."
	if got := substring.Analyze(text); got.Label != models.SentimentPositive || got.PositiveCount != 1 {
		t.Errorf("substring = %+v, want positive with 1 hit", got)
	}
	if got := token.Analyze(text); got.Label != models.SentimentNeutral || got.PositiveCount != 0 {
		t.Errorf("token = %+v, want neutral", got)
	}
}

func TestTokenSentiment_CountsRepeatsAndTrimsPunctuation(t *testing.T) {
	token := DefaultRules().Token()

	got := token.Analyze("Happy! So happy, but tired... (sad)")
	if got.PositiveCount != 2 || got.NegativeCount != 2 {
		t.Errorf("counts = %d/%d, want 2/2", got.PositiveCount, got.NegativeCount)
	}
	if got.Label != models.SentimentNeutral {
		t.Errorf("label = %q, want neutral on a tie", got.Label)
	}
}

func TestSubstringSentiment_CountsEachWordOnce(t *testing.T) {
	s := SubstringSentiment{Positive: []string{"happy"}, Negative: []string{"sad", "tired"}}

	got := s.Analyze("happy happy happy but tired")
	if got.PositiveCount != 1 || got.NegativeCount != 1 || got.Label != models.SentimentNeutral {
		t.Errorf("got %+v", got)
	}

	got = s.Analyze("SAD and tired")
	if got.Label != models.SentimentNegative {
		t.Errorf("label = %q, want negative", got.Label)
	}
}

func TestAnalyzeContentPatterns(t *testing.T) {
	entries := []models.JournalEntry{
		entryAt(t, "e1", "So grateful for my friend today. I realized work is not everything.", "2024-05-01T10:00:00Z"),
		entryAt(t, "e2", "Stressed about money and bills. What should I do?", "2024-05-02T10:00:00Z"),
		entryAt(t, "e3", "", "2024-05-03T10:00:00Z"),
	}

	patterns := AnalyzeContentPatterns(entries, DefaultRules())

	if len(patterns.Entries) != 3 {
		t.Fatalf("len(Entries) = %d, want 3", len(patterns.Entries))
	}

	first := patterns.Entries[0]
	if first.Sentiment != models.SentimentPositive {
		t.Errorf("e1 sentiment = %q, want positive", first.Sentiment)
	}
	if !first.Flags.MentionsGratitude || !first.Flags.IsReflective || first.Flags.AsksQuestions {
		t.Errorf("e1 flags = %+v", first.Flags)
	}
	if first.WordCount != 12 {
		t.Errorf("e1 WordCount = %d, want 12", first.WordCount)
	}

	second := patterns.Entries[1]
	if second.Sentiment != models.SentimentNegative || !second.Flags.AsksQuestions {
		t.Errorf("e2 = %+v", second)
	}
	if !reflect.DeepEqual(second.Themes, []string{"finance"}) {
		t.Errorf("e2 themes = %v", second.Themes)
	}

	third := patterns.Entries[2]
	if third.EntryLength != 0 || third.WordCount != 0 || len(third.Themes) != 0 {
		t.Errorf("empty entry = %+v", third)
	}

	summary := patterns.Summary
	if summary.TotalEntries != 3 {
		t.Errorf("TotalEntries = %d", summary.TotalEntries)
	}
	want := models.SentimentDistribution{Positive: 1, Negative: 1, Neutral: 1}
	if summary.SentimentDistribution != want {
		t.Errorf("distribution = %+v, want %+v", summary.SentimentDistribution, want)
	}
	if summary.GratitudeEntries != 1 || summary.ReflectiveEntries != 1 {
		t.Errorf("flag counts = %d/%d", summary.GratitudeEntries, summary.ReflectiveEntries)
	}
	wantThemes := []models.ThemeCount{
		{Theme: "finance", Count: 1},
		{Theme: "relationships", Count: 1},
		{Theme: "work", Count: 1},
	}
	if !reflect.DeepEqual(summary.ThemeFrequency, wantThemes) {
		t.Errorf("ThemeFrequency = %+v, want %+v", summary.ThemeFrequency, wantThemes)
	}
}

func TestAnalyzeContentPatterns_Empty(t *testing.T) {
	patterns := AnalyzeContentPatterns(nil, DefaultRules())
	if patterns.Entries == nil || patterns.Summary.ThemeFrequency == nil {
		t.Error("empty analysis should return empty, non-nil slices")
	}
	if patterns.Summary.AverageWordCount != 0 {
		t.Errorf("AverageWordCount = %v, want 0", patterns.Summary.AverageWordCount)
	}
}

func TestRankThemes(t *testing.T) {
	got := RankThemes(map[string]int{"work": 2, "health": 5, "finance": 2})
	want := []models.ThemeCount{
		{Theme: "health", Count: 5},
		{Theme: "finance", Count: 2},
		{Theme: "work", Count: 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("RankThemes = %+v, want %+v", got, want)
	}
}

func TestKeywordRuleSet_WithOverrides(t *testing.T) {
	base := KeywordRuleSet{
		{Category: "work", Keywords: []string{"work"}},
		{Category: "health", Keywords: []string{"gym"}},
	}

	got := base.WithOverrides(map[string][]string{
		"health": {"Yoga"},
		"pets":   {"dog", "cat"},
	})

	if !reflect.DeepEqual(got.Categories(), []string{"work", "health", "pets"}) {
		t.Errorf("categories = %v", got.Categories())
	}
	if !reflect.DeepEqual(got.Keywords("health"), []string{"yoga"}) {
		t.Errorf("health keywords = %v, want [yoga]", got.Keywords("health"))
	}
	if !reflect.DeepEqual(base.Keywords("health"), []string{"gym"}) {
		t.Error("WithOverrides must not modify the receiver")
	}
	if !got.Matches("Walked the DOG", "pets") {
		t.Error("override category should match case-insensitively")
	}
}

func TestRules_WithThemeOverrides(t *testing.T) {
	rules := DefaultRules().WithThemeOverrides(map[string][]string{
		"family": {"grandma"},
		"work":   {"shift"},
	})

	if !rules.LifeAreaThemes.Matches("visited grandma", AreaFamily) {
		t.Error("family override should apply to life-area themes")
	}
	if rules.BasicThemes.Keywords("family") != nil {
		t.Error("life-area-only category should not leak into basic themes")
	}
	if !rules.BasicThemes.Matches("long shift today", "work") {
		t.Error("work override should apply to basic themes")
	}
}

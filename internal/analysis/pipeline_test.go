package analysis

import (
	"math"
	"reflect"
	"testing"

	"github.com/JonnyWalker81/daybook/backend/internal/models"
)

func TestBuildCorrelations_EndToEnd(t *testing.T) {
	now := mustTime(t, "2024-05-02T00:00:00Z")
	checkIns := []models.CheckIn{
		checkInAt(t, "😊", "2024-05-01T08:00:00Z"),
		checkInAt(t, "😊", "2024-05-01T13:00:00Z"),
		checkInAt(t, "😐", "2024-05-01T19:00:00Z"),
	}
	entry := entryAt(t, "e1", textOfLength(600), "2024-05-01T21:00:00Z")

	resp := BuildCorrelations(CorrelationInput{
		Entries:  []models.JournalEntry{entry},
		CheckIns: checkIns,
		Window:   WindowForDays(now, 30),
		Section:  SectionAll,
		Rules:    DefaultRules(),
	})

	if len(resp.MoodCorrelations) != 1 {
		t.Fatalf("len(MoodCorrelations) = %d, want 1", len(resp.MoodCorrelations))
	}
	mc := resp.MoodCorrelations[0]
	if math.Abs(mc.AverageMood-7.667) > 0.001 {
		t.Errorf("AverageMood = %v, want ~7.667", mc.AverageMood)
	}
	if mc.EntryLength != 600 {
		t.Errorf("EntryLength = %d, want 600", mc.EntryLength)
	}
	if !mc.HighMoodLongEntries {
		t.Error("HighMoodLongEntries = false, want true")
	}
	if mc.WritingPattern != PatternHighMoodLongWriting {
		t.Errorf("WritingPattern = %q, want %q", mc.WritingPattern, PatternHighMoodLongWriting)
	}

	if len(resp.EnergyCorrelations) != 1 {
		t.Errorf("len(EnergyCorrelations) = %d, want 1", len(resp.EnergyCorrelations))
	}
	if len(resp.SleepCorrelations) != 0 {
		t.Errorf("no sleep logged, got %+v", resp.SleepCorrelations)
	}
	if resp.ContentPatterns == nil || resp.ContentPatterns.Summary.TotalEntries != 1 {
		t.Errorf("ContentPatterns = %+v", resp.ContentPatterns)
	}

	if _, ok := findInsight(resp.Insights, TitlePositiveMood); !ok {
		t.Errorf("want Positive Mood Trend in %+v", resp.Insights)
	}
	if _, ok := findInsight(resp.Insights, TitleExpressiveGoodDays); !ok {
		t.Errorf("want Expressive on Good Days in %+v", resp.Insights)
	}
	if _, ok := findInsight(resp.Insights, TitleIncreaseJournaling); !ok {
		t.Errorf("one entry should trigger Increase Journaling")
	}
}

func TestBuildCorrelations_SectionFilter(t *testing.T) {
	now := mustTime(t, "2024-05-02T00:00:00Z")
	in := CorrelationInput{
		Entries:  []models.JournalEntry{entryAt(t, "e1", "work", "2024-05-01T21:00:00Z")},
		CheckIns: []models.CheckIn{checkInAt(t, "sad", "2024-05-01T08:00:00Z")},
		Window:   WindowForDays(now, 7),
		Section:  SectionEnergy,
		Rules:    DefaultRules(),
	}

	resp := BuildCorrelations(in)
	if len(resp.EnergyCorrelations) != 1 {
		t.Errorf("energy section missing")
	}
	if len(resp.MoodCorrelations) != 0 || resp.MoodCorrelations == nil {
		t.Errorf("mood section should be empty and non-nil, got %+v", resp.MoodCorrelations)
	}
	if resp.ContentPatterns != nil {
		t.Error("content section should be omitted")
	}
}

func TestBuildCorrelations_InsightsIgnoreSection(t *testing.T) {
	now := mustTime(t, "2024-05-02T00:00:00Z")
	in := CorrelationInput{
		Entries: []models.JournalEntry{
			entryAt(t, "e1", textOfLength(600), "2024-05-01T21:00:00Z"),
		},
		CheckIns: []models.CheckIn{
			checkInAt(t, "😊", "2024-05-01T08:00:00Z"),
			checkInAt(t, "😊", "2024-05-01T13:00:00Z"),
		},
		Window:  WindowForDays(now, 30),
		Section: SectionAll,
		Rules:   DefaultRules(),
	}
	want := BuildCorrelations(in).Insights
	if _, ok := findInsight(want, TitleExpressiveGoodDays); !ok {
		t.Fatalf("want Expressive on Good Days in %+v", want)
	}

	for _, section := range []string{SectionMood, SectionEnergy, SectionSleep, SectionContent} {
		in.Section = section
		if got := BuildCorrelations(in).Insights; !reflect.DeepEqual(got, want) {
			t.Errorf("section %q insights = %+v, want %+v", section, got, want)
		}
	}
}

func TestBuildCorrelations_WindowExcludesOldData(t *testing.T) {
	now := mustTime(t, "2024-05-30T00:00:00Z")
	resp := BuildCorrelations(CorrelationInput{
		Entries:  []models.JournalEntry{entryAt(t, "e1", textOfLength(600), "2024-05-01T21:00:00Z")},
		CheckIns: []models.CheckIn{checkInAt(t, "😊", "2024-05-01T08:00:00Z")},
		Window:   WindowForDays(now, 7),
		Section:  SectionAll,
		Rules:    DefaultRules(),
	})

	if len(resp.MoodCorrelations) != 0 || len(resp.Trends.Weekly) != 0 {
		t.Errorf("data outside the window leaked: %+v", resp)
	}
}

func TestValidSection(t *testing.T) {
	for _, s := range []string{"all", "mood", "energy", "sleep", "content"} {
		if !ValidSection(s) {
			t.Errorf("ValidSection(%q) = false", s)
		}
	}
	if ValidSection("finance") {
		t.Error("ValidSection(finance) = true")
	}
}

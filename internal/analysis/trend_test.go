package analysis

import (
	"testing"

	"github.com/JonnyWalker81/daybook/backend/internal/models"
)

func TestTrendStrategies_FewerThanTwoValuesIsStable(t *testing.T) {
	strategies := map[string]TrendStrategy{
		"relative":  RelativeTrend{},
		"threshold": ThresholdTrend{},
	}

	for name, s := range strategies {
		for _, series := range [][]float64{nil, {}, {100}, {-3}} {
			if got := s.Direction(series); got != models.TrendStable {
				t.Errorf("%s.Direction(%v) = %q, want stable", name, series, got)
			}
		}
	}
}

func TestRelativeTrend(t *testing.T) {
	tests := []struct {
		name   string
		series []float64
		want   models.TrendDirection
	}{
		{"more than 10 percent up", []float64{5, 5, 6, 6}, models.TrendImproving},
		{"exactly 10 percent up", []float64{10, 11}, models.TrendStable},
		{"more than 10 percent down", []float64{10, 10, 8, 8}, models.TrendDeclining},
		{"exactly 10 percent down", []float64{10, 9}, models.TrendStable},
		{"odd length puts the middle in the second half", []float64{8, 4, 2}, models.TrendDeclining},
		{"flat", []float64{3, 3, 3}, models.TrendStable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := (RelativeTrend{}).Direction(tt.series); got != tt.want {
				t.Errorf("Direction(%v) = %q, want %q", tt.series, got, tt.want)
			}
		})
	}
}

func TestThresholdTrend(t *testing.T) {
	tests := []struct {
		name   string
		series []float64
		want   models.TrendDirection
	}{
		{"up by more than half a point", []float64{5, 5.6}, models.TrendImproving},
		{"up by exactly half a point", []float64{5, 5.5}, models.TrendStable},
		{"down by more than half a point", []float64{5, 4.4}, models.TrendDeclining},
		{"down by exactly half a point", []float64{5, 4.5}, models.TrendStable},
		{"large relative change from near zero", []float64{0.1, 0.5}, models.TrendStable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := (ThresholdTrend{}).Direction(tt.series); got != tt.want {
				t.Errorf("Direction(%v) = %q, want %q", tt.series, got, tt.want)
			}
		})
	}
}

func TestTrendStrategiesDisagree(t *testing.T) {
	series := []float64{0.1, 0.5}
	if got := (RelativeTrend{}).Direction(series); got != models.TrendImproving {
		t.Errorf("relative = %q, want improving", got)
	}
	if got := (ThresholdTrend{}).Direction(series); got != models.TrendStable {
		t.Errorf("threshold = %q, want stable", got)
	}
}

func TestMean(t *testing.T) {
	if Mean(nil) != 0 {
		t.Error("Mean(nil) should be 0")
	}
	if got := Mean([]float64{1, 2, 3, 4}); got != 2.5 {
		t.Errorf("Mean = %v, want 2.5", got)
	}
}

func TestWeekKey(t *testing.T) {
	tests := []struct {
		at   string
		want string
	}{
		{"2024-05-05T00:00:00Z", "2024-05-05"}, // Sunday
		{"2024-05-11T23:59:59Z", "2024-05-05"}, // Saturday
		{"2024-05-12T08:00:00Z", "2024-05-12"}, // next Sunday
		{"2024-05-01T12:00:00Z", "2024-04-28"}, // Wednesday, week starts in April
	}

	for _, tt := range tests {
		if got := WeekKey(mustTime(t, tt.at)); got != tt.want {
			t.Errorf("WeekKey(%s) = %s, want %s", tt.at, got, tt.want)
		}
	}
}

func TestGroupByWeek_SundayBoundary(t *testing.T) {
	// Saturday and the following Saturday, seven days apart: different weeks.
	crossing := GroupByWeek(nil, []models.CheckIn{
		checkInAt(t, "happy", "2024-05-04T10:00:00Z"),
		checkInAt(t, "sad", "2024-05-11T10:00:00Z"),
	})
	if len(crossing) != 2 {
		t.Fatalf("len = %d, want 2 buckets", len(crossing))
	}
	if crossing[0].WeekStart != "2024-04-28" || crossing[1].WeekStart != "2024-05-05" {
		t.Errorf("weeks = %s, %s", crossing[0].WeekStart, crossing[1].WeekStart)
	}

	// Sunday morning and Saturday night of the same week: one bucket.
	same := GroupByWeek(nil, []models.CheckIn{
		checkInAt(t, "happy", "2024-05-05T01:00:00Z"),
		checkInAt(t, "sad", "2024-05-11T23:00:00Z"),
	})
	if len(same) != 1 {
		t.Fatalf("len = %d, want 1 bucket", len(same))
	}
	if same[0].AverageMood != 5.5 || same[0].CheckInCount != 2 {
		t.Errorf("bucket = %+v", same[0])
	}
}

func TestGroupByWeek_Means(t *testing.T) {
	a := sleepCheckIn(t, 6, 0, "2024-05-06T08:00:00Z")
	a.Energy = 4
	b := checkInAt(t, "good", "2024-05-07T08:00:00Z")
	b.Energy = 8

	buckets := GroupByWeek(
		[]models.JournalEntry{
			entryAt(t, "e1", textOfLength(100), "2024-05-06T20:00:00Z"),
			entryAt(t, "e2", textOfLength(300), "2024-05-08T20:00:00Z"),
		},
		[]models.CheckIn{a, b},
	)

	if len(buckets) != 1 {
		t.Fatalf("len = %d, want 1", len(buckets))
	}
	w := buckets[0]
	if w.AverageEnergy != 6 {
		t.Errorf("AverageEnergy = %v, want 6", w.AverageEnergy)
	}
	if w.AverageSleep != 6 {
		t.Errorf("AverageSleep = %v, want 6 (only check-ins with sleep)", w.AverageSleep)
	}
	if w.EntryCount != 2 || w.AverageEntryLength != 200 {
		t.Errorf("entries = %d avg %v", w.EntryCount, w.AverageEntryLength)
	}
}

func TestBuildTrends(t *testing.T) {
	checkIns := []models.CheckIn{
		checkInAt(t, "sad", "2024-04-29T08:00:00Z"),
		checkInAt(t, "sad", "2024-05-06T08:00:00Z"),
		checkInAt(t, "happy", "2024-05-13T08:00:00Z"),
		checkInAt(t, "happy", "2024-05-20T08:00:00Z"),
	}

	trends := BuildTrends(nil, checkIns, RelativeTrend{})
	if len(trends.Weekly) != 4 {
		t.Fatalf("weeks = %d, want 4", len(trends.Weekly))
	}
	if trends.MoodTrend != models.TrendImproving {
		t.Errorf("MoodTrend = %q, want improving", trends.MoodTrend)
	}
	if trends.SleepTrend != models.TrendStable || trends.EntryLengthTrend != models.TrendStable {
		t.Errorf("metrics without data should be stable: %+v", trends)
	}
	if trends.Rhythm != nil {
		t.Error("Rhythm should be omitted without entries")
	}
}

func TestCalculateWritingRhythm(t *testing.T) {
	entries := []models.JournalEntry{
		entryAt(t, "e1", "", "2024-05-06T21:00:00Z"), // Monday
		entryAt(t, "e2", "", "2024-05-13T21:30:00Z"), // Monday
		entryAt(t, "e3", "", "2024-05-08T07:00:00Z"), // Wednesday
	}

	r := CalculateWritingRhythm(entries)
	if r.DayOfWeek.PeakLabel != "Monday" || r.DayOfWeek.PeakValue != 1 {
		t.Errorf("day peak = %d %s", r.DayOfWeek.PeakValue, r.DayOfWeek.PeakLabel)
	}
	if r.Hour.PeakLabel != "9 PM" {
		t.Errorf("hour peak = %s, want 9 PM", r.Hour.PeakLabel)
	}
	if r.DayOfWeek.Consistency <= 0 || r.DayOfWeek.Consistency >= 1 {
		t.Errorf("Consistency = %v, want strictly between 0 and 1", r.DayOfWeek.Consistency)
	}
}

func TestCalculateConsistency(t *testing.T) {
	if got := calculateConsistency([]float64{0, 0, 5, 0}); got != 1 {
		t.Errorf("single bucket = %v, want 1", got)
	}
	if got := calculateConsistency([]float64{1, 1, 1, 1}); got != 0 {
		t.Errorf("uniform = %v, want 0", got)
	}
	if got := calculateConsistency(nil); got != 0 {
		t.Errorf("empty = %v, want 0", got)
	}
}

func TestFormatHour(t *testing.T) {
	tests := map[int]string{0: "12 AM", 9: "9 AM", 12: "12 PM", 23: "11 PM"}
	for hour, want := range tests {
		if got := formatHour(hour); got != want {
			t.Errorf("formatHour(%d) = %s, want %s", hour, got, want)
		}
	}
}

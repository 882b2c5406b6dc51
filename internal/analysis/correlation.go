package analysis

import (
	"unicode/utf8"

	"github.com/JonnyWalker81/daybook/backend/internal/models"
)

// Writing pattern labels
const (
	PatternBalanced = "balanced"

	PatternHighMoodLongWriting  = "high_mood_long_writing"
	PatternLowMoodShortWriting  = "low_mood_short_writing"
	PatternLowMoodProcessing    = "low_mood_processing"
	PatternHighMoodBriefWriting = "high_mood_brief_writing"

	PatternHighEnergyDeepReflection = "high_energy_deep_reflection"
	PatternLowEnergyQuickCapture    = "low_energy_quick_capture"
	PatternHighEnergyQuickCapture   = "high_energy_quick_capture"
	PatternLowEnergyDeepReflection  = "low_energy_deep_reflection"

	PatternWellRestedDetailed    = "well_rested_detailed_writing"
	PatternSleepDeprivedBrief    = "sleep_deprived_brief_writing"
	PatternSleepDeprivedDetailed = "sleep_deprived_detailed_writing"
	PatternWellRestedBrief       = "well_rested_brief_writing"
)

// Thresholds shared by the correlation flags and the insight rules.
const (
	HighMoodThreshold   = 7.0
	LowMoodThreshold    = 4.0
	HighEnergyThreshold = 7.0
	LowEnergyThreshold  = 4.0
	GoodSleepThreshold  = 7.0
	PoorSleepThreshold  = 6.0

	LongEntryLength    = 500
	ShortEntryLength   = 200
	DetailedSleepEntry = 400
)

// EntryLength is the character count of the entry's effective text.
func EntryLength(e models.JournalEntry) int {
	return utf8.RuneCountInString(e.EffectiveText())
}

// ScoreMoodCorrelations pairs each entry with the mood aggregate of its day.
// Entries on days without check-ins are skipped.
func ScoreMoodCorrelations(entries []models.JournalEntry, daily map[string]models.DailyAggregate) []models.MoodCorrelation {
	out := make([]models.MoodCorrelation, 0)
	for _, e := range entries {
		day := DayKey(e.CreatedAt)
		agg, ok := daily[day]
		if !ok || agg.MoodCount == 0 {
			continue
		}
		length := EntryLength(e)
		out = append(out, models.MoodCorrelation{
			EntryID:             e.ID,
			Date:                day,
			AverageMood:         agg.AverageMood,
			DominantMood:        agg.DominantMood,
			EntryLength:         length,
			HighMoodLongEntries: agg.AverageMood > HighMoodThreshold && length > LongEntryLength,
			LowMoodShortEntries: agg.AverageMood < LowMoodThreshold && length < ShortEntryLength,
			WritingPattern:      MoodWritingPattern(agg.AverageMood, length),
		})
	}
	return out
}

// ScoreEnergyCorrelations pairs each entry with the energy aggregate of its day.
func ScoreEnergyCorrelations(entries []models.JournalEntry, daily map[string]models.DailyAggregate) []models.EnergyCorrelation {
	out := make([]models.EnergyCorrelation, 0)
	for _, e := range entries {
		day := DayKey(e.CreatedAt)
		agg, ok := daily[day]
		if !ok || agg.MoodCount == 0 {
			continue
		}
		out = append(out, models.EnergyCorrelation{
			EntryID:                  e.ID,
			Date:                     day,
			AverageEnergy:            agg.AverageEnergy,
			EnergyRange:              agg.EnergyRange,
			ProcessingType:           e.ProcessingType,
			EntryLength:              EntryLength(e),
			HighEnergyFullAnalysis:   agg.AverageEnergy > HighEnergyThreshold && e.ProcessingType == models.ProcessingFullAnalysis,
			LowEnergyBasicProcessing: agg.AverageEnergy < LowEnergyThreshold && e.ProcessingType == models.ProcessingTranscribeOnly,
			WritingPattern:           EnergyWritingPattern(agg.AverageEnergy, e.ProcessingType),
		})
	}
	return out
}

// ScoreSleepCorrelations pairs each entry with the sleep logged on the
// previous UTC day. Days with check-ins but no sleep data are skipped.
func ScoreSleepCorrelations(entries []models.JournalEntry, daily map[string]models.DailyAggregate) []models.SleepCorrelation {
	out := make([]models.SleepCorrelation, 0)
	for _, e := range entries {
		prev := PreviousDayKey(e.CreatedAt)
		agg, ok := daily[prev]
		if !ok || agg.SleepCount == 0 {
			continue
		}
		length := EntryLength(e)
		out = append(out, models.SleepCorrelation{
			EntryID:               e.ID,
			Date:                  DayKey(e.CreatedAt),
			SleepDate:             prev,
			AverageSleep:          agg.AverageSleep,
			SleepQuality:          agg.SleepQuality,
			EntryLength:           length,
			GoodSleepLongEntries:  agg.AverageSleep >= GoodSleepThreshold && length > DetailedSleepEntry,
			PoorSleepShortEntries: agg.AverageSleep < PoorSleepThreshold && length < ShortEntryLength,
			WritingPattern:        SleepWritingPattern(agg.AverageSleep, length),
		})
	}
	return out
}

// MoodWritingPattern labels how entry length relates to the day's mood.
func MoodWritingPattern(avgMood float64, length int) string {
	switch {
	case avgMood > HighMoodThreshold && length > LongEntryLength:
		return PatternHighMoodLongWriting
	case avgMood < LowMoodThreshold && length < ShortEntryLength:
		return PatternLowMoodShortWriting
	case avgMood < LowMoodThreshold && length > LongEntryLength:
		return PatternLowMoodProcessing
	case avgMood > HighMoodThreshold && length < ShortEntryLength:
		return PatternHighMoodBriefWriting
	default:
		return PatternBalanced
	}
}

// EnergyWritingPattern labels how processing depth relates to the day's energy.
func EnergyWritingPattern(avgEnergy float64, pt models.ProcessingType) string {
	switch {
	case avgEnergy > HighEnergyThreshold && pt == models.ProcessingFullAnalysis:
		return PatternHighEnergyDeepReflection
	case avgEnergy < LowEnergyThreshold && pt == models.ProcessingTranscribeOnly:
		return PatternLowEnergyQuickCapture
	case avgEnergy > HighEnergyThreshold && pt == models.ProcessingTranscribeOnly:
		return PatternHighEnergyQuickCapture
	case avgEnergy < LowEnergyThreshold && pt == models.ProcessingFullAnalysis:
		return PatternLowEnergyDeepReflection
	default:
		return PatternBalanced
	}
}

// SleepWritingPattern labels how entry length relates to the prior night's sleep.
func SleepWritingPattern(avgSleep float64, length int) string {
	switch {
	case avgSleep >= GoodSleepThreshold && length > DetailedSleepEntry:
		return PatternWellRestedDetailed
	case avgSleep < PoorSleepThreshold && length < ShortEntryLength:
		return PatternSleepDeprivedBrief
	case avgSleep < PoorSleepThreshold && length > DetailedSleepEntry:
		return PatternSleepDeprivedDetailed
	case avgSleep >= GoodSleepThreshold && length < ShortEntryLength:
		return PatternWellRestedBrief
	default:
		return PatternBalanced
	}
}

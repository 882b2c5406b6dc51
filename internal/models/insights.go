package models

// Priority ranks an insight or nudge
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// InsightType groups insights by the signal that produced them
type InsightType string

const (
	InsightTypeMood           InsightType = "mood"
	InsightTypeEnergy         InsightType = "energy"
	InsightTypeSleep          InsightType = "sleep"
	InsightTypeWriting        InsightType = "writing"
	InsightTypeGoals          InsightType = "goals"
	InsightTypeRecommendation InsightType = "recommendation"
	InsightTypeStreak         InsightType = "streak"
	InsightTypeInactivity     InsightType = "inactivity"
	InsightTypeDeadline       InsightType = "deadline"
)

// Insight is a generated observation or recommendation. Nudges reuse it.
type Insight struct {
	Type     InsightType `json:"type"`
	Title    string      `json:"title"`
	Message  string      `json:"message"`
	Priority Priority    `json:"priority"`
}

// Confidence represents the confidence level of a derived estimate
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// SleepQuality buckets an average night of sleep
type SleepQuality string

const (
	SleepExcellent SleepQuality = "excellent"
	SleepGood      SleepQuality = "good"
	SleepFair      SleepQuality = "fair"
	SleepPoor      SleepQuality = "poor"
)

// EnergyRange is the min and max raw energy seen on a day
type EnergyRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// DailyAggregate summarizes the check-ins of one UTC day
type DailyAggregate struct {
	Date          string       `json:"date"`
	AverageMood   float64      `json:"averageMood"`
	MoodCount     int          `json:"moodCount"`
	DominantMood  string       `json:"dominantMood"`
	AverageEnergy float64      `json:"averageEnergy"`
	EnergyRange   EnergyRange  `json:"energyRange"`
	AverageSleep  float64      `json:"averageSleep"`
	SleepCount    int          `json:"sleepCount"`
	SleepQuality  SleepQuality `json:"sleepQuality"`
}

// MoodCorrelation relates one entry to the mood of its day
type MoodCorrelation struct {
	EntryID             string  `json:"entryId"`
	Date                string  `json:"date"`
	AverageMood         float64 `json:"averageMood"`
	DominantMood        string  `json:"dominantMood"`
	EntryLength         int     `json:"entryLength"`
	HighMoodLongEntries bool    `json:"highMoodLongEntries"`
	LowMoodShortEntries bool    `json:"lowMoodShortEntries"`
	WritingPattern      string  `json:"writingPattern"`
}

// EnergyCorrelation relates one entry to the energy of its day
type EnergyCorrelation struct {
	EntryID                  string         `json:"entryId"`
	Date                     string         `json:"date"`
	AverageEnergy            float64        `json:"averageEnergy"`
	EnergyRange              EnergyRange    `json:"energyRange"`
	ProcessingType           ProcessingType `json:"processingType"`
	EntryLength              int            `json:"entryLength"`
	HighEnergyFullAnalysis   bool           `json:"highEnergyFullAnalysis"`
	LowEnergyBasicProcessing bool           `json:"lowEnergyBasicProcessing"`
	WritingPattern           string         `json:"writingPattern"`
}

// SleepCorrelation relates one entry to the sleep logged the day before
type SleepCorrelation struct {
	EntryID               string       `json:"entryId"`
	Date                  string       `json:"date"`
	SleepDate             string       `json:"sleepDate"`
	AverageSleep          float64      `json:"averageSleep"`
	SleepQuality          SleepQuality `json:"sleepQuality"`
	EntryLength           int          `json:"entryLength"`
	GoodSleepLongEntries  bool         `json:"goodSleepLongEntries"`
	PoorSleepShortEntries bool         `json:"poorSleepShortEntries"`
	WritingPattern        string       `json:"writingPattern"`
}

// Sentiment is the keyword-count polarity of a text
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// SentimentScore carries the counts behind a sentiment label
type SentimentScore struct {
	Label         Sentiment `json:"label"`
	PositiveCount int       `json:"positiveCount"`
	NegativeCount int       `json:"negativeCount"`
}

// ContentFlags are boolean observations about an entry's text
type ContentFlags struct {
	MentionsGratitude  bool `json:"mentionsGratitude"`
	MentionsGoals      bool `json:"mentionsGoals"`
	MentionsChallenges bool `json:"mentionsChallenges"`
	AsksQuestions      bool `json:"asksQuestions"`
	IsReflective       bool `json:"isReflective"`
}

// EntryContentPattern is the content analysis of one entry
type EntryContentPattern struct {
	EntryID     string       `json:"entryId"`
	Date        string       `json:"date"`
	Sentiment   Sentiment    `json:"sentiment"`
	Themes      []string     `json:"themes"`
	WordCount   int          `json:"wordCount"`
	EntryLength int          `json:"entryLength"`
	Flags       ContentFlags `json:"flags"`
}

// ThemeCount is how many entries mentioned a theme
type ThemeCount struct {
	Theme string `json:"theme"`
	Count int    `json:"count"`
}

// SentimentDistribution counts entries per sentiment label
type SentimentDistribution struct {
	Positive int `json:"positive"`
	Negative int `json:"negative"`
	Neutral  int `json:"neutral"`
}

// ContentSummary rolls up the content analysis of a window
type ContentSummary struct {
	TotalEntries          int                   `json:"totalEntries"`
	SentimentDistribution SentimentDistribution `json:"sentimentDistribution"`
	ThemeFrequency        []ThemeCount          `json:"themeFrequency"`
	AverageWordCount      float64               `json:"averageWordCount"`
	GratitudeEntries      int                   `json:"gratitudeEntries"`
	ReflectiveEntries     int                   `json:"reflectiveEntries"`
}

// ContentPatterns is the content section of the correlations response
type ContentPatterns struct {
	Entries []EntryContentPattern `json:"entries"`
	Summary ContentSummary        `json:"summary"`
}

// TrendDirection compares the second half of a series with the first
type TrendDirection string

const (
	TrendImproving TrendDirection = "improving"
	TrendDeclining TrendDirection = "declining"
	TrendStable    TrendDirection = "stable"
)

// WeeklyBucket holds the means of one Sunday-start UTC week
type WeeklyBucket struct {
	WeekStart          string  `json:"weekStart"`
	AverageMood        float64 `json:"averageMood"`
	AverageEnergy      float64 `json:"averageEnergy"`
	AverageSleep       float64 `json:"averageSleep"`
	CheckInCount       int     `json:"checkInCount"`
	EntryCount         int     `json:"entryCount"`
	AverageEntryLength float64 `json:"averageEntryLength"`
}

// TimePattern represents time-based pattern analysis
type TimePattern struct {
	PatternType  string    `json:"patternType"`  // "hour_distribution", "day_of_week"
	Distribution []float64 `json:"distribution"` // Percentages for each bucket
	PeakValue    int       `json:"peakValue"`    // Index of peak (hour 0-23 or day 0-6)
	PeakLabel    string    `json:"peakLabel"`    // Human readable label ("Tuesday", "8 AM")
	PeakPercent  float64   `json:"peakPercent"`  // Percentage at peak
	Consistency  float64   `json:"consistency"`  // 0-1 score (1 = very consistent)
}

// WritingRhythm describes when a user tends to journal
type WritingRhythm struct {
	DayOfWeek TimePattern `json:"dayOfWeek"`
	Hour      TimePattern `json:"hour"`
}

// Trends is the trends section of the correlations response
type Trends struct {
	Weekly           []WeeklyBucket `json:"weekly"`
	MoodTrend        TrendDirection `json:"moodTrend"`
	EnergyTrend      TrendDirection `json:"energyTrend"`
	SleepTrend       TrendDirection `json:"sleepTrend"`
	EntryLengthTrend TrendDirection `json:"entryLengthTrend"`
	Rhythm           *WritingRhythm `json:"rhythm,omitempty"`
}

// CorrelationsResponse is returned by GET /api/analytics/correlations
type CorrelationsResponse struct {
	MoodCorrelations   []MoodCorrelation   `json:"moodCorrelations"`
	EnergyCorrelations []EnergyCorrelation `json:"energyCorrelations"`
	SleepCorrelations  []SleepCorrelation  `json:"sleepCorrelations"`
	ContentPatterns    *ContentPatterns    `json:"contentPatterns"`
	Trends             Trends              `json:"trends"`
	Insights           []Insight           `json:"insights"`
}

// Streak is a run of consecutive UTC days with at least one entry
type Streak struct {
	Length    int    `json:"length"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	IsActive  bool   `json:"isActive"`
}

// NudgesResponse is returned by GET /api/insights/nudges
type NudgesResponse struct {
	Nudges        []Insight `json:"nudges"`
	CurrentStreak Streak    `json:"currentStreak"`
	LongestStreak Streak    `json:"longestStreak"`
}

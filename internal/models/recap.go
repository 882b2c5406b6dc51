package models

import (
	"time"

	"gorm.io/datatypes"
)

// RecapType is the period a recap covers
type RecapType string

const (
	RecapWeekly  RecapType = "weekly"
	RecapMonthly RecapType = "monthly"
)

// Days returns the window length of the recap type
func (t RecapType) Days() int {
	if t == RecapMonthly {
		return 30
	}
	return 7
}

// RecapRow is a recaps row. Content, Insights and Recommendations are JSON
// text columns.
type RecapRow struct {
	ID              string         `json:"id" gorm:"primaryKey"`
	UserID          string         `json:"user_id" gorm:"index"`
	Type            string         `json:"type"`
	PeriodStart     string         `json:"period_start"`
	PeriodEnd       string         `json:"period_end"`
	Content         datatypes.JSON `json:"content"`
	Insights        datatypes.JSON `json:"insights"`
	Recommendations datatypes.JSON `json:"recommendations"`
	CreatedAt       string         `json:"created_at" gorm:"index"`
}

// TableName maps the row onto its table
func (RecapRow) TableName() string { return "recaps" }

// RecapStats are the headline numbers of a recap period
type RecapStats struct {
	EntryCount     int            `json:"entryCount"`
	CheckInCount   int            `json:"checkInCount"`
	AverageMood    float64        `json:"averageMood"`
	AverageEnergy  float64        `json:"averageEnergy"`
	AverageSleep   float64        `json:"averageSleep"`
	MoodTrend      TrendDirection `json:"moodTrend"`
	EnergyTrend    TrendDirection `json:"energyTrend"`
	TopThemes      []ThemeCount   `json:"topThemes"`
	GoalsCompleted int            `json:"goalsCompleted"`
	GoalsTotal     int            `json:"goalsTotal"`
}

// RecapContent is the persisted body of a recap
type RecapContent struct {
	Summary string         `json:"summary"`
	Stats   RecapStats     `json:"stats"`
	Weekly  []WeeklyBucket `json:"weekly"`
}

// Recap is a decoded, persisted recap
type Recap struct {
	ID              string       `json:"id"`
	UserID          string       `json:"userId"`
	Type            RecapType    `json:"type"`
	PeriodStart     time.Time    `json:"periodStart"`
	PeriodEnd       time.Time    `json:"periodEnd"`
	Content         RecapContent `json:"content"`
	Insights        []Insight    `json:"insights"`
	Recommendations []Insight    `json:"recommendations"`
	CreatedAt       time.Time    `json:"createdAt"`
}

// GenerateRecapRequest represents the request to generate and store a recap
type GenerateRecapRequest struct {
	Type   RecapType `json:"type" binding:"required,oneof=weekly monthly"`
	UserID string    `json:"userId" binding:"required"`
}

// GenerateRecapResponse is returned by POST /api/recaps/generate
type GenerateRecapResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
	Recap   *Recap `json:"recap"`
}

// RecapCategory names a recap card
type RecapCategory string

const (
	CardPeople  RecapCategory = "people"
	CardMood    RecapCategory = "mood"
	CardPlaces  RecapCategory = "places"
	CardGrowth  RecapCategory = "growth"
	CardGoals   RecapCategory = "goals"
	CardFinance RecapCategory = "finance"
)

// RecapCard is a presentation-ready summary of one category
type RecapCard struct {
	ID         string        `json:"id"`
	Category   RecapCategory `json:"category"`
	Title      string        `json:"title"`
	Subtitle   string        `json:"subtitle"`
	Content    string        `json:"content"`
	Insights   []string      `json:"insights"`
	Highlights []string      `json:"highlights"`
	Data       interface{}   `json:"data"`
}

// PersonMention counts the entries that name a person
type PersonMention struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship,omitempty"`
	Mentions     int    `json:"mentions"`
}

// PeopleCardData backs the people card
type PeopleCardData struct {
	TopPeople      []PersonMention `json:"topPeople"`
	NewPeople      []string        `json:"newPeople"`
	TotalMentioned int             `json:"totalMentioned"`
}

// DayMood is the average mood of a single day
type DayMood struct {
	Date        string  `json:"date"`
	AverageMood float64 `json:"averageMood"`
}

// MoodCardData backs the mood card
type MoodCardData struct {
	AverageMood  float64        `json:"averageMood"`
	BestDay      DayMood        `json:"bestDay"`
	WorstDay     DayMood        `json:"worstDay"`
	Trend        TrendDirection `json:"trend"`
	DominantMood string         `json:"dominantMood"`
	CheckInCount int            `json:"checkInCount"`
}

// PlaceCount counts entries mentioning a place keyword
type PlaceCount struct {
	Place string `json:"place"`
	Count int    `json:"count"`
}

// PlacesCardData backs the places card
type PlacesCardData struct {
	Places []PlaceCount `json:"places"`
}

// GrowthCardData backs the growth card
type GrowthCardData struct {
	LearningMoments    int `json:"learningMoments"`
	ChallengesOvercome int `json:"challengesOvercome"`
	GrowthEntries      int `json:"growthEntries"`
}

// GoalsCardData backs the goals card
type GoalsCardData struct {
	TasksCompleted int     `json:"tasksCompleted"`
	TasksTotal     int     `json:"tasksTotal"`
	GoalsCompleted int     `json:"goalsCompleted"`
	GoalsTotal     int     `json:"goalsTotal"`
	CompletionRate float64 `json:"completionRate"`
}

// CategoryAmount is a summed amount for one finance category
type CategoryAmount struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// FinanceCardData backs the finance card
type FinanceCardData struct {
	Income             float64          `json:"income"`
	Expenses           float64          `json:"expenses"`
	Savings            float64          `json:"savings"`
	SavingsRate        float64          `json:"savingsRate"`
	ExpensesByCategory []CategoryAmount `json:"expensesByCategory"`
}

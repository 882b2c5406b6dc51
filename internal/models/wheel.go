package models

import (
	"time"

	"gorm.io/datatypes"
)

// WheelOfLifeRow is a wheel_of_life row. LifeAreas and Priorities are JSON
// text columns and are decoded by the repository layer.
type WheelOfLifeRow struct {
	ID         string         `json:"id" gorm:"primaryKey"`
	UserID     string         `json:"user_id" gorm:"index"`
	LifeAreas  datatypes.JSON `json:"life_areas"`
	Priorities datatypes.JSON `json:"priorities"`
	CreatedAt  string         `json:"created_at" gorm:"index"`
	UpdatedAt  string         `json:"updated_at"`
}

// TableName maps the row onto its table
func (WheelOfLifeRow) TableName() string { return "wheel_of_life" }

// LifeAreaScore is the stored self-assessment for one life area
type LifeAreaScore struct {
	Score float64 `json:"score"`
	Notes string  `json:"notes,omitempty"`
}

// WheelOfLife is a decoded wheel-of-life assessment
type WheelOfLife struct {
	ID         string                   `json:"id"`
	UserID     string                   `json:"userId"`
	LifeAreas  map[string]LifeAreaScore `json:"lifeAreas"`
	Priorities []string                 `json:"priorities"`
	UpdatedAt  time.Time                `json:"updatedAt"`
}

// GoalStats summarizes goal completion
type GoalStats struct {
	Total          int     `json:"total"`
	Completed      int     `json:"completed"`
	CompletionRate float64 `json:"completionRate"`
}

// RelatedEntry is a journal entry that mentions a life area
type RelatedEntry struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Date      time.Time      `json:"date"`
	Excerpt   string         `json:"excerpt"`
	Sentiment SentimentScore `json:"sentiment"`
}

// LifeAreaDetail is returned by GET /api/wheel-of-life/area/:slug
type LifeAreaDetail struct {
	Slug               string                `json:"slug"`
	Name               string                `json:"name"`
	Score              float64               `json:"score"`
	Notes              string                `json:"notes"`
	IsPriority         bool                  `json:"isPriority"`
	Goals              []Goal                `json:"goals"`
	GoalStats          GoalStats             `json:"goalStats"`
	RelatedEntries     []RelatedEntry        `json:"relatedEntries"`
	SentimentBreakdown SentimentDistribution `json:"sentimentBreakdown"`
	Recommendations    []string              `json:"recommendations"`
}

// UpdateLifeAreaRequest represents the request to rescore a life area
type UpdateLifeAreaRequest struct {
	Score *float64 `json:"score" binding:"required,gte=0,lte=10"`
	Notes *string  `json:"notes" binding:"omitempty,max=2000"`
}

package models

import (
	"time"

	"gorm.io/datatypes"
)

// PersonalityProfileRow is a personality_profiles row; Traits is JSON text of
// trait name to score.
type PersonalityProfileRow struct {
	ID         string         `json:"id" gorm:"primaryKey"`
	UserID     string         `json:"user_id" gorm:"uniqueIndex"`
	Traits     datatypes.JSON `json:"traits"`
	EntryCount *int           `json:"entry_count,omitempty"`
	Confidence *string        `json:"confidence,omitempty"`
	CreatedAt  string         `json:"created_at"`
	UpdatedAt  string         `json:"updated_at"`
}

// TableName maps the row onto its table
func (PersonalityProfileRow) TableName() string { return "personality_profiles" }

// TraitScore is one Big Five estimate on a 0-100 scale
type TraitScore struct {
	Trait       string  `json:"trait"`
	Score       float64 `json:"score"`
	Description string  `json:"description"`
}

// PersonalityProfile is a keyword-based Big Five estimate
type PersonalityProfile struct {
	UserID     string       `json:"userId"`
	Traits     []TraitScore `json:"traits"`
	EntryCount int          `json:"entryCount"`
	Confidence Confidence   `json:"confidence"`
	ComputedAt time.Time    `json:"computedAt"`
}

package models

import "time"

// CheckInRow is a check_ins row as the data store returns it.
type CheckInRow struct {
	ID           string   `json:"id" gorm:"primaryKey"`
	UserID       string   `json:"user_id" gorm:"index"`
	Mood         *string  `json:"mood,omitempty"`
	Energy       *float64 `json:"energy,omitempty"`
	SleepHours   *float64 `json:"sleep_hours,omitempty"`
	SleepMinutes *float64 `json:"sleep_minutes,omitempty"`
	Note         *string  `json:"note,omitempty"`
	CreatedAt    string   `json:"created_at" gorm:"index"`
}

// TableName maps the row onto its table
func (CheckInRow) TableName() string { return "check_ins" }

// CheckIn is a normalized wellness snapshot.
type CheckIn struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	Mood         string    `json:"mood"`
	MoodScore    float64   `json:"moodScore"`
	Energy       float64   `json:"energy"`
	SleepHours   float64   `json:"sleepHours"`
	SleepMinutes float64   `json:"sleepMinutes"`
	HasSleep     bool      `json:"hasSleep"`
	Note         string    `json:"note"`
	CreatedAt    time.Time `json:"createdAt"`
}

// TotalSleep combines hours and minutes into fractional hours
func (c CheckIn) TotalSleep() float64 {
	return c.SleepHours + c.SleepMinutes/60
}

// CreateCheckInRequest represents the request to record a check-in
type CreateCheckInRequest struct {
	Mood         string   `json:"mood" binding:"required,max=32"`
	Energy       *float64 `json:"energy" binding:"omitempty,gte=0,lte=10"`
	SleepHours   *float64 `json:"sleepHours" binding:"omitempty,gte=0,lte=24"`
	SleepMinutes *float64 `json:"sleepMinutes" binding:"omitempty,gte=0,lt=60"`
	Note         string   `json:"note" binding:"max=2000"`
}

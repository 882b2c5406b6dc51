package models

import "time"

// PersonRow is a people row as the data store returns it.
type PersonRow struct {
	ID           string  `json:"id" gorm:"primaryKey"`
	UserID       string  `json:"user_id" gorm:"index"`
	Name         *string `json:"name,omitempty"`
	Relationship *string `json:"relationship,omitempty"`
	CreatedAt    string  `json:"created_at"`
}

// TableName maps the row onto its table
func (PersonRow) TableName() string { return "people" }

// Person is someone the user writes about
type Person struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	Name         string    `json:"name"`
	Relationship string    `json:"relationship"`
	CreatedAt    time.Time `json:"createdAt"`
}

package models

import "time"

// GoalStatus values stored in goals.status
const (
	GoalStatusActive    = "active"
	GoalStatusCompleted = "completed"
	GoalStatusPaused    = "paused"
)

// GoalRow is a goals row as the data store returns it.
type GoalRow struct {
	ID          string   `json:"id" gorm:"primaryKey"`
	UserID      string   `json:"user_id" gorm:"index"`
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	LifeArea    *string  `json:"life_area,omitempty"`
	Status      *string  `json:"status,omitempty"`
	Progress    *float64 `json:"progress,omitempty"`
	TargetDate  *string  `json:"target_date,omitempty"`
	CompletedAt *string  `json:"completed_at,omitempty"`
	CreatedAt   string   `json:"created_at"`
}

// TableName maps the row onto its table
func (GoalRow) TableName() string { return "goals" }

// Goal is a normalized goal
type Goal struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	LifeArea    string     `json:"lifeArea"`
	Status      string     `json:"status"`
	Progress    float64    `json:"progress"`
	TargetDate  *time.Time `json:"targetDate,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// IsCompleted reports whether the goal is done
func (g Goal) IsCompleted() bool {
	return g.Status == GoalStatusCompleted
}

// TaskRow is a tasks row as the data store returns it.
type TaskRow struct {
	ID          string  `json:"id" gorm:"primaryKey"`
	UserID      string  `json:"user_id" gorm:"index"`
	GoalID      *string `json:"goal_id,omitempty"`
	Title       *string `json:"title,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
	CompletedAt *string `json:"completed_at,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

// TableName maps the row onto its table
func (TaskRow) TableName() string { return "tasks" }

// Task is a normalized task
type Task struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	GoalID      string     `json:"goalId,omitempty"`
	Title       string     `json:"title"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

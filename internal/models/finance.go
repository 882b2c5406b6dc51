package models

import "time"

// Finance entry types
const (
	FinanceIncome  = "income"
	FinanceExpense = "expense"
)

// FinanceEntryRow is a finance_entries row as the data store returns it.
type FinanceEntryRow struct {
	ID          string   `json:"id" gorm:"primaryKey"`
	UserID      string   `json:"user_id" gorm:"index"`
	Type        *string  `json:"type,omitempty"`
	Amount      *float64 `json:"amount,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Description *string  `json:"description,omitempty"`
	Date        string   `json:"date"`
	CreatedAt   string   `json:"created_at"`
}

// TableName maps the row onto its table
func (FinanceEntryRow) TableName() string { return "finance_entries" }

// FinanceEntry is a normalized income or expense record. Windows filter on Date.
type FinanceEntry struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Type        string    `json:"type"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
}

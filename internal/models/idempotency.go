package models

import "gorm.io/datatypes"

// IdempotencyKey represents a stored idempotency key record
type IdempotencyKey struct {
	ID           string         `json:"id" gorm:"primaryKey"`
	Key          string         `json:"key" gorm:"uniqueIndex:idx_idempotency_scope"`
	Route        string         `json:"route" gorm:"uniqueIndex:idx_idempotency_scope"`
	UserID       string         `json:"user_id" gorm:"uniqueIndex:idx_idempotency_scope"`
	ResponseBody datatypes.JSON `json:"response_body"`
	StatusCode   int            `json:"status_code"`
	CreatedAt    string         `json:"created_at"`
}

// TableName maps the record onto its table
func (IdempotencyKey) TableName() string { return "idempotency_keys" }

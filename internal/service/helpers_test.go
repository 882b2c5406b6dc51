package service

import (
	"time"

	"github.com/JonnyWalker81/daybook/backend/internal/models"
)

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func ts(t time.Time) string { return models.FormatTimestamp(t) }

func sp(s string) *string { return &s }

func fp(f float64) *float64 { return &f }

package models

import "time"

// TimestampLayout is the fixed-width UTC layout used when the backend writes
// timestamps into text columns, so lexical and chronological order agree.
const TimestampLayout = "2006-01-02T15:04:05.000000Z07:00"

// DateLayout is the layout of date-only columns (finance dates, goal targets).
const DateLayout = "2006-01-02"

// FormatTimestamp renders t in TimestampLayout, normalized to UTC.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// User represents an authenticated user of the journal
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginRequest represents the login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse represents the authentication response. The access token is
// also written to the session cookie.
type AuthResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
	User         User   `json:"user"`
}

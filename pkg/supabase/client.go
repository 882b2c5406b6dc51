package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// DefaultTimeout bounds every request the client makes
const DefaultTimeout = 15 * time.Second

// Client represents a Supabase client
type Client struct {
	URL        string
	ServiceKey string
	HTTPClient *http.Client
}

// NewClient creates a new Supabase client
func NewClient(url, serviceKey string) *Client {
	return &Client{
		URL:        url,
		ServiceKey: serviceKey,
		HTTPClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// Error is a non-2xx response from Supabase
type Error struct {
	StatusCode int
	Body       string
}

func (e *Error) Error() string {
	return fmt.Sprintf("supabase error (status %d): %s", e.StatusCode, e.Body)
}

// Query executes a query on a Supabase table. Values are sent as PostgREST
// filters, e.g. {"user_id": "eq.123", "order": "created_at.desc"}.
func (c *Client) Query(ctx context.Context, table string, query map[string]interface{}) ([]byte, error) {
	return c.do(ctx, http.MethodGet, c.restURL(table), query, nil, "")
}

// Insert inserts a record into a Supabase table
func (c *Client) Insert(ctx context.Context, table string, data interface{}) ([]byte, error) {
	return c.do(ctx, http.MethodPost, c.restURL(table), nil, data, "return=representation")
}

// Update updates a record in a Supabase table
func (c *Client) Update(ctx context.Context, table string, id string, data interface{}) ([]byte, error) {
	return c.UpdateWhere(ctx, table, map[string]interface{}{"id": "eq." + id}, data)
}

// UpdateWhere updates records matching a query
func (c *Client) UpdateWhere(ctx context.Context, table string, query map[string]interface{}, data interface{}) ([]byte, error) {
	return c.do(ctx, http.MethodPatch, c.restURL(table), query, data, "return=representation")
}

// Delete deletes a record from a Supabase table
func (c *Client) Delete(ctx context.Context, table string, id string) error {
	return c.DeleteWhere(ctx, table, map[string]interface{}{"id": "eq." + id})
}

// DeleteWhere deletes records matching a query
func (c *Client) DeleteWhere(ctx context.Context, table string, query map[string]interface{}) error {
	_, err := c.do(ctx, http.MethodDelete, c.restURL(table), query, nil, "")
	return err
}

// Upsert inserts or updates a record in a Supabase table
// onConflict specifies the columns to detect conflicts (e.g., "user_id")
func (c *Client) Upsert(ctx context.Context, table string, data interface{}, onConflict string) ([]byte, error) {
	query := map[string]interface{}{"on_conflict": onConflict}
	// resolution=merge-duplicates updates existing rows
	return c.do(ctx, http.MethodPost, c.restURL(table), query, data, "return=representation,resolution=merge-duplicates")
}

// User represents a Supabase user
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

// Session is the result of a password sign-in
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
	User         User   `json:"user"`
}

// VerifyToken verifies a JWT token with Supabase
func (c *Client) VerifyToken(ctx context.Context, token string) (*User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL+"/auth/v1/user", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("apikey", c.ServiceKey)
	req.Header.Set("Authorization", "Bearer "+token)

	body, err := c.send(req)
	if err != nil {
		return nil, fmt.Errorf("token verification failed: %w", err)
	}

	var user User
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, fmt.Errorf("failed to decode user: %w", err)
	}
	return &user, nil
}

// SignInWithPassword exchanges email and password for a session
func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (*Session, error) {
	payload, err := json.Marshal(map[string]string{"email": email, "password": password})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL+"/auth/v1/token?grant_type=password", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("apikey", c.ServiceKey)
	req.Header.Set("Content-Type", "application/json")

	body, err := c.send(req)
	if err != nil {
		return nil, fmt.Errorf("sign in failed: %w", err)
	}

	var session Session
	if err := json.Unmarshal(body, &session); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &session, nil
}

func (c *Client) restURL(table string) string {
	return fmt.Sprintf("%s/rest/v1/%s", c.URL, table)
}

func (c *Client) do(ctx context.Context, method, rawURL string, query map[string]interface{}, data interface{}, prefer string) ([]byte, error) {
	var reader io.Reader
	if data != nil {
		jsonData, err := json.Marshal(data)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return nil, err
	}

	if len(query) > 0 {
		q := url.Values{}
		for key, value := range query {
			q.Add(key, fmt.Sprintf("%v", value))
		}
		req.URL.RawQuery = q.Encode()
	}

	req.Header.Set("apikey", c.ServiceKey)
	req.Header.Set("Authorization", "Bearer "+c.ServiceKey)
	if data != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if prefer != "" {
		req.Header.Set("Prefer", prefer)
	}

	return c.send(req)
}

func (c *Client) send(req *http.Request) ([]byte, error) {
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 400 {
		return nil, &Error{StatusCode: resp.StatusCode, Body: string(body)}
	}
	return body, nil
}

package supabase

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_Query(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rest/v1/journal_entries" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("user_id"); got != "eq.u1" {
			t.Errorf("user_id filter = %q", got)
		}
		if r.Header.Get("apikey") != "key" || r.Header.Get("Authorization") != "Bearer key" {
			t.Errorf("missing auth headers: %v", r.Header)
		}
		w.Write([]byte(`[{"id":"e1"}]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "key")
	body, err := c.Query(context.Background(), "journal_entries", map[string]interface{}{"user_id": "eq.u1"})
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if string(body) != `[{"id":"e1"}]` {
		t.Errorf("body = %s", body)
	}
}

func TestClient_InsertSendsRepresentationHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s", r.Method)
		}
		if r.Header.Get("Prefer") != "return=representation" {
			t.Errorf("Prefer = %q", r.Header.Get("Prefer"))
		}
		var payload map[string]string
		raw, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(raw, &payload); err != nil || payload["mood"] != "happy" {
			t.Errorf("payload = %s", raw)
		}
		w.WriteHeader(http.StatusCreated)
		w.Write(raw)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "key")
	if _, err := c.Insert(context.Background(), "check_ins", map[string]string{"mood": "happy"}); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
}

func TestClient_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"bad filter"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "key")
	_, err := c.Query(context.Background(), "goals", nil)

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *Error", err)
	}
	if apiErr.StatusCode != http.StatusBadRequest {
		t.Errorf("StatusCode = %d", apiErr.StatusCode)
	}
}

func TestClient_VerifyToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer user-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write([]byte(`{"id":"u1","email":"a@example.com"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "key")
	user, err := c.VerifyToken(context.Background(), "user-token")
	if err != nil {
		t.Fatalf("VerifyToken() error = %v", err)
	}
	if user.ID != "u1" || user.Email != "a@example.com" {
		t.Errorf("user = %+v", user)
	}

	if _, err := c.VerifyToken(context.Background(), "wrong"); err == nil {
		t.Error("VerifyToken(wrong) should fail")
	}
}

func TestClient_SignInWithPassword(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("grant_type") != "password" {
			t.Errorf("grant_type = %q", r.URL.Query().Get("grant_type"))
		}
		w.Write([]byte(`{"access_token":"at","refresh_token":"rt","expires_in":3600,"user":{"id":"u1"}}`))
	}))
	defer srv.Close()

	session, err := NewClient(srv.URL, "key").SignInWithPassword(context.Background(), "a@example.com", "pw")
	if err != nil {
		t.Fatalf("SignInWithPassword() error = %v", err)
	}
	if session.AccessToken != "at" || session.User.ID != "u1" || session.ExpiresIn != 3600 {
		t.Errorf("session = %+v", session)
	}
}

package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/gin-gonic/gin"

	"github.com/JonnyWalker81/daybook/backend/internal/apierror"
	"github.com/JonnyWalker81/daybook/backend/internal/auth"
	"github.com/JonnyWalker81/daybook/backend/internal/clock"
	"github.com/JonnyWalker81/daybook/backend/internal/config"
	"github.com/JonnyWalker81/daybook/backend/internal/models"
	"github.com/JonnyWalker81/daybook/backend/internal/repository/gormstore"
)

const testSecret = "test-secret"

func newTestApp(t *testing.T) (*app, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gormstore.Open(gormstore.DriverSQLite, dsn)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if err := gormstore.AutoMigrate(db); err != nil {
		t.Fatalf("AutoMigrate() error = %v", err)
	}

	mr := miniredis.RunT(t)
	cfg := &config.Config{
		Server:    config.ServerConfig{Env: "test"},
		Database:  config.DatabaseConfig{Driver: config.DriverSQLite, DSN: dsn},
		Redis:     config.RedisConfig{URL: "redis://" + mr.Addr()},
		Auth:      config.AuthConfig{JWTSecret: testSecret, SessionCookie: "daybook_session"},
		Analysis:  config.AnalysisConfig{DefaultPeriodDays: 30, FetchLimit: 500},
		RateLimit: config.RateLimitConfig{General: 100, Auth: 10, Window: time.Minute},
	}

	a, err := newApp(cfg, clock.NewReal())
	if err != nil {
		t.Fatalf("newApp() error = %v", err)
	}
	t.Cleanup(a.Close)

	token, err := auth.NewJWTVerifier(testSecret).Issue("u1", "a@example.com", time.Hour)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	return a, token
}

func call(a *app, token, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func TestApp_EndToEnd(t *testing.T) {
	a, token := newTestApp(t)

	if w := call(a, "", http.MethodGet, "/api/analytics/correlations", "", nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated status = %d", w.Code)
	}

	for _, mood := range []string{"happy", "good", "sad"} {
		w := call(a, token, http.MethodPost, "/api/check-ins", fmt.Sprintf(`{"mood":%q,"energy":6,"sleepHours":7}`, mood), nil)
		if w.Code != http.StatusCreated {
			t.Fatalf("create check-in = %d %s", w.Code, w.Body.String())
		}
	}
	w := call(a, token, http.MethodPost, "/api/journal/entries", `{"content":"Great workout at the gym, then a meeting with my boss."}`, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("create entry = %d %s", w.Code, w.Body.String())
	}

	w = call(a, token, http.MethodGet, "/api/analytics/correlations?period=7", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("correlations = %d %s", w.Code, w.Body.String())
	}
	var correlations models.CorrelationsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &correlations); err != nil {
		t.Fatalf("decode correlations: %v", err)
	}
	if len(correlations.MoodCorrelations) == 0 {
		t.Errorf("MoodCorrelations is empty: %s", w.Body.String())
	}

	w = call(a, token, http.MethodGet, "/api/recaps/generate-cards?period=week", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("cards = %d %s", w.Code, w.Body.String())
	}

	w = call(a, token, http.MethodPost, "/api/recaps/generate", `{"type":"weekly","userId":"u1"}`, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("generate = %d %s", w.Code, w.Body.String())
	}
	var generated models.GenerateRecapResponse
	if err := json.Unmarshal(w.Body.Bytes(), &generated); err != nil || generated.ID == "" {
		t.Fatalf("generate body = %s", w.Body.String())
	}

	if w := call(a, token, http.MethodGet, "/api/recaps/"+generated.ID, "", nil); w.Code != http.StatusOK {
		t.Errorf("get recap = %d %s", w.Code, w.Body.String())
	}

	w = call(a, token, http.MethodPut, "/api/wheel-of-life/area/health", `{"score":6}`, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("update area = %d %s", w.Code, w.Body.String())
	}
	var detail models.LifeAreaDetail
	if err := json.Unmarshal(w.Body.Bytes(), &detail); err != nil || detail.Score != 6 || len(detail.RelatedEntries) != 1 {
		t.Errorf("area detail = %s", w.Body.String())
	}

	if w := call(a, token, http.MethodGet, "/api/personality", "", nil); w.Code != http.StatusOK {
		t.Errorf("personality = %d %s", w.Code, w.Body.String())
	}
	if w := call(a, token, http.MethodGet, "/api/insights/nudges", "", nil); w.Code != http.StatusOK {
		t.Errorf("nudges = %d %s", w.Code, w.Body.String())
	}
}

func TestApp_IdempotentReplay(t *testing.T) {
	a, token := newTestApp(t)
	headers := map[string]string{"Idempotency-Key": "same-key"}

	first := call(a, token, http.MethodPost, "/api/check-ins", `{"mood":"calm"}`, headers)
	if first.Code != http.StatusCreated {
		t.Fatalf("first = %d %s", first.Code, first.Body.String())
	}
	second := call(a, token, http.MethodPost, "/api/check-ins", `{"mood":"calm"}`, headers)
	if second.Code != http.StatusCreated || second.Header().Get("X-Idempotency-Replayed") != "true" {
		t.Fatalf("second = %d replayed=%q", second.Code, second.Header().Get("X-Idempotency-Replayed"))
	}
	if first.Body.String() != second.Body.String() {
		t.Errorf("replayed body differs:\n%s\n%s", first.Body.String(), second.Body.String())
	}

	w := call(a, token, http.MethodGet, "/api/check-ins", "", nil)
	var checkIns []models.CheckIn
	if err := json.Unmarshal(w.Body.Bytes(), &checkIns); err != nil || len(checkIns) != 1 {
		t.Errorf("check-ins = %s", w.Body.String())
	}
}

func TestApp_OtherUsersRecordsAreForbidden(t *testing.T) {
	a, owner := newTestApp(t)
	intruder, err := auth.NewJWTVerifier(testSecret).Issue("u2", "b@example.com", time.Hour)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	w := call(a, owner, http.MethodPost, "/api/journal/entries", `{"content":"private"}`, nil)
	var entry models.JournalEntry
	if err := json.Unmarshal(w.Body.Bytes(), &entry); err != nil || entry.ID == "" {
		t.Fatalf("create entry = %d %s", w.Code, w.Body.String())
	}
	w = call(a, owner, http.MethodPost, "/api/recaps/generate", `{"type":"weekly","userId":"u1"}`, nil)
	var generated models.GenerateRecapResponse
	if err := json.Unmarshal(w.Body.Bytes(), &generated); err != nil || generated.ID == "" {
		t.Fatalf("generate = %d %s", w.Code, w.Body.String())
	}

	tests := []struct {
		method, path, body string
	}{
		{http.MethodGet, "/api/journal/entries/" + entry.ID, ""},
		{http.MethodPut, "/api/journal/entries/" + entry.ID, `{"content":"mine now"}`},
		{http.MethodDelete, "/api/journal/entries/" + entry.ID, ""},
		{http.MethodGet, "/api/recaps/" + generated.ID, ""},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := call(a, intruder, tt.method, tt.path, tt.body, nil)
			if w.Code != http.StatusForbidden {
				t.Fatalf("status = %d, want 403 (%s)", w.Code, w.Body.String())
			}
			var problem apierror.ProblemDetails
			if err := json.Unmarshal(w.Body.Bytes(), &problem); err != nil || problem.Type != apierror.TypeForbidden {
				t.Errorf("problem = %s", w.Body.String())
			}
		})
	}

	if w := call(a, owner, http.MethodGet, "/api/journal/entries/"+entry.ID, "", nil); w.Code != http.StatusOK {
		t.Errorf("owner get after attempts = %d", w.Code)
	}
}

func TestApp_DuplicateClientIDConflicts(t *testing.T) {
	a, token := newTestApp(t)
	body := fmt.Sprintf(`{"id":%q,"content":"offline draft"}`, uuid.Must(uuid.NewV7()).String())

	if w := call(a, token, http.MethodPost, "/api/journal/entries", body, nil); w.Code != http.StatusCreated {
		t.Fatalf("first create = %d %s", w.Code, w.Body.String())
	}
	w := call(a, token, http.MethodPost, "/api/journal/entries", body, nil)
	if w.Code != http.StatusConflict {
		t.Fatalf("second create = %d, want 409 (%s)", w.Code, w.Body.String())
	}
	var problem apierror.ProblemDetails
	if err := json.Unmarshal(w.Body.Bytes(), &problem); err != nil || problem.Type != apierror.TypeConflict {
		t.Errorf("problem = %s", w.Body.String())
	}
}

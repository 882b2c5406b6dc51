package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"
	"gorm.io/datatypes"

	"github.com/JonnyWalker81/daybook/backend/internal/clock"
	"github.com/JonnyWalker81/daybook/backend/internal/models"
	"github.com/JonnyWalker81/daybook/backend/internal/repository"
	"github.com/JonnyWalker81/daybook/backend/internal/repository/mocks"
)

type insightsMocks struct {
	entries     *mocks.MockJournalEntryRepository
	checkIns    *mocks.MockCheckInRepository
	goals       *mocks.MockGoalRepository
	personality *mocks.MockPersonalityRepository
}

func newInsightsService(t *testing.T) (InsightsService, insightsMocks) {
	ctrl := gomock.NewController(t)
	m := insightsMocks{
		entries:     mocks.NewMockJournalEntryRepository(ctrl),
		checkIns:    mocks.NewMockCheckInRepository(ctrl),
		goals:       mocks.NewMockGoalRepository(ctrl),
		personality: mocks.NewMockPersonalityRepository(ctrl),
	}
	svc := NewInsightsService(m.entries, m.checkIns, m.goals, m.personality, clock.NewFixed(testNow), DefaultOptions())
	return svc, m
}

var personalityEntries = []models.JournalEntryRow{
	{ID: "e1", UserID: "u1", Content: sp("Made a plan and finished my routine."), CreatedAt: ts(testNow)},
	{ID: "e2", UserID: "u1", Content: sp("Felt curious and explored a new idea."), CreatedAt: ts(testNow)},
}

func TestInsightsService_GetNudges_NoEntries(t *testing.T) {
	svc, m := newInsightsService(t)
	m.entries.EXPECT().GetByUserID(gomock.Any(), "u1", gomock.Any(), 0).Return(nil, nil)
	m.checkIns.EXPECT().GetByUserID(gomock.Any(), "u1", gomock.Any(), 0).Return(nil, nil)
	m.goals.EXPECT().GetByUserID(gomock.Any(), "u1", gomock.Any(), 0).Return(nil, nil)

	resp, err := svc.GetNudges(context.Background(), "u1")
	if err != nil {
		t.Fatalf("GetNudges() error = %v", err)
	}
	if len(resp.Nudges) != 1 || resp.Nudges[0].Title != "Start Your Journal" {
		t.Errorf("Nudges = %+v", resp.Nudges)
	}
	if resp.CurrentStreak.IsActive {
		t.Errorf("CurrentStreak = %+v, want inactive", resp.CurrentStreak)
	}
}

func TestInsightsService_GetNudges_StoreError(t *testing.T) {
	svc, m := newInsightsService(t)
	m.entries.EXPECT().GetByUserID(gomock.Any(), "u1", gomock.Any(), 0).Return(nil, errors.New("connection reset"))

	if _, err := svc.GetNudges(context.Background(), "u1"); err == nil {
		t.Fatal("GetNudges() error = nil, want error")
	}
}

func TestInsightsService_GetPersonality_Stored(t *testing.T) {
	svc, m := newInsightsService(t)
	count := 42
	confidence := "medium"
	m.personality.EXPECT().GetByUserID(gomock.Any(), "u1").Return(&models.PersonalityProfileRow{
		ID:         "p1",
		UserID:     "u1",
		Traits:     datatypes.JSON(`{"openness":70,"neuroticism":10,"unknown":99}`),
		EntryCount: &count,
		Confidence: &confidence,
		UpdatedAt:  ts(testNow),
	}, nil)

	profile, err := svc.GetPersonality(context.Background(), "u1")
	if err != nil {
		t.Fatalf("GetPersonality() error = %v", err)
	}
	if profile.EntryCount != 42 || profile.Confidence != models.ConfidenceMedium {
		t.Errorf("profile = %+v", profile)
	}
	if len(profile.Traits) != 2 || profile.Traits[0].Trait != "openness" || profile.Traits[1].Trait != "neuroticism" {
		t.Errorf("Traits = %+v", profile.Traits)
	}
	if !profile.ComputedAt.Equal(testNow) {
		t.Errorf("ComputedAt = %v, want %v", profile.ComputedAt, testNow)
	}
}

func TestInsightsService_GetPersonality_MalformedTraits(t *testing.T) {
	svc, m := newInsightsService(t)
	m.personality.EXPECT().GetByUserID(gomock.Any(), "u1").Return(&models.PersonalityProfileRow{
		ID:     "p1",
		UserID: "u1",
		Traits: datatypes.JSON(`"not json"`),
	}, nil)

	_, err := svc.GetPersonality(context.Background(), "u1")
	var malformed *models.MalformedStoredDataError
	if !errors.As(err, &malformed) || malformed.Column != "traits" {
		t.Fatalf("error = %v, want malformed traits", err)
	}
}

func TestInsightsService_GetPersonality_ComputesOnFirstUse(t *testing.T) {
	svc, m := newInsightsService(t)
	m.personality.EXPECT().GetByUserID(gomock.Any(), "u1").Return(nil, repository.ErrNotFound).Times(2)
	m.entries.EXPECT().GetByUserID(gomock.Any(), "u1", gomock.Any(), 0).Return(personalityEntries, nil)
	m.personality.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, row *models.PersonalityProfileRow) (*models.PersonalityProfileRow, error) {
			if row.ID == "" || row.UserID != "u1" || row.CreatedAt != ts(testNow) {
				t.Errorf("row = %+v", row)
			}
			return row, nil
		})

	profile, err := svc.GetPersonality(context.Background(), "u1")
	if err != nil {
		t.Fatalf("GetPersonality() error = %v", err)
	}
	if profile.EntryCount != 2 || profile.Confidence != models.ConfidenceLow {
		t.Errorf("profile = %+v", profile)
	}
	if len(profile.Traits) != 5 {
		t.Errorf("Traits = %+v, want all five", profile.Traits)
	}
}

func TestInsightsService_RefreshPersonality_KeepsExistingID(t *testing.T) {
	svc, m := newInsightsService(t)
	created := "2026-01-01T00:00:00Z"
	m.entries.EXPECT().GetByUserID(gomock.Any(), "u1", gomock.Any(), 0).Return(personalityEntries, nil)
	m.personality.EXPECT().GetByUserID(gomock.Any(), "u1").Return(&models.PersonalityProfileRow{
		ID:        "p1",
		UserID:    "u1",
		CreatedAt: created,
	}, nil)

	var stored *models.PersonalityProfileRow
	m.personality.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, row *models.PersonalityProfileRow) (*models.PersonalityProfileRow, error) {
			stored = row
			return row, nil
		})

	profile, err := svc.RefreshPersonality(context.Background(), "u1")
	if err != nil {
		t.Fatalf("RefreshPersonality() error = %v", err)
	}
	if stored.ID != "p1" || stored.CreatedAt != created || stored.UpdatedAt != ts(testNow) {
		t.Errorf("stored = %+v", stored)
	}

	var traits map[string]float64
	if err := json.Unmarshal(stored.Traits, &traits); err != nil {
		t.Fatalf("stored traits: %v", err)
	}
	if traits["conscientiousness"] != 50 || traits["openness"] != 50 {
		t.Errorf("traits = %v", traits)
	}
	if !profile.ComputedAt.Equal(testNow) {
		t.Errorf("ComputedAt = %v", profile.ComputedAt)
	}
}

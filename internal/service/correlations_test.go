package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/JonnyWalker81/daybook/backend/internal/clock"
	"github.com/JonnyWalker81/daybook/backend/internal/models"
	"github.com/JonnyWalker81/daybook/backend/internal/repository/mocks"
)

type correlationMocks struct {
	entries  *mocks.MockJournalEntryRepository
	checkIns *mocks.MockCheckInRepository
	goals    *mocks.MockGoalRepository
}

func newCorrelationsService(t *testing.T) (CorrelationsService, correlationMocks) {
	ctrl := gomock.NewController(t)
	m := correlationMocks{
		entries:  mocks.NewMockJournalEntryRepository(ctrl),
		checkIns: mocks.NewMockCheckInRepository(ctrl),
		goals:    mocks.NewMockGoalRepository(ctrl),
	}
	return NewCorrelationsService(m.entries, m.checkIns, m.goals, clock.NewFixed(testNow), DefaultOptions()), m
}

func TestCorrelationsService_GetCorrelations(t *testing.T) {
	svc, m := newCorrelationsService(t)

	day := testNow.Add(-24 * time.Hour)
	m.entries.EXPECT().GetByUserID(gomock.Any(), "u1", DefaultFetchLimit, 0).Return([]models.JournalEntryRow{
		{ID: "e1", UserID: "u1", Content: sp(strings.Repeat("a", 600)), CreatedAt: ts(day.Add(2 * time.Hour))},
	}, nil)
	m.checkIns.EXPECT().GetByUserID(gomock.Any(), "u1", DefaultFetchLimit, 0).Return([]models.CheckInRow{
		{ID: "c1", UserID: "u1", Mood: sp("happy"), CreatedAt: ts(day)},
	}, nil)
	m.goals.EXPECT().GetByUserID(gomock.Any(), "u1", DefaultFetchLimit, 0).Return(nil, nil)

	resp, err := svc.GetCorrelations(context.Background(), "u1", 7, "")
	if err != nil {
		t.Fatalf("GetCorrelations() error = %v", err)
	}
	if len(resp.MoodCorrelations) != 1 || !resp.MoodCorrelations[0].HighMoodLongEntries {
		t.Errorf("MoodCorrelations = %+v", resp.MoodCorrelations)
	}
	if resp.ContentPatterns == nil {
		t.Error("ContentPatterns should be present for type all")
	}
	if len(resp.Insights) == 0 {
		t.Error("expected insights")
	}
}

func TestCorrelationsService_DefaultPeriod(t *testing.T) {
	svc, m := newCorrelationsService(t)

	day := testNow.AddDate(0, 0, -20)
	m.entries.EXPECT().GetByUserID(gomock.Any(), "u1", gomock.Any(), 0).Return([]models.JournalEntryRow{
		{ID: "e1", UserID: "u1", Content: sp("short"), CreatedAt: ts(day)},
	}, nil)
	m.checkIns.EXPECT().GetByUserID(gomock.Any(), "u1", gomock.Any(), 0).Return([]models.CheckInRow{
		{ID: "c1", UserID: "u1", Mood: sp("sad"), CreatedAt: ts(day)},
	}, nil)
	m.goals.EXPECT().GetByUserID(gomock.Any(), "u1", gomock.Any(), 0).Return(nil, nil)

	resp, err := svc.GetCorrelations(context.Background(), "u1", 0, "mood")
	if err != nil {
		t.Fatalf("GetCorrelations() error = %v", err)
	}
	if len(resp.MoodCorrelations) != 1 || !resp.MoodCorrelations[0].LowMoodShortEntries {
		t.Errorf("20 days ago should be inside the 30 day default: %+v", resp.MoodCorrelations)
	}
	if resp.ContentPatterns != nil {
		t.Error("ContentPatterns should be omitted for type mood")
	}
}

func TestCorrelationsService_InvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		period  int
		section string
	}{
		{"negative period", -1, "all"},
		{"period too long", MaxPeriodDays + 1, "all"},
		{"unknown type", 30, "weather"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newCorrelationsService(t)
			_, err := svc.GetCorrelations(context.Background(), "u1", tt.period, tt.section)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("error = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestCorrelationsService_StoreFailurePropagates(t *testing.T) {
	svc, m := newCorrelationsService(t)
	boom := errors.New("connection refused")
	m.entries.EXPECT().GetByUserID(gomock.Any(), "u1", gomock.Any(), 0).Return(nil, boom)

	_, err := svc.GetCorrelations(context.Background(), "u1", 7, "all")
	if !errors.Is(err, boom) {
		t.Fatalf("error = %v, want wrapped store error", err)
	}
}

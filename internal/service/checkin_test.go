package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/JonnyWalker81/daybook/backend/internal/clock"
	"github.com/JonnyWalker81/daybook/backend/internal/models"
	"github.com/JonnyWalker81/daybook/backend/internal/repository/mocks"
)

func TestCheckInService_CreateCheckIn(t *testing.T) {
	repo := mocks.NewMockCheckInRepository(gomock.NewController(t))
	svc := NewCheckInService(repo, clock.NewFixed(testNow))

	var stored *models.CheckInRow
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, row *models.CheckInRow) (*models.CheckInRow, error) {
			stored = row
			return row, nil
		})

	checkIn, err := svc.CreateCheckIn(context.Background(), "u1", &models.CreateCheckInRequest{
		Mood:         " happy ",
		Energy:       fp(8),
		SleepMinutes: fp(30),
	})
	if err != nil {
		t.Fatalf("CreateCheckIn() error = %v", err)
	}

	if *stored.Mood != "happy" || stored.CreatedAt != ts(testNow) || stored.Note != nil {
		t.Errorf("stored = %+v", stored)
	}
	if checkIn.MoodScore != 9 || checkIn.Energy != 8 {
		t.Errorf("check-in = %+v", checkIn)
	}
	if !checkIn.HasSleep || checkIn.TotalSleep() != 0.5 {
		t.Errorf("minutes alone should record sleep: %+v", checkIn)
	}
}

func TestCheckInService_CreateCheckIn_BlankMood(t *testing.T) {
	svc := NewCheckInService(mocks.NewMockCheckInRepository(gomock.NewController(t)), clock.NewFixed(testNow))
	if _, err := svc.CreateCheckIn(context.Background(), "u1", &models.CreateCheckInRequest{Mood: "   "}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("error = %v, want ErrInvalidInput", err)
	}
}

func TestCheckInService_ListCheckIns(t *testing.T) {
	repo := mocks.NewMockCheckInRepository(gomock.NewController(t))
	svc := NewCheckInService(repo, clock.NewFixed(testNow))

	repo.EXPECT().GetByUserID(gomock.Any(), "u1", 10, 0).Return([]models.CheckInRow{
		{ID: "c1", UserID: "u1", CreatedAt: ts(testNow)},
	}, nil)

	checkIns, err := svc.ListCheckIns(context.Background(), "u1", 10, 0)
	if err != nil {
		t.Fatalf("ListCheckIns() error = %v", err)
	}
	if len(checkIns) != 1 || checkIns[0].Mood != "neutral" || checkIns[0].MoodScore != 5 {
		t.Errorf("check-ins = %+v", checkIns)
	}
}

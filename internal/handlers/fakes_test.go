package handlers

import (
	"context"

	"github.com/JonnyWalker81/daybook/backend/internal/auth"
	"github.com/JonnyWalker81/daybook/backend/internal/models"
)

type fakeVerifier map[string]auth.Identity

func (f fakeVerifier) Verify(ctx context.Context, token string) (*auth.Identity, error) {
	id, ok := f[token]
	if !ok {
		return nil, auth.ErrInvalidToken
	}
	return &id, nil
}

type fakeCorrelations struct {
	fn func(userID string, period int, section string) (*models.CorrelationsResponse, error)
}

func (f *fakeCorrelations) GetCorrelations(ctx context.Context, userID string, periodDays int, section string) (*models.CorrelationsResponse, error) {
	return f.fn(userID, periodDays, section)
}

type fakeRecaps struct {
	cards    func(userID, period string) ([]models.RecapCard, error)
	generate func(callerID string, req *models.GenerateRecapRequest) (*models.GenerateRecapResponse, error)
	list     func(userID string, limit, offset int) ([]models.Recap, error)
	get      func(userID, id string) (*models.Recap, error)
}

func (f *fakeRecaps) GenerateCards(ctx context.Context, userID, period string) ([]models.RecapCard, error) {
	return f.cards(userID, period)
}

func (f *fakeRecaps) Generate(ctx context.Context, callerID string, req *models.GenerateRecapRequest) (*models.GenerateRecapResponse, error) {
	return f.generate(callerID, req)
}

func (f *fakeRecaps) List(ctx context.Context, userID string, limit, offset int) ([]models.Recap, error) {
	return f.list(userID, limit, offset)
}

func (f *fakeRecaps) Get(ctx context.Context, userID, recapID string) (*models.Recap, error) {
	return f.get(userID, recapID)
}

type fakeJournal struct {
	create func(userID string, req *models.CreateJournalEntryRequest) (*models.JournalEntry, error)
	get    func(userID, id string) (*models.JournalEntry, error)
	list   func(userID string, limit, offset int) ([]models.JournalEntry, error)
	update func(userID, id string, req *models.UpdateJournalEntryRequest) (*models.JournalEntry, error)
	del    func(userID, id string) error
}

func (f *fakeJournal) CreateEntry(ctx context.Context, userID string, req *models.CreateJournalEntryRequest) (*models.JournalEntry, error) {
	return f.create(userID, req)
}

func (f *fakeJournal) GetEntry(ctx context.Context, userID, entryID string) (*models.JournalEntry, error) {
	return f.get(userID, entryID)
}

func (f *fakeJournal) ListEntries(ctx context.Context, userID string, limit, offset int) ([]models.JournalEntry, error) {
	return f.list(userID, limit, offset)
}

func (f *fakeJournal) UpdateEntry(ctx context.Context, userID, entryID string, req *models.UpdateJournalEntryRequest) (*models.JournalEntry, error) {
	return f.update(userID, entryID, req)
}

func (f *fakeJournal) DeleteEntry(ctx context.Context, userID, entryID string) error {
	return f.del(userID, entryID)
}

type fakeCheckIns struct {
	create func(userID string, req *models.CreateCheckInRequest) (*models.CheckIn, error)
	list   func(userID string, limit, offset int) ([]models.CheckIn, error)
}

func (f *fakeCheckIns) CreateCheckIn(ctx context.Context, userID string, req *models.CreateCheckInRequest) (*models.CheckIn, error) {
	return f.create(userID, req)
}

func (f *fakeCheckIns) ListCheckIns(ctx context.Context, userID string, limit, offset int) ([]models.CheckIn, error) {
	return f.list(userID, limit, offset)
}

type fakeWheel struct {
	get    func(userID, slug string) (*models.LifeAreaDetail, error)
	update func(userID, slug string, req *models.UpdateLifeAreaRequest) (*models.LifeAreaDetail, error)
}

func (f *fakeWheel) GetArea(ctx context.Context, userID, slug string) (*models.LifeAreaDetail, error) {
	return f.get(userID, slug)
}

func (f *fakeWheel) UpdateArea(ctx context.Context, userID, slug string, req *models.UpdateLifeAreaRequest) (*models.LifeAreaDetail, error) {
	return f.update(userID, slug, req)
}

type fakeInsights struct {
	nudges      func(userID string) (*models.NudgesResponse, error)
	personality func(userID string) (*models.PersonalityProfile, error)
	refresh     func(userID string) (*models.PersonalityProfile, error)
}

func (f *fakeInsights) GetNudges(ctx context.Context, userID string) (*models.NudgesResponse, error) {
	return f.nudges(userID)
}

func (f *fakeInsights) GetPersonality(ctx context.Context, userID string) (*models.PersonalityProfile, error) {
	return f.personality(userID)
}

func (f *fakeInsights) RefreshPersonality(ctx context.Context, userID string) (*models.PersonalityProfile, error) {
	return f.refresh(userID)
}

type fakeAuth struct {
	login func(req *models.LoginRequest) (*models.AuthResponse, error)
}

func (f *fakeAuth) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	return f.login(req)
}

func (f *fakeAuth) Me(ctx context.Context, identity auth.Identity) *models.User {
	return &models.User{ID: identity.UserID, Email: identity.Email}
}

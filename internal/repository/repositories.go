package repository

import "github.com/JonnyWalker81/daybook/backend/pkg/supabase"

// Repositories is the full set of data access used by the services.
type Repositories struct {
	JournalEntries JournalEntryRepository
	CheckIns       CheckInRepository
	Goals          GoalRepository
	Tasks          TaskRepository
	Finance        FinanceRepository
	People         PersonRepository
	Recaps         RecapRepository
	WheelOfLife    WheelOfLifeRepository
	Personality    PersonalityRepository
	Idempotency    IdempotencyRepository
}

// NewSupabaseRepositories builds every repository over the PostgREST client.
func NewSupabaseRepositories(client *supabase.Client) Repositories {
	return Repositories{
		JournalEntries: NewJournalEntryRepository(client),
		CheckIns:       NewCheckInRepository(client),
		Goals:          NewGoalRepository(client),
		Tasks:          NewTaskRepository(client),
		Finance:        NewFinanceRepository(client),
		People:         NewPersonRepository(client),
		Recaps:         NewRecapRepository(client),
		WheelOfLife:    NewWheelOfLifeRepository(client),
		Personality:    NewPersonalityRepository(client),
		Idempotency:    NewIdempotencyRepository(client),
	}
}

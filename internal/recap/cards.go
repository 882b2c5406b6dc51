// Package recap turns a period of journaling data into presentation cards.
package recap

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/JonnyWalker81/daybook/backend/internal/analysis"
	"github.com/JonnyWalker81/daybook/backend/internal/models"
)

// MaxTopPeople bounds the people listed on the people card
const MaxTopPeople = 5

// Input is the normalized data for one recap period. Entries, check-ins
// and finance entries are filtered to Window by BuildCards.
type Input struct {
	Window   analysis.Window
	Entries  []models.JournalEntry
	CheckIns []models.CheckIn
	People   []models.Person
	Goals    []models.Goal
	Tasks    []models.Task
	Finance  []models.FinanceEntry
	Rules    analysis.Rules
}

// BuildCards returns the cards with data for the period, in the order
// people, mood, places, growth, goals, finance.
func BuildCards(in Input) []models.RecapCard {
	in.Entries = analysis.FilterEntries(in.Entries, in.Window)
	in.CheckIns = analysis.FilterCheckIns(in.CheckIns, in.Window)
	in.Finance = analysis.FilterFinanceEntries(in.Finance, in.Window)

	builders := []func(Input) *models.RecapCard{
		PeopleCard,
		MoodCard,
		PlacesCard,
		GrowthCard,
		GoalsCard,
		FinanceCard,
	}

	cards := make([]models.RecapCard, 0, len(builders))
	for _, build := range builders {
		if card := build(in); card != nil {
			cards = append(cards, *card)
		}
	}
	return cards
}

// PeopleCard counts entries naming each person and lists people added in
// the period. Returns nil when nobody was mentioned or added.
func PeopleCard(in Input) *models.RecapCard {
	mentions := make([]models.PersonMention, 0)
	newPeople := make([]string, 0)

	for _, p := range in.People {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			continue
		}
		if in.Window.Contains(p.CreatedAt) {
			newPeople = append(newPeople, name)
		}

		lower := strings.ToLower(name)
		count := 0
		for _, e := range in.Entries {
			if strings.Contains(strings.ToLower(e.EffectiveText()), lower) {
				count++
			}
		}
		if count > 0 {
			mentions = append(mentions, models.PersonMention{Name: name, Relationship: p.Relationship, Mentions: count})
		}
	}

	if len(mentions) == 0 && len(newPeople) == 0 {
		return nil
	}

	sort.SliceStable(mentions, func(i, j int) bool { return mentions[i].Mentions > mentions[j].Mentions })
	total := len(mentions)
	top := mentions
	if len(top) > MaxTopPeople {
		top = top[:MaxTopPeople]
	}

	card := newCard(models.CardPeople, "The People in Your Story", in.Window)
	card.Data = models.PeopleCardData{TopPeople: top, NewPeople: newPeople, TotalMentioned: total}

	if len(top) > 0 {
		card.Content = fmt.Sprintf("You wrote about %d %s this period. %s came up most often, in %d %s.",
			total, plural(total, "person", "people"), top[0].Name, top[0].Mentions, plural(top[0].Mentions, "entry", "entries"))
		for _, m := range top {
			card.Highlights = append(card.Highlights, fmt.Sprintf("%s: %d %s", m.Name, m.Mentions, plural(m.Mentions, "mention", "mentions")))
		}
	} else {
		card.Content = "You didn't mention anyone by name in your entries this period."
	}

	if len(newPeople) > 0 {
		card.Insights = append(card.Insights, fmt.Sprintf("You added %d new %s: %s.",
			len(newPeople), plural(len(newPeople), "person", "people"), strings.Join(newPeople, ", ")))
	}
	if len(top) > 1 {
		card.Insights = append(card.Insights, fmt.Sprintf("%s and %s were central to your period.", top[0].Name, top[1].Name))
	}
	return card
}

// MoodCard summarizes check-in moods. The trend uses ThresholdTrend over
// daily averages. Returns nil without check-ins.
func MoodCard(in Input) *models.RecapCard {
	if len(in.CheckIns) == 0 {
		return nil
	}

	days := analysis.SortedAggregates(analysis.AggregateByDay(in.CheckIns))
	scores := make([]float64, len(in.CheckIns))
	for i, c := range in.CheckIns {
		scores[i] = c.MoodScore
	}
	series := make([]float64, len(days))
	best, worst := days[0], days[0]
	for i, d := range days {
		series[i] = d.AverageMood
		if d.AverageMood > best.AverageMood {
			best = d
		}
		if d.AverageMood < worst.AverageMood {
			worst = d
		}
	}

	data := models.MoodCardData{
		AverageMood:  round1(analysis.Mean(scores)),
		BestDay:      models.DayMood{Date: best.Date, AverageMood: round1(best.AverageMood)},
		WorstDay:     models.DayMood{Date: worst.Date, AverageMood: round1(worst.AverageMood)},
		Trend:        analysis.ThresholdTrend{}.Direction(series),
		DominantMood: analysis.DominantMood(in.CheckIns),
		CheckInCount: len(in.CheckIns),
	}

	card := newCard(models.CardMood, "Your Emotional Landscape", in.Window)
	card.Data = data
	card.Content = fmt.Sprintf("Across %d %s your average mood was %.1f out of 9, and you most often felt %s.",
		data.CheckInCount, plural(data.CheckInCount, "check-in", "check-ins"), data.AverageMood, data.DominantMood)
	card.Highlights = []string{
		fmt.Sprintf("Best day: %s (%.1f)", data.BestDay.Date, data.BestDay.AverageMood),
		fmt.Sprintf("Toughest day: %s (%.1f)", data.WorstDay.Date, data.WorstDay.AverageMood),
	}

	switch data.Trend {
	case models.TrendImproving:
		card.Insights = append(card.Insights, "Your mood lifted as the period went on.")
	case models.TrendDeclining:
		card.Insights = append(card.Insights, "Your mood dipped toward the end of the period.")
	default:
		card.Insights = append(card.Insights, "Your mood held steady through the period.")
	}
	if data.AverageMood > analysis.HighMoodThreshold {
		card.Insights = append(card.Insights, "Overall this was a bright stretch for you.")
	} else if data.AverageMood < analysis.LowMoodThreshold {
		card.Insights = append(card.Insights, "It was a heavy stretch. Be gentle with yourself.")
	}
	return card
}

// PlacesCard counts entries mentioning each known place. Returns nil when
// no place is mentioned.
func PlacesCard(in Input) *models.RecapCard {
	places := make([]models.PlaceCount, 0)
	for _, place := range in.Rules.Places {
		count := 0
		for _, e := range in.Entries {
			if strings.Contains(strings.ToLower(e.EffectiveText()), place) {
				count++
			}
		}
		if count > 0 {
			places = append(places, models.PlaceCount{Place: place, Count: count})
		}
	}
	if len(places) == 0 {
		return nil
	}
	sort.SliceStable(places, func(i, j int) bool { return places[i].Count > places[j].Count })

	card := newCard(models.CardPlaces, "Where Your Days Happened", in.Window)
	card.Data = models.PlacesCardData{Places: places}
	card.Content = fmt.Sprintf("You wrote about %d %s. The %s showed up most, in %d %s.",
		len(places), plural(len(places), "place", "places"), places[0].Place, places[0].Count, plural(places[0].Count, "entry", "entries"))
	for _, p := range places {
		card.Highlights = append(card.Highlights, fmt.Sprintf("%s (%d)", p.Place, p.Count))
	}
	if len(places) == 1 {
		card.Insights = []string{"Most of your period centered on one place."}
	} else {
		card.Insights = []string{fmt.Sprintf("Your entries moved between %d different places.", len(places))}
	}
	return card
}

// GrowthCard counts entries with learning, challenge and growth language.
// Returns nil when none of them match.
func GrowthCard(in Input) *models.RecapCard {
	var data models.GrowthCardData
	for _, e := range in.Entries {
		for _, category := range in.Rules.Growth.Match(e.EffectiveText()) {
			switch category {
			case analysis.GrowthLearning:
				data.LearningMoments++
			case analysis.GrowthChallenges:
				data.ChallengesOvercome++
			case analysis.GrowthKeywords:
				data.GrowthEntries++
			}
		}
	}
	if data.LearningMoments+data.ChallengesOvercome+data.GrowthEntries == 0 {
		return nil
	}

	card := newCard(models.CardGrowth, "How You Grew", in.Window)
	card.Data = data
	card.Content = fmt.Sprintf("You captured %d learning %s and worked through %d %s.",
		data.LearningMoments, plural(data.LearningMoments, "moment", "moments"),
		data.ChallengesOvercome, plural(data.ChallengesOvercome, "challenge", "challenges"))
	card.Highlights = []string{
		fmt.Sprintf("Learning moments: %d", data.LearningMoments),
		fmt.Sprintf("Challenges overcome: %d", data.ChallengesOvercome),
		fmt.Sprintf("Entries about growth: %d", data.GrowthEntries),
	}
	if data.ChallengesOvercome > 0 {
		card.Insights = append(card.Insights, "Naming the hard parts is how you get through them.")
	}
	if data.LearningMoments > 0 {
		card.Insights = append(card.Insights, "You are paying attention to what each day teaches you.")
	}
	return card
}

// GoalsCard reports task and goal completion for the period. A task counts
// when it was created, completed or due inside the window; a goal counts
// when it was open at some point in the window. Returns nil when neither
// exists.
func GoalsCard(in Input) *models.RecapCard {
	var data models.GoalsCardData
	for _, t := range in.Tasks {
		if !taskInWindow(t, in.Window) {
			continue
		}
		data.TasksTotal++
		if t.Completed {
			data.TasksCompleted++
		}
	}
	for _, g := range in.Goals {
		if !goalInWindow(g, in.Window) {
			continue
		}
		data.GoalsTotal++
		if g.IsCompleted() {
			data.GoalsCompleted++
		}
	}
	if data.TasksTotal == 0 && data.GoalsTotal == 0 {
		return nil
	}

	if data.TasksTotal > 0 {
		data.CompletionRate = round1(float64(data.TasksCompleted) * 100 / float64(data.TasksTotal))
	} else {
		data.CompletionRate = round1(float64(data.GoalsCompleted) * 100 / float64(data.GoalsTotal))
	}

	card := newCard(models.CardGoals, "Progress on Your Goals", in.Window)
	card.Data = data
	card.Content = fmt.Sprintf("You completed %d of %d %s and %d of %d %s, a %.0f%% completion rate.",
		data.TasksCompleted, data.TasksTotal, plural(data.TasksTotal, "task", "tasks"),
		data.GoalsCompleted, data.GoalsTotal, plural(data.GoalsTotal, "goal", "goals"), data.CompletionRate)
	card.Highlights = []string{
		fmt.Sprintf("Tasks: %d/%d", data.TasksCompleted, data.TasksTotal),
		fmt.Sprintf("Goals: %d/%d", data.GoalsCompleted, data.GoalsTotal),
	}
	switch {
	case data.CompletionRate > analysis.StrongGoalRate:
		card.Insights = []string{"You followed through on most of what you set out to do."}
	case data.CompletionRate < analysis.WeakGoalRate:
		card.Insights = []string{"Smaller, concrete next steps can make progress easier to see."}
	default:
		card.Insights = []string{"You are making steady progress."}
	}
	return card
}

// FinanceCard sums income and expenses for the period. SavingsRate is 0
// when there is no income. Returns nil without finance entries.
func FinanceCard(in Input) *models.RecapCard {
	if len(in.Finance) == 0 {
		return nil
	}

	var data models.FinanceCardData
	byCategory := make(map[string]float64)
	for _, f := range in.Finance {
		switch f.Type {
		case models.FinanceIncome:
			data.Income += f.Amount
		case models.FinanceExpense:
			data.Expenses += f.Amount
			category := f.Category
			if category == "" {
				category = "other"
			}
			byCategory[category] += f.Amount
		}
	}
	data.Savings = data.Income - data.Expenses
	if data.Income > 0 {
		data.SavingsRate = round1(data.Savings / data.Income * 100)
	}

	data.ExpensesByCategory = make([]models.CategoryAmount, 0, len(byCategory))
	for category, amount := range byCategory {
		data.ExpensesByCategory = append(data.ExpensesByCategory, models.CategoryAmount{Category: category, Amount: amount})
	}
	sort.Slice(data.ExpensesByCategory, func(i, j int) bool {
		a, b := data.ExpensesByCategory[i], data.ExpensesByCategory[j]
		if a.Amount != b.Amount {
			return a.Amount > b.Amount
		}
		return a.Category < b.Category
	})

	card := newCard(models.CardFinance, "Your Money Story", in.Window)
	card.Data = data
	card.Content = fmt.Sprintf("You brought in $%.2f and spent $%.2f, leaving $%.2f.", data.Income, data.Expenses, data.Savings)
	for _, c := range data.ExpensesByCategory {
		card.Highlights = append(card.Highlights, fmt.Sprintf("%s: $%.2f", c.Category, c.Amount))
	}

	switch {
	case data.Income == 0:
		card.Insights = append(card.Insights, "No income was logged this period.")
	case data.Savings >= 0:
		card.Insights = append(card.Insights, fmt.Sprintf("You saved %.1f%% of your income.", data.SavingsRate))
	default:
		card.Insights = append(card.Insights, "You spent more than you earned this period.")
	}
	if len(data.ExpensesByCategory) > 0 {
		card.Insights = append(card.Insights, fmt.Sprintf("Your biggest expense category was %s.", data.ExpensesByCategory[0].Category))
	}
	return card
}

func newCard(category models.RecapCategory, title string, w analysis.Window) *models.RecapCard {
	return &models.RecapCard{
		ID:         fmt.Sprintf("%s-%s", category, analysis.DayKey(w.Start)),
		Category:   category,
		Title:      title,
		Subtitle:   fmt.Sprintf("%s to %s", w.Start.UTC().Format("Jan 2"), w.End.UTC().Format("Jan 2")),
		Insights:   make([]string, 0),
		Highlights: make([]string, 0),
	}
}

func taskInWindow(t models.Task, w analysis.Window) bool {
	if w.Contains(t.CreatedAt) {
		return true
	}
	if t.CompletedAt != nil && w.Contains(*t.CompletedAt) {
		return true
	}
	return t.DueDate != nil && w.Contains(*t.DueDate)
}

func goalInWindow(g models.Goal, w analysis.Window) bool {
	if g.CreatedAt.After(w.End) {
		return false
	}
	if g.IsCompleted() && g.CompletedAt != nil && g.CompletedAt.Before(w.Start) {
		return false
	}
	return true
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

package analysis

import (
	"fmt"
	"sort"
	"strings"

	"github.com/JonnyWalker81/daybook/backend/internal/models"
)

// Life area detail limits
const (
	MaxRelatedEntries = 10
	ExcerptLength     = 160
	LowAreaScore      = 5
	HighAreaScore     = 8
)

// LifeAreaInput is what the wheel of life knows about one area.
type LifeAreaInput struct {
	Slug       string
	Stored     models.LifeAreaScore
	IsPriority bool
	Goals      []models.Goal
	Entries    []models.JournalEntry
	Rules      Rules
}

// ValidLifeArea reports whether slug names a life area of the rule set.
func ValidLifeArea(rules Rules, slug string) bool {
	return rules.LifeAreaThemes.Keywords(slug) != nil
}

// LifeAreaName turns a slug such as "personal-growth" into "Personal Growth".
func LifeAreaName(slug string) string {
	words := strings.Split(slug, "-")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// BuildLifeAreaDetail collects the goals and entries of a life area. Entries
// are related by life-area keywords and scored with TokenSentiment; the
// breakdown covers every related entry while the list keeps the newest
// MaxRelatedEntries.
func BuildLifeAreaDetail(in LifeAreaInput) models.LifeAreaDetail {
	detail := models.LifeAreaDetail{
		Slug:           in.Slug,
		Name:           LifeAreaName(in.Slug),
		Score:          in.Stored.Score,
		Notes:          in.Stored.Notes,
		IsPriority:     in.IsPriority,
		Goals:          make([]models.Goal, 0),
		RelatedEntries: make([]models.RelatedEntry, 0),
	}

	for _, g := range in.Goals {
		if strings.EqualFold(g.LifeArea, in.Slug) {
			detail.Goals = append(detail.Goals, g)
		}
	}
	detail.GoalStats = GoalCompletion(detail.Goals)

	entries := make([]models.JournalEntry, len(in.Entries))
	copy(entries, in.Entries)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})

	sentiment := in.Rules.Token()
	for _, e := range entries {
		text := e.EffectiveText()
		if !in.Rules.LifeAreaThemes.Matches(text, in.Slug) {
			continue
		}
		score := sentiment.Analyze(text)
		switch score.Label {
		case models.SentimentPositive:
			detail.SentimentBreakdown.Positive++
		case models.SentimentNegative:
			detail.SentimentBreakdown.Negative++
		default:
			detail.SentimentBreakdown.Neutral++
		}
		if len(detail.RelatedEntries) < MaxRelatedEntries {
			detail.RelatedEntries = append(detail.RelatedEntries, models.RelatedEntry{
				ID:        e.ID,
				Title:     e.Title,
				Date:      e.CreatedAt,
				Excerpt:   excerpt(text, ExcerptLength),
				Sentiment: score,
			})
		}
	}

	detail.Recommendations = areaRecommendations(detail)
	return detail
}

func areaRecommendations(d models.LifeAreaDetail) []string {
	recs := make([]string, 0)
	related := d.SentimentBreakdown.Positive + d.SentimentBreakdown.Negative + d.SentimentBreakdown.Neutral

	if d.Score > 0 && d.Score < LowAreaScore {
		recs = append(recs, fmt.Sprintf("Your %s score is low. Pick one small action this week to lift it.", d.Name))
	}
	if d.IsPriority && d.GoalStats.Total == 0 {
		recs = append(recs, fmt.Sprintf("%s is a priority but has no goals yet. Set one to track progress.", d.Name))
	}
	if d.GoalStats.Total > 0 && d.GoalStats.CompletionRate < 30 {
		recs = append(recs, fmt.Sprintf("Break your %s goals into smaller tasks to build momentum.", d.Name))
	}
	if related == 0 {
		recs = append(recs, fmt.Sprintf("Write about %s to see how it shows up in your days.", d.Name))
	} else if d.SentimentBreakdown.Negative > d.SentimentBreakdown.Positive {
		recs = append(recs, fmt.Sprintf("Recent entries about %s lean negative. Reflect on what is weighing on you.", d.Name))
	}
	if d.Score >= HighAreaScore {
		recs = append(recs, fmt.Sprintf("%s is going well. Note what works so you can keep it up.", d.Name))
	}
	return recs
}

func excerpt(text string, n int) string {
	runes := []rune(strings.TrimSpace(text))
	if len(runes) <= n {
		return string(runes)
	}
	return strings.TrimSpace(string(runes[:n])) + "..."
}

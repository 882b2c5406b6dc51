package analysis

import (
	"sort"
	"strings"
	"unicode"

	"github.com/JonnyWalker81/daybook/backend/internal/models"
)

// SentimentStrategy scores the polarity of a text.
type SentimentStrategy interface {
	Analyze(text string) models.SentimentScore
}

// SubstringSentiment counts how many positive and negative words occur
// anywhere in the lower-cased text. Each word counts at most once.
type SubstringSentiment struct {
	Positive []string
	Negative []string
}

// Analyze implements SentimentStrategy.
func (s SubstringSentiment) Analyze(text string) models.SentimentScore {
	lower := strings.ToLower(text)
	pos := countContained(lower, s.Positive)
	neg := countContained(lower, s.Negative)
	return models.SentimentScore{Label: sentimentLabel(pos, neg), PositiveCount: pos, NegativeCount: neg}
}

// TokenSentiment splits text on whitespace, trims punctuation from each
// token and counts tokens that are exactly a positive or negative word.
type TokenSentiment struct {
	positive map[string]bool
	negative map[string]bool
}

// NewTokenSentiment builds a token strategy from word lists.
func NewTokenSentiment(positive, negative []string) TokenSentiment {
	return TokenSentiment{positive: toSet(positive), negative: toSet(negative)}
}

// Analyze implements SentimentStrategy.
func (s TokenSentiment) Analyze(text string) models.SentimentScore {
	var pos, neg int
	for _, token := range strings.Fields(strings.ToLower(text)) {
		token = strings.TrimFunc(token, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if s.positive[token] {
			pos++
		}
		if s.negative[token] {
			neg++
		}
	}
	return models.SentimentScore{Label: sentimentLabel(pos, neg), PositiveCount: pos, NegativeCount: neg}
}

var (
	_ SentimentStrategy = SubstringSentiment{}
	_ SentimentStrategy = TokenSentiment{}
)

func sentimentLabel(pos, neg int) models.Sentiment {
	switch {
	case pos > neg:
		return models.SentimentPositive
	case neg > pos:
		return models.SentimentNegative
	default:
		return models.SentimentNeutral
	}
}

func countContained(lower string, words []string) int {
	n := 0
	for _, w := range words {
		if w != "" && strings.Contains(lower, w) {
			n++
		}
	}
	return n
}

func toSet(words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = true
	}
	return set
}

// ExtractContentThemes returns the themes of rules mentioned in text.
func ExtractContentThemes(text string, rules KeywordRuleSet) []string {
	return rules.Match(text)
}

// AnalyzeEntryContent runs the content analysis for one entry.
func AnalyzeEntryContent(e models.JournalEntry, rules Rules) models.EntryContentPattern {
	text := e.EffectiveText()
	return models.EntryContentPattern{
		EntryID:     e.ID,
		Date:        DayKey(e.CreatedAt),
		Sentiment:   rules.Substring().Analyze(text).Label,
		Themes:      ExtractContentThemes(text, rules.BasicThemes),
		WordCount:   len(strings.Fields(text)),
		EntryLength: EntryLength(e),
		Flags: models.ContentFlags{
			MentionsGratitude:  rules.ContentFlags.Matches(text, FlagGratitude),
			MentionsGoals:      rules.ContentFlags.Matches(text, FlagGoals),
			MentionsChallenges: rules.ContentFlags.Matches(text, FlagChallenges),
			AsksQuestions:      strings.Contains(text, "?"),
			IsReflective:       rules.ContentFlags.Matches(text, FlagReflection),
		},
	}
}

// AnalyzeContentPatterns analyzes every entry and summarizes the window.
func AnalyzeContentPatterns(entries []models.JournalEntry, rules Rules) models.ContentPatterns {
	patterns := make([]models.EntryContentPattern, 0, len(entries))
	summary := models.ContentSummary{ThemeFrequency: make([]models.ThemeCount, 0)}
	themeCounts := make(map[string]int)
	totalWords := 0

	for _, e := range entries {
		p := AnalyzeEntryContent(e, rules)
		patterns = append(patterns, p)

		switch p.Sentiment {
		case models.SentimentPositive:
			summary.SentimentDistribution.Positive++
		case models.SentimentNegative:
			summary.SentimentDistribution.Negative++
		default:
			summary.SentimentDistribution.Neutral++
		}
		for _, theme := range p.Themes {
			themeCounts[theme]++
		}
		if p.Flags.MentionsGratitude {
			summary.GratitudeEntries++
		}
		if p.Flags.IsReflective {
			summary.ReflectiveEntries++
		}
		totalWords += p.WordCount
	}

	summary.TotalEntries = len(patterns)
	if len(patterns) > 0 {
		summary.AverageWordCount = float64(totalWords) / float64(len(patterns))
	}
	summary.ThemeFrequency = RankThemes(themeCounts)

	return models.ContentPatterns{Entries: patterns, Summary: summary}
}

// RankThemes orders theme counts by count descending, then name.
func RankThemes(counts map[string]int) []models.ThemeCount {
	out := make([]models.ThemeCount, 0, len(counts))
	for theme, n := range counts {
		out = append(out, models.ThemeCount{Theme: theme, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Theme < out[j].Theme
	})
	return out
}

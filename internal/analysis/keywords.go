package analysis

import (
	"sort"
	"strings"
)

// KeywordRule tags text with Category when any keyword is a substring of it.
type KeywordRule struct {
	Category string
	Keywords []string
}

// KeywordRuleSet is an ordered list of keyword rules. Matching is
// case-insensitive substring search.
type KeywordRuleSet []KeywordRule

// Match returns the categories whose keywords appear in text, in rule order.
func (rs KeywordRuleSet) Match(text string) []string {
	lower := strings.ToLower(text)
	matched := make([]string, 0)
	for _, rule := range rs {
		if containsAny(lower, rule.Keywords) {
			matched = append(matched, rule.Category)
		}
	}
	return matched
}

// Matches reports whether text mentions the given category.
func (rs KeywordRuleSet) Matches(text, category string) bool {
	for _, rule := range rs {
		if rule.Category == category {
			return containsAny(strings.ToLower(text), rule.Keywords)
		}
	}
	return false
}

// Keywords returns the keywords of category, or nil if it is not defined.
func (rs KeywordRuleSet) Keywords(category string) []string {
	for _, rule := range rs {
		if rule.Category == category {
			return rule.Keywords
		}
	}
	return nil
}

// Categories lists the rule categories in order.
func (rs KeywordRuleSet) Categories() []string {
	out := make([]string, len(rs))
	for i, rule := range rs {
		out[i] = rule.Category
	}
	return out
}

// WithOverrides returns a copy where categories present in overrides have
// their keywords replaced. Unknown categories are appended in name order.
func (rs KeywordRuleSet) WithOverrides(overrides map[string][]string) KeywordRuleSet {
	out := make(KeywordRuleSet, 0, len(rs)+len(overrides))
	seen := make(map[string]bool, len(rs))
	for _, rule := range rs {
		seen[rule.Category] = true
		if kw, ok := overrides[rule.Category]; ok {
			rule.Keywords = lowerAll(kw)
		}
		out = append(out, rule)
	}

	extra := make([]string, 0)
	for category := range overrides {
		if !seen[category] {
			extra = append(extra, category)
		}
	}
	sort.Strings(extra)
	for _, category := range extra {
		out = append(out, KeywordRule{Category: category, Keywords: lowerAll(overrides[category])})
	}
	return out
}

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if kw != "" && strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func lowerAll(words []string) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = strings.ToLower(strings.TrimSpace(w))
	}
	return out
}

// Life areas used by goals and the wheel of life
const (
	AreaCareer         = "career"
	AreaFinance        = "finance"
	AreaHealth         = "health"
	AreaFamily         = "family"
	AreaRelationships  = "relationships"
	AreaPersonalGrowth = "personal-growth"
	AreaRecreation     = "recreation"
	AreaSpirituality   = "spirituality"
)

// Growth card categories
const (
	GrowthLearning   = "learning"
	GrowthChallenges = "challenges"
	GrowthKeywords   = "growth"
)

// Content flag categories
const (
	FlagGratitude  = "gratitude"
	FlagGoals      = "goals"
	FlagChallenges = "challenges"
	FlagReflection = "reflection"
)

// Big Five traits
const (
	TraitOpenness          = "openness"
	TraitConscientiousness = "conscientiousness"
	TraitExtraversion      = "extraversion"
	TraitAgreeableness     = "agreeableness"
	TraitNeuroticism       = "neuroticism"
)

// Rules bundles every keyword list the pipeline consults.
type Rules struct {
	BasicThemes    KeywordRuleSet
	LifeAreaThemes KeywordRuleSet
	ContentFlags   KeywordRuleSet
	Growth         KeywordRuleSet
	Traits         KeywordRuleSet
	PositiveWords  []string
	NegativeWords  []string
	Places         []string
}

// WithThemeOverrides applies configured keyword overrides to both theme sets.
func (r Rules) WithThemeOverrides(overrides map[string][]string) Rules {
	if len(overrides) == 0 {
		return r
	}
	basic := make(map[string][]string)
	area := make(map[string][]string)
	for category, kw := range overrides {
		if r.LifeAreaThemes.Keywords(category) != nil {
			area[category] = kw
		}
		if r.BasicThemes.Keywords(category) != nil || r.LifeAreaThemes.Keywords(category) == nil {
			basic[category] = kw
		}
	}
	r.BasicThemes = r.BasicThemes.WithOverrides(basic)
	r.LifeAreaThemes = r.LifeAreaThemes.WithOverrides(area)
	return r
}

// Substring returns the sentiment strategy used by the correlations endpoint.
func (r Rules) Substring() SubstringSentiment {
	return SubstringSentiment{Positive: r.PositiveWords, Negative: r.NegativeWords}
}

// Token returns the sentiment strategy used by the wheel of life.
func (r Rules) Token() TokenSentiment {
	return NewTokenSentiment(r.PositiveWords, r.NegativeWords)
}

// DefaultRules returns the built-in keyword lists.
func DefaultRules() Rules {
	return Rules{
		BasicThemes: KeywordRuleSet{
			{Category: "work", Keywords: []string{"work", "job", "office", "meeting", "project", "boss", "colleague", "career"}},
			{Category: "relationships", Keywords: []string{"friend", "family", "partner", "love", "relationship", "mom", "dad", "wife", "husband"}},
			{Category: "health", Keywords: []string{"exercise", "workout", "gym", "sleep", "health", "doctor", "run", "diet", "tired"}},
			{Category: "finance", Keywords: []string{"money", "budget", "spend", "save", "salary", "bills", "pay", "expense", "invest"}},
		},
		LifeAreaThemes: KeywordRuleSet{
			{Category: AreaCareer, Keywords: []string{"work", "job", "career", "office", "meeting", "project", "boss", "promotion", "colleague"}},
			{Category: AreaFinance, Keywords: []string{"money", "budget", "spend", "save", "salary", "bills", "invest", "debt", "expense"}},
			{Category: AreaHealth, Keywords: []string{"exercise", "workout", "gym", "sleep", "health", "doctor", "run", "diet", "meditation"}},
			{Category: AreaFamily, Keywords: []string{"family", "mom", "dad", "mother", "father", "sister", "brother", "kids", "son", "daughter", "parent"}},
			{Category: AreaRelationships, Keywords: []string{"friend", "partner", "love", "relationship", "date", "wife", "husband", "boyfriend", "girlfriend"}},
			{Category: AreaPersonalGrowth, Keywords: []string{"learn", "grow", "improve", "book", "course", "skill", "goal", "habit"}},
			{Category: AreaRecreation, Keywords: []string{"fun", "hobby", "game", "movie", "travel", "vacation", "play", "music", "relax"}},
			{Category: AreaSpirituality, Keywords: []string{"pray", "church", "faith", "spiritual", "meditate", "god", "soul", "temple"}},
		},
		ContentFlags: KeywordRuleSet{
			{Category: FlagGratitude, Keywords: []string{"grateful", "thankful", "gratitude", "appreciate", "blessed"}},
			{Category: FlagGoals, Keywords: []string{"goal", "plan", "want to", "aim", "achieve", "target", "resolution"}},
			{Category: FlagChallenges, Keywords: []string{"challenge", "difficult", "hard", "struggle", "problem", "obstacle"}},
			{Category: FlagReflection, Keywords: []string{"reflect", "realize", "learned", "think", "thought", "wonder", "understand"}},
		},
		Growth: KeywordRuleSet{
			{Category: GrowthLearning, Keywords: []string{"learned", "realized", "discovered", "understood", "insight", "lesson"}},
			{Category: GrowthChallenges, Keywords: []string{"overcame", "challenge", "difficult", "struggled", "pushed through", "managed to"}},
			{Category: GrowthKeywords, Keywords: []string{"grow", "growth", "improve", "progress", "better", "develop"}},
		},
		Traits: KeywordRuleSet{
			{Category: TraitOpenness, Keywords: []string{"curious", "creative", "idea", "imagine", "explore", "new", "art", "learn", "wonder"}},
			{Category: TraitConscientiousness, Keywords: []string{"plan", "organized", "goal", "schedule", "finished", "discipline", "routine", "complete", "focus"}},
			{Category: TraitExtraversion, Keywords: []string{"party", "friends", "social", "talked", "met", "people", "group", "energized", "outgoing"}},
			{Category: TraitAgreeableness, Keywords: []string{"help", "kind", "support", "care", "grateful", "thankful", "forgive", "share", "listen"}},
			{Category: TraitNeuroticism, Keywords: []string{"worried", "anxious", "stressed", "nervous", "upset", "overwhelmed", "fear", "panic", "tense"}},
		},
		PositiveWords: []string{
			"happy", "great", "good", "amazing", "wonderful", "excited", "grateful", "thankful",
			"love", "joy", "proud", "peaceful", "calm", "accomplished", "hopeful", "fantastic",
		},
		NegativeWords: []string{
			"sad", "angry", "frustrated", "anxious", "stressed", "worried", "tired", "upset",
			"lonely", "depressed", "terrible", "awful", "overwhelmed", "disappointed", "hate", "exhausted",
		},
		Places: []string{
			"home", "office", "gym", "park", "cafe", "coffee shop", "restaurant", "beach", "library",
			"school", "church", "mall", "airport", "hospital", "store", "museum", "mountain", "lake",
		},
	}
}

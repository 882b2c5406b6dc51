package analysis

import (
	"math"

	"github.com/JonnyWalker81/daybook/backend/internal/models"
)

// Entry counts at which a personality estimate gains confidence
const (
	MediumConfidenceEntries = 5
	HighConfidenceEntries   = 20
)

var traitDescriptions = map[string][3]string{
	TraitOpenness: {
		"You tend to stick with the familiar in your writing.",
		"You balance routine with curiosity.",
		"Your entries show curiosity and a taste for new ideas.",
	},
	TraitConscientiousness: {
		"You write little about plans and routines.",
		"You plan some of the time and stay flexible otherwise.",
		"You often write about plans, goals and getting things done.",
	},
	TraitExtraversion: {
		"Your entries focus more on time alone.",
		"You mix time with others and time alone.",
		"Your entries are full of people and social energy.",
	},
	TraitAgreeableness: {
		"You rarely write about helping or supporting others.",
		"You show care for others in some of your entries.",
		"Kindness, support and gratitude come up often in your writing.",
	},
	TraitNeuroticism: {
		"Your entries rarely dwell on worry or stress.",
		"Stress shows up now and then in your writing.",
		"Worry and stress come up often; consider what drives them.",
	},
}

// CalculatePersonality estimates Big Five traits as the share of entries
// (0-100) that mention each trait's keywords.
func CalculatePersonality(entries []models.JournalEntry, traits KeywordRuleSet) models.PersonalityProfile {
	counts := make(map[string]int, len(traits))
	for _, e := range entries {
		for _, trait := range traits.Match(e.EffectiveText()) {
			counts[trait]++
		}
	}

	scores := make([]models.TraitScore, 0, len(traits))
	for _, trait := range traits.Categories() {
		var score float64
		if len(entries) > 0 {
			score = math.Round(float64(counts[trait])/float64(len(entries))*1000) / 10
		}
		scores = append(scores, models.TraitScore{
			Trait:       trait,
			Score:       score,
			Description: describeTrait(trait, score),
		})
	}

	return models.PersonalityProfile{
		Traits:     scores,
		EntryCount: len(entries),
		Confidence: PersonalityConfidence(len(entries)),
	}
}

// PersonalityConfidence grades an estimate by how many entries back it.
func PersonalityConfidence(entryCount int) models.Confidence {
	switch {
	case entryCount < MediumConfidenceEntries:
		return models.ConfidenceLow
	case entryCount < HighConfidenceEntries:
		return models.ConfidenceMedium
	default:
		return models.ConfidenceHigh
	}
}

// TraitMap flattens trait scores for storage.
func TraitMap(scores []models.TraitScore) map[string]float64 {
	out := make(map[string]float64, len(scores))
	for _, s := range scores {
		out[s.Trait] = s.Score
	}
	return out
}

// TraitScores rebuilds ordered trait scores from a stored map. Traits not in
// the rule set are dropped.
func TraitScores(stored map[string]float64, traits KeywordRuleSet) []models.TraitScore {
	out := make([]models.TraitScore, 0, len(traits))
	for _, trait := range traits.Categories() {
		score, ok := stored[trait]
		if !ok {
			continue
		}
		out = append(out, models.TraitScore{Trait: trait, Score: score, Description: describeTrait(trait, score)})
	}
	return out
}

func describeTrait(trait string, score float64) string {
	desc, ok := traitDescriptions[trait]
	if !ok {
		return ""
	}
	switch {
	case score >= 60:
		return desc[2]
	case score >= 30:
		return desc[1]
	default:
		return desc[0]
	}
}

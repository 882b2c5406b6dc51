package analysis

import "strings"

// UnknownMoodScore is the score of any mood label missing from the table
const UnknownMoodScore = 5.0

var moodTable = []struct {
	score  float64
	labels []string
}{
	{9, []string{"😊", "😀", "😄", "happy", "great", "amazing"}},
	{8, []string{"excited"}},
	{7, []string{"🙂", "good", "content"}},
	{6, []string{"calm"}},
	{5, []string{"😐", "neutral", "okay", "ok"}},
	{4, []string{"😕", "meh", "tired"}},
	{3, []string{"😔", "anxious", "stressed"}},
	{2, []string{"😢", "sad"}},
	{1, []string{"😠", "angry"}},
	{0, []string{"😭", "terrible", "awful"}},
}

var moodScores = buildMoodScores()

func buildMoodScores() map[string]float64 {
	scores := make(map[string]float64)
	for _, row := range moodTable {
		for _, label := range row.labels {
			scores[label] = row.score
		}
	}
	return scores
}

// MoodScore maps a mood label or emoji onto the 0-9 scale.
func MoodScore(mood string) float64 {
	if score, ok := moodScores[mood]; ok {
		return score
	}
	if score, ok := moodScores[strings.ToLower(strings.TrimSpace(mood))]; ok {
		return score
	}
	return UnknownMoodScore
}

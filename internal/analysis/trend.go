package analysis

import "github.com/JonnyWalker81/daybook/backend/internal/models"

// TrendStrategy compares the mean of the second half of a series against
// the first half. Series shorter than two values are always stable.
type TrendStrategy interface {
	Direction(series []float64) models.TrendDirection
}

// RelativeTrend flags a change of more than 10% between halves.
type RelativeTrend struct{}

// Direction implements TrendStrategy.
func (RelativeTrend) Direction(series []float64) models.TrendDirection {
	if len(series) < 2 {
		return models.TrendStable
	}
	first, second := halves(series)
	switch {
	case second > first*1.1:
		return models.TrendImproving
	case second < first*0.9:
		return models.TrendDeclining
	default:
		return models.TrendStable
	}
}

// ThresholdTrend flags an absolute change of more than half a point.
type ThresholdTrend struct{}

// Direction implements TrendStrategy.
func (ThresholdTrend) Direction(series []float64) models.TrendDirection {
	if len(series) < 2 {
		return models.TrendStable
	}
	first, second := halves(series)
	switch {
	case second > first+0.5:
		return models.TrendImproving
	case second < first-0.5:
		return models.TrendDeclining
	default:
		return models.TrendStable
	}
}

var (
	_ TrendStrategy = RelativeTrend{}
	_ TrendStrategy = ThresholdTrend{}
)

func halves(series []float64) (first, second float64) {
	mid := len(series) / 2
	return Mean(series[:mid]), Mean(series[mid:])
}

// Mean is the arithmetic mean, 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

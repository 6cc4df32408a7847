package results

import (
	"math"

	"github.com/pavelanni/diagnostic/internal/model"
)

// MinSubjectHours is the smallest allocation any subject receives.
const MinSubjectHours = 2

// TotalStudyHours maps the overall percentage to a total study budget.
// Lower performance means more hours.
func TotalStudyHours(overallPct float64) int {
	switch {
	case overallPct < 25:
		return 60
	case overallPct < 40:
		return 50
	case overallPct < 55:
		return 40
	case overallPct < 70:
		return 30
	case overallPct < 85:
		return 20
	default:
		return 15
	}
}

// AllocateHours splits total across subjects in proportion to their inverted score
// (100 - percentage), iterating in canonical subject order. Every subject gets at
// least MinSubjectHours and the last subject absorbs the rounding drift, so the sum
// equals total whenever total >= MinSubjectHours * len(model.Subjects).
func AllocateHours(percentages map[model.Subject]float64, total int) map[model.Subject]int {
	weights := make([]float64, len(model.Subjects))
	for i, s := range model.Subjects {
		weights[i] = 100 - percentages[s]
	}
	hours := allocate(weights, total)

	out := make(map[model.Subject]int, len(model.Subjects))
	for i, s := range model.Subjects {
		out[s] = hours[i]
	}
	return out
}

func allocate(weights []float64, total int) []int {
	n := len(weights)
	out := make([]int, n)
	if n == 0 {
		return out
	}

	var sum float64
	for _, w := range weights {
		sum += w
	}

	allocated := 0
	for i, w := range weights {
		if i == n-1 {
			out[i] = max(MinSubjectHours, total-allocated)
			break
		}

		// All subjects at 100%: nothing to invert, split evenly.
		share := 1 / float64(n)
		if sum > 0 {
			share = w / sum
		}
		h := max(MinSubjectHours, int(math.Round(share*float64(total))))

		// Leave room for the floor of every subject still to come.
		remaining := n - 1 - i
		h = min(h, max(MinSubjectHours, total-allocated-MinSubjectHours*remaining))

		out[i] = h
		allocated += h
	}
	return out
}

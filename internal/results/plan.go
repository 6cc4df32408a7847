package results

import (
	"fmt"
	"math"
	"strings"

	"github.com/pavelanni/diagnostic/internal/model"
)

const (
	minActivities   = 3
	hoursPerItem    = 3
	foundationShare = 0.6
	maxFocusTopics  = 2
)

func activityID(s model.Subject, i int) string {
	return fmt.Sprintf("Plan.%s.%d", s, i+1)
}

// activityCount is the number of fixed activities per subject. Activities are
// ordered from foundational to advanced.
func activityCount(s model.Subject) int {
	return len(englishActivities[s])
}

// StudyPlan selects the activities for one subject. The number of items grows with
// the allocated hours; weak subjects get the foundational end of the list, strong
// subjects the advanced end, and the middle band a blend of both.
func StudyPlan(t Translator, s model.Subject, hours int, weakTopics []string, pct float64) []string {
	total := activityCount(s)
	n := min(max(minActivities, int(math.Ceil(float64(hours)/hoursPerItem))), total)

	var picked []int
	switch {
	case pct < 50:
		picked = indexRange(0, n)
	case pct < 75:
		base := int(math.Ceil(float64(n) * foundationShare))
		advanced := n - base
		picked = append(indexRange(0, base), indexRange(total-advanced, total)...)
	default:
		picked = indexRange(total-n, total)
	}

	plan := make([]string, 0, len(picked)+1)
	if len(weakTopics) > 0 {
		focus := weakTopics[:min(maxFocusTopics, len(weakTopics))]
		plan = append(plan, t(MsgPlanFocus, map[string]any{"Topics": strings.Join(focus, ", ")}))
	}
	for _, i := range picked {
		plan = append(plan, t(activityID(s, i), nil))
	}
	return plan
}

func indexRange(from, to int) []int {
	out := make([]int, 0, max(0, to-from))
	for i := from; i < to; i++ {
		out = append(out, i)
	}
	return out
}

package results

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pavelanni/diagnostic/internal/model"
)

func idTranslator(id string, _ map[string]any) string { return id }

func TestStudyPlan(t *testing.T) {
	tests := []struct {
		name  string
		hours int
		weak  []string
		pct   float64
		want  []string
	}{
		{"foundational minimum", 2, nil, 10, []string{"Plan.physics.1", "Plan.physics.2", "Plan.physics.3"}},
		{"foundational grows with hours", 13, nil, 49.9, []string{
			"Plan.physics.1", "Plan.physics.2", "Plan.physics.3", "Plan.physics.4", "Plan.physics.5",
		}},
		{"capped at list length", 60, nil, 0, []string{
			"Plan.physics.1", "Plan.physics.2", "Plan.physics.3", "Plan.physics.4",
			"Plan.physics.5", "Plan.physics.6", "Plan.physics.7", "Plan.physics.8",
		}},
		{"blend", 12, nil, 50, []string{
			"Plan.physics.1", "Plan.physics.2", "Plan.physics.3", "Plan.physics.8",
		}},
		{"blend five", 15, nil, 74.9, []string{
			"Plan.physics.1", "Plan.physics.2", "Plan.physics.3", "Plan.physics.7", "Plan.physics.8",
		}},
		{"advanced", 3, nil, 75, []string{"Plan.physics.6", "Plan.physics.7", "Plan.physics.8"}},
		{"focus uses first two weak topics", 3, []string{"Optics", "Mechanics", "Thermodynamics"}, 90, []string{
			MsgPlanFocus, "Plan.physics.6", "Plan.physics.7", "Plan.physics.8",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StudyPlan(idTranslator, model.SubjectPhysics, tt.hours, tt.weak, tt.pct))
		})
	}
}

func TestStudyPlanFocusText(t *testing.T) {
	plan := StudyPlan(English(), model.SubjectBiology, 3, []string{"Genetics", "Ecology", "Physiology"}, 20)
	assert.Equal(t, "Focus on: Genetics, Ecology", plan[0])
	assert.Equal(t, "Review the organization of living things", plan[1])
}

func TestMessagesCoverActivities(t *testing.T) {
	en := English()
	for _, s := range model.Subjects {
		assert.Equal(t, 8, activityCount(s))
		for i := 0; i < activityCount(s); i++ {
			assert.NotEqual(t, activityID(s, i), en(activityID(s, i), nil))
		}
		assert.NotEqual(t, SubjectNameID(s), en(SubjectNameID(s), nil))
	}
	assert.Equal(t, "unknown.id", en("unknown.id", nil))
}

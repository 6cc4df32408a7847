package results

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pavelanni/diagnostic/internal/model"
)

func TestTotalStudyHours(t *testing.T) {
	tests := []struct {
		pct  float64
		want int
	}{
		{0, 60},
		{24.9, 60},
		{25, 50},
		{39.9, 50},
		{40, 40},
		{54.9, 40},
		{55, 30},
		{69.9, 30},
		{70, 20},
		{84.9, 20},
		{85, 15},
		{100, 15},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TotalStudyHours(tt.pct), "pct %v", tt.pct)
	}
}

func TestAllocateHours(t *testing.T) {
	pcts := func(m, p, c, b float64) map[model.Subject]float64 {
		return map[model.Subject]float64{
			model.SubjectMath: m, model.SubjectPhysics: p, model.SubjectChemistry: c, model.SubjectBiology: b,
		}
	}

	tests := []struct {
		name  string
		pcts  map[model.Subject]float64
		total int
		want  []int
	}{
		{"all perfect splits evenly", pcts(100, 100, 100, 100), 15, []int{4, 4, 4, 3}},
		{"all zero", pcts(0, 0, 0, 0), 60, []int{15, 15, 15, 15}},
		{"weakest gets most", pcts(20, 0, 0, 0), 60, []int{13, 16, 16, 15}},
		{"floor reserved for later subjects", pcts(0, 100, 100, 100), 20, []int{14, 2, 2, 2}},
		{"last subject weakest", pcts(100, 100, 100, 0), 20, []int{2, 2, 2, 14}},
		{"missing subjects count as zero", map[model.Subject]float64{}, 40, []int{10, 10, 10, 10}},
		{"budget below floors", pcts(0, 0, 0, 0), 4, []int{2, 2, 2, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AllocateHours(tt.pcts, tt.total)
			var hours []int
			for _, s := range model.Subjects {
				hours = append(hours, got[s])
			}
			assert.Equal(t, tt.want, hours)
		})
	}
}

func TestAllocateEmpty(t *testing.T) {
	assert.Empty(t, allocate(nil, 10))
	assert.Equal(t, []int{10}, allocate([]float64{50}, 10))
}

func TestAllocateHoursProperties(t *testing.T) {
	levels := []float64{0, 20, 40, 60, 80, 100}
	for _, m := range levels {
		for _, p := range levels {
			for _, c := range levels {
				for _, b := range levels {
					pcts := map[model.Subject]float64{
						model.SubjectMath: m, model.SubjectPhysics: p, model.SubjectChemistry: c, model.SubjectBiology: b,
					}
					total := TotalStudyHours((m + p + c + b) / 4)
					got := AllocateHours(pcts, total)

					sum := 0
					for _, s := range model.Subjects {
						sum += got[s]
						assert.GreaterOrEqual(t, got[s], MinSubjectHours)
					}
					assert.Equal(t, total, sum, "pcts %v", pcts)

					for _, a := range model.Subjects {
						for _, o := range model.Subjects {
							if pcts[a] < pcts[o] {
								assert.GreaterOrEqual(t, got[a], got[o], "pcts %v: %s vs %s", pcts, a, o)
							}
						}
					}
				}
			}
		}
	}
}

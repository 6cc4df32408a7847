// Package results turns a set of quiz answers into scores, weak topics, a study-hour
// allocation, study plans and recommendations.
//
// Calculation is a pure function of the question bank and the answers: it never
// mutates its inputs, allocates fresh output on every call and is safe for
// concurrent use.
package results

import (
	"fmt"
	"slices"
	"strings"

	"github.com/pavelanni/diagnostic/internal/bank"
	"github.com/pavelanni/diagnostic/internal/model"
)

const (
	weakTopicThreshold = 50
	praiseThreshold    = 80
)

// Engine computes test results. The zero value produces English text.
type Engine struct {
	Translate Translator
}

// Calculate computes results with English text.
func Calculate(b *bank.Bank, answers model.Answers) model.TestResults {
	return Engine{}.Calculate(b, answers)
}

type tally struct {
	total, correct int
}

func (t tally) percentage() float64 {
	return percentage(t.correct, t.total)
}

func percentage(correct, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(correct) / float64(total) * 100
}

// Calculate scores answers against the bank. Answers referencing unknown questions
// or holding unknown option keys are ignored or scored as wrong; missing answers
// count as wrong.
func (e Engine) Calculate(b *bank.Bank, answers model.Answers) model.TestResults {
	t := e.Translate
	if t == nil {
		t = English()
	}

	var overall tally
	subjects := make(map[model.Subject]model.SubjectResult, len(model.Subjects))
	percentages := make(map[model.Subject]float64, len(model.Subjects))

	for _, s := range model.Subjects {
		var sub tally
		topics := make(map[string]*tally)
		var topicOrder []string

		for _, q := range b.Questions(s) {
			tt, ok := topics[q.Topic]
			if !ok {
				tt = &tally{}
				topics[q.Topic] = tt
				topicOrder = append(topicOrder, q.Topic)
			}
			tt.total++
			sub.total++

			if ans, ok := answers[q.ID]; ok && ans == q.CorrectAnswer {
				tt.correct++
				sub.correct++
			}
		}

		weak := []string{}
		for _, topic := range topicOrder {
			if topics[topic].percentage() < weakTopicThreshold {
				weak = append(weak, topic)
			}
		}

		overall.total += sub.total
		overall.correct += sub.correct
		percentages[s] = sub.percentage()
		subjects[s] = model.SubjectResult{
			Total:      sub.total,
			Correct:    sub.correct,
			Percentage: sub.percentage(),
			WeakTopics: weak,
		}
	}

	overallPct := overall.percentage()
	totalHours := TotalStudyHours(overallPct)
	allocation := AllocateHours(percentages, totalHours)

	for _, s := range model.Subjects {
		r := subjects[s]
		r.AllocatedHours = allocation[s]
		r.StudyPlan = StudyPlan(t, s, r.AllocatedHours, r.WeakTopics, r.Percentage)
		subjects[s] = r
	}

	return model.TestResults{
		Overall: model.Score{
			Total:      overall.total,
			Correct:    overall.correct,
			Percentage: overallPct,
		},
		Subjects:        subjects,
		TotalStudyHours: totalHours,
		Recommendations: recommendations(t, overallPct, totalHours, subjects),
	}
}

func formatPct(p float64) string {
	return fmt.Sprintf("%.1f", p)
}

// RankSubjects orders subjects from weakest to strongest. Ties keep canonical order.
func RankSubjects(subjects map[model.Subject]model.SubjectResult) []model.Subject {
	ranked := slices.Clone(model.Subjects)
	slices.SortStableFunc(ranked, func(a, b model.Subject) int {
		pa, pb := subjects[a].Percentage, subjects[b].Percentage
		switch {
		case pa < pb:
			return -1
		case pa > pb:
			return 1
		}
		return 0
	})
	return ranked
}

func recommendations(t Translator, overallPct float64, totalHours int, subjects map[model.Subject]model.SubjectResult) []string {
	var recs []string

	overallID := MsgOverallHigh
	switch {
	case overallPct < 40:
		overallID = MsgOverallLow
	case overallPct < 70:
		overallID = MsgOverallMid
	}
	recs = append(recs, t(overallID, map[string]any{
		"Percent": formatPct(overallPct),
		"Hours":   totalHours,
	}))

	ranked := RankSubjects(subjects)
	weakest, strongest := ranked[0], ranked[len(ranked)-1]

	recs = append(recs, t(MsgWeakest, map[string]any{
		"Subject": t(SubjectNameID(weakest), nil),
		"Percent": formatPct(subjects[weakest].Percentage),
		"Hours":   subjects[weakest].AllocatedHours,
	}))

	if subjects[strongest].Percentage > praiseThreshold {
		recs = append(recs, t(MsgStrongest, map[string]any{
			"Subject": t(SubjectNameID(strongest), nil),
			"Percent": formatPct(subjects[strongest].Percentage),
			"Hours":   subjects[strongest].AllocatedHours,
		}))
	}

	parts := make([]string, 0, len(model.Subjects))
	for _, s := range model.Subjects {
		parts = append(parts, t(MsgDistributionPart, map[string]any{
			"Subject": t(SubjectNameID(s), nil),
			"Hours":   subjects[s].AllocatedHours,
		}))
	}
	recs = append(recs, t(MsgDistribution, map[string]any{
		"Distribution": strings.Join(parts, ", "),
	}))

	return recs
}

// RatingFor classifies an overall percentage.
func RatingFor(pct float64) model.Rating {
	switch {
	case pct >= 80:
		return model.RatingExcellent
	case pct >= 65:
		return model.RatingGood
	case pct >= 50:
		return model.RatingAverage
	default:
		return model.RatingNeedsImprovement
	}
}

package report

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pavelanni/diagnostic/internal/bank"
	appI18n "github.com/pavelanni/diagnostic/internal/i18n"
	"github.com/pavelanni/diagnostic/internal/model"
	"github.com/pavelanni/diagnostic/internal/results"
)

var testDate = time.Date(2026, 5, 14, 9, 30, 0, 0, time.UTC)

func TestMain(m *testing.M) {
	if err := appI18n.Init("en"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func mixedResults(t *testing.T) model.TestResults {
	t.Helper()
	b := bank.Default()
	answers := model.Answers{}
	correct := map[model.Subject]int{
		model.SubjectMath: 3, model.SubjectPhysics: 4, model.SubjectChemistry: 1, model.SubjectBiology: 2,
	}
	for s, n := range correct {
		for _, q := range b.Questions(s)[:n] {
			answers[q.ID] = q.CorrectAnswer
		}
	}
	return results.Calculate(b, answers)
}

func TestBuild(t *testing.T) {
	r := mixedResults(t)
	e := Build("Marie Curie", testDate, r, "Keep going.")

	assert.Equal(t, "Marie Curie", e.Student)
	assert.Equal(t, "2026-05-14", e.Date)
	assert.Equal(t, model.RatingAverage, e.Rating)
	assert.Equal(t, r, e.Results)
	assert.Equal(t, "Keep going.", e.AdvisorNote)
}

func TestWriteJSON(t *testing.T) {
	e := Build("Marie", testDate, mixedResults(t), "")

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, e))

	out := buf.String()
	assert.True(t, strings.HasSuffix(out, "}\n"))
	assert.Contains(t, out, "\n  \"student\": \"Marie\"")
	assert.NotContains(t, out, "advisor_note", "empty note is omitted")

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	res := decoded["results"].(map[string]any)
	assert.EqualValues(t, 40, res["total_study_hours"])
	math := res["subjects"].(map[string]any)["math"].(map[string]any)
	assert.EqualValues(t, 8, math["allocated_hours"])
	assert.Equal(t, []any{"Geometry"}, math["weak_topics"])
}

func TestFileName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Marie Curie", "diagnostic_results_Marie_Curie.json"},
		{"  Jean   Paul\tSartre ", "diagnostic_results_Jean_Paul_Sartre.json"},
		{"Élodie", "diagnostic_results_Élodie.json"},
		{`a"b/c\d`, "diagnostic_results_abcd.json"},
		{"", "diagnostic_results_student.json"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FileName(tt.in, "json"), "name %q", tt.in)
	}
}

func TestRenderTextPlain(t *testing.T) {
	e := Build("Marie", testDate, mixedResults(t), "Start with chemistry.")
	out := RenderText(context.Background(), e, PlainTheme())

	for _, want := range []string{
		"Diagnostic Report",
		"Student: Marie",
		"Overall: 10/20 (50.0%)",
		"Rating:  Average",
		"Study:   40 hours",
		"chemistry    1/5    20.0%       16",
		"chemistry (16h)",
		"Areas for improvement:",
		"Personalized Recommendations",
		"Recommended study time split: mathematics: 8h, physics: 4h, chemistry: 16h, biology: 12h.",
		"Advisor Note\nStart with chemistry.",
	} {
		assert.Contains(t, out, want)
	}
	assert.Less(t, strings.Index(out, "mathematics (8h)"), strings.Index(out, "biology (12h)"))
}

func TestRenderTextFrench(t *testing.T) {
	ctx := appI18n.WithLocalizer(context.Background(), appI18n.NewLocalizer("fr"))
	e := Build("Marie", testDate, mixedResults(t), "")
	out := RenderText(ctx, e, PlainTheme())

	for _, want := range []string{
		"Rapport de diagnostic",
		"Élève:",
		"Global:",
		"Appréciation: Moyen",
		"40 heures",
		"Matière",
		"chimie (16h)",
		"Points à améliorer: ",
		"Recommandations personnalisées",
	} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "Student")
	assert.NotContains(t, out, "Diagnostic Report")
}

func TestRenderTextWithoutNote(t *testing.T) {
	e := Build("Marie", testDate, results.Calculate(bank.Default(), nil), "")
	out := RenderText(context.Background(), e, ColorTheme())
	assert.NotContains(t, out, "Advisor Note")
	assert.Contains(t, out, "Personalized Recommendations")
}

func TestBar(t *testing.T) {
	assert.Equal(t, strings.Repeat(".", barWidth), bar(0))
	assert.Equal(t, strings.Repeat("#", barWidth), bar(100))
	assert.Equal(t, strings.Repeat("#", 10)+strings.Repeat(".", 10), bar(50))
	assert.Equal(t, strings.Repeat("#", barWidth), bar(150))
}

package views

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appI18n "github.com/pavelanni/diagnostic/internal/i18n"
	"github.com/pavelanni/diagnostic/internal/model"
)

func TestMain(m *testing.M) {
	if err := appI18n.Init("en"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func render(t *testing.T, ctx context.Context, d TestData) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, TestPage(d).Render(ctx, &buf))
	return buf.String()
}

func TestTestPageEscapesAttributes(t *testing.T) {
	ctx := model.ContextWithCSRFToken(context.Background(), `tok"><b>`)
	q := model.Question{
		ID:            `q1"><script>alert(1)</script>`,
		Subject:       model.SubjectMath,
		Topic:         "Algebra",
		Prompt:        "2 < 3?",
		Options:       map[model.OptionKey]string{model.OptionA: "yes", model.OptionB: "no", model.OptionC: "maybe", model.OptionD: "<i>"},
		CorrectAnswer: model.OptionA,
	}

	body := render(t, ctx, TestData{
		Info:      model.SubjectInfo{Subject: model.SubjectMath, Title: "Mathematics"},
		Questions: []model.Question{q},
		Answers:   model.Answers{q.ID: model.OptionB},
		Answered:  1,
		Step:      1,
		Steps:     4,
	})

	assert.NotContains(t, body, "<script>")
	assert.NotContains(t, body, "<i>")
	assert.NotContains(t, body, `tok"><b>`)
	assert.Contains(t, body, `id="q1&#34;&gt;&lt;script&gt;alert(1)&lt;/script&gt;"`)
	assert.Contains(t, body, "2 &lt; 3?")
	assert.Contains(t, body, `value="b" checked`)
	assert.Contains(t, body, "1 of 1 answered")
}

func TestPrintfKeepsNumbers(t *testing.T) {
	var buf bytes.Buffer
	p := &page{ctx: context.Background(), w: &buf}
	p.printf(`<td data-s="%s">%d/%d %.1f%%</td>`, model.Subject(`a&b`), 3, 5, 60.0)
	require.NoError(t, p.err)
	assert.Equal(t, `<td data-s="a&amp;b">3/5 60.0%</td>`, buf.String())
}

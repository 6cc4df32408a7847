package views

import (
	"github.com/a-h/templ"

	"github.com/pavelanni/diagnostic/internal/model"
)

// TestData is the content of one subject page.
type TestData struct {
	Info      model.SubjectInfo
	Questions []model.Question
	Answers   model.Answers
	Answered  int
	Step      int
	Steps     int
	Minutes   int
	Last      bool
}

// TestPage shows the questions of one subject with the student's current choices.
func TestPage(d TestData) templ.Component {
	return layout(d.Info.Title, func(p *page) {
		p.raw(`<section class="card"><p class="hint">`)
		p.text(p.td("SubjectStep", map[string]any{"Current": d.Step, "Total": d.Steps}))
		p.raw(`</p><h1>`)
		p.text(d.Info.Title)
		p.raw(`</h1><p>`)
		p.text(d.Info.Description)
		p.raw(`</p>`)
		if d.Minutes > 0 {
			p.raw(`<p class="hint">`)
			p.text(p.td("SuggestedTime", map[string]any{"Minutes": d.Minutes}))
			p.raw(`</p>`)
		}
		p.raw(`<p class="hint">`)
		p.text(p.td("AnsweredCount", map[string]any{"Answered": d.Answered, "Total": len(d.Questions)}))
		p.raw(`</p></section>`)

		p.raw(`<form method="post" action="`)
		p.raw(p.url("/test/" + string(d.Info.Subject)))
		p.raw(`">`)
		p.csrfField()
		for i, q := range d.Questions {
			p.printf(`<fieldset class="card question" id="%s"><legend>%d. `, q.ID, i+1)
			p.text(q.Prompt)
			p.raw(`</legend>`)
			for _, key := range model.OptionKeys {
				text, ok := q.Options[key]
				if !ok {
					continue
				}
				checked := ""
				if d.Answers[q.ID] == key {
					checked = " checked"
				}
				p.printf(`<label class="option"><input type="radio" name="%s" value="%s"%s> %s) `,
					q.ID, key, checked, key)
				p.text(text)
				p.raw(`</label>`)
			}
			p.raw(`</fieldset>`)
		}
		p.raw(`<button type="submit">`)
		if d.Last {
			p.text(p.t("FinishTest"))
		} else {
			p.text(p.t("NextSubject"))
		}
		p.raw(`</button></form>`)
	})
}

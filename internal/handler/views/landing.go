package views

import (
	"github.com/a-h/templ"

	appI18n "github.com/pavelanni/diagnostic/internal/i18n"
	"github.com/pavelanni/diagnostic/internal/model"
)

// LandingData is the content of the landing page.
type LandingData struct {
	Subjects []model.SubjectInfo
	Name     string
	Error    string
}

// LandingPage shows the name form and the subjects of the test.
func LandingPage(d LandingData) templ.Component {
	return layout("", func(p *page) {
		p.raw(`<section class="card"><h1>`)
		p.text(p.t("AppTitle"))
		p.raw(`</h1><p>`)
		p.text(p.t("Tagline"))
		p.raw(`</p><form method="post" action="`)
		p.raw(p.url("/start"))
		p.raw(`">`)
		p.csrfField()
		p.raw(`<label for="name">`)
		p.text(p.t("YourName"))
		p.raw(`</label><br><input id="name" name="name" maxlength="80" required value="`)
		p.text(d.Name)
		p.raw(`" placeholder="`)
		p.text(p.t("NamePlaceholder"))
		p.raw(`">`)
		if d.Error != "" {
			p.raw(`<p class="error" role="alert">`)
			p.text(d.Error)
			p.raw(`</p>`)
		}
		p.raw(` <button type="submit">`)
		p.text(p.t("StartTest"))
		p.raw(`</button></form></section>`)

		p.raw(`<section><h2>`)
		p.text(p.t("TestSubjects"))
		p.raw(`</h2><div class="grid">`)
		for _, info := range d.Subjects {
			p.raw(`<div class="card"><h3>`)
			p.text(info.Title)
			p.raw(`</h3><p>`)
			p.text(info.Description)
			p.raw(`</p><p class="hint">`)
			p.text(appI18n.Tp(p.ctx, "QuestionsCount", info.NumQuestions))
			p.raw(`</p></div>`)
		}
		p.raw(`</div></section>`)
	})
}

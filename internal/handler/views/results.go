package views

import (
	"fmt"
	"strings"

	"github.com/a-h/templ"

	appI18n "github.com/pavelanni/diagnostic/internal/i18n"
	"github.com/pavelanni/diagnostic/internal/model"
)

// ResultsData is the content of the results page.
type ResultsData struct {
	Name    string
	Results model.TestResults
	Rating  model.Rating
	Titles  map[model.Subject]string
	Note    string
}

// ResultsPage shows scores, study hours, study plans and recommendations.
func ResultsPage(d ResultsData) templ.Component {
	return layout("", func(p *page) {
		r := d.Results

		p.raw(`<section class="card"><h1>`)
		p.text(p.t("ResultsTitle"))
		p.raw(`</h1><p>`)
		p.text(p.td("ResultsFor", map[string]any{"Name": d.Name}))
		p.raw(`</p><p>`)
		p.text(p.t("ThankYou"))
		p.raw(`</p><div class="grid"><div><h3>`)
		p.text(p.t("OverallScore"))
		p.printf(`</h3><p id="overall-percentage"><strong>%.1f%%</strong></p><p>`, r.Overall.Percentage)
		p.text(p.td("CorrectOf", map[string]any{"Correct": r.Overall.Correct, "Total": r.Overall.Total}))
		p.raw(`</p></div><div><h3>`)
		p.text(p.t("PerformanceRating"))
		p.printf(`</h3><p id="rating" data-rating="%s"><strong>`, d.Rating)
		p.text(p.t("Rating." + string(d.Rating)))
		p.raw(`</strong></p><p>`)
		p.text(appI18n.Tp(p.ctx, "TotalHours", r.TotalStudyHours))
		p.raw(`</p></div></div></section>`)

		p.raw(`<section class="card"><h2>`)
		p.text(p.t("DetailedAnalysis"))
		p.raw(`</h2><table><thead><tr>`)
		for _, col := range []string{"ColSubject", "ColScore", "ColPercentage", "ColHours"} {
			p.raw(`<th>`)
			p.text(p.t(col))
			p.raw(`</th>`)
		}
		p.raw(`<th></th></tr></thead><tbody>`)
		for _, s := range model.Subjects {
			sr := r.Subjects[s]
			p.printf(`<tr data-subject="%s"><td>`, s)
			p.text(d.title(s))
			p.printf(`</td><td>%d/%d</td><td>%.1f%%</td><td>%d</td>`, sr.Correct, sr.Total, sr.Percentage, sr.AllocatedHours)
			p.printf(`<td><div class="bar"><span style="width:%.1f%%"></span></div></td></tr>`, sr.Percentage)
		}
		p.raw(`</tbody></table></section>`)

		p.raw(`<section class="grid">`)
		for _, s := range model.Subjects {
			sr := r.Subjects[s]
			p.raw(`<div class="card"><h3>`)
			p.text(fmt.Sprintf("%s (%dh)", d.title(s), sr.AllocatedHours))
			p.raw(`</h3><p class="hint">`)
			p.text(p.t("WeakTopics"))
			p.raw(`: `)
			if len(sr.WeakTopics) == 0 {
				p.text(p.t("NoWeakTopics"))
			} else {
				p.text(strings.Join(sr.WeakTopics, ", "))
			}
			p.raw(`</p><h4>`)
			p.text(p.t("StudyPlan"))
			p.raw(`</h4><ul>`)
			for _, item := range sr.StudyPlan {
				p.raw(`<li>`)
				p.text(item)
				p.raw(`</li>`)
			}
			p.raw(`</ul></div>`)
		}
		p.raw(`</section>`)

		p.raw(`<section class="card"><h2>`)
		p.text(p.t("Recommendations"))
		p.raw(`</h2><ul id="recommendations">`)
		for _, rec := range r.Recommendations {
			p.raw(`<li>`)
			p.text(rec)
			p.raw(`</li>`)
		}
		p.raw(`</ul></section>`)

		if d.Note != "" {
			p.raw(`<section class="card" id="advisor-note"><h2>`)
			p.text(p.t("AdvisorNote"))
			p.raw(`</h2><p>`)
			p.text(d.Note)
			p.raw(`</p></section>`)
		}

		p.raw(`<section class="card"><a href="`)
		p.raw(p.url("/results/download"))
		p.raw(`">`)
		p.text(p.t("DownloadResults"))
		p.raw(`</a> <form method="post" style="display:inline" action="`)
		p.raw(p.url("/restart"))
		p.raw(`">`)
		p.csrfField()
		p.raw(`<button type="submit">`)
		p.text(p.t("RetakeTest"))
		p.raw(`</button></form></section>`)
	})
}

func (d ResultsData) title(s model.Subject) string {
	if t, ok := d.Titles[s]; ok && t != "" {
		return t
	}
	return string(s)
}

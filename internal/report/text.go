package report

import (
	"context"
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	appI18n "github.com/pavelanni/diagnostic/internal/i18n"
	"github.com/pavelanni/diagnostic/internal/model"
	"github.com/pavelanni/diagnostic/internal/results"
)

const barWidth = 20

var (
	primary = lipgloss.Color("#8B5CF6")
	success = lipgloss.Color("#22C55E")
	warning = lipgloss.Color("#F97316")
	danger  = lipgloss.Color("#F43F5E")
	dim     = lipgloss.Color("#94A3B8")
)

// Theme holds the styles of the terminal report.
type Theme struct {
	Title   lipgloss.Style
	Heading lipgloss.Style
	Label   lipgloss.Style
	Hint    lipgloss.Style
	Good    lipgloss.Style
	Fair    lipgloss.Style
	Poor    lipgloss.Style
	Bar     lipgloss.Style
	Card    lipgloss.Style
}

// ColorTheme is the default theme for terminals.
func ColorTheme() Theme {
	return Theme{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(primary),
		Heading: lipgloss.NewStyle().Bold(true).Underline(true),
		Label:   lipgloss.NewStyle().Bold(true),
		Hint:    lipgloss.NewStyle().Foreground(dim).Italic(true),
		Good:    lipgloss.NewStyle().Foreground(success).Bold(true),
		Fair:    lipgloss.NewStyle().Foreground(warning).Bold(true),
		Poor:    lipgloss.NewStyle().Foreground(danger).Bold(true),
		Bar:     lipgloss.NewStyle().Foreground(primary),
		Card:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(primary).Padding(0, 1),
	}
}

// PlainTheme renders without colors or borders, for files and pipes.
func PlainTheme() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Title: plain, Heading: plain, Label: plain, Hint: plain,
		Good: plain, Fair: plain, Poor: plain, Bar: plain, Card: plain,
	}
}

func (t Theme) score(pct float64) lipgloss.Style {
	switch {
	case pct >= 75:
		return t.Good
	case pct >= 50:
		return t.Fair
	default:
		return t.Poor
	}
}

// RenderText renders the export as a terminal report in the language of ctx.
func RenderText(ctx context.Context, e model.ReportExport, t Theme) string {
	r := e.Results
	var sb strings.Builder

	subjectName := func(s model.Subject) string {
		return appI18n.T(ctx, results.SubjectNameID(s))
	}

	fields := [][2]string{
		{appI18n.T(ctx, "ReportStudent"), e.Student},
		{appI18n.T(ctx, "ReportDate"), e.Date},
		{appI18n.T(ctx, "ReportOverall"), t.score(r.Overall.Percentage).Render(
			fmt.Sprintf("%d/%d (%.1f%%)", r.Overall.Correct, r.Overall.Total, r.Overall.Percentage))},
		{appI18n.T(ctx, "ReportRating"), appI18n.T(ctx, "Rating."+string(e.Rating))},
		{appI18n.T(ctx, "ReportStudy"), appI18n.Tp(ctx, "HoursCount", r.TotalStudyHours)},
	}
	labelWidth := 0
	for _, f := range fields {
		labelWidth = max(labelWidth, lipgloss.Width(f[0]))
	}
	header := []string{t.Title.Render(appI18n.T(ctx, "ReportTitle"))}
	for _, f := range fields {
		pad := strings.Repeat(" ", labelWidth-lipgloss.Width(f[0]))
		header = append(header, t.Label.Render(f[0]+":")+pad+" "+f[1])
	}
	sb.WriteString(t.Card.Render(strings.Join(header, "\n")))
	sb.WriteString("\n\n")

	sb.WriteString(t.Heading.Render(appI18n.T(ctx, "ReportSubjects")))
	sb.WriteString("\n")
	cells := [][]string{{
		appI18n.T(ctx, "ColSubject"), appI18n.T(ctx, "ColScore"),
		appI18n.T(ctx, "ColPercentage"), appI18n.T(ctx, "ColHours"), "",
	}}
	for _, s := range model.Subjects {
		sr := r.Subjects[s]
		cells = append(cells, []string{
			subjectName(s),
			fmt.Sprintf("%d/%d", sr.Correct, sr.Total),
			fmt.Sprintf("%.1f%%", sr.Percentage),
			fmt.Sprintf("%d", sr.AllocatedHours),
			t.Bar.Render(bar(sr.Percentage)),
		})
	}
	sb.WriteString(table(cells))

	for _, s := range model.Subjects {
		sr := r.Subjects[s]
		sb.WriteString("\n")
		sb.WriteString(t.Heading.Render(fmt.Sprintf("%s (%dh)", subjectName(s), sr.AllocatedHours)))
		sb.WriteString("\n")
		if len(sr.WeakTopics) > 0 {
			sb.WriteString(t.Poor.Render("  " + appI18n.T(ctx, "WeakTopics") + ": " + strings.Join(sr.WeakTopics, ", ")))
			sb.WriteString("\n")
		}
		for _, item := range sr.StudyPlan {
			sb.WriteString("  - " + item + "\n")
		}
	}

	sb.WriteString("\n")
	sb.WriteString(t.Heading.Render(appI18n.T(ctx, "Recommendations")))
	sb.WriteString("\n")
	for _, rec := range r.Recommendations {
		sb.WriteString("  * " + rec + "\n")
	}

	if e.AdvisorNote != "" {
		sb.WriteString("\n")
		sb.WriteString(t.Heading.Render(appI18n.T(ctx, "AdvisorNote")))
		sb.WriteString("\n")
		sb.WriteString(t.Hint.Render(e.AdvisorNote))
		sb.WriteString("\n")
	}
	return sb.String()
}

// bar draws a fixed-width progress bar for a percentage.
func bar(pct float64) string {
	filled := min(max(int(pct/100*barWidth+0.5), 0), barWidth)
	return strings.Repeat("#", filled) + strings.Repeat(".", barWidth-filled)
}

// table left-aligns cells into columns sized to their widest entry.
func table(rows [][]string) string {
	var widths []int
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	var sb strings.Builder
	for _, row := range rows {
		var line []string
		for i, cell := range row {
			line = append(line, cell+strings.Repeat(" ", widths[i]-lipgloss.Width(cell)))
		}
		sb.WriteString("  " + strings.TrimRight(strings.Join(line, "  "), " ") + "\n")
	}
	return sb.String()
}

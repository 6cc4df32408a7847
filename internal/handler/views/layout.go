// Package views renders the HTML pages of the diagnostic as templ components.
package views

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	appI18n "github.com/pavelanni/diagnostic/internal/i18n"
	"github.com/pavelanni/diagnostic/internal/model"
)

// page writes HTML and keeps the first write error.
type page struct {
	ctx context.Context
	w   io.Writer
	err error
}

func (p *page) raw(s string) {
	if p.err == nil {
		_, p.err = io.WriteString(p.w, s)
	}
}

// text writes s HTML-escaped.
func (p *page) text(s string) {
	p.raw(templ.EscapeString(s))
}

// printf writes format with every non-numeric argument HTML-escaped.
func (p *page) printf(format string, args ...any) {
	for i, a := range args {
		switch a.(type) {
		case int, int64, uint64, float64:
		default:
			args[i] = templ.EscapeString(fmt.Sprint(a))
		}
	}
	p.raw(fmt.Sprintf(format, args...))
}

func (p *page) t(id string) string {
	return appI18n.T(p.ctx, id)
}

func (p *page) td(id string, data map[string]any) string {
	return appI18n.Td(p.ctx, id, data)
}

// url prefixes an application path with the base path, escaped for attributes.
func (p *page) url(path string) string {
	return templ.EscapeString(model.BasePathFromContext(p.ctx) + path)
}

func (p *page) csrfField() {
	p.printf(`<input type="hidden" name="csrf_token" value="%s">`, model.CSRFTokenFromContext(p.ctx))
}

const styles = `
body{font-family:system-ui,sans-serif;margin:0;background:#f8fafc;color:#0f172a}
header{background:#1e3a8a;color:#fff;padding:1rem 2rem}
header a{color:#fff;text-decoration:none;font-weight:700}
main{max-width:56rem;margin:2rem auto;padding:0 1rem}
.card{background:#fff;border-radius:.75rem;box-shadow:0 1px 3px #0002;padding:1.5rem;margin-bottom:1.5rem}
.grid{display:grid;grid-template-columns:repeat(auto-fit,minmax(12rem,1fr));gap:1rem}
.error{color:#be123c}
.hint{color:#64748b}
.question{margin-bottom:1.5rem}
.option{display:block;padding:.5rem;border:1px solid #cbd5e1;border-radius:.5rem;margin:.25rem 0}
.bar{background:#e2e8f0;border-radius:.25rem;height:.75rem}
.bar span{display:block;background:#8b5cf6;height:100%;border-radius:.25rem}
table{width:100%;border-collapse:collapse}
th,td{text-align:left;padding:.5rem;border-bottom:1px solid #e2e8f0}
button{background:#1e3a8a;color:#fff;border:0;border-radius:.5rem;padding:.6rem 1.2rem;cursor:pointer}
`

func layout(title string, body func(p *page)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &page{ctx: ctx, w: w}
		if title == "" {
			title = p.t("AppTitle")
		}
		p.raw(`<!DOCTYPE html><html><head><meta charset="utf-8">`)
		p.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		p.raw(`<title>`)
		p.text(title)
		p.raw(`</title><style>` + styles + `</style></head><body><header><a href="`)
		p.raw(p.url("/"))
		p.raw(`">`)
		p.text(p.t("AppTitle"))
		p.raw(`</a></header><main>`)
		body(p)
		p.raw(`</main></body></html>`)
		return p.err
	})
}

package i18n

import (
	"net/http"

	"github.com/nicksnyder/go-i18n/v2/i18n"
)

// Middleware injects a localizer into every request context. The lang query
// parameter and the Accept-Language header take precedence over the default
// language given here.
func Middleware(lang string) func(http.Handler) http.Handler {
	fallback := NewLocalizer(lang)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			loc := fallback
			q := r.URL.Query().Get("lang")
			accept := r.Header.Get("Accept-Language")
			if q != "" || accept != "" {
				loc = i18n.NewLocalizer(bundle, q, accept, lang)
			}
			ctx := WithLocalizer(r.Context(), loc)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

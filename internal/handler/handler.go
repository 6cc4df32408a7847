package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/pavelanni/diagnostic/internal/bank"
	"github.com/pavelanni/diagnostic/internal/handler/views"
	appI18n "github.com/pavelanni/diagnostic/internal/i18n"
	"github.com/pavelanni/diagnostic/internal/model"
	"github.com/pavelanni/diagnostic/internal/report"
	"github.com/pavelanni/diagnostic/internal/results"
	"github.com/pavelanni/diagnostic/internal/session"
)

const (
	maxNameLength = 80
	adviceTimeout = 30 * time.Second
)

// Advisor writes a coaching note for a student's results.
type Advisor interface {
	StudyAdvice(ctx context.Context, name string, r model.TestResults, language string) (string, error)
}

// Handler holds shared dependencies for HTTP handlers.
type Handler struct {
	bank     *bank.Bank
	sessions *session.Manager
	advisor  Advisor
	config   model.QuizConfig
	validate *validator.Validate
	now      func() time.Time
}

// New creates a new Handler. advisor may be nil to disable advisor notes.
func New(b *bank.Bank, sm *session.Manager, advisor Advisor, cfg model.QuizConfig) (*Handler, error) {
	if b == nil || sm == nil {
		return nil, errors.New("handler: bank and session manager are required")
	}
	return &Handler{
		bank:     b,
		sessions: sm,
		advisor:  advisor,
		config:   cfg,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		now:      time.Now,
	}, nil
}

// Routes registers all HTTP routes.
func (h *Handler) Routes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(h.csrfMiddleware)
		r.Get("/", h.handleIndex)
		r.Post("/start", h.handleStart)

		r.Group(func(r chi.Router) {
			r.Use(h.requireSession)
			r.Get("/test/{subject}", h.handleTestPage)
			r.Post("/test/{subject}", h.handleSubmitSubject)
			r.Get("/results", h.handleResults)
			r.Get("/results.json", h.handleResultsJSON)
			r.Get("/results/download", h.handleDownload)
			r.Post("/restart", h.handleRestart)
		})
	})
}

// BasePathMiddleware stores the configured base path in the request context.
func (h *Handler) BasePathMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := model.ContextWithBasePath(r.Context(), h.config.BasePath)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) path(p string) string {
	return h.config.BasePath + p
}

func (h *Handler) cookiePath() string {
	if h.config.BasePath != "" {
		return h.config.BasePath + "/"
	}
	return "/"
}

func (h *Handler) engine(r *http.Request) results.Engine {
	return results.Engine{Translate: appI18n.Translator(r.Context())}
}

func render(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := c.Render(r.Context(), w); err != nil {
		slog.Error("render error", "error", err)
	}
}

// subjectInfos lists subject metadata in canonical order.
func (h *Handler) subjectInfos() []model.SubjectInfo {
	infos := make([]model.SubjectInfo, 0, len(model.Subjects))
	for _, s := range model.Subjects {
		infos = append(infos, h.bank.SubjectInfo(s))
	}
	return infos
}

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := views.LandingData{Subjects: h.subjectInfos()}
	if sess := h.currentSession(r); sess != nil {
		data.Name = sess.Name()
	}
	render(w, r, http.StatusOK, views.LandingPage(data))
}

type startForm struct {
	Name string `validate:"required,max=80"`
}

func (h *Handler) handleStart(w http.ResponseWriter, r *http.Request) {
	form := startForm{Name: strings.Join(strings.Fields(r.FormValue("name")), " ")}
	if err := h.validate.Struct(form); err != nil {
		msg := appI18n.T(r.Context(), "NameRequired")
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 && verrs[0].Tag() == "max" {
			msg = appI18n.Td(r.Context(), "NameTooLong", map[string]any{"Max": maxNameLength})
		}
		render(w, r, http.StatusUnprocessableEntity, views.LandingPage(views.LandingData{
			Subjects: h.subjectInfos(),
			Name:     form.Name,
			Error:    msg,
		}))
		return
	}

	if old, err := r.Cookie(sessionCookieName); err == nil && old.Value != "" {
		h.sessions.Delete(old.Value)
	}
	sess := h.sessions.Create(form.Name)
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    sess.ID,
		Path:     h.cookiePath(),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   h.config.SecureCookies,
	})
	slog.Info("diagnostic started", "session", sess.ID)
	http.Redirect(w, r, h.path("/test/"+string(model.Subjects[0])), http.StatusSeeOther)
}

func subjectParam(r *http.Request) (model.Subject, bool) {
	s := model.Subject(chi.URLParam(r, "subject"))
	return s, s.Valid()
}

func (h *Handler) handleTestPage(w http.ResponseWriter, r *http.Request) {
	subject, ok := subjectParam(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	sess := sessionFromContext(r.Context())
	sess.SetCurrentSubject(subject)

	info := h.bank.SubjectInfo(subject)
	questions := h.bank.Questions(subject)
	_, hasNext := subject.Next()
	step := 1
	for i, s := range model.Subjects {
		if s == subject {
			step = i + 1
		}
	}

	render(w, r, http.StatusOK, views.TestPage(views.TestData{
		Info:      info,
		Questions: questions,
		Answers:   sess.Answers(),
		Answered:  sess.AnsweredCount(questions),
		Step:      step,
		Steps:     len(model.Subjects),
		Minutes:   h.config.MinutesPerSub,
		Last:      !hasNext,
	}))
}

func (h *Handler) handleSubmitSubject(w http.ResponseWriter, r *http.Request) {
	subject, ok := subjectParam(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	sess := sessionFromContext(r.Context())

	for _, q := range h.bank.Questions(subject) {
		v := r.PostFormValue(q.ID)
		if v == "" {
			continue
		}
		key := model.OptionKey(v)
		if _, ok := q.Options[key]; !ok {
			http.Error(w, "invalid answer for "+q.ID, http.StatusBadRequest)
			return
		}
		sess.SetAnswer(q.ID, key)
	}

	next, ok := subject.Next()
	if !ok {
		http.Redirect(w, r, h.path("/results"), http.StatusSeeOther)
		return
	}
	sess.SetCurrentSubject(next)
	http.Redirect(w, r, h.path("/test/"+string(next)), http.StatusSeeOther)
}

func (h *Handler) handleResults(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r.Context())
	res, version := sess.VersionedResults(h.engine(r), h.bank)

	titles := make(map[model.Subject]string, len(model.Subjects))
	for s, info := range h.bank.Info() {
		titles[s] = info.Title
	}

	render(w, r, http.StatusOK, views.ResultsPage(views.ResultsData{
		Name:    sess.Name(),
		Results: res,
		Rating:  results.RatingFor(res.Overall.Percentage),
		Titles:  titles,
		Note:    h.advice(r, sess, res, version),
	}))
}

// advice returns the session's advisor note for the answers at version, asking the
// advisor once per answer set.
func (h *Handler) advice(r *http.Request, sess *session.Session, res model.TestResults, version uint64) string {
	if h.advisor == nil {
		return ""
	}
	if note := sess.Advice(version); note != "" {
		return note
	}

	ctx, cancel := context.WithTimeout(r.Context(), adviceTimeout)
	defer cancel()
	note, err := h.advisor.StudyAdvice(ctx, sess.Name(), res, appI18n.T(r.Context(), "LanguageName"))
	if err != nil {
		slog.Error("advisor failed", "session", sess.ID, "error", err)
		return ""
	}
	if !sess.SetAdvice(note, version) {
		slog.Debug("answers changed while advisor was running, note not cached", "session", sess.ID)
	}
	return note
}

func (h *Handler) handleResultsJSON(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r.Context())
	res := sess.Results(h.engine(r), h.bank)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(res); err != nil {
		slog.Error("encode results", "error", err)
	}
}

func (h *Handler) handleDownload(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r.Context())
	res, version := sess.VersionedResults(h.engine(r), h.bank)
	export := report.Build(sess.Name(), h.now(), res, sess.Advice(version))

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{
		"filename": report.FileName(sess.Name(), "json"),
	}))
	if err := report.WriteJSON(w, export); err != nil {
		slog.Error("write report", "error", err)
	}
}

func (h *Handler) handleRestart(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r.Context())
	sess.ClearAnswers()
	http.Redirect(w, r, h.path("/test/"+string(model.Subjects[0])), http.StatusSeeOther)
}

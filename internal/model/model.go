package model

import "context"

// Subject is one of the four top-level academic categories.
type Subject string

const (
	SubjectMath      Subject = "math"
	SubjectPhysics   Subject = "physics"
	SubjectChemistry Subject = "chemistry"
	SubjectBiology   Subject = "biology"
)

// Subjects lists every subject in canonical order. Scoring, hour allocation and
// the quiz flow all iterate in this order.
var Subjects = []Subject{SubjectMath, SubjectPhysics, SubjectChemistry, SubjectBiology}

// Valid reports whether s is a known subject.
func (s Subject) Valid() bool {
	switch s {
	case SubjectMath, SubjectPhysics, SubjectChemistry, SubjectBiology:
		return true
	}
	return false
}

// Next returns the subject after s in canonical order, or false if s is the last one.
func (s Subject) Next() (Subject, bool) {
	for i, sub := range Subjects {
		if sub == s && i+1 < len(Subjects) {
			return Subjects[i+1], true
		}
	}
	return "", false
}

// OptionKey identifies a multiple-choice option.
type OptionKey string

const (
	OptionA OptionKey = "a"
	OptionB OptionKey = "b"
	OptionC OptionKey = "c"
	OptionD OptionKey = "d"
)

// OptionKeys lists the option keys in display order.
var OptionKeys = []OptionKey{OptionA, OptionB, OptionC, OptionD}

// Question is a single multiple-choice question of the bank.
type Question struct {
	ID            string               `json:"id" validate:"required"`
	Subject       Subject              `json:"subject" validate:"required,oneof=math physics chemistry biology"`
	Topic         string               `json:"topic" validate:"required"`
	Prompt        string               `json:"question" validate:"required"`
	Options       map[OptionKey]string `json:"options" validate:"len=4,dive,required"`
	CorrectAnswer OptionKey            `json:"correctAnswer" validate:"required,oneof=a b c d"`
	Explanation   string               `json:"explanation"`
}

// SubjectInfo is descriptive metadata shown on the landing page.
type SubjectInfo struct {
	Subject      Subject `json:"subject"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	NumQuestions int     `json:"num_questions"`
}

// Answers maps question IDs to the selected option key. Unanswered questions are absent.
type Answers map[string]OptionKey

// Score is an aggregate correct/total count.
type Score struct {
	Total      int     `json:"total"`
	Correct    int     `json:"correct"`
	Percentage float64 `json:"percentage"`
}

// SubjectResult holds the derived results for one subject.
type SubjectResult struct {
	Total          int      `json:"total"`
	Correct        int      `json:"correct"`
	Percentage     float64  `json:"percentage"`
	WeakTopics     []string `json:"weak_topics"`
	AllocatedHours int      `json:"allocated_hours"`
	StudyPlan      []string `json:"study_plan"`
}

// TestResults is the complete output of a results computation.
type TestResults struct {
	Overall         Score                     `json:"overall"`
	Subjects        map[Subject]SubjectResult `json:"subjects"`
	TotalStudyHours int                       `json:"total_study_hours"`
	Recommendations []string                  `json:"recommendations"`
}

// Rating is a coarse classification of the overall percentage.
type Rating string

const (
	RatingExcellent        Rating = "excellent"
	RatingGood             Rating = "good"
	RatingAverage          Rating = "average"
	RatingNeedsImprovement Rating = "needs_improvement"
)

// QuizConfig holds runtime parameters set via CLI flags.
type QuizConfig struct {
	Lang          string // UI language (en, fr)
	BasePath      string // URL prefix for sub-path deployments (e.g. "/quiz")
	SecureCookies bool   // Set Secure flag on cookies (disable for local dev)
	MinutesPerSub int    // Suggested time per subject, shown on the test page; 0 hides it
}

type basePathCtxKey struct{}

// ContextWithBasePath stores the base path prefix in context.
func ContextWithBasePath(ctx context.Context, basePath string) context.Context {
	return context.WithValue(ctx, basePathCtxKey{}, basePath)
}

// BasePathFromContext retrieves the base path from context (empty string if not set).
func BasePathFromContext(ctx context.Context) string {
	bp, _ := ctx.Value(basePathCtxKey{}).(string)
	return bp
}

type csrfCtxKey struct{}

// ContextWithCSRFToken stores the CSRF token in context.
func ContextWithCSRFToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, csrfCtxKey{}, token)
}

// CSRFTokenFromContext retrieves the CSRF token from context.
func CSRFTokenFromContext(ctx context.Context) string {
	t, _ := ctx.Value(csrfCtxKey{}).(string)
	return t
}

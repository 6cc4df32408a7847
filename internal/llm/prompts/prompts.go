package prompts

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"regexp"
	"strings"
	"sync"
	"text/template"
	"unicode/utf8"

	"github.com/pavelanni/diagnostic/internal/model"
)

//go:embed templates/*.txt
var FS embed.FS

const maxNameRunes = 80

var studentNameRegex = regexp.MustCompile(`(?i)</?\s*student-name\b[^>]*>`)

// PromptVariant is the tone of the coaching note.
type PromptVariant string

const (
	// PromptStandard is the default, neutral tone.
	PromptStandard PromptVariant = "standard"
	// PromptSupportive leads with strengths.
	PromptSupportive PromptVariant = "supportive"
	// PromptDirect is short and prescriptive.
	PromptDirect PromptVariant = "direct"
)

var validVariants = map[PromptVariant]bool{
	PromptStandard:   true,
	PromptSupportive: true,
	PromptDirect:     true,
}

var (
	loadOnce        sync.Once
	loadErr         error
	adviceTemplates map[PromptVariant]*template.Template
)

// IsValidVariant checks if a prompt variant name is valid.
func IsValidVariant(v string) bool {
	return validVariants[PromptVariant(v)]
}

// SubjectData is one subject line of the advice prompt.
type SubjectData struct {
	Name       string
	Correct    int
	Total      int
	Percentage float64
	Hours      int
	WeakTopics string
}

// AdviceData holds template data for advice prompts.
type AdviceData struct {
	Name       string
	Correct    int
	Total      int
	Percentage float64
	Rating     model.Rating
	TotalHours int
	Subjects   []SubjectData
	Language   string
}

// Load loads prompt templates from fsys. Only the first call has an effect.
func Load(fsys fs.FS) error {
	loadOnce.Do(func() {
		adviceTemplates = make(map[PromptVariant]*template.Template)
		for v := range validVariants {
			file := "templates/advice_" + string(v) + ".txt"
			content, err := fs.ReadFile(fsys, file)
			if err != nil {
				loadErr = fmt.Errorf("read prompt file %s: %w", file, err)
				return
			}
			tmpl, err := template.New("advice").Parse(string(content))
			if err != nil {
				loadErr = fmt.Errorf("parse prompt template %s: %w", file, err)
				return
			}
			adviceTemplates[v] = tmpl
		}
	})
	return loadErr
}

// NewAdviceData collects the prompt data for a student's results. Subjects are
// listed in canonical order.
func NewAdviceData(name string, r model.TestResults, rating model.Rating, language string) AdviceData {
	d := AdviceData{
		Name:       sanitizeName(name),
		Correct:    r.Overall.Correct,
		Total:      r.Overall.Total,
		Percentage: r.Overall.Percentage,
		Rating:     rating,
		TotalHours: r.TotalStudyHours,
		Language:   language,
	}
	if d.Language == "" {
		d.Language = "English"
	}
	for _, s := range model.Subjects {
		sr := r.Subjects[s]
		d.Subjects = append(d.Subjects, SubjectData{
			Name:       string(s),
			Correct:    sr.Correct,
			Total:      sr.Total,
			Percentage: sr.Percentage,
			Hours:      sr.AllocatedHours,
			WeakTopics: strings.Join(sr.WeakTopics, ", "),
		})
	}
	return d
}

// BuildAdvicePrompt renders the system prompt for the given variant.
func BuildAdvicePrompt(variant PromptVariant, data AdviceData) (string, error) {
	if adviceTemplates == nil {
		return "", errors.New("templates not initialized: call Load first")
	}
	tmpl, ok := adviceTemplates[variant]
	if !ok {
		if loadErr != nil {
			return "", fmt.Errorf("templates load failed: %w", loadErr)
		}
		return "", errors.New("invalid prompt variant: " + string(variant))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func sanitizeName(name string) string {
	name = studentNameRegex.ReplaceAllString(name, "")
	name = strings.Join(strings.Fields(name), " ")
	if name == "" {
		return "[No name provided]"
	}
	if utf8.RuneCountInString(name) > maxNameRunes {
		name = string([]rune(name)[:maxNameRunes])
	}
	return name
}

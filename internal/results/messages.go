package results

import (
	"log/slog"
	"sync"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/pavelanni/diagnostic/internal/model"
)

// Translator renders the message with the given ID using template data.
// Implementations return the ID itself when the message is unknown.
type Translator func(id string, data map[string]any) string

// Message IDs used by the engine.
const (
	MsgOverallLow       = "Recommendation.OverallLow"
	MsgOverallMid       = "Recommendation.OverallMid"
	MsgOverallHigh      = "Recommendation.OverallHigh"
	MsgWeakest          = "Recommendation.Weakest"
	MsgStrongest        = "Recommendation.Strongest"
	MsgDistribution     = "Recommendation.Distribution"
	MsgDistributionPart = "Recommendation.DistributionPart"
	MsgPlanFocus        = "Plan.Focus"
)

// SubjectNameID is the message ID of a subject's name as used inside sentences.
func SubjectNameID(s model.Subject) string {
	return "Subject." + string(s)
}

var englishActivities = map[model.Subject][]string{
	model.SubjectMath: {
		"Review fundamental concepts",
		"Progressive application exercises",
		"Work through recent past papers",
		"Master the essential formulas",
		"Practice fast mental calculation",
		"Work on problem-solving methods",
		"Refine advanced techniques",
		"Optimize time management",
	},
	model.SubjectPhysics: {
		"Review the fundamental laws of physics",
		"Understand physical phenomena",
		"Formula application exercises",
		"Master units and conversions",
		"Analyze diagrams and graphs",
		"Solve complex problems",
		"Work on dimensional analysis",
		"Refine vector calculations",
	},
	model.SubjectChemistry: {
		"Review the basic concepts",
		"Master chemical reactions",
		"Stoichiometry exercises",
		"Understand chemical equilibria",
		"Work on chemical kinetics",
		"Study thermochemistry",
		"Refine calculations",
		"Analyze reaction mechanisms",
	},
	model.SubjectBiology: {
		"Review the organization of living things",
		"Understand biological processes",
		"Study cellular mechanisms",
		"Master biological cycles",
		"Work on genetics",
		"Analyze physiological systems",
		"Deepen ecology",
		"Develop scientific observation",
	},
}

var englishSubjectNames = map[model.Subject]string{
	model.SubjectMath:      "mathematics",
	model.SubjectPhysics:   "physics",
	model.SubjectChemistry: "chemistry",
	model.SubjectBiology:   "biology",
}

// Messages returns the English source messages of the engine, for registration in
// an application-wide bundle.
func Messages() []*goi18n.Message {
	msgs := []*goi18n.Message{
		{ID: MsgOverallLow, Other: "Your overall performance ({{.Percent}}%) calls for an intensive {{.Hours}}-hour preparation. Focus on the fundamentals before tackling advanced concepts."},
		{ID: MsgOverallMid, Other: "With {{.Percent}}% correct, a {{.Hours}}-hour plan will help you consolidate what you know and work on your weak areas."},
		{ID: MsgOverallHigh, Other: "Excellent performance ({{.Percent}}%)! A targeted {{.Hours}}-hour program is enough to polish your preparation."},
		{ID: MsgWeakest, Other: "Your main weak area is {{.Subject}} ({{.Percent}}%) - we allocated {{.Hours}} hours to this subject."},
		{ID: MsgStrongest, Other: "You excel in {{.Subject}} ({{.Percent}}%) - only {{.Hours}} hours are needed to maintain this level."},
		{ID: MsgDistribution, Other: "Recommended study time split: {{.Distribution}}."},
		{ID: MsgDistributionPart, Other: "{{.Subject}}: {{.Hours}}h"},
		{ID: MsgPlanFocus, Other: "Focus on: {{.Topics}}"},
	}
	for _, s := range model.Subjects {
		msgs = append(msgs, &goi18n.Message{ID: SubjectNameID(s), Other: englishSubjectNames[s]})
		for i, text := range englishActivities[s] {
			msgs = append(msgs, &goi18n.Message{ID: activityID(s, i), Other: text})
		}
	}
	return msgs
}

var english = sync.OnceValue(func() Translator {
	bundle := goi18n.NewBundle(language.English)
	if err := bundle.AddMessages(language.English, Messages()...); err != nil {
		panic("results: register English messages: " + err.Error())
	}
	return LocalizerTranslator(goi18n.NewLocalizer(bundle, language.English.String()))
})

// English returns the built-in English translator.
func English() Translator {
	return english()
}

// LocalizerTranslator adapts a go-i18n localizer to a Translator.
func LocalizerTranslator(loc *goi18n.Localizer) Translator {
	return func(id string, data map[string]any) string {
		s, err := loc.Localize(&goi18n.LocalizeConfig{
			MessageID:    id,
			TemplateData: data,
		})
		if err != nil {
			slog.Warn("missing translation", "id", id, "error", err)
			return id
		}
		return s
	}
}

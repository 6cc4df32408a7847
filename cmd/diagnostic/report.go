package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/pavelanni/diagnostic/internal/bank"
	appI18n "github.com/pavelanni/diagnostic/internal/i18n"
	"github.com/pavelanni/diagnostic/internal/model"
	"github.com/pavelanni/diagnostic/internal/report"
	"github.com/pavelanni/diagnostic/internal/results"
)

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Compute results for a saved answer set",
		Long: `Compute results for a JSON object mapping question IDs to option keys,
for example {"math-1": "b", "physics-2": "a"}, and print a study report.`,
		RunE: runReport,
	}
	f := cmd.Flags()
	f.String("answers", "", "Path to the answers JSON file (- for stdin, required)")
	f.String("name", "Student", "Student name shown in the report")
	f.String("date", "", "Report date in YYYY-MM-DD format (default today)")
	f.StringP("questions", "q", "", "Path to a questions JSON file (empty = built-in bank)")
	f.StringP("lang", "l", "en", "Language of recommendations and study plans (en, fr)")
	f.String("format", "text", "Output format (text, json)")
	f.Bool("plain", false, "Disable colors in text output")
	f.StringP("output", "o", "-", "Output file path (- for stdout)")
	f.String("log-level", "info", "Log level (debug, info, warn, error)")
	f.String("log-format", "text", "Log format (text, json)")

	_ = cmd.MarkFlagRequired("answers")

	return cmd
}

func readAnswers(path string, b *bank.Bank) (model.Answers, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open answers: %w", err)
		}
		defer f.Close()
		r = f
	}

	var answers model.Answers
	if err := json.NewDecoder(r).Decode(&answers); err != nil {
		return nil, fmt.Errorf("decode answers: %w", err)
	}
	for id, key := range answers {
		q, ok := b.Question(id)
		if !ok {
			slog.Warn("answer for unknown question ignored", "id", id)
			continue
		}
		if _, ok := q.Options[key]; !ok {
			slog.Warn("answer with unknown option counts as wrong", "id", id, "option", key)
		}
	}
	return answers, nil
}

func runReport(cmd *cobra.Command, _ []string) error {
	setupLogging(cmd)
	v := viperForCmd(cmd)

	b, err := loadBank(v.GetString("questions"))
	if err != nil {
		return fmt.Errorf("load questions: %w", err)
	}

	lang := v.GetString("lang")
	if err := appI18n.Init(lang); err != nil {
		return fmt.Errorf("init i18n: %w", err)
	}
	ctx := appI18n.WithLocalizer(cmd.Context(), appI18n.NewLocalizer(lang))

	answers, err := readAnswers(v.GetString("answers"), b)
	if err != nil {
		return err
	}

	date := time.Now()
	if d := v.GetString("date"); d != "" {
		date, err = time.Parse(report.DateLayout, d)
		if err != nil {
			return fmt.Errorf("parse date %q: %w", d, err)
		}
	}

	res := results.Engine{Translate: appI18n.Translator(ctx)}.Calculate(b, answers)
	export := report.Build(v.GetString("name"), date, res, "")

	outPath := v.GetString("output")
	toStdout := outPath == "" || outPath == "-"
	var w io.Writer
	if toStdout {
		w = os.Stdout
	} else {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	switch strings.ToLower(v.GetString("format")) {
	case "json":
		return report.WriteJSON(w, export)
	case "text":
		theme := report.PlainTheme()
		if toStdout && !v.GetBool("plain") {
			theme = report.ColorTheme()
		}
		return writeText(ctx, w, export, theme)
	default:
		return fmt.Errorf("unknown format %q (want text or json)", v.GetString("format"))
	}
}

// writeText renders the text report to w, downsampling colors to what w
// supports. Pipes and files get no escape sequences.
func writeText(ctx context.Context, w io.Writer, e model.ReportExport, theme report.Theme) error {
	if _, err := lipgloss.Fprint(w, report.RenderText(ctx, e, theme)); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

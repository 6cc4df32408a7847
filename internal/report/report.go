// Package report builds the downloadable summary of a diagnostic attempt and
// renders it as JSON or as a styled terminal report.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/pavelanni/diagnostic/internal/model"
	"github.com/pavelanni/diagnostic/internal/results"
)

// DateLayout is the date format used in exports.
const DateLayout = "2006-01-02"

var unsafeFileChars = regexp.MustCompile(`[^\p{L}\p{N}_.-]+`)

// Build assembles the export for one student.
func Build(name string, date time.Time, r model.TestResults, note string) model.ReportExport {
	return model.ReportExport{
		Student:     name,
		Date:        date.Format(DateLayout),
		Rating:      results.RatingFor(r.Overall.Percentage),
		Results:     r,
		AdvisorNote: note,
	}
}

// WriteJSON writes the export as indented JSON followed by a newline.
func WriteJSON(w io.Writer, e model.ReportExport) error {
	data, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	_, err = fmt.Fprintln(w)
	return err
}

// FileName returns the download name for a student's report, for example
// "diagnostic_results_Marie_Curie.json". Whitespace runs become underscores.
func FileName(name, ext string) string {
	slug := strings.Join(strings.Fields(name), "_")
	slug = unsafeFileChars.ReplaceAllString(slug, "")
	if slug == "" {
		slug = "student"
	}
	return "diagnostic_results_" + slug + "." + ext
}

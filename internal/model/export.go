package model

// ReportExport is the downloadable summary of one diagnostic attempt.
type ReportExport struct {
	Student     string      `json:"student"`
	Date        string      `json:"date"`
	Rating      Rating      `json:"rating"`
	Results     TestResults `json:"results"`
	AdvisorNote string      `json:"advisor_note,omitempty"`
}

package models

import "time"

// Summary describes a completed batch run.
type Summary struct {
	// RunID identifies the run in logs and reports.
	RunID string `json:"run_id" yaml:"run_id"`
	// Source is the input workbook path.
	Source string `json:"source" yaml:"source"`
	// WrittenPath is the workbook the results were saved to.
	WrittenPath string `json:"written_path" yaml:"written_path"`
	// Header is where the header row was found.
	Header HeaderLocation `json:"header" yaml:"header"`
	// Total is the number of keywords processed.
	Total int `json:"total" yaml:"total"`
	// Failed is the number of rows with a failure outcome.
	Failed int `json:"failed" yaml:"failed"`
	// Results holds one entry per keyword, in extraction order.
	Results []RowResult `json:"results" yaml:"results"`
	// StartedAt and FinishedAt bound the run.
	StartedAt  time.Time `json:"started_at" yaml:"started_at"`
	FinishedAt time.Time `json:"finished_at" yaml:"finished_at"`
}

// HasFailures reports whether any row failed.
func (s *Summary) HasFailures() bool {
	return s.Failed > 0
}

package models

// Outcome is the result of resolving a single keyword: either a hit count
// or a failure reason.
type Outcome struct {
	// Count is the hit count. Meaningless when Failure is set.
	Count int64 `json:"count" yaml:"count"`
	// Failure is the reason the keyword could not be resolved.
	Failure string `json:"failure,omitempty" yaml:"failure,omitempty"`
}

// Count returns a successful outcome.
func Count(n int64) Outcome {
	return Outcome{Count: n}
}

// Failure returns a failed outcome. An empty reason is replaced so the
// outcome can never be mistaken for a count.
func Failure(reason string) Outcome {
	if reason == "" {
		reason = "unknown error"
	}
	return Outcome{Failure: reason}
}

// Failed reports whether the outcome is a failure.
func (o Outcome) Failed() bool {
	return o.Failure != ""
}

// RowResult pairs a keyword with its outcome.
type RowResult struct {
	RowOffset int     `json:"row_offset" yaml:"row_offset"`
	Keyword   string  `json:"keyword" yaml:"keyword"`
	Outcome   Outcome `json:"outcome" yaml:"outcome"`
}

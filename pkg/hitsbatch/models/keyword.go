// Package models defines data structures for keyword hit batches.
package models

// HeaderLocation is the row holding every required field name and the
// column each field was found in.
type HeaderLocation struct {
	// Sheet is the sheet the header was found on.
	Sheet string `json:"sheet" yaml:"sheet"`
	// RowIndex is the header row (0-based).
	RowIndex int `json:"row_index" yaml:"row_index"`
	// Columns maps each requested field name to its column (0-based).
	Columns map[string]int `json:"columns" yaml:"columns"`
}

// Column returns the column index recorded for field.
func (h *HeaderLocation) Column(field string) (int, bool) {
	if h == nil {
		return 0, false
	}
	idx, ok := h.Columns[field]
	return idx, ok
}

// KeywordRecord is one keyword read from the data block below the header.
type KeywordRecord struct {
	// RowOffset is the 0-based offset within the data block, not the sheet row.
	RowOffset int `json:"row_offset" yaml:"row_offset"`
	// Text is the trimmed keyword, never empty.
	Text string `json:"text" yaml:"text"`
}

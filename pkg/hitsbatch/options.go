// Package hitsbatch fills the hit-count column of a keyword workbook,
// resolving every keyword through a pluggable source.
package hitsbatch

import (
	"go.uber.org/zap"

	"github.com/Zuperp/GoogleDataScraper/pkg/hitsbatch/models"
	"github.com/Zuperp/GoogleDataScraper/pkg/hitsbatch/parser"
	"github.com/Zuperp/GoogleDataScraper/pkg/hitsbatch/writer"
)

// Default header field names.
const (
	FieldKeyword = "Keyword"
	FieldHits    = "HITS"
)

// DefaultOutputName is used by callers that save a copy without choosing a path.
const DefaultOutputName = "output.xlsx"

// ProgressFunc is called after each keyword has been resolved.
type ProgressFunc func(done, total int, result models.RowResult)

// Options configures a batch run.
type Options struct {
	// KeywordField names the column holding the keywords.
	KeywordField string
	// HitsField names the column the counts are written to.
	HitsField string
	// Sheet restricts the header search to one sheet. Empty means the
	// active sheet, then the others in workbook order.
	Sheet string
	// ScanRows is how many leading rows are searched for the header.
	ScanRows int
	// MaxConsecutiveEmpty ends the keyword block after this many blanks.
	// If nil, defaults to parser.DefaultMaxConsecutiveEmpty.
	MaxConsecutiveEmpty *int
	// Destination selects where results are saved.
	Destination writer.Destination
	// Progress, if set, observes each resolved row.
	Progress ProgressFunc
	// Logger receives run diagnostics. If nil, zap.L() is used.
	Logger *zap.Logger
}

// DefaultOptions returns options that overwrite the source file.
func DefaultOptions() Options {
	return Options{
		KeywordField: FieldKeyword,
		HitsField:    FieldHits,
		ScanRows:     parser.DefaultScanRows,
		Destination:  writer.Overwrite(),
	}
}

// Fields returns the header field names to search for.
func (o Options) Fields() []string {
	return []string{o.keywordField(), o.hitsField()}
}

func (o Options) keywordField() string {
	if o.KeywordField == "" {
		return FieldKeyword
	}
	return o.KeywordField
}

func (o Options) hitsField() string {
	if o.HitsField == "" {
		return FieldHits
	}
	return o.HitsField
}

func (o Options) scanRows() int {
	if o.ScanRows <= 0 {
		return parser.DefaultScanRows
	}
	return o.ScanRows
}

func (o Options) maxConsecutiveEmpty() int {
	if o.MaxConsecutiveEmpty == nil || *o.MaxConsecutiveEmpty < 0 {
		return parser.DefaultMaxConsecutiveEmpty
	}
	return *o.MaxConsecutiveEmpty
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.L()
}

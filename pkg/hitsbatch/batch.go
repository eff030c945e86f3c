package hitsbatch

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Zuperp/GoogleDataScraper/pkg/hitsbatch/models"
	"github.com/Zuperp/GoogleDataScraper/pkg/hitsbatch/parser"
	"github.com/Zuperp/GoogleDataScraper/pkg/hitsbatch/resolve"
	"github.com/Zuperp/GoogleDataScraper/pkg/hitsbatch/writer"
)

// Run resolves every keyword of the workbook at path through source and
// writes the counts into the hits column.
//
// Keywords are resolved one at a time in sheet order. A failed row is
// recorded and written as an error marker; it never stops the batch. The
// workbook is only written after every keyword has been resolved, so a
// cancelled context leaves no output behind.
//
// On a write-stage error the summary of the resolved rows is returned
// together with the error. All other errors return a nil summary.
func Run(ctx context.Context, path string, source resolve.Source, opts Options) (*models.Summary, error) {
	runID := uuid.NewString()
	log := opts.logger().With(zap.String("run_id", runID), zap.String("path", path))
	started := time.Now()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, NewBatchError(path, "open", ErrFileNotFound, "")
	}

	loc, grid, err := scan(path, opts)
	if err != nil {
		return nil, err
	}
	log.Info("header located",
		zap.String("sheet", loc.Sheet),
		zap.Int("row", loc.RowIndex),
		zap.Any("columns", loc.Columns))

	keywordField := opts.keywordField()
	records, err := parser.ExtractColumn(grid, keywordField, loc.RowIndex, opts.maxConsecutiveEmpty())
	if err != nil {
		return nil, NewBatchError(path, "extract", err, "")
	}
	if len(records) == 0 {
		return nil, NewBatchError(path, "extract", ErrNoKeywordsFound,
			fmt.Sprintf("column %q below row %d of sheet %q has no values", keywordField, loc.RowIndex+1, loc.Sheet))
	}
	log.Info("keywords extracted", zap.Int("count", len(records)))

	results := make([]models.RowResult, 0, len(records))
	failed := 0
	for i, rec := range records {
		if err := ctx.Err(); err != nil {
			log.Warn("batch cancelled before write", zap.Int("resolved", i), zap.Int("total", len(records)))
			return nil, NewBatchError(path, "resolve", err, fmt.Sprintf("%d of %d keywords resolved, nothing written", i, len(records)))
		}

		outcome := source.ResolveNext(ctx, rec.Text)
		result := models.RowResult{RowOffset: rec.RowOffset, Keyword: rec.Text, Outcome: outcome}
		results = append(results, result)

		if outcome.Failed() {
			failed++
			log.Warn("keyword failed",
				zap.Int("row_offset", rec.RowOffset),
				zap.String("keyword", rec.Text),
				zap.String("reason", outcome.Failure))
		} else {
			log.Debug("keyword resolved",
				zap.Int("row_offset", rec.RowOffset),
				zap.String("keyword", rec.Text),
				zap.Int64("hits", outcome.Count))
		}

		if opts.Progress != nil {
			opts.Progress(i+1, len(records), result)
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, NewBatchError(path, "resolve", err, "cancelled before write, nothing written")
	}

	summary := &models.Summary{
		RunID:     runID,
		Source:    path,
		Header:    *loc,
		Total:     len(results),
		Failed:    failed,
		Results:   results,
		StartedAt: started,
	}

	hitsCol, _ := loc.Column(opts.hitsField())
	written, err := writer.WriteResults(path, loc.Sheet, results, loc.RowIndex, hitsCol, opts.Destination)
	if err != nil {
		summary.FinishedAt = time.Now()
		return summary, NewBatchError(path, "write", err, "")
	}
	summary.WrittenPath = written
	summary.FinishedAt = time.Now()

	log.Info("batch finished",
		zap.String("written", written),
		zap.Int("total", summary.Total),
		zap.Int("failed", summary.Failed),
		zap.Duration("elapsed", summary.FinishedAt.Sub(started)))

	return summary, nil
}

// scan opens the workbook read-only and finds the header.
func scan(path string, opts Options) (*models.HeaderLocation, parser.Grid, error) {
	f, err := parser.OpenWorkbook(path)
	if err != nil {
		return nil, parser.Grid{}, NewBatchError(path, "open", err, "")
	}
	defer f.Close()

	fields := opts.Fields()
	loc, grid, tried, err := parser.FindHeader(f, opts.Sheet, fields, opts.scanRows())
	if err != nil {
		return nil, parser.Grid{}, NewBatchError(path, "scan", err, "")
	}
	if loc == nil {
		return nil, parser.Grid{}, NewBatchError(path, "scan", ErrHeaderNotFound,
			fmt.Sprintf("no row with columns %s in the first %d rows of sheet(s) %s",
				quoteAll(fields), opts.scanRows(), quoteAll(tried)))
	}
	return loc, grid, nil
}

func quoteAll(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = fmt.Sprintf("%q", n)
	}
	return strings.Join(quoted, ", ")
}

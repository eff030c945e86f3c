package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Zuperp/GoogleDataScraper/pkg/hitsbatch/models"
)

// DefaultMaxConsecutiveEmpty is the number of blank cells tolerated inside
// the keyword block before it is considered finished.
const DefaultMaxConsecutiveEmpty = 2

// ErrColumnNotFound indicates the named column is not in the header row.
var ErrColumnNotFound = errors.New("column not found in header row")

// HeaderColumn returns the index of the first header cell matching name.
func HeaderColumn(g Grid, headerRow int, name string) (int, error) {
	if headerRow < 0 || headerRow >= len(g.Rows) {
		return 0, fmt.Errorf("header row %d outside sheet %q: %w", headerRow, g.Sheet, ErrColumnNotFound)
	}
	want := normalizeName(name)
	for colIdx, cell := range g.Rows[headerRow] {
		if normalizeName(cell) == want {
			return colIdx, nil
		}
	}
	return 0, fmt.Errorf("%q in row %d of sheet %q: %w", name, headerRow, g.Sheet, ErrColumnNotFound)
}

// ExtractColumn reads the named column below headerRow and returns its
// non-blank values in row order. RowOffset is the position within the data
// block, so blank rows that are tolerated still advance it. Extraction stops
// once more than maxConsecutiveEmpty blank cells follow each other; anything
// after that gap belongs to another section of the sheet and is dropped.
func ExtractColumn(g Grid, columnName string, headerRow int, maxConsecutiveEmpty int) ([]models.KeywordRecord, error) {
	col, err := HeaderColumn(g, headerRow, columnName)
	if err != nil {
		return nil, err
	}

	var records []models.KeywordRecord
	emptyCount := 0
	for rowIdx := headerRow + 1; rowIdx < len(g.Rows); rowIdx++ {
		offset := rowIdx - headerRow - 1
		text := strings.TrimSpace(g.Cell(rowIdx, col))
		if text != "" {
			records = append(records, models.KeywordRecord{RowOffset: offset, Text: text})
			emptyCount = 0
			continue
		}

		emptyCount++
		if emptyCount > maxConsecutiveEmpty {
			break
		}
	}

	return records, nil
}

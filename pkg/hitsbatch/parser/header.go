package parser

import (
	"github.com/Zuperp/GoogleDataScraper/pkg/hitsbatch/models"
	"github.com/xuri/excelize/v2"
)

// DefaultScanRows is how many leading rows are searched for the header.
const DefaultScanRows = 8

// LocateHeader returns the first row within the first maxRows rows in which
// every field appears as a cell value (trimmed, case-insensitive, exact).
// Matches are collected per row only; a header split over two rows is not
// recognised. Returns nil when no row qualifies.
func LocateHeader(g Grid, fields []string, maxRows int) *models.HeaderLocation {
	if len(fields) == 0 {
		return nil
	}

	wanted := make(map[string]string, len(fields))
	for _, field := range fields {
		wanted[normalizeName(field)] = field
	}

	for rowIdx := 0; rowIdx < maxRows && rowIdx < len(g.Rows); rowIdx++ {
		found := make(map[string]int, len(fields))
		for colIdx, cell := range g.Rows[rowIdx] {
			field, ok := wanted[normalizeName(cell)]
			if !ok {
				continue
			}
			// First match in the row wins.
			if _, seen := found[field]; !seen {
				found[field] = colIdx
			}
		}

		if len(found) == len(wanted) {
			return &models.HeaderLocation{
				Sheet:    g.Sheet,
				RowIndex: rowIdx,
				Columns:  found,
			}
		}
	}

	return nil
}

// ScanCandidates returns the sheets to search for a header, in order.
// An explicit sheet name restricts the search to that sheet; otherwise the
// active sheet comes first, followed by the rest in workbook order.
func ScanCandidates(f *excelize.File, sheetName string) []string {
	if sheetName != "" {
		return []string{sheetName}
	}

	active := f.GetSheetName(f.GetActiveSheetIndex())
	var sheets []string
	if active != "" {
		sheets = append(sheets, active)
	}
	for _, name := range f.GetSheetList() {
		if name != active {
			sheets = append(sheets, name)
		}
	}
	return sheets
}

// FindHeader searches the candidate sheets for the header and returns the
// location together with the grid it was found in. The returned slice lists
// the sheets that were examined. A nil location means no sheet qualified.
func FindHeader(f *excelize.File, sheetName string, fields []string, maxRows int) (*models.HeaderLocation, Grid, []string, error) {
	var tried []string
	for _, name := range ScanCandidates(f, sheetName) {
		g, err := ReadGrid(f, name)
		if err != nil {
			return nil, Grid{}, tried, err
		}
		tried = append(tried, name)
		if loc := LocateHeader(g, fields, maxRows); loc != nil {
			return loc, g, tried, nil
		}
	}
	return nil, Grid{}, tried, nil
}

// Package parser reads keyword workbooks: it locates the header row, pulls
// the keyword block below it and loads substitute hit fixtures.
package parser

import (
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/xuri/excelize/v2"
)

// Grid is a read-only view of one sheet's cell values.
// Rows and columns are 0-based; missing cells read as "".
type Grid struct {
	Sheet string
	Rows  [][]string
}

// Cell returns the raw value at (row, col), or "" when out of range.
func (g Grid) Cell(row, col int) string {
	if row < 0 || row >= len(g.Rows) {
		return ""
	}
	r := g.Rows[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}

// OpenWorkbook opens an xlsx file for reading.
func OpenWorkbook(path string) (*excelize.File, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "open workbook %s", path)
	}
	return f, nil
}

// ReadGrid reads every row of a sheet with raw (unformatted) cell values,
// so numbers come back as written rather than through their number format.
func ReadGrid(f *excelize.File, sheetName string) (Grid, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return Grid{}, eris.Wrapf(err, "read sheet %q", sheetName)
	}
	return Grid{Sheet: sheetName, Rows: rows}, nil
}

// normalizeName trims and lower-cases a header cell or field name.
func normalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Return as string
	return s
}

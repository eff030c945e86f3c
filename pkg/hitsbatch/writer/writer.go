// Package writer stores batch outcomes back into the source workbook,
// touching only the target column of the processed rows.
package writer

import (
	"errors"

	"github.com/rotisserie/eris"
	"github.com/xuri/excelize/v2"

	"github.com/Zuperp/GoogleDataScraper/pkg/hitsbatch/models"
)

// ErrTargetUnspecified indicates a copy was requested without a path.
var ErrTargetUnspecified = errors.New("no output path given for copy")

// ErrorPrefix marks failed rows in the written column.
const ErrorPrefix = "ERROR: "

// Destination selects where results are saved.
type Destination struct {
	overwrite bool
	path      string
}

// Overwrite saves results into the source file.
func Overwrite() Destination {
	return Destination{overwrite: true}
}

// Copy saves results into a new file at path, leaving the source alone.
func Copy(path string) Destination {
	return Destination{path: path}
}

// IsOverwrite reports whether the destination is the source file.
func (d Destination) IsOverwrite() bool {
	return d.overwrite
}

// Path returns the copy path; empty for Overwrite.
func (d Destination) Path() string {
	return d.path
}

// Validate checks that the destination can be resolved.
func (d Destination) Validate() error {
	if !d.overwrite && d.path == "" {
		return ErrTargetUnspecified
	}
	return nil
}

// Target returns the file that will be written for the given source.
func (d Destination) Target(source string) string {
	if d.overwrite {
		return source
	}
	return d.path
}

// SheetRow translates a data block offset to a 1-based sheet row: one row
// for the header itself and one for the 0-based to 1-based shift.
func SheetRow(headerRow, rowOffset int) int {
	return headerRow + 2 + rowOffset
}

// CellValue returns what is written for an outcome: the count as a number,
// or a prefixed error string.
func CellValue(o models.Outcome) interface{} {
	if o.Failed() {
		return ErrorPrefix + o.Failure
	}
	return o.Count
}

// WriteResults writes one value per result into targetColumn (0-based) of
// sheetName and saves the workbook to dest. It returns the path written.
func WriteResults(source, sheetName string, results []models.RowResult, headerRow, targetColumn int, dest Destination) (string, error) {
	if err := dest.Validate(); err != nil {
		return "", err
	}

	f, err := excelize.OpenFile(source)
	if err != nil {
		return "", eris.Wrapf(err, "open workbook %s", source)
	}
	defer f.Close()

	if err := Apply(f, sheetName, results, headerRow, targetColumn); err != nil {
		return "", err
	}

	target := dest.Target(source)
	if err := f.SaveAs(target); err != nil {
		return "", eris.Wrapf(err, "save workbook %s", target)
	}
	return target, nil
}

// Apply sets the target cells on an open workbook without saving it.
func Apply(f *excelize.File, sheetName string, results []models.RowResult, headerRow, targetColumn int) error {
	for _, r := range results {
		cell, err := excelize.CoordinatesToCellName(targetColumn+1, SheetRow(headerRow, r.RowOffset))
		if err != nil {
			return eris.Wrapf(err, "row offset %d", r.RowOffset)
		}
		if err := f.SetCellValue(sheetName, cell, CellValue(r.Outcome)); err != nil {
			return eris.Wrapf(err, "set %s!%s", sheetName, cell)
		}
	}
	return nil
}

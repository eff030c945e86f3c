package parser

import (
	"strings"

	"github.com/rotisserie/eris"
)

// ReadFixture loads substitute hit counts from the first column of the
// first sheet of an xlsx file. Blank cells are returned as nil; numeric
// cells as int64 or float64; anything else as its trimmed string.
func ReadFixture(path string) ([]any, error) {
	f, err := OpenWorkbook(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, eris.Errorf("fixture %s has no sheets", path)
	}

	g, err := ReadGrid(f, sheets[0])
	if err != nil {
		return nil, err
	}

	values := make([]any, 0, len(g.Rows))
	for rowIdx := range g.Rows {
		v := strings.TrimSpace(g.Cell(rowIdx, 0))
		if v == "" {
			values = append(values, nil)
			continue
		}
		values = append(values, parseValue(v))
	}
	return values, nil
}

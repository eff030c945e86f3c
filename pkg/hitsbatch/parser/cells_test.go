package parser

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestReadGrid(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	require.NoError(t, f.SetCellValue(sheetName, "A1", "Keyword"))
	require.NoError(t, f.SetCellValue(sheetName, "B1", "HITS"))
	require.NoError(t, f.SetCellValue(sheetName, "A2", "blue shoes"))
	require.NoError(t, f.SetCellValue(sheetName, "B2", 1200))
	require.NoError(t, f.SetCellValue(sheetName, "A4", "red shoes"))

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	require.NoError(t, f.SaveAs(tmpFile))

	f2, err := OpenWorkbook(tmpFile)
	require.NoError(t, err)
	defer f2.Close()

	g, err := ReadGrid(f2, sheetName)
	require.NoError(t, err)

	assert.Equal(t, sheetName, g.Sheet)
	assert.Len(t, g.Rows, 4)
	assert.Equal(t, "Keyword", g.Cell(0, 0))
	assert.Equal(t, "1200", g.Cell(1, 1))
	assert.Equal(t, "", g.Cell(2, 0), "blank row reads as empty")
	assert.Equal(t, "red shoes", g.Cell(3, 0))
	assert.Equal(t, "", g.Cell(3, 5), "out of range column")
	assert.Equal(t, "", g.Cell(99, 0), "out of range row")
}

func TestOpenWorkbookMissingFile(t *testing.T) {
	_, err := OpenWorkbook(filepath.Join(t.TempDir(), "missing.xlsx"))
	require.Error(t, err)
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{"123", int64(123)},
		{"123.45", 123.45},
		{"-100", int64(-100)},
		{"hello", "hello"},
		{"", ""},
	}

	for _, tt := range tests {
		result := parseValue(tt.input)
		if result != tt.expected {
			t.Errorf("parseValue(%q) = %v (type: %T), expected %v (type: %T)",
				tt.input, result, result, tt.expected, tt.expected)
		}
	}
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "keyword", normalizeName("  KeyWord \t"))
	assert.Equal(t, "hits", normalizeName("HITS"))
	assert.Equal(t, "", normalizeName("   "))
}

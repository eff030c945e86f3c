package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Zuperp/GoogleDataScraper/pkg/hitsbatch/models"
)

var keywordFields = []string{"Keyword", "HITS"}

func TestLocateHeader(t *testing.T) {
	tests := []struct {
		name    string
		rows    [][]string
		maxRows int
		want    *models.HeaderLocation
	}{
		{
			name:    "header on first row",
			rows:    [][]string{{"Keyword", "HITS"}, {"shoes", ""}},
			maxRows: 8,
			want:    &models.HeaderLocation{Sheet: "S", RowIndex: 0, Columns: map[string]int{"Keyword": 0, "HITS": 1}},
		},
		{
			name: "header below title rows with extra columns",
			rows: [][]string{
				{"Monthly report"},
				{},
				{"Notes", "Volume", " hits ", "Owner", "KEYWORD  "},
				{"x", "1", "", "me", "shoes"},
			},
			maxRows: 8,
			want:    &models.HeaderLocation{Sheet: "S", RowIndex: 2, Columns: map[string]int{"Keyword": 4, "HITS": 2}},
		},
		{
			name: "first qualifying row wins",
			rows: [][]string{
				{"Keyword", "HITS"},
				{"HITS", "Keyword"},
			},
			maxRows: 8,
			want:    &models.HeaderLocation{Sheet: "S", RowIndex: 0, Columns: map[string]int{"Keyword": 0, "HITS": 1}},
		},
		{
			name:    "duplicate field in row keeps first column",
			rows:    [][]string{{"Keyword", "HITS", "keyword", "hits"}},
			maxRows: 8,
			want:    &models.HeaderLocation{Sheet: "S", RowIndex: 0, Columns: map[string]int{"Keyword": 0, "HITS": 1}},
		},
		{
			name: "fields split across rows are not merged",
			rows: [][]string{
				{"Keyword", ""},
				{"", "HITS"},
			},
			maxRows: 8,
			want:    nil,
		},
		{
			name:    "substring does not match",
			rows:    [][]string{{"Keywords", "HITS total"}},
			maxRows: 8,
			want:    nil,
		},
		{
			name: "header outside scan window",
			rows: [][]string{
				{}, {}, {},
				{"Keyword", "HITS"},
			},
			maxRows: 3,
			want:    nil,
		},
		{
			name:    "empty sheet",
			rows:    nil,
			maxRows: 8,
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LocateHeader(Grid{Sheet: "S", Rows: tt.rows}, keywordFields, tt.maxRows)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("LocateHeader mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLocateHeaderNoFields(t *testing.T) {
	got := LocateHeader(Grid{Rows: [][]string{{"Keyword"}}}, nil, 8)
	assert.Nil(t, got)
}

func TestFindHeaderPrefersActiveSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	_, err := f.NewSheet("Data")
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"Keyword", "HITS"}))
	require.NoError(t, f.SetSheetRow("Data", "A3", &[]interface{}{"HITS", "Keyword"}))

	idx, err := f.GetSheetIndex("Data")
	require.NoError(t, err)
	f.SetActiveSheet(idx)

	loc, g, tried, err := FindHeader(f, "", keywordFields, DefaultScanRows)
	require.NoError(t, err)
	require.NotNil(t, loc)
	assert.Equal(t, "Data", loc.Sheet)
	assert.Equal(t, 2, loc.RowIndex)
	assert.Equal(t, map[string]int{"Keyword": 1, "HITS": 0}, loc.Columns)
	assert.Equal(t, "Data", g.Sheet)
	assert.Equal(t, []string{"Data"}, tried)
}

func TestFindHeaderFallsBackToOtherSheets(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	_, err := f.NewSheet("Keywords")
	require.NoError(t, err)
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "Summary"))
	require.NoError(t, f.SetSheetRow("Keywords", "B2", &[]interface{}{"keyword", "hits"}))

	loc, _, tried, err := FindHeader(f, "", keywordFields, DefaultScanRows)
	require.NoError(t, err)
	require.NotNil(t, loc)
	assert.Equal(t, "Keywords", loc.Sheet)
	assert.Equal(t, map[string]int{"Keyword": 1, "HITS": 2}, loc.Columns)
	assert.Equal(t, []string{"Sheet1", "Keywords"}, tried)
}

func TestFindHeaderNotFound(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"Keyword", "Volume"}))

	loc, _, tried, err := FindHeader(f, "Sheet1", keywordFields, DefaultScanRows)
	require.NoError(t, err)
	assert.Nil(t, loc)
	assert.Equal(t, []string{"Sheet1"}, tried)
}

func TestFindHeaderUnknownSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	_, _, _, err := FindHeader(f, "Nope", keywordFields, DefaultScanRows)
	require.Error(t, err)
}

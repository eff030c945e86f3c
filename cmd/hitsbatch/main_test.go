package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func saveRows(t *testing.T, path string, cells map[string]interface{}) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for cell, v := range cells {
		require.NoError(t, f.SetCellValue("Sheet1", cell, v))
	}
	require.NoError(t, f.SaveAs(path))
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRunWithMockData(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "keywords.xlsx")
	mock := filepath.Join(dir, "mock.xlsx")
	outPath := filepath.Join(dir, "result.xlsx")
	report := filepath.Join(dir, "report.yaml")

	saveRows(t, input, map[string]interface{}{
		"A1": "Keyword", "B1": "HITS",
		"A2": "blue shoes", "A3": "red shoes",
	})
	saveRows(t, mock, map[string]interface{}{"A1": 100, "A3": "oops"})

	out, err := execute(t,
		"--config", filepath.Join(dir, "hitsbatch.toml"),
		"run", input, "--mock", mock, "-o", outPath, "--report", report, "--log-level", "error")
	require.NoError(t, err, out)

	assert.Contains(t, out, "row 1 of 2: blue shoes -> 100")
	assert.Contains(t, out, "row 2 of 2: red shoes -> ERROR: invalid value")
	assert.Contains(t, out, "1 of 2 rows failed")

	f, err := excelize.OpenFile(outPath)
	require.NoError(t, err)
	defer f.Close()
	v, err := f.GetCellValue("Sheet1", "B2")
	require.NoError(t, err)
	assert.Equal(t, "100", v)
	v, err = f.GetCellValue("Sheet1", "B3")
	require.NoError(t, err)
	assert.Equal(t, "ERROR: invalid value", v)

	data, err := os.ReadFile(report)
	require.NoError(t, err)
	assert.Contains(t, string(data), "blue shoes")
}

func TestRunHeaderMissing(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "keywords.xlsx")
	saveRows(t, input, map[string]interface{}{"A1": "Keyword"})

	out, err := execute(t,
		"--config", filepath.Join(dir, "hitsbatch.toml"),
		"run", input, "--mock", input, "--overwrite", "--log-level", "error")
	require.Error(t, err)
	assert.Contains(t, out, "header row not found")
}

func TestRunOutputAndOverwriteConflict(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "--config", filepath.Join(dir, "c.toml"), "run", "in.xlsx", "--overwrite", "-o", "out.xlsx")
	require.Error(t, err)
}

func TestConfigSetAndShow(t *testing.T) {
	t.Setenv("SERPAPI_API_KEY", "")
	path := filepath.Join(t.TempDir(), "hitsbatch.toml")

	out, err := execute(t, "--config", path, "config", "set", "api_key", "abcdef123456")
	require.NoError(t, err, out)
	assert.Contains(t, out, "saved api_key")

	out, err = execute(t, "--config", path, "config", "show")
	require.NoError(t, err, out)
	assert.Contains(t, out, "********3456")
	assert.NotContains(t, out, "abcdef123456")
	assert.Contains(t, out, "google.dk")

	_, err = execute(t, "--config", path, "config", "set", "nope", "x")
	require.Error(t, err)
}

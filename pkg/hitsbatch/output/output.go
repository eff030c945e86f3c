// Package output serializes batch summaries as JSON or YAML reports.
package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/Zuperp/GoogleDataScraper/pkg/hitsbatch/models"
)

// ToJSON serializes a summary to JSON.
func ToJSON(s *models.Summary, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(s, "", "  ")
	}
	return json.Marshal(s)
}

// ToYAML serializes a summary to YAML.
func ToYAML(s *models.Summary) ([]byte, error) {
	return yaml.Marshal(s)
}

// WriteReport writes the summary to path, choosing the format from the
// extension: .yaml/.yml for YAML, .json for JSON.
func WriteReport(path string, s *models.Summary) error {
	var (
		data []byte
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		data, err = ToYAML(s)
	case ".json":
		data, err = ToJSON(s, true)
	default:
		return fmt.Errorf("unsupported report format %q (use .json, .yaml or .yml)", ext)
	}
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

package hitsbatch

import (
	"errors"
	"fmt"

	"github.com/Zuperp/GoogleDataScraper/pkg/hitsbatch/writer"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrHeaderNotFound indicates no scanned row held every required field.
var ErrHeaderNotFound = errors.New("header row not found")

// ErrNoKeywordsFound indicates the keyword column has no values below the header.
var ErrNoKeywordsFound = errors.New("no keywords found")

// ErrWriteTargetUnspecified indicates a copy was requested without an output path.
var ErrWriteTargetUnspecified = writer.ErrTargetUnspecified

// BatchError is a fatal error that stopped a run.
type BatchError struct {
	Path   string
	Stage  string // "open", "scan", "extract", "resolve", "write"
	Detail string
	Err    error
}

func (e *BatchError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("batch %s failed for %s: %v", e.Stage, e.Path, e.Err)
	}
	return fmt.Sprintf("batch %s failed for %s: %v: %s", e.Stage, e.Path, e.Err, e.Detail)
}

func (e *BatchError) Unwrap() error {
	return e.Err
}

// NewBatchError creates a new BatchError.
func NewBatchError(path, stage string, err error, detail string) *BatchError {
	return &BatchError{
		Path:   path,
		Stage:  stage,
		Detail: detail,
		Err:    err,
	}
}

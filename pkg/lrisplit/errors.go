package lrisplit

import (
	"errors"
	"fmt"
	"strings"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrMissingColumn indicates a required column is absent from the header.
var ErrMissingColumn = errors.New("required column missing")

// ErrEmptyWorkbook indicates the workbook has no sheet or no header row.
var ErrEmptyWorkbook = errors.New("workbook is empty")

// SchemaError reports a required column absent from the source sheet.
type SchemaError struct {
	Column    string
	Available []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("column %q not found (available: %s)", e.Column, strings.Join(e.Available, ", "))
}

func (e *SchemaError) Unwrap() error {
	return ErrMissingColumn
}

// StageError represents a failure in one pipeline stage.
type StageError struct {
	Stage string // "load", "partition", "render", "write"
	Path  string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Stage, e.Path, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// NewStageError creates a new StageError.
func NewStageError(stage, path string, err error) *StageError {
	return &StageError{
		Stage: stage,
		Path:  path,
		Err:   err,
	}
}

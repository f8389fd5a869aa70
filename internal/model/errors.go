package model

import (
	"fmt"
	"strings"
)

// MissingInputError reports an input directory that is absent or holds no
// compressed tables.
type MissingInputError struct {
	Dir string
	Err error // nil when the directory exists but has no matching files
}

func (e *MissingInputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("missing input %s: %v", e.Dir, e.Err)
	}
	return fmt.Sprintf("missing input %s: no *.csv.zip files", e.Dir)
}

func (e *MissingInputError) Unwrap() error { return e.Err }

// SchemaError reports columns that are required but absent, or a file whose
// columns differ from the rest of the input.
type SchemaError struct {
	Source  string // file name, or "" for the unified table
	Missing []string
	Extra   []string
}

func (e *SchemaError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing columns "+strings.Join(e.Missing, ", "))
	}
	if len(e.Extra) > 0 {
		parts = append(parts, "unexpected columns "+strings.Join(e.Extra, ", "))
	}
	msg := strings.Join(parts, "; ")
	if e.Source != "" {
		return fmt.Sprintf("schema %s: %s", e.Source, msg)
	}
	return "schema: " + msg
}

// ValueError reports a cell that cannot be parsed as its column's type.
type ValueError struct {
	Row    int // zero-based index into the unified table
	Column string
	Value  string
	Err    error
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("row %d: parsing %s %q: %v", e.Row, e.Column, e.Value, e.Err)
}

func (e *ValueError) Unwrap() error { return e.Err }

// DateParseError reports a month/day pair that is not a calendar date.
type DateParseError struct {
	Row   int
	Month string
	Day   string
	Err   error
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("row %d: invalid contact date month=%q day=%q: %v", e.Row, e.Month, e.Day, e.Err)
}

func (e *DateParseError) Unwrap() error { return e.Err }

// WriteError reports a failure creating or writing an output path.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

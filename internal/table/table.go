// Package table holds the unified raw table every extractor reads from.
//
// Cells are kept as the exact strings found in the source CSV; typing
// happens in the extractors so a malformed cell is reported against the
// column that needs it.
package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/cleared-dev/campaignclean/internal/model"
)

// Table is an ordered set of named string columns of equal length.
type Table struct {
	frame  dataframe.DataFrame
	source string
}

func loadOptions() []dataframe.LoadOption {
	return []dataframe.LoadOption{
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		// Keep "NA" and friends verbatim.
		dataframe.NaNValues([]string{}),
	}
}

// Read parses a comma-separated table with a header row. A header with no
// data rows yields an empty table carrying the header's columns.
func Read(r io.Reader) (*Table, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, errors.New("reading CSV: no header row")
	}
	return fromRecords(records)
}

// New builds a table from a header and rows. Every row must have one cell
// per column.
func New(names []string, rows [][]string) (*Table, error) {
	for i, row := range rows {
		if len(row) != len(names) {
			return nil, fmt.Errorf("row %d: expected %d fields, got %d", i, len(names), len(row))
		}
	}
	records := make([][]string, 0, len(rows)+1)
	records = append(records, names)
	records = append(records, rows...)
	return fromRecords(records)
}

// fromRecords loads a header plus rows. gota refuses a header-only record
// set, so that case builds zero-length columns directly.
func fromRecords(records [][]string) (*Table, error) {
	if len(records) == 1 {
		cols := make([]series.Series, len(records[0]))
		for i, name := range records[0] {
			cols[i] = series.New([]string{}, series.String, name)
		}
		df := dataframe.New(cols...)
		if df.Err != nil {
			return nil, fmt.Errorf("loading header: %w", df.Err)
		}
		return &Table{frame: df}, nil
	}

	df := dataframe.LoadRecords(records, loadOptions()...)
	if df.Err != nil {
		return nil, fmt.Errorf("loading records: %w", df.Err)
	}
	return &Table{frame: df}, nil
}

// WithSource labels the table with where it came from, usually a file name.
// Concat names the offending table by its source in schema errors.
func (t *Table) WithSource(source string) *Table {
	return &Table{frame: t.frame, source: source}
}

// Source returns the label set by WithSource.
func (t *Table) Source() string {
	return t.source
}

// Concat stacks tables row-wise in argument order. Columns follow the first
// table's order; every other table must carry the same column set.
func Concat(tables ...*Table) (*Table, error) {
	if len(tables) == 0 {
		return nil, errors.New("concat: no tables")
	}

	out := tables[0].frame
	for i, t := range tables[1:] {
		if missing, extra := tables[0].SchemaDiff(t); len(missing) > 0 || len(extra) > 0 {
			source := t.source
			if source == "" {
				source = fmt.Sprintf("table %d", i+1)
			}
			return nil, &model.SchemaError{Source: source, Missing: missing, Extra: extra}
		}
		out = out.RBind(t.frame)
		if out.Err != nil {
			return nil, fmt.Errorf("concat table %d: %w", i+1, out.Err)
		}
	}
	return &Table{frame: out}, nil
}

// Names returns the column names in order.
func (t *Table) Names() []string {
	return t.frame.Names()
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return t.frame.Nrow()
}

// Has reports whether a column exists.
func (t *Table) Has(name string) bool {
	for _, n := range t.frame.Names() {
		if n == name {
			return true
		}
	}
	return false
}

// Require returns a *model.SchemaError listing every name not present.
func (t *Table) Require(names ...string) error {
	var missing []string
	for _, n := range names {
		if !t.Has(n) {
			missing = append(missing, n)
		}
	}
	if len(missing) > 0 {
		return &model.SchemaError{Missing: missing}
	}
	return nil
}

// Column returns a copy of a column's cells.
func (t *Table) Column(name string) ([]string, error) {
	if err := t.Require(name); err != nil {
		return nil, err
	}
	col := t.frame.Col(name)
	if col.Err != nil {
		return nil, fmt.Errorf("column %s: %w", name, col.Err)
	}
	return col.Records(), nil
}

// Columns returns the named columns, failing with a single
// *model.SchemaError when any are absent.
func (t *Table) Columns(names ...string) (map[string][]string, error) {
	if err := t.Require(names...); err != nil {
		return nil, err
	}
	cols := make(map[string][]string, len(names))
	for _, n := range names {
		col, err := t.Column(n)
		if err != nil {
			return nil, err
		}
		cols[n] = col
	}
	return cols, nil
}

// SchemaDiff compares column sets. missing holds columns of t absent from
// other; extra holds columns of other absent from t.
func (t *Table) SchemaDiff(other *Table) (missing, extra []string) {
	for _, n := range t.Names() {
		if !other.Has(n) {
			missing = append(missing, n)
		}
	}
	for _, n := range other.Names() {
		if !t.Has(n) {
			extra = append(extra, n)
		}
	}
	return missing, extra
}

package poe

import (
	"strings"

	"poe-show/pkg/types"
)

// Table is an assembled report ready to render.
// When KeyHeader is empty the record key is not shown.
type Table struct {
	KeyHeader string
	Columns   []string
	Rows      []types.FormattedRow
}

// Header returns the full header row
func (t *Table) Header() []string {
	if t.KeyHeader == "" {
		return append([]string(nil), t.Columns...)
	}
	return append([]string{t.KeyHeader}, t.Columns...)
}

// Body returns every row as display strings in header order
func (t *Table) Body() [][]string {
	body := make([][]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		if t.KeyHeader == "" {
			body = append(body, append([]string(nil), row.Cells...))
			continue
		}
		body = append(body, row.Values())
	}
	return body
}

// Assemble formats every record through the columns, ordering rows by the
// natural sort of their keys. The first formatting error aborts the whole
// table so that no partial output is produced.
func Assemble(keyHeader string, columns []Column, records map[string]types.Record) (*Table, error) {
	t := &Table{
		KeyHeader: keyHeader,
		Columns:   make([]string, len(columns)),
	}
	for i, c := range columns {
		t.Columns[i] = c.Header
	}

	keys := make([]string, 0, len(records))
	for k := range records {
		keys = append(keys, k)
	}

	for _, key := range SortKeys(keys) {
		row := types.FormattedRow{Key: key, Cells: make([]string, len(columns))}
		for i, c := range columns {
			cell, err := c.Value(records[key])
			if err != nil {
				return nil, &rowError{Key: key, Column: c.Header, Err: err}
			}
			row.Cells[i] = cell
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// PortKey extracts the port id from a "<table><sep><port>" store key.
func PortKey(key, sep string) (string, error) {
	parts := strings.Split(key, sep)
	if sep == "" || len(parts) < 2 || parts[1] == "" {
		return "", &MalformedKeyError{Key: key, Separator: sep}
	}
	return parts[1], nil
}

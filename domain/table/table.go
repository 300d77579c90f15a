package table

import (
	"fmt"
	"strings"
)

// Normalize returns a working copy of the table with surrounding
// whitespace stripped from every column name. The receiver is never
// mutated; callers keep their original headers.
func (t *Table) Normalize() *Table {
	headers := make([]string, len(t.Headers))
	for i, h := range t.Headers {
		headers[i] = strings.TrimSpace(h)
	}

	rows := make([]Row, len(t.Rows))
	for i, row := range t.Rows {
		normalized := make(Row, len(row))
		for col, cell := range row {
			normalized[strings.TrimSpace(col)] = cell
		}
		rows[i] = normalized
	}

	return &Table{Name: t.Name, Headers: headers, Rows: rows}
}

// HasColumn reports whether the named column exists
func (t *Table) HasColumn(name string) bool {
	for _, h := range t.Headers {
		if h == name {
			return true
		}
	}
	return false
}

// HasColumns reports whether every named column exists
func (t *Table) HasColumns(names ...string) bool {
	for _, name := range names {
		if !t.HasColumn(name) {
			return false
		}
	}
	return true
}

// Get returns the cell at the given row for the named column, or a
// missing cell when the row has no value there.
func (t *Table) Get(row Row, column string) Cell {
	if cell, ok := row[column]; ok {
		return cell
	}
	return NewMissingCell()
}

// Filter returns the rows satisfying the predicate, in table order
func (t *Table) Filter(keep func(Row) bool) []Row {
	var out []Row
	for _, row := range t.Rows {
		if keep(row) {
			out = append(out, row)
		}
	}
	return out
}

// SelectDistinct projects rows onto the given columns and deduplicates
// on the displayed values, preserving first-seen order. Selecting a
// column the table does not have is an error.
func (t *Table) SelectDistinct(rows []Row, columns ...string) ([][]string, error) {
	for _, col := range columns {
		if !t.HasColumn(col) {
			return nil, fmt.Errorf("column %q not found in sheet %q", col, t.Name)
		}
	}

	seen := make(map[string]bool)
	var out [][]string
	for _, row := range rows {
		values := make([]string, len(columns))
		for i, col := range columns {
			values[i] = t.Get(row, col).String()
		}
		key := strings.Join(values, "\x1f")
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, values)
	}
	return out, nil
}

// DistinctValues returns the distinct non-missing values of a column in
// first-seen order
func (t *Table) DistinctValues(rows []Row, column string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, row := range rows {
		cell := t.Get(row, column)
		if cell.IsMissing() {
			continue
		}
		v := cell.String()
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

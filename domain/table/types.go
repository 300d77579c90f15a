package table

import (
	"strconv"
	"strings"
)

// CellType defines the storage type for cell values
type CellType string

const (
	CellTypeText    CellType = "text"
	CellTypeNumber  CellType = "number"
	CellTypeBoolean CellType = "boolean"
	CellTypeMissing CellType = "missing"
)

// Cell represents a single typed cell value. An absent or empty cell is
// represented as the missing type, distinct from the empty string.
type Cell struct {
	Type       CellType
	TextVal    *string
	NumberVal  *float64
	BooleanVal *bool
}

// NewTextCell creates a text cell; an empty string becomes a missing cell
func NewTextCell(s string) Cell {
	if s == "" {
		return Cell{Type: CellTypeMissing}
	}
	return Cell{Type: CellTypeText, TextVal: &s}
}

// NewNumberCell creates a numeric cell
func NewNumberCell(n float64) Cell {
	return Cell{Type: CellTypeNumber, NumberVal: &n}
}

// NewBooleanCell creates a boolean cell
func NewBooleanCell(b bool) Cell {
	return Cell{Type: CellTypeBoolean, BooleanVal: &b}
}

// NewMissingCell creates a missing cell
func NewMissingCell() Cell {
	return Cell{Type: CellTypeMissing}
}

// IsMissing reports whether the cell carries no value
func (c Cell) IsMissing() bool {
	return c.Type == CellTypeMissing
}

// String returns the textual form of the cell. Missing cells render as
// the empty string so that text comparisons treat absence as "no value".
func (c Cell) String() string {
	switch c.Type {
	case CellTypeText:
		if c.TextVal != nil {
			return *c.TextVal
		}
	case CellTypeNumber:
		if c.NumberVal != nil {
			return strconv.FormatFloat(*c.NumberVal, 'g', -1, 64)
		}
	case CellTypeBoolean:
		if c.BooleanVal != nil {
			if *c.BooleanVal {
				return "true"
			}
			return "false"
		}
	}
	return ""
}

// Number returns the cell as a float64. Missing cells and unparseable
// text fall back to zero; booleans count as 0/1.
func (c Cell) Number() float64 {
	switch c.Type {
	case CellTypeNumber:
		if c.NumberVal != nil {
			return *c.NumberVal
		}
	case CellTypeText:
		if c.TextVal != nil {
			if v, err := strconv.ParseFloat(strings.TrimSpace(*c.TextVal), 64); err == nil {
				return v
			}
		}
	case CellTypeBoolean:
		if c.BooleanVal != nil && *c.BooleanVal {
			return 1
		}
	}
	return 0
}

// Row maps a column name to its cell
type Row map[string]Cell

// Table is a named, ordered set of named columns over rows of cells
type Table struct {
	Name    string
	Headers []string
	Rows    []Row
}

// SheetSet maps a sheet name to its table. It is read-only for the
// lifetime of an evaluation run.
type SheetSet map[string]*Table

// Package profile computes per-sheet column statistics for the dataset
// overview on the results page.
package profile

import (
	"sort"

	"adqa/domain/table"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// ColumnProfile summarizes one column of a sheet
type ColumnProfile struct {
	Name        string
	Total       int
	Present     int
	Missing     int
	CoveragePct float64

	// Numeric summary, populated when the column is mostly numeric
	Numeric  bool
	Mean     float64
	StdDev   float64
	Median   float64
	Q25      float64
	Q75      float64
	Skewness float64
}

// SheetProfile summarizes one sheet
type SheetProfile struct {
	Sheet   string
	Rows    int
	Columns []ColumnProfile
}

// numericShare is the fraction of present cells that must be numeric
// before a column gets a numeric summary
const numericShare = 0.8

// Sheets profiles every sheet in the collection, ordered by sheet name
func Sheets(set table.SheetSet) []SheetProfile {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)

	profiles := make([]SheetProfile, 0, len(names))
	for _, name := range names {
		profiles = append(profiles, Sheet(set[name]))
	}
	return profiles
}

// Sheet profiles a single table
func Sheet(t *table.Table) SheetProfile {
	p := SheetProfile{Sheet: t.Name, Rows: len(t.Rows)}

	for _, header := range t.Headers {
		col := ColumnProfile{Name: header, Total: len(t.Rows)}

		var values []float64
		numericCount := 0
		for _, row := range t.Rows {
			cell := t.Get(row, header)
			if cell.IsMissing() {
				continue
			}
			col.Present++
			if cell.Type == table.CellTypeNumber {
				numericCount++
				values = append(values, cell.Number())
			}
		}
		col.Missing = col.Total - col.Present
		if col.Total > 0 {
			col.CoveragePct = float64(col.Present) / float64(col.Total) * 100
		}

		if col.Present > 0 && float64(numericCount)/float64(col.Present) >= numericShare {
			col.Numeric = true
			fillNumericSummary(&col, values)
		}

		p.Columns = append(p.Columns, col)
	}

	return p
}

func fillNumericSummary(col *ColumnProfile, values []float64) {
	if len(values) == 0 {
		return
	}

	col.Mean = stat.Mean(values, nil)
	col.StdDev = stat.StdDev(values, nil)
	if len(values) > 2 {
		col.Skewness = stat.Skew(values, nil)
	}

	// Percentile-based summary via montanaflynn; errors only occur on
	// empty input, which is excluded above.
	if median, err := stats.Median(values); err == nil {
		col.Median = median
	}
	if q25, err := stats.Percentile(values, 25); err == nil {
		col.Q25 = q25
	}
	if q75, err := stats.Percentile(values, 75); err == nil {
		col.Q75 = q75
	}
}

package audit

import (
	"fmt"
	"strconv"

	"adqa/domain/table"
	"adqa/domain/verdict"
)

// extensionColumns are the extension-bearing columns a coverage summary
// is computed for; only the ones present in the sheet are reported.
var extensionColumns = []string{"Campaign Name", "Campaign Type", "Feed Item Status", "Extension Type"}

// evalAdExtensions summarizes extension coverage per available column
func evalAdExtensions(t *table.Table) verdict.Verdict {
	var available []string
	for _, col := range extensionColumns {
		if t.HasColumn(col) {
			available = append(available, col)
		}
	}

	if len(available) == 0 {
		return verdict.Fail("None of the required ad extension columns (Sitelinks, Callouts, Calls, Structured Snippets, Promotions) are present in the data.")
	}

	d := verdict.Detail{
		Columns: []string{"Extension Type", "Total Rows", "With Extension", "Missing", "Coverage %"},
	}

	total := len(t.Rows)
	for _, col := range available {
		present := 0
		for _, row := range t.Rows {
			if !t.Get(row, col).IsMissing() {
				present++
			}
		}
		coverage := 0.0
		if total > 0 {
			coverage = float64(present) / float64(total) * 100
		}
		d.Rows = append(d.Rows, []string{
			col,
			strconv.Itoa(total),
			strconv.Itoa(present),
			strconv.Itoa(total - present),
			fmt.Sprintf("%.1f", coverage),
		})
	}

	return verdict.Info("Ad Extension Implementation Summary:").WithDetail(d)
}

// evalSitelinkDescriptions counts sitelinks missing their expanded text
func evalSitelinkDescriptions(t *table.Table) verdict.Verdict {
	if !t.HasColumn("Sitelink description") {
		return verdict.Fail("Column missing.")
	}

	missing := 0
	for _, row := range t.Rows {
		if t.Get(row, "Sitelink description").IsMissing() {
			missing++
		}
	}

	if missing == 0 {
		return verdict.Pass("All sitelinks have descriptions.")
	}
	return verdict.Fail("%d sitelinks missing descriptions.", missing)
}

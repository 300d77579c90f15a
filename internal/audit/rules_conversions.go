package audit

import (
	"strings"

	"adqa/domain/table"
	"adqa/domain/verdict"
)

// evalPrimaryConversionAction checks that exactly one purchase-category
// conversion action is flagged primary for goal.
func evalPrimaryConversionAction(t *table.Table) verdict.Verdict {
	if !t.HasColumns("Conversion Action Category", "Conversion Action Primary for Goal") {
		return verdict.Fail("Required columns 'Conversion Action' and 'Conversion Action Primary for Goal' are missing.")
	}

	purchaseRows := t.Filter(func(row table.Row) bool {
		return containsFold(t.Get(row, "Conversion Action Category").String(), "purchase")
	})

	primaryTrue := 0
	for _, row := range purchaseRows {
		if strings.EqualFold(t.Get(row, "Conversion Action Primary for Goal").String(), "TRUE") {
			primaryTrue++
		}
	}

	switch {
	case primaryTrue == 1:
		return verdict.Pass("Yes – Only one primary conversion action is marked under 'Purchase'.")
	case primaryTrue > 1:
		return verdict.Fail("No – %d primary conversion actions are marked under 'Purchase'.", primaryTrue)
	default:
		return verdict.Fail("No – No primary conversion action is marked under 'Purchase'.")
	}
}

// evalPurchaseConversions checks that the purchase conversion action is
// actually capturing conversions and revenue.
func evalPurchaseConversions(t *table.Table) verdict.Verdict {
	if !t.HasColumns("All Conversions", "All Conversions Value") {
		return verdict.Fail("Required columns 'All Conversions' and 'All Conversions Value' are missing.")
	}

	filtered := t.Filter(func(row table.Row) bool {
		return containsFold(t.Get(row, "All Conversions").String(), "purchase")
	})

	// 'Conversions' is optional; when absent it contributes zero.
	var totalConversions, totalValue float64
	hasConversions := t.HasColumn("Conversions")
	for _, row := range filtered {
		if hasConversions {
			totalConversions += t.Get(row, "Conversions").Number()
		}
		totalValue += t.Get(row, "All Conversions Value").Number()
	}

	if len(filtered) > 0 && (totalConversions > 0 || totalValue > 0) {
		return verdict.Pass("Yes – 'Purchase' is capturing conversions and revenue.")
	}
	return verdict.Fail("No – 'Purchase' is not capturing any conversions or revenue.")
}

package audit

import (
	"adqa/domain/table"
	"adqa/domain/verdict"
)

// evalSearchAdgroupsNoConversions finds standard search ad groups with
// zero conversions over the reporting window.
func evalSearchAdgroupsNoConversions(t *table.Table) verdict.Verdict {
	if !t.HasColumns("Adgroup Type", "Conversions", "Campaign Name", "Adgroup Status") {
		return verdict.Fail("Required columns 'Adgroup Type', 'Conversions', 'Campaign', or 'Ad group' are missing.")
	}

	filtered := t.Filter(func(row table.Row) bool {
		return cellUpper(t.Get(row, "Adgroup Type")) == "SEARCH_STANDARD" &&
			t.Get(row, "Conversions").Number() == 0
	})

	if len(filtered) == 0 {
		return verdict.Pass("All active search ad groups have had at least one conversion in the last 90 days.")
	}

	d := detail(t, filtered, "Campaign Name", "Adgroup Name", "Adgroup Status", "Conversions")
	return verdict.Fail("%d active search ad groups had 0 conversions in the last 90 days:", len(d.Rows)).WithDetail(d)
}

// evalDisplayAdgroupsNoConversions finds standard display ad groups with
// neither conversions nor view-through conversions.
func evalDisplayAdgroupsNoConversions(t *table.Table) verdict.Verdict {
	if !t.HasColumns("Adgroup Type", "Conversions", "View Through Conversions", "Campaign Name", "Adgroup Name") {
		return verdict.Fail("Required columns missing: 'Adgroup Type', 'Conversions', 'View-through Conversions', 'Campaign Name', or 'Adgroup Name'.")
	}

	filtered := t.Filter(func(row table.Row) bool {
		return cellUpper(t.Get(row, "Adgroup Type")) == "DISPLAY_STANDARD" &&
			(t.Get(row, "Conversions").Number() == 0 ||
				t.Get(row, "View Through Conversions").Number() == 0)
	})

	if len(filtered) == 0 {
		return verdict.Pass("All active display ad groups had either conversions or view-through conversions in the last 90 days.")
	}

	d := detail(t, filtered, "Campaign Name", "Adgroup Name", "Conversions", "View Through Conversions")
	return verdict.Fail("%d active display ad groups had 0 conversions or view-through conversions:", len(d.Rows)).WithDetail(d)
}

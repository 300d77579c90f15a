package audit

import (
	"adqa/domain/table"
	"adqa/domain/verdict"
)

// evalNegativeDynamicTargeting verifies dynamic search ad campaigns
// carry negative dynamic ad targets.
func evalNegativeDynamicTargeting(t *table.Table) verdict.Verdict {
	if !t.HasColumns("Campaign type", "Dynamic ad target") {
		return verdict.Fail("Columns missing.")
	}

	dsa := t.Filter(func(row table.Row) bool {
		return containsFold(t.Get(row, "Campaign type").String(), "Dynamic")
	})

	missing := 0
	for _, row := range dsa {
		if t.Get(row, "Dynamic ad target").IsMissing() {
			missing++
		}
	}

	if missing == 0 {
		return verdict.Pass("All DSAs have negative targeting set.")
	}
	return verdict.Fail("%d DSAs missing targeting rules.", missing)
}

// evalAudienceObservationMode finds audience rows not applied in
// Observation mode. A missing setting counts as a violation.
func evalAudienceObservationMode(t *table.Table) verdict.Verdict {
	if !t.HasColumn("Audience setting") {
		return verdict.Fail("'Audience setting' column missing.")
	}

	violations := t.Filter(func(row table.Row) bool {
		cell := t.Get(row, "Audience setting")
		return cell.IsMissing() || !containsFold(cell.String(), "Observation")
	})

	if len(violations) == 0 {
		return verdict.Pass("Observation mode set for all.")
	}
	return verdict.Fail("%d entries missing Observation mode.", len(violations))
}

// evalPerformanceMaxAudienceSignals counts campaigns without an
// audience signal.
func evalPerformanceMaxAudienceSignals(t *table.Table) verdict.Verdict {
	if !t.HasColumn("Audience signal") {
		return verdict.Fail("Column missing.")
	}

	empty := 0
	for _, row := range t.Rows {
		if t.Get(row, "Audience signal").IsMissing() {
			empty++
		}
	}

	if empty == 0 {
		return verdict.Pass("All Performance Max campaigns have audience signals.")
	}
	return verdict.Fail("%d missing audience signals.", empty)
}

// evalPerformanceMaxVideoAssets counts asset groups without a video
func evalPerformanceMaxVideoAssets(t *table.Table) verdict.Verdict {
	if !t.HasColumn("Video Asset") {
		return verdict.Fail("Column missing.")
	}

	missing := 0
	for _, row := range t.Rows {
		if t.Get(row, "Video Asset").IsMissing() {
			missing++
		}
	}

	if missing == 0 {
		return verdict.Pass("All asset groups have videos.")
	}
	return verdict.Fail("%d asset groups missing videos.", missing)
}

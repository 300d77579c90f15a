package audit

import (
	"strings"

	"adqa/domain/table"
	"adqa/domain/verdict"
)

// evalCampaignNameConsistency flags campaigns whose names do not follow
// the account's "NX_" naming convention.
func evalCampaignNameConsistency(t *table.Table) verdict.Verdict {
	if !t.HasColumn("Campaign Name") {
		return verdict.Fail("'Campaign Name' column is missing.")
	}

	inconsistent := t.Filter(func(row table.Row) bool {
		return !strings.HasPrefix(t.Get(row, "Campaign Name").String(), "NX_")
	})

	if len(inconsistent) == 0 {
		return verdict.Pass("All campaign names are consistent and start with 'NX_'.")
	}

	d := detail(t, inconsistent, "Campaign Name")
	return verdict.Fail("%d campaign(s) do not start with 'NX_':", len(d.Rows)).WithDetail(d)
}

// evalBudgetLostImpressionShare finds converting Search/Display
// campaigns losing more than 10% impression share to budget limits.
func evalBudgetLostImpressionShare(t *table.Table) verdict.Verdict {
	if !t.HasColumns("Campaign Name", "Campaign Type", "Campaign Status", "Conversions", "Search Budget Lost Impression Share") {
		return verdict.Fail("Required columns 'Campaign', 'Campaign Type', 'Conversions', or 'Search Budget Lost Impression Share' are missing.")
	}

	filtered := t.Filter(func(row table.Row) bool {
		campaignType := cellUpper(t.Get(row, "Campaign Type"))
		return (campaignType == "SEARCH" || campaignType == "DISPLAY") &&
			t.Get(row, "Conversions").Number() > 0 &&
			t.Get(row, "Search Budget Lost Impression Share").Number() > 10
	})

	if len(filtered) == 0 {
		return verdict.Pass("No Search or Display campaigns with conversions are losing more than 10%% Impression Share due to budget.")
	}

	d := detail(t, filtered, "Campaign Name", "Campaign Type", "Conversions", "Search Budget Lost Impression Share")
	return verdict.Fail("%d campaigns with conversions are losing over 10%% Impression Share due to budget:", len(d.Rows)).WithDetail(d)
}

package audit

import (
	"strconv"

	"adqa/domain/table"
	"adqa/domain/verdict"
)

// adGroupKey identifies a (campaign, ad group) pair for aggregation
type adGroupKey struct {
	campaign string
	adgroup  string
}

// groupRows aggregates rows by (Campaign Name, Adgroup Name) preserving
// first-seen group order
func groupRows(t *table.Table, rows []table.Row) ([]adGroupKey, map[adGroupKey][]table.Row) {
	groups := make(map[adGroupKey][]table.Row)
	var order []adGroupKey
	for _, row := range rows {
		key := adGroupKey{
			campaign: t.Get(row, "Campaign Name").String(),
			adgroup:  t.Get(row, "Adgroup Name").String(),
		}
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], row)
	}
	return order, groups
}

// evalLegacyExpandedTextAds finds legacy expanded dynamic search ads
// still live, grouped per ad group.
func evalLegacyExpandedTextAds(t *table.Table) verdict.Verdict {
	if !t.HasColumns("Ad Type", "Campaign Name", "Adgroup Name") {
		return verdict.Fail("Required columns missing: 'Ad type', 'Campaign', or 'Adgroup Name'.")
	}

	etas := t.Filter(func(row table.Row) bool {
		return cellUpper(t.Get(row, "Ad Type")) == "EXPANDED_DYNAMIC_SEARCH_AD"
	})

	if len(etas) == 0 {
		return verdict.Pass("No legacy ETAs found.")
	}

	order, groups := groupRows(t, etas)
	d := verdict.Detail{Columns: []string{"Campaign Name", "Adgroup Name", "ETA Count"}}
	for _, key := range order {
		d.Rows = append(d.Rows, []string{key.campaign, key.adgroup, strconv.Itoa(len(groups[key]))})
	}

	return verdict.Fail("%d legacy ETAs found.", len(etas)).WithDetail(d)
}

// evalRSAExcellentStrength verifies every ad group has at least one
// responsive search ad rated Excellent.
func evalRSAExcellentStrength(t *table.Table) verdict.Verdict {
	if !t.HasColumns("Adgroup Name", "Ad Type", "Ad Strength", "Campaign Name") {
		return verdict.Fail("Required columns missing: 'Ad group', 'Ad type', 'Ad Strength', or 'Campaign'.")
	}

	rsas := t.Filter(func(row table.Row) bool {
		return cellUpper(t.Get(row, "Ad Type")) == "RESPONSIVE_SEARCH_AD"
	})

	order, groups := groupRows(t, rsas)

	summary := verdict.Detail{
		Title:   "Summary",
		Columns: []string{"Campaign Name", "Adgroup Name", "Total RSA", "Excellent RSA"},
	}
	missing := verdict.Detail{
		Title:   "Ad groups missing excellent RSAs",
		Columns: summary.Columns,
	}

	missingCount := 0
	for _, key := range order {
		total := len(groups[key])
		excellent := 0
		for _, row := range groups[key] {
			if cellUpper(t.Get(row, "Ad Strength")) == "EXCELLENT" {
				excellent++
			}
		}
		summaryRow := []string{key.campaign, key.adgroup, strconv.Itoa(total), strconv.Itoa(excellent)}
		summary.Rows = append(summary.Rows, summaryRow)
		if excellent == 0 {
			missing.Rows = append(missing.Rows, summaryRow)
			missingCount++
		}
	}

	if missingCount == 0 {
		return verdict.Pass("All ad groups have at least one RSA with excellent ad strength.").WithDetail(summary)
	}
	return verdict.Fail("%d ad group(s) missing RSAs with excellent ad strength.", missingCount).
		WithDetail(summary).
		WithDetail(missing)
}

// evalRSAAssetUsage checks whether responsive search ads use all 15
// headline and 4 description slots.
func evalRSAAssetUsage(t *table.Table) verdict.Verdict {
	if !t.HasColumns("Ad Type", "RSA Headlines Count", "RSA Descriptions Count", "Campaign Name", "Adgroup Name") {
		return verdict.Fail("Required columns missing: 'Ad type', 'Headlines', 'Descriptions', 'Campaign', or 'Adgroup Name'.")
	}

	rsas := t.Filter(func(row table.Row) bool {
		return containsFold(t.Get(row, "Ad Type").String(), "Responsive")
	})

	if len(rsas) == 0 {
		return verdict.Info("No RSAs found.")
	}

	order, groups := groupRows(t, rsas)

	summary := verdict.Detail{
		Columns: []string{"Campaign Name", "Adgroup Name", "Total RSAs", "Pass Criteria"},
	}

	underused := 0
	for _, key := range order {
		total := len(groups[key])
		passing := 0
		for _, row := range groups[key] {
			// Non-numeric counts coerce to zero.
			headlines := t.Get(row, "RSA Headlines Count").Number()
			descriptions := t.Get(row, "RSA Descriptions Count").Number()
			if headlines >= 15 && descriptions >= 4 {
				passing++
			}
		}
		summary.Rows = append(summary.Rows, []string{
			key.campaign, key.adgroup, strconv.Itoa(total), strconv.Itoa(passing),
		})
		if passing < total {
			underused++
		}
	}

	if underused == 0 {
		return verdict.Pass("All RSAs are using all headline and description slots.").WithDetail(summary)
	}
	return verdict.Fail("%d campaign/adgroup(s) have RSAs underutilizing headlines/descriptions.", underused).WithDetail(summary)
}

package audit

import (
	"strings"

	"adqa/domain/table"
	"adqa/domain/verdict"
)

// evalAdgroupKeywordCounts reports the share of ad groups carrying more
// than 20 keywords and hands the split to the chart renderer.
func evalAdgroupKeywordCounts(charts ChartRenderer) func(*table.Table) verdict.Verdict {
	return func(t *table.Table) verdict.Verdict {
		if !t.HasColumns("Adgroup Name", "Keyword Name") {
			return verdict.Fail("Required columns 'Adgroup Name' or 'Keyword Name' are missing.")
		}

		counts := make(map[string]int)
		var order []string
		for _, row := range t.Rows {
			if t.Get(row, "Keyword Name").IsMissing() {
				continue
			}
			adgroup := t.Get(row, "Adgroup Name").String()
			if _, seen := counts[adgroup]; !seen {
				order = append(order, adgroup)
			}
			counts[adgroup]++
		}

		moreThan20 := 0
		for _, adgroup := range order {
			if counts[adgroup] > 20 {
				moreThan20++
			}
		}
		total := len(order)

		pct := 0.0
		if total > 0 {
			pct = float64(moreThan20) / float64(total) * 100
		}

		v := verdict.Info("%.1f%% of ad groups have more than 20 keywords.", pct)
		if charts != nil {
			ref, err := charts.RenderPie(
				"Ad groups by keyword count",
				[]string{">20 Keywords", "20 or Fewer"},
				[]float64{float64(moreThan20), float64(total - moreThan20)},
			)
			if err != nil {
				return verdict.Errorf("Error: %v", err)
			}
			v = v.WithChart(ref)
		}
		return v
	}
}

// evalLegacyBMMKeywords finds keywords still using the deprecated broad
// match modifier syntax.
func evalLegacyBMMKeywords(t *table.Table) verdict.Verdict {
	if !t.HasColumns("Keyword Name", "Campaign Name", "Adgroup Name") {
		return verdict.Fail("Required columns 'Keyword', 'Campaign', or 'Ad group' are missing.")
	}

	bmm := t.Filter(func(row table.Row) bool {
		return strings.Contains(t.Get(row, "Keyword Name").String(), "+")
	})

	if len(bmm) == 0 {
		return verdict.Pass("No legacy BMM keywords found.")
	}

	d := detail(t, bmm, "Keyword Name", "Campaign Name", "Adgroup Name")
	return verdict.Fail("%d legacy BMM keywords found:", len(d.Rows)).WithDetail(d)
}

var seasonalTerms = []string{"holiday", "black friday", "back to school", "christmas"}

// evalSeasonalKeywords counts keywords matching known seasonal terms
func evalSeasonalKeywords(t *table.Table) verdict.Verdict {
	if !t.HasColumn("Keyword") {
		return verdict.Fail("'Keyword' column missing.")
	}

	seasonal := t.Filter(func(row table.Row) bool {
		keyword := t.Get(row, "Keyword").String()
		for _, term := range seasonalTerms {
			if containsFold(keyword, term) {
				return true
			}
		}
		return false
	})

	if len(seasonal) == 0 {
		return verdict.Pass("No irrelevant seasonal keywords.")
	}
	return verdict.Fail("%d seasonal keywords found.", len(seasonal))
}

// evalLowSearchVolume finds keywords Google has flagged as rarely served
func evalLowSearchVolume(t *table.Table) verdict.Verdict {
	if !t.HasColumns("Status Reason", "Campaign Name", "Adgroup Name", "Keyword Name", "Keyword MatchType") {
		return verdict.Fail("Required columns are missing: 'Status Reason', 'Campaign', 'Adgroup Name', 'Keyword', or 'Match Type'.")
	}

	lowVolume := t.Filter(func(row table.Row) bool {
		return cellUpper(t.Get(row, "Status Reason")) == "RARELY_SERVED"
	})

	if len(lowVolume) == 0 {
		return verdict.Pass("No active keywords are marked as low search volume (RARELY_SERVED).")
	}

	d := detail(t, lowVolume, "Campaign Name", "Adgroup Name", "Keyword Name", "Keyword MatchType")
	return verdict.Fail("%d keyword(s) are low search volume and rarely served:", len(d.Rows)).WithDetail(d)
}

// evalKeywordFinalURLs finds non-display keywords without a landing page
func evalKeywordFinalURLs(t *table.Table) verdict.Verdict {
	if !t.HasColumns("Keyword Final URLs", "Adgroup Type", "Campaign Name", "Keyword Name") {
		return verdict.Fail("Required columns missing: 'Final URL', 'Adgroup Type', 'Campaign', or 'Keyword'.")
	}

	missing := t.Filter(func(row table.Row) bool {
		return t.Get(row, "Keyword Final URLs").IsMissing() &&
			cellUpper(t.Get(row, "Adgroup Type")) != "DISPLAY_STANDARD"
	})

	if len(missing) == 0 {
		return verdict.Pass("All relevant keywords have Final URLs (landing pages).")
	}

	d := detail(t, missing, "Campaign Name", "Adgroup Name", "Keyword Name", "Keyword Final URLs", "Status Reason")
	return verdict.Fail("%d keyword(s) are missing Final URLs (landing pages):", len(d.Rows)).WithDetail(d)
}

// evalBrokenFinalURLs checks every distinct final URL once and reports
// the keywords whose URLs 404 or fail outright.
func evalBrokenFinalURLs(links LinkChecker) func(*table.Table) verdict.Verdict {
	return func(t *table.Table) verdict.Verdict {
		if !t.HasColumns("Keyword Final URLs", "Adgroup Type", "Campaign Name", "Keyword Name") {
			return verdict.Fail("Required columns missing: 'Final URL', 'Adgroup Type', 'Campaign', or 'Keyword'.")
		}

		filtered := t.Filter(func(row table.Row) bool {
			return !t.Get(row, "Keyword Final URLs").IsMissing() &&
				cellUpper(t.Get(row, "Adgroup Type")) != "DISPLAY_STANDARD"
		})

		urls := t.DistinctValues(filtered, "Keyword Final URLs")
		broken := map[string]bool{}
		if links != nil {
			broken = links.Broken(urls)
		}

		if len(broken) == 0 {
			return verdict.Pass("All URLs are working (no 404 errors detected).")
		}

		affected := t.Filter(func(row table.Row) bool {
			return broken[t.Get(row, "Keyword Final URLs").String()] &&
				cellUpper(t.Get(row, "Adgroup Type")) != "DISPLAY_STANDARD"
		})

		d := detail(t, affected, "Campaign Name", "Adgroup Name", "Keyword Name", "Keyword Final URLs")
		return verdict.Fail("%d keywords have final URLs returning 404 error:", len(d.Rows)).WithDetail(d)
	}
}

package audit

import (
	"errors"
	"testing"

	"adqa/domain/table"
	"adqa/domain/verdict"
	"adqa/internal/coerce"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeTable builds a sheet from raw string cells, coercing the same way
// the workbook reader does
func makeTable(name string, headers []string, rows [][]string) *table.Table {
	t := &table.Table{Name: name, Headers: headers}
	for _, raw := range rows {
		row := make(table.Row)
		for i, v := range raw {
			if i >= len(headers) {
				break
			}
			c := coerce.Cell(v)
			if c.IsMissing() {
				continue
			}
			row[headers[i]] = c
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

type fakeLinks struct {
	broken map[string]bool
	calls  [][]string
}

func (f *fakeLinks) Broken(urls []string) map[string]bool {
	f.calls = append(f.calls, urls)
	out := make(map[string]bool)
	for _, u := range urls {
		if f.broken[u] {
			out[u] = true
		}
	}
	return out
}

type fakeCharts struct {
	err   error
	calls int
}

func (f *fakeCharts) RenderPie(title string, labels []string, values []float64) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return "/media/chart_fake.html", nil
}

func TestPrimaryConversionAction(t *testing.T) {
	headers := []string{"Conversion Action Category", "Conversion Action Primary for Goal"}

	t.Run("exactly one primary passes", func(t *testing.T) {
		tbl := makeTable("Conversions Tracking Data", headers, [][]string{
			{"Purchase", "TRUE"},
			{"Purchase", "FALSE"},
			{"Lead", "TRUE"},
		})
		v := evalPrimaryConversionAction(tbl)
		assert.Equal(t, verdict.StatusPass, v.Status)
		assert.Equal(t, "Yes – Only one primary conversion action is marked under 'Purchase'.", v.Text)
	})

	t.Run("two primaries fail with count", func(t *testing.T) {
		tbl := makeTable("Conversions Tracking Data", headers, [][]string{
			{"Purchase", "TRUE"},
			{"purchase", "true"},
		})
		v := evalPrimaryConversionAction(tbl)
		assert.Equal(t, verdict.StatusFail, v.Status)
		assert.Equal(t, "No – 2 primary conversion actions are marked under 'Purchase'.", v.Text)
	})

	t.Run("zero primaries fail", func(t *testing.T) {
		tbl := makeTable("Conversions Tracking Data", headers, [][]string{
			{"Purchase", "FALSE"},
		})
		v := evalPrimaryConversionAction(tbl)
		assert.Equal(t, verdict.StatusFail, v.Status)
		assert.Equal(t, "No – No primary conversion action is marked under 'Purchase'.", v.Text)
	})

	t.Run("missing columns fail before filtering", func(t *testing.T) {
		tbl := makeTable("Conversions Tracking Data", []string{"Something Else"}, nil)
		v := evalPrimaryConversionAction(tbl)
		assert.Equal(t, verdict.StatusFail, v.Status)
		assert.Contains(t, v.Text, "are missing")
	})
}

func TestPurchaseConversions(t *testing.T) {
	headers := []string{"All Conversions", "All Conversions Value", "Conversions"}

	t.Run("purchase capturing revenue passes", func(t *testing.T) {
		tbl := makeTable("Conversions Tracking Data", headers, [][]string{
			{"Purchase", "$1,200.50", "12"},
		})
		v := evalPurchaseConversions(tbl)
		assert.Equal(t, verdict.StatusPass, v.Status)
		assert.Equal(t, "Yes – 'Purchase' is capturing conversions and revenue.", v.Text)
	})

	t.Run("revenue counts without optional Conversions column", func(t *testing.T) {
		tbl := makeTable("Conversions Tracking Data",
			[]string{"All Conversions", "All Conversions Value"},
			[][]string{{"Purchase", "350"}})
		v := evalPurchaseConversions(tbl)
		assert.Equal(t, verdict.StatusPass, v.Status)
	})

	t.Run("zero across the board fails", func(t *testing.T) {
		tbl := makeTable("Conversions Tracking Data", headers, [][]string{
			{"Purchase", "0", "0"},
		})
		v := evalPurchaseConversions(tbl)
		assert.Equal(t, verdict.StatusFail, v.Status)
		assert.Equal(t, "No – 'Purchase' is not capturing any conversions or revenue.", v.Text)
	})

	t.Run("no purchase rows fail", func(t *testing.T) {
		tbl := makeTable("Conversions Tracking Data", headers, [][]string{
			{"Lead", "500", "3"},
		})
		v := evalPurchaseConversions(tbl)
		assert.Equal(t, verdict.StatusFail, v.Status)
	})
}

func TestCampaignNameConsistency(t *testing.T) {
	t.Run("all prefixed pass", func(t *testing.T) {
		tbl := makeTable("Campaign Data", []string{"Campaign Name"}, [][]string{
			{"NX_Brand"}, {"NX_Generic"},
		})
		v := evalCampaignNameConsistency(tbl)
		assert.Equal(t, verdict.StatusPass, v.Status)
		assert.Equal(t, "All campaign names are consistent and start with 'NX_'.", v.Text)
	})

	t.Run("violators listed once each", func(t *testing.T) {
		tbl := makeTable("Campaign Data", []string{"Campaign Name"}, [][]string{
			{"NX_Brand"}, {"Old Campaign"}, {"Old Campaign"}, {"Другая"},
		})
		v := evalCampaignNameConsistency(tbl)
		assert.Equal(t, verdict.StatusFail, v.Status)
		require.True(t, v.HasDetail())
		// Duplicate rows collapse in the detail, the sentence counts the
		// distinct entries.
		assert.Len(t, v.Details[0].Rows, 2)
		assert.Contains(t, v.Text, "2 campaign(s)")
	})
}

func TestAdgroupKeywordCounts(t *testing.T) {
	headers := []string{"Adgroup Name", "Keyword Name"}

	build := func() *table.Table {
		rows := [][]string{}
		for i := 0; i < 21; i++ {
			rows = append(rows, []string{"big group", "kw"})
		}
		rows = append(rows, []string{"small group", "kw"})
		// Row without a keyword must not count toward any group.
		rows = append(rows, []string{"empty group", ""})
		return makeTable("Keyword Data", headers, rows)
	}

	t.Run("percentage over groups with keywords", func(t *testing.T) {
		charts := &fakeCharts{}
		v := evalAdgroupKeywordCounts(charts)(build())
		assert.Equal(t, verdict.StatusInfo, v.Status)
		assert.Equal(t, "50.0% of ad groups have more than 20 keywords.", v.Text)
		assert.Equal(t, 1, charts.calls)
		assert.Equal(t, "/media/chart_fake.html", v.ChartRef)
	})

	t.Run("renderer failure becomes an error verdict", func(t *testing.T) {
		charts := &fakeCharts{err: errors.New("disk full")}
		v := evalAdgroupKeywordCounts(charts)(build())
		assert.Equal(t, verdict.StatusError, v.Status)
		assert.Equal(t, "Error: disk full", v.Text)
	})

	t.Run("nil renderer skips the chart", func(t *testing.T) {
		v := evalAdgroupKeywordCounts(nil)(build())
		assert.Equal(t, verdict.StatusInfo, v.Status)
		assert.Empty(t, v.ChartRef)
	})

	t.Run("empty sheet reports zero percent", func(t *testing.T) {
		v := evalAdgroupKeywordCounts(nil)(makeTable("Keyword Data", headers, nil))
		assert.Equal(t, "0.0% of ad groups have more than 20 keywords.", v.Text)
	})
}

func TestBudgetLostImpressionShare(t *testing.T) {
	headers := []string{"Campaign Name", "Campaign Type", "Campaign Status", "Conversions", "Search Budget Lost Impression Share"}

	tbl := makeTable("Campaign Data", headers, [][]string{
		{"NX_Search", "SEARCH", "ENABLED", "5", "25"},    // flagged
		{"NX_Display", "display", "ENABLED", "2", "11"},  // flagged, type case-insensitive
		{"NX_NoConv", "SEARCH", "ENABLED", "0", "40"},    // no conversions
		{"NX_LowLoss", "SEARCH", "ENABLED", "9", "10"},   // share not over 10
		{"NX_PMax", "PERFORMANCE_MAX", "ENABLED", "7", "90"}, // wrong type
	})

	v := evalBudgetLostImpressionShare(tbl)
	assert.Equal(t, verdict.StatusFail, v.Status)
	assert.Contains(t, v.Text, "2 campaigns")
	require.True(t, v.HasDetail())
	assert.Equal(t, []string{"Campaign Name", "Campaign Type", "Conversions", "Search Budget Lost Impression Share"}, v.Details[0].Columns)
	assert.Len(t, v.Details[0].Rows, 2)
}

func TestLegacyBMMKeywords(t *testing.T) {
	headers := []string{"Keyword Name", "Campaign Name", "Adgroup Name"}

	t.Run("clean account passes", func(t *testing.T) {
		tbl := makeTable("Keyword Data", headers, [][]string{
			{"running shoes", "NX_Brand", "Shoes"},
		})
		v := evalLegacyBMMKeywords(tbl)
		assert.Equal(t, verdict.StatusPass, v.Status)
		assert.Equal(t, "No legacy BMM keywords found.", v.Text)
	})

	t.Run("plus-modified keywords flagged", func(t *testing.T) {
		tbl := makeTable("Keyword Data", headers, [][]string{
			{"+running +shoes", "NX_Brand", "Shoes"},
			{"trail shoes", "NX_Brand", "Shoes"},
		})
		v := evalLegacyBMMKeywords(tbl)
		assert.Equal(t, verdict.StatusFail, v.Status)
		assert.Equal(t, "1 legacy BMM keywords found:", v.Text)
	})
}

func TestSearchAdgroupsNoConversions(t *testing.T) {
	headers := []string{"Adgroup Type", "Conversions", "Campaign Name", "Adgroup Status", "Adgroup Name"}

	tbl := makeTable("AdGroup Data", headers, [][]string{
		{"SEARCH_STANDARD", "0", "NX_Brand", "ENABLED", "Shoes"},
		{"SEARCH_STANDARD", "4", "NX_Brand", "ENABLED", "Boots"},
		{"DISPLAY_STANDARD", "0", "NX_Display", "ENABLED", "Banners"},
	})

	v := evalSearchAdgroupsNoConversions(tbl)
	assert.Equal(t, verdict.StatusFail, v.Status)
	assert.Equal(t, "1 active search ad groups had 0 conversions in the last 90 days:", v.Text)
	require.True(t, v.HasDetail())
	assert.Equal(t, [][]string{{"NX_Brand", "Shoes", "ENABLED", "0"}}, v.Details[0].Rows)
}

func TestSeasonalKeywords(t *testing.T) {
	t.Run("matches known terms case-insensitively", func(t *testing.T) {
		tbl := makeTable("Keyword Data", []string{"Keyword"}, [][]string{
			{"Black Friday deals"},
			{"CHRISTMAS gifts"},
			{"running shoes"},
		})
		v := evalSeasonalKeywords(tbl)
		assert.Equal(t, verdict.StatusFail, v.Status)
		assert.Equal(t, "2 seasonal keywords found.", v.Text)
	})

	t.Run("no seasonal terms pass", func(t *testing.T) {
		tbl := makeTable("Keyword Data", []string{"Keyword"}, [][]string{{"running shoes"}})
		v := evalSeasonalKeywords(tbl)
		assert.Equal(t, verdict.StatusPass, v.Status)
	})
}

func TestLowSearchVolume(t *testing.T) {
	headers := []string{"Status Reason", "Campaign Name", "Adgroup Name", "Keyword Name", "Keyword MatchType"}

	tbl := makeTable("Keyword Data", headers, [][]string{
		{"rarely_served", "NX_Brand", "Shoes", "obscure term", "EXACT"},
		{"ELIGIBLE", "NX_Brand", "Shoes", "running shoes", "PHRASE"},
	})

	v := evalLowSearchVolume(tbl)
	assert.Equal(t, verdict.StatusFail, v.Status)
	assert.Equal(t, "1 keyword(s) are low search volume and rarely served:", v.Text)
}

func TestKeywordFinalURLs(t *testing.T) {
	headers := []string{"Keyword Final URLs", "Adgroup Type", "Campaign Name", "Adgroup Name", "Keyword Name", "Status Reason"}

	tbl := makeTable("Keyword Data", headers, [][]string{
		{"", "SEARCH_STANDARD", "NX_Brand", "Shoes", "running shoes", "ELIGIBLE"},
		{"", "DISPLAY_STANDARD", "NX_Display", "Banners", "banner kw", "ELIGIBLE"},
		{"https://example.com", "SEARCH_STANDARD", "NX_Brand", "Shoes", "trail shoes", "ELIGIBLE"},
	})

	v := evalKeywordFinalURLs(tbl)
	assert.Equal(t, verdict.StatusFail, v.Status)
	// Display rows are exempt from the landing-page requirement.
	assert.Equal(t, "1 keyword(s) are missing Final URLs (landing pages):", v.Text)
}

func TestBrokenFinalURLs(t *testing.T) {
	headers := []string{"Keyword Final URLs", "Adgroup Type", "Campaign Name", "Adgroup Name", "Keyword Name"}

	tbl := makeTable("Keyword Data", headers, [][]string{
		{"https://example.com/a", "SEARCH_STANDARD", "NX_Brand", "Shoes", "kw one"},
		{"https://example.com/a", "SEARCH_STANDARD", "NX_Brand", "Shoes", "kw two"},
		{"https://example.com/b", "SEARCH_STANDARD", "NX_Brand", "Boots", "kw three"},
		{"https://example.com/c", "DISPLAY_STANDARD", "NX_Display", "Banners", "kw four"},
	})

	t.Run("each distinct URL checked once", func(t *testing.T) {
		links := &fakeLinks{}
		v := evalBrokenFinalURLs(links)(tbl)
		assert.Equal(t, verdict.StatusPass, v.Status)
		assert.Equal(t, "All URLs are working (no 404 errors detected).", v.Text)
		require.Len(t, links.calls, 1)
		// Display rows are excluded and the duplicate collapses.
		assert.Equal(t, []string{"https://example.com/a", "https://example.com/b"}, links.calls[0])
	})

	t.Run("broken URL lists every affected keyword", func(t *testing.T) {
		links := &fakeLinks{broken: map[string]bool{"https://example.com/a": true}}
		v := evalBrokenFinalURLs(links)(tbl)
		assert.Equal(t, verdict.StatusFail, v.Status)
		assert.Equal(t, "2 keywords have final URLs returning 404 error:", v.Text)
		require.True(t, v.HasDetail())
		assert.Len(t, v.Details[0].Rows, 2)
	})
}

func TestLegacyExpandedTextAds(t *testing.T) {
	headers := []string{"Ad Type", "Campaign Name", "Adgroup Name"}

	tbl := makeTable("Ad Data", headers, [][]string{
		{"EXPANDED_DYNAMIC_SEARCH_AD", "NX_Brand", "Shoes"},
		{"EXPANDED_DYNAMIC_SEARCH_AD", "NX_Brand", "Shoes"},
		{"RESPONSIVE_SEARCH_AD", "NX_Brand", "Shoes"},
		{"EXPANDED_DYNAMIC_SEARCH_AD", "NX_Brand", "Boots"},
	})

	v := evalLegacyExpandedTextAds(tbl)
	assert.Equal(t, verdict.StatusFail, v.Status)
	assert.Equal(t, "3 legacy ETAs found.", v.Text)
	require.True(t, v.HasDetail())
	assert.Equal(t, [][]string{
		{"NX_Brand", "Shoes", "2"},
		{"NX_Brand", "Boots", "1"},
	}, v.Details[0].Rows)
}

func TestRSAExcellentStrength(t *testing.T) {
	headers := []string{"Adgroup Name", "Ad Type", "Ad Strength", "Campaign Name"}

	t.Run("every group covered passes with summary", func(t *testing.T) {
		tbl := makeTable("Ad Data", headers, [][]string{
			{"Shoes", "RESPONSIVE_SEARCH_AD", "EXCELLENT", "NX_Brand"},
			{"Shoes", "RESPONSIVE_SEARCH_AD", "GOOD", "NX_Brand"},
		})
		v := evalRSAExcellentStrength(tbl)
		assert.Equal(t, verdict.StatusPass, v.Status)
		require.Len(t, v.Details, 1)
		assert.Equal(t, "Summary", v.Details[0].Title)
		assert.Equal(t, [][]string{{"NX_Brand", "Shoes", "2", "1"}}, v.Details[0].Rows)
	})

	t.Run("uncovered groups get a second table", func(t *testing.T) {
		tbl := makeTable("Ad Data", headers, [][]string{
			{"Shoes", "RESPONSIVE_SEARCH_AD", "EXCELLENT", "NX_Brand"},
			{"Boots", "RESPONSIVE_SEARCH_AD", "average", "NX_Brand"},
		})
		v := evalRSAExcellentStrength(tbl)
		assert.Equal(t, verdict.StatusFail, v.Status)
		assert.Equal(t, "1 ad group(s) missing RSAs with excellent ad strength.", v.Text)
		require.Len(t, v.Details, 2)
		assert.Equal(t, "Ad groups missing excellent RSAs", v.Details[1].Title)
		assert.Equal(t, [][]string{{"NX_Brand", "Boots", "1", "0"}}, v.Details[1].Rows)
	})
}

func TestRSAAssetUsage(t *testing.T) {
	headers := []string{"Ad Type", "RSA Headlines Count", "RSA Descriptions Count", "Campaign Name", "Adgroup Name"}

	t.Run("no RSAs is informational", func(t *testing.T) {
		tbl := makeTable("RSA Ad Data", headers, [][]string{
			{"EXPANDED_DYNAMIC_SEARCH_AD", "", "", "NX_Brand", "Shoes"},
		})
		v := evalRSAAssetUsage(tbl)
		assert.Equal(t, verdict.StatusInfo, v.Status)
		assert.Equal(t, "No RSAs found.", v.Text)
	})

	t.Run("full slots pass", func(t *testing.T) {
		tbl := makeTable("RSA Ad Data", headers, [][]string{
			{"Responsive search ad", "15", "4", "NX_Brand", "Shoes"},
		})
		v := evalRSAAssetUsage(tbl)
		assert.Equal(t, verdict.StatusPass, v.Status)
	})

	t.Run("unparseable counts coerce to zero and fail", func(t *testing.T) {
		tbl := makeTable("RSA Ad Data", headers, [][]string{
			{"Responsive search ad", "n/a", "4", "NX_Brand", "Shoes"},
		})
		v := evalRSAAssetUsage(tbl)
		assert.Equal(t, verdict.StatusFail, v.Status)
		assert.Equal(t, "1 campaign/adgroup(s) have RSAs underutilizing headlines/descriptions.", v.Text)
	})
}

func TestAdExtensions(t *testing.T) {
	t.Run("coverage per present column", func(t *testing.T) {
		tbl := makeTable("Extensions Data",
			[]string{"Campaign Name", "Extension Type"},
			[][]string{
				{"NX_Brand", "SITELINK"},
				{"NX_Brand", ""},
				{"NX_Generic", "CALLOUT"},
				{"", "PROMOTION"},
			})
		v := evalAdExtensions(tbl)
		assert.Equal(t, verdict.StatusInfo, v.Status)
		require.True(t, v.HasDetail())
		assert.Equal(t, [][]string{
			{"Campaign Name", "4", "3", "1", "75.0"},
			{"Extension Type", "4", "3", "1", "75.0"},
		}, v.Details[0].Rows)
	})

	t.Run("no recognized columns fail", func(t *testing.T) {
		tbl := makeTable("Extensions Data", []string{"Unrelated"}, nil)
		v := evalAdExtensions(tbl)
		assert.Equal(t, verdict.StatusFail, v.Status)
	})
}

func TestSitelinkDescriptions(t *testing.T) {
	tbl := makeTable("Extensions",
		[]string{"Sitelink description", "Sitelink text"},
		[][]string{
			{"Learn more about us", "About"},
			{"", "Contact"},
			{"", "Careers"},
		})
	v := evalSitelinkDescriptions(tbl)
	assert.Equal(t, verdict.StatusFail, v.Status)
	assert.Equal(t, "2 sitelinks missing descriptions.", v.Text)
}

func TestNegativeDynamicTargeting(t *testing.T) {
	headers := []string{"Campaign type", "Dynamic ad target"}

	tbl := makeTable("DSA", headers, [][]string{
		{"Dynamic Search Ads", "URL contains /shop"},
		{"Dynamic Search Ads", ""},
		{"Search", ""},
	})

	v := evalNegativeDynamicTargeting(tbl)
	assert.Equal(t, verdict.StatusFail, v.Status)
	// Non-dynamic campaigns are never counted.
	assert.Equal(t, "1 DSAs missing targeting rules.", v.Text)
}

func TestAudienceObservationMode(t *testing.T) {
	t.Run("missing setting counts as a violation", func(t *testing.T) {
		tbl := makeTable("Audiences", []string{"Audience setting", "Campaign"}, [][]string{
			{"Observation", "NX_Brand"},
			{"Targeting", "NX_Generic"},
			{"", "NX_Display"},
		})
		v := evalAudienceObservationMode(tbl)
		assert.Equal(t, verdict.StatusFail, v.Status)
		assert.Equal(t, "2 entries missing Observation mode.", v.Text)
	})

	t.Run("all observation passes", func(t *testing.T) {
		tbl := makeTable("Audiences", []string{"Audience setting"}, [][]string{
			{"observation"},
		})
		v := evalAudienceObservationMode(tbl)
		assert.Equal(t, verdict.StatusPass, v.Status)
	})
}

func TestPerformanceMaxAudienceSignals(t *testing.T) {
	tbl := makeTable("Campaigns", []string{"Audience signal"}, [][]string{
		{"Customer list + in-market"},
		{""},
	})
	v := evalPerformanceMaxAudienceSignals(tbl)
	assert.Equal(t, verdict.StatusFail, v.Status)
	assert.Equal(t, "1 missing audience signals.", v.Text)
}

func TestPerformanceMaxVideoAssets(t *testing.T) {
	tbl := makeTable("Campaigns", []string{"Video Asset"}, [][]string{
		{"promo.mp4"},
		{"promo.mp4"},
	})
	v := evalPerformanceMaxVideoAssets(tbl)
	assert.Equal(t, verdict.StatusPass, v.Status)
	assert.Equal(t, "All asset groups have videos.", v.Text)
}

func TestDisplayAdgroupsNoConversions(t *testing.T) {
	headers := []string{"Adgroup Type", "Conversions", "View Through Conversions", "Campaign Name", "Adgroup Name"}

	tbl := makeTable("AdGroup Data", headers, [][]string{
		{"DISPLAY_STANDARD", "0", "5", "NX_Display", "Banners"},   // flagged: no conversions
		{"DISPLAY_STANDARD", "3", "0", "NX_Display", "Remarket"},  // flagged: no view-throughs
		{"DISPLAY_STANDARD", "3", "5", "NX_Display", "Healthy"},
		{"SEARCH_STANDARD", "0", "0", "NX_Brand", "Shoes"},
	})

	v := evalDisplayAdgroupsNoConversions(tbl)
	assert.Equal(t, verdict.StatusFail, v.Status)
	assert.Equal(t, "2 active display ad groups had 0 conversions or view-through conversions:", v.Text)
	require.True(t, v.HasDetail())
	assert.Len(t, v.Details[0].Rows, 2)
}

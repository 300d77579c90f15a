package audit

import "strings"

// ruleSet declares the full battery in dispatch order. Several
// predicates overlap (a question mentioning both "legacy" and "account"
// also mentions "ad groups", for instance), so this order must not be
// rearranged.
func ruleSet(links LinkChecker, charts ChartRenderer) []Rule {
	return []Rule{
		{
			Name: "primary_conversion_action",
			Matches: func(q string) bool {
				return strings.Contains(q, "only one primary conversion action")
			},
			Evaluate: evalPrimaryConversionAction,
		},
		{
			Name: "purchase_conversions_revenue",
			Matches: func(q string) bool {
				return strings.Contains(q, "purchase") && strings.Contains(q, "conversions and revenue")
			},
			Evaluate: evalPurchaseConversions,
		},
		{
			Name: "campaign_name_consistency",
			Matches: func(q string) bool {
				return strings.Contains(q, "campaign names consistent")
			},
			Evaluate: evalCampaignNameConsistency,
		},
		{
			Name: "adgroup_keyword_counts",
			Matches: func(q string) bool {
				return strings.Contains(q, "ad groups") && strings.Contains(q, "20 keywords")
			},
			Evaluate: evalAdgroupKeywordCounts(charts),
		},
		{
			Name: "budget_lost_impression_share",
			Matches: func(q string) bool {
				return strings.Contains(q, "impression share") && strings.Contains(q, "budget")
			},
			Evaluate: evalBudgetLostImpressionShare,
		},
		{
			Name: "legacy_bmm_keywords",
			Matches: func(q string) bool {
				return strings.Contains(q, "legacy bmm keywords")
			},
			Evaluate: evalLegacyBMMKeywords,
		},
		{
			Name: "search_adgroups_no_conversions",
			Matches: func(q string) bool {
				return strings.Contains(q, "search ad groups") &&
					(strings.Contains(q, "no conversions") || strings.Contains(q, "not had any conversions"))
			},
			Evaluate: evalSearchAdgroupsNoConversions,
		},
		{
			Name: "seasonal_keywords",
			Matches: func(q string) bool {
				return strings.Contains(q, "seasonal keywords")
			},
			Evaluate: evalSeasonalKeywords,
		},
		{
			Name: "low_search_volume",
			Matches: func(q string) bool {
				return strings.Contains(q, "low search volume") || strings.Contains(q, "rarely_served")
			},
			Evaluate: evalLowSearchVolume,
		},
		{
			Name: "negative_dynamic_targeting",
			Matches: func(q string) bool {
				return strings.Contains(q, "negative dynamic targeting")
			},
			Evaluate: evalNegativeDynamicTargeting,
		},
		{
			Name: "keyword_final_urls",
			Matches: func(q string) bool {
				return strings.Contains(q, "landing pages") && strings.Contains(q, "final url")
			},
			Evaluate: evalKeywordFinalURLs,
		},
		{
			Name: "broken_final_urls",
			Matches: func(q string) bool {
				return strings.Contains(q, "broken links") || strings.Contains(q, "redirects")
			},
			Evaluate: evalBrokenFinalURLs(links),
		},
		{
			Name: "legacy_expanded_text_ads",
			Matches: func(q string) bool {
				return strings.Contains(q, "legacy expanded text ads") ||
					(strings.Contains(q, "legacy") && strings.Contains(q, "account"))
			},
			Evaluate: evalLegacyExpandedTextAds,
		},
		{
			Name: "rsa_excellent_strength",
			Matches: func(q string) bool {
				return strings.Contains(q, "rsa per ad group") ||
					(strings.Contains(q, "ad strength") && strings.Contains(q, "excellent"))
			},
			Evaluate: evalRSAExcellentStrength,
		},
		{
			Name: "rsa_asset_usage",
			Matches: func(q string) bool {
				return strings.Contains(q, "rsa") &&
					(strings.Contains(q, "headlines") || strings.Contains(q, "descriptions"))
			},
			Evaluate: evalRSAAssetUsage,
		},
		{
			Name: "ad_extensions",
			Matches: func(q string) bool {
				return strings.Contains(q, "ad extensions")
			},
			Evaluate: evalAdExtensions,
		},
		{
			Name: "sitelink_descriptions",
			Matches: func(q string) bool {
				return strings.Contains(q, "sitelink descriptions")
			},
			Evaluate: evalSitelinkDescriptions,
		},
		{
			Name: "audience_observation_mode",
			Matches: func(q string) bool {
				return strings.Contains(q, "affinity") || strings.Contains(q, "in-market")
			},
			Evaluate: evalAudienceObservationMode,
		},
		{
			Name: "pmax_audience_signals",
			Matches: func(q string) bool {
				return strings.Contains(q, "performance max") && strings.Contains(q, "audience signal")
			},
			Evaluate: evalPerformanceMaxAudienceSignals,
		},
		{
			Name: "pmax_video_assets",
			Matches: func(q string) bool {
				return strings.Contains(q, "performance max") && strings.Contains(q, "video")
			},
			Evaluate: evalPerformanceMaxVideoAssets,
		},
		{
			Name: "display_adgroups_no_conversions",
			Matches: func(q string) bool {
				return strings.Contains(q, "display ad groups") &&
					(strings.Contains(q, "no conversions") || strings.Contains(q, "view-through conversions"))
			},
			Evaluate: evalDisplayAdgroupsNoConversions,
		},
	}
}

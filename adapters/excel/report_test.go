package excel

import (
	"path/filepath"
	"testing"

	"adqa/domain/verdict"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteReport(t *testing.T) {
	records := []verdict.Record{
		{
			Question:  "Are campaign names consistent across the account?",
			SheetName: "Campaign Data",
			Verdict:   verdict.Pass("All campaign names are consistent and start with 'NX_'."),
		},
		{
			Question:  "Are there any legacy BMM keywords?",
			SheetName: "Keyword Data",
			Verdict: verdict.Fail("2 legacy BMM keywords found:").WithDetail(verdict.Detail{
				Columns: []string{"Keyword Name", "Campaign Name"},
				Rows: [][]string{
					{"+running +shoes", "NX_Brand"},
					{"+trail +boots", "NX_Brand"},
				},
			}),
		},
		{
			Question: "Is there only one primary conversion action?",
			Verdict:  verdict.Errorf("Sheet 'Conversions Tracking Data' not found in uploaded Excel file."),
		},
	}

	path := filepath.Join(t.TempDir(), "QA_Report.xlsx")
	require.NoError(t, NewReportWriter().Write(records, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Summary")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"Question", "Result Summary"}, rows[0])
	assert.Equal(t, "✅ Campaign Data: All campaign names are consistent and start with 'NX_'.", rows[1][1])
	// Records with detail tables point at their sheet instead of inlining.
	assert.Equal(t, "✅ See sheet 'Q02'", rows[2][1])
	assert.Equal(t, "❌ Sheet 'Conversions Tracking Data' not found in uploaded Excel file.", rows[3][1])

	detail, err := f.GetRows("Q02")
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(detail), 3)
	assert.Equal(t, []string{"Keyword Name", "Campaign Name"}, detail[0])
	assert.Equal(t, []string{"+running +shoes", "NX_Brand"}, detail[1])
}

func TestWriteReportStackedDetails(t *testing.T) {
	records := []verdict.Record{
		{
			Question:  "Is there at least one RSA per ad group with an ad strength of excellent?",
			SheetName: "Ad Data",
			Verdict: verdict.Fail("1 ad group(s) missing RSAs with excellent ad strength.").
				WithDetail(verdict.Detail{
					Title:   "Summary",
					Columns: []string{"Campaign Name", "Adgroup Name"},
					Rows:    [][]string{{"NX_Brand", "Shoes"}},
				}).
				WithDetail(verdict.Detail{
					Title:   "Ad groups missing excellent RSAs",
					Columns: []string{"Campaign Name", "Adgroup Name"},
					Rows:    [][]string{{"NX_Brand", "Shoes"}},
				}),
		},
	}

	path := filepath.Join(t.TempDir(), "QA_Report.xlsx")
	require.NoError(t, NewReportWriter().Write(records, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Q01")
	require.NoError(t, err)
	// Title, header, data, blank separator, then the second table.
	require.GreaterOrEqual(t, len(rows), 6)
	assert.Equal(t, "Summary", rows[0][0])
	assert.Equal(t, "Ad groups missing excellent RSAs", rows[4][0])
}

func TestSummaryText(t *testing.T) {
	pass := verdict.Record{
		Question:  "q",
		SheetName: "Campaign Data",
		Verdict:   verdict.Pass("All good."),
	}
	assert.Equal(t, "✅ Campaign Data: All good.", SummaryText(pass))

	errRec := verdict.Record{
		Question: "q",
		Verdict:  verdict.Errorf("No sheet mapping defined for this question."),
	}
	assert.Equal(t, "❌ No sheet mapping defined for this question.", SummaryText(errRec))
}

func TestDetailSheetNameZeroPadded(t *testing.T) {
	assert.Equal(t, "Q01", detailSheetName(0))
	assert.Equal(t, "Q10", detailSheetName(9))
	assert.Equal(t, "Q21", detailSheetName(20))
}

package excel

import (
	"fmt"

	"adqa/domain/verdict"
	"adqa/internal"
	"adqa/internal/errors"

	"github.com/xuri/excelize/v2"
)

// Excel caps sheet names at 31 characters
const maxSheetNameLen = 31

// ReportWriter renders audit records into a report workbook: a Summary
// sheet with one row per question, plus one detail sheet per record
// whose verdict carries a table, named by zero-padded question index.
type ReportWriter struct {
	log *internal.Logger
}

// NewReportWriter creates a report writer
func NewReportWriter() *ReportWriter {
	return &ReportWriter{log: internal.DefaultLogger}
}

// Write saves the report workbook to outputPath
func (w *ReportWriter) Write(records []verdict.Record, outputPath string) error {
	f := excelize.NewFile()
	defer f.Close()

	summarySheet := "Summary"
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return errors.Wrap(err, "failed to create summary sheet")
	}

	if err := setRow(f, summarySheet, 1, []string{"Question", "Result Summary"}); err != nil {
		return err
	}

	for i, rec := range records {
		summary := SummaryText(rec)

		if rec.Verdict.HasDetail() {
			sheetName := detailSheetName(i)
			if err := w.writeDetailSheet(f, sheetName, rec.Verdict.Details); err != nil {
				summary = fmt.Sprintf("⚠ Error rendering table: %v", err)
			} else {
				summary = fmt.Sprintf("✅ See sheet '%s'", sheetName)
			}
		}

		if err := setRow(f, summarySheet, i+2, []string{rec.Question, summary}); err != nil {
			return err
		}
	}

	if err := f.SaveAs(outputPath); err != nil {
		return errors.Wrapf(err, "failed to save report to %s", outputPath)
	}
	w.log.Info("[ReportWriter] report written to %s (%d records)", outputPath, len(records))
	return nil
}

// writeDetailSheet writes a record's detail tables onto one sheet,
// stacked with a blank row between them
func (w *ReportWriter) writeDetailSheet(f *excelize.File, sheetName string, details []verdict.Detail) error {
	if _, err := f.NewSheet(sheetName); err != nil {
		return err
	}

	rowIdx := 1
	for _, d := range details {
		if d.Title != "" {
			if err := setRow(f, sheetName, rowIdx, []string{d.Title}); err != nil {
				return err
			}
			rowIdx++
		}
		if err := setRow(f, sheetName, rowIdx, d.Columns); err != nil {
			return err
		}
		rowIdx++
		for _, row := range d.Rows {
			if err := setRow(f, sheetName, rowIdx, row); err != nil {
				return err
			}
			rowIdx++
		}
		rowIdx++
	}
	return nil
}

// SummaryText flattens a record into the plain sentence shown in the
// Summary sheet and on the results page.
func SummaryText(rec verdict.Record) string {
	if rec.Verdict.Status == verdict.StatusError {
		// Error sentences already name their context.
		return fmt.Sprintf("❌ %s", rec.Verdict.Text)
	}
	return fmt.Sprintf("✅ %s: %s", rec.SheetName, rec.Verdict.Text)
}

func detailSheetName(recordIdx int) string {
	name := fmt.Sprintf("Q%02d", recordIdx+1)
	if len(name) > maxSheetNameLen {
		name = name[:maxSheetNameLen]
	}
	return name
}

func setRow(f *excelize.File, sheet string, rowIdx int, values []string) error {
	for col, v := range values {
		cellRef, err := excelize.CoordinatesToCellName(col+1, rowIdx)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cellRef, v); err != nil {
			return err
		}
	}
	return nil
}

// Package excel reads account-export workbooks into sheet collections
// and writes audit-report workbooks.
package excel

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"adqa/domain/table"
	"adqa/internal"
	"adqa/internal/coerce"

	"github.com/xuri/excelize/v2"
)

var validExtensions = []string{".xls", ".xlsx"}

// ValidExtension reports whether a filename carries a spreadsheet
// extension this reader accepts
func ValidExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, valid := range validExtensions {
		if ext == valid {
			return true
		}
	}
	return false
}

// WorkbookReader reads every sheet of an Excel workbook
type WorkbookReader struct {
	filePath string
	log      *internal.Logger
}

// NewWorkbookReader creates a reader for the given workbook path
func NewWorkbookReader(filePath string) *WorkbookReader {
	return &WorkbookReader{filePath: filePath, log: internal.DefaultLogger}
}

// ReadSheets parses all sheets into a SheetSet keyed by sheet name
// exactly as it appears in the file, including whitespace. The first
// row of each sheet is the header row; header names are trimmed.
func (r *WorkbookReader) ReadSheets() (table.SheetSet, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("Excel file not found: %s", r.filePath)
	}
	if !ValidExtension(r.filePath) {
		return nil, fmt.Errorf("unsupported file type: %s", filepath.Ext(r.filePath))
	}

	startTime := time.Now()
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()
	r.log.Debug("[WorkbookReader] workbook opened in %.2fms", float64(time.Since(startTime).Nanoseconds())/1e6)

	sheets := make(table.SheetSet)
	for _, sheetName := range f.GetSheetList() {
		rows, err := f.GetRows(sheetName)
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %q: %w", sheetName, err)
		}
		sheets[sheetName] = processRows(sheetName, rows)
	}

	r.log.Info("[WorkbookReader] workbook processed (%d sheets)", len(sheets))
	return sheets, nil
}

// processRows converts raw string rows into a typed table
func processRows(sheetName string, rows [][]string) *table.Table {
	t := &table.Table{Name: sheetName}
	if len(rows) == 0 {
		return t
	}

	headerRow := rows[0]
	t.Headers = make([]string, len(headerRow))
	for i, header := range headerRow {
		t.Headers[i] = strings.TrimSpace(header)
	}

	for i := 1; i < len(rows); i++ {
		row := make(table.Row)
		for j, cell := range rows[i] {
			if j >= len(t.Headers) {
				break
			}
			c := coerce.Cell(cell)
			if c.IsMissing() {
				// Absent cells stay absent; the variant default covers them.
				continue
			}
			row[t.Headers[j]] = c
		}
		t.Rows = append(t.Rows, row)
	}

	return t
}

package ui

import (
	"fmt"
	"net/http"
	"os"
	"path"
	"path/filepath"

	"adqa/adapters/excel"
	"adqa/domain/verdict"
	"adqa/internal/profile"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// 50MB upload limit, matching typical account-export sizes
const maxUploadSize = 50 * 1024 * 1024

// resultView is the per-question row the results template renders
type resultView struct {
	Question string
	Summary  string
	Details  []verdict.Detail
	ChartRef string
}

// pageData feeds the home template
type pageData struct {
	Results     []resultView
	DownloadURL string
	Profiles    []profile.SheetProfile
}

func (s *Server) handleHome(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", pageData{})
}

// handleAudit accepts the workbook upload, runs the full battery, and
// renders the results page with the report download link.
func (s *Server) handleAudit(c *gin.Context) {
	s.log.Info("[handleAudit] starting audit run")

	file, header, err := c.Request.FormFile("workbook")
	if err != nil {
		s.renderUploadError(c, "❌ No file uploaded.")
		return
	}
	file.Close()

	if header.Size > maxUploadSize {
		s.renderUploadError(c, fmt.Sprintf("❌ File size (%.1f MB) exceeds the 50MB limit.", float64(header.Size)/(1024*1024)))
		return
	}

	// Upload validation aborts the run before any rule evaluation.
	if !excel.ValidExtension(header.Filename) {
		s.log.Warn("[handleAudit] rejected upload with extension from %q", header.Filename)
		s.renderUploadError(c, "❌ Uploaded file is not a valid Excel (.xls or .xlsx) file.")
		return
	}

	if err := os.MkdirAll(s.cfg.Paths.MediaDir, 0o755); err != nil {
		s.renderUploadError(c, fmt.Sprintf("❌ Failed to prepare media directory: %v", err))
		return
	}

	savedPath := filepath.Join(s.cfg.Paths.MediaDir,
		fmt.Sprintf("%s_%s", uuid.New().String(), filepath.Base(header.Filename)))
	if err := c.SaveUploadedFile(header, savedPath); err != nil {
		s.renderUploadError(c, fmt.Sprintf("❌ Failed to store uploaded file: %v", err))
		return
	}

	sheets, err := excel.NewWorkbookReader(savedPath).ReadSheets()
	if err != nil {
		s.renderUploadError(c, fmt.Sprintf("❌ %v", err))
		return
	}

	cat, err := s.loader.Load()
	if err != nil {
		s.renderUploadError(c, fmt.Sprintf("❌ Failed to load question catalog: %v", err))
		return
	}

	records := s.runner.Run(cat, sheets)

	data := pageData{
		Results:  toResultViews(records),
		Profiles: profile.Sheets(sheets),
	}

	reportName := fmt.Sprintf("QA_Report_%s.xlsx", uuid.New().String())
	reportPath := filepath.Join(s.cfg.Paths.MediaDir, reportName)
	if err := s.reports.Write(records, reportPath); err != nil {
		s.log.Error("[handleAudit] report write failed: %v", err)
	} else {
		data.DownloadURL = path.Join("/media", reportName)
	}

	c.HTML(http.StatusOK, "home.html", data)
}

// renderUploadError shows a single top-level error record, the same
// shape as a question result
func (s *Server) renderUploadError(c *gin.Context, message string) {
	c.HTML(http.StatusOK, "home.html", pageData{
		Results: []resultView{{Question: "Error", Summary: message}},
	})
}

func toResultViews(records []verdict.Record) []resultView {
	views := make([]resultView, 0, len(records))
	for _, rec := range records {
		views = append(views, resultView{
			Question: rec.Question,
			Summary:  excel.SummaryText(rec),
			Details:  rec.Verdict.Details,
			ChartRef: rec.Verdict.ChartRef,
		})
	}
	return views
}

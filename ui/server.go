// Package ui serves the audit web interface: upload a workbook, run the
// question battery, browse verdicts, download the report.
package ui

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"adqa/adapters/excel"
	"adqa/internal"
	"adqa/internal/audit"
	"adqa/internal/catalog"
	"adqa/internal/config"

	"github.com/gin-gonic/gin"
)

// Server represents the audit web server
type Server struct {
	router  *gin.Engine
	cfg     *config.Config
	loader  catalog.Loader
	runner  *audit.Runner
	reports *excel.ReportWriter
	log     *internal.Logger
}

// NewServer creates the web server with its dependencies wired in.
// templateFS must contain the *.html templates at its root; main hands
// down the embedded filesystem.
func NewServer(cfg *config.Config, loader catalog.Loader, runner *audit.Runner, reports *excel.ReportWriter, templateFS fs.FS) (*Server, error) {
	gin.SetMode(cfg.Server.GinMode)

	funcMap := template.FuncMap{
		"add": func(a, b int) int { return a + b },
	}

	templates, err := template.New("").Funcs(funcMap).ParseFS(templateFS, "*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	s := &Server{
		router:  gin.Default(),
		cfg:     cfg,
		loader:  loader,
		runner:  runner,
		reports: reports,
		log:     internal.DefaultLogger,
	}
	s.router.SetHTMLTemplate(templates)
	s.setupRoutes()

	return s, nil
}

func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleHome)
	s.router.POST("/audit", s.handleAudit)
	s.router.GET("/health", s.handleHealth)

	// Uploads, generated reports, and chart files
	s.router.Static("/media", s.cfg.Paths.MediaDir)
}

// Start starts the HTTP server
func (s *Server) Start() error {
	addr := ":" + s.cfg.Server.Port
	s.log.Info("Starting audit UI server on %s", addr)
	return s.router.Run(addr)
}

// Router exposes the underlying engine for tests
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

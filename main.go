package main

import (
	"embed"
	"io/fs"
	"os"

	"adqa/adapters/chart"
	"adqa/adapters/excel"
	"adqa/adapters/linkcheck"
	"adqa/internal"
	"adqa/internal/audit"
	"adqa/internal/catalog"
	"adqa/internal/config"
	"adqa/ui"

	"github.com/joho/godotenv"
)

//go:embed ui/templates/*.html
var embeddedFiles embed.FS

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	log := internal.DefaultLogger

	cfg, err := config.Load()
	if err != nil {
		log.Error("Failed to load configuration: %v", err)
		os.Exit(1)
	}

	links := linkcheck.New(cfg.LinkCheck.Timeout, cfg.LinkCheck.Concurrency)

	var charts audit.ChartRenderer
	if cfg.Charts.Enabled {
		charts = chart.NewPieRenderer(cfg.Paths.MediaDir, "/media")
	}

	runner := audit.NewRunner(audit.NewEvaluator(links, charts))

	var loader catalog.Loader = catalog.DefaultLoader{}
	if cfg.Paths.QuestionsFile != "" {
		loader = catalog.FileLoader{Path: cfg.Paths.QuestionsFile}
	}

	templateFS, err := fs.Sub(embeddedFiles, "ui/templates")
	if err != nil {
		log.Error("Failed to locate embedded templates: %v", err)
		os.Exit(1)
	}

	server, err := ui.NewServer(cfg, loader, runner, excel.NewReportWriter(), templateFS)
	if err != nil {
		log.Error("Failed to initialize server: %v", err)
		os.Exit(1)
	}

	if err := server.Start(); err != nil {
		log.Error("Server stopped: %v", err)
		os.Exit(1)
	}
}

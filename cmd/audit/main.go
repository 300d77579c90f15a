// Command audit runs the full question battery against a workbook from
// the command line and writes the report without the web UI.
package main

import (
	"flag"
	"fmt"
	"os"

	"adqa/adapters/excel"
	"adqa/adapters/linkcheck"
	"adqa/internal"
	"adqa/internal/audit"
	"adqa/internal/catalog"
	"adqa/internal/config"

	"github.com/joho/godotenv"
)

func main() {
	outputPath := flag.String("o", "QA_Report.xlsx", "path for the report workbook")
	questionsFile := flag.String("questions", "", "optional questions file, one question per line")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: audit [-o report.xlsx] [-questions file] <workbook.xlsx>")
		os.Exit(2)
	}
	workbookPath := flag.Arg(0)

	_ = godotenv.Load()
	log := internal.DefaultLogger

	cfg, err := config.Load()
	if err != nil {
		log.Error("Failed to load configuration: %v", err)
		os.Exit(1)
	}

	var loader catalog.Loader = catalog.DefaultLoader{}
	if *questionsFile != "" {
		loader = catalog.FileLoader{Path: *questionsFile}
	} else if cfg.Paths.QuestionsFile != "" {
		loader = catalog.FileLoader{Path: cfg.Paths.QuestionsFile}
	}

	cat, err := loader.Load()
	if err != nil {
		log.Error("Failed to load question catalog: %v", err)
		os.Exit(1)
	}

	sheets, err := excel.NewWorkbookReader(workbookPath).ReadSheets()
	if err != nil {
		log.Error("Failed to read workbook: %v", err)
		os.Exit(1)
	}

	links := linkcheck.New(cfg.LinkCheck.Timeout, cfg.LinkCheck.Concurrency)

	// Charts render as HTML files for the web UI; a headless run has no
	// media server to point them at, so they are skipped.
	runner := audit.NewRunner(audit.NewEvaluator(links, nil))
	records := runner.Run(cat, sheets)

	for i, rec := range records {
		fmt.Printf("%2d. %s\n    %s\n", i+1, rec.Question, excel.SummaryText(rec))
	}

	if err := excel.NewReportWriter().Write(records, *outputPath); err != nil {
		log.Error("Failed to write report: %v", err)
		os.Exit(1)
	}
	fmt.Printf("\nReport written to %s (%d questions)\n", *outputPath, len(records))
}

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/wegtools/minutes-tracker/internal/common"
	"github.com/wegtools/minutes-tracker/internal/entity"
	"github.com/wegtools/minutes-tracker/internal/export"
	"github.com/wegtools/minutes-tracker/internal/extract"
	"github.com/wegtools/minutes-tracker/internal/ingest"
	"github.com/wegtools/minutes-tracker/internal/parser"
	processor "github.com/wegtools/minutes-tracker/internal/pipeline"
	"github.com/wegtools/minutes-tracker/internal/repository"
	"github.com/wegtools/minutes-tracker/internal/tracker"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	_ = godotenv.Load()
	cfg := common.LoadConfig()

	var (
		inDir       = flag.String("in", "", "directory containing PDF files (required)")
		outDir      = flag.String("out", cfg.Output.OutDir, "output directory")
		enableOCR   = flag.Bool("ocr", cfg.Ingest.EnableOCR, "enable OCR fallback for low-text PDFs")
		minAvgChars = flag.Float64("min-avg-chars", cfg.Ingest.MinAvgCharsPerPage, "layout/OCR trigger threshold (avg chars per page)")
		ocrDPI      = flag.Int("ocr-dpi", cfg.OCR.DPI, "OCR render DPI")
		maxOCRPages = flag.Int("max-ocr-pages", cfg.OCR.MaxPages, "limit OCR pages for large PDFs (0 = no limit)")
		workers     = flag.Int("workers", cfg.Output.Workers, "parallel document workers")
		failFast    = flag.Bool("fail-fast", false, "stop on first document error")
		resultsDB   = flag.String("results-db", cfg.Output.ResultsDB, "sqlite results index path (empty disables)")
	)
	flag.Parse()

	if *inDir == "" {
		printError("Error: --in is required\n")
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg.Ingest.MinAvgCharsPerPage = *minAvgChars
	cfg.Ingest.EnableOCR = *enableOCR
	cfg.OCR.DPI = *ocrDPI
	cfg.OCR.MaxPages = *maxOCRPages
	cfg.Output.OutDir = *outDir
	cfg.Output.Workers = *workers
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	pdfs, err := listPDFs(*inDir)
	if err != nil {
		logger.Error("list input files", "dir", *inDir, "error", err)
		os.Exit(1)
	}
	if len(pdfs) == 0 {
		printError("Error: no PDFs found in %s\n", *inDir)
		os.Exit(1)
	}

	var layout extract.TextExtractor = extract.NewLayoutExtractor(cfg.OCR, logger)
	var ocr extract.TextExtractor
	if cfg.Ingest.EnableOCR {
		ocr = extract.NewOCRExtractor(cfg.OCR, logger)
	}
	pipeline := ingest.NewPipeline(extract.NewPlainExtractor(), layout, ocr, cfg.Ingest, logger)
	prs := parser.New(parser.DefaultRepairConfig(), logger)
	proc := processor.NewProcessor(logger, pipeline, prs, filepath.Join(*outDir, "corpus"))
	batch := processor.NewBatch(proc, logger,
		processor.WithWorkers(cfg.Output.Workers),
		processor.WithFailFast(*failFast),
	)

	ctx := context.Background()
	start := time.Now()
	results, docErrors, err := batch.Run(ctx, pdfs)
	if err != nil {
		logger.Error("batch aborted", "error", err)
		os.Exit(1)
	}

	var allItems []entity.AgendaItem
	var qaRows []entity.QASummary
	for _, res := range results {
		allItems = append(allItems, res.Items...)
		qaRows = append(qaRows, res.QA)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		logger.Error("create output dir", "error", err)
		os.Exit(1)
	}
	if err := writeJSONL(filepath.Join(*outDir, "parsed_tops_detail.jsonl"), asAny(allItems)); err != nil {
		logger.Error("write items jsonl", "error", err)
		os.Exit(1)
	}
	if len(docErrors) > 0 {
		if err := writeJSONL(filepath.Join(*outDir, "errors.jsonl"), asAny(docErrors)); err != nil {
			logger.Error("write errors jsonl", "error", err)
			os.Exit(1)
		}
		logger.Warn("some documents failed", "failed", len(docErrors))
	}

	if *resultsDB != "" {
		if err := saveResults(ctx, *resultsDB, start, pdfs, allItems, qaRows); err != nil {
			logger.Error("save results index", "error", err)
			os.Exit(1)
		}
	}

	exporter := export.NewService(logger)
	trackerRows := tracker.BuildRows(allItems)
	if err := exporter.WriteWorkbook(trackerRows, allItems, qaRows,
		filepath.Join(*outDir, "approved_TOPs_tracker.xlsx")); err != nil {
		logger.Error("export workbook", "error", err)
		os.Exit(1)
	}
	if err := exporter.WriteByYearWorkbook(allItems, qaRows,
		filepath.Join(*outDir, "approved_TOPs_tracker_by_year.xlsx")); err != nil {
		logger.Error("export by-year workbook", "error", err)
		os.Exit(1)
	}

	logger.Info("batch complete",
		"documents", len(results),
		"failed", len(docErrors),
		"items", len(allItems),
		"tracker_rows", len(trackerRows),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
}

func listPDFs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var pdfs []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ".pdf") {
			pdfs = append(pdfs, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(pdfs)
	return pdfs, nil
}

func saveResults(ctx context.Context, path string, start time.Time, pdfs []string, items []entity.AgendaItem, qa []entity.QASummary) error {
	store, err := repository.OpenResultsStore(path)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	runID, err := store.CreateRun(ctx, start, len(pdfs))
	if err != nil {
		return err
	}
	if err := store.SaveItems(ctx, runID, items); err != nil {
		return err
	}
	return store.SaveQASummaries(ctx, runID, qa)
}

func writeJSONL(path string, records []any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	enc := json.NewEncoder(f)
	for _, rec := range records {
		if err := enc.Encode(rec); err != nil {
			return err
		}
	}
	return nil
}

func asAny[T any](in []T) []any {
	out := make([]any, len(in))
	for i, v := range in {
		out[i] = v
	}
	return out
}

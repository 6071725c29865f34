package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/wegtools/minutes-tracker/internal/common"
	"github.com/wegtools/minutes-tracker/internal/corpus"
	"github.com/wegtools/minutes-tracker/internal/extract"
	"github.com/wegtools/minutes-tracker/internal/ingest"
)

// runingest ingests a single PDF and prints (or writes) its corpus
// snapshot, for debugging extraction-strategy selection.
func main() {
	_ = godotenv.Load()
	cfg := common.LoadConfig()

	var (
		file      = flag.String("file", "", "PDF to ingest (required)")
		out       = flag.String("out", "", "snapshot output path (default stdout)")
		enableOCR = flag.Bool("ocr", cfg.Ingest.EnableOCR, "enable OCR fallback")
	)
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if *file == "" {
		logger.Error("usage", "cmd", "runingest -file <pdf>")
		os.Exit(2)
	}

	var ocr extract.TextExtractor
	if *enableOCR {
		ocr = extract.NewOCRExtractor(cfg.OCR, logger)
	}
	pipeline := ingest.NewPipeline(
		extract.NewPlainExtractor(),
		extract.NewLayoutExtractor(cfg.OCR, logger),
		ocr,
		cfg.Ingest,
		logger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	start := time.Now()
	doc, err := pipeline.Ingest(ctx, *file)
	if err != nil {
		logger.Error("ingest failed", "file", *file, "error", err)
		os.Exit(1)
	}

	if *out != "" {
		if err := corpus.Save(doc, *out); err != nil {
			logger.Error("write snapshot", "path", *out, "error", err)
			os.Exit(1)
		}
	} else {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			logger.Error("encode snapshot", "error", err)
			os.Exit(1)
		}
	}

	logger.Info("ingest OK",
		"file", *file,
		"pages", len(doc.Pages),
		"avg_chars_per_page", doc.AvgCharsPerPage,
		"used_layout", doc.UsedLayout,
		"used_ocr", doc.UsedOCR,
		"duration_ms", time.Since(start).Milliseconds(),
	)
}

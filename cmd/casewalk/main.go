// Command casewalk walks a year/month/case-folder tree once and writes one
// JSON object per case to stdout.
//
// Usage:
//
//	casewalk [base-path]
//
// The base path defaults to CASEWALK_BASE_PATH. Extraction is configured
// with EXTRACTOR, EXTRACT_API_URL, PDF_PATTERN and ON_EXTRACT_ERROR.
package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dgallion1/casewalk/internal/config"
	"github.com/dgallion1/casewalk/internal/extract"
	"github.com/dgallion1/casewalk/internal/walker"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	cfg := config.Load()
	if len(os.Args) > 1 {
		cfg.BasePath = os.Args[1]
	}
	if err := cfg.ValidateWalk(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("walk failed", "base_path", cfg.BasePath, "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	ext, err := extract.New(extract.Options{
		Kind:              cfg.Extractor,
		FallbackPdftotext: cfg.PDFFallbackPdftotext,
		URL:               cfg.ExtractAPIURL,
		APIKey:            cfg.ExtractAPIKey,
		Timeout:           cfg.ExtractTimeout,
	})
	if err != nil {
		return err
	}
	stats := extract.NewStats(cfg.StatsWindow)

	policy, err := walker.ParsePolicy(cfg.OnExtractError)
	if err != nil {
		return err
	}
	w, err := walker.New(extract.WithStats(ext, stats), walker.Options{
		Pattern:        cfg.PDFPattern,
		OnExtractError: policy,
	}, log)
	if err != nil {
		return err
	}

	recs, err := w.Walk(ctx, cfg.BasePath)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	for _, rec := range recs {
		if err := enc.Encode(rec); err != nil {
			return err
		}
	}

	snap := stats.Snapshot()
	log.Info("done", "cases", len(recs), "extractions", snap.Count, "extraction_errors", snap.Errors, "p95_ms", snap.P95Ms)
	return nil
}

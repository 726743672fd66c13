package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dgallion1/casewalk/internal/api"
	"github.com/dgallion1/casewalk/internal/config"
	"github.com/dgallion1/casewalk/internal/extract"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.ValidateServer(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	// Uploads are always extracted in-process; scans use the configured extractor.
	stats := extract.NewStats(cfg.StatsWindow)
	local := &extract.PDFExtractor{FallbackPdftotext: cfg.PDFFallbackPdftotext}
	scan, err := extract.New(extract.Options{
		Kind:              cfg.Extractor,
		FallbackPdftotext: cfg.PDFFallbackPdftotext,
		URL:               cfg.ExtractAPIURL,
		APIKey:            cfg.ExtractAPIKey,
		Timeout:           cfg.ExtractTimeout,
	})
	if err != nil {
		log.Error("invalid extractor", "error", err)
		os.Exit(1)
	}

	srv := api.NewServer(extract.WithStats(local, stats), extract.WithStats(scan, stats), stats, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 10 * time.Minute, // scans extract every PDF before answering
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)

		if r, ok := scan.(*extract.RemoteExtractor); ok {
			r.Close()
		}
	}()

	log.Info("starting extractd", "port", cfg.Port, "extractor", cfg.Extractor, "base_path", cfg.BasePath)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port string

	// Auth for the extraction service
	APIKey string

	// Walk
	BasePath       string
	PDFPattern     string
	OnExtractError string

	// Extraction
	Extractor            string // "local" or "remote"
	ExtractAPIURL        string
	ExtractAPIKey        string
	ExtractTimeout       time.Duration // 0 disables the client timeout
	PDFFallbackPdftotext bool

	// Upload limits
	MaxUploadBytes int64

	// Latency stats window
	StatsWindow time.Duration
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8091"),

		APIKey: os.Getenv("CASEWALK_API_KEY"),

		BasePath:       os.Getenv("CASEWALK_BASE_PATH"),
		PDFPattern:     envOr("PDF_PATTERN", `.*\.pdf$`),
		OnExtractError: envOr("ON_EXTRACT_ERROR", "abort"),

		Extractor:            envOr("EXTRACTOR", "local"),
		ExtractAPIURL:        os.Getenv("EXTRACT_API_URL"),
		ExtractAPIKey:        os.Getenv("EXTRACT_API_KEY"),
		ExtractTimeout:       envDuration("EXTRACT_TIMEOUT", 0),
		PDFFallbackPdftotext: envBool("PDF_FALLBACK_PDFTOTEXT", true),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 52428800), // 50MB

		StatsWindow: envDuration("STATS_WINDOW", 1*time.Hour),
	}

	if cfg.ExtractTimeout < 0 {
		cfg.ExtractTimeout = 0
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}
	if cfg.StatsWindow <= 0 {
		cfg.StatsWindow = 1 * time.Hour
	}

	return cfg
}

// ValidateWalk checks the settings needed for a batch walk.
func (c Config) ValidateWalk() error {
	if c.BasePath == "" {
		return fmt.Errorf("CASEWALK_BASE_PATH is required")
	}
	return c.validateExtractor()
}

// ValidateServer checks the settings needed by the extraction service.
func (c Config) ValidateServer() error {
	if c.APIKey == "" {
		return fmt.Errorf("CASEWALK_API_KEY is required")
	}
	return c.validateExtractor()
}

func (c Config) validateExtractor() error {
	switch c.Extractor {
	case "local":
	case "remote":
		if c.ExtractAPIURL == "" {
			return fmt.Errorf("EXTRACT_API_URL is required when EXTRACTOR=remote")
		}
	default:
		return fmt.Errorf("EXTRACTOR must be local or remote, got %q", c.Extractor)
	}
	switch c.OnExtractError {
	case "abort", "skip":
	default:
		return fmt.Errorf("ON_EXTRACT_ERROR must be abort or skip, got %q", c.OnExtractError)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

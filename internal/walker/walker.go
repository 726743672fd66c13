// Package walker builds case records from a year/month/case-folder tree of
// PDF files.
package walker

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dgallion1/casewalk/internal/cases"
	"github.com/dgallion1/casewalk/internal/extract"
)

// ErrNotDirectory is returned when the base path is not a directory.
var ErrNotDirectory = errors.New("base path is not a directory")

// Policy controls what a walk does when a PDF cannot be extracted.
type Policy string

const (
	// PolicyAbort stops the walk and returns an *ExtractionError.
	PolicyAbort Policy = "abort"
	// PolicySkip logs the failure, records it on the case and continues.
	PolicySkip Policy = "skip"
)

// ParsePolicy maps a configuration value to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(strings.ToLower(strings.TrimSpace(s))) {
	case "", PolicyAbort:
		return PolicyAbort, nil
	case PolicySkip:
		return PolicySkip, nil
	default:
		return "", fmt.Errorf("unknown extraction error policy: %q", s)
	}
}

// ExtractionError wraps a failed extraction of one file.
type ExtractionError struct {
	Path string
	Err  error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extract %s: %v", e.Path, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// Options configures a Walker.
type Options struct {
	Pattern        string // PDF selection pattern, DefaultPattern if empty
	OnExtractError Policy
}

// Walker enumerates base/<year>/<month>/<case-folder>/ and extracts the
// selected PDFs of each case folder. A Walker holds no per-walk state and
// may be reused.
type Walker struct {
	extractor extract.TextExtractor
	selector  *Selector
	policy    Policy
	log       *slog.Logger
}

func New(ext extract.TextExtractor, opts Options, log *slog.Logger) (*Walker, error) {
	if ext == nil {
		return nil, errors.New("walker requires an extractor")
	}
	sel, err := NewSelector(opts.Pattern)
	if err != nil {
		return nil, err
	}
	policy := opts.OnExtractError
	if policy == "" {
		policy = PolicyAbort
	}
	if policy != PolicyAbort && policy != PolicySkip {
		return nil, fmt.Errorf("unknown extraction error policy: %q", policy)
	}
	if log == nil {
		log = slog.Default()
	}
	return &Walker{
		extractor: ext,
		selector:  sel,
		policy:    policy,
		log:       log,
	}, nil
}

// Walk returns one record per well-formed case folder under basePath.
// Year, month, case and file enumeration is sorted by name, so walking an
// unchanged tree twice yields identical records.
func (w *Walker) Walk(ctx context.Context, basePath string) ([]cases.CaseRecord, error) {
	info, err := os.Stat(basePath)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, basePath)
	}

	log := w.log.With("base_path", basePath)
	result := []cases.CaseRecord{}

	years, err := numericSubdirs(basePath)
	if err != nil {
		return nil, err
	}
	for _, year := range years {
		yearPath := filepath.Join(basePath, year)
		months, err := numericSubdirs(yearPath)
		if err != nil {
			return nil, err
		}
		for _, month := range months {
			monthPath := filepath.Join(yearPath, month)
			folders, err := subdirs(monthPath)
			if err != nil {
				return nil, err
			}
			for _, folder := range folders {
				if err := ctx.Err(); err != nil {
					return nil, err
				}
				day, caseNumber, err := ParseFolderName(folder)
				if err != nil {
					log.Debug("skipping case folder", "path", filepath.Join(monthPath, folder), "error", err)
					continue
				}
				rec := cases.NewCaseRecord(year, month, day, caseNumber)
				if err := w.fillCase(ctx, rec, filepath.Join(monthPath, folder)); err != nil {
					return nil, err
				}
				result = append(result, *rec)
			}
		}
	}

	log.Info("walk complete", "cases", len(result))
	return result, nil
}

// fillCase extracts the selected PDFs directly inside dir into rec.
func (w *Walker) fillCase(ctx context.Context, rec *cases.CaseRecord, dir string) error {
	log := w.log.With("year", rec.Year, "case_number", rec.CaseNumber)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read case folder %s: %w", dir, err)
	}
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(strings.ToLower(name), ".pdf") || !w.selector.Matches(name) {
			continue
		}
		path := filepath.Join(dir, name)
		if isDir(path, entry) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		text, err := w.extractor.ExtractText(ctx, path)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			if w.policy == PolicySkip {
				log.Warn("extraction failed, skipping file", "file", name, "error", err)
				rec.AddFailure(name, err)
				continue
			}
			return &ExtractionError{Path: path, Err: err}
		}
		rec.AppendFile(name, text)
	}
	log.Debug("case built", "files", len(rec.Files), "failures", len(rec.Failures))
	return nil
}

// numericSubdirs lists the subdirectories of dir whose names are all digits.
func numericSubdirs(dir string) ([]string, error) {
	all, err := subdirs(dir)
	if err != nil {
		return nil, err
	}
	out := all[:0]
	for _, name := range all {
		if isDigits(name) {
			out = append(out, name)
		}
	}
	return out, nil
}

// subdirs lists the subdirectories of dir in name order, following symlinks.
func subdirs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}
	var out []string
	for _, entry := range entries {
		if isDir(filepath.Join(dir, entry.Name()), entry) {
			out = append(out, entry.Name())
		}
	}
	return out, nil
}

func isDir(path string, entry fs.DirEntry) bool {
	if entry.Type()&fs.ModeSymlink == 0 {
		return entry.IsDir()
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

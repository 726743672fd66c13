// Package extract turns PDF files into plain text, either in-process or by
// delegating to a remote extraction service.
package extract

import (
	"context"
	"fmt"
	"time"
)

// TextExtractor extracts the plain text of the PDF at path.
type TextExtractor interface {
	ExtractText(ctx context.Context, path string) (string, error)
}

const (
	KindLocal  = "local"
	KindRemote = "remote"
)

// Options selects and configures an extractor.
type Options struct {
	Kind string

	// Local
	FallbackPdftotext bool

	// Remote
	URL     string
	APIKey  string
	Timeout time.Duration
}

// New builds the extractor named by opts.Kind.
func New(opts Options) (TextExtractor, error) {
	switch opts.Kind {
	case "", KindLocal:
		return &PDFExtractor{FallbackPdftotext: opts.FallbackPdftotext}, nil
	case KindRemote:
		if opts.URL == "" {
			return nil, fmt.Errorf("remote extractor requires a URL")
		}
		return NewRemoteExtractor(opts.URL, opts.APIKey, opts.Timeout), nil
	default:
		return nil, fmt.Errorf("unknown extractor kind: %q", opts.Kind)
	}
}

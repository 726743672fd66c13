package extract

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
)

// PDFExtractor reads PDFs in-process with ledongthuc/pdf. It can fall back
// to pdftotext when the library cannot read a file.
type PDFExtractor struct {
	FallbackPdftotext bool
}

// ExtractText returns the text of every page in order, joined by newlines.
// Pages without text contribute an empty line.
func (e *PDFExtractor) ExtractText(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	text, err := extractPDFText(path)
	if err != nil && e.FallbackPdftotext {
		var fbErr error
		text, fbErr = extractPdftotext(ctx, path)
		if fbErr == nil {
			return text, nil
		}
		return "", fmt.Errorf("extract pdf text: %w (pdftotext: %v)", err, fbErr)
	}
	if err != nil {
		return "", fmt.Errorf("extract pdf text: %w", err)
	}
	return text, nil
}

func extractPDFText(path string) (text string, err error) {
	// The library panics on some malformed files.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("read pdf %s: %v", path, r)
		}
	}()

	f, reader, err := pdflib.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	numPages := reader.NumPage()
	pages := make([]string, 0, numPages)
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("page %d: %w", i, err)
		}
		pages = append(pages, pageText)
	}
	return strings.Join(pages, "\n"), nil
}

func extractPdftotext(ctx context.Context, path string) (string, error) {
	cmd := exec.CommandContext(ctx, "pdftotext", "-layout", "-enc", "UTF-8", path, "-")
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("pdftotext: %w", err)
	}
	return joinPdftotextPages(string(out)), nil
}

// joinPdftotextPages converts pdftotext's form-feed page breaks into the
// newline separator used by the library path.
func joinPdftotextPages(out string) string {
	pages := strings.Split(out, "\f")
	if len(pages) > 1 && strings.TrimSpace(pages[len(pages)-1]) == "" {
		pages = pages[:len(pages)-1]
	}
	for i, p := range pages {
		pages[i] = strings.TrimRight(p, "\n")
	}
	return strings.Join(pages, "\n")
}

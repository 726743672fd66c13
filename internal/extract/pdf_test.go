package extract

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-pdf/fpdf"
)

// writeTestPDF generates a PDF with one page per entry in pages.
func writeTestPDF(t *testing.T, dir, name string, pages ...string) string {
	t.Helper()

	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetFont("Helvetica", "", 12)
	for _, p := range pages {
		doc.AddPage()
		doc.Cell(40, 10, p)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		t.Fatalf("failed to generate test PDF: %v", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write test PDF: %v", err)
	}
	return path
}

func TestPDFExtractor_SinglePage(t *testing.T) {
	path := writeTestPDF(t, t.TempDir(), "hello.pdf", "Hello World")

	e := &PDFExtractor{}
	text, err := e.ExtractText(context.Background(), path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(text, "Hello World") {
		t.Errorf("expected text to contain %q, got %q", "Hello World", text)
	}
}

func TestPDFExtractor_PagesInOrder(t *testing.T) {
	path := writeTestPDF(t, t.TempDir(), "two.pdf", "FirstPage", "SecondPage")

	e := &PDFExtractor{}
	text, err := e.ExtractText(context.Background(), path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first := strings.Index(text, "FirstPage")
	second := strings.Index(text, "SecondPage")
	if first < 0 || second < 0 {
		t.Fatalf("expected both pages in text, got %q", text)
	}
	if first > second {
		t.Errorf("expected pages in order, got %q", text)
	}
	if !strings.Contains(text[first:second], "\n") {
		t.Errorf("expected newline between pages, got %q", text)
	}
}

func TestPDFExtractor_InvalidPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.pdf")
	if err := os.WriteFile(path, []byte("not a pdf"), 0o644); err != nil {
		t.Fatal(err)
	}

	e := &PDFExtractor{}
	if _, err := e.ExtractText(context.Background(), path); err == nil {
		t.Fatal("expected error for invalid PDF")
	}
}

func TestPDFExtractor_InvalidPDFWithFallback(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.pdf")
	if err := os.WriteFile(path, []byte("not a pdf"), 0o644); err != nil {
		t.Fatal(err)
	}

	// Fails whether or not pdftotext is installed.
	e := &PDFExtractor{FallbackPdftotext: true}
	if _, err := e.ExtractText(context.Background(), path); err == nil {
		t.Fatal("expected error for invalid PDF with fallback enabled")
	}
}

func TestPDFExtractor_MissingFile(t *testing.T) {
	e := &PDFExtractor{}
	if _, err := e.ExtractText(context.Background(), "/non/existent/file.pdf"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestPDFExtractor_CancelledContext(t *testing.T) {
	path := writeTestPDF(t, t.TempDir(), "hello.pdf", "Hello World")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	e := &PDFExtractor{}
	if _, err := e.ExtractText(ctx, path); err == nil {
		t.Fatal("expected context error")
	}
}

func TestJoinPdftotextPages(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"page one\n\fpage two\n\f", "page one\npage two"},
		{"only\n", "only"},
		{"a\f\fc\f", "a\n\nc"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := joinPdftotextPages(tt.in); got != tt.want {
			t.Errorf("joinPdftotextPages(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}

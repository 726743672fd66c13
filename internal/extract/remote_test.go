package extract

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestRemoteExtractor_UploadsMultipartFile(t *testing.T) {
	var gotFilename, gotContentType, gotBody, gotAuth, gotMethod string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotAuth = r.Header.Get("Authorization")
		file, header, err := r.FormFile("file")
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		defer file.Close()
		gotFilename = header.Filename
		gotContentType = header.Header.Get("Content-Type")
		b, _ := io.ReadAll(file)
		gotBody = string(b)
		_, _ = w.Write([]byte("extracted text"))
	}))
	defer server.Close()

	path := writeFile(t, t.TempDir(), "doc1.pdf", "%PDF-fake")
	c := NewRemoteExtractor(server.URL, "secret", 5*time.Second)
	defer c.Close()

	text, err := c.ExtractText(context.Background(), path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "extracted text" {
		t.Errorf("expected %q, got %q", "extracted text", text)
	}
	if gotMethod != http.MethodPost {
		t.Errorf("expected POST, got %s", gotMethod)
	}
	if gotFilename != "doc1.pdf" {
		t.Errorf("expected filename %q, got %q", "doc1.pdf", gotFilename)
	}
	if gotContentType != "application/pdf" {
		t.Errorf("expected content type application/pdf, got %q", gotContentType)
	}
	if gotBody != "%PDF-fake" {
		t.Errorf("expected uploaded bytes, got %q", gotBody)
	}
	if gotAuth != "Bearer secret" {
		t.Errorf("expected bearer auth, got %q", gotAuth)
	}
}

func TestRemoteExtractor_NoAPIKeyNoAuthHeader(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte("ok"))
	}))
	defer server.Close()

	path := writeFile(t, t.TempDir(), "a.pdf", "x")
	c := NewRemoteExtractor(server.URL, "", 0)
	if _, err := c.ExtractText(context.Background(), path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("expected no Authorization header, got %q", gotAuth)
	}
}

func TestRemoteExtractor_Non200IsStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad pdf", http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	path := writeFile(t, t.TempDir(), "a.pdf", "x")
	c := NewRemoteExtractor(server.URL, "", 0)
	text, err := c.ExtractText(context.Background(), path)
	if err == nil {
		t.Fatal("expected error for non-200 response")
	}
	if text != "" {
		t.Errorf("expected empty text on failure, got %q", text)
	}
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected *StatusError, got %T", err)
	}
	if statusErr.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("expected status 422, got %d", statusErr.StatusCode)
	}
}

func TestRemoteExtractor_MissingFile(t *testing.T) {
	c := NewRemoteExtractor("http://127.0.0.1:0", "", 0)
	if _, err := c.ExtractText(context.Background(), "/non/existent/file.pdf"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestRemoteExtractor_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	path := writeFile(t, t.TempDir(), "a.pdf", "x")
	c := NewRemoteExtractor(url, "", time.Second)
	_, err := c.ExtractText(context.Background(), path)
	if err == nil {
		t.Fatal("expected transport error")
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		t.Errorf("transport error should not be a StatusError")
	}
}

func TestStatusError_TruncatesBody(t *testing.T) {
	long := make([]byte, 500)
	for i := range long {
		long[i] = 'x'
	}
	e := &StatusError{StatusCode: 500, Body: string(long)}
	if got := len(e.Error()); got > 250 {
		t.Errorf("expected truncated message, got length %d", got)
	}
}

func TestNew(t *testing.T) {
	local, err := New(Options{Kind: KindLocal})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := local.(*PDFExtractor); !ok {
		t.Errorf("expected *PDFExtractor, got %T", local)
	}

	def, err := New(Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := def.(*PDFExtractor); !ok {
		t.Errorf("expected default *PDFExtractor, got %T", def)
	}

	remote, err := New(Options{Kind: KindRemote, URL: "http://localhost/extract"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := remote.(*RemoteExtractor); !ok {
		t.Errorf("expected *RemoteExtractor, got %T", remote)
	}

	if _, err := New(Options{Kind: KindRemote}); err == nil {
		t.Error("expected error for remote without URL")
	}
	if _, err := New(Options{Kind: "ocr"}); err == nil {
		t.Error("expected error for unknown kind")
	}
}

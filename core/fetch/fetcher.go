// Package fetch downloads remote PDF inputs so the rest of the pipeline can
// treat every input as a local file.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"time"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "PDFPipe/1.0 (https://github.com/gaurav-prasanna/pdfpipe)"
)

// HTTPFetcher downloads PDF files via HTTP.
type HTTPFetcher struct {
	client *http.Client
}

// New creates an HTTPFetcher with a sensible timeout.
func New() *HTTPFetcher {
	return &HTTPFetcher{
		client: &http.Client{Timeout: defaultTimeout},
	}
}

// Fetch downloads the given URL into dir and returns the local file path.
// The filename is taken from the URL path, falling back to document.pdf.
func (f *HTTPFetcher) Fetch(ctx context.Context, rawURL string, dir string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", defaultUserAgent)
	req.Header.Set("Accept", "application/pdf")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("unexpected status %d for %s", resp.StatusCode, rawURL)
	}

	local := filepath.Join(dir, filenameFromURL(rawURL))
	out, err := os.Create(local)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", local, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return "", fmt.Errorf("writing %s: %w", local, err)
	}
	return local, nil
}

// filenameFromURL derives a local PDF filename from the URL path.
func filenameFromURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "document.pdf"
	}
	name := path.Base(parsed.Path)
	if name == "" || name == "/" || name == "." {
		return "document.pdf"
	}
	if filepath.Ext(name) == "" {
		name += ".pdf"
	}
	return name
}

// Package fetch loads stats cards from the rendering service.
package fetch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/lazyvibe/readmestats/internal/model"
)

const (
	defaultTimeout = 10 * time.Second
	maxBodyBytes   = 1 << 20
	userAgent      = "readmestats/0.1"
)

// Result is the outcome of loading one card. Err is set when the request
// failed or the service answered with a non-2xx status.
type Result struct {
	Kind     model.ResourceKind
	URL      string
	Status   int
	Bytes    int
	Lines    []string
	Duration time.Duration
	Err      error
}

// OK reports whether the card loaded successfully.
func (r Result) OK() bool {
	return r.Err == nil
}

// Fetcher loads a single card.
type Fetcher interface {
	Fetch(ctx context.Context, loc model.ResourceLocator) Result
}

// HTTPFetcher fetches cards over HTTP.
type HTTPFetcher struct {
	client *http.Client
	logger *slog.Logger
}

// NewHTTPFetcher creates a fetcher with the given request timeout.
func NewHTTPFetcher(timeout time.Duration, logger *slog.Logger) *HTTPFetcher {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &HTTPFetcher{
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// Fetch always returns a Result; failures are reported through Result.Err.
func (f *HTTPFetcher) Fetch(ctx context.Context, loc model.ResourceLocator) (res Result) {
	start := time.Now()
	res = Result{Kind: loc.Kind, URL: loc.URL}
	defer func() {
		res.Duration = time.Since(start)
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, loc.URL, nil)
	if err != nil {
		res.Err = fmt.Errorf("build request: %w", err)
		return res
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "image/svg+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		res.Err = fmt.Errorf("fetch %s: %w", loc.Kind, err)
		f.logger.Debug("card fetch failed", "kind", loc.Kind, "url", loc.URL, "error", err)
		return res
	}
	defer resp.Body.Close()

	res.Status = resp.StatusCode
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		res.Err = fmt.Errorf("read %s: %w", loc.Kind, err)
		return res
	}
	res.Bytes = len(body)
	res.Lines = TextLines(string(body))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		res.Err = fmt.Errorf("fetch %s: unexpected status %d", loc.Kind, resp.StatusCode)
	}
	f.logger.Debug("card fetched",
		"kind", loc.Kind,
		"status", res.Status,
		"bytes", res.Bytes,
		"duration", time.Since(start))
	return res
}

// TextLines returns the visible <text> contents of an SVG card in document
// order, skipping blanks.
func TextLines(svg string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(svg))
	if err != nil {
		return nil
	}
	var lines []string
	doc.Find("text").Each(func(_ int, s *goquery.Selection) {
		line := strings.Join(strings.Fields(s.Text()), " ")
		if line != "" {
			lines = append(lines, line)
		}
	})
	return lines
}

// Package ingestion acquires raw job-description text from files or URLs.
// It only produces plain text; keyword extraction happens in an external
// service and is out of scope here.
package ingestion

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// DefaultTimeout is the HTTP request timeout for URL ingestion.
const DefaultTimeout = 30 * time.Second

// userAgent identifies the scorer to job boards.
const userAgent = "Mozilla/5.0 (compatible; ATSScorer/1.0)"

var (
	// ErrInvalidURL is returned when the URL is malformed.
	ErrInvalidURL = fmt.Errorf("invalid URL")
	// ErrHTTPRequestFailed is returned when the HTTP request fails.
	ErrHTTPRequestFailed = fmt.Errorf("HTTP request failed")
	// ErrContentExtractionFailed is returned when HTML parsing fails.
	ErrContentExtractionFailed = fmt.Errorf("content extraction failed")
)

var blankLinesRe = regexp.MustCompile(`\n{3,}`)

// contentSelectors are tried in order before falling back to the page body.
var contentSelectors = []string{
	".job-description",
	"#job-description",
	".posting-content",
	".job-details",
	"main",
	"article",
	".content",
	"#content",
}

// FromFile reads job-description text from a file.
func FromFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read job description file %s: %w", path, err)
	}
	return string(data), nil
}

// FromURL fetches a job posting page and extracts its readable text.
func FromURL(ctx context.Context, rawURL string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", fmt.Errorf("%w: %s", ErrInvalidURL, rawURL)
	}

	client := &http.Client{Timeout: DefaultTimeout}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHTTPRequestFailed, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHTTPRequestFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: HTTP status %d", ErrHTTPRequestFailed, resp.StatusCode)
	}

	return ExtractText(resp.Body)
}

// ExtractText parses HTML and returns the main readable text, preserving
// line structure so the engine's job-title inference still works.
func ExtractText(r io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrContentExtractionFailed, err)
	}

	doc.Find("nav, footer, header, script, style, noscript, .sidebar, .cookie-banner").Remove()

	var main *goquery.Selection
	for _, selector := range contentSelectors {
		if selection := doc.Find(selector); selection.Length() > 0 {
			main = selection.First()
			break
		}
	}
	if main == nil {
		main = doc.Find("body")
	}

	return cleanLines(main.Text()), nil
}

// cleanLines trims each line and collapses runs of blank lines.
func cleanLines(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	out := strings.Join(lines, "\n")
	out = blankLinesRe.ReplaceAllString(out, "\n\n")
	return strings.TrimSpace(out)
}

// Package scraper implements the generation.ContentFetcher interface by
// retrieving a document over HTTP and normalizing it to plain text.
package scraper

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/net/html"

	"github.com/slidegen/slidegen-api/internal/generation"
)

const (
	// fetchTimeout bounds the single fetch attempt. Scraping failures are
	// not retried; repeated attempts against an unreliable remote site add
	// latency without materially improving odds in-session.
	fetchTimeout = 10 * time.Second

	// maxBodyLength bounds the normalized body text to keep the downstream
	// prompt within the generative backend's context budget. This is a
	// policy constant, not a protocol limit.
	maxBodyLength = 5000

	// ellipsisMarker is appended when the body is truncated.
	ellipsisMarker = "..."

	// maxHTMLBytes caps how much of the raw document is read.
	maxHTMLBytes = 2 << 20

	// fallbackTitle is used when the document has no title or h1 element.
	fallbackTitle = "Untitled"
)

// Fetcher retrieves and normalizes source content over HTTP.
type Fetcher struct {
	client *http.Client
	logger *slog.Logger
}

// Ensure Fetcher implements the generation.ContentFetcher interface
var _ generation.ContentFetcher = (*Fetcher)(nil)

// NewFetcher creates a Fetcher with the default fetch timeout.
// If logger is nil, a default logger will be used.
func NewFetcher(logger *slog.Logger) *Fetcher {
	return NewFetcherWithClient(&http.Client{Timeout: fetchTimeout}, logger)
}

// NewFetcherWithClient creates a Fetcher using the provided HTTP client.
// Intended for tests and callers that need custom transport behavior.
func NewFetcherWithClient(client *http.Client, logger *slog.Logger) *Fetcher {
	if client == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("client cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Fetcher{
		client: client,
		logger: logger.With(slog.String("component", "scraper")),
	}
}

// Fetch implements generation.ContentFetcher. It makes a single GET attempt
// against the URL and returns the normalized document text. Failures are
// classified as timeout, status or network errors; none are retried.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (generation.SourceContent, error) {
	log := f.logger.With(slog.String("url", rawURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return generation.SourceContent{}, fmt.Errorf("%w: %v", generation.ErrFetchNetwork, err)
	}

	// Some sites reject requests without browser-like headers.
	req.Header.Set("User-Agent",
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := f.client.Do(req)
	if err != nil {
		return generation.SourceContent{}, classifyRequestError(err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.Warn("failed to close response body", slog.String("error", err.Error()))
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Debug("source responded with non-2xx status", slog.Int("status", resp.StatusCode))
		return generation.SourceContent{}, fmt.Errorf("%w: %d", generation.ErrFetchStatus, resp.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxHTMLBytes))
	if err != nil {
		return generation.SourceContent{}, classifyRequestError(err)
	}

	title, body := extractDocument(string(raw))
	if len(body) > maxBodyLength {
		// Back up to a rune boundary so the cut never splits a multi-byte
		// character.
		cut := maxBodyLength
		for cut > 0 && !utf8.RuneStart(body[cut]) {
			cut--
		}
		body = body[:cut] + ellipsisMarker
	}

	log.Debug("source fetched",
		slog.Int("html_bytes", len(raw)),
		slog.Int("body_length", len(body)),
		slog.String("title", title))

	return generation.SourceContent{
		Title:     title,
		Body:      body,
		OriginURL: rawURL,
	}, nil
}

// classifyRequestError maps transport failures onto the fetch error
// taxonomy: deadline overruns become timeouts, everything else a network
// error.
func classifyRequestError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", generation.ErrFetchTimeout, err)
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return fmt.Errorf("%w: %v", generation.ErrFetchTimeout, err)
	}

	return fmt.Errorf("%w: %v", generation.ErrFetchNetwork, err)
}

// extractDocument tokenizes the document, dropping script and style
// elements, decoding entities, and collapsing whitespace. The title comes
// from the first <title> element, falling back to the first <h1>, falling
// back to "Untitled".
func extractDocument(doc string) (title, body string) {
	z := html.NewTokenizer(strings.NewReader(doc))

	var bodyBuf, titleBuf, h1Buf strings.Builder
	var skipTag string
	var inTitle, inH1 bool
	var titleDone, h1Done bool

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}

		switch tt {
		case html.StartTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "script", "style":
				skipTag = string(name)
			case "title":
				inTitle = !titleDone
			case "h1":
				inH1 = !h1Done
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case skipTag:
				skipTag = ""
			case "title":
				inTitle = false
				titleDone = true
			case "h1":
				inH1 = false
				h1Done = true
			}

		case html.TextToken:
			if skipTag != "" {
				continue
			}
			// Text() returns the token with entities already decoded.
			text := string(z.Text())
			if inTitle {
				titleBuf.WriteString(text)
			}
			if inH1 {
				h1Buf.WriteString(text)
			}
			bodyBuf.WriteString(text)
			bodyBuf.WriteByte(' ')
		}
	}

	title = collapseWhitespace(titleBuf.String())
	if title == "" {
		title = collapseWhitespace(h1Buf.String())
	}
	if title == "" {
		title = fallbackTitle
	}

	return title, collapseWhitespace(bodyBuf.String())
}

// collapseWhitespace reduces consecutive whitespace to single spaces and
// trims the result.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

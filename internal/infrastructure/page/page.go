// Package page loads web pages and extracts their readable content.
package page

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/tesso57/readmode/internal/domain/browsing"
)

const (
	userAgent    = "Readmode/1.0"
	acceptHeader = "text/html, application/xhtml+xml;q=0.9, */*;q=0.5"
)

// Fetcher implements usecase.PageFetcher over HTTP.
type Fetcher struct {
	Client  *http.Client
	Timeout time.Duration
}

// NewFetcher creates a Fetcher with a per-request timeout.
func NewFetcher(timeout time.Duration) *Fetcher {
	return &Fetcher{Client: http.DefaultClient, Timeout: timeout}
}

// Fetch downloads url and parses it into a page.
func (f *Fetcher) Fetch(ctx context.Context, url string) (browsing.Page, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return browsing.Page{}, errors.New("page url is empty")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if f.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return browsing.Page{}, fmt.Errorf("invalid request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", acceptHeader)

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return browsing.Page{}, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return browsing.Page{}, fmt.Errorf("unexpected status %d for %s", resp.StatusCode, url)
	}
	return Parse(resp.Request.URL.String(), resp.Body)
}

// Parse extracts the title and readable paragraphs from an HTML document.
func Parse(url string, r io.Reader) (browsing.Page, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return browsing.Page{}, fmt.Errorf("failed to parse html: %w", err)
	}

	title := collapse(doc.Find("title").First().Text())
	if title == "" {
		title = collapse(doc.Find("h1").First().Text())
	}
	if title == "" {
		title = url
	}

	return browsing.Page{
		URL:   url,
		Title: title,
		Text:  readableText(doc),
	}, nil
}

func readableText(doc *goquery.Document) []string {
	selection := doc.Find("article p, main p")
	if selection.Length() == 0 {
		selection = doc.Find("body p")
	}

	var paragraphs []string
	selection.Each(func(_ int, s *goquery.Selection) {
		if text := collapse(s.Text()); text != "" {
			paragraphs = append(paragraphs, text)
		}
	})
	if len(paragraphs) > 0 {
		return paragraphs
	}

	body := doc.Find("body").Clone()
	body.Find("script, style, nav, header, footer").Remove()
	if text := collapse(body.Text()); text != "" {
		return []string{text}
	}
	return nil
}

func collapse(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

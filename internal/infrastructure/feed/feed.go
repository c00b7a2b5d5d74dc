// Package feed imports reading list articles from RSS/Atom feeds.
package feed

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/tesso57/readmode/internal/domain/readinglist"
)

const feedAcceptHeader = "application/atom+xml, application/rss+xml, application/feed+json, application/xml;q=0.9, text/xml;q=0.8, */*;q=0.5"

type acceptTransport struct {
	base http.RoundTripper
}

func (t acceptTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	clone := req.Clone(req.Context())
	if clone.Header.Get("Accept") == "" {
		clone.Header.Set("Accept", feedAcceptHeader)
	}
	return base.RoundTrip(clone)
}

// ParserFunc is exposed for testing.
// It allows mocking the feed parsing logic.
var ParserFunc = defaultParser

func defaultParser(ctx context.Context, url string) (*gofeed.Feed, error) {
	fp := gofeed.NewParser()
	fp.UserAgent = "Readmode/1.0"
	fp.Client = &http.Client{Transport: acceptTransport{base: http.DefaultTransport}}
	return fp.ParseURLWithContext(url, ctx)
}

// Articles fetches a feed and maps its entries to reading list items.
func Articles(ctx context.Context, url string, timeout time.Duration) ([]readinglist.Item, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, errors.New("feed url is empty")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	parsed, err := ParserFunc(ctx, url)
	if err != nil {
		return nil, err
	}

	items := make([]readinglist.Item, 0, len(parsed.Items))
	for _, it := range parsed.Items {
		link := strings.TrimSpace(it.Link)
		if link == "" {
			continue
		}
		title := strings.TrimSpace(it.Title)
		if title == "" {
			title = link
		}
		var added time.Time
		if it.PublishedParsed != nil {
			added = *it.PublishedParsed
		} else if it.UpdatedParsed != nil {
			added = *it.UpdatedParsed
		}
		items = append(items, readinglist.Item{
			URL:     link,
			Title:   title,
			Unread:  true,
			AddedAt: added,
		})
	}
	return items, nil
}

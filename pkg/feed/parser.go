// Package feed fetches and parses syndication feeds and turns their
// entries into new, not-yet-seen items for the pipeline.
package feed

import (
	"context"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"

	"github.com/umputun/newsdigest/pkg/domain"
)

// Parser fetches and parses RSS/Atom feeds
type Parser struct {
	client    *http.Client
	userAgent string
	sanitizer *bluemonday.Policy
}

// NewParser creates a new feed parser
func NewParser(timeout time.Duration, userAgent string) *Parser {
	return &Parser{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		userAgent: userAgent,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// Parse fetches the feed at url and converts its entries to items.
// The item GUID is the entry's canonical link; entries without a link get
// an empty GUID and are filtered out later by the ingestor. Description
// and content arrive as HTML from many sources and are reduced to plain
// text, since downstream they only feed LLM prompts and chat messages.
func (p *Parser) Parse(ctx context.Context, url string) ([]domain.Item, error) {
	body, err := p.fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer body.Close()

	feed, err := gofeed.NewParser().Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	items := make([]domain.Item, 0, len(feed.Items))
	for _, entry := range feed.Items {
		item := domain.Item{
			GUID:        entry.Link,
			Title:       strings.TrimSpace(entry.Title),
			Link:        entry.Link,
			Description: p.plainText(entry.Description),
			Content:     p.plainText(entry.Content),
			SourceURL:   url,
		}

		if entry.PublishedParsed != nil {
			item.Published = *entry.PublishedParsed
		} else if entry.UpdatedParsed != nil {
			item.Published = *entry.UpdatedParsed
		}

		items = append(items, item)
	}

	return items, nil
}

// fetch retrieves content from a URL
func (p *Parser) fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", p.userAgent)
	addBrowserHeaders(req)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return resp.Body, nil
}

// plainText strips markup and unescapes entities
func (p *Parser) plainText(s string) string {
	return strings.TrimSpace(html.UnescapeString(p.sanitizer.Sanitize(s)))
}

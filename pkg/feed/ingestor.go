package feed

import (
	"context"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/newsdigest/pkg/domain"
	"github.com/umputun/newsdigest/pkg/ledger"
)

// FeedParser fetches and parses a single feed source
type FeedParser interface {
	Parse(ctx context.Context, url string) ([]domain.Item, error)
}

// Ingestor walks the configured sources in order and collects entries not
// yet present in the seen ledger. New entries are marked seen at ingestion
// time, before classification or summarization get a chance to fail, so an
// entry is fetched at most once per retention window.
type Ingestor struct {
	parser FeedParser
	now    func() time.Time
}

// NewIngestor creates an ingestor on top of the given parser
func NewIngestor(parser FeedParser) *Ingestor {
	return &Ingestor{parser: parser, now: time.Now}
}

// Ingest fetches all sources sequentially and returns newly observed items
// in per-source order, mutating seen in place. A source that fails to fetch
// or parse contributes nothing and does not stop the remaining sources.
func (ing *Ingestor) Ingest(ctx context.Context, sources []string, seen ledger.Ledger) []domain.Item {
	var items []domain.Item

	for _, src := range sources {
		parsed, err := ing.parser.Parse(ctx, src)
		if err != nil {
			lgr.Printf("[WARN] failed to fetch feed %s: %v", src, err)
			continue
		}

		newCount := 0
		for _, item := range parsed {
			if item.GUID == "" {
				// nothing to dedup on, can't track the entry across runs
				lgr.Printf("[DEBUG] skipping entry without link in feed %s: %q", src, item.Title)
				continue
			}
			if seen.Contains(item.GUID) {
				continue
			}

			seen.MarkSeen(item.GUID, ing.now())
			items = append(items, item)
			newCount++
		}

		lgr.Printf("[INFO] feed %s: %d entries, %d new", src, len(parsed), newCount)
	}

	return items
}

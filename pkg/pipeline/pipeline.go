// Package pipeline sequences a single digest run: load the seen ledger,
// prune it, ingest feeds, filter for relevance, summarize, persist the
// ledger and deliver. Each invocation is stateless apart from the ledger
// file; stages isolate their per-item and per-source failures.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/newsdigest/pkg/domain"
	"github.com/umputun/newsdigest/pkg/ledger"
	"github.com/umputun/newsdigest/pkg/llm"
	"github.com/umputun/newsdigest/pkg/notify"
)

//go:generate moq -out mocks/ingestor.go -pkg mocks -skip-ensure -fmt goimports . Ingestor
//go:generate moq -out mocks/classifier.go -pkg mocks -skip-ensure -fmt goimports . Classifier
//go:generate moq -out mocks/summarizer.go -pkg mocks -skip-ensure -fmt goimports . Summarizer
//go:generate moq -out mocks/extractor.go -pkg mocks -skip-ensure -fmt goimports . Extractor
//go:generate moq -out mocks/notifier.go -pkg mocks -skip-ensure -fmt goimports . Notifier

// Ingestor collects not-yet-seen items from feed sources, marking them
// seen in the ledger as they are observed
type Ingestor interface {
	Ingest(ctx context.Context, sources []string, seen ledger.Ledger) []domain.Item
}

// Classifier keeps the items relevant to the configured topic
type Classifier interface {
	FilterRelevant(ctx context.Context, items []domain.Item) []domain.Item
}

// Summarizer produces structured summaries and refreshes the ledger entry
// of each successfully summarized item
type Summarizer interface {
	SummarizeAll(ctx context.Context, items []domain.Item, seen ledger.Ledger) []llm.SummarizedItem
}

// Extractor pulls readable article text from an item link
type Extractor interface {
	Extract(ctx context.Context, url string) (string, error)
}

// Notifier delivers rendered messages to the configured target
type Notifier interface {
	SendAll(ctx context.Context, batch []domain.Notification) int
}

// Params holds everything a Processor needs for a run
type Params struct {
	Ingestor   Ingestor
	Classifier Classifier
	Summarizer Summarizer
	Extractor  Extractor // nil disables content backfill
	Notifier   Notifier

	Feeds      []string
	LedgerPath string
	Retention  time.Duration

	// WebhookConfigured gates the whole run; without a delivery target
	// (and outside dry-run) nothing should execute at all
	WebhookConfigured bool
	DryRun            bool
}

// Processor runs the fixed stage sequence once per invocation
type Processor struct {
	Params
	now func() time.Time
}

// NewProcessor creates a processor with the provided params
func NewProcessor(params Params) *Processor {
	return &Processor{Params: params, now: time.Now}
}

// Run executes one complete pipeline pass. The only run-level failures are
// a missing delivery target (checked before anything else) and a ledger
// that cannot be read or written back; everything else degrades per item
// or per source.
func (p *Processor) Run(ctx context.Context) error {
	if !p.WebhookConfigured && !p.DryRun {
		return fmt.Errorf("webhook url is not set")
	}

	seen, err := ledger.Load(p.LedgerPath)
	if err != nil {
		return fmt.Errorf("load ledger: %w", err)
	}
	before := len(seen)
	seen = seen.Prune(p.now(), p.Retention)
	lgr.Printf("[INFO] ledger loaded with %d entries, %d after pruning", before, len(seen))

	items := p.Ingestor.Ingest(ctx, p.Feeds, seen)
	lgr.Printf("[INFO] ingested %d new items from %d feeds", len(items), len(p.Feeds))

	relevant := p.Classifier.FilterRelevant(ctx, items)

	p.backfillContent(ctx, relevant)

	summarized := p.Summarizer.SummarizeAll(ctx, relevant, seen)

	notifications := make([]domain.Notification, 0, len(summarized))
	for _, s := range summarized {
		notifications = append(notifications, domain.Notification{
			Title: s.Item.Title,
			Link:  s.Item.Link,
			Body:  notify.Format(s.Summary),
		})
	}

	// persist before delivery - a delivery failure must not cause items to
	// be reprocessed on the next run, and delivering without a persisted
	// ledger would duplicate every message then
	if err := seen.Save(p.LedgerPath); err != nil {
		lgr.Printf("[ERROR] failed to save ledger, skipping delivery of %d messages: %v", len(notifications), err)
		return fmt.Errorf("save ledger: %w", err)
	}

	p.Notifier.SendAll(ctx, notifications)
	return nil
}

// backfillContent fills empty item content from the article page, one item
// at a time. Failures leave the item as is - the summarizer still gets the
// title and whatever the feed provided.
func (p *Processor) backfillContent(ctx context.Context, items []domain.Item) {
	if p.Extractor == nil {
		return
	}

	for i := range items {
		if items[i].Content != "" {
			continue
		}
		text, err := p.Extractor.Extract(ctx, items[i].Link)
		if err != nil {
			lgr.Printf("[WARN] failed to extract content for %s: %v", items[i].Link, err)
			continue
		}
		items[i].Content = text
	}
}

package feed

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newsdigest/pkg/domain"
	"github.com/umputun/newsdigest/pkg/ledger"
)

// stubParser returns canned items per source URL
type stubParser struct {
	items map[string][]domain.Item
	errs  map[string]error
	calls []string
}

func (s *stubParser) Parse(_ context.Context, url string) ([]domain.Item, error) {
	s.calls = append(s.calls, url)
	if err := s.errs[url]; err != nil {
		return nil, err
	}
	return s.items[url], nil
}

func TestIngestor_Ingest(t *testing.T) {
	now := time.Unix(1700000000, 0)
	parser := &stubParser{items: map[string][]domain.Item{
		"feed-a": {
			{GUID: "https://example.com/a1", Title: "a1"},
			{GUID: "https://example.com/a2", Title: "a2"},
		},
		"feed-b": {
			{GUID: "https://example.com/b1", Title: "b1"},
		},
	}}

	ing := NewIngestor(parser)
	ing.now = func() time.Time { return now }

	seen := ledger.Ledger{}
	items := ing.Ingest(context.Background(), []string{"feed-a", "feed-b"}, seen)

	require.Len(t, items, 3)
	assert.Equal(t, []string{"a1", "a2", "b1"}, []string{items[0].Title, items[1].Title, items[2].Title},
		"per-source order preserved, sources in configured order")

	// all new items marked seen at ingestion time
	assert.Equal(t, now.Unix(), seen["https://example.com/a1"])
	assert.Equal(t, now.Unix(), seen["https://example.com/a2"])
	assert.Equal(t, now.Unix(), seen["https://example.com/b1"])
}

func TestIngestor_Ingest_SkipsSeenItems(t *testing.T) {
	now := time.Unix(1700000000, 0)
	parser := &stubParser{items: map[string][]domain.Item{
		"feed-a": {
			{GUID: "https://example.com/old", Title: "old"},
			{GUID: "https://example.com/new", Title: "new"},
		},
	}}

	ing := NewIngestor(parser)
	ing.now = func() time.Time { return now }

	seen := ledger.Ledger{"https://example.com/old": now.Add(-time.Hour).Unix()}
	items := ing.Ingest(context.Background(), []string{"feed-a"}, seen)

	require.Len(t, items, 1)
	assert.Equal(t, "new", items[0].Title)
	// timestamp of the already seen item is not refreshed by ingestion
	assert.Equal(t, now.Add(-time.Hour).Unix(), seen["https://example.com/old"])
}

func TestIngestor_Ingest_SecondRunYieldsNothing(t *testing.T) {
	parser := &stubParser{items: map[string][]domain.Item{
		"feed-a": {{GUID: "https://example.com/a", Title: "a"}},
	}}
	ing := NewIngestor(parser)

	seen := ledger.Ledger{}
	first := ing.Ingest(context.Background(), []string{"feed-a"}, seen)
	require.Len(t, first, 1)

	second := ing.Ingest(context.Background(), []string{"feed-a"}, seen)
	assert.Empty(t, second, "same feed content never re-ingested")
}

func TestIngestor_Ingest_SkipsEntriesWithoutLink(t *testing.T) {
	parser := &stubParser{items: map[string][]domain.Item{
		"feed-a": {
			{GUID: "", Title: "no link"},
			{GUID: "https://example.com/ok", Title: "ok"},
		},
	}}
	ing := NewIngestor(parser)

	seen := ledger.Ledger{}
	items := ing.Ingest(context.Background(), []string{"feed-a"}, seen)

	require.Len(t, items, 1)
	assert.Equal(t, "ok", items[0].Title)
	assert.Len(t, seen, 1)
}

func TestIngestor_Ingest_FailedSourceIsIsolated(t *testing.T) {
	parser := &stubParser{
		items: map[string][]domain.Item{
			"feed-good": {{GUID: "https://example.com/g", Title: "g"}},
		},
		errs: map[string]error{"feed-bad": errors.New("boom")},
	}
	ing := NewIngestor(parser)

	seen := ledger.Ledger{}
	items := ing.Ingest(context.Background(), []string{"feed-bad", "feed-good"}, seen)

	require.Len(t, items, 1)
	assert.Equal(t, "g", items[0].Title)
	assert.Equal(t, []string{"feed-bad", "feed-good"}, parser.calls, "remaining sources still fetched")
}

package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/invopop/jsonschema"
	"github.com/sashabaranov/go-openai"

	"github.com/umputun/newsdigest/pkg/config"
	"github.com/umputun/newsdigest/pkg/domain"
	"github.com/umputun/newsdigest/pkg/ledger"
)

// Summarizer produces structured Japanese summaries of relevant items
type Summarizer struct {
	client *openai.Client
	config config.LLMConfig
	schema *jsonschema.Schema
	now    func() time.Time
}

// SummarizedItem pairs an item with its structured summary
type SummarizedItem struct {
	Item    domain.Item
	Summary domain.Summary
}

// NewSummarizer creates a new LLM summarizer. The response format schema is
// reflected once from the summary type so the model output is constrained
// to the exact shape we unmarshal into.
func NewSummarizer(cfg config.LLMConfig) *Summarizer {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}

	reflector := &jsonschema.Reflector{DoNotReference: true}

	return &Summarizer{
		client: openai.NewClientWithConfig(clientConfig),
		config: cfg,
		schema: reflector.Reflect(&domain.Summary{}),
		now:    time.Now,
	}
}

// summaryPromptFmt constrains the output to 3-5 key points in Japanese;
// the shape itself is enforced by the json_schema response format
const summaryPromptFmt = `以下の記事のContentを要約して下さい。
<制約条件>
- 要点は3~5つに絞って下さい。
- 日本語で要約して下さい。
- overall_summaryには記事全体の要約を100字程度で出力して下さい。
- key_pointsには各要点の見出し(title)とまとめ(description)を出力して下さい。
<Content>
%s
%s
`

// SummarizeAll summarizes items in order, marking each successfully
// summarized item seen in the ledger with the current time. A failed item
// is skipped and keeps its ingestion-time ledger entry. Without an API key
// the whole batch is declined.
func (s *Summarizer) SummarizeAll(ctx context.Context, items []domain.Item, seen ledger.Ledger) []SummarizedItem {
	result := []SummarizedItem{}

	if len(items) == 0 {
		return result
	}
	if s.config.APIKey == "" {
		lgr.Printf("[WARN] llm api key is not set, skipping summarization of %d items", len(items))
		return result
	}

	for i := range items {
		item := &items[i]
		summary, err := s.Summarize(ctx, item)
		if err != nil {
			lgr.Printf("[WARN] failed to summarize %q: %v", item.Title, err)
			continue
		}

		seen.MarkSeen(item.GUID, s.now())
		result = append(result, SummarizedItem{Item: *item, Summary: *summary})
	}

	lgr.Printf("[INFO] summarized %d of %d items", len(result), len(items))
	return result
}

// Summarize runs a single structured summarization call over the item's
// title and full content
func (s *Summarizer) Summarize(ctx context.Context, item *domain.Item) (*domain.Summary, error) {
	prompt := fmt.Sprintf(summaryPromptFmt, item.Title, item.Content)
	lgr.Printf("[DEBUG] summary prompt: %s", prompt)

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.config.SummaryModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   "news_summary",
				Schema: s.schema,
				Strict: true,
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("llm request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from llm")
	}

	var summary domain.Summary
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &summary); err != nil {
		return nil, fmt.Errorf("parse summary response: %w", err)
	}
	if summary.OverallSummary == "" {
		return nil, fmt.Errorf("summary response has no overall_summary")
	}

	return &summary, nil
}

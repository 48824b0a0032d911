// Package llm talks to an OpenAI-compatible API for the two generation
// capabilities of the pipeline: binary relevance filtering and structured
// summarization. Both fail closed - a missing API key or a broken response
// drops work instead of aborting the run.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-pkgz/lgr"
	"github.com/sashabaranov/go-openai"

	"github.com/umputun/newsdigest/pkg/config"
	"github.com/umputun/newsdigest/pkg/domain"
)

// Classifier decides whether feed items are about generative AI
type Classifier struct {
	client *openai.Client
	config config.LLMConfig
}

// NewClassifier creates a new LLM relevance classifier
func NewClassifier(cfg config.LLMConfig) *Classifier {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}

	return &Classifier{
		client: openai.NewClientWithConfig(clientConfig),
		config: cfg,
	}
}

// classifyPromptFmt asks for a strict binary verdict on generative-AI
// relevance; the model must answer with the single character 1 or 0
const classifyPromptFmt = `与えられた文章が、以下の条件に合致する場合は1、そうでない場合は0を出力せよ。結果は0か1のみを出力すること。
# 条件
[LLM, 生成AI, 生成系AI, 基盤モデル, 大規模言語モデル, ChatGPT, OpenAI, Gemini, Claude, RAG]のいずれかに関連すること。
# 文章
%s
%s
%s
# 結果
result=
`

// FilterRelevant returns the items judged relevant, preserving input order.
// Without an API key the whole batch is declined and the result is empty.
// A failed or malformed call drops that item only.
func (c *Classifier) FilterRelevant(ctx context.Context, items []domain.Item) []domain.Item {
	relevant := []domain.Item{}

	if len(items) == 0 {
		return relevant
	}
	if c.config.APIKey == "" {
		lgr.Printf("[WARN] llm api key is not set, skipping relevance filtering of %d items", len(items))
		return relevant
	}

	for i := range items {
		item := &items[i]
		ok, err := c.Relevant(ctx, item)
		if err != nil {
			lgr.Printf("[WARN] relevance check failed for %q: %v", item.Title, err)
			continue
		}
		if ok {
			relevant = append(relevant, *item)
		}
	}

	lgr.Printf("[INFO] %d of %d items judged relevant", len(relevant), len(items))
	return relevant
}

// Relevant runs a single binary relevance check over the item's title,
// description and a bounded content excerpt. Any answer other than the
// exact character "1" counts as not relevant.
func (c *Classifier) Relevant(ctx context.Context, item *domain.Item) (bool, error) {
	prompt := fmt.Sprintf(classifyPromptFmt, item.Title, item.Description, item.Excerpt())
	lgr.Printf("[DEBUG] filter prompt: %s", prompt)

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.config.ClassifyModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompt},
		},
	})
	if err != nil {
		return false, fmt.Errorf("llm request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return false, fmt.Errorf("no response from llm")
	}

	verdict := strings.TrimSpace(resp.Choices[0].Message.Content)
	return verdict == "1", nil
}

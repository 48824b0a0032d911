package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
feeds:
  - https://example.com/rss
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"https://example.com/rss"}, cfg.Feeds)
	assert.Equal(t, "https://api.openai.com/v1", cfg.LLM.Endpoint)
	assert.Equal(t, "gpt-3.5-turbo", cfg.LLM.ClassifyModel)
	assert.Equal(t, "gpt-4", cfg.LLM.SummaryModel)
	assert.Equal(t, 30*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, 10*time.Second, cfg.Notify.Timeout)
	assert.Equal(t, "processed_news.json", cfg.Ledger.Path)
	assert.Equal(t, 7, cfg.Ledger.RetentionDays)
	assert.Equal(t, 7*24*time.Hour, cfg.Retention())
	assert.Equal(t, "Newsdigest/1.0", cfg.Feed.UserAgent)
	assert.False(t, cfg.Extraction.Enabled)
	assert.Equal(t, 100, cfg.Extraction.MinTextLength)
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, `
feeds:
  - https://qiita.com/popular-items/feed
  - https://zenn.dev/feed
llm:
  endpoint: http://localhost:11434/v1
  api_key: secret
  classify_model: llama3
  summary_model: llama3:70b
  timeout: 60s
notify:
  webhook_url: https://hooks.slack.com/services/T/B/X
  timeout: 5s
ledger:
  path: /var/lib/newsdigest/seen.json
  retention_days: 14
feed:
  timeout: 10s
  user_agent: CustomAgent/2.0
extraction:
  enabled: true
  timeout: 20s
  min_text_length: 200
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Len(t, cfg.Feeds, 2)
	assert.Equal(t, "http://localhost:11434/v1", cfg.LLM.Endpoint)
	assert.Equal(t, "secret", cfg.LLM.APIKey)
	assert.Equal(t, "llama3", cfg.LLM.ClassifyModel)
	assert.Equal(t, "llama3:70b", cfg.LLM.SummaryModel)
	assert.Equal(t, 60*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, "https://hooks.slack.com/services/T/B/X", cfg.Notify.WebhookURL)
	assert.Equal(t, "/var/lib/newsdigest/seen.json", cfg.Ledger.Path)
	assert.Equal(t, 14, cfg.Ledger.RetentionDays)
	assert.Equal(t, 14*24*time.Hour, cfg.Retention())
	assert.Equal(t, "CustomAgent/2.0", cfg.Feed.UserAgent)
	assert.True(t, cfg.Extraction.Enabled)
	assert.Equal(t, 200, cfg.Extraction.MinTextLength)
}

func TestLoad_EnvExpansion(t *testing.T) {
	t.Setenv("TEST_NEWSDIGEST_KEY", "key-from-env")
	t.Setenv("TEST_NEWSDIGEST_HOOK", "https://hooks.slack.com/services/env")

	path := writeConfig(t, `
feeds:
  - https://example.com/rss
llm:
  api_key: ${TEST_NEWSDIGEST_KEY}
notify:
  webhook_url: ${TEST_NEWSDIGEST_HOOK}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "key-from-env", cfg.LLM.APIKey)
	assert.Equal(t, "https://hooks.slack.com/services/env", cfg.Notify.WebhookURL)
}

func TestLoad_MissingCredentialsAllowed(t *testing.T) {
	// absence of api key and webhook is a per-stage concern, not a load error
	path := writeConfig(t, `
feeds:
  - https://example.com/rss
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, cfg.LLM.APIKey)
	assert.Empty(t, cfg.Notify.WebhookURL)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name   string
		yaml   string
		errMsg string
	}{
		{"no feeds", `ledger: {retention_days: 7}`, "feeds list is required"},
		{"empty feed entry", "feeds:\n  - https://example.com/rss\n  - \"\"", "feeds[1] is empty"},
		{"bad retention", "feeds:\n  - https://example.com/rss\nledger:\n  retention_days: -1", "retention_days"},
		{"short llm timeout", "feeds:\n  - https://example.com/rss\nllm:\n  timeout: 5ms", "llm.timeout"},
		{"bad yaml", `feeds: [`, "parse config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")
}

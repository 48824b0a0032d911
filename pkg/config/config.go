package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Feeds []string `yaml:"feeds" json:"feeds" jsonschema:"required,description=Ordered list of feed URLs to ingest"`

	LLM        LLMConfig        `yaml:"llm" json:"llm" jsonschema:"description=LLM configuration for relevance filtering and summarization"`
	Notify     NotifyConfig     `yaml:"notify" json:"notify" jsonschema:"description=Slack delivery configuration"`
	Ledger     LedgerConfig     `yaml:"ledger" json:"ledger" jsonschema:"description=Seen-items ledger configuration"`
	Feed       FeedConfig       `yaml:"feed" json:"feed" jsonschema:"description=Feed fetching configuration"`
	Extraction ExtractionConfig `yaml:"extraction" json:"extraction" jsonschema:"description=Article content extraction configuration"`
}

// LLMConfig holds settings for the OpenAI-compatible API used by the
// classifier and the summarizer. An empty APIKey is allowed at load time,
// the stages that need it decline to run instead.
type LLMConfig struct {
	Endpoint      string        `yaml:"endpoint" json:"endpoint" jsonschema:"default=https://api.openai.com/v1,description=OpenAI-compatible API endpoint"`
	APIKey        string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (use environment variable expansion)"`
	ClassifyModel string        `yaml:"classify_model" json:"classify_model" jsonschema:"default=gpt-3.5-turbo,description=Model for binary relevance checks"`
	SummaryModel  string        `yaml:"summary_model" json:"summary_model" jsonschema:"default=gpt-4,description=Model for structured summaries"`
	Timeout       time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Request timeout"`
}

// NotifyConfig holds Slack webhook delivery settings
type NotifyConfig struct {
	WebhookURL string        `yaml:"webhook_url" json:"webhook_url" jsonschema:"description=Slack incoming webhook URL (use environment variable expansion)"`
	Timeout    time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=10s,description=Delivery request timeout"`
}

// LedgerConfig holds seen-items store settings
type LedgerConfig struct {
	Path          string `yaml:"path" json:"path" jsonschema:"default=processed_news.json,description=Path of the ledger JSON file"`
	RetentionDays int    `yaml:"retention_days" json:"retention_days" jsonschema:"default=7,minimum=1,description=Days an item stays in the ledger"`
}

// FeedConfig holds feed fetching settings
type FeedConfig struct {
	Timeout   time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Fetch timeout per feed source"`
	UserAgent string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=Newsdigest/1.0,description=User agent for feed requests"`
}

// ExtractionConfig holds article content extraction settings
type ExtractionConfig struct {
	Enabled       bool          `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Backfill empty item content from the article URL before summarizing"`
	Timeout       time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Extraction timeout per article"`
	MinTextLength int           `yaml:"min_text_length" json:"min_text_length" jsonschema:"default=100,description=Minimum extracted text length to consider valid"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables so secrets stay out of the file
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// set defaults for llm
	if cfg.LLM.Endpoint == "" {
		cfg.LLM.Endpoint = "https://api.openai.com/v1"
	}
	if cfg.LLM.ClassifyModel == "" {
		cfg.LLM.ClassifyModel = "gpt-3.5-turbo"
	}
	if cfg.LLM.SummaryModel == "" {
		cfg.LLM.SummaryModel = "gpt-4"
	}
	if cfg.LLM.Timeout == 0 {
		cfg.LLM.Timeout = 30 * time.Second
	}

	// set defaults for notify
	if cfg.Notify.Timeout == 0 {
		cfg.Notify.Timeout = 10 * time.Second
	}

	// set defaults for ledger
	if cfg.Ledger.Path == "" {
		cfg.Ledger.Path = "processed_news.json"
	}
	if cfg.Ledger.RetentionDays == 0 {
		cfg.Ledger.RetentionDays = 7
	}

	// set defaults for feed fetching
	if cfg.Feed.Timeout == 0 {
		cfg.Feed.Timeout = 30 * time.Second
	}
	if cfg.Feed.UserAgent == "" {
		cfg.Feed.UserAgent = "Newsdigest/1.0"
	}

	// set defaults for extraction
	if cfg.Extraction.Timeout == 0 {
		cfg.Extraction.Timeout = 30 * time.Second
	}
	if cfg.Extraction.MinTextLength == 0 {
		cfg.Extraction.MinTextLength = 100
	}

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// validate checks configuration for correctness. Presence of the API key
// and webhook URL is deliberately not checked here - the pipeline handles
// their absence per stage.
func validate(cfg *Config) error {
	if len(cfg.Feeds) == 0 {
		return fmt.Errorf("feeds list is required")
	}
	for i, f := range cfg.Feeds {
		if f == "" {
			return fmt.Errorf("feeds[%d] is empty", i)
		}
	}

	if cfg.Ledger.RetentionDays < 1 {
		return fmt.Errorf("ledger.retention_days must be at least 1")
	}

	if cfg.LLM.Timeout < time.Second {
		return fmt.Errorf("llm.timeout must be at least 1 second")
	}
	if cfg.Notify.Timeout < time.Second {
		return fmt.Errorf("notify.timeout must be at least 1 second")
	}
	if cfg.Feed.Timeout < time.Second {
		return fmt.Errorf("feed.timeout must be at least 1 second")
	}

	if cfg.Extraction.Enabled {
		if cfg.Extraction.Timeout < time.Second {
			return fmt.Errorf("extraction.timeout must be at least 1 second")
		}
		if cfg.Extraction.MinTextLength < 0 {
			return fmt.Errorf("extraction.min_text_length must be non-negative")
		}
	}

	return nil
}

// Retention returns the ledger retention window as a duration
func (c *Config) Retention() time.Duration {
	return time.Duration(c.Ledger.RetentionDays) * 24 * time.Hour
}

package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/newsdigest/pkg/domain"
)

// Slack delivers notifications to a Slack incoming webhook, one POST per
// message. In dry-run mode messages are logged instead of delivered.
type Slack struct {
	webhookURL string
	client     *http.Client
	dryRun     bool
}

// slackMessage is the incoming-webhook payload
type slackMessage struct {
	Text        string `json:"text"`
	UnfurlLinks bool   `json:"unfurl_links"`
}

// NewSlack creates a Slack webhook notifier
func NewSlack(webhookURL string, timeout time.Duration, dryRun bool) *Slack {
	return &Slack{
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: timeout},
		dryRun:     dryRun,
	}
}

// SendAll delivers the batch in order. A failed delivery is logged and the
// remaining messages are still attempted; there are no retries. Returns the
// number of messages delivered.
func (s *Slack) SendAll(ctx context.Context, batch []domain.Notification) int {
	sent := 0
	for i := range batch {
		if err := s.Send(ctx, batch[i]); err != nil {
			lgr.Printf("[WARN] failed to deliver %q: %v", batch[i].Title, err)
			continue
		}
		sent++
	}

	lgr.Printf("[INFO] delivered %d of %d messages", sent, len(batch))
	return sent
}

// Send delivers a single notification. The title doubles as a Slack link
// to the article so the webhook target can unfurl it.
func (s *Slack) Send(ctx context.Context, n domain.Notification) error {
	msg := slackMessage{
		Text:        fmt.Sprintf("*<%s|%s>*\n%s", n.Link, n.Title, n.Body),
		UnfurlLinks: true,
	}

	if s.dryRun {
		lgr.Printf("[INFO] dry-run, would deliver: %s", msg.Text)
		return nil
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("post to webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}

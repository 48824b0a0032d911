// Package notify renders structured summaries into Slack messages and
// delivers them to an incoming webhook.
package notify

import (
	"fmt"
	"strings"

	"github.com/umputun/newsdigest/pkg/domain"
)

// Format renders a structured summary into a single message body: the
// overall synopsis in a code block followed by the key points as a
// numbered list, in summarizer order, with no trailing newline.
// The "：" separator is a full-width colon, the list is aimed at
// Japanese-language summaries.
func Format(summary domain.Summary) string {
	lines := make([]string, 0, len(summary.KeyPoints)+1)
	lines = append(lines, fmt.Sprintf("```\n%s\n```", summary.OverallSummary))

	for i, point := range summary.KeyPoints {
		lines = append(lines, fmt.Sprintf("%d. *%s* ：%s", i+1, point.Title, point.Description))
	}

	return strings.Join(lines, "\n")
}

package domain

import "time"

// Item represents a single feed entry observed during a run.
// GUID is the entry's canonical link and serves as the dedup key;
// items never outlive the run that produced them.
type Item struct {
	GUID        string
	Title       string
	Link        string
	Description string
	Content     string
	SourceURL   string
	Published   time.Time
}

// excerptLen bounds the amount of content passed to the relevance check
const excerptLen = 300

// Excerpt returns the first 300 runes of the item content, used for
// classification prompts where the full text is not needed.
func (i *Item) Excerpt() string {
	runes := []rune(i.Content)
	if len(runes) <= excerptLen {
		return i.Content
	}
	return string(runes[:excerptLen])
}

package domain

// SummaryPoint is a single key point of a structured summary
type SummaryPoint struct {
	Title       string `json:"title" jsonschema:"required,description=Short heading of the key point"`
	Description string `json:"description" jsonschema:"required,description=One-sentence explanation of the key point"`
}

// Summary is the structured output produced by the summarization call:
// a short overall synopsis plus 3-5 ordered key points.
type Summary struct {
	OverallSummary string         `json:"overall_summary" jsonschema:"required,description=Overall synopsis of the article in about 100 characters"`
	KeyPoints      []SummaryPoint `json:"key_points" jsonschema:"required,description=Ordered list of 3-5 key points"`
}

// Notification is a single delivery-ready message for one summarized item
type Notification struct {
	Title string
	Link  string
	Body  string
}

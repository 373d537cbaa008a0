package model

// Trend source identifiers.
const (
	SourceTrend  = "trend"
	SourceNews   = "news"
	SourceSocial = "social"
)

// TrendItem represents a single candidate item from one trend source.
// Score is only meaningful for ranking within one aggregation call.
type TrendItem struct {
	Source      string  `json:"source"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Score       float64 `json:"score"`
	URL         string  `json:"url"`
	Category    string  `json:"category,omitempty"`
}

// TrendBundle is the merged snapshot of all sources for one aggregation call.
// All is sorted by descending score and capped; TopKeywords preserves
// first-seen order and contains no duplicates.
type TrendBundle struct {
	Trending    []TrendItem `json:"trending"`
	News        []TrendItem `json:"news"`
	Social      []TrendItem `json:"social"`
	All         []TrendItem `json:"all"`
	TopKeywords []string    `json:"top_keywords"`
}

// Empty reports whether the bundle carries no items at all.
func (b *TrendBundle) Empty() bool {
	return b == nil || (len(b.Trending) == 0 && len(b.News) == 0 && len(b.Social) == 0)
}

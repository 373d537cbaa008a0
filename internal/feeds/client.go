package feeds

import (
	"context"
	"log/slog"
	"time"

	"trendpilot/internal/config"
	"trendpilot/internal/model"

	"github.com/mmcdole/gofeed"
)

const (
	itemsPerFeed   = 3
	maxDescription = 200
)

// Client polls a fixed list of syndicated news feeds.
type Client struct {
	feeds  []config.FeedConfig
	parser *gofeed.Parser
}

// NewClient creates a feed client for the configured endpoints.
func NewClient(feeds []config.FeedConfig) *Client {
	return &Client{feeds: feeds, parser: gofeed.NewParser()}
}

// Latest fetches every configured feed, keeping at most three entries per
// feed and capping the total at maxItems. A feed that fails to parse is
// skipped; Latest only errors when no feed could be read at all.
func (c *Client) Latest(ctx context.Context, maxItems int) ([]model.TrendItem, error) {
	if maxItems <= 0 {
		maxItems = 15
	}
	items := make([]model.TrendItem, 0, maxItems)
	var lastErr error
	for _, f := range c.feeds {
		feed, err := c.parseWithTimeout(ctx, f.URL)
		if err != nil {
			slog.Warn("feeds: parse failed", "url", f.URL, "error", err)
			lastErr = err
			continue
		}
		for i, entry := range feed.Items {
			if i >= itemsPerFeed {
				break
			}
			items = append(items, model.TrendItem{
				Source:      model.SourceNews,
				Title:       entry.Title,
				Description: truncateRunes(entry.Description, maxDescription),
				Score:       1.0,
				URL:         entry.Link,
				Category:    f.Category,
			})
		}
	}
	if len(items) == 0 && lastErr != nil {
		return nil, lastErr
	}
	if len(items) > maxItems {
		items = items[:maxItems]
	}
	return items, nil
}

func (c *Client) parseWithTimeout(ctx context.Context, url string) (*gofeed.Feed, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return c.parser.ParseURLWithContext(url, ctx)
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

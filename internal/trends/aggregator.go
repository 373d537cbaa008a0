package trends

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"
	"unicode/utf8"

	"trendpilot/internal/model"
)

const (
	maxCombined  = 30
	maxKeywords  = 10
	fetchTimeout = 10 * time.Second
)

// TrendingSource fetches trending search terms.
type TrendingSource interface {
	Trending(ctx context.Context, geo string, count int) ([]model.TrendItem, error)
}

// NewsSource fetches syndicated news items.
type NewsSource interface {
	Latest(ctx context.Context, maxItems int) ([]model.TrendItem, error)
}

// SocialSource searches recent social posts by keyword. HasToken reports
// whether the source is configured at all.
type SocialSource interface {
	HasToken() bool
	SearchRecent(ctx context.Context, keywords []string, maxResults int) ([]model.TrendItem, error)
}

// Aggregator collects trend items from all sources into one ranked bundle.
// Collect never fails: each source degrades to its static sample set.
type Aggregator struct {
	Trending TrendingSource
	News     NewsSource
	Social   SocialSource

	Geo          string
	TrendCount   int
	NewsMax      int
	SocialMax    int
	FetchTimeout time.Duration
}

// Collect fetches all three sources concurrently and merges the results.
// The optional keywords filter only applies to the social source.
func (a *Aggregator) Collect(ctx context.Context, keywords []string) *model.TrendBundle {
	timeout := a.FetchTimeout
	if timeout <= 0 {
		timeout = fetchTimeout
	}

	var trending, news, social []model.TrendItem
	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		trending = a.collectTrending(ctx, timeout)
	}()
	go func() {
		defer wg.Done()
		news = a.collectNews(ctx, timeout)
	}()
	go func() {
		defer wg.Done()
		social = a.collectSocial(ctx, keywords, timeout)
	}()
	wg.Wait()

	merged := make([]model.TrendItem, 0, len(trending)+len(news)+len(social))
	merged = append(merged, trending...)
	merged = append(merged, news...)
	merged = append(merged, social...)
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Score > merged[j].Score
	})

	all := merged
	if len(all) > maxCombined {
		all = all[:maxCombined]
	}
	return &model.TrendBundle{
		Trending:    trending,
		News:        news,
		Social:      social,
		All:         all,
		TopKeywords: extractKeywords(merged, maxKeywords),
	}
}

func (a *Aggregator) collectTrending(ctx context.Context, timeout time.Duration) []model.TrendItem {
	if a.Trending == nil {
		return sampleTrending()
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	items, err := a.Trending.Trending(ctx, a.Geo, a.TrendCount)
	if err != nil {
		slog.Warn("trends: trending source failed, using samples", "error", err)
		return sampleTrending()
	}
	return items
}

func (a *Aggregator) collectNews(ctx context.Context, timeout time.Duration) []model.TrendItem {
	if a.News == nil {
		return sampleNews()
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	items, err := a.News.Latest(ctx, a.NewsMax)
	if err != nil {
		slog.Warn("trends: news source failed, using samples", "error", err)
		return sampleNews()
	}
	return items
}

func (a *Aggregator) collectSocial(ctx context.Context, keywords []string, timeout time.Duration) []model.TrendItem {
	if a.Social == nil || !a.Social.HasToken() {
		return sampleSocial()
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	items, err := a.Social.SearchRecent(ctx, keywords, a.SocialMax)
	if err != nil {
		slog.Warn("trends: social source failed, using samples", "error", err)
		return sampleSocial()
	}
	return items
}

// extractKeywords takes item titles in rank order, skipping empty and
// single-rune titles, deduplicating by exact match in first-seen order.
func extractKeywords(items []model.TrendItem, top int) []string {
	seen := make(map[string]struct{}, top)
	out := make([]string, 0, top)
	for _, it := range items {
		if len(out) >= top {
			break
		}
		title := it.Title
		if title == "" || utf8.RuneCountInString(title) <= 1 {
			continue
		}
		if _, ok := seen[title]; ok {
			continue
		}
		seen[title] = struct{}{}
		out = append(out, title)
	}
	return out
}

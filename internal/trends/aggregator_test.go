package trends

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"trendpilot/internal/model"
)

type fakeTrending struct {
	items []model.TrendItem
	err   error
}

func (f *fakeTrending) Trending(ctx context.Context, geo string, count int) ([]model.TrendItem, error) {
	return f.items, f.err
}

type fakeNews struct {
	items []model.TrendItem
	err   error
}

func (f *fakeNews) Latest(ctx context.Context, maxItems int) ([]model.TrendItem, error) {
	return f.items, f.err
}

type fakeSocial struct {
	token bool
	items []model.TrendItem
	err   error
	calls int
}

func (f *fakeSocial) HasToken() bool { return f.token }

func (f *fakeSocial) SearchRecent(ctx context.Context, keywords []string, max int) ([]model.TrendItem, error) {
	f.calls++
	return f.items, f.err
}

func item(source, title string, score float64) model.TrendItem {
	return model.TrendItem{Source: source, Title: title, Score: score}
}

func TestCollectMergesAndSorts(t *testing.T) {
	a := &Aggregator{
		Trending: &fakeTrending{items: []model.TrendItem{
			item(model.SourceTrend, "low trend", 2.0),
			item(model.SourceTrend, "high trend", 20.0),
		}},
		News: &fakeNews{items: []model.TrendItem{
			item(model.SourceNews, "a headline", 1.0),
		}},
		Social: &fakeSocial{token: true, items: []model.TrendItem{
			item(model.SourceSocial, "viral post", 150.0),
		}},
	}
	b := a.Collect(context.Background(), nil)

	if len(b.All) != 4 {
		t.Fatalf("expected 4 combined items, got %d", len(b.All))
	}
	for i := 1; i < len(b.All); i++ {
		if b.All[i-1].Score < b.All[i].Score {
			t.Errorf("combined list not sorted desc at %d: %v < %v", i, b.All[i-1].Score, b.All[i].Score)
		}
	}
	if b.All[0].Title != "viral post" {
		t.Errorf("expected highest-scored item first, got %q", b.All[0].Title)
	}
}

func TestCollectCapsCombinedAtThirty(t *testing.T) {
	var many []model.TrendItem
	for i := 0; i < 50; i++ {
		many = append(many, item(model.SourceTrend, fmt.Sprintf("term %d", i), float64(50-i)))
	}
	a := &Aggregator{
		Trending: &fakeTrending{items: many},
		News:     &fakeNews{},
		Social:   &fakeSocial{token: true},
	}
	b := a.Collect(context.Background(), nil)
	if len(b.All) != 30 {
		t.Errorf("expected combined list capped at 30, got %d", len(b.All))
	}
	if len(b.Trending) != 50 {
		t.Errorf("per-source list must stay full, got %d", len(b.Trending))
	}
}

func TestCollectKeywords(t *testing.T) {
	items := []model.TrendItem{
		item(model.SourceTrend, "alpha", 10),
		item(model.SourceTrend, "alpha", 9), // duplicate title
		item(model.SourceTrend, "", 8),      // empty title
		item(model.SourceTrend, "x", 7),     // single rune
		item(model.SourceTrend, "beta", 6),
	}
	for i := 0; i < 20; i++ {
		items = append(items, item(model.SourceTrend, fmt.Sprintf("filler %d", i), 5))
	}
	a := &Aggregator{
		Trending: &fakeTrending{items: items},
		News:     &fakeNews{},
		Social:   &fakeSocial{token: true},
	}
	b := a.Collect(context.Background(), nil)

	if len(b.TopKeywords) != 10 {
		t.Fatalf("expected 10 keywords, got %d: %v", len(b.TopKeywords), b.TopKeywords)
	}
	if b.TopKeywords[0] != "alpha" || b.TopKeywords[1] != "beta" {
		t.Errorf("expected first-seen order [alpha beta ...], got %v", b.TopKeywords[:2])
	}
	seen := map[string]bool{}
	for _, kw := range b.TopKeywords {
		if seen[kw] {
			t.Errorf("duplicate keyword %q", kw)
		}
		seen[kw] = true
	}
}

func TestCollectFallsBackOnSourceError(t *testing.T) {
	a := &Aggregator{
		Trending: &fakeTrending{err: errors.New("network down")},
		News:     &fakeNews{err: errors.New("parse error")},
		Social:   &fakeSocial{token: true, err: errors.New("401")},
	}
	b := a.Collect(context.Background(), nil)

	if len(b.Trending) != 5 {
		t.Errorf("expected 5 trending samples, got %d", len(b.Trending))
	}
	if len(b.News) != 3 {
		t.Errorf("expected 3 news samples, got %d", len(b.News))
	}
	if len(b.Social) != 3 {
		t.Errorf("expected 3 social samples, got %d", len(b.Social))
	}
	if len(b.All) == 0 {
		t.Errorf("expected combined fallback items")
	}
}

func TestCollectSocialWithoutTokenNeverCalls(t *testing.T) {
	social := &fakeSocial{token: false, items: []model.TrendItem{item(model.SourceSocial, "should not appear", 1)}}
	a := &Aggregator{
		Trending: &fakeTrending{},
		News:     &fakeNews{},
		Social:   social,
	}
	b := a.Collect(context.Background(), []string{"anything"})

	if social.calls != 0 {
		t.Errorf("social source must not be called without a token, got %d calls", social.calls)
	}
	if len(b.Social) != 3 {
		t.Errorf("expected the fixed 3-item fallback set, got %d", len(b.Social))
	}
}

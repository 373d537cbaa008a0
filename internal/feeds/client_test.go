package feeds

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"trendpilot/internal/config"
)

func rssBody(n int, longDesc bool) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0"?><rss version="2.0"><channel><title>feed</title>`)
	for i := 0; i < n; i++ {
		desc := fmt.Sprintf("description %d", i)
		if longDesc {
			desc = strings.Repeat("x", 300)
		}
		fmt.Fprintf(&b, `<item><title>item %d</title><link>https://example.com/%d</link><description>%s</description></item>`, i, i, desc)
	}
	b.WriteString(`</channel></rss>`)
	return b.String()
}

func TestLatestKeepsThreePerFeedAndTruncates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(rssBody(5, true)))
	}))
	defer srv.Close()

	c := NewClient([]config.FeedConfig{{URL: srv.URL, Category: "IT"}})
	items, err := c.Latest(context.Background(), 15)
	if err != nil {
		t.Fatalf("Latest error: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 items per feed, got %d", len(items))
	}
	for _, it := range items {
		if n := len([]rune(it.Description)); n > 200 {
			t.Errorf("description must be truncated to 200 runes, got %d", n)
		}
		if it.Score != 1.0 {
			t.Errorf("news score must be fixed at 1.0, got %v", it.Score)
		}
		if it.Category != "IT" {
			t.Errorf("category = %q, want IT", it.Category)
		}
	}
}

func TestLatestSkipsBrokenFeed(t *testing.T) {
	good := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(rssBody(2, false)))
	}))
	defer good.Close()
	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusGone)
	}))
	defer bad.Close()

	c := NewClient([]config.FeedConfig{
		{URL: bad.URL, Category: "Broken"},
		{URL: good.URL, Category: "Good"},
	})
	items, err := c.Latest(context.Background(), 15)
	if err != nil {
		t.Fatalf("one broken feed must not fail the fetch: %v", err)
	}
	if len(items) != 2 {
		t.Errorf("expected 2 items from the good feed, got %d", len(items))
	}
}

func TestLatestCapsTotal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(rssBody(3, false)))
	}))
	defer srv.Close()

	feedCfgs := make([]config.FeedConfig, 6)
	for i := range feedCfgs {
		feedCfgs[i] = config.FeedConfig{URL: srv.URL}
	}
	c := NewClient(feedCfgs)
	items, err := c.Latest(context.Background(), 15)
	if err != nil {
		t.Fatalf("Latest error: %v", err)
	}
	if len(items) != 15 {
		t.Errorf("expected total capped at 15, got %d", len(items))
	}
}

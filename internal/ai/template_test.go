package ai

import (
	"context"
	"strings"
	"testing"

	"trendpilot/internal/model"
)

func bundleFixture() *model.TrendBundle {
	return &model.TrendBundle{
		Trending: []model.TrendItem{
			{Source: model.SourceTrend, Title: "AI agents", Score: 10},
		},
		News: []model.TrendItem{
			{Source: model.SourceNews, Title: "AI in 2026: what to watch", Score: 1},
		},
		TopKeywords: []string{"AI agents", "AI in 2026: what to watch"},
	}
}

func TestTemplateDeterministicWithSeed(t *testing.T) {
	bundle := bundleFixture()
	a := NewTemplate(42)
	b := NewTemplate(42)

	for i := 0; i < 5; i++ {
		got, err := a.Generate(context.Background(), "tech", model.PlatformX, bundle)
		if err != nil {
			t.Fatalf("Generate error: %v", err)
		}
		want, err := b.Generate(context.Background(), "tech", model.PlatformX, bundle)
		if err != nil {
			t.Fatalf("Generate error: %v", err)
		}
		if got != want {
			t.Fatalf("same seed produced different output at call %d:\n%q\n%q", i, got, want)
		}
	}
}

func TestTemplateAlwaysHasHashtag(t *testing.T) {
	gen := NewTemplate(1)
	cases := []struct {
		name   string
		genre  string
		bundle *model.TrendBundle
	}{
		{"with bundle", "tech", bundleFixture()},
		{"nil bundle with genre", "finance", nil},
		{"nil bundle no genre", "", nil},
		{"empty bundle", "", &model.TrendBundle{}},
	}
	for _, tc := range cases {
		for i := 0; i < 8; i++ { // cover every template shape
			got, err := gen.Generate(context.Background(), tc.genre, model.PlatformThreads, tc.bundle)
			if err != nil {
				t.Fatalf("%s: Generate error: %v", tc.name, err)
			}
			if strings.TrimSpace(got) == "" {
				t.Fatalf("%s: empty output", tc.name)
			}
			if !hasHashtagToken(got) {
				t.Errorf("%s: output has no hashtag token: %q", tc.name, got)
			}
		}
	}
}

func TestTemplateKeywordFromGenre(t *testing.T) {
	gen := NewTemplate(7)
	got, err := gen.Generate(context.Background(), "crypto trading", model.PlatformX, nil)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if !strings.Contains(got, "crypto trading") {
		t.Errorf("expected genre keyword in output, got: %q", got)
	}
	if !strings.Contains(got, "#cryptotrading") {
		t.Errorf("expected hashtag with spaces stripped, got: %q", got)
	}
}

func TestBuildTrendContext(t *testing.T) {
	ctxStr := buildTrendContext(bundleFixture(), "tech")
	if !strings.Contains(ctxStr, "AI agents") {
		t.Errorf("context missing trending term: %q", ctxStr)
	}
	if !strings.Contains(ctxStr, "Requested genre: tech") {
		t.Errorf("context missing genre: %q", ctxStr)
	}

	empty := buildTrendContext(nil, "")
	if !strings.Contains(empty, "technology") {
		t.Errorf("empty-bundle context should fall back to default genre, got: %q", empty)
	}
}

func hasHashtagToken(s string) bool {
	for _, f := range strings.Fields(s) {
		if strings.HasPrefix(f, "#") && len(f) > 1 {
			return true
		}
	}
	return false
}

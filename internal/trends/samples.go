package trends

import "trendpilot/internal/model"

// Static fallback sets, returned whenever a source is unreachable or not
// configured so that aggregation always completes.

func sampleTrending() []model.TrendItem {
	return []model.TrendItem{
		{Source: model.SourceTrend, Title: "AI agents", Description: "Trending search: AI agents", Score: 10.0},
		{Source: model.SourceTrend, Title: "Generative AI", Description: "Trending search: Generative AI", Score: 9.0},
		{Source: model.SourceTrend, Title: "ChatGPT features", Description: "Trending search: ChatGPT features", Score: 8.0},
		{Source: model.SourceTrend, Title: "Side business 2026", Description: "Trending search: Side business 2026", Score: 7.0},
		{Source: model.SourceTrend, Title: "Learn programming", Description: "Trending search: Learn programming", Score: 6.0},
	}
}

func sampleNews() []model.TrendItem {
	return []model.TrendItem{
		{Source: model.SourceNews, Title: "AI in 2026: what to watch", Description: "Artificial intelligence keeps accelerating and is reshaping one industry after another.", Score: 1.0, Category: "IT"},
		{Source: model.SourceNews, Title: "New ways to monetize social media", Description: "Creators are finding new routes from personal publishing to real revenue.", Score: 1.0, Category: "Business"},
		{Source: model.SourceNews, Title: "Remote work keeps evolving", Description: "Flexible work arrangements continue to diversify across the industry.", Score: 1.0, Category: "Business"},
	}
}

func sampleSocial() []model.TrendItem {
	return []model.TrendItem{
		{Source: model.SourceSocial, Title: "This new AI tool changes everything", Description: "This new AI tool changes everything. Genuinely impressive, my work got 3x faster #AI #productivity #tech", Score: 150.0},
		{Source: model.SourceSocial, Title: "What today's viral posts have in common", Description: "What today's viral posts have in common: relatability, specifics, and timing. That's the whole game. #marketing #socialmedia", Score: 120.0},
		{Source: model.SourceSocial, Title: "A realistic path to side income", Description: "A realistic path to side income, with actual numbers from trying it myself #sidehustle #income", Score: 100.0},
	}
}

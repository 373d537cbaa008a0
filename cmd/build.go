package cmd

import (
	"time"

	"trendpilot/internal/ai"
	"trendpilot/internal/autopilot"
	"trendpilot/internal/config"
	"trendpilot/internal/feeds"
	"trendpilot/internal/gtrends"
	"trendpilot/internal/model"
	"trendpilot/internal/publisher"
	"trendpilot/internal/storage"
	"trendpilot/internal/trends"
	"trendpilot/internal/xapi"
)

// newAggregator wires the three trend sources from configuration.
func newAggregator(cfg config.Config) *trends.Aggregator {
	return &trends.Aggregator{
		Trending:   gtrends.NewClient(cfg.Sources.Trends.BaseURL),
		News:       feeds.NewClient(cfg.Sources.News.Feeds),
		Social:     xapi.NewClient(cfg.Sources.Buzz.BaseURL, cfg.Sources.Buzz.BearerToken),
		Geo:        cfg.Sources.Trends.Geo,
		TrendCount: cfg.Sources.Trends.Count,
		NewsMax:    cfg.Sources.News.MaxItems,
		SocialMax:  cfg.Sources.Buzz.MaxResults,
	}
}

// newGenerator picks backend generation when an OpenAI key is configured,
// else the offline template mode.
func newGenerator(cfg config.Config) ai.Generator {
	if cfg.OpenAI.APIKey != "" {
		return ai.NewOpenAI(ai.Config{
			APIKey:  cfg.OpenAI.APIKey,
			Model:   cfg.OpenAI.Model,
			BaseURL: cfg.OpenAI.BaseURL,
		})
	}
	return ai.NewTemplate(time.Now().UnixNano())
}

// newDispatcher wires the per-platform publishers.
func newDispatcher(cfg config.Config) *publisher.Dispatcher {
	d := publisher.NewDispatcher()
	d.Register(model.PlatformX, &publisher.XPublisher{
		AppKey:    cfg.Platforms.X.APIKey,
		AppSecret: cfg.Platforms.X.APISecret,
		BaseURL:   cfg.Platforms.X.BaseURL,
	})
	d.Register(model.PlatformThreads, &publisher.ThreadsPublisher{
		BaseURL: cfg.Platforms.Threads.BaseURL,
	})
	return d
}

// newRunner assembles the full autopilot pipeline over the given store.
func newRunner(cfg config.Config, store *storage.RedisStore) *autopilot.Runner {
	return &autopilot.Runner{
		Store:      store,
		Collector:  newAggregator(cfg),
		Generator:  newGenerator(cfg),
		Dispatcher: newDispatcher(cfg),
		Platforms:  cfg.Autopilot.Platforms,
	}
}

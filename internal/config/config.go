package config

import "trendpilot/internal/model"

// AppConfig holds application-level settings.
type AppConfig struct {
	LogLevel string `mapstructure:"log_level"`
}

// RedisConfig holds redis connection settings.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// OpenAIConfig controls the generative backend. An empty APIKey selects
// template generation.
type OpenAIConfig struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url"`
}

// TrendsConfig controls the trending-terms source.
type TrendsConfig struct {
	Geo     string `mapstructure:"geo"`
	Count   int    `mapstructure:"count"`
	BaseURL string `mapstructure:"base_url"`
}

// FeedConfig is one news feed endpoint with a display category.
type FeedConfig struct {
	URL      string `mapstructure:"url"`
	Category string `mapstructure:"category"`
}

// NewsConfig controls the syndicated news source.
type NewsConfig struct {
	Feeds    []FeedConfig `mapstructure:"feeds"`
	MaxItems int          `mapstructure:"max_items"`
}

// BuzzConfig controls the social-buzz search source. An empty BearerToken
// routes the source to its fallback sample set.
type BuzzConfig struct {
	BearerToken string `mapstructure:"bearer_token"`
	BaseURL     string `mapstructure:"base_url"`
	MaxResults  int    `mapstructure:"max_results"`
}

// DataSources groups the trend sources.
type DataSources struct {
	Trends TrendsConfig `mapstructure:"trends"`
	News   NewsConfig   `mapstructure:"news"`
	Buzz   BuzzConfig   `mapstructure:"buzz"`
}

// XPlatformConfig holds the developer app credentials for the X platform.
// User access tokens live in the account store, not here.
type XPlatformConfig struct {
	APIKey    string `mapstructure:"api_key"`
	APISecret string `mapstructure:"api_secret"`
	BaseURL   string `mapstructure:"base_url"`
}

// ThreadsPlatformConfig holds endpoint settings for the Threads platform.
type ThreadsPlatformConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

// PlatformsConfig groups per-platform publish settings.
type PlatformsConfig struct {
	X       XPlatformConfig       `mapstructure:"x"`
	Threads ThreadsPlatformConfig `mapstructure:"threads"`
}

// AutopilotConfig controls the orchestration loop and schedule matching.
type AutopilotConfig struct {
	Platforms      []string `mapstructure:"platforms"`
	TimezoneOffset int      `mapstructure:"timezone_offset"` // hours east of UTC
	TickInterval   string   `mapstructure:"tick_interval"`   // duration string, e.g., "1m"
}

// Config is the top-level configuration structure.
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Redis     RedisConfig     `mapstructure:"redis"`
	OpenAI    OpenAIConfig    `mapstructure:"openai"`
	Sources   DataSources     `mapstructure:"sources"`
	Platforms PlatformsConfig `mapstructure:"platforms"`
	Autopilot AutopilotConfig `mapstructure:"autopilot"`
}

// FillDefaults applies default values if not provided.
func (c *Config) FillDefaults() {
	if c.App.LogLevel == "" {
		c.App.LogLevel = "info"
	}
	if c.Redis.Addr == "" {
		c.Redis.Addr = "127.0.0.1:6379"
	}
	if c.OpenAI.Model == "" {
		c.OpenAI.Model = "gpt-4o-mini"
	}
	if c.Sources.Trends.Geo == "" {
		c.Sources.Trends.Geo = "JP"
	}
	if c.Sources.Trends.Count == 0 {
		c.Sources.Trends.Count = 20
	}
	if c.Sources.Trends.BaseURL == "" {
		c.Sources.Trends.BaseURL = "https://trends.google.com"
	}
	if len(c.Sources.News.Feeds) == 0 {
		c.Sources.News.Feeds = []FeedConfig{
			{URL: "https://news.yahoo.co.jp/rss/topics/it.xml", Category: "IT"},
			{URL: "https://news.yahoo.co.jp/rss/topics/business.xml", Category: "Business"},
			{URL: "https://news.yahoo.co.jp/rss/topics/entertainment.xml", Category: "Entertainment"},
			{URL: "https://news.yahoo.co.jp/rss/topics/domestic.xml", Category: "Domestic"},
			{URL: "https://b.hatena.ne.jp/hotentry/it.rss", Category: "Hatena IT"},
		}
	}
	if c.Sources.News.MaxItems == 0 {
		c.Sources.News.MaxItems = 15
	}
	if c.Sources.Buzz.BaseURL == "" {
		c.Sources.Buzz.BaseURL = "https://api.twitter.com"
	}
	if c.Sources.Buzz.MaxResults == 0 {
		c.Sources.Buzz.MaxResults = 10
	}
	if c.Platforms.X.BaseURL == "" {
		c.Platforms.X.BaseURL = "https://api.twitter.com"
	}
	if c.Platforms.Threads.BaseURL == "" {
		c.Platforms.Threads.BaseURL = "https://graph.threads.net/v1.0"
	}
	if len(c.Autopilot.Platforms) == 0 {
		c.Autopilot.Platforms = []string{model.PlatformX, model.PlatformThreads}
	}
	if c.Autopilot.TimezoneOffset == 0 {
		c.Autopilot.TimezoneOffset = 9
	}
	if c.Autopilot.TickInterval == "" {
		c.Autopilot.TickInterval = "1m"
	}
}

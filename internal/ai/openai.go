package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"trendpilot/internal/model"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIGenerator implements Generator using OpenAI Chat Completions API.
type OpenAIGenerator struct {
	client *openai.Client
	model  string
}

type Config struct {
	APIKey  string
	Model   string
	BaseURL string // optional
}

func NewOpenAI(cfg Config) *OpenAIGenerator {
	var c *openai.Client
	if cfg.BaseURL != "" {
		cc := openai.DefaultConfig(cfg.APIKey)
		cc.BaseURL = cfg.BaseURL
		c = openai.NewClientWithConfig(cc)
	} else {
		c = openai.NewClient(cfg.APIKey)
	}
	model := cfg.Model
	if model == "" {
		panic("OpenAI model must be specified")
	}
	return &OpenAIGenerator{client: c, model: model}
}

// Generate builds a trend context from the bundle and asks the model for one
// post honoring the platform's length and hashtag rules.
func (o *OpenAIGenerator) Generate(ctx context.Context, genre, platform string, bundle *model.TrendBundle) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 120*time.Second)
	defer cancel()

	sys := fmt.Sprintf(`
		You are a professional social media copywriter crafting viral posts for %s.
		Use the current trend data below as your source material and produce exactly one post.

		Current trends:
		%s

		Rules:
		- At most %d characters
		- Ride the current trends
		- Be relatable, useful, or surprising
		- Write in a style that drives engagement
		- Include 2-3 hashtags
		- Output only the post text, no explanations
		`, platformName(platform), buildTrendContext(bundle, genre), platformLimit(platform))
	user := "Generate one viral post based on the current trends."

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: sys},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		MaxTokens:   400,
		Temperature: 0.9,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: empty response")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// buildTrendContext flattens the bundle into the prompt context: top trending
// terms, news headlines, and social snippets, plus the genre when given.
func buildTrendContext(bundle *model.TrendBundle, genre string) string {
	if bundle.Empty() {
		g := genre
		if g == "" {
			g = "technology"
		}
		return fmt.Sprintf("Genre: %s (no trend data)", g)
	}

	var parts []string
	if len(bundle.Trending) > 0 {
		terms := make([]string, 0, 8)
		for i, it := range bundle.Trending {
			if i >= 8 {
				break
			}
			terms = append(terms, it.Title)
		}
		parts = append(parts, "Trending searches: "+strings.Join(terms, ", "))
	}
	if len(bundle.News) > 0 {
		lines := make([]string, 0, 5)
		for i, it := range bundle.News {
			if i >= 5 {
				break
			}
			lines = append(lines, "- "+it.Title)
		}
		parts = append(parts, "Latest news:\n"+strings.Join(lines, "\n"))
	}
	if len(bundle.Social) > 0 {
		lines := make([]string, 0, 3)
		for i, it := range bundle.Social {
			if i >= 3 {
				break
			}
			desc := []rune(it.Description)
			if len(desc) > 80 {
				desc = desc[:80]
			}
			lines = append(lines, "- "+string(desc))
		}
		parts = append(parts, "Buzzing posts:\n"+strings.Join(lines, "\n"))
	}
	if genre != "" {
		parts = append(parts, "Requested genre: "+genre)
	}
	if len(parts) == 0 {
		g := genre
		if g == "" {
			g = "technology"
		}
		return fmt.Sprintf("Genre: %s", g)
	}
	return strings.Join(parts, "\n\n")
}

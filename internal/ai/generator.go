package ai

import (
	"context"

	"trendpilot/internal/model"
)

// Generator produces post text for a genre, platform, and trend bundle.
// genre may be empty (the no-genre pass) and bundle may be nil.
type Generator interface {
	Generate(ctx context.Context, genre, platform string, bundle *model.TrendBundle) (string, error)
}

// platformName maps a platform ID to its display name for prompts.
func platformName(platform string) string {
	if platform == model.PlatformX {
		return "X (Twitter)"
	}
	return "Threads"
}

// platformLimit returns the post length limit used in generation prompts.
func platformLimit(platform string) int {
	if platform == model.PlatformX {
		return 280
	}
	return 500
}

package autopilot

import (
	"context"
	"log/slog"
	"time"

	"trendpilot/internal/ai"
	"trendpilot/internal/model"

	"github.com/google/uuid"
)

// Store is the persistence surface the runner needs.
type Store interface {
	GetUser(ctx context.Context, id string) (*model.User, error)
	ListGenres(ctx context.Context, userID string) ([]model.Genre, error)
	ListSNSAccounts(ctx context.Context, userID string) (map[string]model.SNSAccount, error)
	SavePosts(ctx context.Context, posts []*model.Post) error
}

// Collector aggregates one trend bundle per genre. It never fails.
type Collector interface {
	Collect(ctx context.Context, keywords []string) *model.TrendBundle
}

// Dispatcher publishes content to a platform.
type Dispatcher interface {
	Publish(ctx context.Context, platform, content string, acct model.SNSAccount) (*model.PublishOutcome, error)
}

// Runner executes one autopilot run for a user: trends per genre, then
// generate and publish for every genre×platform pair. Pair failures are
// isolated; all post rows commit in one batch at the end of the run.
type Runner struct {
	Store      Store
	Collector  Collector
	Generator  ai.Generator
	Dispatcher Dispatcher
	Platforms  []string
	Now        func() time.Time
}

const contentPreviewLen = 80

// Run returns one result per genre×platform pair. A disabled or unknown user
// is a no-op with an empty result list.
func (r *Runner) Run(ctx context.Context, userID string) ([]model.RunResult, error) {
	now := r.Now
	if now == nil {
		now = time.Now
	}
	results := []model.RunResult{}

	user, err := r.Store.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.AutopilotEnabled {
		return results, nil
	}

	genres, err := r.Store.ListGenres(ctx, userID)
	if err != nil {
		return nil, err
	}
	// No genres still runs the pipeline once, without a topical filter.
	passes := make([]*model.Genre, 0, len(genres))
	for i := range genres {
		passes = append(passes, &genres[i])
	}
	if len(passes) == 0 {
		passes = append(passes, nil)
	}

	accounts, err := r.Store.ListSNSAccounts(ctx, userID)
	if err != nil {
		return nil, err
	}

	var posts []*model.Post
	for _, genre := range passes {
		var genreName string
		var keywords []string
		if genre != nil {
			genreName = genre.Name
			keywords = genre.Keywords
		}

		// One collection shared across all platforms for this genre.
		bundle := r.Collector.Collect(ctx, keywords)

		for _, platform := range r.Platforms {
			res, post := r.runPair(ctx, user, genreName, platform, bundle, accounts, now)
			results = append(results, res)
			if post != nil {
				posts = append(posts, post)
			}
		}
	}

	if err := r.Store.SavePosts(ctx, posts); err != nil {
		slog.Error("autopilot: persist posts failed", "user", userID, "error", err)
		return results, err
	}
	return results, nil
}

// runPair generates, persists-to-buffer, and publishes one genre×platform
// pair. Its errors never escape; they land in the pair's result.
func (r *Runner) runPair(
	ctx context.Context,
	user *model.User,
	genreName, platform string,
	bundle *model.TrendBundle,
	accounts map[string]model.SNSAccount,
	now func() time.Time,
) (model.RunResult, *model.Post) {
	content, err := r.Generator.Generate(ctx, genreName, platform, bundle)
	if err != nil {
		slog.Error("autopilot: generation failed", "genre", genreName, "platform", platform, "error", err)
		return model.RunResult{
			Platform: platform,
			Genre:    genreName,
			Status:   model.RunStatusError,
			Error:    err.Error(),
		}, nil
	}

	post := &model.Post{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Platform:  platform,
		Content:   content,
		Status:    model.PostStatusPending,
		CreatedAt: now(),
	}

	posted := false
	var pairErr string
	acct, connected := accounts[platform]
	if connected && acct.AccessToken != "" {
		outcome, err := r.Dispatcher.Publish(ctx, platform, content, acct)
		switch {
		case err != nil:
			pairErr = err.Error()
			slog.Error("autopilot: publish failed", "platform", platform, "error", err)
		case outcome.Mock:
			slog.Info("autopilot: mock publish", "platform", platform, "message", outcome.Message)
		default:
			posted = true
		}
	} else {
		pairErr = "not connected (" + platform + ")"
		slog.Warn("autopilot: platform not connected", "platform", platform, "user", user.ID)
	}

	if posted {
		t := now()
		post.Status = model.PostStatusPosted
		post.PostedAt = &t
	} else {
		post.Status = model.PostStatusDraft
	}

	status := post.Status
	if pairErr != "" {
		status = model.RunStatusError
	}
	return model.RunResult{
		PostID:         post.ID,
		Platform:       platform,
		Genre:          genreName,
		ContentPreview: preview(content),
		Status:         status,
		Error:          pairErr,
	}, post
}

func preview(s string) string {
	r := []rune(s)
	if len(r) <= contentPreviewLen {
		return s
	}
	return string(r[:contentPreviewLen])
}

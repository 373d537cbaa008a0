package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"trendpilot/internal/model"
)

// ThreadsPublisher posts via the Threads graph API: create a text media
// container, then publish it by ID. Both steps must succeed; there is no
// partial-success state.
type ThreadsPublisher struct {
	BaseURL   string
	ThreadsID string // graph user node, "me" by default

	Transport Doer
}

type threadsIDResponse struct {
	ID string `json:"id"`
}

// Publish runs the two-step container-then-publish flow. An empty access
// token mocks; any HTTP failure after that is a real error.
func (p *ThreadsPublisher) Publish(ctx context.Context, content string, acct model.SNSAccount) (*model.PublishOutcome, error) {
	if strings.TrimSpace(acct.AccessToken) == "" {
		slog.Warn("threads: access token missing, mock publish")
		return mockOutcome(model.PlatformThreads, "access token missing"), nil
	}

	base := strings.TrimRight(p.BaseURL, "/")
	if base == "" {
		base = "https://graph.threads.net/v1.0"
	}
	node := p.ThreadsID
	if node == "" {
		node = "me"
	}

	// Step 1: create the media container.
	q := url.Values{}
	q.Set("media_type", "TEXT")
	q.Set("text", content)
	q.Set("access_token", acct.AccessToken)
	created, err := p.post(ctx, fmt.Sprintf("%s/%s/threads?%s", base, node, q.Encode()))
	if err != nil {
		return nil, fmt.Errorf("threads container: %w", err)
	}
	if created.ID == "" {
		return nil, fmt.Errorf("threads container: missing id in response")
	}

	// Step 2: publish the container.
	q = url.Values{}
	q.Set("creation_id", created.ID)
	q.Set("access_token", acct.AccessToken)
	published, err := p.post(ctx, fmt.Sprintf("%s/%s/threads_publish?%s", base, node, q.Encode()))
	if err != nil {
		return nil, fmt.Errorf("threads publish: %w", err)
	}
	slog.Info("threads: published", "id", published.ID)
	return &model.PublishOutcome{
		Status:     model.PostStatusPosted,
		Platform:   model.PlatformThreads,
		ExternalID: published.ID,
	}, nil
}

func (p *ThreadsPublisher) post(ctx context.Context, u string) (*threadsIDResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, http.NoBody)
	if err != nil {
		return nil, err
	}
	resp, err := p.doer().Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("status=%d body=%s", resp.StatusCode, string(b))
	}
	var out threadsIDResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (p *ThreadsPublisher) doer() Doer {
	if p.Transport != nil {
		return p.Transport
	}
	return &http.Client{Timeout: 15 * time.Second}
}

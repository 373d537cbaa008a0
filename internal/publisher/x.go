package publisher

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"trendpilot/internal/model"

	"github.com/dghubble/oauth1"
)

// XPublisher posts to X with OAuth 1.0a user context. The app key/secret come
// from configuration; the user token pair comes from the account store.
type XPublisher struct {
	AppKey    string
	AppSecret string
	BaseURL   string

	// Transport overrides the OAuth1-signed client when set; tests use it to
	// spy on the remote call.
	Transport Doer
}

type xCreateRequest struct {
	Text string `json:"text"`
}

type xCreateResponse struct {
	Data struct {
		ID   string `json:"id"`
		Text string `json:"text"`
	} `json:"data"`
	Detail string `json:"detail"`
}

// Publish creates one post. Each missing credential short-circuits to a mock
// outcome before any network I/O.
func (p *XPublisher) Publish(ctx context.Context, content string, acct model.SNSAccount) (*model.PublishOutcome, error) {
	if strings.TrimSpace(p.AppKey) == "" || strings.TrimSpace(p.AppSecret) == "" {
		slog.Warn("x: app credentials missing, mock publish")
		return mockOutcome(model.PlatformX, "app credentials missing"), nil
	}
	if strings.TrimSpace(acct.AccessToken) == "" {
		slog.Warn("x: access token missing, mock publish")
		return mockOutcome(model.PlatformX, "access token missing"), nil
	}
	if strings.TrimSpace(acct.AccessTokenSecret) == "" {
		slog.Warn("x: access token secret missing, mock publish")
		return mockOutcome(model.PlatformX, "access token secret missing"), nil
	}

	body, err := json.Marshal(xCreateRequest{Text: content})
	if err != nil {
		return nil, err
	}
	base := strings.TrimRight(p.BaseURL, "/")
	if base == "" {
		base = "https://api.twitter.com"
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, base+"/2/tweets", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.doer(acct).Do(req)
	if err != nil {
		return nil, fmt.Errorf("x publish: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("x publish failed: status=%d body=%s", resp.StatusCode, string(b))
	}
	var out xCreateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("x publish decode: %w", err)
	}
	if out.Data.ID == "" {
		return nil, fmt.Errorf("x publish: missing id in response")
	}
	slog.Info("x: published", "tweet_id", out.Data.ID)
	return &model.PublishOutcome{
		Status:     model.PostStatusPosted,
		Platform:   model.PlatformX,
		ExternalID: out.Data.ID,
		URL:        fmt.Sprintf("https://x.com/i/status/%s", out.Data.ID),
	}, nil
}

// doer returns the spy transport when set, else an OAuth1-signed client for
// the user's token pair.
func (p *XPublisher) doer(acct model.SNSAccount) Doer {
	if p.Transport != nil {
		return p.Transport
	}
	cfg := oauth1.NewConfig(p.AppKey, p.AppSecret)
	token := oauth1.NewToken(acct.AccessToken, acct.AccessTokenSecret)
	client := cfg.Client(oauth1.NoContext, token)
	client.Timeout = 15 * time.Second
	return client
}

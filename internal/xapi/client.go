package xapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"trendpilot/internal/model"
)

// Client is a minimal X API v2 client for bearer-token recent search.
type Client struct {
	baseURL     string
	bearerToken string
	client      *http.Client
}

// NewClient creates a new X search client. baseURL defaults to the public
// API host when empty.
func NewClient(baseURL, bearerToken string) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = "https://api.twitter.com"
	}
	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		bearerToken: bearerToken,
		client:      &http.Client{Timeout: 10 * time.Second},
	}
}

// HasToken reports whether a bearer credential is configured.
func (c *Client) HasToken() bool {
	return strings.TrimSpace(c.bearerToken) != ""
}

type searchResponse struct {
	Data []struct {
		Text          string `json:"text"`
		PublicMetrics struct {
			LikeCount    int `json:"like_count"`
			RetweetCount int `json:"retweet_count"`
			ReplyCount   int `json:"reply_count"`
		} `json:"public_metrics"`
	} `json:"data"`
}

// SearchRecent searches recent posts matching the keywords and scores each
// result by engagement: likes count once, reshares twice, replies half.
func (c *Client) SearchRecent(ctx context.Context, keywords []string, maxResults int) ([]model.TrendItem, error) {
	if maxResults <= 0 {
		maxResults = 10
	}
	if len(keywords) == 0 {
		keywords = []string{"話題", "バズ"}
	}
	query := strings.Join(keywords, " OR ") + " lang:ja -is:retweet"

	q := url.Values{}
	q.Set("query", query)
	q.Set("max_results", strconv.Itoa(maxResults))
	q.Set("tweet.fields", "public_metrics,created_at")
	u := c.baseURL + "/2/tweets/search/recent?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.bearerToken)
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("recent search failed: status=%d body=%s", resp.StatusCode, string(b))
	}

	var sr searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, err
	}
	items := make([]model.TrendItem, 0, len(sr.Data))
	for _, t := range sr.Data {
		items = append(items, model.TrendItem{
			Source:      model.SourceSocial,
			Title:       truncateRunes(t.Text, 60),
			Description: t.Text,
			Score:       engagementScore(t.PublicMetrics.LikeCount, t.PublicMetrics.RetweetCount, t.PublicMetrics.ReplyCount),
		})
	}
	return items, nil
}

// engagementScore weights reshares twice as much as likes; replies count half.
func engagementScore(likes, retweets, replies int) float64 {
	return float64(likes)*1.0 + float64(retweets)*2.0 + float64(replies)*0.5
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

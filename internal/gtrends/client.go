package gtrends

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"trendpilot/internal/model"
)

// Client fetches realtime trending searches from the Google Trends
// daily-trends endpoint. The endpoint is unauthenticated but prefixes its
// JSON body with an XSSI guard that must be stripped before decoding.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a new trends client. baseURL defaults to the public
// Google Trends host when empty.
func NewClient(baseURL string) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = "https://trends.google.com"
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// xssiPrefix guards the daily-trends JSON payload.
const xssiPrefix = ")]}',"

type dailyTrendsResponse struct {
	Default struct {
		TrendingSearchesDays []struct {
			TrendingSearches []struct {
				Title struct {
					Query string `json:"query"`
				} `json:"title"`
				FormattedTraffic string `json:"formattedTraffic"`
			} `json:"trendingSearches"`
		} `json:"trendingSearchesDays"`
	} `json:"default"`
}

// Trending returns up to count trending terms for the geo, scored by
// descending recency rank (count-index) so the freshest term ranks highest.
func (c *Client) Trending(ctx context.Context, geo string, count int) ([]model.TrendItem, error) {
	if count <= 0 {
		count = 20
	}
	q := url.Values{}
	q.Set("hl", "en")
	q.Set("geo", geo)
	q.Set("tz", "0")
	u := c.baseURL + "/trends/api/dailytrends?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("daily trends failed: status=%d body=%s", resp.StatusCode, string(b))
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	body = bytes.TrimPrefix(body, []byte(xssiPrefix))

	var dt dailyTrendsResponse
	if err := json.Unmarshal(body, &dt); err != nil {
		return nil, fmt.Errorf("daily trends decode: %w", err)
	}

	items := make([]model.TrendItem, 0, count)
	for _, day := range dt.Default.TrendingSearchesDays {
		for _, ts := range day.TrendingSearches {
			if len(items) >= count {
				break
			}
			title := strings.TrimSpace(ts.Title.Query)
			if title == "" {
				continue
			}
			items = append(items, model.TrendItem{
				Source:      model.SourceTrend,
				Title:       title,
				Description: fmt.Sprintf("Trending search: %s", title),
				Score:       float64(count - len(items)),
				URL:         fmt.Sprintf("%s/trending?geo=%s", c.baseURL, geo),
			})
		}
	}
	return items, nil
}

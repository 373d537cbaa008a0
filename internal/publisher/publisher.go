package publisher

import (
	"context"
	"fmt"
	"net/http"

	"trendpilot/internal/model"
)

// Doer executes a single HTTP request. Tests substitute a spy transport.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Publisher posts content to one platform using the given credential.
// A missing-configuration state returns a mock outcome without touching the
// network; a genuine remote rejection returns an error, never a mock.
type Publisher interface {
	Publish(ctx context.Context, content string, acct model.SNSAccount) (*model.PublishOutcome, error)
}

// Dispatcher routes publish calls to per-platform publishers.
type Dispatcher struct {
	publishers map[string]Publisher
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{publishers: make(map[string]Publisher)}
}

// Register binds a publisher to a platform ID.
func (d *Dispatcher) Register(platform string, p Publisher) {
	d.publishers[platform] = p
}

// Publish dispatches to the platform's publisher.
func (d *Dispatcher) Publish(ctx context.Context, platform, content string, acct model.SNSAccount) (*model.PublishOutcome, error) {
	p, ok := d.publishers[platform]
	if !ok {
		return nil, fmt.Errorf("unsupported platform: %s", platform)
	}
	return p.Publish(ctx, content, acct)
}

func mockOutcome(platform, message string) *model.PublishOutcome {
	return &model.PublishOutcome{
		Mock:     true,
		Status:   model.PostStatusPosted,
		Platform: platform,
		Message:  message,
	}
}

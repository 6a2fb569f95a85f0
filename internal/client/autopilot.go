package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/canny-cli/internal/http"
	"github.com/fivetwenty-io/canny-cli/pkg/canny"
)

// AutopilotClient implements canny.AutopilotClient.
type AutopilotClient struct {
	endpoint
}

// NewAutopilotClient creates a new autopilot client.
func NewAutopilotClient(httpClient *http.Client, apiKey string) *AutopilotClient {
	return &AutopilotClient{endpoint{httpClient: httpClient, apiKey: apiKey}}
}

// Enqueue implements canny.AutopilotClient.Enqueue.
func (c *AutopilotClient) Enqueue(ctx context.Context, request *canny.AutopilotEnqueueRequest) (string, error) {
	req := c.request().
		set("feedback", request.Feedback).
		set("userID", request.UserID).
		opt("sourceURL", request.SourceURL)

	data, err := c.post(ctx, "autopilot/enqueue", req)
	if err != nil {
		return "", fmt.Errorf("enqueueing feedback: %w", err)
	}

	return decodeCreated("autopilot/enqueue", data)
}

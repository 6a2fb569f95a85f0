package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/canny-cli/internal/constants"
	"github.com/fivetwenty-io/canny-cli/internal/http"
	"github.com/fivetwenty-io/canny-cli/pkg/canny"
)

// InsightsClient implements canny.InsightsClient.
type InsightsClient struct {
	endpoint
}

// NewInsightsClient creates a new insights client.
func NewInsightsClient(httpClient *http.Client, apiKey string) *InsightsClient {
	return &InsightsClient{endpoint{httpClient: httpClient, apiKey: apiKey}}
}

// List implements canny.InsightsClient.List.
func (c *InsightsClient) List(ctx context.Context, params *canny.InsightListParams) (*canny.CursorPage[canny.Insight], error) {
	_, limit := pageBounds(nil, params.Limit, constants.DefaultListLimit)

	req := c.request().
		set("limit", limit).
		opt("cursor", params.Cursor).
		opt("ideaID", params.IdeaID)

	data, err := c.post(ctx, "insights/list", req)
	if err != nil {
		return nil, fmt.Errorf("listing insights: %w", err)
	}

	return decodeHasMorePage[canny.Insight]("insights/list", data, "insights")
}

// Retrieve implements canny.InsightsClient.Retrieve.
func (c *InsightsClient) Retrieve(ctx context.Context, id string) (*canny.Insight, error) {
	data, err := c.post(ctx, "insights/retrieve", c.request().set("id", id))
	if err != nil {
		return nil, fmt.Errorf("getting insight: %w", err)
	}

	return decodeWrapped[canny.Insight]("insights/retrieve", data, "insight")
}

package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/canny-cli/internal/constants"
	"github.com/fivetwenty-io/canny-cli/internal/http"
	"github.com/fivetwenty-io/canny-cli/pkg/canny"
)

// OpportunitiesClient implements canny.OpportunitiesClient.
type OpportunitiesClient struct {
	endpoint
}

// NewOpportunitiesClient creates a new opportunities client.
func NewOpportunitiesClient(httpClient *http.Client, apiKey string) *OpportunitiesClient {
	return &OpportunitiesClient{endpoint{httpClient: httpClient, apiKey: apiKey}}
}

// List implements canny.OpportunitiesClient.List.
func (c *OpportunitiesClient) List(ctx context.Context, params *canny.OpportunityListParams) (*canny.OffsetPage[canny.Opportunity], error) {
	skip, limit := pageBounds(params.Skip, params.Limit, constants.DefaultListLimit)

	req := c.request().
		set("postID", params.PostID).
		set("limit", limit).
		set("skip", skip)

	data, err := c.post(ctx, "opportunities/list", req)
	if err != nil {
		return nil, fmt.Errorf("listing opportunities: %w", err)
	}

	return decodeOffsetPage[canny.Opportunity]("opportunities/list", data, "opportunities", skip, limit)
}

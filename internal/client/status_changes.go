package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/canny-cli/internal/constants"
	"github.com/fivetwenty-io/canny-cli/internal/http"
	"github.com/fivetwenty-io/canny-cli/pkg/canny"
)

// StatusChangesClient implements canny.StatusChangesClient.
type StatusChangesClient struct {
	endpoint
}

// NewStatusChangesClient creates a new status changes client.
func NewStatusChangesClient(httpClient *http.Client, apiKey string) *StatusChangesClient {
	return &StatusChangesClient{endpoint{httpClient: httpClient, apiKey: apiKey}}
}

// List implements canny.StatusChangesClient.List.
func (c *StatusChangesClient) List(ctx context.Context, params *canny.StatusChangeListParams) (*canny.OffsetPage[canny.StatusChange], error) {
	skip, limit := pageBounds(params.Skip, params.Limit, constants.DefaultListLimit)

	req := c.request().
		set("boardID", params.BoardID).
		set("limit", limit).
		set("skip", skip)

	data, err := c.post(ctx, "status_changes/list", req)
	if err != nil {
		return nil, fmt.Errorf("listing status changes: %w", err)
	}

	return decodeOffsetPage[canny.StatusChange]("status_changes/list", data, "statusChanges", skip, limit)
}

package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/canny-cli/internal/constants"
	"github.com/fivetwenty-io/canny-cli/internal/http"
	"github.com/fivetwenty-io/canny-cli/pkg/canny"
)

// GroupsClient implements canny.GroupsClient.
type GroupsClient struct {
	endpoint
}

// NewGroupsClient creates a new groups client.
func NewGroupsClient(httpClient *http.Client, apiKey string) *GroupsClient {
	return &GroupsClient{endpoint{httpClient: httpClient, apiKey: apiKey}}
}

// List implements canny.GroupsClient.List.
func (c *GroupsClient) List(ctx context.Context, params *canny.GroupListParams) (*canny.CursorPage[canny.Group], error) {
	_, limit := pageBounds(nil, params.Limit, constants.DefaultListLimit)

	req := c.request().
		set("limit", limit).
		opt("cursor", params.Cursor)

	data, err := c.post(ctx, "groups/list", req)
	if err != nil {
		return nil, fmt.Errorf("listing groups: %w", err)
	}

	return decodeHasMorePage[canny.Group]("groups/list", data, "groups")
}

// Retrieve implements canny.GroupsClient.Retrieve.
func (c *GroupsClient) Retrieve(ctx context.Context, params *canny.IDOrURLName) (*canny.Group, error) {
	err := requireOneOf("id or urlName", params.ID, params.URLName)
	if err != nil {
		return nil, err
	}

	req := c.request().
		opt("id", params.ID).
		opt("urlName", params.URLName)

	data, err := c.post(ctx, "groups/retrieve", req)
	if err != nil {
		return nil, fmt.Errorf("getting group: %w", err)
	}

	return decodeWrapped[canny.Group]("groups/retrieve", data, "group")
}

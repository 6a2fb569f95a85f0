package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/canny-cli/internal/constants"
	"github.com/fivetwenty-io/canny-cli/internal/http"
	"github.com/fivetwenty-io/canny-cli/pkg/canny"
)

// IdeasClient implements canny.IdeasClient.
type IdeasClient struct {
	endpoint
}

// NewIdeasClient creates a new ideas client.
func NewIdeasClient(httpClient *http.Client, apiKey string) *IdeasClient {
	return &IdeasClient{endpoint{httpClient: httpClient, apiKey: apiKey}}
}

// List implements canny.IdeasClient.List.
func (c *IdeasClient) List(ctx context.Context, params *canny.IdeaListParams) (*canny.CursorPage[canny.Idea], error) {
	_, limit := pageBounds(nil, params.Limit, constants.DefaultListLimit)

	req := c.request().
		set("limit", limit).
		opt("cursor", params.Cursor).
		opt("parentID", params.ParentID).
		opt("search", params.Search)

	data, err := c.post(ctx, "ideas/list", req)
	if err != nil {
		return nil, fmt.Errorf("listing ideas: %w", err)
	}

	return decodeHasMorePage[canny.Idea]("ideas/list", data, "ideas")
}

// Retrieve implements canny.IdeasClient.Retrieve.
func (c *IdeasClient) Retrieve(ctx context.Context, params *canny.IDOrURLName) (*canny.Idea, error) {
	err := requireOneOf("id or urlName", params.ID, params.URLName)
	if err != nil {
		return nil, err
	}

	req := c.request().
		opt("id", params.ID).
		opt("urlName", params.URLName)

	data, err := c.post(ctx, "ideas/retrieve", req)
	if err != nil {
		return nil, fmt.Errorf("getting idea: %w", err)
	}

	return decodeWrapped[canny.Idea]("ideas/retrieve", data, "idea")
}

package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/canny-cli/internal/constants"
	"github.com/fivetwenty-io/canny-cli/internal/http"
	"github.com/fivetwenty-io/canny-cli/pkg/canny"
)

// TagsClient implements canny.TagsClient.
type TagsClient struct {
	endpoint
}

// NewTagsClient creates a new tags client.
func NewTagsClient(httpClient *http.Client, apiKey string) *TagsClient {
	return &TagsClient{endpoint{httpClient: httpClient, apiKey: apiKey}}
}

// List implements canny.TagsClient.List.
func (c *TagsClient) List(ctx context.Context, params *canny.TagListParams) (*canny.OffsetPage[canny.Tag], error) {
	skip, limit := pageBounds(params.Skip, params.Limit, constants.DefaultTaxonomyLimit)

	req := c.request().
		set("boardID", params.BoardID).
		set("limit", limit).
		set("skip", skip)

	data, err := c.post(ctx, "tags/list", req)
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}

	return decodeOffsetPage[canny.Tag]("tags/list", data, "tags", skip, limit)
}

// Retrieve implements canny.TagsClient.Retrieve.
func (c *TagsClient) Retrieve(ctx context.Context, id string) (*canny.Tag, error) {
	data, err := c.post(ctx, "tags/retrieve", c.request().set("id", id))
	if err != nil {
		return nil, fmt.Errorf("getting tag: %w", err)
	}

	return decodeWrapped[canny.Tag]("tags/retrieve", data, "tag")
}

// Create implements canny.TagsClient.Create.
func (c *TagsClient) Create(ctx context.Context, boardID, name string) (string, error) {
	data, err := c.post(ctx, "tags/create", c.request().set("boardID", boardID).set("name", name))
	if err != nil {
		return "", fmt.Errorf("creating tag: %w", err)
	}

	return decodeCreated("tags/create", data)
}

// Delete implements canny.TagsClient.Delete.
func (c *TagsClient) Delete(ctx context.Context, tagID string) error {
	err := c.mutate(ctx, "tags/delete", c.request().set("tagID", tagID))
	if err != nil {
		return fmt.Errorf("deleting tag: %w", err)
	}

	return nil
}

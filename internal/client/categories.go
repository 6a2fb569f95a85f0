package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/canny-cli/internal/constants"
	"github.com/fivetwenty-io/canny-cli/internal/http"
	"github.com/fivetwenty-io/canny-cli/pkg/canny"
)

// CategoriesClient implements canny.CategoriesClient.
type CategoriesClient struct {
	endpoint
}

// NewCategoriesClient creates a new categories client.
func NewCategoriesClient(httpClient *http.Client, apiKey string) *CategoriesClient {
	return &CategoriesClient{endpoint{httpClient: httpClient, apiKey: apiKey}}
}

// List implements canny.CategoriesClient.List.
func (c *CategoriesClient) List(ctx context.Context, params *canny.CategoryListParams) (*canny.OffsetPage[canny.Category], error) {
	skip, limit := pageBounds(params.Skip, params.Limit, constants.DefaultTaxonomyLimit)

	req := c.request().
		set("boardID", params.BoardID).
		set("limit", limit).
		set("skip", skip)

	data, err := c.post(ctx, "categories/list", req)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}

	return decodeOffsetPage[canny.Category]("categories/list", data, "categories", skip, limit)
}

// Retrieve implements canny.CategoriesClient.Retrieve.
func (c *CategoriesClient) Retrieve(ctx context.Context, id string) (*canny.Category, error) {
	data, err := c.post(ctx, "categories/retrieve", c.request().set("id", id))
	if err != nil {
		return nil, fmt.Errorf("getting category: %w", err)
	}

	return decodeWrapped[canny.Category]("categories/retrieve", data, "category")
}

// Create implements canny.CategoriesClient.Create.
func (c *CategoriesClient) Create(ctx context.Context, request *canny.CategoryCreateRequest) (string, error) {
	req := c.request().
		set("boardID", request.BoardID).
		set("name", request.Name).
		set("subscribeAdmins", request.SubscribeAdmins).
		opt("parentID", request.ParentID)

	data, err := c.post(ctx, "categories/create", req)
	if err != nil {
		return "", fmt.Errorf("creating category: %w", err)
	}

	return decodeCreated("categories/create", data)
}

// Delete implements canny.CategoriesClient.Delete.
func (c *CategoriesClient) Delete(ctx context.Context, categoryID string) error {
	err := c.mutate(ctx, "categories/delete", c.request().set("categoryID", categoryID))
	if err != nil {
		return fmt.Errorf("deleting category: %w", err)
	}

	return nil
}

package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/canny-cli/internal/constants"
	"github.com/fivetwenty-io/canny-cli/internal/http"
	"github.com/fivetwenty-io/canny-cli/pkg/canny"
)

// CompaniesClient implements canny.CompaniesClient.
type CompaniesClient struct {
	endpoint
}

// NewCompaniesClient creates a new companies client.
func NewCompaniesClient(httpClient *http.Client, apiKey string) *CompaniesClient {
	return &CompaniesClient{endpoint{httpClient: httpClient, apiKey: apiKey}}
}

// List implements canny.CompaniesClient.List against the v2 companies endpoint.
// Only one page is fetched.
func (c *CompaniesClient) List(ctx context.Context, params *canny.CompanyListParams) (*canny.CursorPage[canny.Company], error) {
	_, limit := pageBounds(nil, params.Limit, constants.DefaultTaxonomyLimit)

	req := c.request().
		set("limit", limit).
		opt("cursor", params.Cursor).
		opt("search", params.Search).
		opt("segment", params.Segment)

	data, err := c.postV2(ctx, "companies/list", req)
	if err != nil {
		return nil, fmt.Errorf("listing companies: %w", err)
	}

	return decodeCursorPage[canny.Company]("companies/list", data, "companies")
}

// Retrieve implements canny.CompaniesClient.Retrieve.
func (c *CompaniesClient) Retrieve(ctx context.Context, id string) (*canny.Company, error) {
	data, err := c.post(ctx, "companies/retrieve", c.request().set("id", id))
	if err != nil {
		return nil, fmt.Errorf("getting company: %w", err)
	}

	return decodeWrapped[canny.Company]("companies/retrieve", data, "company")
}

// Update implements canny.CompaniesClient.Update.
func (c *CompaniesClient) Update(ctx context.Context, request *canny.CompanyUpdateRequest) error {
	req := c.request().
		set("id", request.ID).
		opt("name", request.Name).
		opt("monthlySpend", request.MonthlySpend).
		opt("customFields", request.CustomFields).
		opt("created", request.Created)

	err := c.mutate(ctx, "companies/update", req)
	if err != nil {
		return fmt.Errorf("updating company: %w", err)
	}

	return nil
}

// Delete implements canny.CompaniesClient.Delete.
func (c *CompaniesClient) Delete(ctx context.Context, id string) error {
	err := c.mutate(ctx, "companies/delete", c.request().set("id", id))
	if err != nil {
		return fmt.Errorf("deleting company: %w", err)
	}

	return nil
}

package client

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/fivetwenty-io/canny-cli/internal/constants"
	"github.com/fivetwenty-io/canny-cli/internal/http"
	"github.com/fivetwenty-io/canny-cli/pkg/canny"
)

// EntriesClient implements canny.EntriesClient for changelog entries.
type EntriesClient struct {
	endpoint
}

// NewEntriesClient creates a new changelog entries client.
func NewEntriesClient(httpClient *http.Client, apiKey string) *EntriesClient {
	return &EntriesClient{endpoint{httpClient: httpClient, apiKey: apiKey}}
}

// List implements canny.EntriesClient.List.
func (c *EntriesClient) List(ctx context.Context, params *canny.EntryListParams) (*canny.OffsetPage[canny.Entry], error) {
	if params.Sort != nil && !slices.Contains(canny.EntrySorts, *params.Sort) {
		return nil, canny.NewValidationError("sort", fmt.Sprintf("%q is not one of %s", *params.Sort, strings.Join(canny.EntrySorts, ", ")))
	}

	skip, limit := pageBounds(params.Skip, params.Limit, constants.DefaultListLimit)

	req := c.request().
		set("limit", limit).
		set("skip", skip).
		opt("type", params.Type).
		opt("labelIDs", params.LabelIDs).
		opt("sort", params.Sort)

	data, err := c.post(ctx, "entries/list", req)
	if err != nil {
		return nil, fmt.Errorf("listing changelog entries: %w", err)
	}

	return decodeOffsetPage[canny.Entry]("entries/list", data, "entries", skip, limit)
}

// Retrieve implements canny.EntriesClient.Retrieve.
func (c *EntriesClient) Retrieve(ctx context.Context, id string) (*canny.Entry, error) {
	data, err := c.post(ctx, "entries/retrieve", c.request().set("id", id))
	if err != nil {
		return nil, fmt.Errorf("getting changelog entry: %w", err)
	}

	return decodeWrapped[canny.Entry]("entries/retrieve", data, "entry")
}

// Create implements canny.EntriesClient.Create.
func (c *EntriesClient) Create(ctx context.Context, request *canny.EntryCreateRequest) (string, error) {
	req := c.request().
		set("title", request.Title).
		opt("details", request.Details).
		opt("type", request.Type).
		opt("published", request.Published).
		opt("notify", request.Notify).
		opt("postIDs", request.PostIDs).
		opt("labelIDs", request.LabelIDs).
		opt("publishedOn", request.PublishedOn).
		opt("scheduledFor", request.ScheduledFor)

	data, err := c.post(ctx, "entries/create", req)
	if err != nil {
		return "", fmt.Errorf("creating changelog entry: %w", err)
	}

	return decodeCreated("entries/create", data)
}

// Update implements canny.EntriesClient.Update.
func (c *EntriesClient) Update(ctx context.Context, request *canny.EntryUpdateRequest) error {
	req := c.request().
		set("entryID", request.EntryID).
		opt("title", request.Title).
		opt("details", request.Details).
		opt("type", request.Type).
		opt("published", request.Published).
		opt("notify", request.Notify).
		opt("labelIDs", request.LabelIDs)

	err := c.mutate(ctx, "entries/update", req)
	if err != nil {
		return fmt.Errorf("updating changelog entry: %w", err)
	}

	return nil
}

// Delete implements canny.EntriesClient.Delete.
func (c *EntriesClient) Delete(ctx context.Context, entryID string) error {
	err := c.mutate(ctx, "entries/delete", c.request().set("entryID", entryID))
	if err != nil {
		return fmt.Errorf("deleting changelog entry: %w", err)
	}

	return nil
}

package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/canny-cli/internal/constants"
	"github.com/fivetwenty-io/canny-cli/internal/http"
	"github.com/fivetwenty-io/canny-cli/pkg/canny"
)

// VotesClient implements canny.VotesClient.
type VotesClient struct {
	endpoint
}

// NewVotesClient creates a new votes client.
func NewVotesClient(httpClient *http.Client, apiKey string) *VotesClient {
	return &VotesClient{endpoint{httpClient: httpClient, apiKey: apiKey}}
}

// List implements canny.VotesClient.List.
func (c *VotesClient) List(ctx context.Context, params *canny.VoteListParams) (*canny.OffsetPage[canny.Vote], error) {
	skip, limit := pageBounds(params.Skip, params.Limit, constants.DefaultListLimit)

	req := c.request().
		set("limit", limit).
		set("skip", skip).
		opt("postID", params.PostID).
		opt("userID", params.UserID)

	data, err := c.post(ctx, "votes/list", req)
	if err != nil {
		return nil, fmt.Errorf("listing votes: %w", err)
	}

	return decodeOffsetPage[canny.Vote]("votes/list", data, "votes", skip, limit)
}

// Retrieve implements canny.VotesClient.Retrieve.
func (c *VotesClient) Retrieve(ctx context.Context, id string) (*canny.Vote, error) {
	data, err := c.post(ctx, "votes/retrieve", c.request().set("id", id))
	if err != nil {
		return nil, fmt.Errorf("getting vote: %w", err)
	}

	return decodeWrapped[canny.Vote]("votes/retrieve", data, "vote")
}

// Create implements canny.VotesClient.Create.
func (c *VotesClient) Create(ctx context.Context, postID, userID string) error {
	err := c.mutate(ctx, "votes/create", c.request().set("postID", postID).set("userID", userID))
	if err != nil {
		return fmt.Errorf("creating vote: %w", err)
	}

	return nil
}

// Delete implements canny.VotesClient.Delete.
func (c *VotesClient) Delete(ctx context.Context, voteID string) error {
	err := c.mutate(ctx, "votes/delete", c.request().set("voteID", voteID))
	if err != nil {
		return fmt.Errorf("deleting vote: %w", err)
	}

	return nil
}

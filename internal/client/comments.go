package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/canny-cli/internal/constants"
	"github.com/fivetwenty-io/canny-cli/internal/http"
	"github.com/fivetwenty-io/canny-cli/pkg/canny"
)

// CommentsClient implements canny.CommentsClient.
type CommentsClient struct {
	endpoint
}

// NewCommentsClient creates a new comments client.
func NewCommentsClient(httpClient *http.Client, apiKey string) *CommentsClient {
	return &CommentsClient{endpoint{httpClient: httpClient, apiKey: apiKey}}
}

// List implements canny.CommentsClient.List.
func (c *CommentsClient) List(ctx context.Context, params *canny.CommentListParams) (*canny.OffsetPage[canny.Comment], error) {
	skip, limit := pageBounds(params.Skip, params.Limit, constants.DefaultListLimit)

	req := c.request().
		set("limit", limit).
		set("skip", skip).
		opt("postID", params.PostID).
		opt("authorID", params.AuthorID).
		opt("boardID", params.BoardID).
		opt("companyID", params.CompanyID)

	data, err := c.post(ctx, "comments/list", req)
	if err != nil {
		return nil, fmt.Errorf("listing comments: %w", err)
	}

	return decodeOffsetPage[canny.Comment]("comments/list", data, "comments", skip, limit)
}

// Retrieve implements canny.CommentsClient.Retrieve.
func (c *CommentsClient) Retrieve(ctx context.Context, id string) (*canny.Comment, error) {
	data, err := c.post(ctx, "comments/retrieve", c.request().set("id", id))
	if err != nil {
		return nil, fmt.Errorf("getting comment: %w", err)
	}

	return decodeWrapped[canny.Comment]("comments/retrieve", data, "comment")
}

// Create implements canny.CommentsClient.Create. Internal and ShouldNotifyVoters
// are only sent when true.
func (c *CommentsClient) Create(ctx context.Context, request *canny.CommentCreateRequest) (string, error) {
	req := c.request().
		set("postID", request.PostID).
		set("authorID", request.AuthorID).
		set("value", request.Value).
		opt("parentID", request.ParentID).
		opt("createdAt", request.CreatedAt).
		opt("imageURLs", request.ImageURLs).
		optTrue("internal", request.Internal).
		optTrue("shouldNotifyVoters", request.ShouldNotifyVoters)

	data, err := c.post(ctx, "comments/create", req)
	if err != nil {
		return "", fmt.Errorf("creating comment: %w", err)
	}

	return decodeCreated("comments/create", data)
}

// Delete implements canny.CommentsClient.Delete.
func (c *CommentsClient) Delete(ctx context.Context, commentID string) error {
	err := c.mutate(ctx, "comments/delete", c.request().set("commentID", commentID))
	if err != nil {
		return fmt.Errorf("deleting comment: %w", err)
	}

	return nil
}

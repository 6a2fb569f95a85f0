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

// PostsClient implements canny.PostsClient.
type PostsClient struct {
	endpoint
}

// NewPostsClient creates a new posts client.
func NewPostsClient(httpClient *http.Client, apiKey string) *PostsClient {
	return &PostsClient{endpoint{httpClient: httpClient, apiKey: apiKey}}
}

// List implements canny.PostsClient.List.
func (c *PostsClient) List(ctx context.Context, params *canny.PostListParams) (*canny.OffsetPage[canny.Post], error) {
	if params.Sort != nil && !slices.Contains(canny.PostSorts, *params.Sort) {
		return nil, canny.NewValidationError("sort", fmt.Sprintf("%q is not one of %s", *params.Sort, strings.Join(canny.PostSorts, ", ")))
	}

	skip, limit := pageBounds(params.Skip, params.Limit, constants.DefaultListLimit)

	req := c.request().
		set("boardID", params.BoardID).
		set("limit", limit).
		set("skip", skip).
		opt("sort", params.Sort).
		opt("status", params.Status).
		opt("authorID", params.AuthorID).
		opt("search", params.Search).
		opt("companyID", params.CompanyID).
		opt("tagIDs", params.TagIDs)

	data, err := c.post(ctx, "posts/list", req)
	if err != nil {
		return nil, fmt.Errorf("listing posts: %w", err)
	}

	return decodeOffsetPage[canny.Post]("posts/list", data, "posts", skip, limit)
}

// Retrieve implements canny.PostsClient.Retrieve. A nil post means it does not exist.
func (c *PostsClient) Retrieve(ctx context.Context, params *canny.PostRetrieveParams) (*canny.Post, error) {
	err := requireOneOf("id or urlName", params.ID, params.URLName)
	if err != nil {
		return nil, err
	}

	req := c.request().
		opt("id", params.ID).
		opt("urlName", params.URLName).
		opt("boardID", params.BoardID)

	data, err := c.post(ctx, "posts/retrieve", req)
	if err != nil {
		return nil, fmt.Errorf("getting post: %w", err)
	}

	return decodeWrapped[canny.Post]("posts/retrieve", data, "post")
}

// Create implements canny.PostsClient.Create.
func (c *PostsClient) Create(ctx context.Context, request *canny.PostCreateRequest) (string, error) {
	req := c.request().
		set("boardID", request.BoardID).
		set("authorID", request.AuthorID).
		set("title", request.Title).
		opt("details", request.Details).
		opt("categoryID", request.CategoryID).
		opt("byID", request.ByID).
		opt("customFields", request.CustomFields).
		opt("eta", request.ETA).
		opt("etaPublic", request.ETAPublic).
		opt("ownerID", request.OwnerID).
		opt("imageURLs", request.ImageURLs).
		opt("createdAt", request.CreatedAt)

	data, err := c.post(ctx, "posts/create", req)
	if err != nil {
		return "", fmt.Errorf("creating post: %w", err)
	}

	return decodeCreated("posts/create", data)
}

// ChangeStatus implements canny.PostsClient.ChangeStatus.
func (c *PostsClient) ChangeStatus(ctx context.Context, request *canny.PostStatusRequest) error {
	req := c.request().
		set("postID", request.PostID).
		set("changerID", request.ChangerID).
		set("status", request.Status).
		set("shouldNotifyVoters", request.ShouldNotifyVoters).
		opt("commentValue", request.CommentValue).
		opt("commentImageURLs", request.CommentImageURLs)

	err := c.mutate(ctx, "posts/change_status", req)
	if err != nil {
		return fmt.Errorf("changing post status: %w", err)
	}

	return nil
}

// ChangeCategory implements canny.PostsClient.ChangeCategory.
func (c *PostsClient) ChangeCategory(ctx context.Context, postID, categoryID string) error {
	req := c.request().set("postID", postID).set("categoryID", categoryID)

	err := c.mutate(ctx, "posts/change_category", req)
	if err != nil {
		return fmt.Errorf("changing post category: %w", err)
	}

	return nil
}

// Update implements canny.PostsClient.Update.
func (c *PostsClient) Update(ctx context.Context, request *canny.PostUpdateRequest) error {
	req := c.request().
		set("postID", request.PostID).
		opt("title", request.Title).
		opt("details", request.Details).
		opt("imageURLs", request.ImageURLs).
		opt("eta", request.ETA).
		opt("etaPublic", request.ETAPublic).
		opt("customFields", request.CustomFields)

	err := c.mutate(ctx, "posts/update", req)
	if err != nil {
		return fmt.Errorf("updating post: %w", err)
	}

	return nil
}

// Delete implements canny.PostsClient.Delete.
func (c *PostsClient) Delete(ctx context.Context, postID string) error {
	err := c.mutate(ctx, "posts/delete", c.request().set("postID", postID))
	if err != nil {
		return fmt.Errorf("deleting post: %w", err)
	}

	return nil
}

// AddTag implements canny.PostsClient.AddTag.
func (c *PostsClient) AddTag(ctx context.Context, postID, tagID string) error {
	err := c.mutate(ctx, "posts/add_tag", c.request().set("postID", postID).set("tagID", tagID))
	if err != nil {
		return fmt.Errorf("adding tag to post: %w", err)
	}

	return nil
}

// RemoveTag implements canny.PostsClient.RemoveTag.
func (c *PostsClient) RemoveTag(ctx context.Context, postID, tagID string) error {
	err := c.mutate(ctx, "posts/remove_tag", c.request().set("postID", postID).set("tagID", tagID))
	if err != nil {
		return fmt.Errorf("removing tag from post: %w", err)
	}

	return nil
}

// LinkJira implements canny.PostsClient.LinkJira.
func (c *PostsClient) LinkJira(ctx context.Context, postID, issueKey string) error {
	err := c.mutate(ctx, "posts/link_jira", c.request().set("postID", postID).set("issueKey", issueKey))
	if err != nil {
		return fmt.Errorf("linking Jira issue: %w", err)
	}

	return nil
}

// UnlinkJira implements canny.PostsClient.UnlinkJira.
func (c *PostsClient) UnlinkJira(ctx context.Context, postID, issueKey string) error {
	err := c.mutate(ctx, "posts/unlink_jira", c.request().set("postID", postID).set("issueKey", issueKey))
	if err != nil {
		return fmt.Errorf("unlinking Jira issue: %w", err)
	}

	return nil
}

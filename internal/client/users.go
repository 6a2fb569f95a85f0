package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/canny-cli/internal/http"
	"github.com/fivetwenty-io/canny-cli/pkg/canny"
)

// UsersClient implements canny.UsersClient.
type UsersClient struct {
	endpoint
}

// NewUsersClient creates a new users client.
func NewUsersClient(httpClient *http.Client, apiKey string) *UsersClient {
	return &UsersClient{endpoint{httpClient: httpClient, apiKey: apiKey}}
}

// ListPage implements canny.UsersClient.ListPage against the v2 users endpoint.
func (c *UsersClient) ListPage(ctx context.Context, cursor *string, limit int) (*canny.CursorPage[canny.UserFull], error) {
	req := c.request().
		set("limit", limit).
		opt("cursor", cursor)

	data, err := c.postV2(ctx, "users/list", req)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	return decodeCursorPage[canny.UserFull]("users/list", data, "users")
}

// ListAll implements canny.UsersClient.ListAll.
func (c *UsersClient) ListAll(ctx context.Context, progress canny.ProgressFunc) ([]canny.UserFull, error) {
	return canny.FetchAllCursor[canny.UserFull](ctx, c.ListPage, progress)
}

// Retrieve implements canny.UsersClient.Retrieve. The endpoint returns the
// bare record; null or a record without an id means the user does not exist.
func (c *UsersClient) Retrieve(ctx context.Context, params *canny.UserRetrieveParams) (*canny.UserFull, error) {
	err := requireOneOf("id or email", params.ID, params.Email)
	if err != nil {
		return nil, err
	}

	req := c.request().
		opt("id", params.ID).
		opt("email", params.Email)

	data, err := c.post(ctx, "users/retrieve", req)
	if err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}

	var user *canny.UserFull

	err = decodeInto("users/retrieve", data, &user)
	if err != nil {
		return nil, err
	}

	if user == nil || user.ID == "" {
		return nil, nil
	}

	return user, nil
}

// CreateOrUpdate implements canny.UsersClient.CreateOrUpdate.
func (c *UsersClient) CreateOrUpdate(ctx context.Context, request *canny.UserCreateRequest) (string, error) {
	req := c.request().
		set("userID", request.UserID).
		set("email", request.Email).
		opt("id", request.ID).
		opt("name", request.Name).
		opt("avatarURL", request.AvatarURL).
		opt("created", request.Created).
		opt("companyID", request.CompanyID).
		opt("customFields", request.CustomFields)

	data, err := c.post(ctx, "users/create_or_update", req)
	if err != nil {
		return "", fmt.Errorf("creating user: %w", err)
	}

	return decodeCreated("users/create_or_update", data)
}

// Delete implements canny.UsersClient.Delete.
func (c *UsersClient) Delete(ctx context.Context, userID string) error {
	err := c.mutate(ctx, "users/delete", c.request().set("userID", userID))
	if err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}

	return nil
}

// Find implements canny.UsersClient.Find.
func (c *UsersClient) Find(ctx context.Context, params *canny.UserFindParams) (*canny.UserFull, error) {
	req := c.request().
		opt("userID", params.UserID).
		opt("email", params.Email).
		opt("name", params.Name)

	data, err := c.post(ctx, "users/find", req)
	if err != nil {
		return nil, fmt.Errorf("finding user: %w", err)
	}

	return decodeWrapped[canny.UserFull]("users/find", data, "user")
}

// RemoveFromCompany implements canny.UsersClient.RemoveFromCompany.
func (c *UsersClient) RemoveFromCompany(ctx context.Context, userID, companyID string) error {
	req := c.request().set("userID", userID).set("companyID", companyID)

	err := c.mutate(ctx, "users/remove_from_company", req)
	if err != nil {
		return fmt.Errorf("removing user from company: %w", err)
	}

	return nil
}

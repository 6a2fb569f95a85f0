package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/canny-cli/internal/http"
	"github.com/fivetwenty-io/canny-cli/pkg/canny"
)

// BoardsClient implements canny.BoardsClient.
type BoardsClient struct {
	endpoint
}

// NewBoardsClient creates a new boards client.
func NewBoardsClient(httpClient *http.Client, apiKey string) *BoardsClient {
	return &BoardsClient{endpoint{httpClient: httpClient, apiKey: apiKey}}
}

// List implements canny.BoardsClient.List. The endpoint is not paginated.
func (c *BoardsClient) List(ctx context.Context) ([]canny.Board, error) {
	data, err := c.post(ctx, "boards/list", c.request())
	if err != nil {
		return nil, fmt.Errorf("listing boards: %w", err)
	}

	var list struct {
		Boards []canny.Board `json:"boards"`
	}

	err = decodeInto("boards/list", data, &list)
	if err != nil {
		return nil, err
	}

	if list.Boards == nil {
		return []canny.Board{}, nil
	}

	return list.Boards, nil
}

// Retrieve implements canny.BoardsClient.Retrieve.
func (c *BoardsClient) Retrieve(ctx context.Context, id string) (*canny.Board, error) {
	data, err := c.post(ctx, "boards/retrieve", c.request().set("id", id))
	if err != nil {
		return nil, fmt.Errorf("getting board: %w", err)
	}

	return decodeWrapped[canny.Board]("boards/retrieve", data, "board")
}

// Create implements canny.BoardsClient.Create.
func (c *BoardsClient) Create(ctx context.Context, name string) (string, error) {
	data, err := c.post(ctx, "boards/create", c.request().set("name", name))
	if err != nil {
		return "", fmt.Errorf("creating board: %w", err)
	}

	return decodeCreated("boards/create", data)
}

// Delete implements canny.BoardsClient.Delete.
func (c *BoardsClient) Delete(ctx context.Context, id string) error {
	err := c.mutate(ctx, "boards/delete", c.request().set("id", id))
	if err != nil {
		return fmt.Errorf("deleting board: %w", err)
	}

	return nil
}

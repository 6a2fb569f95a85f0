package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/fivetwenty-io/canny-cli/internal/constants"
	"github.com/fivetwenty-io/canny-cli/internal/http"
	"github.com/fivetwenty-io/canny-cli/pkg/canny"
)

// Client implements the canny.Client interface.
type Client struct {
	httpClient *http.Client
	apiKey     string
	logger     canny.Logger

	// Resource clients
	posts         canny.PostsClient
	comments      canny.CommentsClient
	categories    canny.CategoriesClient
	users         canny.UsersClient
	boards        canny.BoardsClient
	tags          canny.TagsClient
	companies     canny.CompaniesClient
	votes         canny.VotesClient
	statusChanges canny.StatusChangesClient
	entries       canny.EntriesClient
	opportunities canny.OpportunitiesClient
	groups        canny.GroupsClient
	insights      canny.InsightsClient
	ideas         canny.IdeasClient
	autopilot     canny.AutopilotClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *canny.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.Timeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.Timeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	if config.Cache != nil {
		ttl := config.CacheTTL
		if ttl <= 0 {
			ttl = canny.DefaultCacheTTL
		}

		httpOpts = append(httpOpts, http.WithCache(config.Cache, ttl))
	}

	return httpOpts
}

// New creates a Canny API client.
func New(config *canny.Config) (*Client, error) {
	if config.APIKey == "" {
		return nil, canny.ErrAPIKeyRequired
	}

	if config.APIURL == "" {
		return nil, canny.ErrAPIURLRequired
	}

	httpClient := http.NewClient(config.APIURL, createHTTPClientOptions(config)...)

	client := &Client{
		httpClient: httpClient,
		apiKey:     config.APIKey,
		logger:     config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

func (c *Client) initializeResourceClients() {
	c.posts = NewPostsClient(c.httpClient, c.apiKey)
	c.comments = NewCommentsClient(c.httpClient, c.apiKey)
	c.categories = NewCategoriesClient(c.httpClient, c.apiKey)
	c.users = NewUsersClient(c.httpClient, c.apiKey)
	c.boards = NewBoardsClient(c.httpClient, c.apiKey)
	c.tags = NewTagsClient(c.httpClient, c.apiKey)
	c.companies = NewCompaniesClient(c.httpClient, c.apiKey)
	c.votes = NewVotesClient(c.httpClient, c.apiKey)
	c.statusChanges = NewStatusChangesClient(c.httpClient, c.apiKey)
	c.entries = NewEntriesClient(c.httpClient, c.apiKey)
	c.opportunities = NewOpportunitiesClient(c.httpClient, c.apiKey)
	c.groups = NewGroupsClient(c.httpClient, c.apiKey)
	c.insights = NewInsightsClient(c.httpClient, c.apiKey)
	c.ideas = NewIdeasClient(c.httpClient, c.apiKey)
	c.autopilot = NewAutopilotClient(c.httpClient, c.apiKey)
}

// Resource client accessors

// Posts implements canny.Client.Posts.
func (c *Client) Posts() canny.PostsClient {
	return c.posts
}

// Comments implements canny.Client.Comments.
func (c *Client) Comments() canny.CommentsClient {
	return c.comments
}

// Categories implements canny.Client.Categories.
func (c *Client) Categories() canny.CategoriesClient {
	return c.categories
}

// Users implements canny.Client.Users.
func (c *Client) Users() canny.UsersClient {
	return c.users
}

// Boards implements canny.Client.Boards.
func (c *Client) Boards() canny.BoardsClient {
	return c.boards
}

// Tags implements canny.Client.Tags.
func (c *Client) Tags() canny.TagsClient {
	return c.tags
}

// Companies implements canny.Client.Companies.
func (c *Client) Companies() canny.CompaniesClient {
	return c.companies
}

// Votes implements canny.Client.Votes.
func (c *Client) Votes() canny.VotesClient {
	return c.votes
}

// StatusChanges implements canny.Client.StatusChanges.
func (c *Client) StatusChanges() canny.StatusChangesClient {
	return c.statusChanges
}

// Entries implements canny.Client.Entries.
func (c *Client) Entries() canny.EntriesClient {
	return c.entries
}

// Opportunities implements canny.Client.Opportunities.
func (c *Client) Opportunities() canny.OpportunitiesClient {
	return c.opportunities
}

// Groups implements canny.Client.Groups.
func (c *Client) Groups() canny.GroupsClient {
	return c.groups
}

// Insights implements canny.Client.Insights.
func (c *Client) Insights() canny.InsightsClient {
	return c.insights
}

// Ideas implements canny.Client.Ideas.
func (c *Client) Ideas() canny.IdeasClient {
	return c.ideas
}

// Autopilot implements canny.Client.Autopilot.
func (c *Client) Autopilot() canny.AutopilotClient {
	return c.autopilot
}

// endpoint is shared by every resource client: one API key, one transport.
type endpoint struct {
	httpClient *http.Client
	apiKey     string
}

func (e endpoint) request() body {
	return newBody(e.apiKey)
}

// post sends b to path under the configured v1 base URL.
func (e endpoint) post(ctx context.Context, path string, b body) ([]byte, error) {
	resp, err := e.httpClient.Post(ctx, path, b)
	if err != nil {
		return nil, err
	}

	return resp.Body, nil
}

// postV2 sends b to path under the v2 variant of the configured base URL.
func (e endpoint) postV2(ctx context.Context, path string, b body) ([]byte, error) {
	resp, err := e.httpClient.PostURL(ctx, v2BaseURL(e.httpClient.BaseURL()), path, b)
	if err != nil {
		return nil, err
	}

	return resp.Body, nil
}

// mutate sends b and ignores the response body.
func (e endpoint) mutate(ctx context.Context, path string, b body) error {
	_, err := e.post(ctx, path, b)

	return err
}

func v2BaseURL(base string) string {
	return strings.ReplaceAll(base, constants.APIVersion1, constants.APIVersion2)
}

func pageBounds(skip, limit *int, defaultLimit int) (int, int) {
	s := 0
	if skip != nil {
		s = *skip
	}

	l := defaultLimit
	if limit != nil {
		l = *limit
	}

	return s, l
}

// requireOneOf fails unless at least one of values is a non-empty string.
func requireOneOf(names string, values ...*string) error {
	for _, v := range values {
		if v != nil && *v != "" {
			return nil
		}
	}

	return canny.NewValidationError("", fmt.Sprintf("either %s is required", names))
}

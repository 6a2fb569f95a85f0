package canny

import (
	"context"
	"time"
)

// PostsClient covers the posts endpoints.
type PostsClient interface {
	List(ctx context.Context, params *PostListParams) (*OffsetPage[Post], error)
	Retrieve(ctx context.Context, params *PostRetrieveParams) (*Post, error)
	Create(ctx context.Context, request *PostCreateRequest) (string, error)
	ChangeStatus(ctx context.Context, request *PostStatusRequest) error
	ChangeCategory(ctx context.Context, postID, categoryID string) error
	Update(ctx context.Context, request *PostUpdateRequest) error
	Delete(ctx context.Context, postID string) error
	AddTag(ctx context.Context, postID, tagID string) error
	RemoveTag(ctx context.Context, postID, tagID string) error
	LinkJira(ctx context.Context, postID, issueKey string) error
	UnlinkJira(ctx context.Context, postID, issueKey string) error
}

// CommentsClient covers the comments endpoints.
type CommentsClient interface {
	List(ctx context.Context, params *CommentListParams) (*OffsetPage[Comment], error)
	Retrieve(ctx context.Context, id string) (*Comment, error)
	Create(ctx context.Context, request *CommentCreateRequest) (string, error)
	Delete(ctx context.Context, commentID string) error
}

// CategoriesClient covers the categories endpoints.
type CategoriesClient interface {
	List(ctx context.Context, params *CategoryListParams) (*OffsetPage[Category], error)
	Retrieve(ctx context.Context, id string) (*Category, error)
	Create(ctx context.Context, request *CategoryCreateRequest) (string, error)
	Delete(ctx context.Context, categoryID string) error
}

// UsersClient covers the users endpoints.
type UsersClient interface {
	ListPage(ctx context.Context, cursor *string, limit int) (*CursorPage[UserFull], error)
	ListAll(ctx context.Context, progress ProgressFunc) ([]UserFull, error)
	Retrieve(ctx context.Context, params *UserRetrieveParams) (*UserFull, error)
	CreateOrUpdate(ctx context.Context, request *UserCreateRequest) (string, error)
	Delete(ctx context.Context, userID string) error
	Find(ctx context.Context, params *UserFindParams) (*UserFull, error)
	RemoveFromCompany(ctx context.Context, userID, companyID string) error
}

// BoardsClient covers the boards endpoints.
type BoardsClient interface {
	List(ctx context.Context) ([]Board, error)
	Retrieve(ctx context.Context, id string) (*Board, error)
	Create(ctx context.Context, name string) (string, error)
	Delete(ctx context.Context, id string) error
}

// TagsClient covers the tags endpoints.
type TagsClient interface {
	List(ctx context.Context, params *TagListParams) (*OffsetPage[Tag], error)
	Retrieve(ctx context.Context, id string) (*Tag, error)
	Create(ctx context.Context, boardID, name string) (string, error)
	Delete(ctx context.Context, tagID string) error
}

// CompaniesClient covers the companies endpoints.
type CompaniesClient interface {
	List(ctx context.Context, params *CompanyListParams) (*CursorPage[Company], error)
	Retrieve(ctx context.Context, id string) (*Company, error)
	Update(ctx context.Context, request *CompanyUpdateRequest) error
	Delete(ctx context.Context, id string) error
}

// VotesClient covers the votes endpoints.
type VotesClient interface {
	List(ctx context.Context, params *VoteListParams) (*OffsetPage[Vote], error)
	Retrieve(ctx context.Context, id string) (*Vote, error)
	Create(ctx context.Context, postID, userID string) error
	Delete(ctx context.Context, voteID string) error
}

// StatusChangesClient covers the status_changes endpoints.
type StatusChangesClient interface {
	List(ctx context.Context, params *StatusChangeListParams) (*OffsetPage[StatusChange], error)
}

// EntriesClient covers the changelog entries endpoints.
type EntriesClient interface {
	List(ctx context.Context, params *EntryListParams) (*OffsetPage[Entry], error)
	Retrieve(ctx context.Context, id string) (*Entry, error)
	Create(ctx context.Context, request *EntryCreateRequest) (string, error)
	Update(ctx context.Context, request *EntryUpdateRequest) error
	Delete(ctx context.Context, entryID string) error
}

// OpportunitiesClient covers the opportunities endpoints.
type OpportunitiesClient interface {
	List(ctx context.Context, params *OpportunityListParams) (*OffsetPage[Opportunity], error)
}

// GroupsClient covers the groups endpoints.
type GroupsClient interface {
	List(ctx context.Context, params *GroupListParams) (*CursorPage[Group], error)
	Retrieve(ctx context.Context, params *IDOrURLName) (*Group, error)
}

// InsightsClient covers the insights endpoints.
type InsightsClient interface {
	List(ctx context.Context, params *InsightListParams) (*CursorPage[Insight], error)
	Retrieve(ctx context.Context, id string) (*Insight, error)
}

// IdeasClient covers the ideas endpoints.
type IdeasClient interface {
	List(ctx context.Context, params *IdeaListParams) (*CursorPage[Idea], error)
	Retrieve(ctx context.Context, params *IDOrURLName) (*Idea, error)
}

// AutopilotClient covers the autopilot endpoints.
type AutopilotClient interface {
	Enqueue(ctx context.Context, request *AutopilotEnqueueRequest) (string, error)
}

// FeedbackClients groups the clients for user submitted feedback.
type FeedbackClients interface {
	Posts() PostsClient
	Comments() CommentsClient
	Votes() VotesClient
	StatusChanges() StatusChangesClient
	Autopilot() AutopilotClient
}

// OrganizationClients groups the clients for boards and their taxonomy.
type OrganizationClients interface {
	Boards() BoardsClient
	Categories() CategoriesClient
	Tags() TagsClient
}

// AccountClients groups the clients for users and the accounts they belong to.
type AccountClients interface {
	Users() UsersClient
	Companies() CompaniesClient
	Groups() GroupsClient
	Opportunities() OpportunitiesClient
}

// ProductClients groups the clients for roadmap and changelog content.
type ProductClients interface {
	Entries() EntriesClient
	Ideas() IdeasClient
	Insights() InsightsClient
}

// Client is the full Canny API surface.
type Client interface {
	FeedbackClients
	OrganizationClients
	AccountClients
	ProductClients
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a Client.
//
// APIURL is the v1 base URL, for example "https://example.canny.io/api/v1".
// The v2 endpoints are derived from it per call by replacing "/v1" with "/v2".
//
// Requests are not retried unless RetryMax is set. A zero Timeout means the
// transport default.
type Config struct {
	APIURL string
	APIKey string

	UserAgent string
	Timeout   time.Duration

	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration

	// Cache, when set, serves read-only endpoints from previously stored responses.
	Cache    Cache
	CacheTTL time.Duration

	Logger Logger
	Debug  bool
}

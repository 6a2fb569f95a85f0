package canny

import "encoding/json"

// Request parameters. Pointer, slice and json.RawMessage fields are optional:
// a nil value is left out of the request body entirely.

// PostListParams filters posts/list.
type PostListParams struct {
	BoardID   string
	Limit     *int
	Skip      *int
	Sort      *string
	Status    *string
	AuthorID  *string
	Search    *string
	CompanyID *string
	TagIDs    []string
}

// PostRetrieveParams identifies a post by ID or by URL name.
type PostRetrieveParams struct {
	ID      *string
	URLName *string
	BoardID *string
}

// PostCreateRequest creates a post.
type PostCreateRequest struct {
	BoardID      string
	AuthorID     string
	Title        string
	Details      *string
	CategoryID   *string
	ByID         *string
	CustomFields json.RawMessage
	ETA          *string
	ETAPublic    *bool
	OwnerID      *string
	ImageURLs    []string
	CreatedAt    *string
}

// PostStatusRequest changes a post's status.
type PostStatusRequest struct {
	PostID             string
	ChangerID          string
	Status             string
	ShouldNotifyVoters bool
	CommentValue       *string
	CommentImageURLs   []string
}

// PostUpdateRequest updates a post.
type PostUpdateRequest struct {
	PostID       string
	Title        *string
	Details      *string
	ImageURLs    []string
	ETA          *string
	ETAPublic    *bool
	CustomFields json.RawMessage
}

// CommentListParams filters comments/list.
type CommentListParams struct {
	PostID    *string
	AuthorID  *string
	BoardID   *string
	CompanyID *string
	Limit     *int
	Skip      *int
}

// CommentCreateRequest creates a comment.
type CommentCreateRequest struct {
	PostID             string
	AuthorID           string
	Value              string
	ParentID           *string
	CreatedAt          *string
	ImageURLs          []string
	Internal           *bool
	ShouldNotifyVoters *bool
}

// CategoryListParams filters categories/list.
type CategoryListParams struct {
	BoardID string
	Limit   *int
	Skip    *int
}

// CategoryCreateRequest creates a category.
type CategoryCreateRequest struct {
	BoardID         string
	Name            string
	SubscribeAdmins bool
	ParentID        *string
}

// UserRetrieveParams identifies a user by Canny ID or email.
type UserRetrieveParams struct {
	ID    *string
	Email *string
}

// UserCreateRequest creates or updates a user.
type UserCreateRequest struct {
	UserID       string
	Email        string
	ID           *string
	Name         *string
	AvatarURL    *string
	Created      *string
	CompanyID    *string
	CustomFields json.RawMessage
}

// UserFindParams looks a user up by any of the given fields.
type UserFindParams struct {
	UserID *string
	Email  *string
	Name   *string
}

// TagListParams filters tags/list.
type TagListParams struct {
	BoardID string
	Limit   *int
	Skip    *int
}

// CompanyListParams filters companies/list.
type CompanyListParams struct {
	Limit   *int
	Cursor  *string
	Search  *string
	Segment *string
}

// CompanyUpdateRequest updates a company.
type CompanyUpdateRequest struct {
	ID           string
	Name         *string
	MonthlySpend *float64
	CustomFields json.RawMessage
	Created      *string
}

// VoteListParams filters votes/list.
type VoteListParams struct {
	PostID *string
	UserID *string
	Limit  *int
	Skip   *int
}

// StatusChangeListParams filters status_changes/list.
type StatusChangeListParams struct {
	BoardID string
	Limit   *int
	Skip    *int
}

// EntryListParams filters entries/list.
type EntryListParams struct {
	Limit    *int
	Skip     *int
	Type     *string
	LabelIDs []string
	Sort     *string
}

// EntryCreateRequest creates a changelog entry.
type EntryCreateRequest struct {
	Title        string
	Details      *string
	Type         *string
	Published    *bool
	Notify       *bool
	PostIDs      []string
	LabelIDs     []string
	PublishedOn  *string
	ScheduledFor *string
}

// EntryUpdateRequest updates a changelog entry.
type EntryUpdateRequest struct {
	EntryID   string
	Title     *string
	Details   *string
	Type      *string
	Published *bool
	Notify    *bool
	LabelIDs  []string
}

// OpportunityListParams filters opportunities/list.
type OpportunityListParams struct {
	PostID string
	Limit  *int
	Skip   *int
}

// GroupListParams pages through groups/list.
type GroupListParams struct {
	Limit  *int
	Cursor *string
}

// IDOrURLName identifies a resource that can be looked up by either key.
type IDOrURLName struct {
	ID      *string
	URLName *string
}

// InsightListParams filters insights/list.
type InsightListParams struct {
	Limit  *int
	Cursor *string
	IdeaID *string
}

// IdeaListParams filters ideas/list.
type IdeaListParams struct {
	Limit    *int
	Cursor   *string
	ParentID *string
	Search   *string
}

// AutopilotEnqueueRequest submits feedback for autopilot processing.
type AutopilotEnqueueRequest struct {
	Feedback  string
	UserID    string
	SourceURL *string
}

package canny

import "encoding/json"

// User is the compact user record embedded in posts, comments and votes.
type User struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     *string `json:"email,omitempty"`
	AvatarURL *string `json:"avatarURL,omitempty"`
}

// UserFull is the user record returned by the users endpoints.
type UserFull struct {
	ID           string  `json:"id"`
	Name         *string `json:"name,omitempty"`
	Email        *string `json:"email,omitempty"`
	AvatarURL    *string `json:"avatarURL,omitempty"`
	Created      *string `json:"created,omitempty"`
	IsAdmin      *bool   `json:"isAdmin,omitempty"`
	LastActivity *string `json:"lastActivity,omitempty"`
	UserID       *string `json:"userID,omitempty"`
	URL          *string `json:"url,omitempty"`
}

// Category groups posts within a board.
type Category struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	PostCount *int    `json:"postCount,omitempty"`
	URL       *string `json:"url,omitempty"`
}

// Post is a piece of feedback on a board.
type Post struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Details      *string         `json:"details,omitempty"`
	URL          string          `json:"url"`
	Status       *string         `json:"status,omitempty"`
	CommentCount int             `json:"commentCount"`
	Score        int             `json:"score"`
	Created      *string         `json:"created,omitempty"`
	Author       *User           `json:"author,omitempty"`
	Category     *Category       `json:"category,omitempty"`
	CustomFields json.RawMessage `json:"customFields,omitempty"`
}

// Comment is a comment on a post, optionally a reply to another comment.
type Comment struct {
	ID       string  `json:"id"`
	Value    string  `json:"value"`
	Created  string  `json:"created"`
	Author   *User   `json:"author,omitempty"`
	Post     *Post   `json:"post,omitempty"`
	ParentID *string `json:"parentID,omitempty"`
	Pinned   *bool   `json:"pinned,omitempty"`
}

// Board holds posts.
type Board struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	URL             *string `json:"url,omitempty"`
	PostCount       *int    `json:"postCount,omitempty"`
	IsPrivate       *bool   `json:"isPrivate,omitempty"`
	PrivateComments *bool   `json:"privateComments,omitempty"`
	Token           *string `json:"token,omitempty"`
	Created         *string `json:"created,omitempty"`
}

// Tag labels posts within a board.
type Tag struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	BoardID   *string `json:"boardID,omitempty"`
	Created   *string `json:"created,omitempty"`
	PostCount *int    `json:"postCount,omitempty"`
	URL       *string `json:"url,omitempty"`
}

// Company is an organization users belong to.
type Company struct {
	ID           string          `json:"id"`
	Name         *string         `json:"name,omitempty"`
	Created      *string         `json:"created,omitempty"`
	MonthlySpend *float64        `json:"monthlySpend,omitempty"`
	UserCount    *int            `json:"userCount,omitempty"`
	CustomFields json.RawMessage `json:"customFields,omitempty"`
}

// Vote is a user's vote on a post.
type Vote struct {
	ID      string  `json:"id"`
	PostID  *string `json:"postID,omitempty"`
	Voter   *User   `json:"voter,omitempty"`
	Created *string `json:"created,omitempty"`
}

// StatusChange records a post moving between statuses.
type StatusChange struct {
	ID      string  `json:"id"`
	PostID  *string `json:"postID,omitempty"`
	Status  *string `json:"status,omitempty"`
	Created *string `json:"created,omitempty"`
	Changer *User   `json:"changer,omitempty"`
}

// Entry is a changelog entry.
type Entry struct {
	ID          string  `json:"id"`
	Title       *string `json:"title,omitempty"`
	Details     *string `json:"details,omitempty"`
	Created     *string `json:"created,omitempty"`
	PublishedAt *string `json:"publishedAt,omitempty"`
	Status      *string `json:"status,omitempty"`
	Type        *string `json:"type,omitempty"`
	URL         *string `json:"url,omitempty"`
}

// Opportunity is CRM deal information linked to a post.
type Opportunity struct {
	ID                      string   `json:"id"`
	Name                    *string  `json:"name,omitempty"`
	OpportunityID           *string  `json:"opportunityID,omitempty"`
	Value                   *float64 `json:"value,omitempty"`
	Won                     *bool    `json:"won,omitempty"`
	Closed                  *bool    `json:"closed,omitempty"`
	SalesforceOpportunityID *string  `json:"salesforceOpportunityID,omitempty"`
}

// Group is a collection of users.
type Group struct {
	ID          string  `json:"id"`
	Name        *string `json:"name,omitempty"`
	URL         *string `json:"url,omitempty"`
	Created     *string `json:"created,omitempty"`
	MemberCount *int    `json:"memberCount,omitempty"`
}

// Idea groups related posts under a theme.
type Idea struct {
	ID          string  `json:"id"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	URL         *string `json:"url,omitempty"`
	Created     *string `json:"created,omitempty"`
	PostCount   *int    `json:"postCount,omitempty"`
}

// Insight is a generated summary of feedback.
type Insight struct {
	ID          string  `json:"id"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	URL         *string `json:"url,omitempty"`
	Created     *string `json:"created,omitempty"`
}

// CreateResponse is returned by every create style endpoint.
type CreateResponse struct {
	ID string `json:"id"`
}

// Post sort orders accepted by posts/list.
const (
	PostSortNewest        = "newest"
	PostSortOldest        = "oldest"
	PostSortRelevance     = "relevance"
	PostSortScore         = "score"
	PostSortStatusChanged = "statusChanged"
	PostSortTrending      = "trending"
)

// PostSorts lists the valid posts/list sort values.
var PostSorts = []string{
	PostSortNewest,
	PostSortOldest,
	PostSortRelevance,
	PostSortScore,
	PostSortStatusChanged,
	PostSortTrending,
}

// EntrySorts lists the valid entries/list sort values.
var EntrySorts = []string{"created", "lastSaved", "nonPublishedFirst", "publishedAt"}

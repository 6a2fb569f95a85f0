package commands

import (
	"fmt"
	"strings"

	"github.com/fivetwenty-io/canny-cli/internal/constants"
	"github.com/fivetwenty-io/canny-cli/pkg/canny"
	"github.com/spf13/cobra"
)

// NewPostsCommand creates the posts command group
func NewPostsCommand(rt *Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "posts",
		Aliases: []string{"post", "p"},
		Short:   "Manage posts",
		Long: `Manage posts (feature requests, bug reports and other feedback).

Posts are the core content in Canny: each one belongs to a board and collects
votes and comments from users.`,
	}

	cmd.AddCommand(newPostsListCommand(rt))
	cmd.AddCommand(newPostsGetCommand(rt))
	cmd.AddCommand(newPostsCreateCommand(rt))
	cmd.AddCommand(newPostsStatusCommand(rt))
	cmd.AddCommand(newPostsCategoryCommand(rt))
	cmd.AddCommand(newPostsUpdateCommand(rt))
	cmd.AddCommand(newPostsDeleteCommand(rt))
	cmd.AddCommand(newPostsTagCommand(rt, "add-tag", "Add a tag to a post", true))
	cmd.AddCommand(newPostsTagCommand(rt, "remove-tag", "Remove a tag from a post", false))
	cmd.AddCommand(newPostsJiraCommand(rt, "link-jira", "Link a Jira issue to a post", true))
	cmd.AddCommand(newPostsJiraCommand(rt, "unlink-jira", "Unlink a Jira issue from a post", false))

	return cmd
}

var postListView = &ListView[canny.Post]{
	Plural:  "posts",
	Headers: []string{"ID", "Title", "Status", "Votes", "Comments", "Category"},
	Row: func(post canny.Post) []string {
		category := NotAvailable
		if post.Category != nil {
			category = post.Category.Name
		}

		return []string{
			post.ID,
			post.Title,
			strings.ToUpper(valueOr(post.Status, "unknown")),
			fmt.Sprintf("%d", post.Score),
			fmt.Sprintf("%d", post.CommentCount),
			category,
		}
	},
}

func newPostsListCommand(rt *Runtime) *cobra.Command {
	var (
		boardID   string
		limit     int
		skip      int
		sort      string
		statuses  []string
		authorID  string
		search    string
		companyID string
		tagIDs    []string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List posts from a board",
		Long: `Retrieve one page of posts from a board with optional filtering and sorting.

Examples:
  canny posts list --board-id abc123
  canny posts list --board-id abc123 --status open --sort score
  canny posts list --board-id abc123 --status open --status planned
  canny posts list --board-id abc123 --search "dark mode"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := rt.Client()
			if err != nil {
				return err
			}

			params := &canny.PostListParams{
				BoardID:   boardID,
				Limit:     &limit,
				Skip:      &skip,
				Sort:      &sort,
				AuthorID:  optString(cmd, "author-id", authorID),
				Search:    optString(cmd, "search", search),
				CompanyID: optString(cmd, "company-id", companyID),
				TagIDs:    optStrings(tagIDs),
			}

			if len(statuses) > 0 {
				status := strings.Join(statuses, ",")
				params.Status = &status
			}

			page, err := client.Posts().List(cmd.Context(), params)
			if err != nil {
				return err
			}

			return renderOffsetPage(rt, postListView, page)
		},
	}

	cmd.Flags().StringVar(&boardID, "board-id", "", "the ID of the board to list posts from")
	cmd.Flags().IntVar(&limit, "limit", constants.DefaultListLimit, "maximum number of posts to return")
	cmd.Flags().IntVar(&skip, "skip", 0, "number of posts to skip")
	cmd.Flags().StringVar(&sort, "sort", canny.PostSortNewest, "sort order ("+strings.Join(canny.PostSorts, ", ")+")")
	cmd.Flags().StringSliceVar(&statuses, "status", nil, "filter by status (repeatable)")
	cmd.Flags().StringVar(&authorID, "author-id", "", "filter by author ID")
	cmd.Flags().StringVar(&search, "search", "", "search posts by title and content")
	cmd.Flags().StringVar(&companyID, "company-id", "", "filter by company ID")
	cmd.Flags().StringSliceVar(&tagIDs, "tag-id", nil, "filter by tag ID (repeatable)")
	_ = cmd.MarkFlagRequired("board-id")

	return cmd
}

func newPostsGetCommand(rt *Runtime) *cobra.Command {
	var id, urlName, boardID string

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get a post by ID or URL name",
		Long:  "Display detailed information about a post. A URL name lookup also needs --board-id.",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := rt.Client()
			if err != nil {
				return err
			}

			post, err := client.Posts().Retrieve(cmd.Context(), &canny.PostRetrieveParams{
				ID:      optString(cmd, "id", id),
				URLName: optString(cmd, "url-name", urlName),
				BoardID: optString(cmd, "board-id", boardID),
			})
			if err != nil {
				return err
			}

			return renderRecord(rt, "Post", post, rt.renderPost)
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "the ID of the post")
	cmd.Flags().StringVar(&urlName, "url-name", "", "the URL name of the post")
	cmd.Flags().StringVar(&boardID, "board-id", "", "the board ID (used with --url-name)")

	return cmd
}

func newPostsCreateCommand(rt *Runtime) *cobra.Command {
	var (
		boardID      string
		authorID     string
		title        string
		details      string
		categoryID   string
		byID         string
		customFields string
		eta          string
		etaPublic    bool
		ownerID      string
		imageURLs    []string
		createdAt    string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a post",
		Long: `Create a post on a board. The author must be a user in your Canny account.

Examples:
  canny posts create --board-id abc123 --author-id user456 --title "Add dark mode"
  canny posts create --board-id abc123 --author-id user456 --title "SSO" \
    --custom-fields '{"priority": "high"}'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fields, err := parseCustomFields(customFields)
			if err != nil {
				return err
			}

			client, err := rt.Client()
			if err != nil {
				return err
			}

			id, err := client.Posts().Create(cmd.Context(), &canny.PostCreateRequest{
				BoardID:      boardID,
				AuthorID:     authorID,
				Title:        title,
				Details:      optString(cmd, "details", details),
				CategoryID:   optString(cmd, "category-id", categoryID),
				ByID:         optString(cmd, "by-id", byID),
				CustomFields: fields,
				ETA:          optString(cmd, "eta", eta),
				ETAPublic:    optBool(cmd, "eta-public", etaPublic),
				OwnerID:      optString(cmd, "owner-id", ownerID),
				ImageURLs:    optStrings(imageURLs),
				CreatedAt:    optString(cmd, "created-at", createdAt),
			})
			if err != nil {
				return err
			}

			return rt.printCreated("post", id)
		},
	}

	cmd.Flags().StringVar(&boardID, "board-id", "", "the ID of the board to post on")
	cmd.Flags().StringVar(&authorID, "author-id", "", "the ID of the user creating the post")
	cmd.Flags().StringVar(&title, "title", "", "title of the post")
	cmd.Flags().StringVar(&details, "details", "", "description of the post (markdown)")
	cmd.Flags().StringVar(&categoryID, "category-id", "", "category to assign")
	cmd.Flags().StringVar(&byID, "by-id", "", "the user performing the action, if not the author")
	cmd.Flags().StringVar(&customFields, "custom-fields", "", "custom fields as a JSON object")
	cmd.Flags().StringVar(&eta, "eta", "", "estimated completion (ISO 8601)")
	cmd.Flags().BoolVar(&etaPublic, "eta-public", false, "show the ETA to voters")
	cmd.Flags().StringVar(&ownerID, "owner-id", "", "the admin who owns the post")
	cmd.Flags().StringSliceVar(&imageURLs, "image-url", nil, "image URL to attach (repeatable)")
	cmd.Flags().StringVar(&createdAt, "created-at", "", "creation timestamp for imports (ISO 8601)")
	_ = cmd.MarkFlagRequired("board-id")
	_ = cmd.MarkFlagRequired("author-id")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newPostsStatusCommand(rt *Runtime) *cobra.Command {
	var (
		id        string
		changerID string
		status    string
		notify    bool
		comment   string
		imageURLs []string
	)

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Change the status of a post",
		Long: `Change the status of a post, optionally notifying voters and adding a comment.

Example:
  canny posts status --id post123 --changer-id user456 --status complete \
    --notify --comment "This feature is now live!"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := rt.Client()
			if err != nil {
				return err
			}

			err = client.Posts().ChangeStatus(cmd.Context(), &canny.PostStatusRequest{
				PostID:             id,
				ChangerID:          changerID,
				Status:             status,
				ShouldNotifyVoters: notify,
				CommentValue:       optString(cmd, "comment", comment),
				CommentImageURLs:   optStrings(imageURLs),
			})
			if err != nil {
				return err
			}

			return rt.printSuccess(fmt.Sprintf("Post status changed to %s.", rt.colors.cyan.Sprint(status)))
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "the ID of the post")
	cmd.Flags().StringVar(&changerID, "changer-id", "", "the ID of the user making the change")
	cmd.Flags().StringVar(&status, "status", "", "new status")
	cmd.Flags().BoolVar(&notify, "notify", false, "notify voters about the change")
	cmd.Flags().StringVar(&comment, "comment", "", "comment to add with the change")
	cmd.Flags().StringSliceVar(&imageURLs, "comment-image-url", nil, "image URL for the comment (repeatable)")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("changer-id")
	_ = cmd.MarkFlagRequired("status")

	return cmd
}

func newPostsCategoryCommand(rt *Runtime) *cobra.Command {
	var id, categoryID string

	cmd := &cobra.Command{
		Use:   "category",
		Short: "Change the category of a post",
		Long:  "Move a post to a different category within the same board",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := rt.Client()
			if err != nil {
				return err
			}

			err = client.Posts().ChangeCategory(cmd.Context(), id, categoryID)
			if err != nil {
				return err
			}

			return rt.printSuccess("Category updated.")
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "the ID of the post")
	cmd.Flags().StringVar(&categoryID, "category-id", "", "the ID of the new category")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("category-id")

	return cmd
}

func newPostsUpdateCommand(rt *Runtime) *cobra.Command {
	var (
		id           string
		title        string
		details      string
		imageURLs    []string
		eta          string
		etaPublic    bool
		customFields string
	)

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update a post",
		Long:  "Update the title, details, images, ETA or custom fields of an existing post",
		RunE: func(cmd *cobra.Command, args []string) error {
			fields, err := parseCustomFields(customFields)
			if err != nil {
				return err
			}

			client, err := rt.Client()
			if err != nil {
				return err
			}

			err = client.Posts().Update(cmd.Context(), &canny.PostUpdateRequest{
				PostID:       id,
				Title:        optString(cmd, "title", title),
				Details:      optString(cmd, "details", details),
				ImageURLs:    optStrings(imageURLs),
				ETA:          optString(cmd, "eta", eta),
				ETAPublic:    optBool(cmd, "eta-public", etaPublic),
				CustomFields: fields,
			})
			if err != nil {
				return err
			}

			return rt.printSuccess("Post updated.")
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "the ID of the post")
	cmd.Flags().StringVar(&title, "title", "", "new title")
	cmd.Flags().StringVar(&details, "details", "", "new details (markdown)")
	cmd.Flags().StringSliceVar(&imageURLs, "image-url", nil, "image URL to attach (repeatable)")
	cmd.Flags().StringVar(&eta, "eta", "", "estimated completion, e.g. 2024-03")
	cmd.Flags().BoolVar(&etaPublic, "eta-public", false, "show the ETA to voters")
	cmd.Flags().StringVar(&customFields, "custom-fields", "", "custom fields as a JSON object")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func newPostsDeleteCommand(rt *Runtime) *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a post",
		Long:  "Permanently delete a post by ID",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := rt.Client()
			if err != nil {
				return err
			}

			err = client.Posts().Delete(cmd.Context(), id)
			if err != nil {
				return err
			}

			return rt.printSuccess("Post deleted.")
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "the ID of the post")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func newPostsTagCommand(rt *Runtime, use, short string, add bool) *cobra.Command {
	var id, tagID string

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Long:  short + " by ID",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := rt.Client()
			if err != nil {
				return err
			}

			if add {
				err = client.Posts().AddTag(cmd.Context(), id, tagID)
			} else {
				err = client.Posts().RemoveTag(cmd.Context(), id, tagID)
			}

			if err != nil {
				return err
			}

			if add {
				return rt.printSuccess("Tag added to post.")
			}

			return rt.printSuccess("Tag removed from post.")
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "the ID of the post")
	cmd.Flags().StringVar(&tagID, "tag-id", "", "the ID of the tag")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("tag-id")

	return cmd
}

func newPostsJiraCommand(rt *Runtime, use, short string, link bool) *cobra.Command {
	var id, issueKey string

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Long:  short + " by issue key, e.g. PROJ-123",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := rt.Client()
			if err != nil {
				return err
			}

			if link {
				err = client.Posts().LinkJira(cmd.Context(), id, issueKey)
			} else {
				err = client.Posts().UnlinkJira(cmd.Context(), id, issueKey)
			}

			if err != nil {
				return err
			}

			if link {
				return rt.printSuccess(fmt.Sprintf("Jira issue %s linked to post.", rt.colors.cyan.Sprint(issueKey)))
			}

			return rt.printSuccess(fmt.Sprintf("Jira issue %s unlinked from post.", rt.colors.cyan.Sprint(issueKey)))
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "the ID of the post")
	cmd.Flags().StringVar(&issueKey, "issue-key", "", "the Jira issue key")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("issue-key")

	return cmd
}

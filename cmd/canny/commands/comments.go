package commands

import (
	"github.com/fivetwenty-io/canny-cli/internal/constants"
	"github.com/fivetwenty-io/canny-cli/pkg/canny"
	"github.com/spf13/cobra"
)

// NewCommentsCommand creates the comments command group
func NewCommentsCommand(rt *Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "comments",
		Aliases: []string{"comment"},
		Short:   "Manage comments on posts",
		Long:    "List, create, view and delete comments. Comments can be top level or replies to other comments.",
	}

	cmd.AddCommand(newCommentsListCommand(rt))
	cmd.AddCommand(newCommentsGetCommand(rt))
	cmd.AddCommand(newCommentsCreateCommand(rt))
	cmd.AddCommand(newCommentsDeleteCommand(rt))

	return cmd
}

var commentListView = &ListView[canny.Comment]{
	Plural:  "comments",
	Headers: []string{"ID", "Author", "Created", "Reply", "Value"},
	Row: func(comment canny.Comment) []string {
		reply := No
		if comment.ParentID != nil {
			reply = Yes
		}

		return []string{comment.ID, userName(comment.Author), comment.Created, reply, comment.Value}
	},
}

func newCommentsListCommand(rt *Runtime) *cobra.Command {
	var (
		postID    string
		authorID  string
		boardID   string
		companyID string
		limit     int
		skip      int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List comments",
		Long:  "Retrieve one page of comments, optionally filtered by post, author, board or company",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := rt.Client()
			if err != nil {
				return err
			}

			page, err := client.Comments().List(cmd.Context(), &canny.CommentListParams{
				PostID:    optString(cmd, "post-id", postID),
				AuthorID:  optString(cmd, "author-id", authorID),
				BoardID:   optString(cmd, "board-id", boardID),
				CompanyID: optString(cmd, "company-id", companyID),
				Limit:     &limit,
				Skip:      &skip,
			})
			if err != nil {
				return err
			}

			return renderOffsetPage(rt, commentListView, page)
		},
	}

	cmd.Flags().StringVar(&postID, "post-id", "", "filter by post ID")
	cmd.Flags().StringVar(&authorID, "author-id", "", "filter by author ID")
	cmd.Flags().StringVar(&boardID, "board-id", "", "filter by board ID")
	cmd.Flags().StringVar(&companyID, "company-id", "", "filter by company ID")
	cmd.Flags().IntVar(&limit, "limit", constants.DefaultListLimit, "maximum number of comments to return")
	cmd.Flags().IntVar(&skip, "skip", 0, "number of comments to skip")

	return cmd
}

func newCommentsGetCommand(rt *Runtime) *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get a comment",
		Long:  "Display the author, creation date and content of a comment",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := rt.Client()
			if err != nil {
				return err
			}

			comment, err := client.Comments().Retrieve(cmd.Context(), id)
			if err != nil {
				return err
			}

			return renderRecord(rt, "Comment", comment, rt.renderComment)
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "the ID of the comment")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func newCommentsCreateCommand(rt *Runtime) *cobra.Command {
	var (
		postID       string
		authorID     string
		value        string
		parentID     string
		createdAt    string
		imageURLs    []string
		internal     bool
		notifyVoters bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a comment on a post",
		Long: `Add a comment to a post, optionally as a reply to another comment.

Examples:
  canny comments create --post-id post123 --author-id user456 --value "Great idea!"
  canny comments create --post-id post123 --author-id user456 --value "Agreed" --parent-id c789
  canny comments create --post-id post123 --author-id user456 --value "Internal note" --internal`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := rt.Client()
			if err != nil {
				return err
			}

			id, err := client.Comments().Create(cmd.Context(), &canny.CommentCreateRequest{
				PostID:             postID,
				AuthorID:           authorID,
				Value:              value,
				ParentID:           optString(cmd, "parent-id", parentID),
				CreatedAt:          optString(cmd, "created-at", createdAt),
				ImageURLs:          optStrings(imageURLs),
				Internal:           &internal,
				ShouldNotifyVoters: &notifyVoters,
			})
			if err != nil {
				return err
			}

			return rt.printCreated("comment", id)
		},
	}

	cmd.Flags().StringVar(&postID, "post-id", "", "the ID of the post to comment on")
	cmd.Flags().StringVar(&authorID, "author-id", "", "the ID of the user writing the comment")
	cmd.Flags().StringVar(&value, "value", "", "the comment text (markdown)")
	cmd.Flags().StringVar(&parentID, "parent-id", "", "parent comment ID for a reply")
	cmd.Flags().StringVar(&createdAt, "created-at", "", "creation timestamp (ISO 8601)")
	cmd.Flags().StringSliceVar(&imageURLs, "image-url", nil, "image URL to attach (repeatable)")
	cmd.Flags().BoolVar(&internal, "internal", false, "only visible to admins")
	cmd.Flags().BoolVar(&notifyVoters, "notify-voters", false, "notify the post's voters")
	_ = cmd.MarkFlagRequired("post-id")
	_ = cmd.MarkFlagRequired("author-id")
	_ = cmd.MarkFlagRequired("value")

	return cmd
}

func newCommentsDeleteCommand(rt *Runtime) *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a comment",
		Long:  "Permanently delete a comment by ID",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := rt.Client()
			if err != nil {
				return err
			}

			err = client.Comments().Delete(cmd.Context(), id)
			if err != nil {
				return err
			}

			return rt.printSuccess("Comment deleted.")
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "the ID of the comment")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

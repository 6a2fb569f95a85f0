package commands

import (
	"github.com/fivetwenty-io/canny-cli/internal/constants"
	"github.com/fivetwenty-io/canny-cli/pkg/canny"
	"github.com/spf13/cobra"
)

// NewVotesCommand creates the votes command group
func NewVotesCommand(rt *Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "votes",
		Aliases: []string{"vote"},
		Short:   "Manage votes on posts",
		Long:    "Votes record a user's support for a post",
	}

	cmd.AddCommand(newVotesListCommand(rt))
	cmd.AddCommand(newVotesGetCommand(rt))
	cmd.AddCommand(newVotesCreateCommand(rt))
	cmd.AddCommand(newVotesDeleteCommand(rt))

	return cmd
}

var voteListView = &ListView[canny.Vote]{
	Plural:  "votes",
	Title:   "Votes:",
	Headers: []string{"ID", "Voter", "Post ID", "Created"},
	Row: func(vote canny.Vote) []string {
		return []string{
			vote.ID,
			userName(vote.Voter),
			valueOr(vote.PostID, NotAvailable),
			valueOr(vote.Created, NotAvailable),
		}
	},
}

func newVotesListCommand(rt *Runtime) *cobra.Command {
	var (
		postID string
		userID string
		limit  int
		skip   int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List votes for a post or user",
		Long:  "Retrieve one page of votes, filtered by --post-id and/or --user-id",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := rt.Client()
			if err != nil {
				return err
			}

			page, err := client.Votes().List(cmd.Context(), &canny.VoteListParams{
				PostID: optString(cmd, "post-id", postID),
				UserID: optString(cmd, "user-id", userID),
				Limit:  &limit,
				Skip:   &skip,
			})
			if err != nil {
				return err
			}

			return renderOffsetPage(rt, voteListView, page)
		},
	}

	cmd.Flags().StringVar(&postID, "post-id", "", "filter by post ID")
	cmd.Flags().StringVar(&userID, "user-id", "", "filter by user ID")
	cmd.Flags().IntVar(&limit, "limit", constants.DefaultListLimit, "maximum number of votes to return")
	cmd.Flags().IntVar(&skip, "skip", 0, "number of votes to skip")

	return cmd
}

func newVotesGetCommand(rt *Runtime) *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get a vote",
		Long:  "Display detailed information about a vote",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := rt.Client()
			if err != nil {
				return err
			}

			vote, err := client.Votes().Retrieve(cmd.Context(), id)
			if err != nil {
				return err
			}

			return renderRecord(rt, "Vote", vote, rt.renderVote)
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "the ID of the vote")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func newVotesCreateCommand(rt *Runtime) *cobra.Command {
	var postID, userID string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Vote on a post",
		Long:  "Add a vote from a user to a post",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := rt.Client()
			if err != nil {
				return err
			}

			err = client.Votes().Create(cmd.Context(), postID, userID)
			if err != nil {
				return err
			}

			return rt.printSuccess("Vote created.")
		},
	}

	cmd.Flags().StringVar(&postID, "post-id", "", "the ID of the post")
	cmd.Flags().StringVar(&userID, "user-id", "", "the ID of the voting user")
	_ = cmd.MarkFlagRequired("post-id")
	_ = cmd.MarkFlagRequired("user-id")

	return cmd
}

func newVotesDeleteCommand(rt *Runtime) *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a vote",
		Long:  "Remove a vote by ID",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := rt.Client()
			if err != nil {
				return err
			}

			err = client.Votes().Delete(cmd.Context(), id)
			if err != nil {
				return err
			}

			return rt.printSuccess("Vote deleted.")
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "the ID of the vote")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

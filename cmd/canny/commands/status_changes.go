package commands

import (
	"github.com/fivetwenty-io/canny-cli/internal/constants"
	"github.com/fivetwenty-io/canny-cli/pkg/canny"
	"github.com/spf13/cobra"
)

// NewStatusChangesCommand creates the status-changes command group
func NewStatusChangesCommand(rt *Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "status-changes",
		Aliases: []string{"status-change", "sc"},
		Short:   "View status changes for posts",
		Long:    "Status changes record when a post moved between statuses, for example from open to planned",
	}

	cmd.AddCommand(newStatusChangesListCommand(rt))

	return cmd
}

func newStatusChangesListCommand(rt *Runtime) *cobra.Command {
	var (
		boardID string
		limit   int
		skip    int
	)

	view := &ListView[canny.StatusChange]{
		Plural:  "status changes",
		Title:   "Status Changes:",
		Headers: []string{"ID", "Post ID", "Status", "Changed By", "Created"},
		Row: func(change canny.StatusChange) []string {
			return []string{
				change.ID,
				valueOr(change.PostID, NotAvailable),
				rt.postStatus(change.Status),
				userName(change.Changer),
				valueOr(change.Created, NotAvailable),
			}
		},
	}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List status changes for a board",
		Long:  "Retrieve one page of the status changes of posts on a board",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := rt.Client()
			if err != nil {
				return err
			}

			page, err := client.StatusChanges().List(cmd.Context(), &canny.StatusChangeListParams{
				BoardID: boardID,
				Limit:   &limit,
				Skip:    &skip,
			})
			if err != nil {
				return err
			}

			return renderOffsetPage(rt, view, page)
		},
	}

	cmd.Flags().StringVar(&boardID, "board-id", "", "the ID of the board")
	cmd.Flags().IntVar(&limit, "limit", constants.DefaultListLimit, "maximum number of status changes to return")
	cmd.Flags().IntVar(&skip, "skip", 0, "number of status changes to skip")
	_ = cmd.MarkFlagRequired("board-id")

	return cmd
}

package commands

import (
	"github.com/fivetwenty-io/canny-cli/internal/constants"
	"github.com/fivetwenty-io/canny-cli/pkg/canny"
	"github.com/spf13/cobra"
)

// NewIdeasCommand creates the ideas command group
func NewIdeasCommand(rt *Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ideas",
		Aliases: []string{"idea"},
		Short:   "View ideas",
		Long:    "Ideas are high level themes that group related posts together",
	}

	cmd.AddCommand(newIdeasListCommand(rt))
	cmd.AddCommand(newIdeasGetCommand(rt))

	return cmd
}

var ideaListView = &ListView[canny.Idea]{
	Plural:  "ideas",
	Headers: []string{"ID", "Name", "Posts", "URL"},
	Row: func(idea canny.Idea) []string {
		return []string{
			idea.ID,
			valueOr(idea.Name, "(no name)"),
			intOr(idea.PostCount, "0"),
			valueOr(idea.URL, NotAvailable),
		}
	},
}

func newIdeasListCommand(rt *Runtime) *cobra.Command {
	var (
		limit    int
		cursor   string
		parentID string
		search   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List ideas",
		Long:  "Retrieve one page of ideas, optionally filtered by parent or search term",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := rt.Client()
			if err != nil {
				return err
			}

			page, err := client.Ideas().List(cmd.Context(), &canny.IdeaListParams{
				Limit:    &limit,
				Cursor:   optString(cmd, "cursor", cursor),
				ParentID: optString(cmd, "parent-id", parentID),
				Search:   optString(cmd, "search", search),
			})
			if err != nil {
				return err
			}

			return renderCursorPage(rt, ideaListView, page)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", constants.DefaultListLimit, "maximum number of ideas to return")
	cmd.Flags().StringVar(&cursor, "cursor", "", "cursor from a previous page")
	cmd.Flags().StringVar(&parentID, "parent-id", "", "filter by parent idea ID")
	cmd.Flags().StringVar(&search, "search", "", "search term")

	return cmd
}

func newIdeasGetCommand(rt *Runtime) *cobra.Command {
	var id, urlName string

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get an idea by ID or URL name",
		Long:  "Display detailed information about an idea",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := rt.Client()
			if err != nil {
				return err
			}

			idea, err := client.Ideas().Retrieve(cmd.Context(), &canny.IDOrURLName{
				ID:      optString(cmd, "id", id),
				URLName: optString(cmd, "url-name", urlName),
			})
			if err != nil {
				return err
			}

			return renderRecord(rt, "Idea", idea, rt.renderIdea)
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "the ID of the idea")
	cmd.Flags().StringVar(&urlName, "url-name", "", "the URL name of the idea")

	return cmd
}

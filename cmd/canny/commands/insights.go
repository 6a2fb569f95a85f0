package commands

import (
	"github.com/fivetwenty-io/canny-cli/internal/constants"
	"github.com/fivetwenty-io/canny-cli/pkg/canny"
	"github.com/spf13/cobra"
)

// NewInsightsCommand creates the insights command group
func NewInsightsCommand(rt *Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "insights",
		Aliases: []string{"insight"},
		Short:   "View insights",
		Long:    "Insights are generated summaries and analysis of user feedback",
	}

	cmd.AddCommand(newInsightsListCommand(rt))
	cmd.AddCommand(newInsightsGetCommand(rt))

	return cmd
}

var insightListView = &ListView[canny.Insight]{
	Plural:  "insights",
	Headers: []string{"ID", "Title", "Created"},
	Row: func(insight canny.Insight) []string {
		return []string{insight.ID, valueOr(insight.Title, "(no title)"), valueOr(insight.Created, NotAvailable)}
	},
}

func newInsightsListCommand(rt *Runtime) *cobra.Command {
	var (
		limit  int
		cursor string
		ideaID string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List insights",
		Long:  "Retrieve one page of insights, optionally for a single idea",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := rt.Client()
			if err != nil {
				return err
			}

			page, err := client.Insights().List(cmd.Context(), &canny.InsightListParams{
				Limit:  &limit,
				Cursor: optString(cmd, "cursor", cursor),
				IdeaID: optString(cmd, "idea-id", ideaID),
			})
			if err != nil {
				return err
			}

			return renderCursorPage(rt, insightListView, page)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", constants.DefaultListLimit, "maximum number of insights to return")
	cmd.Flags().StringVar(&cursor, "cursor", "", "cursor from a previous page")
	cmd.Flags().StringVar(&ideaID, "idea-id", "", "filter by idea ID")

	return cmd
}

func newInsightsGetCommand(rt *Runtime) *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get an insight",
		Long:  "Display detailed information about an insight",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := rt.Client()
			if err != nil {
				return err
			}

			insight, err := client.Insights().Retrieve(cmd.Context(), id)
			if err != nil {
				return err
			}

			return renderRecord(rt, "Insight", insight, rt.renderInsight)
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "the ID of the insight")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

package commands

import (
	"fmt"

	"github.com/fivetwenty-io/canny-cli/internal/constants"
	"github.com/fivetwenty-io/canny-cli/pkg/canny"
	"github.com/spf13/cobra"
)

// NewOpportunitiesCommand creates the opportunities command group
func NewOpportunitiesCommand(rt *Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "opportunities",
		Aliases: []string{"opportunity", "opp"},
		Short:   "List opportunities linked to posts",
		Long:    "Opportunities are CRM deals, for example from Salesforce, linked to posts",
	}

	cmd.AddCommand(newOpportunitiesListCommand(rt))

	return cmd
}

var opportunityListView = &ListView[canny.Opportunity]{
	Plural:  "opportunities",
	Title:   "Opportunities:",
	Headers: []string{"ID", "Name", "Value", "Won", "Closed"},
	Row: func(opp canny.Opportunity) []string {
		value := NotAvailable
		if opp.Value != nil {
			value = fmt.Sprintf("%.2f", *opp.Value)
		}

		return []string{opp.ID, valueOr(opp.Name, "(no name)"), value, yesNo(opp.Won), yesNo(opp.Closed)}
	},
}

func newOpportunitiesListCommand(rt *Runtime) *cobra.Command {
	var (
		postID string
		limit  int
		skip   int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List opportunities for a post",
		Long:  "Retrieve one page of the opportunities linked to a post",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := rt.Client()
			if err != nil {
				return err
			}

			page, err := client.Opportunities().List(cmd.Context(), &canny.OpportunityListParams{
				PostID: postID,
				Limit:  &limit,
				Skip:   &skip,
			})
			if err != nil {
				return err
			}

			return renderOffsetPage(rt, opportunityListView, page)
		},
	}

	cmd.Flags().StringVar(&postID, "post-id", "", "the ID of the post")
	cmd.Flags().IntVar(&limit, "limit", constants.DefaultListLimit, "maximum number of opportunities to return")
	cmd.Flags().IntVar(&skip, "skip", 0, "number of opportunities to skip")
	_ = cmd.MarkFlagRequired("post-id")

	return cmd
}

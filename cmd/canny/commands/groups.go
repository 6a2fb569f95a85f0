package commands

import (
	"github.com/fivetwenty-io/canny-cli/internal/constants"
	"github.com/fivetwenty-io/canny-cli/pkg/canny"
	"github.com/spf13/cobra"
)

// NewGroupsCommand creates the groups command group
func NewGroupsCommand(rt *Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "groups",
		Aliases: []string{"group"},
		Short:   "Manage groups",
		Long:    "Groups are collections of users",
	}

	cmd.AddCommand(newGroupsListCommand(rt))
	cmd.AddCommand(newGroupsGetCommand(rt))

	return cmd
}

var groupListView = &ListView[canny.Group]{
	Plural:  "groups",
	Headers: []string{"ID", "Name", "Members", "URL"},
	Row: func(group canny.Group) []string {
		return []string{
			group.ID,
			valueOr(group.Name, "(no name)"),
			intOr(group.MemberCount, "0"),
			valueOr(group.URL, NotAvailable),
		}
	},
}

func newGroupsListCommand(rt *Runtime) *cobra.Command {
	var (
		limit  int
		cursor string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List groups",
		Long:  "Retrieve one page of groups. Pass the printed cursor to --cursor for the next page.",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := rt.Client()
			if err != nil {
				return err
			}

			page, err := client.Groups().List(cmd.Context(), &canny.GroupListParams{
				Limit:  &limit,
				Cursor: optString(cmd, "cursor", cursor),
			})
			if err != nil {
				return err
			}

			return renderCursorPage(rt, groupListView, page)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", constants.DefaultListLimit, "maximum number of groups to return")
	cmd.Flags().StringVar(&cursor, "cursor", "", "cursor from a previous page")

	return cmd
}

func newGroupsGetCommand(rt *Runtime) *cobra.Command {
	var id, urlName string

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get a group by ID or URL name",
		Long:  "Display detailed information about a group",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := rt.Client()
			if err != nil {
				return err
			}

			group, err := client.Groups().Retrieve(cmd.Context(), &canny.IDOrURLName{
				ID:      optString(cmd, "id", id),
				URLName: optString(cmd, "url-name", urlName),
			})
			if err != nil {
				return err
			}

			return renderRecord(rt, "Group", group, rt.renderGroup)
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "the ID of the group")
	cmd.Flags().StringVar(&urlName, "url-name", "", "the URL name of the group")

	return cmd
}

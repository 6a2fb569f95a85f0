package commands

import (
	"github.com/fivetwenty-io/canny-cli/internal/constants"
	"github.com/fivetwenty-io/canny-cli/pkg/canny"
	"github.com/spf13/cobra"
)

// NewTagsCommand creates the tags command group
func NewTagsCommand(rt *Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tags",
		Aliases: []string{"tag"},
		Short:   "Manage tags",
		Long:    "Tags label the posts within a board",
	}

	cmd.AddCommand(newTagsListCommand(rt))
	cmd.AddCommand(newTagsGetCommand(rt))
	cmd.AddCommand(newTagsCreateCommand(rt))
	cmd.AddCommand(newTagsDeleteCommand(rt))

	return cmd
}

var tagListView = &ListView[canny.Tag]{
	Plural:  "tags",
	Title:   "Tags:",
	Headers: []string{"ID", "Name", "Posts"},
	Row: func(tag canny.Tag) []string {
		return []string{tag.ID, tag.Name, intOr(tag.PostCount, "0")}
	},
}

func newTagsListCommand(rt *Runtime) *cobra.Command {
	var (
		boardID string
		limit   int
		skip    int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tags for a board",
		Long:  "Retrieve one page of the tags defined for a board",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := rt.Client()
			if err != nil {
				return err
			}

			page, err := client.Tags().List(cmd.Context(), &canny.TagListParams{
				BoardID: boardID,
				Limit:   &limit,
				Skip:    &skip,
			})
			if err != nil {
				return err
			}

			return renderOffsetPage(rt, tagListView, page)
		},
	}

	cmd.Flags().StringVar(&boardID, "board-id", "", "the ID of the board")
	cmd.Flags().IntVar(&limit, "limit", constants.DefaultTaxonomyLimit, "maximum number of tags to return")
	cmd.Flags().IntVar(&skip, "skip", 0, "number of tags to skip")
	_ = cmd.MarkFlagRequired("board-id")

	return cmd
}

func newTagsGetCommand(rt *Runtime) *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get a tag",
		Long:  "Display detailed information about a tag",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := rt.Client()
			if err != nil {
				return err
			}

			tag, err := client.Tags().Retrieve(cmd.Context(), id)
			if err != nil {
				return err
			}

			return renderRecord(rt, "Tag", tag, rt.renderTag)
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "the ID of the tag")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func newTagsCreateCommand(rt *Runtime) *cobra.Command {
	var boardID, name string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a tag",
		Long:  "Create a tag on a board",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := rt.Client()
			if err != nil {
				return err
			}

			id, err := client.Tags().Create(cmd.Context(), boardID, name)
			if err != nil {
				return err
			}

			return rt.printCreated("tag", id)
		},
	}

	cmd.Flags().StringVar(&boardID, "board-id", "", "the ID of the board")
	cmd.Flags().StringVar(&name, "name", "", "name of the tag")
	_ = cmd.MarkFlagRequired("board-id")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newTagsDeleteCommand(rt *Runtime) *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a tag",
		Long:  "Permanently delete a tag by ID",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := rt.Client()
			if err != nil {
				return err
			}

			err = client.Tags().Delete(cmd.Context(), id)
			if err != nil {
				return err
			}

			return rt.printSuccess("Tag deleted.")
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "the ID of the tag")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

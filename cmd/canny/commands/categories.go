package commands

import (
	"github.com/fivetwenty-io/canny-cli/internal/constants"
	"github.com/fivetwenty-io/canny-cli/pkg/canny"
	"github.com/spf13/cobra"
)

// NewCategoriesCommand creates the categories command group
func NewCategoriesCommand(rt *Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "categories",
		Aliases: []string{"category", "cat"},
		Short:   "Manage categories",
		Long:    "Categories organize the posts within a board",
	}

	cmd.AddCommand(newCategoriesListCommand(rt))
	cmd.AddCommand(newCategoriesGetCommand(rt))
	cmd.AddCommand(newCategoriesCreateCommand(rt))
	cmd.AddCommand(newCategoriesDeleteCommand(rt))

	return cmd
}

var categoryListView = &ListView[canny.Category]{
	Plural:  "categories",
	Title:   "Categories:",
	Headers: []string{"ID", "Name", "Posts"},
	Row: func(category canny.Category) []string {
		return []string{category.ID, category.Name, intOr(category.PostCount, "0")}
	},
}

func newCategoriesListCommand(rt *Runtime) *cobra.Command {
	var (
		boardID string
		limit   int
		skip    int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List categories for a board",
		Long:  "Retrieve one page of the categories defined for a board",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := rt.Client()
			if err != nil {
				return err
			}

			page, err := client.Categories().List(cmd.Context(), &canny.CategoryListParams{
				BoardID: boardID,
				Limit:   &limit,
				Skip:    &skip,
			})
			if err != nil {
				return err
			}

			return renderOffsetPage(rt, categoryListView, page)
		},
	}

	cmd.Flags().StringVar(&boardID, "board-id", "", "the ID of the board")
	cmd.Flags().IntVar(&limit, "limit", constants.DefaultTaxonomyLimit, "maximum number of categories to return")
	cmd.Flags().IntVar(&skip, "skip", 0, "number of categories to skip")
	_ = cmd.MarkFlagRequired("board-id")

	return cmd
}

func newCategoriesGetCommand(rt *Runtime) *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get a category",
		Long:  "Display detailed information about a category",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := rt.Client()
			if err != nil {
				return err
			}

			category, err := client.Categories().Retrieve(cmd.Context(), id)
			if err != nil {
				return err
			}

			return renderRecord(rt, "Category", category, rt.renderCategory)
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "the ID of the category")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func newCategoriesCreateCommand(rt *Runtime) *cobra.Command {
	var (
		boardID         string
		name            string
		parentID        string
		subscribeAdmins bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a category",
		Long:  "Create a category on a board. Pass --parent-id to create a subcategory.",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := rt.Client()
			if err != nil {
				return err
			}

			id, err := client.Categories().Create(cmd.Context(), &canny.CategoryCreateRequest{
				BoardID:         boardID,
				Name:            name,
				SubscribeAdmins: subscribeAdmins,
				ParentID:        optString(cmd, "parent-id", parentID),
			})
			if err != nil {
				return err
			}

			return rt.printCreated("category", id)
		},
	}

	cmd.Flags().StringVar(&boardID, "board-id", "", "the ID of the board")
	cmd.Flags().StringVar(&name, "name", "", "name of the category")
	cmd.Flags().StringVar(&parentID, "parent-id", "", "parent category ID")
	cmd.Flags().BoolVar(&subscribeAdmins, "subscribe-admins", true, "subscribe admins to the category")
	_ = cmd.MarkFlagRequired("board-id")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newCategoriesDeleteCommand(rt *Runtime) *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a category",
		Long:  "Permanently delete a category by ID",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := rt.Client()
			if err != nil {
				return err
			}

			err = client.Categories().Delete(cmd.Context(), id)
			if err != nil {
				return err
			}

			return rt.printSuccess("Category deleted.")
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "the ID of the category")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

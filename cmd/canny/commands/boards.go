package commands

import (
	"fmt"

	"github.com/fivetwenty-io/canny-cli/pkg/canny"
	"github.com/spf13/cobra"
)

// NewBoardsCommand creates the boards command group
func NewBoardsCommand(rt *Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "boards",
		Aliases: []string{"board", "b"},
		Short:   "Manage boards",
		Long:    "List and manage boards. Board IDs are needed to list posts, categories and tags.",
	}

	cmd.AddCommand(newBoardsListCommand(rt))
	cmd.AddCommand(newBoardsGetCommand(rt))
	cmd.AddCommand(newBoardsCreateCommand(rt))
	cmd.AddCommand(newBoardsDeleteCommand(rt))

	return cmd
}

var boardListView = &ListView[canny.Board]{
	Plural:  "boards",
	Headers: []string{"ID", "Name", "Posts", "Private", "URL"},
	Row: func(board canny.Board) []string {
		return []string{
			board.ID,
			board.Name,
			intOr(board.PostCount, "0"),
			yesNo(board.IsPrivate),
			valueOr(board.URL, NotAvailable),
		}
	},
}

func newBoardsListCommand(rt *Runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all boards",
		Long:  "Retrieve every board in the account",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := rt.Client()
			if err != nil {
				return err
			}

			boards, err := client.Boards().List(cmd.Context())
			if err != nil {
				return err
			}

			if !rt.structured() && len(boards) > 0 {
				_, _ = fmt.Fprintf(rt.stdout, "%s (%d total)\n", rt.colors.bold.Sprint("Boards:"), len(boards))
			}

			_, err = boardListView.Render(rt, boards)

			return err
		},
	}
}

func newBoardsGetCommand(rt *Runtime) *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get a board",
		Long:  "Display detailed information about a board",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := rt.Client()
			if err != nil {
				return err
			}

			board, err := client.Boards().Retrieve(cmd.Context(), id)
			if err != nil {
				return err
			}

			return renderRecord(rt, "Board", board, rt.renderBoard)
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "the ID of the board")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func newBoardsCreateCommand(rt *Runtime) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a board",
		Long:  "Create a board with the given name",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := rt.Client()
			if err != nil {
				return err
			}

			id, err := client.Boards().Create(cmd.Context(), name)
			if err != nil {
				return err
			}

			return rt.printCreated("board", id)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "name of the board")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newBoardsDeleteCommand(rt *Runtime) *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a board",
		Long:  "Permanently delete a board by ID",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := rt.Client()
			if err != nil {
				return err
			}

			err = client.Boards().Delete(cmd.Context(), id)
			if err != nil {
				return err
			}

			return rt.printSuccess("Board deleted.")
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "the ID of the board")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

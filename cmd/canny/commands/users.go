package commands

import (
	"fmt"

	"github.com/fivetwenty-io/canny-cli/pkg/canny"
	"github.com/spf13/cobra"
)

// NewUsersCommand creates the users command group
func NewUsersCommand(rt *Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "users",
		Aliases: []string{"user", "u"},
		Short:   "Manage users",
		Long:    "List and manage users. Useful for finding the user IDs needed to create posts and comments.",
	}

	cmd.AddCommand(newUsersListCommand(rt))
	cmd.AddCommand(newUsersGetCommand(rt))
	cmd.AddCommand(newUsersCreateCommand(rt))
	cmd.AddCommand(newUsersDeleteCommand(rt))
	cmd.AddCommand(newUsersFindCommand(rt))
	cmd.AddCommand(newUsersRemoveFromCompanyCommand(rt))

	return cmd
}

var userListView = &ListView[canny.UserFull]{
	Plural:  "users",
	Headers: []string{"ID", "Name", "Email", "Admin"},
	Row: func(user canny.UserFull) []string {
		admin := ""
		if canny.BoolValue(user.IsAdmin) {
			admin = "ADMIN"
		}

		return []string{user.ID, valueOr(user.Name, "(no name)"), valueOr(user.Email, NotAvailable), admin}
	},
}

func newUsersListCommand(rt *Runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all users",
		Long:  "Retrieve every user in the account, fetching all pages",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := rt.Client()
			if err != nil {
				return err
			}

			var progress canny.ProgressFunc
			if !rt.structured() {
				progress = func(count int) {
					_, _ = fmt.Fprintf(rt.stderr, "\rFetching users... %d", count)
				}
			}

			users, err := client.Users().ListAll(cmd.Context(), progress)

			if progress != nil {
				_, _ = fmt.Fprint(rt.stderr, "\r\x1b[K")
			}

			if err != nil {
				return err
			}

			if !rt.structured() && len(users) > 0 {
				_, _ = fmt.Fprintf(rt.stdout, "%s (%d total)\n", rt.colors.bold.Sprint("Users:"), len(users))
			}

			_, err = userListView.Render(rt, users)

			return err
		},
	}
}

func newUsersGetCommand(rt *Runtime) *cobra.Command {
	var id, email string

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get a user by ID or email",
		Long:  "Display detailed information about a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := rt.Client()
			if err != nil {
				return err
			}

			user, err := client.Users().Retrieve(cmd.Context(), &canny.UserRetrieveParams{
				ID:    optString(cmd, "id", id),
				Email: optString(cmd, "email", email),
			})
			if err != nil {
				return err
			}

			return renderRecord(rt, "User", user, rt.renderUser)
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "the Canny ID of the user")
	cmd.Flags().StringVar(&email, "email", "", "the email of the user")

	return cmd
}

func newUsersCreateCommand(rt *Runtime) *cobra.Command {
	var (
		userID       string
		email        string
		id           string
		name         string
		avatarURL    string
		created      string
		companyID    string
		customFields string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create or update a user",
		Long: `Create a user, or update an existing one. --user-id is the identifier from your own system.

Example:
  canny users create --user-id u-42 --email jane@example.com --name "Jane" \
    --custom-fields '{"plan": "enterprise"}'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fields, err := parseCustomFields(customFields)
			if err != nil {
				return err
			}

			client, err := rt.Client()
			if err != nil {
				return err
			}

			createdID, err := client.Users().CreateOrUpdate(cmd.Context(), &canny.UserCreateRequest{
				UserID:       userID,
				Email:        email,
				ID:           optString(cmd, "id", id),
				Name:         optString(cmd, "name", name),
				AvatarURL:    optString(cmd, "avatar-url", avatarURL),
				Created:      optString(cmd, "created", created),
				CompanyID:    optString(cmd, "company-id", companyID),
				CustomFields: fields,
			})
			if err != nil {
				return err
			}

			return rt.printCreated("user", createdID)
		},
	}

	cmd.Flags().StringVar(&userID, "user-id", "", "unique identifier of the user in your system")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&id, "id", "", "Canny ID of an existing user to update")
	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&avatarURL, "avatar-url", "", "avatar image URL")
	cmd.Flags().StringVar(&created, "created", "", "creation timestamp (ISO 8601)")
	cmd.Flags().StringVar(&companyID, "company-id", "", "company to associate the user with")
	cmd.Flags().StringVar(&customFields, "custom-fields", "", "custom fields as a JSON object")
	_ = cmd.MarkFlagRequired("user-id")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newUsersDeleteCommand(rt *Runtime) *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a user",
		Long:  "Permanently delete a user by ID",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := rt.Client()
			if err != nil {
				return err
			}

			err = client.Users().Delete(cmd.Context(), id)
			if err != nil {
				return err
			}

			return rt.printSuccess("User deleted.")
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "the ID of the user")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func newUsersFindCommand(rt *Runtime) *cobra.Command {
	var userID, email, name string

	cmd := &cobra.Command{
		Use:   "find",
		Short: "Find a user by ID, email or name",
		Long:  "Look a user up by any of --user-id, --email or --name",
		RunE: func(cmd *cobra.Command, args []string) error {
			params := &canny.UserFindParams{
				UserID: optString(cmd, "user-id", userID),
				Email:  optString(cmd, "email", email),
				Name:   optString(cmd, "name", name),
			}

			if params.UserID == nil && params.Email == nil && params.Name == nil {
				return fmt.Errorf("%w: --user-id, --email or --name", ErrIdentifierRequired)
			}

			client, err := rt.Client()
			if err != nil {
				return err
			}

			user, err := client.Users().Find(cmd.Context(), params)
			if err != nil {
				return err
			}

			return renderRecord(rt, "User", user, rt.renderUser)
		},
	}

	cmd.Flags().StringVar(&userID, "user-id", "", "the user ID from your system")
	cmd.Flags().StringVar(&email, "email", "", "the email of the user")
	cmd.Flags().StringVar(&name, "name", "", "the name of the user")

	return cmd
}

func newUsersRemoveFromCompanyCommand(rt *Runtime) *cobra.Command {
	var userID, companyID string

	cmd := &cobra.Command{
		Use:   "remove-from-company",
		Short: "Remove a user from a company",
		Long:  "Remove the association between a user and a company",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := rt.Client()
			if err != nil {
				return err
			}

			err = client.Users().RemoveFromCompany(cmd.Context(), userID, companyID)
			if err != nil {
				return err
			}

			return rt.printSuccess("User removed from company.")
		},
	}

	cmd.Flags().StringVar(&userID, "user-id", "", "the ID of the user")
	cmd.Flags().StringVar(&companyID, "company-id", "", "the ID of the company")
	_ = cmd.MarkFlagRequired("user-id")
	_ = cmd.MarkFlagRequired("company-id")

	return cmd
}

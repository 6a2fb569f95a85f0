package commands

import (
	"strings"

	"github.com/fivetwenty-io/canny-cli/internal/constants"
	"github.com/fivetwenty-io/canny-cli/pkg/canny"
	"github.com/spf13/cobra"
)

// NewChangelogCommand creates the changelog command group
func NewChangelogCommand(rt *Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "changelog",
		Aliases: []string{"entries", "entry"},
		Short:   "Manage changelog entries",
		Long:    "Changelog entries announce new features, improvements and fixes to your users",
	}

	cmd.AddCommand(newChangelogListCommand(rt))
	cmd.AddCommand(newChangelogGetCommand(rt))
	cmd.AddCommand(newChangelogCreateCommand(rt))
	cmd.AddCommand(newChangelogUpdateCommand(rt))
	cmd.AddCommand(newChangelogDeleteCommand(rt))

	return cmd
}

func newChangelogListCommand(rt *Runtime) *cobra.Command {
	var (
		limit     int
		skip      int
		entryType string
		labelIDs  []string
		sort      string
	)

	view := &ListView[canny.Entry]{
		Plural:  "changelog entries",
		Headers: []string{"ID", "Title", "Type", "Status", "Published"},
		Row: func(entry canny.Entry) []string {
			return []string{
				entry.ID,
				valueOr(entry.Title, "(no title)"),
				strings.ToUpper(valueOr(entry.Type, "")),
				rt.entryStatus(entry.Status),
				valueOr(entry.PublishedAt, NotAvailable),
			}
		},
	}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List changelog entries",
		Long:  "Retrieve one page of changelog entries with optional filtering",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := rt.Client()
			if err != nil {
				return err
			}

			page, err := client.Entries().List(cmd.Context(), &canny.EntryListParams{
				Limit:    &limit,
				Skip:     &skip,
				Type:     optString(cmd, "type", entryType),
				LabelIDs: optStrings(labelIDs),
				Sort:     optString(cmd, "sort", sort),
			})
			if err != nil {
				return err
			}

			return renderOffsetPage(rt, view, page)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", constants.DefaultListLimit, "maximum number of entries to return")
	cmd.Flags().IntVar(&skip, "skip", 0, "number of entries to skip")
	cmd.Flags().StringVar(&entryType, "type", "", "filter by entry type, e.g. new, improved, fixed")
	cmd.Flags().StringSliceVar(&labelIDs, "label-id", nil, "filter by label ID (repeatable)")
	cmd.Flags().StringVar(&sort, "sort", "", "sort order ("+strings.Join(canny.EntrySorts, ", ")+")")

	return cmd
}

func newChangelogGetCommand(rt *Runtime) *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get a changelog entry",
		Long:  "Display detailed information about a changelog entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := rt.Client()
			if err != nil {
				return err
			}

			entry, err := client.Entries().Retrieve(cmd.Context(), id)
			if err != nil {
				return err
			}

			return renderRecord(rt, "Entry", entry, rt.renderEntry)
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "the ID of the entry")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func newChangelogCreateCommand(rt *Runtime) *cobra.Command {
	var (
		title        string
		details      string
		entryType    string
		published    bool
		notify       bool
		postIDs      []string
		labelIDs     []string
		publishedOn  string
		scheduledFor string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a changelog entry",
		Long: `Create a changelog entry.

Example:
  canny changelog create --title "Dark mode" --details "We added a dark theme" --type new`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := rt.Client()
			if err != nil {
				return err
			}

			id, err := client.Entries().Create(cmd.Context(), &canny.EntryCreateRequest{
				Title:        title,
				Details:      optString(cmd, "details", details),
				Type:         optString(cmd, "type", entryType),
				Published:    optBool(cmd, "published", published),
				Notify:       optBool(cmd, "notify", notify),
				PostIDs:      optStrings(postIDs),
				LabelIDs:     optStrings(labelIDs),
				PublishedOn:  optString(cmd, "published-on", publishedOn),
				ScheduledFor: optString(cmd, "scheduled-for", scheduledFor),
			})
			if err != nil {
				return err
			}

			return rt.printCreated("changelog entry", id)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "title of the entry")
	cmd.Flags().StringVar(&details, "details", "", "description (markdown)")
	cmd.Flags().StringVar(&entryType, "type", "", "entry type, e.g. new, improved, fixed")
	cmd.Flags().BoolVar(&published, "published", false, "publish immediately")
	cmd.Flags().BoolVar(&notify, "notify", false, "notify users")
	cmd.Flags().StringSliceVar(&postIDs, "post-id", nil, "post to link (repeatable)")
	cmd.Flags().StringSliceVar(&labelIDs, "label-id", nil, "label to assign (repeatable)")
	cmd.Flags().StringVar(&publishedOn, "published-on", "", "past publication date (ISO 8601)")
	cmd.Flags().StringVar(&scheduledFor, "scheduled-for", "", "future publication date (ISO 8601)")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newChangelogUpdateCommand(rt *Runtime) *cobra.Command {
	var (
		id        string
		title     string
		details   string
		entryType string
		published bool
		notify    bool
		labelIDs  []string
	)

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update a changelog entry",
		Long:  "Update an existing changelog entry. Only the given fields change.",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := rt.Client()
			if err != nil {
				return err
			}

			err = client.Entries().Update(cmd.Context(), &canny.EntryUpdateRequest{
				EntryID:   id,
				Title:     optString(cmd, "title", title),
				Details:   optString(cmd, "details", details),
				Type:      optString(cmd, "type", entryType),
				Published: optBool(cmd, "published", published),
				Notify:    optBool(cmd, "notify", notify),
				LabelIDs:  optStrings(labelIDs),
			})
			if err != nil {
				return err
			}

			return rt.printSuccess("Changelog entry updated.")
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "the ID of the entry")
	cmd.Flags().StringVar(&title, "title", "", "new title")
	cmd.Flags().StringVar(&details, "details", "", "new description (markdown)")
	cmd.Flags().StringVar(&entryType, "type", "", "new type")
	cmd.Flags().BoolVar(&published, "published", false, "whether the entry is published")
	cmd.Flags().BoolVar(&notify, "notify", false, "notify users")
	cmd.Flags().StringSliceVar(&labelIDs, "label-id", nil, "label to assign (repeatable)")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func newChangelogDeleteCommand(rt *Runtime) *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a changelog entry",
		Long:  "Permanently delete a changelog entry by ID",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := rt.Client()
			if err != nil {
				return err
			}

			err = client.Entries().Delete(cmd.Context(), id)
			if err != nil {
				return err
			}

			return rt.printSuccess("Changelog entry deleted.")
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "the ID of the entry")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

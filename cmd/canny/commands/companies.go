package commands

import (
	"github.com/fivetwenty-io/canny-cli/internal/constants"
	"github.com/fivetwenty-io/canny-cli/pkg/canny"
	"github.com/spf13/cobra"
)

// NewCompaniesCommand creates the companies command group
func NewCompaniesCommand(rt *Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "companies",
		Aliases: []string{"company"},
		Short:   "Manage companies",
		Long:    "Companies are the organizations your users belong to. Useful for tracking feedback by customer.",
	}

	cmd.AddCommand(newCompaniesListCommand(rt))
	cmd.AddCommand(newCompaniesGetCommand(rt))
	cmd.AddCommand(newCompaniesUpdateCommand(rt))
	cmd.AddCommand(newCompaniesDeleteCommand(rt))

	return cmd
}

var companyListView = &ListView[canny.Company]{
	Plural:  "companies",
	Headers: []string{"ID", "Name", "Users", "Monthly Spend", "Created"},
	Row: func(company canny.Company) []string {
		spend := NotAvailable
		if company.MonthlySpend != nil {
			spend = formatSpend(company.MonthlySpend)
		}

		return []string{
			company.ID,
			valueOr(company.Name, "(no name)"),
			intOr(company.UserCount, "0"),
			spend,
			valueOr(company.Created, NotAvailable),
		}
	},
}

func newCompaniesListCommand(rt *Runtime) *cobra.Command {
	var (
		limit   int
		cursor  string
		search  string
		segment string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List companies",
		Long:  "Retrieve one page of companies. Pass the printed cursor to --cursor for the next page.",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := rt.Client()
			if err != nil {
				return err
			}

			page, err := client.Companies().List(cmd.Context(), &canny.CompanyListParams{
				Limit:   &limit,
				Cursor:  optString(cmd, "cursor", cursor),
				Search:  optString(cmd, "search", search),
				Segment: optString(cmd, "segment", segment),
			})
			if err != nil {
				return err
			}

			return renderCursorPage(rt, companyListView, page)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", constants.DefaultTaxonomyLimit, "maximum number of companies to return")
	cmd.Flags().StringVar(&cursor, "cursor", "", "cursor from a previous page")
	cmd.Flags().StringVar(&search, "search", "", "search companies by name")
	cmd.Flags().StringVar(&segment, "segment", "", "filter by segment URL name")

	return cmd
}

func newCompaniesGetCommand(rt *Runtime) *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get a company",
		Long:  "Display detailed information about a company",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := rt.Client()
			if err != nil {
				return err
			}

			company, err := client.Companies().Retrieve(cmd.Context(), id)
			if err != nil {
				return err
			}

			return renderRecord(rt, "Company", company, rt.renderCompany)
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "the ID of the company")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func newCompaniesUpdateCommand(rt *Runtime) *cobra.Command {
	var (
		id           string
		name         string
		monthlySpend float64
		customFields string
		created      string
	)

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update a company",
		Long:  "Update the name, monthly spend, custom fields or creation date of a company",
		RunE: func(cmd *cobra.Command, args []string) error {
			fields, err := parseCustomFields(customFields)
			if err != nil {
				return err
			}

			client, err := rt.Client()
			if err != nil {
				return err
			}

			err = client.Companies().Update(cmd.Context(), &canny.CompanyUpdateRequest{
				ID:           id,
				Name:         optString(cmd, "name", name),
				MonthlySpend: optFloat(cmd, "monthly-spend", monthlySpend),
				CustomFields: fields,
				Created:      optString(cmd, "created", created),
			})
			if err != nil {
				return err
			}

			return rt.printSuccess("Company updated.")
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "the ID of the company")
	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().Float64Var(&monthlySpend, "monthly-spend", 0, "monthly spend amount")
	cmd.Flags().StringVar(&customFields, "custom-fields", "", "custom fields as a JSON object")
	cmd.Flags().StringVar(&created, "created", "", "company creation date (ISO 8601)")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func newCompaniesDeleteCommand(rt *Runtime) *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a company",
		Long:  "Permanently delete a company by ID",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := rt.Client()
			if err != nil {
				return err
			}

			err = client.Companies().Delete(cmd.Context(), id)
			if err != nil {
				return err
			}

			return rt.printSuccess("Company deleted.")
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "the ID of the company")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

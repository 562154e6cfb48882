package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rescuegate/rescuegate/internal/config"
)

var (
	orgPostalCode string
	orgMiles      int
	orgQuery      string
	orgID         string
	orgLimit      int
)

var searchOrgsCmd = &cobra.Command{
	Use:   "search-orgs",
	Short: "Search rescue organizations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTool(cmd, "search_organizations", map[string]any{
			"postal_code": orgPostalCode,
			"miles":       orgMiles,
			"query":       orgQuery,
			"limit":       orgLimit,
		}, config.Overrides{PostalCode: orgPostalCode, Miles: orgMiles})
	},
}

var getOrgCmd = &cobra.Command{
	Use:   "get-org",
	Short: "Fetch one organization's details",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTool(cmd, "get_organization_details", map[string]any{
			"org_id": orgID,
		}, config.Overrides{})
	},
}

var listOrgAnimalsCmd = &cobra.Command{
	Use:   "list-org-animals",
	Short: "List a specific organization's adoptable animals",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTool(cmd, "list_org_animals", map[string]any{
			"org_id": orgID,
			"limit":  orgLimit,
		}, config.Overrides{})
	},
}

func init() {
	searchOrgsCmd.Flags().StringVar(&orgPostalCode, "postal-code", "", "center postal code")
	searchOrgsCmd.Flags().IntVar(&orgMiles, "miles", 0, "search radius in miles")
	searchOrgsCmd.Flags().StringVar(&orgQuery, "query", "", "organization name substring")
	searchOrgsCmd.Flags().IntVar(&orgLimit, "limit", 0, "max results")

	getOrgCmd.Flags().StringVar(&orgID, "org-id", "", "organization id")

	listOrgAnimalsCmd.Flags().StringVar(&orgID, "org-id", "", "organization id")
	listOrgAnimalsCmd.Flags().IntVar(&orgLimit, "limit", 0, "max results")

	rootCmd.AddCommand(searchOrgsCmd, getOrgCmd, listOrgAnimalsCmd)
}

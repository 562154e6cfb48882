// Package cmd provides the rescuegate CLI: the MCP server subcommands
// (server, http) plus a set of one-shot query subcommands that wrap the
// same tool handlers the MCP protocol core dispatches to.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rescuegate/rescuegate/internal/errs"
)

var (
	cfgFile   string
	apiKey    string
	authToken string
	jsonOut   bool
)

var rootCmd = &cobra.Command{
	Use:   "rescuegate",
	Short: "RescueGroups.org adoption-search gateway for MCP clients",
	Long: `rescuegate exposes the RescueGroups.org v5 public API as a set of
MCP tools: pet search, animal details, organization lookup, and adoption
metadata, fronted by a shared rate limiter and response cache.

Configuration is loaded from config.toml/.yaml/.json in the current
directory (or the file named by --config), then overridden by environment
variables (RESCUE_GROUPS_API_KEY, MCP_AUTH_TOKEN), then by CLI flags.

Commands:
  server            Run the stdio JSON-RPC loop (default transport)
  http              Run the HTTP+SSE JSON-RPC transport
  search            Search adoptable pets
  get-animal        Fetch one animal's details
  get-contact       Fetch an animal's org contact info
  compare           Compare up to five animals side by side
  search-orgs       Search rescue organizations
  get-org           Fetch one organization's details
  list-org-animals  List a specific organization's adoptable animals
  list-adopted      List recently adopted animals
  list-species      List supported species
  list-breeds       List breeds for a species
  get-breed         Fetch one breed's details
  list-metadata     List a metadata category's values
  list-metadata-types  List available metadata category names
  random-pet        Fetch one random adoptable pet
  generate          Emit shell completions or a man page`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command, exiting 0 on success, 2 on a flag usage
// error or a validation error, and 1 on any other runtime failure.
func Execute() {
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errs.Validation("", "%v", err)
	})
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		if e := errs.As(err); e != nil && e.Kind == errs.KindValidation {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to config.toml/.yaml/.json")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "RescueGroups.org API key (overrides config/env)")
	rootCmd.PersistentFlags().StringVar(&authToken, "auth-token", "", "bearer token required by the HTTP transport")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "print raw JSON instead of formatted Markdown")
}

package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/rescuegate/rescuegate/internal/config"
	"github.com/rescuegate/rescuegate/internal/logging"
	"github.com/rescuegate/rescuegate/internal/transport/stdio"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the stdio JSON-RPC loop (default MCP transport)",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logging.New()
		eng, err := buildEngine(config.Overrides{}, logger, nil)
		if err != nil {
			return err
		}
		defer eng.Close()

		t := stdio.New(eng.Dispatcher(), logger)
		return t.Run(cmd.Context(), os.Stdin, os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

var (
	genShell string
	genMan   string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Emit shell completions or a man page",
	RunE: func(cmd *cobra.Command, args []string) error {
		switch {
		case genMan != "":
			if err := os.MkdirAll(genMan, 0o755); err != nil {
				return err
			}
			return doc.GenManTree(rootCmd, &doc.GenManHeader{Title: "RESCUEGATE", Section: "1"}, genMan)
		case genShell != "":
			return generateShellCompletion(genShell)
		default:
			return cmd.Help()
		}
	},
}

func generateShellCompletion(shell string) error {
	switch shell {
	case "bash":
		return rootCmd.GenBashCompletion(os.Stdout)
	case "zsh":
		return rootCmd.GenZshCompletion(os.Stdout)
	case "fish":
		return rootCmd.GenFishCompletion(os.Stdout, true)
	case "powershell":
		return rootCmd.GenPowerShellCompletionWithDesc(os.Stdout)
	default:
		return fmt.Errorf("unsupported shell %q: want bash, zsh, fish, or powershell", shell)
	}
}

func init() {
	generateCmd.Flags().StringVar(&genShell, "shell", "", "bash, zsh, fish, or powershell")
	generateCmd.Flags().StringVar(&genMan, "man", "", "directory to write man pages into")
	rootCmd.AddCommand(generateCmd)
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/woxtom/cccript/config/session"
	"github.com/woxtom/cccript/internal/shell"
)

func init() {
	rootCmd.AddCommand(loadActiveCmd)
}

var loadActiveCmd = &cobra.Command{
	Use:   "load-active",
	Short: "Emit exports for the startup configuration (for shell initialization)",
	Long: `Run the startup selection chain and print export statements for the
chosen configuration. Used from shell initialization:
  eval "$(cccript load-active)"

Precedence: existing selection in the environment (emits nothing),
ANTHROPIC_ACTIVE_CONFIG override, AE_DEFAULT, then the first stored
configuration. An empty store emits nothing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}

		activation, err := session.Select(store, session.FromEnv())
		if err != nil {
			return err
		}
		if activation == nil {
			return nil
		}

		fmt.Fprint(cmd.OutOrStdout(), shell.ExportLines(activation))
		return nil
	},
}

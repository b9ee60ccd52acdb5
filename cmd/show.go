package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/woxtom/cccript/config/session"
)

func init() {
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:     "show",
	Aliases: []string{"current"},
	Short:   "Show the active configuration",
	Long:    "Show the configuration active in this shell session. The auth token is always masked.",
	RunE: func(cmd *cobra.Command, args []string) error {
		state := session.FromEnv()
		if !state.Active() {
			fmt.Fprintln(cmd.OutOrStdout(), "No active configuration")
			return nil
		}
		fmt.Fprint(cmd.OutOrStdout(), session.Summary(state, os.Getenv))
		return nil
	},
}

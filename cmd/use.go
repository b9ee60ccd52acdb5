package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/woxtom/cccript/config"
	"github.com/woxtom/cccript/config/session"
	"github.com/woxtom/cccript/internal/shell"
	csync "github.com/woxtom/cccript/internal/sync"
)

func init() {
	rootCmd.AddCommand(useCmd)
}

var useCmd = &cobra.Command{
	Use:     "use <name|index>",
	Aliases: []string{"switch"},
	Short:   "Switch to a configuration",
	Long: `Switch to a configuration by name or 1-based index and output export
statements for the environment variables.

To make the variables effective in the current shell:
  eval "$(cccript use <name|index>)"
or install the shell integration once with 'cccript install'.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}

		if len(args) == 0 || args[0] == "" {
			fmt.Fprintln(cmd.ErrOrStderr(), "Usage: cccript use <name|index>")
			fmt.Fprintln(cmd.ErrOrStderr())
			runList(cmd.ErrOrStderr(), store, session.FromEnv().Slug)
			return fmt.Errorf("missing configuration name or index")
		}

		return runUse(cmd.OutOrStdout(), cmd.ErrOrStderr(), store, args[0])
	},
}

// runUse resolves and activates a profile, writing eval-able exports to
// stdout and status to stderr. Nothing is written on resolution failure.
func runUse(stdout, stderr io.Writer, store *config.Store, token string) error {
	identifier, err := store.Resolve(token)
	if err != nil {
		return err
	}

	activation, err := session.Activate(store, identifier, true)
	if err != nil {
		return err
	}

	fmt.Fprint(stdout, shell.ExportLines(activation))

	if p, ok := store.Lookup(identifier); ok {
		if err := csync.Settings(p); err != nil {
			fmt.Fprintf(stderr, "Warning: failed to sync Claude Code settings: %v\n", err)
		}
	}

	fmt.Fprintln(stderr, successStyle.Render(fmt.Sprintf("✓ Switched to configuration: %s", identifier)))
	return nil
}

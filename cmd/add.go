package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/woxtom/cccript/config"
	"github.com/woxtom/cccript/config/session"
	"github.com/woxtom/cccript/internal/shell"
	"github.com/woxtom/cccript/internal/slug"
	csync "github.com/woxtom/cccript/internal/sync"
	"github.com/woxtom/cccript/internal/tui"
	"github.com/woxtom/cccript/internal/utils"
)

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringP("url", "u", "", "API base URL")
	addCmd.Flags().StringP("model", "m", "", "model name")
	addCmd.Flags().String("fast-model", "", "small fast model name")
}

var addCmd = &cobra.Command{
	Use:     "add [name] [token]",
	Aliases: []string{"new"},
	Short:   "Add a new configuration",
	Long: `Add a new API configuration and immediately activate it.

Interactive (recommended):
  cccript add

Non-interactive:
  cccript add my-proxy sk-ant-xxx --url https://x.example.com/v1 --model claude-sonnet-4

Names are slugified into identifiers ('My Proxy' becomes 'my-proxy'); a
duplicate name gets a numeric suffix. A blank name defaults to the URL
host. Purely numeric names are discouraged since lookup treats digits as
an index.`,
	Args: cobra.RangeArgs(0, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}

		var data tui.FormData
		if len(args) == 2 {
			data.Name, data.AuthToken = args[0], args[1]
			data.BaseURL, _ = cmd.Flags().GetString("url")
			data.Model, _ = cmd.Flags().GetString("model")
			data.SmallFastModel, _ = cmd.Flags().GetString("fast-model")
		} else {
			if !tui.IsTerminal() {
				return fmt.Errorf("interactive input requires a terminal; use: cccript add <name> <token> --url <url>")
			}
			data, err = tui.RunForm()
			if err != nil {
				return err
			}
		}

		return runAdd(cmd.OutOrStdout(), cmd.ErrOrStderr(), store, data)
	},
}

// createProfile validates, slugifies and persists a new profile, returning
// its identifier. Nothing is written when validation fails.
func createProfile(store *config.Store, data tui.FormData) (string, error) {
	if err := data.Validate(); err != nil {
		return "", err
	}
	if data.Name == "" {
		data.Name = utils.ExtractHost(data.BaseURL)
	}

	identifier := store.EnsureUnique(slug.ToIdentifier(data.Name))
	p := config.Profile{
		Name:           identifier,
		BaseURL:        data.BaseURL,
		AuthToken:      data.AuthToken,
		Model:          data.Model,
		SmallFastModel: data.SmallFastModel,
	}
	if err := store.Append(p); err != nil {
		return "", err
	}
	return identifier, nil
}

// runAdd persists the profile and activates it as if switched to
// explicitly, so the exports can be eval'd by the shell wrapper.
func runAdd(stdout, stderr io.Writer, store *config.Store, data tui.FormData) error {
	identifier, err := createProfile(store, data)
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

	fmt.Fprintln(stderr, successStyle.Render(fmt.Sprintf("✓ Added configuration: %s", identifier)))
	return nil
}

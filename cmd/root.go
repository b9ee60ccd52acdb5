// Package cmd implements the cccript command surface.
package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/woxtom/cccript/config"
)

// Version information
var (
	version string
	commit  string
	date    string
)

// SetVersionInfo sets the version information
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}

var successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))

var rootCmd = &cobra.Command{
	Use:   "cccript",
	Short: "Anthropic API configuration switcher",
	Long: `cccript stores named Anthropic API endpoint/credential profiles and
exports the matching ANTHROPIC_* environment variables.

Install the shell hook with 'cccript install' so new terminals load the
active configuration automatically. When installed as a shim under the
name of a downstream CLI, unrecognized commands are forwarded to the next
executable with that name on PATH after the environment is confirmed.`,
	Args: cobra.ArbitraryArgs,
	// Unrecognized arguments belong to the delegated tool, so the root
	// command must not eat its flags.
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE:               runDelegate,
}

// Execute executes the root command
func Execute() error {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(`cccript {{.Version}}
Commit: ` + commit + `
Date: ` + date + `
`)

	return rootCmd.Execute()
}

// openStore loads the profile store from its default location. Load never
// fails on a corrupt file, so the only errors here are path resolution.
func openStore() (*config.Store, error) {
	path, err := config.DefaultPath()
	if err != nil {
		return nil, fmt.Errorf("failed to locate profile store: %w", err)
	}
	return config.Load(path), nil
}

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/woxtom/cccript/config"
	"github.com/woxtom/cccript/config/session"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all saved configurations",
	Long:    "List all saved API configurations with their 1-based index; the active one is marked with *",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		runList(cmd.OutOrStdout(), store, session.FromEnv().Slug)
		return nil
	},
}

func runList(w io.Writer, store *config.Store, active string) {
	if store.Len() == 0 {
		fmt.Fprintln(w, "No configurations saved")
		return
	}

	for i, p := range store.Profiles() {
		marker := " "
		if p.Name == active {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %d. %s  %s\n", marker, i+1, p.Name, p.BaseURL)
		if p.Model != "" || p.SmallFastModel != "" {
			fmt.Fprintf(w, "      model: %s  fast: %s\n", orDash(p.Model), orDash(p.SmallFastModel))
		}
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

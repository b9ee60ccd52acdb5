package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"github.com/woxtom/cccript/config"
)

func init() {
	rootCmd.AddCommand(editCmd)
}

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit the profile store in your editor",
	Long:  "Open the profile store file in $EDITOR (default vi) and reload it afterwards.",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.DefaultPath()
		if err != nil {
			return err
		}

		editor := os.Getenv("EDITOR")
		if editor == "" {
			editor = "vi"
		}

		// EDITOR may carry arguments ("code --wait").
		parts := strings.Fields(editor)
		ed := exec.Command(parts[0], append(parts[1:], path)...)
		ed.Stdin = os.Stdin
		ed.Stdout = os.Stdout
		ed.Stderr = os.Stderr
		if err := ed.Run(); err != nil {
			return fmt.Errorf("editor failed: %w", err)
		}

		store := config.Load(path)
		fmt.Fprintf(cmd.OutOrStdout(), "Reloaded %d configuration(s) from %s\n", store.Len(), path)
		return nil
	},
}

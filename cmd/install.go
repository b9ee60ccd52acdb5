package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

var forceInstall bool

const (
	installBegin = "# >>> cccript initialize >>>"
	installEnd   = "# <<< cccript initialize <<<"
)

// initScript is appended to the shell rc file. It loads the startup
// configuration on shell start and wraps the commands whose exports must
// land in the calling shell.
const initScript = installBegin + `
if command -v cccript &> /dev/null; then
  eval "$(command cccript load-active)"

  cccript() {
    case "${1-}" in
      use|switch|add|new)
        local __cccript_output
        __cccript_output="$(command cccript "$@")" || return $?
        eval "$__cccript_output"
        ;;
      *)
        command cccript "$@"
        ;;
    esac
  }
fi
` + installEnd + "\n"

func init() {
	rootCmd.AddCommand(installCmd)
	installCmd.Flags().BoolVar(&forceInstall, "force", false, "reinstall even if already present")
}

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the shell initialization hook",
	Long:  "Append the auto-load block to your shell rc file so new terminals load the active configuration and 'use' takes effect directly.",
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get user home directory: %w", err)
		}

		shellName := os.Getenv("SHELL")
		var rcFile string
		switch {
		case strings.Contains(shellName, "zsh"):
			rcFile = filepath.Join(homeDir, ".zshrc")
		case strings.Contains(shellName, "bash"):
			rcFile = filepath.Join(homeDir, ".bashrc")
		default:
			fmt.Fprintf(cmd.ErrOrStderr(), "Unsupported shell: %s\n", shellName)
			fmt.Fprintf(cmd.ErrOrStderr(), "Add the following to your shell configuration manually:\n\n%s\n", initScript)
			return fmt.Errorf("unsupported shell")
		}

		existing := ""
		if data, err := os.ReadFile(rcFile); err == nil {
			existing = string(data)
		}

		if strings.Contains(existing, installBegin) {
			if !forceInstall {
				fmt.Fprintf(cmd.OutOrStdout(), "✓ Already installed in %s\n", rcFile)
				fmt.Fprintf(cmd.OutOrStdout(), "\nTip: run 'source %s' or open a new terminal to take effect\n", rcFile)
				return nil
			}
			existing = removeInstallBlock(existing)
		}

		content := strings.TrimRight(existing, "\n")
		if content != "" {
			content += "\n\n"
		}
		content += initScript

		if err := os.WriteFile(rcFile, []byte(content), 0644); err != nil {
			return fmt.Errorf("failed to update %s: %w", rcFile, err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render(fmt.Sprintf("✓ Installed shell hook in %s", rcFile)))
		fmt.Fprintf(cmd.OutOrStdout(), "\nTip: run 'source %s' or open a new terminal to take effect\n", rcFile)
		return nil
	},
}

// removeInstallBlock strips a previously installed block, markers included.
func removeInstallBlock(content string) string {
	var out []string
	inBlock := false
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == installBegin {
			inBlock = true
			continue
		}
		if trimmed == installEnd {
			inBlock = false
			continue
		}
		if !inBlock {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}

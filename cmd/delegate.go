package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/woxtom/cccript/config"
	"github.com/woxtom/cccript/config/session"
	"github.com/woxtom/cccript/internal/shell"
	"github.com/woxtom/cccript/internal/tui"
)

// runDelegate handles everything that is not a recognized subcommand: make
// sure a selection has been confirmed this session, then hand the original
// arguments to the next executable with our name on PATH.
func runDelegate(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		switch args[0] {
		case "-h", "--help", "help":
			return cmd.Help()
		case "-v", "--version":
			fmt.Fprintf(cmd.OutOrStdout(), "cccript %s\n", version)
			return nil
		}
	}

	store, err := openStore()
	if err != nil {
		return err
	}

	state := session.FromEnv()
	if !state.Confirmed {
		activation, err := firstUse(store, state)
		if err != nil {
			return err
		}
		if activation != nil {
			if err := shell.Apply(activation); err != nil {
				return err
			}
			state = activation.State
		}
	}

	name := filepath.Base(os.Args[0])
	if target := shell.FindNext(name); target != "" {
		argv := append([]string{name}, args...)
		return shell.Exec(target, argv, os.Environ())
	}

	// No downstream tool installed: show what the delegate would see.
	if !state.Active() {
		fmt.Fprintln(cmd.OutOrStdout(), "No active configuration")
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), session.Summary(state, os.Getenv))
	return nil
}

// firstUse confirms a selection for this session: create a profile when
// the store is empty, otherwise let the user pick one. Without a terminal
// it falls back to the startup precedence chain.
func firstUse(store *config.Store, state session.State) (*session.Activation, error) {
	if store.Len() == 0 {
		if !tui.IsTerminal() {
			return nil, fmt.Errorf("no configurations saved; run 'cccript add' first")
		}
		data, err := tui.RunForm()
		if err != nil {
			return nil, err
		}
		identifier, err := createProfile(store, data)
		if err != nil {
			return nil, err
		}
		fmt.Fprintln(os.Stderr, successStyle.Render(fmt.Sprintf("✓ Added configuration: %s", identifier)))
		return session.Activate(store, identifier, true)
	}

	if tui.IsTerminal() {
		identifier, err := tui.RunPicker(store.Profiles())
		if err != nil {
			return nil, err
		}
		return session.Activate(store, identifier, true)
	}

	return session.Select(store, state)
}

// Package shell renders activations for the host shell and hands control
// to the wrapped executable.
package shell

import (
	"os"
	"strings"

	"github.com/woxtom/cccript/config/session"
)

// quote single-quotes a value for POSIX shells so tokens containing '$',
// spaces or quotes survive an eval round trip.
func quote(value string) string {
	return "'" + strings.ReplaceAll(value, "'", `'\''`) + "'"
}

// ExportLines renders an activation as eval-able export statements, one
// per variable, every key always present.
func ExportLines(a *session.Activation) string {
	var b strings.Builder
	for _, v := range a.Vars() {
		b.WriteString("export ")
		b.WriteString(v.Key)
		b.WriteString("=")
		b.WriteString(quote(v.Value))
		b.WriteString("\n")
	}
	return b.String()
}

// Apply sets an activation on the current process environment so child
// processes inherit it.
func Apply(a *session.Activation) error {
	for _, v := range a.Vars() {
		if err := os.Setenv(v.Key, v.Value); err != nil {
			return err
		}
	}
	return nil
}

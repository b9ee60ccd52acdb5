//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly
// +build linux darwin freebsd netbsd openbsd dragonfly

package shell

import "golang.org/x/sys/unix"

// Exec replaces the current process with the delegate so exit status and
// signals pass through untouched. Only returns on failure.
func Exec(path string, argv []string, env []string) error {
	return unix.Exec(path, argv, env)
}

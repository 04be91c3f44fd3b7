// Package sys provides the small set of system utilities needed by the
// command-line front end.
package sys

import "github.com/mattn/go-isatty"

// IsATTY determines whether the given file descriptor is a terminal.
func IsATTY(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

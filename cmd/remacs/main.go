// Remacs exposes the file metadata operations of the editor runtime as a
// command: file-attributes describes one file as its attribute list, and
// system-users lists the login names known to the system.
package main

import (
	"os"

	"github.com/gaak99/remacs/pkg/buildinfo"
	"github.com/gaak99/remacs/pkg/dired"
	"github.com/gaak99/remacs/pkg/prog"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(buildinfo.Program, dired.Program)))
}

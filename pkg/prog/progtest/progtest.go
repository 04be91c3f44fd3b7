// Package progtest provides utilities for testing subprograms.
package progtest

import (
	"io"
	"os"

	"github.com/gaak99/remacs/pkg/must"
	"github.com/gaak99/remacs/pkg/prog"
)

// Output captures the observable outcome of one program run.
type Output struct {
	Exit   int
	Stdout string
	Stderr string
}

// Run runs a program with the given command-line arguments (not including the
// program name) and captures its exit status and output. Stdin is connected
// to the null device.
func Run(p prog.Program, args ...string) Output {
	stdin := must.OK1(os.Open(os.DevNull))
	defer stdin.Close()
	outR, outW := must.Pipe()
	errR, errW := must.Pipe()
	outCh := readAsync(outR)
	errCh := readAsync(errR)
	exit := prog.Run(
		[3]*os.File{stdin, outW, errW}, append([]string{"remacs"}, args...), p)
	outW.Close()
	errW.Close()
	return Output{Exit: exit, Stdout: <-outCh, Stderr: <-errCh}
}

// The pipe buffer is finite, so the reading must happen concurrently with the
// program run.
func readAsync(r *os.File) <-chan string {
	ch := make(chan string, 1)
	go func() {
		bs, _ := io.ReadAll(r)
		r.Close()
		ch <- string(bs)
	}()
	return ch
}

package dired

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/gaak99/remacs/pkg/errs"
	"github.com/gaak99/remacs/pkg/lisp"
	"github.com/gaak99/remacs/pkg/prog"
	"github.com/gaak99/remacs/pkg/sys"
)

// Program is the subprogram exposing the dired operations on the command
// line.
var Program prog.Program = program{}

type program struct{}

func (program) Run(fds [3]*os.File, f *prog.Flags, args []string) error {
	if len(args) == 0 {
		return prog.BadUsage("no operation given")
	}
	switch args[0] {
	case "file-attributes":
		if len(args) < 2 || len(args) > 3 {
			return prog.BadUsage(errs.ArityMismatch{
				What: "arguments to file-attributes",
				ValidLow: 1, ValidHigh: 2, Actual: len(args) - 1}.Error())
		}
		var idFormat lisp.Value
		if len(args) == 3 {
			idFormat = lisp.Symbol(args[2])
		}
		v, err := FileAttributes(args[1], idFormat)
		if err != nil {
			return err
		}
		return write(fds[1], f, v)
	case "system-users":
		if len(args) != 1 {
			return prog.BadUsage(errs.ArityMismatch{
				What: "arguments to system-users",
				ValidLow: 0, ValidHigh: 0, Actual: len(args) - 1}.Error())
		}
		return write(fds[1], f, SystemUsers())
	default:
		return prog.BadUsage("unknown operation: " + args[0])
	}
}

func write(out *os.File, f *prog.Flags, v lisp.Value) error {
	var s string
	switch {
	case f.JSON:
		b, err := json.Marshal(jsonValue(v))
		if err != nil {
			return err
		}
		s = string(b)
	case sys.IsATTY(out.Fd()):
		s = lisp.Repr(v, 0)
	default:
		s = lisp.ReprPlain(v)
	}
	_, err := fmt.Fprintln(out, s)
	return err
}

// jsonValue maps a Lisp value onto the natural types of encoding/json.
// Dotted pairs become two-element arrays.
func jsonValue(v lisp.Value) any {
	switch v := v.(type) {
	case lisp.Symbol:
		return string(v)
	case *lisp.Cons:
		if elems, ok := lisp.Elems(v); ok {
			out := make([]any, len(elems))
			for i, e := range elems {
				out[i] = jsonValue(e)
			}
			return out
		}
		return []any{jsonValue(v.Car), jsonValue(v.Cdr)}
	default:
		// nil, booleans, strings and integers marshal as themselves.
		return v
	}
}

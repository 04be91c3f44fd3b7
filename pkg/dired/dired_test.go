package dired

import (
	"testing"

	"github.com/gaak99/remacs/pkg/errs"
	"github.com/gaak99/remacs/pkg/lisp"
	"github.com/gaak99/remacs/pkg/tt"
)

func TestParseIdFormat(t *testing.T) {
	tt.Test(t, tt.Fn("ParseIdFormat", ParseIdFormat), tt.Table{
		tt.Args(nil).Rets(Numeric),
		tt.Args(lisp.Symbol("string")).Rets(Named),
		tt.Args(lisp.Symbol("STRING")).Rets(Named),
		tt.Args("string").Rets(Named),
		// Anything that does not read "string" falls back to numeric ids,
		// misspellings included.
		tt.Args(lisp.Symbol("integer")).Rets(Numeric),
		tt.Args(lisp.Symbol("NOTstring")).Rets(Numeric),
		tt.Args("strings").Rets(Numeric),
		tt.Args(42).Rets(Numeric),
		tt.Args(true).Rets(Numeric),
		tt.Args(lisp.List("string")).Rets(Numeric),
	})
}

func TestFileAttributes_BadFileName(t *testing.T) {
	_, err := FileAttributes("\xff\xfe", nil)
	if _, ok := err.(errs.BadValue); !ok {
		t.Errorf("FileAttributes with bad bytes returned %v, want a BadValue", err)
	}
}

// attrElems unpacks an attribute list, failing the test unless it has the
// full 12 elements.
func attrElems(t *testing.T, v lisp.Value) []lisp.Value {
	t.Helper()
	elems, ok := lisp.Elems(v)
	if !ok || len(elems) != 12 {
		t.Fatalf("not a 12-element attribute list: %s", lisp.ReprPlain(v))
	}
	return elems
}

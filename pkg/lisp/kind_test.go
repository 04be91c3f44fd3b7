package lisp

import (
	"testing"

	"github.com/gaak99/remacs/pkg/tt"
)

type xtype int

func TestKind(t *testing.T) {
	tt.Test(t, tt.Fn("Kind", Kind), tt.Table{
		tt.Args(nil).Rets("nil"),
		tt.Args(false).Rets("nil"),
		tt.Args(true).Rets("t"),
		tt.Args("").Rets("string"),
		tt.Args(Symbol("string")).Rets("symbol"),
		tt.Args(1).Rets("integer"),
		tt.Args(&Cons{1, nil}).Rets("cons"),
		tt.Args(xtype(0)).Rets("!!lisp.xtype"),
	})
}

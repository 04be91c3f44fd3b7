package lisp

import "reflect"

// Equal returns whether two values are structurally equal. Cons cells are
// compared recursively; everything else by value. For foreign types it falls
// back to reflect.DeepEqual.
func Equal(x, y Value) bool {
	switch x := x.(type) {
	case nil:
		return y == nil
	case bool:
		return x == y
	case string:
		return x == y
	case Symbol:
		return x == y
	case int:
		return x == y
	case *Cons:
		yy, ok := y.(*Cons)
		return ok && Equal(x.Car, yy.Car) && Equal(x.Cdr, yy.Cdr)
	default:
		return reflect.DeepEqual(x, y)
	}
}

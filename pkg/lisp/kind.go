package lisp

import "fmt"

// Kind returns the kind of a value: "nil", "t", "string", "symbol",
// "integer" or "cons". For foreign types it returns the Go type name of the
// argument preceded by "!!".
func Kind(v Value) string {
	switch v := v.(type) {
	case nil:
		return "nil"
	case bool:
		if v {
			return "t"
		}
		return "nil"
	case string:
		return "string"
	case Symbol:
		return "symbol"
	case int:
		return "integer"
	case *Cons:
		return "cons"
	default:
		return fmt.Sprintf("!!%T", v)
	}
}

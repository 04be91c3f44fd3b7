// Package lisp provides the tagged value layer of the editor runtime.
//
// Values are mostly plain Go values: the Go nil is the Lisp nil, the Go true
// is the Lisp t, Go strings are Lisp strings and Go ints are fixnums. Symbols
// and cons cells get small dedicated types. This is deliberately the cheapest
// representation that still keeps the kinds distinct; there is no interning
// and no object identity beyond what Go pointers give us.
package lisp

// Value is any Lisp value.
type Value = any

// Symbol is a Lisp symbol. Unlike strings, symbols compare by name against
// other symbols only, and print without quoting.
type Symbol string

// Symbols with special meaning to the file operations.
const (
	QFileAttributes Symbol = "file-attributes"
	QString         Symbol = "string"
	QInteger        Symbol = "integer"
)

// Cons is a Lisp cons cell. A proper list is a chain of Cons cells whose
// final Cdr is nil.
type Cons struct {
	Car Value
	Cdr Value
}

// List builds a proper list from the given elements.
func List(elems ...Value) Value {
	var list Value
	for i := len(elems) - 1; i >= 0; i-- {
		list = &Cons{elems[i], list}
	}
	return list
}

// Elems returns the elements of a proper list, with ok = false if v is not
// one. The empty list nil has no elements.
func Elems(v Value) ([]Value, bool) {
	var elems []Value
	for v != nil {
		cell, ok := v.(*Cons)
		if !ok {
			return nil, false
		}
		elems = append(elems, cell.Car)
		v = cell.Cdr
	}
	return elems, true
}

// SymbolOrStringAsString returns the name of a symbol or the content of a
// string, with ok = false for every other kind.
func SymbolOrStringAsString(v Value) (string, bool) {
	switch v := v.(type) {
	case Symbol:
		return string(v), true
	case string:
		return v, true
	default:
		return "", false
	}
}

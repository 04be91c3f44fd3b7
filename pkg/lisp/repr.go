package lisp

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// NoPretty can be passed to Repr to suppress pretty-printing.
const NoPretty = math.MinInt32

// ReprPlain is like Repr, but without pretty-printing.
func ReprPlain(v Value) string {
	return Repr(v, NoPretty)
}

// Repr returns the representation of a value in Lisp reader syntax. If indent
// is at least 0 the representation is pretty-printed with that initial level
// of indentation: lists get one element per line. The indent of the first
// line is assumed to have been written already.
func Repr(v Value, indent int) string {
	switch v := v.(type) {
	case nil:
		return "nil"
	case bool:
		if v {
			return "t"
		}
		return "nil"
	case string:
		return strconv.Quote(v)
	case Symbol:
		return string(v)
	case int:
		return strconv.Itoa(v)
	case *Cons:
		return reprCons(v, indent)
	default:
		return fmt.Sprintf("<unknown %v>", v)
	}
}

func reprCons(c *Cons, indent int) string {
	sep := " "
	elemIndent := indent
	if indent >= 0 {
		sep = "\n" + strings.Repeat(" ", indent+1)
		elemIndent = indent + 1
	}
	var sb strings.Builder
	sb.WriteByte('(')
	var cur Value = c
	for first := true; ; first = false {
		cell, ok := cur.(*Cons)
		if !ok {
			// Dotted pair.
			sb.WriteString(sep + ". " + Repr(cur, elemIndent))
			break
		}
		if !first {
			sb.WriteString(sep)
		}
		sb.WriteString(Repr(cell.Car, elemIndent))
		if cell.Cdr == nil {
			break
		}
		cur = cell.Cdr
	}
	sb.WriteByte(')')
	return sb.String()
}

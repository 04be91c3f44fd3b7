package lisp

// Fixnum range of the 64-bit tagged integer layout: 62 bits of value
// including the sign.
const (
	MaxFixnum = 1<<61 - 1
	MinFixnum = -1 << 61
)

// FromNatnum lowers a non-negative integer into a Lisp value. A value in the
// fixnum range becomes a fixnum. Beyond that it becomes (HIGH . LOW), with
// the low 16 bits in LOW, and when even HIGH would overflow a fixnum it
// becomes (HIGH MIDDLE . LOW) with a 24-bit MIDDLE. Readers reassemble the
// value as HIGH<<40 | MIDDLE<<16 | LOW, or HIGH<<16 | LOW for the pair form.
func FromNatnum(u uint64) Value {
	return natnum(u, MaxFixnum)
}

// natnum keeps the fixnum cutoff as a parameter so that the three-element
// form, unreachable with 62-bit fixnums and 64-bit inputs, stays testable.
func natnum(u, max uint64) Value {
	if u <= max {
		return int(u)
	}
	lo := int(u & 0xffff)
	if hi := u >> 16; hi <= max {
		return &Cons{int(hi), lo}
	}
	return &Cons{int(u >> 40), &Cons{int(u >> 16 & 0xffffff), lo}}
}

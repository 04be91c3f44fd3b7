package lisp

// MakeTime lowers a timestamp with nanosecond precision into the calendrical
// list representation (HIGH LOW USEC PSEC): the seconds split into their high
// bits and low 16 bits, followed by the microsecond part and the remaining
// picoseconds. The split is lossless; TimeValue is its inverse.
func MakeTime(sec, nsec int64) Value {
	return List(int(sec>>16), int(sec&0xffff), int(nsec/1000), int(nsec%1000*1000))
}

// TimeValue decodes a value produced by MakeTime back into seconds and
// nanoseconds, with ok = false if v is not a well-formed time list.
func TimeValue(v Value) (sec, nsec int64, ok bool) {
	elems, ok := Elems(v)
	if !ok || len(elems) != 4 {
		return 0, 0, false
	}
	var nums [4]int64
	for i, e := range elems {
		n, ok := e.(int)
		if !ok {
			return 0, 0, false
		}
		nums[i] = int64(n)
	}
	return nums[0]<<16 | nums[1], nums[2]*1000 + nums[3]/1000, true
}

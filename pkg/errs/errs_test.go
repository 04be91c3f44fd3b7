package errs

import "testing"

var errorMessageTests = []struct {
	err     error
	wantMsg string
}{
	{
		BadValue{What: "file name", Valid: "UTF-8 string", Actual: `"\xff"`},
		`bad value: file name must be UTF-8 string, but is "\xff"`,
	},
	{
		BadValue{What: "option", Valid: "string", Actual: "1"},
		"bad value: option must be string, but is 1",
	},
	{
		ArityMismatch{What: "arguments here", ValidLow: 2, ValidHigh: 2, Actual: 3},
		"arity mismatch: arguments here must be 2 values, but is 3 values",
	},
	{
		ArityMismatch{What: "arguments here", ValidLow: 2, ValidHigh: -1, Actual: 1},
		"arity mismatch: arguments here must be 2 or more values, but is 1 value",
	},
	{
		ArityMismatch{What: "arguments here", ValidLow: 2, ValidHigh: 3, Actual: 1},
		"arity mismatch: arguments here must be 2 to 3 values, but is 1 value",
	},
}

func TestErrorMessages(t *testing.T) {
	for _, test := range errorMessageTests {
		if gotMsg := test.err.Error(); gotMsg != test.wantMsg {
			t.Errorf("got message %v, want %v", gotMsg, test.wantMsg)
		}
	}
}

// Package testutil contains common utilities for tests: temporary
// directories and layouts, scoped variable and environment overrides.
package testutil

// Cleanuper wraps the Cleanup method of [testing.TB]. It is the only part of
// the testing API this package needs, and keeping it an interface lets the
// utilities themselves be tested.
type Cleanuper interface {
	Cleanup(func())
}

// Set sets the value of a variable for the duration of a test.
func Set[T any](c Cleanuper, p *T, v T) {
	old := *p
	*p = v
	c.Cleanup(func() { *p = old })
}

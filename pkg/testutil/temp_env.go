package testutil

import "os"

// Setenv sets an environment variable for the duration of a test and returns
// value for chaining. The old value, or old absence, is restored on cleanup.
func Setenv(c Cleanuper, name, value string) string {
	old, existed := os.LookupEnv(name)
	if existed {
		c.Cleanup(func() { os.Setenv(name, old) })
	} else {
		c.Cleanup(func() { os.Unsetenv(name) })
	}
	os.Setenv(name, value)
	return value
}

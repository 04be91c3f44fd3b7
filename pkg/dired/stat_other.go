//go:build !linux && !darwin

package dired

// On platforms without the POSIX stat lowering, file-attributes defers to the
// LegacyFileAttributes hook, or returns nil when no hook is installed.
func probe(path string) (rawStat, error) {
	return rawStat{}, errUnsupportedPlatform
}

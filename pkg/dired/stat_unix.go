//go:build linux || darwin

package dired

import (
	"os"

	"golang.org/x/sys/unix"
)

// probe takes the metadata snapshot for one path. It reads the link first:
// a follow-mode stat cannot tell a symlink apart from its target (and fails
// outright on a link to a missing target), so for symlinks the snapshot is
// taken in link mode and describes the link itself, with the target recorded
// separately. Everything else is stat'ed in follow mode.
func probe(path string) (rawStat, error) {
	if target, err := os.Readlink(path); err == nil {
		var st unix.Stat_t
		if err := unix.Lstat(path, &st); err != nil {
			return rawStat{}, err
		}
		rs := lowerStat(&st)
		rs.kind = kindSymlink
		rs.linkTarget = target
		return rs, nil
	}
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return rawStat{}, err
	}
	rs := lowerStat(&st)
	if st.Mode&unix.S_IFMT == unix.S_IFDIR {
		rs.kind = kindDir
	}
	return rs, nil
}

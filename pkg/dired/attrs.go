package dired

import (
	"github.com/gaak99/remacs/pkg/fsutil"
	"github.com/gaak99/remacs/pkg/lisp"
)

type fileKind uint8

const (
	// Regular files, sockets, fifos and devices all land in kindOther: the
	// attribute list only distinguishes directories and symlinks.
	kindOther fileKind = iota
	kindDir
	kindSymlink
)

type timespec struct {
	sec  int64
	nsec int64
}

// rawStat is the native metadata snapshot for one path, with every numeric
// field widened to a fixed type. For a symlink, the numeric fields describe
// the link itself, not its target; in particular size is the length of the
// link text.
type rawStat struct {
	kind       fileKind
	linkTarget string
	nlink      uint64
	uid, gid   uint32
	atime      timespec
	mtime      timespec
	ctime      timespec
	size       uint64
	inode      uint64
	dev        uint64
}

// lowerRecord assembles the 12-element attribute list from a stat snapshot.
func lowerRecord(path string, st rawStat, format IdFormat) (lisp.Value, error) {
	var ftype lisp.Value
	switch st.kind {
	case kindSymlink:
		ftype = st.linkTarget
	case kindDir:
		ftype = true
	}
	modes, err := fsutil.FileModeString(path)
	if err != nil {
		return nil, err
	}
	return lisp.List(
		ftype,
		lisp.FromNatnum(st.nlink),
		resolveUser(st.uid, format).lower(),
		resolveGroup(st.gid, format).lower(),
		lisp.MakeTime(st.atime.sec, st.atime.nsec),
		lisp.MakeTime(st.mtime.sec, st.mtime.nsec),
		lisp.MakeTime(st.ctime.sec, st.ctime.nsec),
		lisp.FromNatnum(st.size),
		modes,
		// An unspecified value, present only for backward compatibility.
		true,
		lisp.FromNatnum(st.inode),
		lisp.FromNatnum(st.dev),
	), nil
}

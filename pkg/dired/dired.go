// Package dired implements the file metadata queries of the editor runtime:
// the file-attributes operation, which describes one file as a 12-element
// attribute list, and the system-users operation, which enumerates the login
// names known to the system.
//
// The attribute list keeps its historical shape. Element 0 carries the link
// target for a symbolic link, t for a directory and nil for anything else;
// elements 2 and 3 carry the owner and group, as names or numbers depending
// on the requested id format; elements 4 to 6 are nanosecond-precise access,
// modification and status change times; element 9 is always t and exists only
// for backward compatibility.
package dired

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/gaak99/remacs/pkg/fsutil"
	"github.com/gaak99/remacs/pkg/lisp"
	"github.com/gaak99/remacs/pkg/logutil"
)

var logger = logutil.GetLogger("[dired] ")

// IdFormat selects how the uid and gid elements of an attribute list are
// rendered.
type IdFormat int

const (
	// Numeric renders uid and gid as raw numeric ids, without consulting
	// the user and group databases.
	Numeric IdFormat = iota
	// Named renders uid and gid as names resolved from the user and group
	// databases, falling back to the numeric id per field when a lookup
	// comes back empty.
	Named
)

// ParseIdFormat interprets the optional ID-FORMAT argument of
// file-attributes. nil means Numeric. A symbol or string reading "string"
// (compared case-insensitively) means Named; any other value, including
// misspellings and the symbol integer, also collapses to Numeric. The
// forgiving comparison is historical behavior that callers depend on.
func ParseIdFormat(v lisp.Value) IdFormat {
	s, ok := lisp.SymbolOrStringAsString(v)
	if ok && strings.ToLower(s) == "string" {
		return Named
	}
	return Numeric
}

// errUnsupportedPlatform is reported by probe on platforms without a POSIX
// stat.
var errUnsupportedPlatform = errors.New("file metadata not supported on this platform")

// LegacyFileAttributes is consulted for platforms where the native probe
// cannot describe a path. A host that carries the historical C implementation
// can install it here; when nil, such queries produce nil.
var LegacyFileAttributes func(path, dirname, basename string, idFormat lisp.Value) lisp.Value

// FileAttributes implements the file-attributes operation: it returns the
// attribute list of the named file, or nil if the file cannot be stat'ed.
// The name is expanded first, and a registered file name handler matching the
// expanded name takes over the whole call before any filesystem access; the
// handler receives the optional idFormat argument only if the caller passed
// one. An error is returned only for malformed input such as a file name
// that is not valid UTF-8.
func FileAttributes(filename string, idFormat lisp.Value) (lisp.Value, error) {
	path, err := fsutil.ExpandFileName(filename, "")
	if err != nil {
		return nil, err
	}
	if fn := FindFileNameHandler(path, lisp.QFileAttributes); fn != nil {
		if idFormat == nil {
			return fn(lisp.QFileAttributes, path), nil
		}
		return fn(lisp.QFileAttributes, path, idFormat), nil
	}
	return fileAttributesCommon(path, ParseIdFormat(idFormat)), nil
}

// FileAttributesIn is the entry used by directory listing: it resolves
// filename against dirname and skips handler dispatch, which the directory
// lister has already performed for the directory as a whole.
func FileAttributesIn(dirname, filename string, idFormat lisp.Value) (lisp.Value, error) {
	path, err := fsutil.ExpandFileName(dirname+"/"+filename, "")
	if err != nil {
		return nil, err
	}
	return fileAttributesCommon(path, ParseIdFormat(idFormat)), nil
}

// statProbe is the platform probe behind an indirection, so that tests can
// observe or suppress filesystem access.
var statProbe = probe

func fileAttributesCommon(path string, format IdFormat) lisp.Value {
	st, err := statProbe(path)
	if err != nil {
		if errors.Is(err, errUnsupportedPlatform) && LegacyFileAttributes != nil {
			fv := lisp.Value(lisp.QInteger)
			if format == Named {
				fv = lisp.QString
			}
			return LegacyFileAttributes(path, filepath.Dir(path), filepath.Base(path), fv)
		}
		logger.Printf("file-attributes %s: %v", fsutil.TildeAbbr(path), err)
		return nil
	}
	rec, err := lowerRecord(path, st, format)
	if err != nil {
		// The file vanished between the stat and the mode read.
		logger.Printf("file-attributes %s: %v", fsutil.TildeAbbr(path), err)
		return nil
	}
	return rec
}

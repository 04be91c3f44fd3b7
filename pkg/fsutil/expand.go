// Package fsutil provides filesystem and path utilities consumed by the file
// operations: name expansion, home directory lookup and mode strings.
package fsutil

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gaak99/remacs/pkg/env"
	"github.com/gaak99/remacs/pkg/errs"
)

// ExpandFileName converts a file name to an absolute, canonical one. A
// leading ~ or ~user expands to the home directory; a relative name is
// resolved against defaultDir, or the working directory when defaultDir is
// empty. The . and .. components are collapsed textually; symbolic links are
// left alone. File names that are not valid UTF-8 are rejected.
func ExpandFileName(name, defaultDir string) (string, error) {
	if !utf8.ValidString(name) {
		return "", errs.BadValue{
			What: "file name", Valid: "valid UTF-8 string", Actual: strconv.Quote(name)}
	}
	if strings.HasPrefix(name, "~") {
		i := strings.IndexByte(name, '/')
		if i == -1 {
			i = len(name)
		}
		home, err := GetHome(name[1:i])
		if err != nil {
			return "", err
		}
		name = home + name[i:]
	}
	if !filepath.IsAbs(name) {
		if defaultDir == "" {
			wd, err := os.Getwd()
			if err != nil {
				return "", err
			}
			defaultDir = wd
		}
		name = filepath.Join(defaultDir, name)
	}
	return filepath.Clean(name), nil
}

// GetHome finds the home directory of a specified user. When given an empty
// string, it finds the home directory of the current user.
func GetHome(uname string) (string, error) {
	if uname == "" {
		// Prefer $HOME, which reflects the invoking environment.
		if home := os.Getenv(env.HOME); home != "" {
			return strings.TrimRight(home, "/"), nil
		}
		u, err := user.Current()
		if err != nil {
			return "", fmt.Errorf("can't resolve ~: %w", err)
		}
		return strings.TrimRight(u.HomeDir, "/"), nil
	}
	u, err := user.Lookup(uname)
	if err != nil {
		return "", fmt.Errorf("can't resolve ~%s: %w", uname, err)
	}
	return strings.TrimRight(u.HomeDir, "/"), nil
}

package fsutil

import (
	"io/fs"
	"os"
)

// FileModeString returns the ten-character ls -l rendering of the mode of the
// file named by path, like "drwxr-xr-x". The path is examined in link mode,
// so a symbolic link describes itself.
func FileModeString(path string) (string, error) {
	fi, err := os.Lstat(path)
	if err != nil {
		return "", err
	}
	return ModeString(fi.Mode()), nil
}

// ModeString renders a file mode in the ten-character ls -l form.
func ModeString(m fs.FileMode) string {
	var buf [10]byte
	buf[0] = typeChar(m)
	const rwx = "rwxrwxrwx"
	perm := m.Perm()
	for i := 0; i < 9; i++ {
		if perm&(1<<uint(8-i)) != 0 {
			buf[i+1] = rwx[i]
		} else {
			buf[i+1] = '-'
		}
	}
	// The setuid, setgid and sticky bits take over the execute columns.
	if m&fs.ModeSetuid != 0 {
		buf[3] = 's'
		if perm&0o100 == 0 {
			buf[3] = 'S'
		}
	}
	if m&fs.ModeSetgid != 0 {
		buf[6] = 's'
		if perm&0o010 == 0 {
			buf[6] = 'S'
		}
	}
	if m&fs.ModeSticky != 0 {
		buf[9] = 't'
		if perm&0o001 == 0 {
			buf[9] = 'T'
		}
	}
	return string(buf[:])
}

func typeChar(m fs.FileMode) byte {
	switch {
	case m.IsRegular():
		return '-'
	case m.IsDir():
		return 'd'
	case m&fs.ModeSymlink != 0:
		return 'l'
	case m&fs.ModeNamedPipe != 0:
		return 'p'
	case m&fs.ModeSocket != 0:
		return 's'
	// The char device bit implies the device bit, so it must win.
	case m&fs.ModeCharDevice != 0:
		return 'c'
	case m&fs.ModeDevice != 0:
		return 'b'
	default:
		return '?'
	}
}

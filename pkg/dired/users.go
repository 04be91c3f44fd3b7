package dired

import (
	"bufio"
	"os"
	"os/user"
	"sync"

	"github.com/gaak99/remacs/pkg/env"
	"github.com/gaak99/remacs/pkg/lisp"
)

// Go has no getpwent binding, so enumeration reads the passwd file directly,
// which is also what the pure-Go side of os/user does. The open handle is
// the enumeration cursor: it is acquired per call, closed on every return
// path, and a process-wide lock keeps concurrent enumerations from
// interleaving the way the getpwent cursor would.
var (
	usersMu    sync.Mutex
	passwdFile = "/etc/passwd" // swapped out in tests
)

// SystemUsers implements the system-users operation: a list of the login
// names registered in the system, in database order. When the user database
// is missing or empty, the list contains just the real login name of the
// current process.
func SystemUsers() lisp.Value {
	names := listUsers()
	if len(names) == 0 {
		names = []string{realLoginName()}
	}
	elems := make([]lisp.Value, len(names))
	for i, name := range names {
		elems[i] = name
	}
	return lisp.List(elems...)
}

func listUsers() []string {
	usersMu.Lock()
	defer usersMu.Unlock()
	f, err := os.Open(passwdFile)
	if err != nil {
		logger.Println("open user database:", err)
		return nil
	}
	defer f.Close()

	var names []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		// A passwd line reads root:x:0:0:root:/root:/bin/bash. Blank lines,
		// comments and NSS compat (+/-) entries don't name users.
		line := scanner.Text()
		if line == "" || line[0] == '#' || line[0] == '+' || line[0] == '-' {
			continue
		}
		name := line
		for i := 0; i < len(line); i++ {
			if line[i] == ':' {
				name = line[:i]
				break
			}
		}
		if name != "" {
			names = append(names, name)
		}
	}
	if err := scanner.Err(); err != nil {
		logger.Println("read user database:", err)
	}
	return names
}

// realLoginName finds the login name of the current process's real user,
// falling back to the conventional environment variables, and as a last
// resort the name "unknown".
func realLoginName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	for _, name := range []string{env.LOGNAME, env.USER} {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return "unknown"
}

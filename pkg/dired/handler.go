package dired

import (
	"regexp"
	"sync"

	"github.com/gaak99/remacs/pkg/lisp"
)

// Handler takes over a file operation for file names matching a registered
// pattern. It receives the operation symbol followed by the operation's own
// arguments, and its return value is passed through to the caller untouched.
type Handler func(op lisp.Symbol, args ...lisp.Value) lisp.Value

type handlerEntry struct {
	pattern *regexp.Regexp
	op      lisp.Symbol
	fn      Handler
}

var (
	handlersMu sync.Mutex
	handlers   []*handlerEntry
)

// RegisterFileNameHandler installs fn for file names matching pattern, in the
// manner of file-name-handler-alist. A non-empty op restricts the handler to
// that one operation; an empty op covers every operation. The returned
// function uninstalls the handler.
func RegisterFileNameHandler(pattern *regexp.Regexp, op lisp.Symbol, fn Handler) func() {
	entry := &handlerEntry{pattern, op, fn}
	handlersMu.Lock()
	handlers = append(handlers, entry)
	handlersMu.Unlock()

	return func() {
		handlersMu.Lock()
		defer handlersMu.Unlock()
		for i, e := range handlers {
			if e == entry {
				handlers = append(handlers[:i], handlers[i+1:]...)
				break
			}
		}
	}
}

// FindFileNameHandler returns the earliest registered handler whose pattern
// matches path and which covers op, or nil when no handler does. Matching
// itself is entirely the regexp package's business.
func FindFileNameHandler(path string, op lisp.Symbol) Handler {
	handlersMu.Lock()
	defer handlersMu.Unlock()
	for _, e := range handlers {
		if (e.op == "" || e.op == op) && e.pattern.MatchString(path) {
			return e.fn
		}
	}
	return nil
}

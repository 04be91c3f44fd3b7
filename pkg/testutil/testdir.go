package testutil

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gaak99/remacs/pkg/must"
)

// TempDir creates a unique temporary directory and returns its path, with
// symlinks resolved with filepath.EvalSymlinks. The directory is removed when
// the test finishes.
func TempDir(c Cleanuper) string {
	dir, err := os.MkdirTemp("", "remacs-test.")
	if err != nil {
		panic(fmt.Sprintf("create temp dir: %v", err))
	}
	dir, err = filepath.EvalSymlinks(dir)
	if err != nil {
		panic(fmt.Sprintf("resolve symlinks in temp dir: %v", err))
	}
	c.Cleanup(func() { os.RemoveAll(dir) })
	return dir
}

// Chdir changes into a directory, and restores the original working directory
// when the test finishes. It returns the directory for easier chaining.
func Chdir(c Cleanuper, dir string) string {
	oldWd := must.OK1(os.Getwd())
	must.OK(os.Chdir(dir))
	c.Cleanup(func() { must.OK(os.Chdir(oldWd)) })
	return dir
}

// InTempDir is like TempDir, but also changes into the temporary directory.
func InTempDir(c Cleanuper) string {
	return Chdir(c, TempDir(c))
}

// Dir describes the layout of a directory. The keys of the map represent
// filenames. Each value is either a string (describing the content of a
// regular file with permission 0644), a File, or a Dir (describing a
// subdirectory).
type Dir map[string]any

// File describes a file to create.
type File struct {
	Perm    os.FileMode
	Content string
}

// ApplyDir creates the given filesystem layout in the current directory.
func ApplyDir(dir Dir) {
	applyDir(dir, "")
}

func applyDir(dir Dir, prefix string) {
	for name, file := range dir {
		path := filepath.Join(prefix, name)
		switch file := file.(type) {
		case string:
			must.OK(os.WriteFile(path, []byte(file), 0644))
		case File:
			must.OK(os.WriteFile(path, []byte(file.Content), file.Perm))
		case Dir:
			must.OK(os.MkdirAll(path, 0755))
			applyDir(file, path)
		default:
			panic(fmt.Sprintf("file is neither string, File nor Dir: %v", file))
		}
	}
}

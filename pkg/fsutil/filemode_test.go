package fsutil

import (
	"io/fs"
	"os"
	"testing"

	"github.com/gaak99/remacs/pkg/must"
	"github.com/gaak99/remacs/pkg/testutil"
	"github.com/gaak99/remacs/pkg/tt"
)

func TestModeString(t *testing.T) {
	tt.Test(t, tt.Fn("ModeString", ModeString), tt.Table{
		tt.Args(fs.FileMode(0o644)).Rets("-rw-r--r--"),
		tt.Args(fs.FileMode(0o755)).Rets("-rwxr-xr-x"),
		tt.Args(fs.FileMode(0o000)).Rets("----------"),
		tt.Args(fs.ModeDir | 0o755).Rets("drwxr-xr-x"),
		tt.Args(fs.ModeSymlink | 0o777).Rets("lrwxrwxrwx"),
		tt.Args(fs.ModeNamedPipe | 0o600).Rets("prw-------"),
		tt.Args(fs.ModeSocket | 0o600).Rets("srw-------"),
		tt.Args(fs.ModeDevice | fs.ModeCharDevice | 0o620).Rets("crw--w----"),
		tt.Args(fs.ModeDevice | 0o660).Rets("brw-rw----"),

		tt.Args(fs.ModeSetuid | 0o755).Rets("-rwsr-xr-x"),
		tt.Args(fs.ModeSetuid | 0o644).Rets("-rwSr--r--"),
		tt.Args(fs.ModeSetgid | 0o755).Rets("-rwxr-sr-x"),
		tt.Args(fs.ModeSetgid | 0o644).Rets("-rw-r-Sr--"),
		tt.Args(fs.ModeDir | fs.ModeSticky | 0o777).Rets("drwxrwxrwt"),
		tt.Args(fs.ModeDir | fs.ModeSticky | 0o775).Rets("drwxrwxr-T"),
	})
}

func TestFileModeString(t *testing.T) {
	testutil.InTempDir(t)
	testutil.ApplyDir(testutil.Dir{
		"f": testutil.File{Perm: 0o644, Content: ""},
		"d": testutil.Dir{},
	})
	must.OK(os.Symlink("f", "l"))

	if s := must.OK1(FileModeString("f")); s != "-rw-r--r--" {
		t.Errorf("FileModeString(f) = %q", s)
	}
	if s := must.OK1(FileModeString("d")); s[0] != 'd' {
		t.Errorf("FileModeString(d) = %q, want a d type char", s)
	}
	if s := must.OK1(FileModeString("l")); s[0] != 'l' {
		t.Errorf("FileModeString(l) = %q, want an l type char", s)
	}
	if _, err := FileModeString("missing"); err == nil {
		t.Errorf("FileModeString(missing) succeeded")
	}
}

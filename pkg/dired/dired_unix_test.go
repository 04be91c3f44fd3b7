//go:build linux || darwin

package dired

import (
	"os"
	"os/user"
	"regexp"
	"strconv"
	"testing"

	"golang.org/x/sys/unix"

	"github.com/gaak99/remacs/pkg/lisp"
	"github.com/gaak99/remacs/pkg/must"
	"github.com/gaak99/remacs/pkg/testutil"
)

func TestFileAttributes_RegularFile(t *testing.T) {
	testutil.InTempDir(t)
	testutil.ApplyDir(testutil.Dir{"f": "hello"})
	must.OK(os.Chmod("f", 0o644))

	v, err := FileAttributes("f", nil)
	if err != nil {
		t.Fatal(err)
	}
	elems := attrElems(t, v)
	if elems[0] != nil {
		t.Errorf("file type = %s, want nil", lisp.ReprPlain(elems[0]))
	}
	if !lisp.Equal(elems[1], 1) {
		t.Errorf("nlink = %s, want 1", lisp.ReprPlain(elems[1]))
	}
	if want := lisp.FromNatnum(uint64(os.Getuid())); !lisp.Equal(elems[2], want) {
		t.Errorf("uid = %s, want %s", lisp.ReprPlain(elems[2]), lisp.ReprPlain(want))
	}
	if want := lisp.FromNatnum(uint64(os.Getgid())); !lisp.Equal(elems[3], want) {
		t.Errorf("gid = %s, want %s", lisp.ReprPlain(elems[3]), lisp.ReprPlain(want))
	}
	fi := must.OK1(os.Stat("f"))
	sec, nsec, ok := lisp.TimeValue(elems[5])
	if !ok || sec != fi.ModTime().Unix() || nsec != int64(fi.ModTime().Nanosecond()) {
		t.Errorf("mtime = %s, want %v", lisp.ReprPlain(elems[5]), fi.ModTime())
	}
	for _, i := range []int{4, 6} {
		if _, _, ok := lisp.TimeValue(elems[i]); !ok {
			t.Errorf("element %d = %s, not a time list", i, lisp.ReprPlain(elems[i]))
		}
	}
	if !lisp.Equal(elems[7], len("hello")) {
		t.Errorf("size = %s, want 5", lisp.ReprPlain(elems[7]))
	}
	if elems[8] != lisp.Value("-rw-r--r--") {
		t.Errorf("modes = %s, want -rw-r--r--", lisp.ReprPlain(elems[8]))
	}
	if elems[9] != lisp.Value(true) {
		t.Errorf("element 9 = %s, want t", lisp.ReprPlain(elems[9]))
	}
	var st unix.Stat_t
	must.OK(unix.Stat("f", &st))
	if want := lisp.FromNatnum(st.Ino); !lisp.Equal(elems[10], want) {
		t.Errorf("inode = %s, want %s", lisp.ReprPlain(elems[10]), lisp.ReprPlain(want))
	}
	if elems[11] == nil {
		t.Errorf("device number is nil")
	}
}

func TestFileAttributes_Directory(t *testing.T) {
	testutil.InTempDir(t)
	testutil.ApplyDir(testutil.Dir{"d": testutil.Dir{}})

	elems := attrElems(t, must.OK1(FileAttributes("d", nil)))
	if elems[0] != lisp.Value(true) {
		t.Errorf("file type = %s, want t", lisp.ReprPlain(elems[0]))
	}
	modes, _ := elems[8].(string)
	if len(modes) != 10 || modes[0] != 'd' {
		t.Errorf("modes = %s, want a d type char", lisp.ReprPlain(elems[8]))
	}
}

func TestFileAttributes_DanglingSymlink(t *testing.T) {
	testutil.InTempDir(t)
	const target = "nowhere/to/be/found"
	must.OK(os.Symlink(target, "s"))

	elems := attrElems(t, must.OK1(FileAttributes("s", nil)))
	if elems[0] != lisp.Value(target) {
		t.Errorf("file type = %s, want the link target", lisp.ReprPlain(elems[0]))
	}
	// The numbers describe the link itself; its size is the target text.
	if !lisp.Equal(elems[7], len(target)) {
		t.Errorf("size = %s, want %d", lisp.ReprPlain(elems[7]), len(target))
	}
	if !lisp.Equal(elems[1], 1) {
		t.Errorf("nlink = %s, want 1", lisp.ReprPlain(elems[1]))
	}
	modes, _ := elems[8].(string)
	if len(modes) != 10 || modes[0] != 'l' {
		t.Errorf("modes = %s, want an l type char", lisp.ReprPlain(elems[8]))
	}
}

func TestFileAttributes_LiveSymlink(t *testing.T) {
	testutil.InTempDir(t)
	testutil.ApplyDir(testutil.Dir{"f": "0123456789"})
	must.OK(os.Symlink("f", "s"))

	elems := attrElems(t, must.OK1(FileAttributes("s", nil)))
	if elems[0] != lisp.Value("f") {
		t.Errorf("file type = %s, want the link target", lisp.ReprPlain(elems[0]))
	}
	if !lisp.Equal(elems[7], 1) {
		t.Errorf("size = %s, want the link text length", lisp.ReprPlain(elems[7]))
	}
}

func TestFileAttributes_MissingFile(t *testing.T) {
	testutil.InTempDir(t)
	v, err := FileAttributes("does-not-exist", nil)
	if v != nil || err != nil {
		t.Errorf("FileAttributes(does-not-exist) = (%v, %v), want (nil, nil)", v, err)
	}
}

func TestFileAttributes_NamedIds(t *testing.T) {
	testutil.InTempDir(t)
	testutil.ApplyDir(testutil.Dir{"f": ""})

	elems := attrElems(t, must.OK1(FileAttributes("f", lisp.Symbol("string"))))
	u, err := user.LookupId(strconv.Itoa(os.Getuid()))
	if err != nil {
		// No passwd entry for the current uid; the name falls back to the
		// number.
		if want := lisp.FromNatnum(uint64(os.Getuid())); !lisp.Equal(elems[2], want) {
			t.Errorf("uid = %s, want the numeric fallback", lisp.ReprPlain(elems[2]))
		}
		return
	}
	if elems[2] != lisp.Value(u.Username) {
		t.Errorf("uid = %s, want %q", lisp.ReprPlain(elems[2]), u.Username)
	}
}

func TestFileAttributesIn(t *testing.T) {
	dir := testutil.InTempDir(t)
	testutil.ApplyDir(testutil.Dir{"d": testutil.Dir{"f": "x"}})

	standalone := must.OK1(FileAttributes(dir+"/d/f", nil))
	inDir := must.OK1(FileAttributesIn(dir+"/d", "f", nil))
	if !lisp.Equal(standalone, inDir) {
		t.Errorf("FileAttributesIn = %s, FileAttributes = %s",
			lisp.ReprPlain(inDir), lisp.ReprPlain(standalone))
	}
}

func TestFileAttributesIn_SkipsHandlers(t *testing.T) {
	dir := testutil.InTempDir(t)
	testutil.ApplyDir(testutil.Dir{"f": ""})
	defer RegisterFileNameHandler(
		regexp.MustCompile(regexp.QuoteMeta(dir)), lisp.QFileAttributes,
		func(op lisp.Symbol, args ...lisp.Value) lisp.Value {
			return lisp.Symbol("handled")
		})()

	probes := 0
	orig := statProbe
	testutil.Set(t, &statProbe, func(path string) (rawStat, error) {
		probes++
		return orig(path)
	})

	if v := must.OK1(FileAttributes(dir+"/f", nil)); v != lisp.Symbol("handled") {
		t.Fatalf("FileAttributes = %s, want the handler's value", lisp.ReprPlain(v))
	}
	// The directory lister entry goes straight to the filesystem.
	attrElems(t, must.OK1(FileAttributesIn(dir, "f", nil)))
	if probes != 1 {
		t.Errorf("probed the filesystem %d times, want 1", probes)
	}
}

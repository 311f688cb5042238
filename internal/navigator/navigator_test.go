//nolint:testpackage // White-box tests require access to unexported identifiers in this package.
package navigator

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ensigniasec/dashnav/internal/state"
)

type recordingLauncher struct {
	paths []string
	err   error
}

func (r *recordingLauncher) Launch(path string) error {
	r.paths = append(r.paths, path)
	return r.err
}

// fakeReader serves a fixed tree from memory.
type fakeReader struct {
	dirs  map[string][]string
	files map[string]bool
	err   error
}

func (f *fakeReader) ReadChildren(path string) ([]string, error) {
	if f.err != nil {
		return nil, &IOError{Op: "read", Path: path, Err: f.err}
	}
	children, ok := f.dirs[path]
	if !ok {
		return nil, &IOError{Op: "read", Path: path, Err: os.ErrNotExist}
	}
	return children, nil
}

func (f *fakeReader) IsDir(path string) (bool, error) {
	if _, ok := f.dirs[path]; ok {
		return true, nil
	}
	if f.files[path] {
		return false, nil
	}
	return false, &IOError{Op: "stat", Path: path, Err: os.ErrNotExist}
}

func names(l *state.List[Entry]) []string {
	out := make([]string, 0, l.Len())
	for _, e := range l.Items() {
		out = append(out, e.Name())
	}
	return out
}

// mkTree builds root/a/b/c.txt and returns root/a.
func mkTree(t *testing.T) string {
	t.Helper()
	a := filepath.Join(t.TempDir(), "a")
	require.NoError(t, os.MkdirAll(filepath.Join(a, "b"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(a, "b", "c.txt"), []byte("hi"), 0o600))
	return a
}

func newNav(t *testing.T, r Reader, l Launcher, opts ...Option) *Navigator {
	t.Helper()
	n, err := New(r, l, opts...)
	require.NoError(t, err)
	return n
}

func TestEntry_Name(t *testing.T) {
	assert.Equal(t, "one", Entry{Path: "/x/one"}.Name())
	assert.Equal(t, "c.txt", Entry{Path: "/a/b/c.txt"}.String())
}

func TestNavigator_EndToEnd(t *testing.T) {
	a := mkTree(t)
	launcher := &recordingLauncher{}
	nav := newNav(t, NewFSReader(), launcher)

	list, err := nav.List(a)
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, names(list))

	list.Next()
	inB, err := nav.Enter(list)
	require.NoError(t, err)
	require.NotNil(t, inB)
	assert.Equal(t, []string{"c.txt"}, names(inB))

	inB.Next()
	same, err := nav.Enter(inB)
	require.NoError(t, err)
	assert.Nil(t, same, "launching a file keeps the current list")
	assert.Equal(t, []string{filepath.Join(a, "b", "c.txt")}, launcher.paths)
	assert.Equal(t, []string{"c.txt"}, names(inB))

	back, err := nav.Back(inB)
	require.NoError(t, err)
	// two parents above a/b/c.txt is a
	assert.Equal(t, []string{"b"}, names(back))
	assert.Equal(t, filepath.Join(a, "b"), back.Items()[0].Path)
}

func TestNavigator_ListStartsUnselected(t *testing.T) {
	nav := newNav(t, NewFSReader(), nil)
	list, err := nav.List(mkTree(t))
	require.NoError(t, err)
	_, ok := list.Selected()
	assert.False(t, ok)
}

func TestNavigator_ListKeepsReaderOrder(t *testing.T) {
	r := &fakeReader{dirs: map[string][]string{"/d": {"/d/zeta", "/d/alpha", "/d/mid"}}}
	nav := newNav(t, r, nil)
	list, err := nav.List("/d")
	require.NoError(t, err)
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, names(list))
}

func TestNavigator_ListAppliesIgnore(t *testing.T) {
	r := &fakeReader{dirs: map[string][]string{"/d": {"/d/.git", "/d/main.go", "/d/main.go.swp"}}}
	nav := newNav(t, r, nil, WithIgnore(".git", "*.swp"))
	list, err := nav.List("/d")
	require.NoError(t, err)
	assert.Equal(t, []string{"main.go"}, names(list))
}

func TestNew_BadIgnorePattern(t *testing.T) {
	_, err := New(&fakeReader{}, nil, WithIgnore("[oops"))
	require.Error(t, err)
}

func TestNavigator_ListSurfacesReadErrors(t *testing.T) {
	r := &fakeReader{err: errors.New("permission denied")}
	nav := newNav(t, r, nil)
	list, err := nav.List("/d")
	require.Error(t, err)
	assert.Nil(t, list)
	var ioErr *IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "/d", ioErr.Path)
}

func TestNavigator_BackDepth(t *testing.T) {
	r := &fakeReader{dirs: map[string][]string{
		"/":  {"/a"},
		"/a": {"/a/b"},
	}}
	nav := newNav(t, r, nil)

	tests := []struct {
		name string
		path string
		want []string
		noop bool
	}{
		{name: "depth three", path: "/a/b/c", want: []string{"b"}},
		{name: "depth two", path: "/a/b", want: []string{"a"}},
		{name: "depth one", path: "/a", noop: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := state.NewList([]Entry{{Path: tt.path}})
			list.Select(0)
			got, err := nav.Back(list)
			if tt.noop {
				require.ErrorIs(t, err, ErrNoAncestor)
				assert.True(t, IsNoop(err))
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, names(got))
		})
	}
}

func TestNavigator_NoSelectionIsNoop(t *testing.T) {
	nav := newNav(t, &fakeReader{}, nil)
	list := state.NewList([]Entry{{Path: "/a/b"}})

	_, err := nav.Enter(list)
	require.ErrorIs(t, err, ErrNoSelection)
	_, err = nav.Back(list)
	require.ErrorIs(t, err, ErrNoSelection)
	assert.True(t, IsNoop(err))
}

func TestNavigator_LaunchFailureIsTyped(t *testing.T) {
	r := &fakeReader{dirs: map[string][]string{}, files: map[string]bool{"/f.pdf": true}}
	nav := newNav(t, r, LauncherFunc(func(string) error { return errors.New("no handler") }))

	got, err := nav.Open("/f.pdf")
	assert.Nil(t, got)
	var le *LaunchError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, "/f.pdf", le.Path)
	assert.False(t, IsNoop(err))
}

func TestNavigator_Bookmark(t *testing.T) {
	a := mkTree(t)
	file := filepath.Join(a, "b", "c.txt")
	launcher := &recordingLauncher{}
	nav := newNav(t, NewFSReader(), launcher, WithBookmarks(map[rune]string{'1': a, '2': file}))

	list, err := nav.Bookmark('1')
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, names(list))

	list, err = nav.Bookmark('2')
	require.NoError(t, err)
	assert.Nil(t, list)
	assert.Equal(t, []string{file}, launcher.paths)

	_, err = nav.Bookmark('9')
	require.ErrorIs(t, err, ErrNoBookmark)
}

func TestNavigator_BookmarkToMissingPath(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "gone")
	nav := newNav(t, NewFSReader(), &recordingLauncher{}, WithBookmarks(map[rune]string{'3': missing}))
	_, err := nav.Bookmark('3')
	var ioErr *IOError
	require.ErrorAs(t, err, &ioErr)
}

func TestFSReader_ListsImmediateChildrenOnly(t *testing.T) {
	root := t.TempDir()
	for _, d := range []string{"x/deep", "y"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, d), 0o755))
	}
	require.NoError(t, os.WriteFile(filepath.Join(root, "z.txt"), nil, 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(root, "x", "deep", "hidden.txt"), nil, 0o600))

	got, err := NewFSReader().ReadChildren(root)
	require.NoError(t, err)
	sort.Strings(got)
	assert.Equal(t, []string{
		filepath.Join(root, "x"),
		filepath.Join(root, "y"),
		filepath.Join(root, "z.txt"),
	}, got)
}

func TestFSReader_Errors(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "f.txt")
	require.NoError(t, os.WriteFile(file, nil, 0o600))

	r := NewFSReader()
	_, err := r.ReadChildren(filepath.Join(root, "vanished"))
	var ioErr *IOError
	require.ErrorAs(t, err, &ioErr)
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = r.ReadChildren(file)
	require.ErrorAs(t, err, &ioErr)

	dir, err := r.IsDir(root)
	require.NoError(t, err)
	assert.True(t, dir)
	dir, err = r.IsDir(file)
	require.NoError(t, err)
	assert.False(t, dir)
}

func TestFSReader_PermissionDenied(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root ignores directory permissions")
	}
	locked := filepath.Join(t.TempDir(), "locked")
	require.NoError(t, os.Mkdir(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	nav := newNav(t, NewFSReader(), nil)
	_, err := nav.List(locked)
	require.Error(t, err)
}

func TestAncestor(t *testing.T) {
	got, ok := Ancestor("/a/b/c.txt", 2)
	require.True(t, ok)
	assert.Equal(t, "/a", got)

	got, ok = Ancestor("/a/b", 2)
	require.True(t, ok)
	assert.Equal(t, "/", got)

	_, ok = Ancestor("/a", 2)
	assert.False(t, ok)

	got, ok = Ancestor("/a/b/c", 1)
	require.True(t, ok)
	assert.Equal(t, "/a/b", got)
}

func TestOpenerCommand(t *testing.T) {
	name, args, err := openerCommand("linux", "/f")
	require.NoError(t, err)
	assert.Equal(t, "xdg-open", name)
	assert.Equal(t, []string{"/f"}, args)

	name, _, err = openerCommand("darwin", "/f")
	require.NoError(t, err)
	assert.Equal(t, "open", name)

	_, args, err = openerCommand("windows", `C:\f`)
	require.NoError(t, err)
	assert.Equal(t, []string{"url.dll,FileProtocolHandler", `C:\f`}, args)

	_, _, err = openerCommand("plan9", "/f")
	require.Error(t, err)
}

func TestOSLauncher_MissingOpener(t *testing.T) {
	l := &OSLauncher{goos: "plan9"}
	err := l.Launch("/f")
	var le *LaunchError
	require.ErrorAs(t, err, &le)
}

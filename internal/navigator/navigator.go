package navigator

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/gobwas/glob"
	"github.com/sirupsen/logrus"

	"github.com/ensigniasec/dashnav/internal/state"
)

// BackLevels is how many parents Back climbs from the selected entry. The
// selected entry's parent is the directory already on screen, so 2 lands
// one directory above it.
const BackLevels = 2

// Navigator moves an entry list around the filesystem.
type Navigator struct {
	reader    Reader
	launcher  Launcher
	bookmarks map[rune]string
	ignore    []glob.Glob
	log       *logrus.Entry
}

// Option configures a Navigator.
type Option func(*Navigator) error

// WithBookmarks installs the digit-to-path table.
func WithBookmarks(table map[rune]string) Option {
	return func(n *Navigator) error {
		n.bookmarks = make(map[rune]string, len(table))
		for k, v := range table {
			n.bookmarks[k] = v
		}
		return nil
	}
}

// WithIgnore hides children whose base name matches any pattern.
func WithIgnore(patterns ...string) Option {
	return func(n *Navigator) error {
		for _, p := range patterns {
			g, err := glob.Compile(p)
			if err != nil {
				return fmt.Errorf("ignore pattern %q: %w", p, err)
			}
			n.ignore = append(n.ignore, g)
		}
		return nil
	}
}

// New builds a Navigator. A nil launcher becomes NoopLauncher.
func New(reader Reader, launcher Launcher, opts ...Option) (*Navigator, error) {
	if launcher == nil {
		launcher = NoopLauncher{}
	}
	n := &Navigator{
		reader:   reader,
		launcher: launcher,
		log:      logrus.WithField("component", "navigator"),
	}
	for _, opt := range opts {
		if err := opt(n); err != nil {
			return nil, err
		}
	}
	return n, nil
}

// List reads the children of path into a fresh list with nothing selected.
func (n *Navigator) List(path string) (*state.List[Entry], error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, &IOError{Op: "resolve", Path: path, Err: err}
	}
	children, err := n.reader.ReadChildren(abs)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(children))
	for _, c := range children {
		if n.ignored(filepath.Base(c)) {
			continue
		}
		entries = append(entries, Entry{Path: c})
	}
	n.log.Debugf("listed %s (%d entries)", abs, len(entries))
	return state.NewList(entries), nil
}

func (n *Navigator) ignored(name string) bool {
	for _, g := range n.ignore {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// Open lists path when it is a directory and launches it otherwise. A nil
// list means the caller keeps what it has.
func (n *Navigator) Open(path string) (*state.List[Entry], error) {
	dir, err := n.reader.IsDir(path)
	if err != nil {
		return nil, err
	}
	if dir {
		return n.List(path)
	}
	if err := n.launcher.Launch(path); err != nil {
		var le *LaunchError
		if !errors.As(err, &le) {
			err = &LaunchError{Path: path, Err: err}
		}
		return nil, err
	}
	n.log.Debugf("launched %s", path)
	return nil, nil
}

// Enter opens the selected entry.
func (n *Navigator) Enter(list *state.List[Entry]) (*state.List[Entry], error) {
	e, ok := list.SelectedItem()
	if !ok {
		return nil, ErrNoSelection
	}
	return n.Open(e.Path)
}

// Back lists the directory BackLevels parents above the selected entry.
func (n *Navigator) Back(list *state.List[Entry]) (*state.List[Entry], error) {
	e, ok := list.SelectedItem()
	if !ok {
		return nil, ErrNoSelection
	}
	target, ok := Ancestor(e.Path, BackLevels)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoAncestor, e.Path)
	}
	return n.List(target)
}

// Bookmark opens the path bound to digit.
func (n *Navigator) Bookmark(digit rune) (*state.List[Entry], error) {
	path, ok := n.bookmarks[digit]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrNoBookmark, digit)
	}
	return n.Open(path)
}

// Ancestor climbs levels parents from path. It fails once the climb reaches
// a root, so "/a" has no ancestor at depth 2 and "/a/b" has "/".
func Ancestor(path string, levels int) (string, bool) {
	cur := filepath.Clean(path)
	for i := 0; i < levels; i++ {
		parent := filepath.Dir(cur)
		if parent == cur {
			return "", false
		}
		cur = parent
	}
	return cur, true
}

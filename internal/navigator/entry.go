// Package navigator turns a filesystem location into a selectable list of
// entries and moves that list into child, ancestor and bookmarked
// directories. Files are handed to a Launcher instead of being listed.
package navigator

import "path/filepath"

// Entry is one absolute path shown in the list.
type Entry struct {
	Path string
}

// Name is the last path segment, used for display and for the task dump.
func (e Entry) Name() string {
	return filepath.Base(e.Path)
}

func (e Entry) String() string { return e.Name() }

package navigator

import (
	"errors"
	"fmt"
)

// Sentinel errors for navigation that has nowhere to go. Callers treat them
// as no-ops rather than failures.
var (
	ErrNoAncestor  = errors.New("no ancestor at requested depth")
	ErrNoBookmark  = errors.New("no bookmark for key")
	ErrNoSelection = errors.New("nothing selected")
)

// IOError reports an unreadable or vanished path.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// LaunchError reports a file the OS refused to open.
type LaunchError struct {
	Path string
	Err  error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("launch %s: %v", e.Path, e.Err)
}

func (e *LaunchError) Unwrap() error { return e.Err }

// IsNoop reports whether err only means "nothing to do".
func IsNoop(err error) bool {
	return errors.Is(err, ErrNoAncestor) || errors.Is(err, ErrNoSelection)
}

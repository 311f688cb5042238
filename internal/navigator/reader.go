package navigator

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/charlievieth/fastwalk"
)

// Reader is the filesystem collaborator.
type Reader interface {
	// ReadChildren returns the absolute paths of the immediate children of
	// path in enumeration order.
	ReadChildren(path string) ([]string, error)
	IsDir(path string) (bool, error)
}

// FSReader reads the local filesystem.
type FSReader struct {
	conf fastwalk.Config
}

func NewFSReader() *FSReader {
	return &FSReader{conf: fastwalk.DefaultConfig}
}

// ReadChildren lists one directory level. fastwalk fans the work out over
// its workers, so the order is whatever they enumerate; the call still
// returns only once every child has been seen. Any entry that cannot be read
// fails the whole listing.
func (r *FSReader) ReadChildren(path string) ([]string, error) {
	root := filepath.Clean(path)
	info, err := os.Stat(root)
	if err != nil {
		return nil, &IOError{Op: "read", Path: root, Err: err}
	}
	if !info.IsDir() {
		return nil, &IOError{Op: "read", Path: root, Err: fmt.Errorf("not a directory")}
	}

	var (
		mu       sync.Mutex
		children []string
		errs     []error
	)
	conf := r.conf
	walkErr := fastwalk.Walk(&conf, root, func(p string, d fs.DirEntry, err error) error {
		if filepath.Clean(p) == root {
			if err != nil {
				return err
			}
			return nil
		}
		mu.Lock()
		if err != nil {
			errs = append(errs, err)
		} else {
			children = append(children, p)
		}
		mu.Unlock()
		if err == nil && d != nil && d.IsDir() {
			return fs.SkipDir
		}
		return nil
	})
	if walkErr != nil {
		errs = append(errs, walkErr)
	}
	if len(errs) > 0 {
		return nil, &IOError{Op: "read", Path: root, Err: errors.Join(errs...)}
	}
	return children, nil
}

// IsDir follows symlinks.
func (r *FSReader) IsDir(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, &IOError{Op: "stat", Path: path, Err: err}
	}
	return info.IsDir(), nil
}

// Package storage persists the active entry list as a flat text file, one
// display name per line, when the dashboard exits.
package storage

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ensigniasec/dashnav/internal/config"
	"github.com/ensigniasec/dashnav/internal/validate"
)

// TaskFile handles the saving and loading of the task dump.
type TaskFile struct {
	Path string `validate:"required,filepath"`
}

// NewTaskFile creates a TaskFile, expanding a leading tilde and $VARs.
func NewTaskFile(path string) (*TaskFile, error) {
	expandedPath, err := config.ExpandPath(path)
	if err != nil {
		return nil, err
	}

	f := &TaskFile{Path: expandedPath}
	if err := validate.Struct(f); err != nil {
		return nil, fmt.Errorf("task file: %w", err)
	}
	return f, nil
}

// Save truncates or creates the file and writes one line per value, in order.
// No header is written and values are not escaped.
func (f *TaskFile) Save(lines []string) error {
	logrus.Debug("Saving task file to: ", f.Path)
	// Ensure parent directory exists.
	if dir := filepath.Dir(f.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	out, err := os.Create(f.Path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(out)
	for _, line := range lines {
		if _, err := w.WriteString(line + "\n"); err != nil {
			_ = out.Close()
			return err
		}
	}
	if err := w.Flush(); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

// Load returns the lines of the last dump.
func (f *TaskFile) Load() ([]string, error) {
	logrus.Debug("Loading task file from: ", f.Path)
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, err
	}
	text := strings.TrimSuffix(string(data), "\n")
	if text == "" {
		return []string{}, nil
	}
	return strings.Split(text, "\n"), nil
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/ensigniasec/dashnav/internal/validate"
)

// ErrUnsupportedFormat is returned for config files that are neither YAML nor TOML.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// DefaultPath returns ~/.config/dashnav/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "dashnav", "config.yaml"), nil
}

// Load reads the config at path over the defaults. An empty path falls back
// to DefaultPath, and a missing default file yields Default().
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			logrus.Debugf("no home directory for default config: %v", err)
			return cfg, cfg.Finalize()
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			logrus.Debug("No config file at ", path, "; using defaults")
			return cfg, cfg.Finalize()
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	logrus.Debug("Loading config file from: ", path)

	var raw Config
	if err := unmarshal(path, data, &raw); err != nil {
		return nil, err
	}
	cfg.overlay(&raw)

	// Signal sections are decoded on top of the defaults so a partial
	// section keeps its other parameters.
	sig := signalsDoc{Signals: cfg.Signals}
	if err := unmarshal(path, data, &sig); err != nil {
		return nil, err
	}
	cfg.Signals = sig.Signals

	if err := cfg.Finalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// overlay copies every top-level field set in src over c. Collections are
// replaced, not merged. Signals are handled separately in Load.
func (c *Config) overlay(src *Config) { //nolint:cyclop // flat field-by-field copy.
	if src.Title != "" {
		c.Title = src.Title
	}
	if src.Root != "" {
		c.Root = src.Root
	}
	if src.TaskFile != "" {
		c.TaskFile = src.TaskFile
	}
	if src.TickRate != 0 {
		c.TickRate = src.TickRate
	}
	if src.EnhancedGraphics {
		c.EnhancedGraphics = true
	}
	if src.Tabs != nil {
		c.Tabs = src.Tabs
	}
	if src.Bookmarks != nil {
		c.Bookmarks = src.Bookmarks
	}
	if src.Ignore != nil {
		c.Ignore = src.Ignore
	}
	if src.Events != nil {
		c.Events = src.Events
	}
	if src.Bars != nil {
		c.Bars = src.Bars
	}
	if src.Servers != nil {
		c.Servers = src.Servers
	}
}

type signalsDoc struct {
	Signals Signals `yaml:"signals" toml:"signals"`
}

func unmarshal(path string, data []byte, out any) error {
	var err error
	switch {
	case isYAMLFile(path):
		err = yaml.Unmarshal(data, out)
	case isTOMLFile(path):
		_, err = toml.Decode(string(data), out)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
	if err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// Finalize expands paths and validates. Call it again after changing fields
// by hand, e.g. from command line flags.
func (c *Config) Finalize() error {
	var err error
	if c.Root, err = ExpandPath(c.Root); err != nil {
		return fmt.Errorf("expand root: %w", err)
	}
	if c.TaskFile, err = ExpandPath(c.TaskFile); err != nil {
		return fmt.Errorf("expand task file: %w", err)
	}
	for k, v := range c.Bookmarks {
		expanded, err := ExpandPath(v)
		if err != nil {
			return fmt.Errorf("expand bookmark %s: %w", k, err)
		}
		c.Bookmarks[k] = expanded
	}
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// ExpandPath resolves a leading ~ and $VAR references, then cleans the path.
func ExpandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	var err error
	if runtime.GOOS != "windows" {
		path, err = expandTilde(path)
		if err != nil {
			return "", err
		}
	}
	path = os.ExpandEnv(path)
	return filepath.Clean(path), nil
}

func expandTilde(path string) (string, error) {
	if len(path) == 0 || path[0] != '~' {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, path[1:]), nil
}

func isYAMLFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func isTOMLFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

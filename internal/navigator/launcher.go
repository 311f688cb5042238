package navigator

import (
	"errors"
	"os/exec"
	"runtime"

	"github.com/sirupsen/logrus"
)

// Launcher hands a file to whatever the host uses to open it.
type Launcher interface {
	Launch(path string) error
}

// LauncherFunc adapts a function to Launcher.
type LauncherFunc func(path string) error

func (f LauncherFunc) Launch(path string) error { return f(path) }

// OSLauncher starts the platform's default opener and does not wait for it.
type OSLauncher struct {
	goos string
}

func NewOSLauncher() *OSLauncher {
	return &OSLauncher{goos: runtime.GOOS}
}

func (l *OSLauncher) Launch(path string) error {
	name, args, err := openerCommand(l.goos, path)
	if err != nil {
		return &LaunchError{Path: path, Err: err}
	}
	if _, err := exec.LookPath(name); err != nil {
		return &LaunchError{Path: path, Err: err}
	}
	cmd := exec.Command(name, args...) //nolint:gosec // path comes from the user's own directory listing.
	if err := cmd.Start(); err != nil {
		return &LaunchError{Path: path, Err: err}
	}
	logrus.WithField("component", "launcher").Debugf("opened %s with %s (pid %d)", path, name, cmd.Process.Pid)
	// Reap in the background; the opener usually exits as soon as it hands off.
	go func() { _ = cmd.Wait() }()
	return nil
}

func openerCommand(goos, path string) (string, []string, error) {
	switch goos {
	case "darwin":
		return "open", []string{path}, nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", path}, nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return "xdg-open", []string{path}, nil
	default:
		return "", nil, errors.New("no default opener for " + goos)
	}
}

// NoopLauncher records nothing and opens nothing, for headless runs.
type NoopLauncher struct{}

func (NoopLauncher) Launch(path string) error {
	logrus.WithField("component", "launcher").Debugf("launch disabled, skipping %s", path)
	return nil
}

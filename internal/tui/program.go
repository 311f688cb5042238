package tui

import (
	"context"
	"errors"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/ensigniasec/dashnav/internal/app"
)

// Run starts the Bubble Tea program and blocks until the controller quits or
// ctx is cancelled. keepLogs leaves logrus output alone, for when it already
// points at a file.
func Run(ctx context.Context, ctrl *app.Controller, tickRate time.Duration, keepLogs bool) error {
	model := NewModel(ctrl, tickRate)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	// Silence external logs (WARN/ERRO) during TUI to avoid corrupting the view.
	if !keepLogs {
		prevOut := logrus.StandardLogger().Out
		logrus.SetOutput(io.Discard)
		defer logrus.SetOutput(prevOut)
	}

	// Run TUI blocking in this goroutine.
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		// Cancelled from outside: still leave the task dump behind.
		if qerr := ctrl.Quit(); qerr != nil {
			return qerr
		}
		return ctx.Err()
	}
	if err != nil {
		return err
	}
	return ctrl.QuitErr()
}

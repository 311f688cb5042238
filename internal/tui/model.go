package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ensigniasec/dashnav/internal/app"
)

// Model is the root Bubble Tea model. It owns no dashboard state of its own;
// everything it draws comes from a controller snapshot.
type Model struct {
	ctrl     *app.Controller
	tickRate time.Duration
	width    int
	height   int
	progress progress.Model
	help     help.Model
}

// NewModel wraps a controller.
func NewModel(ctrl *app.Controller, tickRate time.Duration) Model {
	return Model{
		ctrl:     ctrl,
		tickRate: tickRate,
		progress: progress.New(progress.WithDefaultGradient()),
		help:     help.New(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.tick()
}

// tick schedules the next tickMsg.
func (m Model) tick() tea.Cmd {
	return tea.Tick(m.tickRate, func(t time.Time) tea.Msg {
		return tickMsg{At: t}
	})
}

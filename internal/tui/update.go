package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) { // nolint:ireturn
	switch x := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = x.Width, x.Height
		return m, nil

	case tea.KeyMsg:
		m.ctrl.HandleKey(x)
		if m.ctrl.Quitting() {
			return m, tea.Quit
		}
		return m, nil

	case tickMsg:
		if m.ctrl.Quitting() {
			return m, nil
		}
		m.ctrl.Tick()
		return m, m.tick()
	}

	return m, nil
}

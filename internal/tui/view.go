package tui

import (
	"fmt"
	"math"
	"math/bits"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ensigniasec/dashnav/internal/app"
	"github.com/ensigniasec/dashnav/internal/config"
	"github.com/ensigniasec/dashnav/internal/signal"
)

//nolint:gochecknoglobals // shared styles.
var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69"))
	tabStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Padding(0, 1)
	activeTab     = tabStyle.Foreground(lipgloss.Color("226")).Bold(true).Underline(true)
	panelStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

func (m Model) View() string {
	snap := m.ctrl.Snapshot()
	if snap.Quitting {
		return "Saving and shutting down...\n"
	}

	width := m.width
	if width <= 0 {
		width = defaultWidth
	}

	var b strings.Builder
	b.WriteString(renderTabs(snap))
	b.WriteString("\n")

	switch snap.TabIndex {
	case 0:
		b.WriteString(m.renderOverview(snap, width))
	case 1:
		b.WriteString(renderServers(snap.Servers))
	default:
		b.WriteString(renderDiagnostics(snap))
	}

	b.WriteString("\n")
	if n := len(snap.Errors); n > 0 {
		b.WriteString(errorStyle.Render("! " + snap.Errors[n-1]))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.ctrl.Keys()))
	return b.String()
}

func renderTabs(snap app.Snapshot) string {
	parts := []string{titleStyle.Render(snap.Title)}
	for i, t := range snap.Tabs {
		if i == snap.TabIndex {
			parts = append(parts, activeTab.Render(t))
			continue
		}
		parts = append(parts, tabStyle.Render(t))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) renderOverview(snap app.Snapshot, width int) string {
	half := width/2 - 4
	if half < minPanelWidth {
		half = minPanelWidth
	}

	// panel padding eats two columns
	inner := half - 2

	bar := m.progress
	bar.Width = inner
	gauge := fmt.Sprintf("Gauge %5.2f%%\n%s\nSparkline\n%s",
		snap.Progress*100, bar.ViewAs(snap.Progress), renderSparkline(snap.Sparkline, inner))

	left := lipgloss.JoinVertical(lipgloss.Left,
		panelStyle.Width(half).Render(gauge),
		panelStyle.Width(half).Render(renderEntries(snap)),
	)

	var right string
	if snap.ShowChart {
		right = panelStyle.Width(half).Render(renderChart(snap, inner))
	} else {
		right = lipgloss.JoinVertical(lipgloss.Left,
			panelStyle.Width(half).Render(renderEvents(snap.Events)),
			panelStyle.Width(half).Render(renderBars(snap.Bars, inner)),
		)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

func renderSparkline(values []uint64, width int) string {
	if len(values) > width {
		values = values[len(values)-width:]
	}
	var maxV uint64
	for _, v := range values {
		maxV = max(maxV, v)
	}
	var b strings.Builder
	for _, v := range values {
		idx := 0
		if maxV > 0 {
			idx = int(scaleTo(v, maxV, uint64(len(sparkRunes)-1), false))
		}
		b.WriteRune(sparkRunes[idx])
	}
	return b.String()
}

// scaleTo maps v in [0, maxV] onto [0, n] without overflowing the product.
// maxV must be non-zero and v <= maxV.
func scaleTo(v, maxV, n uint64, roundUp bool) uint64 {
	hi, lo := bits.Mul64(v, n)
	q, rem := bits.Div64(hi, lo, maxV)
	if roundUp && rem != 0 {
		q++
	}
	return q
}

func renderEntries(snap app.Snapshot) string {
	if len(snap.Entries) == 0 {
		return dimStyle.Render("(empty directory)")
	}
	start := 0
	if snap.Selected >= entryViewportLines {
		start = snap.Selected - entryViewportLines + 1
	}
	end := min(start+entryViewportLines, len(snap.Entries))

	var b strings.Builder
	for i := start; i < end; i++ {
		if i == snap.Selected {
			b.WriteString(selectedStyle.Render(">> " + snap.Entries[i]))
		} else {
			b.WriteString("   " + snap.Entries[i])
		}
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func levelStyle(level string) lipgloss.Style {
	switch level {
	case "CRITICAL":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	case "ERROR":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	case "WARNING":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	}
}

func renderEvents(events []config.Event) string {
	n := min(eventViewportLines, len(events))
	lines := make([]string, 0, n)
	for _, e := range events[:n] {
		lines = append(lines, fmt.Sprintf("%-10s %s", levelStyle(e.Level).Render(e.Level), e.Message))
	}
	return strings.Join(lines, "\n")
}

func renderBars(bars []config.Bar, width int) string {
	if len(bars) == 0 {
		return ""
	}
	// one column per bar, two cells wide with a gap
	if limit := width / 3; len(bars) > limit && limit > 0 {
		bars = bars[:limit]
	}
	var maxV uint64
	for _, b := range bars {
		maxV = max(maxV, b.Value)
	}
	rows := make([]string, barMaxHeight)
	for r := 0; r < barMaxHeight; r++ {
		level := uint64(barMaxHeight - r)
		var sb strings.Builder
		for _, b := range bars {
			h := uint64(0)
			if maxV > 0 {
				h = scaleTo(b.Value, maxV, barMaxHeight, true)
			}
			if h >= level {
				sb.WriteString("██ ")
			} else {
				sb.WriteString("   ")
			}
		}
		rows[r] = sb.String()
	}
	return strings.Join(rows, "\n")
}

// renderChart plots both oscillators on a character grid spanning the
// current x-domain.
func renderChart(snap app.Snapshot, width int) string {
	lo, hi := snap.XWindow[0], snap.XWindow[1]
	if hi <= lo || width <= 0 {
		return ""
	}
	grid := make([][]rune, chartHeight)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", width))
	}
	yMax := 1.0
	for _, p := range append(append([]signal.Point(nil), snap.First...), snap.Second...) {
		yMax = math.Max(yMax, math.Abs(p.Y))
	}
	plot := func(points []signal.Point, mark rune) {
		for _, p := range points {
			if p.X < lo || p.X > hi {
				continue
			}
			col := int((p.X - lo) / (hi - lo) * float64(width-1))
			row := int((1 - (p.Y/yMax+1)/2) * float64(chartHeight-1))
			grid[row][col] = mark
		}
	}
	plot(snap.First, '•')
	plot(snap.Second, '·')

	lines := make([]string, 0, chartHeight+1)
	for _, r := range grid {
		lines = append(lines, string(r))
	}
	lines = append(lines, dimStyle.Render(fmt.Sprintf("x: %.0f … %.0f", lo, hi)))
	return strings.Join(lines, "\n")
}

func renderServers(servers []config.Server) string {
	var b strings.Builder
	b.WriteString(dimStyle.Render(fmt.Sprintf("%-16s %-16s %8s %8s  %s", "Server", "Location", "Lat", "Lon", "Status")))
	for _, s := range servers {
		status := s.Status
		if status != "Up" {
			status = errorStyle.Render(status)
		}
		b.WriteString(fmt.Sprintf("\n%-16s %-16s %8.2f %8.2f  %s", s.Name, s.Location, s.Lat, s.Lon, status))
	}
	return panelStyle.Render(b.String())
}

func renderDiagnostics(snap app.Snapshot) string {
	var b strings.Builder
	b.WriteString(dimStyle.Render("session " + snap.SessionID))
	if snap.EnhancedGraphics {
		b.WriteString(dimStyle.Render("  (enhanced graphics)"))
	}
	if len(snap.Errors) == 0 {
		b.WriteString("\nNo errors recorded.")
		return panelStyle.Render(b.String())
	}
	for _, e := range snap.Errors {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(e))
	}
	return panelStyle.Render(b.String())
}

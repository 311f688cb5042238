package app

import (
	"github.com/ensigniasec/dashnav/internal/config"
	"github.com/ensigniasec/dashnav/internal/signal"
)

// Snapshot is a detached copy of everything the view draws.
type Snapshot struct {
	Title            string
	SessionID        string
	Entries          []string
	Selected         int // -1 when nothing is selected
	Tabs             []string
	TabIndex         int
	Progress         float64
	First            []signal.Point
	Second           []signal.Point
	XWindow          [2]float64
	Sparkline        []uint64
	Events           []config.Event
	Bars             []config.Bar
	Servers          []config.Server
	ShowChart        bool
	EnhancedGraphics bool
	Errors           []string
	Quitting         bool
}

// Snapshot copies the current state. Mutating the result never touches the
// controller.
func (c *Controller) Snapshot() Snapshot {
	items := c.entries.Items()
	names := make([]string, len(items))
	for i, e := range items {
		names[i] = e.Name()
	}
	selected := -1
	if i, ok := c.entries.Selected(); ok {
		selected = i
	}
	errs := make([]string, len(c.errs))
	for i, err := range c.errs {
		errs[i] = err.Error()
	}
	return Snapshot{
		Title:            c.title,
		SessionID:        c.sessionID,
		Entries:          names,
		Selected:         selected,
		Tabs:             c.tabs.Titles(),
		TabIndex:         c.tabs.Index(),
		Progress:         c.progress,
		First:            c.signals.First().Window(),
		Second:           c.signals.Second().Window(),
		XWindow:          c.signals.XWindow(),
		Sparkline:        c.sparkline.Window(),
		Events:           c.events.Items(),
		Bars:             c.bars.Items(),
		Servers:          append([]config.Server(nil), c.servers...),
		ShowChart:        c.showChart,
		EnhancedGraphics: c.enhancedGraphics,
		Errors:           errs,
		Quitting:         c.runState == Quitting,
	}
}

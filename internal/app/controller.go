// Package app is the dashboard state engine. A Controller owns every piece
// of mutable state and advances it one key press or tick at a time.
package app

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ensigniasec/dashnav/internal/config"
	"github.com/ensigniasec/dashnav/internal/navigator"
	"github.com/ensigniasec/dashnav/internal/signal"
	"github.com/ensigniasec/dashnav/internal/state"
	"github.com/ensigniasec/dashnav/internal/storage"
)

// RunState is the controller lifecycle.
type RunState int

const (
	Running RunState = iota
	Quitting
)

func (s RunState) String() string {
	if s == Quitting {
		return "quitting"
	}
	return "running"
}

// Controller is not safe for concurrent use; the event loop calls it from a
// single goroutine.
type Controller struct {
	title            string
	sessionID        string
	enhancedGraphics bool
	keys             KeyMap
	nav              *navigator.Navigator
	taskFile         *storage.TaskFile
	log              *logrus.Entry

	entries   *state.List[navigator.Entry]
	tabs      *state.TabBar
	signals   *signal.Bundle
	sparkline *signal.Sliding[uint64]
	events    *state.Ring[config.Event]
	bars      *state.Ring[config.Bar]
	servers   []config.Server

	progress  float64
	showChart bool
	runState  RunState
	quitErr   error
	errs      []error
}

// New builds a controller from cfg and lists cfg.Root. A failed initial
// listing is recorded and leaves the entry list empty.
func New(cfg *config.Config, nav *navigator.Navigator) (*Controller, error) {
	if cfg == nil || nav == nil {
		return nil, errors.New("app: config and navigator are required")
	}
	taskFile, err := storage.NewTaskFile(cfg.TaskFile)
	if err != nil {
		return nil, err
	}
	bundle, sparkline, err := buildSignals(cfg.Signals)
	if err != nil {
		return nil, err
	}

	id := uuid.NewString()
	c := &Controller{
		title:            cfg.Title,
		sessionID:        id,
		enhancedGraphics: cfg.EnhancedGraphics,
		keys:             DefaultKeyMap(),
		nav:              nav,
		taskFile:         taskFile,
		log:              logrus.WithFields(logrus.Fields{"component": "controller", "session": id}),
		entries:          state.NewList[navigator.Entry](nil),
		tabs:             state.NewTabBar(cfg.Tabs),
		signals:          bundle,
		sparkline:        sparkline,
		events:           state.NewRing(cfg.Events),
		bars:             state.NewRing(cfg.Bars),
		servers:          append([]config.Server(nil), cfg.Servers...),
	}

	if list, err := nav.List(cfg.Root); err != nil {
		c.record("list root", err)
	} else {
		c.entries = list
	}
	c.log.Infof("started in %s with %d entries", cfg.Root, c.entries.Len())
	return c, nil
}

func buildSignals(s config.Signals) (*signal.Bundle, *signal.Sliding[uint64], error) {
	first, err := signal.NewSliding[signal.Point](
		signal.NewSine(s.First.Interval, s.First.Period, s.First.Scale), s.First.Window, s.First.Step)
	if err != nil {
		return nil, nil, fmt.Errorf("first signal: %w", err)
	}
	second, err := signal.NewSliding[signal.Point](
		signal.NewSine(s.Second.Interval, s.Second.Period, s.Second.Scale), s.Second.Window, s.Second.Step)
	if err != nil {
		return nil, nil, fmt.Errorf("second signal: %w", err)
	}
	noise := s.Sparkline
	sparkline, err := signal.NewSliding[uint64](
		signal.NewRandom(noise.Lower, noise.Upper, noise.Seed), noise.Window, noise.Step)
	if err != nil {
		return nil, nil, fmt.Errorf("sparkline: %w", err)
	}
	return signal.NewBundle(first, second, s.Domain[0], s.Domain[1]), sparkline, nil
}

// Keys returns the active bindings, for help rendering.
func (c *Controller) Keys() KeyMap { return c.keys }

func (c *Controller) State() RunState { return c.runState }

func (c *Controller) Quitting() bool { return c.runState == Quitting }

// QuitErr is the task file write failure from Quit, if any.
func (c *Controller) QuitErr() error { return c.quitErr }

// Errors returns the recorded non-fatal failures, oldest first.
func (c *Controller) Errors() []error {
	return append([]error(nil), c.errs...)
}

// HandleKey dispatches one key press.
func (c *Controller) HandleKey(msg tea.KeyMsg) { //nolint:cyclop // flat key switch.
	if c.runState == Quitting {
		return
	}
	if d, ok := digitKey(msg); ok {
		c.navigate("bookmark", func() (*state.List[navigator.Entry], error) {
			return c.nav.Bookmark(d)
		})
		return
	}

	switch {
	case key.Matches(msg, c.keys.Quit):
		_ = c.Quit()
	case key.Matches(msg, c.keys.Up):
		c.entries.Previous()
	case key.Matches(msg, c.keys.Down):
		c.entries.Next()
	case key.Matches(msg, c.keys.PrevTab):
		c.tabs.Previous()
	case key.Matches(msg, c.keys.NextTab):
		c.tabs.Next()
	case key.Matches(msg, c.keys.Enter):
		c.navigate("enter", func() (*state.List[navigator.Entry], error) {
			return c.nav.Enter(c.entries)
		})
	case key.Matches(msg, c.keys.Back):
		c.navigate("back", func() (*state.List[navigator.Entry], error) {
			return c.nav.Back(c.entries)
		})
	case key.Matches(msg, c.keys.ToggleChart):
		c.showChart = !c.showChart
	}
}

// navigate swaps in the list op produces. On error, or when op launched a
// file, the current list stays.
func (c *Controller) navigate(op string, fn func() (*state.List[navigator.Entry], error)) {
	next, err := fn()
	if err != nil {
		c.record(op, err)
		return
	}
	if next != nil {
		c.entries = next
	}
}

// Tick advances every time-driven component by one step.
func (c *Controller) Tick() {
	if c.runState == Quitting {
		return
	}
	c.progress += progressStep
	if c.progress > 1.0 {
		c.progress = 0.0
	}
	c.sparkline.Tick()
	c.signals.Tick()
	c.events.Rotate()
	c.bars.Rotate()
}

// Quit writes the entry names to the task file and enters Quitting. The
// transition happens even if the write fails; the error is recorded and
// returned.
func (c *Controller) Quit() error {
	if c.runState == Quitting {
		return nil
	}
	items := c.entries.Items()
	lines := make([]string, len(items))
	for i, e := range items {
		lines[i] = e.Name()
	}
	err := c.taskFile.Save(lines)
	if err != nil {
		err = fmt.Errorf("save %s: %w", c.taskFile.Path, err)
		c.record("quit", err)
	} else {
		c.log.Infof("saved %d entries to %s", len(lines), c.taskFile.Path)
	}
	c.runState = Quitting
	c.quitErr = err
	return err
}

func (c *Controller) record(op string, err error) {
	if navigator.IsNoop(err) {
		c.log.Debugf("%s: %v", op, err)
		return
	}
	c.log.WithError(err).Warnf("%s failed", op)
	c.errs = append(c.errs, err)
	if len(c.errs) > maxRecordedErrors {
		c.errs = c.errs[len(c.errs)-maxRecordedErrors:]
	}
}

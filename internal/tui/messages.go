package tui

import "time"

// Message types for Bubble Tea update loop.

// tickMsg fires on every tick interval to advance charts and gauges.
type tickMsg struct{ At time.Time }

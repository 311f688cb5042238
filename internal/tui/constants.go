package tui

// Package-level constants to avoid magic numbers and improve readability.
const (
	defaultWidth  = 100
	minPanelWidth = 20

	// entryViewportLines caps how many entries the file panel shows at once.
	entryViewportLines = 15
	// eventViewportLines caps the visible tail of the rotating event log.
	eventViewportLines = 8
	// chartHeight is the number of rows in the oscillator plot.
	chartHeight = 10
	// barMaxHeight is the tallest bar in rows.
	barMaxHeight = 6
)

// sparkRunes maps a 0..1 level onto eighth-block glyphs.
var sparkRunes = []rune("▁▂▃▄▅▆▇█") //nolint:gochecknoglobals // immutable glyph table.

// Package config holds everything the dashboard used to compile in: the
// starting directory, bookmarks, tab titles, the demo event log, bar series
// and server roster, and the chart signal parameters.
package config

import (
	"time"

	"github.com/ensigniasec/dashnav/internal/validate"
)

// Config is injected into the controller at construction.
type Config struct {
	Title            string            `yaml:"title" toml:"title" validate:"required"`
	Root             string            `yaml:"root" toml:"root" validate:"required"`
	TaskFile         string            `yaml:"task_file" toml:"task_file" validate:"required"`
	TickRate         time.Duration     `yaml:"tick_rate" toml:"tick_rate" validate:"gt=0"`
	EnhancedGraphics bool              `yaml:"enhanced_graphics" toml:"enhanced_graphics"`
	Tabs             []string          `yaml:"tabs" toml:"tabs" validate:"min=1,dive,required"`
	Bookmarks        map[string]string `yaml:"bookmarks" toml:"bookmarks" validate:"dive,keys,bookmark_key,endkeys,required"`
	Ignore           []string          `yaml:"ignore" toml:"ignore" validate:"dive,glob"`
	Events           []Event           `yaml:"events" toml:"events" validate:"dive"`
	Bars             []Bar             `yaml:"bars" toml:"bars" validate:"dive"`
	Servers          []Server          `yaml:"servers" toml:"servers" validate:"dive"`
	Signals          Signals           `yaml:"signals" toml:"signals"`
}

// Event is one line of the rotating event log.
type Event struct {
	Message string `yaml:"message" toml:"message" validate:"required"`
	Level   string `yaml:"level" toml:"level" validate:"oneof=INFO WARNING ERROR CRITICAL"`
}

// Bar is one labelled column of the bar chart.
type Bar struct {
	Label string `yaml:"label" toml:"label" validate:"required"`
	Value uint64 `yaml:"value" toml:"value"`
}

// Server is a display-only roster record.
type Server struct {
	Name     string  `yaml:"name" toml:"name" validate:"required"`
	Location string  `yaml:"location" toml:"location"`
	Lat      float64 `yaml:"lat" toml:"lat" validate:"gte=-90,lte=90"`
	Lon      float64 `yaml:"lon" toml:"lon" validate:"gte=-180,lte=180"`
	Status   string  `yaml:"status" toml:"status"`
}

// Wave parameterises one sine oscillator and its window.
type Wave struct {
	Interval float64 `yaml:"interval" toml:"interval" validate:"gt=0"`
	Period   float64 `yaml:"period" toml:"period" validate:"gt=0"`
	Scale    float64 `yaml:"scale" toml:"scale"`
	Window   int     `yaml:"window" toml:"window" validate:"gtefield=Step"`
	Step     int     `yaml:"step" toml:"step" validate:"gt=0"`
}

// Noise parameterises the random sparkline stream.
type Noise struct {
	Lower  uint64 `yaml:"lower" toml:"lower"`
	Upper  uint64 `yaml:"upper" toml:"upper" validate:"gtefield=Lower"`
	Seed   uint64 `yaml:"seed" toml:"seed"`
	Window int    `yaml:"window" toml:"window" validate:"gtefield=Step"`
	Step   int    `yaml:"step" toml:"step" validate:"gt=0"`
}

// Signals groups the chart sources. Domain is the initial x-axis [lo, hi].
type Signals struct {
	First     Wave       `yaml:"first" toml:"first"`
	Second    Wave       `yaml:"second" toml:"second"`
	Domain    [2]float64 `yaml:"domain" toml:"domain"`
	Sparkline Noise      `yaml:"sparkline" toml:"sparkline"`
}

// BookmarkTable converts the digit-keyed bookmarks to rune keys.
func (c *Config) BookmarkTable() map[rune]string {
	out := make(map[rune]string, len(c.Bookmarks))
	for k, v := range c.Bookmarks {
		if validate.Var(k, "bookmark_key") != nil {
			continue
		}
		out[rune(k[0])] = v
	}
	return out
}

package config

import (
	"fmt"
	"time"
)

const (
	defaultTitle    = "dashnav"
	defaultTaskFile = "task.txt"
	defaultTickRate = 250 * time.Millisecond
)

// Default returns the built-in dashboard configuration.
func Default() *Config {
	return &Config{
		Title:    defaultTitle,
		Root:     ".",
		TaskFile: defaultTaskFile,
		TickRate: defaultTickRate,
		Tabs:     []string{"Tab0", "Tab1", "Tab2"},
		Bookmarks: map[string]string{
			"1": "~",
			"2": "~/Documents",
			"3": "~/src",
			"4": "/tmp",
			"0": "/",
		},
		Events:  defaultEvents(),
		Bars:    defaultBars(),
		Servers: defaultServers(),
		Signals: Signals{
			First:     Wave{Interval: 0.2, Period: 3.0, Scale: 18.0, Window: 100, Step: 5},
			Second:    Wave{Interval: 0.1, Period: 2.0, Scale: 10.0, Window: 200, Step: 10},
			Domain:    [2]float64{0, 20},
			Sparkline: Noise{Lower: 0, Upper: 100, Seed: 1, Window: 300, Step: 1},
		},
	}
}

func defaultEvents() []Event {
	levels := map[int]string{3: "CRITICAL", 4: "ERROR", 7: "WARNING", 11: "CRITICAL", 17: "ERROR", 18: "ERROR", 21: "WARNING", 24: "WARNING"}
	events := make([]Event, 0, 26)
	for i := 1; i <= 26; i++ {
		level, ok := levels[i]
		if !ok {
			level = "INFO"
		}
		events = append(events, Event{Message: fmt.Sprintf("Event%d", i), Level: level})
	}
	return events
}

func defaultBars() []Bar {
	values := []uint64{9, 12, 5, 8, 2, 4, 5, 9, 14, 15, 1, 0, 4, 6, 4, 6, 4, 7, 13, 8, 11, 9, 3, 5}
	bars := make([]Bar, len(values))
	for i, v := range values {
		bars[i] = Bar{Label: fmt.Sprintf("B%d", i+1), Value: v}
	}
	return bars
}

func defaultServers() []Server {
	return []Server{
		{Name: "NorthAmerica-1", Location: "New York City", Lat: 40.71, Lon: -74.00, Status: "Up"},
		{Name: "Europe-1", Location: "Paris", Lat: 48.85, Lon: 2.35, Status: "Failure"},
		{Name: "SouthAmerica-1", Location: "São Paulo", Lat: -23.54, Lon: -46.62, Status: "Up"},
		{Name: "Asia-1", Location: "Singapore", Lat: 1.35, Lon: 103.86, Status: "Up"},
	}
}

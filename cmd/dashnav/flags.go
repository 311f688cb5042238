package main

import (
	"fmt"
	"time"
)

func parseTickRate(s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid --tick-rate %q: %w", s, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid --tick-rate %q: must be positive", s)
	}
	return d, nil
}

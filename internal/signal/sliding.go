// Package signal produces the fixed-length sample windows behind the live
// charts. A window is fed from an unbounded Generator and advanced a fixed
// number of samples per tick.
package signal

import (
	"errors"
	"fmt"
)

// ErrInvalidWindow is returned when a window cannot hold one step of samples.
var ErrInvalidWindow = errors.New("invalid sliding window")

// Generator yields an endless stream of samples. Implementations must never
// run dry: a window has no way to replenish itself.
type Generator[T any] interface {
	Next() T
}

// GeneratorFunc adapts a closure to Generator.
type GeneratorFunc[T any] func() T

func (f GeneratorFunc[T]) Next() T { return f() }

// Sliding keeps the most recent len(window) samples of a generator.
type Sliding[T any] struct {
	source Generator[T]
	window []T
	step   int
}

// NewSliding pre-fills a window of size samples. step samples are replaced on
// every Tick and must satisfy 0 < step <= size.
func NewSliding[T any](source Generator[T], size, step int) (*Sliding[T], error) {
	if source == nil {
		return nil, fmt.Errorf("%w: nil generator", ErrInvalidWindow)
	}
	if step <= 0 || size < step {
		return nil, fmt.Errorf("%w: size=%d step=%d", ErrInvalidWindow, size, step)
	}
	window := make([]T, size)
	for i := range window {
		window[i] = source.Next()
	}
	return &Sliding[T]{source: source, window: window, step: step}, nil
}

// Tick drops the oldest step samples and appends step fresh ones in
// generation order. The backing array is reused.
func (s *Sliding[T]) Tick() {
	keep := copy(s.window, s.window[s.step:])
	for i := keep; i < len(s.window); i++ {
		s.window[i] = s.source.Next()
	}
}

// Window returns a copy of the current samples, oldest first.
func (s *Sliding[T]) Window() []T {
	cp := make([]T, len(s.window))
	copy(cp, s.window)
	return cp
}

func (s *Sliding[T]) Len() int  { return len(s.window) }
func (s *Sliding[T]) Step() int { return s.step }

package state

// Ring is a fixed sequence rotated one position per tick: the last element
// moves to the front and everything else shifts right, order preserved.
type Ring[T any] struct {
	items []T
}

func NewRing[T any](items []T) *Ring[T] {
	cp := make([]T, len(items))
	copy(cp, items)
	return &Ring[T]{items: cp}
}

func (r *Ring[T]) Len() int { return len(r.items) }

// Items returns a copy in current order.
func (r *Ring[T]) Items() []T {
	cp := make([]T, len(r.items))
	copy(cp, r.items)
	return cp
}

// Rotate moves the last element to the front.
func (r *Ring[T]) Rotate() {
	n := len(r.items)
	if n < 2 {
		return
	}
	last := r.items[n-1]
	copy(r.items[1:], r.items[:n-1])
	r.items[0] = last
}

// Package state holds the small cursor-bearing collections the dashboard
// panels are built from: selectable lists, the tab bar and rotating rings.
package state

// List is an ordered collection with an optional cursor. Items are replaced
// wholesale by building a new List; only the cursor moves in place.
type List[T any] struct {
	items    []T
	selected int
	hasSel   bool
}

// NewList returns a list over a copy of items with nothing selected.
func NewList[T any](items []T) *List[T] {
	cp := make([]T, len(items))
	copy(cp, items)
	return &List[T]{items: cp}
}

// Len returns the number of items.
func (l *List[T]) Len() int {
	return len(l.items)
}

// Items returns a copy of the items in listing order.
func (l *List[T]) Items() []T {
	cp := make([]T, len(l.items))
	copy(cp, l.items)
	return cp
}

// Selected returns the cursor index, if any.
func (l *List[T]) Selected() (int, bool) {
	if !l.hasSel || len(l.items) == 0 {
		return 0, false
	}
	return l.selected, true
}

// SelectedItem returns the item under the cursor, if any.
func (l *List[T]) SelectedItem() (T, bool) {
	var zero T
	i, ok := l.Selected()
	if !ok {
		return zero, false
	}
	return l.items[i], true
}

// Select moves the cursor to i. An out of range index clears the selection.
func (l *List[T]) Select(i int) {
	if i < 0 || i >= len(l.items) {
		l.Unselect()
		return
	}
	l.selected, l.hasSel = i, true
}

// Unselect clears the cursor.
func (l *List[T]) Unselect() {
	l.selected, l.hasSel = 0, false
}

// Next advances the cursor, wrapping past the last item. An unset cursor
// counts as 0, so the first Next lands on index 1 (or 0 for a single item).
func (l *List[T]) Next() {
	n := len(l.items)
	if n == 0 {
		return
	}
	cur, _ := l.Selected()
	l.selected, l.hasSel = (cur+1)%n, true
}

// Previous moves the cursor back, wrapping to the last item.
func (l *List[T]) Previous() {
	n := len(l.items)
	if n == 0 {
		return
	}
	cur, _ := l.Selected()
	l.selected, l.hasSel = (cur-1+n)%n, true
}

//nolint:testpackage // White-box tests require access to unexported identifiers in this package.
package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList_InitialSelectionUnset(t *testing.T) {
	l := NewList([]string{"a", "b", "c"})
	_, ok := l.Selected()
	assert.False(t, ok)
	_, ok = l.SelectedItem()
	assert.False(t, ok)
}

func TestList_EmptyIsInert(t *testing.T) {
	l := NewList[string](nil)
	l.Next()
	l.Previous()
	l.Select(0)
	_, ok := l.Selected()
	assert.False(t, ok)
	assert.Equal(t, 0, l.Len())
}

func TestList_FirstMoveFromUnset(t *testing.T) {
	tests := []struct {
		name  string
		items []int
		move  func(*List[int])
		want  int
	}{
		{name: "next on three", items: []int{1, 2, 3}, move: (*List[int]).Next, want: 1},
		{name: "previous on three", items: []int{1, 2, 3}, move: (*List[int]).Previous, want: 2},
		{name: "next on one", items: []int{1}, move: (*List[int]).Next, want: 0},
		{name: "previous on one", items: []int{1}, move: (*List[int]).Previous, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewList(tt.items)
			tt.move(l)
			got, ok := l.Selected()
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestList_FullCycleReturnsToStart(t *testing.T) {
	for n := 1; n <= 7; n++ {
		items := make([]int, n)
		for start := 0; start < n; start++ {
			l := NewList(items)
			l.Select(start)
			for i := 0; i < n; i++ {
				l.Next()
			}
			got, _ := l.Selected()
			assert.Equal(t, start, got, "next n=%d start=%d", n, start)

			for i := 0; i < n; i++ {
				l.Previous()
			}
			got, _ = l.Selected()
			assert.Equal(t, start, got, "previous n=%d start=%d", n, start)
		}
	}
}

func TestList_WrapsAtBoundaries(t *testing.T) {
	l := NewList([]string{"a", "b", "c"})
	l.Select(2)
	l.Next()
	got, _ := l.Selected()
	assert.Equal(t, 0, got)

	l.Previous()
	got, _ = l.Selected()
	assert.Equal(t, 2, got)

	item, ok := l.SelectedItem()
	require.True(t, ok)
	assert.Equal(t, "c", item)
}

func TestList_ItemsAreCopied(t *testing.T) {
	src := []string{"a", "b"}
	l := NewList(src)
	src[0] = "z"
	out := l.Items()
	out[1] = "y"
	assert.Equal(t, []string{"a", "b"}, l.Items())
}

func TestList_SelectOutOfRangeClears(t *testing.T) {
	l := NewList([]int{1, 2})
	l.Select(1)
	l.Select(5)
	_, ok := l.Selected()
	assert.False(t, ok)
}

func TestTabBar_Cycles(t *testing.T) {
	tb := NewTabBar([]string{"Tab0", "Tab1", "Tab2"})
	assert.Equal(t, "Tab0", tb.Current())
	tb.Previous()
	assert.Equal(t, 2, tb.Index())
	tb.Next()
	tb.Next()
	assert.Equal(t, 1, tb.Index())
	assert.Equal(t, "Tab1", tb.Current())
}

func TestTabBar_Empty(t *testing.T) {
	tb := NewTabBar(nil)
	tb.Next()
	tb.Previous()
	assert.Equal(t, 0, tb.Index())
	assert.Empty(t, tb.Current())
}

func TestRing_RotateMovesLastToFront(t *testing.T) {
	r := NewRing([]string{"a", "b", "c", "d"})
	r.Rotate()
	assert.Equal(t, []string{"d", "a", "b", "c"}, r.Items())
}

func TestRing_FullRotationRestoresOrder(t *testing.T) {
	for n := 0; n <= 6; n++ {
		items := make([]int, n)
		for i := range items {
			items[i] = i * 10
		}
		r := NewRing(items)
		for i := 0; i < n; i++ {
			r.Rotate()
		}
		assert.Equal(t, items, r.Items(), "n=%d", n)
	}
}

// Package ring provides a circular cursor over a fixed ordered sequence.
//
// A Cursor owns one position into a sequence supplied at construction and
// moves it with wraparound: stepping past the last item continues at the
// first, and stepping before the first continues at the last. Advance and
// Retreat are exact inverses for every non-empty sequence.
package ring

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrEmpty reports navigation or access on a cursor with no items.
	ErrEmpty = errors.New("ring: sequence is empty")
	// ErrIndexOutOfRange reports an initial index outside the sequence.
	ErrIndexOutOfRange = errors.New("ring: index out of range")
)

// Observer receives the new position after every position change.
type Observer[T any] func(index int, item T)

// Cursor is a position into an immutable ordered sequence.
//
// A Cursor is owned by one caller and is not safe for concurrent use.
type Cursor[T any] struct {
	items     []T
	index     int
	observers []Observer[T]
}

// New returns a cursor over items positioned at start.
//
// The sequence is copied, so later changes to items do not affect the cursor.
// For an empty sequence start must be 0 and the cursor holds no position.
func New[T any](items []T, start int) (*Cursor[T], error) {
	if len(items) == 0 {
		if start != 0 {
			return nil, fmt.Errorf("%w: start %d on empty sequence", ErrIndexOutOfRange, start)
		}
		return &Cursor[T]{}, nil
	}
	if start < 0 || start >= len(items) {
		return nil, fmt.Errorf("%w: start %d, length %d", ErrIndexOutOfRange, start, len(items))
	}
	return &Cursor[T]{items: slices.Clone(items), index: start}, nil
}

// Len returns the sequence length.
func (c *Cursor[T]) Len() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}

// Index returns the current position, or -1 when the sequence is empty.
func (c *Cursor[T]) Index() int {
	if c.Len() == 0 {
		return -1
	}
	return c.index
}

// Navigable reports whether stepping can select a different item.
func (c *Cursor[T]) Navigable() bool {
	return c.Len() > 1
}

// Current returns the item at the current position.
func (c *Cursor[T]) Current() (T, error) {
	if c.Len() == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return c.items[c.index], nil
}

// Advance moves forward one position and returns the newly selected item.
func (c *Cursor[T]) Advance() (T, error) {
	return c.step(Next)
}

// Retreat moves backward one position and returns the newly selected item.
func (c *Cursor[T]) Retreat() (T, error) {
	return c.step(Prev)
}

// Observe registers fn to run after every position change. A one-item ring
// never changes position, so its observers are never called.
func (c *Cursor[T]) Observe(fn Observer[T]) {
	if c == nil || fn == nil {
		return
	}
	c.observers = append(c.observers, fn)
}

func (c *Cursor[T]) step(move func(index, length int) int) (T, error) {
	if c.Len() == 0 {
		var zero T
		return zero, ErrEmpty
	}
	from := c.index
	c.index = move(c.index, len(c.items))
	item := c.items[c.index]
	if c.index == from {
		return item, nil
	}
	for _, fn := range c.observers {
		fn(c.index, item)
	}
	return item, nil
}

// Next returns the index after i in a ring of length n.
// The last index wraps to 0. It returns -1 unless 0 <= i < n.
func Next(i, n int) int {
	if i < 0 || i >= n {
		return -1
	}
	if i == n-1 {
		return 0
	}
	return i + 1
}

// Prev returns the index before i in a ring of length n.
// Index 0 wraps to n-1. It returns -1 unless 0 <= i < n.
func Prev(i, n int) int {
	if i < 0 || i >= n {
		return -1
	}
	if i == 0 {
		return n - 1
	}
	return i - 1
}

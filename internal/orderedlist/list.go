// Package orderedlist implements a sorted, duplicate-free, doubly-linked list
// built around a single sentinel node.
//
// The list never stores its own length: Len walks the links.  Items are kept
// in ascending order according to a comparison function supplied when the
// list is created.
package orderedlist

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// ErrIndexOutOfRange is returned by RemoveAt when the index does not name an
// item in the list.
var ErrIndexOutOfRange = errors.New("index out of range")

type node[T any] struct {
	item T
	prev *node[T]
	next *node[T]
}

// List is an ascending sequence of items.  Two items for which the comparison
// function returns 0 are considered equal, and at most one of them may be
// present in the list at any time.
//
// The zero value is not usable; construct a List with New or NewOrdered.
type List[T any] struct {
	head *node[T]
	cmp  func(a, b T) int
}

// New returns an empty List ordered by cmp.  The function must return a
// negative number when a < b, zero when a == b, and a positive number when
// a > b, and it must describe a total order.
func New[T any](cmp func(a, b T) int) *List[T] {
	head := &node[T]{}
	head.prev = head
	head.next = head
	return &List[T]{head: head, cmp: cmp}
}

// NewOrdered returns an empty List of naturally ordered items.
func NewOrdered[T constraints.Ordered]() *List[T] {
	return New(func(a, b T) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	})
}

// IsEmpty returns true iff the list holds no items.
func (l *List[T]) IsEmpty() bool {
	return l.head.next == l.head
}

// Add inserts item in its sorted position and returns true.  If an equal item
// is already present, the list is left unchanged and Add returns false.
func (l *List[T]) Add(item T) bool {
	x := l.head.next
	for x != l.head {
		c := l.cmp(x.item, item)
		if c == 0 {
			return false
		}
		if c > 0 {
			break
		}
		x = x.next
	}

	n := &node[T]{item: item, prev: x.prev, next: x}
	x.prev.next = n
	x.prev = n
	return true
}

// RemoveAt removes and returns the item at the given 0-based index, counting
// from the lowest item.
func (l *List[T]) RemoveAt(index int) (T, error) {
	var zero T
	if index < 0 || l.IsEmpty() {
		return zero, fmt.Errorf("orderedlist: RemoveAt(%d): %w", index, ErrIndexOutOfRange)
	}

	x := l.head.next
	for i := 0; i < index; i++ {
		x = x.next
		if x == l.head {
			return zero, fmt.Errorf("orderedlist: RemoveAt(%d): %w", index, ErrIndexOutOfRange)
		}
	}

	l.unlink(x)
	return x.item, nil
}

// Remove removes the first item equal to item.  It returns false if there was
// no such item.
func (l *List[T]) Remove(item T) bool {
	x := l.find(item)
	if x == nil {
		return false
	}
	l.unlink(x)
	return true
}

// Index returns the position of the item equal to item.
func (l *List[T]) Index(item T) (int, bool) {
	index := 0
	for x := l.head.next; x != l.head; x = x.next {
		if l.cmp(x.item, item) == 0 {
			return index, true
		}
		index++
	}
	return -1, false
}

// Search reports whether an item equal to item is present.  Items outside the
// [Min, Max] bounds are rejected without walking the list.
func (l *List[T]) Search(item T) bool {
	if l.IsEmpty() {
		return false
	}
	lo, hi := l.head.next.item, l.head.prev.item
	if l.cmp(lo, item) > 0 || l.cmp(hi, item) < 0 {
		return false
	}
	if l.cmp(lo, item) == 0 || l.cmp(hi, item) == 0 {
		return true
	}
	return l.find(item) != nil
}

// Min returns the lowest item.
func (l *List[T]) Min() (T, bool) {
	if l.IsEmpty() {
		var zero T
		return zero, false
	}
	return l.head.next.item, true
}

// Max returns the highest item.
func (l *List[T]) Max() (T, bool) {
	if l.IsEmpty() {
		var zero T
		return zero, false
	}
	return l.head.prev.item, true
}

// Len counts the items in the list.  It is O(n).
func (l *List[T]) Len() int {
	n := 0
	for x := l.head.next; x != l.head; x = x.next {
		n++
	}
	return n
}

// Items returns the items from lowest to highest.
func (l *List[T]) Items() []T {
	var out []T
	for x := l.head.next; x != l.head; x = x.next {
		out = append(out, x.item)
	}
	return out
}

// Reversed returns the items from highest to lowest.
func (l *List[T]) Reversed() []T {
	var out []T
	for x := l.head.prev; x != l.head; x = x.prev {
		out = append(out, x.item)
	}
	return out
}

// String returns a human-readable representation of the list.
func (l *List[T]) String() string {
	var buf strings.Builder
	buf.WriteByte('[')
	for x := l.head.next; x != l.head; x = x.next {
		if x != l.head.next {
			buf.WriteByte(' ')
		}
		fmt.Fprint(&buf, x.item)
	}
	buf.WriteByte(']')
	return buf.String()
}

var _ fmt.Stringer = (*List[int])(nil)

func (l *List[T]) find(item T) *node[T] {
	for x := l.head.next; x != l.head; x = x.next {
		if l.cmp(x.item, item) == 0 {
			return x
		}
	}
	return nil
}

func (l *List[T]) unlink(x *node[T]) {
	x.prev.next = x.next
	x.next.prev = x.prev
	x.prev = nil
	x.next = nil
}

package tree

import (
	"fmt"
	"iter"
)

// Cursor is a position in one of the traversal orders of a tree. Cursors are
// small values, stepping a cursor returns a new cursor and leaves the original
// unchanged.
//
// The end position is a sentinel which references no element. It closes each
// order into a ring: stepping forward from the last element reaches the end,
// and stepping forward again reaches the first element (and the other way
// around when stepping backward).
//
// A cursor remains valid until the element it references is removed from the
// tree, or until the tree is cleared, re-initialized or swapped. Using a
// cursor referencing a removed element, or an element of a tree which was
// re-initialized or swapped since, panics.
//
// The zero-value is an end cursor of no tree.
type Cursor[E any] struct {
	tree    *Tree[E]
	node    uint32
	gen     uint32
	epoch   uint32
	order   Order
	reverse bool
}

func (t *Tree[E]) cursor(i uint32, o Order, reverse bool) Cursor[E] {
	c := Cursor[E]{tree: t, node: i, epoch: t.epoch, order: o, reverse: reverse}
	if i != null {
		c.gen = t.nodes[i].gen
	}
	return c
}

// Begin returns a cursor to the first element of the tree in order o, or the
// end cursor if the tree is empty.
func (t *Tree[E]) Begin(o Order) Cursor[E] { return t.cursor(t.first(o), o, false) }

// End returns the end cursor of order o.
func (t *Tree[E]) End(o Order) Cursor[E] { return t.cursor(null, o, false) }

// RBegin returns a reverse cursor to the last element of the tree in order o,
// or the end cursor if the tree is empty. Calling Next on a reverse cursor
// moves it toward the first element.
func (t *Tree[E]) RBegin(o Order) Cursor[E] { return t.cursor(t.last(o), o, true) }

// REnd returns the end cursor of the reverse traversal of order o.
func (t *Tree[E]) REnd(o Order) Cursor[E] { return t.cursor(null, o, true) }

// Order returns the traversal order of the cursor.
func (c Cursor[E]) Order() Order { return c.order }

// Reversed returns true if the cursor moves backward when calling Next.
func (c Cursor[E]) Reversed() bool { return c.reverse }

// Valid returns true if the cursor references an element, false if it is an
// end cursor.
func (c Cursor[E]) Valid() bool { return c.node != null }

// Equal returns true if c and other reference the same element, or are both
// end cursors.
func (c Cursor[E]) Equal(other Cursor[E]) bool {
	return c.node == other.node && (c.node == null || c.tree == other.tree)
}

// Value returns the element referenced by the cursor.
//
// The method panics if the cursor is an end cursor, or if the element it
// referenced was removed from the tree.
func (c Cursor[E]) Value() E {
	if c.node == null {
		panic(fmt.Errorf("cannot dereference the end cursor of a %s traversal", c.order))
	}
	return c.tree.nodes[c.check()].value
}

// Next returns a cursor to the element following c, in the direction of the
// cursor.
//
// Complexity: O(height)
func (c Cursor[E]) Next() Cursor[E] {
	if c.reverse {
		return c.backward()
	}
	return c.forward()
}

// Prev returns a cursor to the element preceding c, in the direction of the
// cursor.
//
// Complexity: O(height)
func (c Cursor[E]) Prev() Cursor[E] {
	if c.reverse {
		return c.forward()
	}
	return c.backward()
}

func (c Cursor[E]) forward() Cursor[E] {
	if c.tree == nil {
		return c
	}
	if c.node == null {
		return c.tree.cursor(c.tree.first(c.order), c.order, c.reverse)
	}
	return c.tree.cursor(c.tree.next(c.check(), c.order), c.order, c.reverse)
}

func (c Cursor[E]) backward() Cursor[E] {
	if c.tree == nil {
		return c
	}
	if c.node == null {
		return c.tree.cursor(c.tree.last(c.order), c.order, c.reverse)
	}
	return c.tree.cursor(c.tree.prev(c.check(), c.order), c.order, c.reverse)
}

// check returns the node referenced by c, panicking if the element was
// removed, or the tree re-initialized or swapped, since the cursor was created.
func (c Cursor[E]) check() uint32 {
	if c.epoch != c.tree.epoch {
		panic(fmt.Errorf("cannot use a cursor of a tree which was re-initialized or swapped"))
	}
	if int(c.node) >= len(c.tree.nodes) || c.tree.nodes[c.node].gen != c.gen {
		panic(fmt.Errorf("cannot use a cursor to an element which was removed from the tree"))
	}
	return c.node
}

// Range calls f for each element of the tree, in order o. If f returns false,
// the iteration is stopped.
//
// The tree must not be modified during the iteration.
//
// Complexity: O(N)
func (t *Tree[E]) Range(o Order, f func(E) bool) {
	for i := t.first(o); i != null; i = t.next(i, o) {
		if !f(t.nodes[i].value) {
			return
		}
	}
}

// All returns an iterator over the elements of the tree in order o.
func (t *Tree[E]) All(o Order) iter.Seq[E] {
	return func(yield func(E) bool) { t.Range(o, yield) }
}

// Backward returns an iterator over the elements of the tree in reverse of
// order o.
func (t *Tree[E]) Backward(o Order) iter.Seq[E] {
	return func(yield func(E) bool) {
		for i := t.last(o); i != null; i = t.prev(i, o) {
			if !yield(t.nodes[i].value) {
				return
			}
		}
	}
}

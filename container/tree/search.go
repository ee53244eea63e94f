package tree

// find returns the first node equivalent to value met while descending from
// the root, or null.
func (t *Tree[E]) find(value E) uint32 {
	i := t.root
	for i != null {
		switch cmp := t.cmp(value, t.nodes[i].value); {
		case cmp < 0:
			i = t.nodes[i].left
		case cmp > 0:
			i = t.nodes[i].right
		default:
			return i
		}
	}
	return null
}

// Find returns an in-order cursor to an element equivalent to value, or the end
// cursor if there are none.
//
// Complexity: O(height)
func (t *Tree[E]) Find(value E) Cursor[E] {
	return t.cursor(t.find(value), InOrder, false)
}

// Exist returns true if an element equivalent to value is in the tree.
//
// Complexity: O(height)
func (t *Tree[E]) Exist(value E) bool { return t.find(value) != null }

// Contains is an alias of Exist.
func (t *Tree[E]) Contains(value E) bool { return t.find(value) != null }

// Count returns 1 if an element equivalent to value is in the tree, 0
// otherwise. Equivalent elements inserted multiple times are not counted.
//
// Complexity: O(height)
func (t *Tree[E]) Count(value E) int {
	if t.find(value) != null {
		return 1
	}
	return 0
}

// Min returns an in-order cursor to the smallest element of the tree, or the
// end cursor if the tree is empty.
//
// Complexity: O(height)
func (t *Tree[E]) Min() Cursor[E] { return t.Begin(InOrder) }

// Max returns an in-order cursor to the largest element of the tree, or the
// end cursor if the tree is empty.
//
// Complexity: O(height)
func (t *Tree[E]) Max() Cursor[E] {
	return t.cursor(t.last(InOrder), InOrder, false)
}

// FindMin is an alias of Min.
func (t *Tree[E]) FindMin() Cursor[E] { return t.Min() }

// FindMax is an alias of Max.
func (t *Tree[E]) FindMax() Cursor[E] { return t.Max() }

// LowerBound returns an in-order cursor to the first element which is not less
// than value, or the end cursor if there are none.
//
// Complexity: O(height)
func (t *Tree[E]) LowerBound(value E) Cursor[E] {
	r := null
	for i := t.root; i != null; {
		if t.cmp(t.nodes[i].value, value) < 0 {
			i = t.nodes[i].right
		} else {
			r, i = i, t.nodes[i].left
		}
	}
	return t.cursor(r, InOrder, false)
}

// UpperBound returns an in-order cursor to the first element which is greater
// than value, or the end cursor if there are none.
//
// Complexity: O(height)
func (t *Tree[E]) UpperBound(value E) Cursor[E] {
	r := null
	for i := t.root; i != null; {
		if t.cmp(t.nodes[i].value, value) <= 0 {
			i = t.nodes[i].right
		} else {
			r, i = i, t.nodes[i].left
		}
	}
	return t.cursor(r, InOrder, false)
}

// EqualRange returns the range of elements equivalent to value, as the pair
// LowerBound(value), UpperBound(value). The range is empty when both cursors
// are equal.
//
// Complexity: O(height)
func (t *Tree[E]) EqualRange(value E) (first, last Cursor[E]) {
	return t.LowerBound(value), t.UpperBound(value)
}

// Search returns the largest element less or equal to the one passed as
// argument.
//
// Complexity: O(height)
func (t *Tree[E]) Search(value E) (match E, found bool) {
	r := null
	for i := t.root; i != null; {
		switch cmp := t.cmp(value, t.nodes[i].value); {
		case cmp < 0:
			i = t.nodes[i].left
		case cmp > 0:
			r, i = i, t.nodes[i].right
		default:
			return t.nodes[i].value, true
		}
	}
	if r != null {
		return t.nodes[r].value, true
	}
	return match, false
}

package tree

import "fmt"

// Insert inserts a new element in the tree, and returns an in-order cursor
// to it. Elements equivalent to ones already in the tree are inserted after
// them, the tree never merges or rejects equivalent elements.
//
// The tree must have been initialized by a call to New or Init or the call to
// Insert will panic. An error is returned if the allocation strategy could not
// provide a node, the tree is then left unmodified.
//
// Complexity: O(height)
func (t *Tree[E]) Insert(value E) (Cursor[E], error) {
	i, err := t.insert(value)
	if err != nil {
		return t.End(InOrder), err
	}
	return t.cursor(i, InOrder, false), nil
}

func (t *Tree[E]) insert(value E) (uint32, error) {
	p, left := null, false
	for i := t.root; i != null; {
		p = i
		if left = t.cmp(value, t.nodes[i].value) < 0; left {
			i = t.nodes[i].left
		} else {
			i = t.nodes[i].right
		}
	}

	i, err := t.newNode(value)
	if err != nil {
		return null, fmt.Errorf("inserting in tree: %w", err)
	}

	t.nodes[i].parent = p
	switch {
	case p == null:
		t.root = i
	case left:
		t.nodes[p].left = i
	default:
		t.nodes[p].right = i
	}
	return i, nil
}

// Erase removes one element equivalent to value from the tree. The method
// returns the number of elements removed, which is zero if no element was
// equivalent to value.
//
// Complexity: O(height)
func (t *Tree[E]) Erase(value E) int {
	i := t.find(value)
	if i == null {
		return 0
	}
	t.remove(i)
	return 1
}

// Extract removes the element referenced by pos from the tree. It returns the
// removed element, and an in-order cursor to the element which followed it,
// or the end cursor if it was the largest. The returned cursor is in-order and
// forward whatever the order and direction of pos.
//
// Extracting the end cursor does nothing and returns the zero-value and the
// end cursor. The method panics if pos is a cursor of another tree.
//
// Complexity: O(height)
func (t *Tree[E]) Extract(pos Cursor[E]) (value E, next Cursor[E]) {
	if pos.node == null {
		return value, t.End(InOrder)
	}
	if pos.tree != t {
		panic(fmt.Errorf("cannot extract an element using the cursor of another tree"))
	}
	i := pos.check()
	n := t.nextInOrder(i)
	value = t.nodes[i].value
	t.remove(i)
	return value, t.cursor(n, InOrder, false)
}

// remove unlinks node i from the tree and frees it.
//
// When i has two children, its in-order successor (which has no left child) is
// spliced out of its position and moved to the position of i. Moving the node
// instead of its value keeps cursors to the successor valid.
func (t *Tree[E]) remove(i uint32) {
	n := &t.nodes[i]
	if n.left == null || n.right == null {
		t.splice(i)
	} else {
		s := t.leftmost(n.right)
		t.splice(s)
		// Read the links of i after splicing, s may have been its right child.
		n = &t.nodes[i]
		t.nodes[s].left = n.left
		t.nodes[s].right = n.right
		if n.left != null {
			t.nodes[n.left].parent = s
		}
		if n.right != null {
			t.nodes[n.right].parent = s
		}
		t.replaceChild(n.parent, i, s)
	}
	t.freeNode(i)
}

// splice links the only child of i, if any, in place of i.
func (t *Tree[E]) splice(i uint32) {
	n := &t.nodes[i]
	child := n.left
	if child == null {
		child = n.right
	}
	t.replaceChild(n.parent, i, child)
}

// Merge inserts all elements of src in t, then clears src. Elements of src are
// inserted one at a time, equivalent elements are inserted as well.
//
// If an element cannot be inserted, the elements inserted by the call are
// removed from t, src is left unmodified, and the error is returned.
//
// Merging a tree into itself does nothing.
//
// Complexity: O(M*height)
func (t *Tree[E]) Merge(src *Tree[E]) error {
	if src == t || src == nil || src.root == null {
		return nil
	}
	inserted := make([]uint32, 0, 64)

	for i := src.root; i != null; i = src.next(i, PreOrder) {
		n, err := t.insert(src.nodes[i].value)
		if err != nil {
			// Every node inserted by the loop was added as a leaf, removing
			// them in reverse order only ever removes leaves.
			for j := len(inserted) - 1; j >= 0; j-- {
				t.remove(inserted[j])
			}
			return fmt.Errorf("merging trees: %w", err)
		}
		inserted = append(inserted, n)
	}

	src.Clear()
	return nil
}

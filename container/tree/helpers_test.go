package tree

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// checkInvariants verifies the ordering of elements, the symmetry of parent
// and child links, and that every allocated node is reachable exactly once
// from the root.
func (t *Tree[E]) checkInvariants() error {
	if t.root == null {
		if t.alloc != nil && t.alloc.Len() != 0 {
			return fmt.Errorf("empty tree holds %d allocated nodes", t.alloc.Len())
		}
		return nil
	}
	if p := t.nodes[t.root].parent; p != null {
		return fmt.Errorf("root %d has parent %d", t.root, p)
	}
	n0 := t.nodes[null]
	if n0.left != null || n0.right != null || n0.parent != null {
		return fmt.Errorf("null node has links: %+v", n0)
	}

	seen := make(map[uint32]bool)
	stack := []uint32{t.root}
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[i] {
			return fmt.Errorf("node %d is reachable more than once", i)
		}
		seen[i] = true

		n := &t.nodes[i]
		if n.left != null {
			if t.nodes[n.left].parent != i {
				return fmt.Errorf("left child %d of node %d has parent %d", n.left, i, t.nodes[n.left].parent)
			}
			if t.cmp(t.nodes[n.left].value, n.value) > 0 {
				return fmt.Errorf("left child %v of node %v sorts after it", t.nodes[n.left].value, n.value)
			}
			stack = append(stack, n.left)
		}
		if n.right != null {
			if t.nodes[n.right].parent != i {
				return fmt.Errorf("right child %d of node %d has parent %d", n.right, i, t.nodes[n.right].parent)
			}
			if t.cmp(t.nodes[n.right].value, n.value) < 0 {
				return fmt.Errorf("right child %v of node %v sorts before it", t.nodes[n.right].value, n.value)
			}
			stack = append(stack, n.right)
		}
	}

	// Local checks do not cover the whole subtrees, the in-order sequence
	// being sorted does.
	var prev *E
	for i := t.first(InOrder); i != null; i = t.nextInOrder(i) {
		if prev != nil && t.cmp(*prev, t.nodes[i].value) > 0 {
			return fmt.Errorf("in-order sequence is not sorted: %v before %v", *prev, t.nodes[i].value)
		}
		prev = &t.nodes[i].value
	}

	if n := t.alloc.Len(); n != len(seen) {
		return fmt.Errorf("%d nodes reachable from the root but %d allocated", len(seen), n)
	}
	return nil
}

func requireInvariants[E any](t *testing.T, tree *Tree[E]) {
	t.Helper()
	require.NoError(t, tree.checkInvariants())
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return +1
	default:
		return 0
	}
}

func newIntTree(t *testing.T, values ...int) *Tree[int] {
	t.Helper()
	tree := New[int](cmpInt)
	for _, v := range values {
		_, err := tree.Insert(v)
		require.NoError(t, err)
	}
	return tree
}

// walk returns the elements of the subtree rooted at i in order o, computed
// recursively from the node links.
func (t *Tree[E]) walk(i uint32, o Order, values []E) []E {
	if i == null {
		return values
	}
	n := &t.nodes[i]
	switch o {
	case InOrder:
		values = t.walk(n.left, o, values)
		values = append(values, n.value)
		values = t.walk(n.right, o, values)
	case PreOrder:
		values = append(values, n.value)
		values = t.walk(n.left, o, values)
		values = t.walk(n.right, o, values)
	case PostOrder:
		values = t.walk(n.left, o, values)
		values = t.walk(n.right, o, values)
		values = append(values, n.value)
	}
	return values
}

func forward[E any](tree *Tree[E], o Order) []E {
	values := []E{}
	for c := tree.Begin(o); !c.Equal(tree.End(o)); c = c.Next() {
		values = append(values, c.Value())
	}
	return values
}

func backward[E any](tree *Tree[E], o Order) []E {
	values := []E{}
	for c := tree.RBegin(o); !c.Equal(tree.REnd(o)); c = c.Next() {
		values = append(values, c.Value())
	}
	return values
}

func reversed[E any](values []E) []E {
	r := make([]E, len(values))
	for i, v := range values {
		r[len(values)-1-i] = v
	}
	return r
}

var orders = []Order{InOrder, PreOrder, PostOrder}

// Package tree implements ordered containers backed by an unbalanced binary
// search tree.
//
// Nodes are stored in an arena and reference each other by slot (see package
// alloc), each node linking to its left child, right child and parent. The
// parent link is only used to navigate: it allows cursors to step through the
// tree in three orders (in-order, pre-order and post-order), in both
// directions, without keeping a stack of the nodes they came from.
//
// The tree does not rebalance itself: its height depends on the order in which
// elements are inserted, and may reach the number of elements when they are
// inserted sorted. None of the operations recurse, the cost of such trees is
// paid in time, not in stack space.
//
// Trees are not safe to use concurrently from multiple goroutines.
package tree

import (
	"fmt"

	"github.com/segmentio/bstree/alloc"
)

const null = uint32(alloc.Nil)

// Tree is an ordered collection of elements of type E, backed by an unbalanced
// binary search tree.
//
// Equivalent elements (for which the comparison function returns zero) may be
// inserted multiple times, each insertion adds a new node.
//
// The zero-value is a valid empty tree which supports lookups and removals, but
// must be initialized prior to inserting elements.
type Tree[E any] struct {
	cmp   func(E, E) int
	root  uint32
	nodes []node[E] // nodes[0] is the reserved null node, its links are never set
	alloc alloc.Interface
	epoch uint32 // changes when all cursors of the tree are invalidated
}

type node[E any] struct {
	value  E
	left   uint32
	right  uint32
	parent uint32
	gen    uint32 // incremented each time the slot is freed
}

// Config carries the configuration of a tree.
type Config struct {
	Allocator alloc.Interface
}

// Option is an interface implemented by options allowing configuration of new
// trees.
type Option interface {
	Configure(*Config)
}

type option func(*Config)

func (opt option) Configure(config *Config) { opt(config) }

// Allocator is a tree configuration option setting the strategy used to
// allocate node slots.
//
// Default: alloc.New()
func Allocator(a alloc.Interface) Option {
	return option(func(config *Config) { config.Allocator = a })
}

// New constructs a new tree using the comparison function passed as argument
// to order the elements.
func New[E any](cmp func(E, E) int, options ...Option) *Tree[E] {
	t := new(Tree[E])
	t.Init(cmp, options...)
	return t
}

// Init initializes (or re-initializes) the tree with the given comparison
// function to order the elements. Elements previously held in the tree are
// dropped.
//
// Complexity: O(1)
func (t *Tree[E]) Init(cmp func(E, E) int, options ...Option) {
	config := Config{}
	for _, opt := range options {
		opt.Configure(&config)
	}
	if config.Allocator == nil {
		config.Allocator = alloc.New()
	}
	t.cmp = cmp
	t.root = null
	t.nodes = make([]node[E], 1)
	t.alloc = config.Allocator
	t.epoch++
}

// Allocator returns the allocation strategy of the tree.
func (t *Tree[E]) Allocator() alloc.Interface { return t.alloc }

// Len returns the number of elements in the tree. The count is not cached, it
// is computed by walking the tree.
//
// Complexity: O(N)
func (t *Tree[E]) Len() int {
	n := 0
	for i := t.first(InOrder); i != null; i = t.next(i, InOrder) {
		n++
	}
	return n
}

// Empty returns true if the tree contains no elements.
//
// Complexity: O(1)
func (t *Tree[E]) Empty() bool { return t.root == null }

// MaxSize returns the maximum number of elements that the tree can hold,
// which is bounded by the budget of its allocation strategy, if any.
func (t *Tree[E]) MaxSize() uint64 {
	if l, ok := t.alloc.(alloc.Limiter); ok && l.Limit() > 0 {
		return uint64(l.Limit())
	}
	return uint64(alloc.MaxSlots)
}

// Clear removes all elements from the tree, returning their slots to the
// allocation strategy. Nodes are released children first.
//
// Complexity: O(N)
func (t *Tree[E]) Clear() {
	for i := t.first(PostOrder); i != null; {
		next := t.next(i, PostOrder)
		t.freeNode(i)
		i = next
	}
	t.root = null
}

// Swap exchanges the content of t and other, including their comparison
// functions and allocation strategies.
//
// Cursors of both trees are invalidated, using them to access an element
// panics.
//
// Complexity: O(1)
func (t *Tree[E]) Swap(other *Tree[E]) {
	t.cmp, other.cmp = other.cmp, t.cmp
	t.root, other.root = other.root, t.root
	t.nodes, other.nodes = other.nodes, t.nodes
	t.alloc, other.alloc = other.alloc, t.alloc
	t.epoch++
	other.epoch++
}

// Clone returns a deep copy of the tree, with the same shape and elements. The
// copy uses a fork of the tree's allocation strategy.
//
// If a node of the copy cannot be allocated, the nodes allocated so far are
// released and the error is returned.
//
// Complexity: O(N)
func (t *Tree[E]) Clone() (*Tree[E], error) {
	c := t.fork()
	if err := c.copyFrom(t); err != nil {
		return nil, err
	}
	return c, nil
}

// Assign replaces the content of t with a deep copy of src. The copy is built
// aside and swapped in, so t is left unmodified if it cannot be completed.
//
// Complexity: O(N+M)
func (t *Tree[E]) Assign(src *Tree[E]) error {
	if src == t {
		return nil
	}
	c := t.fork()
	c.cmp = src.cmp
	if err := c.copyFrom(src); err != nil {
		return err
	}
	t.Swap(c)
	c.Clear()
	return nil
}

func (t *Tree[E]) fork() *Tree[E] {
	a := t.alloc
	if a == nil {
		a = alloc.New()
	} else {
		a = a.Fork()
	}
	return New(t.cmp, Allocator(a))
}

// copyFrom copies the nodes of src into t, which must be empty.
func (t *Tree[E]) copyFrom(src *Tree[E]) error {
	if src.root == null {
		return nil
	}
	// Nodes are copied in pre-order, so the parent of each node has already
	// been copied when reaching it.
	clones := make(map[uint32]uint32)

	for i := src.root; i != null; i = src.next(i, PreOrder) {
		n := &src.nodes[i]
		c, err := t.newNode(n.value)
		if err != nil {
			t.Clear()
			return fmt.Errorf("copying tree: %w", err)
		}
		clones[i] = c

		if n.parent == null {
			t.root = c
			continue
		}
		p := clones[n.parent]
		t.nodes[c].parent = p
		if src.nodes[n.parent].left == i {
			t.nodes[p].left = c
		} else {
			t.nodes[p].right = c
		}
	}
	return nil
}

package tree

import "fmt"

// Order is the order in which cursors visit the nodes of a tree.
type Order uint8

const (
	// InOrder visits the left subtree, then the node, then the right subtree.
	// Elements are presented sorted by the comparison function.
	InOrder Order = iota
	// PreOrder visits the node, then its left subtree, then its right subtree.
	PreOrder
	// PostOrder visits the left subtree, then the right subtree, then the node.
	PostOrder
)

func (o Order) String() string {
	switch o {
	case InOrder:
		return "in-order"
	case PreOrder:
		return "pre-order"
	case PostOrder:
		return "post-order"
	default:
		return fmt.Sprintf("Order(%d)", uint8(o))
	}
}

// The functions below compute positions from the links of the nodes only. The
// null node plays the role of the sentinel: next returns null past the last
// node, prev returns null before the first one.

func (t *Tree[E]) first(o Order) uint32 {
	if t.root == null {
		return null
	}
	switch o {
	case InOrder:
		return t.leftmost(t.root)
	case PreOrder:
		return t.root
	case PostOrder:
		return t.firstPostOrder(t.root)
	default:
		panic(fmt.Errorf("invalid tree traversal order: %s", o))
	}
}

func (t *Tree[E]) last(o Order) uint32 {
	if t.root == null {
		return null
	}
	switch o {
	case InOrder:
		return t.rightmost(t.root)
	case PreOrder:
		return t.lastPreOrder(t.root)
	case PostOrder:
		return t.root
	default:
		panic(fmt.Errorf("invalid tree traversal order: %s", o))
	}
}

func (t *Tree[E]) next(i uint32, o Order) uint32 {
	switch o {
	case InOrder:
		return t.nextInOrder(i)
	case PreOrder:
		return t.nextPreOrder(i)
	case PostOrder:
		return t.nextPostOrder(i)
	default:
		panic(fmt.Errorf("invalid tree traversal order: %s", o))
	}
}

func (t *Tree[E]) prev(i uint32, o Order) uint32 {
	switch o {
	case InOrder:
		return t.prevInOrder(i)
	case PreOrder:
		return t.prevPreOrder(i)
	case PostOrder:
		return t.prevPostOrder(i)
	default:
		panic(fmt.Errorf("invalid tree traversal order: %s", o))
	}
}

func (t *Tree[E]) leftmost(i uint32) uint32 {
	for t.nodes[i].left != null {
		i = t.nodes[i].left
	}
	return i
}

func (t *Tree[E]) rightmost(i uint32) uint32 {
	for t.nodes[i].right != null {
		i = t.nodes[i].right
	}
	return i
}

// firstPostOrder returns the first node visited in post-order in the subtree
// rooted at i: the leaf reached by going left whenever possible, right
// otherwise.
func (t *Tree[E]) firstPostOrder(i uint32) uint32 {
	for {
		n := &t.nodes[i]
		switch {
		case n.left != null:
			i = n.left
		case n.right != null:
			i = n.right
		default:
			return i
		}
	}
}

// lastPreOrder returns the last node visited in pre-order in the subtree
// rooted at i: the leaf reached by going right whenever possible, left
// otherwise.
func (t *Tree[E]) lastPreOrder(i uint32) uint32 {
	for {
		n := &t.nodes[i]
		switch {
		case n.right != null:
			i = n.right
		case n.left != null:
			i = n.left
		default:
			return i
		}
	}
}

func (t *Tree[E]) nextInOrder(i uint32) uint32 {
	if r := t.nodes[i].right; r != null {
		return t.leftmost(r)
	}
	p := t.nodes[i].parent
	for p != null && t.nodes[p].right == i {
		i, p = p, t.nodes[p].parent
	}
	return p
}

func (t *Tree[E]) prevInOrder(i uint32) uint32 {
	if l := t.nodes[i].left; l != null {
		return t.rightmost(l)
	}
	p := t.nodes[i].parent
	for p != null && t.nodes[p].left == i {
		i, p = p, t.nodes[p].parent
	}
	return p
}

func (t *Tree[E]) nextPreOrder(i uint32) uint32 {
	n := &t.nodes[i]
	if n.left != null {
		return n.left
	}
	if n.right != null {
		return n.right
	}
	// Both subtrees of i are done. Climb until coming back from a left child
	// whose parent has a right subtree, it has not been visited yet. Coming
	// back from a right child, or from a left child without a right sibling,
	// means the parent's subtree is done as well.
	for {
		p := t.nodes[i].parent
		if p == null {
			return null
		}
		if r := t.nodes[p].right; r != null && r != i {
			return r
		}
		i = p
	}
}

func (t *Tree[E]) prevPreOrder(i uint32) uint32 {
	p := t.nodes[i].parent
	if p == null {
		return null
	}
	if l := t.nodes[p].left; l != null && l != i {
		return t.lastPreOrder(l)
	}
	return p
}

func (t *Tree[E]) nextPostOrder(i uint32) uint32 {
	p := t.nodes[i].parent
	if p == null {
		return null
	}
	if r := t.nodes[p].right; r != null && r != i {
		return t.firstPostOrder(r)
	}
	return p
}

func (t *Tree[E]) prevPostOrder(i uint32) uint32 {
	n := &t.nodes[i]
	if n.right != null {
		return n.right
	}
	if n.left != null {
		return n.left
	}
	// Mirror of nextPreOrder: climb until coming back from a right child whose
	// parent has a left subtree.
	for {
		p := t.nodes[i].parent
		if p == null {
			return null
		}
		if l := t.nodes[p].left; l != null && l != i {
			return l
		}
		i = p
	}
}

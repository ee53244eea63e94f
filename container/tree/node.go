package tree

import (
	"fmt"

	"github.com/segmentio/bstree/alloc"
)

// newNode allocates a node holding a copy of value, with no links. Nothing is
// constructed if the allocation strategy fails.
func (t *Tree[E]) newNode(value E) (uint32, error) {
	if t.alloc == nil {
		panic(fmt.Errorf("cannot insert in a tree which has not been initialized"))
	}
	slot, err := t.alloc.Alloc()
	if err != nil {
		return null, err
	}
	i := uint32(slot)
	if int(i) >= len(t.nodes) {
		t.nodes = append(t.nodes, make([]node[E], int(i)+1-len(t.nodes))...)
	}
	n := &t.nodes[i]
	n.value = value
	n.left, n.right, n.parent = null, null, null
	return i, nil
}

// freeNode releases the slot of node i. The generation of the slot changes so
// cursors still referencing it can be detected.
func (t *Tree[E]) freeNode(i uint32) {
	n := &t.nodes[i]
	var zero E
	n.value = zero
	n.left, n.right, n.parent = null, null, null
	n.gen++
	t.alloc.Free(alloc.Slot(i))
}

// replaceChild links child where old was under parent p, or at the root when
// p is null. The parent link of child is updated as well.
func (t *Tree[E]) replaceChild(p, old, child uint32) {
	switch {
	case p == null:
		t.root = child
	case t.nodes[p].left == old:
		t.nodes[p].left = child
	default:
		t.nodes[p].right = child
	}
	if child != null {
		t.nodes[child].parent = p
	}
}

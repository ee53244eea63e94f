package tree

import (
	"fmt"

	"github.com/xlab/treeprint"
)

// String returns a rendering of the shape of the tree, one element per line,
// with branches tagged L or R for the left and right children.
//
// Complexity: O(N)
func (t *Tree[E]) String() string {
	if t.root == null {
		return treeprint.NewWithRoot("<empty>").String()
	}

	type branch struct {
		node uint32
		tree treeprint.Tree
	}

	root := treeprint.NewWithRoot(fmt.Sprint(t.nodes[t.root].value))
	stack := []branch{{t.root, root}}

	for len(stack) > 0 {
		b := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := &t.nodes[b.node]

		if n.left != null {
			stack = append(stack, branch{n.left, b.tree.AddMetaBranch("L", fmt.Sprint(t.nodes[n.left].value))})
		}
		if n.right != null {
			stack = append(stack, branch{n.right, b.tree.AddMetaBranch("R", fmt.Sprint(t.nodes[n.right].value))})
		}
	}

	return root.String()
}

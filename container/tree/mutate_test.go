package tree

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/segmentio/bstree/alloc"
)

func TestInsertDuplicates(t *testing.T) {
	tree := newIntTree(t, 5, 5, 5)

	assert.Equal(t, 3, tree.Len())
	assert.Equal(t, 1, tree.Count(5))
	assert.Equal(t, []int{5, 5, 5}, forward(tree, PreOrder))
	// Ties route right.
	assert.Equal(t, null, tree.nodes[tree.root].left)

	assert.Equal(t, 1, tree.Erase(5))
	assert.Equal(t, 2, tree.Len())
	assert.True(t, tree.Exist(5))
	requireInvariants(t, tree)
}

func TestErase(t *testing.T) {
	tests := []struct {
		scenario string
		values   []int
		erase    int
		preorder []int
	}{
		{
			scenario: "erasing a leaf detaches it",
			values:   []int{50, 30, 70},
			erase:    30,
			preorder: []int{50, 70},
		},

		{
			scenario: "erasing a node with a left child splices the child",
			values:   []int{50, 30, 20, 25},
			erase:    30,
			preorder: []int{50, 20, 25},
		},

		{
			scenario: "erasing a node with a right child splices the child",
			values:   []int{50, 30, 40, 35},
			erase:    30,
			preorder: []int{50, 40, 35},
		},

		{
			scenario: "erasing a root with one child makes the child the root",
			values:   []int{50, 70, 60, 80},
			erase:    50,
			preorder: []int{70, 60, 80},
		},

		{
			scenario: "erasing the only element empties the tree",
			values:   []int{50},
			erase:    50,
			preorder: []int{},
		},

		{
			scenario: "erasing a node whose successor is its right child",
			values:   []int{50, 30, 70, 80},
			erase:    50,
			preorder: []int{70, 30, 80},
		},

		{
			scenario: "erasing a node whose successor is deeper in the right subtree",
			values:   []int{50, 30, 70, 60, 80, 65},
			erase:    50,
			preorder: []int{60, 30, 70, 65, 80},
		},

		{
			scenario: "erasing an inner node with two children",
			values:   []int{50, 30, 70, 20, 40, 35, 45},
			erase:    30,
			preorder: []int{50, 35, 20, 40, 45, 70},
		},
	}

	for _, test := range tests {
		t.Run(test.scenario, func(t *testing.T) {
			tree := newIntTree(t, test.values...)
			assert.Equal(t, 1, tree.Erase(test.erase))
			assert.Equal(t, test.preorder, forward(tree, PreOrder))
			assert.Equal(t, len(test.values)-1, tree.Len())
			requireInvariants(t, tree)
			for _, o := range orders {
				testCursorRoundTrip(t, tree, o)
			}
		})
	}
}

func TestEraseKeepsSuccessorCursor(t *testing.T) {
	tree := newIntTree(t, 50, 30, 70, 60, 80, 65)
	successor := tree.Find(60)
	other := tree.Find(65)

	require.Equal(t, 1, tree.Erase(50))
	assert.Equal(t, 60, successor.Value(), "the successor node moved, cursors to it follow")
	assert.Equal(t, 65, successor.Next().Value())
	assert.Equal(t, 30, successor.Prev().Value())
	assert.Equal(t, 70, other.Next().Value())
}

func TestExtract(t *testing.T) {
	tree := newIntTree(t, 10, 5, 20)

	value, next := tree.Extract(tree.Find(5))
	assert.Equal(t, 5, value)
	assert.Equal(t, 10, next.Value())
	assert.Equal(t, []int{10, 20}, forward(tree, InOrder))

	value, next = tree.Extract(tree.Find(20))
	assert.Equal(t, 20, value)
	assert.False(t, next.Valid(), "extracting the largest element returns the end cursor")

	value, next = tree.Extract(tree.Find(10))
	assert.Equal(t, 10, value)
	assert.False(t, next.Valid())
	assert.True(t, tree.Empty())
	requireInvariants(t, tree)
}

func TestExtractEnd(t *testing.T) {
	tree := newIntTree(t, 10, 5, 20)

	value, next := tree.Extract(tree.Find(15))
	assert.Equal(t, 0, value)
	assert.False(t, next.Valid())
	assert.Equal(t, 3, tree.Len())

	empty := New[int](cmpInt)
	_, next = empty.Extract(empty.Find(10))
	assert.False(t, next.Valid())
}

func TestExtractFromAnyOrder(t *testing.T) {
	tree := newIntTree(t, 50, 30, 70, 20, 40, 60, 80)

	// The root is the last element of the post-order traversal.
	value, next := tree.Extract(tree.RBegin(PostOrder))
	assert.Equal(t, 50, value)
	assert.Equal(t, 60, next.Value())
	assert.Equal(t, InOrder, next.Order())
	assert.False(t, next.Reversed())
	assert.Equal(t, 70, next.Next().Value())
	assert.Equal(t, []int{60, 30, 20, 40, 70, 80}, forward(tree, PreOrder))
	requireInvariants(t, tree)
}

func TestExtractForeignCursor(t *testing.T) {
	a := newIntTree(t, 1)
	b := newIntTree(t, 1)
	assert.Panics(t, func() { a.Extract(b.Find(1)) })
}

func TestMerge(t *testing.T) {
	tests := []struct {
		scenario string
		dst, src []int
		want     []int
	}{
		{"merging non-empty trees", []int{10, 5}, []int{20, 15}, []int{5, 10, 15, 20}},
		{"merging into an empty tree", nil, []int{10, 5}, []int{5, 10}},
		{"merging an empty tree", []int{10, 5}, nil, []int{5, 10}},
		{"merging empty trees", nil, nil, []int{}},
		{"merging equivalent elements keeps both", []int{10}, []int{10}, []int{10, 10}},
	}

	for _, test := range tests {
		t.Run(test.scenario, func(t *testing.T) {
			dst := newIntTree(t, test.dst...)
			src := newIntTree(t, test.src...)

			require.NoError(t, dst.Merge(src))
			assert.True(t, src.Empty())
			assert.Equal(t, test.want, forward(dst, InOrder))
			requireInvariants(t, dst)
			requireInvariants(t, src)
		})
	}
}

func TestMergeInsertsInPreOrder(t *testing.T) {
	dst := New[int](cmpInt)
	src := newIntTree(t, 50, 30, 70, 20)

	require.NoError(t, dst.Merge(src))
	assert.Equal(t, []int{50, 30, 20, 70}, forward(dst, PreOrder), "the source shape is rebuilt by inserting in pre-order")
}

func TestMergeSelf(t *testing.T) {
	tree := newIntTree(t, 2, 1, 3)
	require.NoError(t, tree.Merge(tree))
	assert.Equal(t, []int{1, 2, 3}, forward(tree, InOrder))
	require.NoError(t, tree.Merge(nil))
}

func TestMergeAllocationFailure(t *testing.T) {
	dst := New[int](cmpInt, Allocator(alloc.New(alloc.SlotLimit(4))))
	for _, v := range []int{10, 5} {
		_, err := dst.Insert(v)
		require.NoError(t, err)
	}
	before := dst.String()
	src := newIntTree(t, 20, 15, 25, 1)

	err := dst.Merge(src)
	require.Error(t, err)
	assert.True(t, errors.Is(err, alloc.ErrNoSlots))

	assert.Equal(t, before, dst.String(), "values inserted before the failure are removed")
	assert.Equal(t, []int{1, 15, 20, 25}, forward(src, InOrder), "the source is not cleared")
	requireInvariants(t, dst)
	requireInvariants(t, src)
}

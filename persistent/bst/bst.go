package bst

import (
	"fmt"
	"strings"

	"github.com/ethxnwzng/CMSI3801/maybe"
)

/*
Remarks:
--------

- 'cow' stands for copy-on-write and is used throughout the code for variables holding clones of nodes.

- A nil *node is the empty tree. An empty child is never represented by a node of its own.

- A new modified incarnation of a tree always is reflected by a new tree.root. Inserting a
  value already present returns the tree unchanged, down to the identity of tree.root.

*/

// Tree is a persistent binary search tree. An empty instance is usable as an empty tree,
// i.e. this is legal:
//
//     tree := bst.Tree[int]{}.With(1)
//
// returning a tree containing a single node (1), ordered by the default numeric order.
//
type Tree[T any] struct {
	root *node[T]
	cmp  Comparator[T] // nil until resolved from the first value inserted
}

type node[T any] struct {
	value       T
	left, right *node[T]
}

func (n *node[T]) String() string {
	if n == nil {
		return "()"
	}
	return fmt.Sprintf("(%v)", n.value)
}

// Empty returns an empty tree. Its comparator will be derived from the first value inserted.
func Empty[T any]() Tree[T] {
	return Tree[T]{}
}

// EmptyWith returns an empty tree which orders its elements with c.
func EmptyWith[T any](c Comparator[T]) Tree[T] {
	return Tree[T]{cmp: c}
}

// Immutable constructs an empty tree with options, if you need any.
// Use it like this:
//
//     tree := bst.Immutable(bst.WithComparator(bst.Reverse(bst.Ordered[int]())))
//     tree = tree.With(1).With(2)    // ((2)1)
//
func Immutable[T any](opts ...Option[T]) Tree[T] {
	tree := Tree[T]{}
	for _, option := range opts {
		tree = option(tree)
	}
	return tree
}

// Option is a type to help initializing trees at creation time.
type Option[T any] func(Tree[T]) Tree[T]

// WithComparator is an option to set the comparator of a tree. A nil comparator
// defers the choice to the first insertion.
func WithComparator[T any](c Comparator[T]) Option[T] {
	return func(tree Tree[T]) Tree[T] {
		assertThat(tree.root == nil, "comparator of a non-empty tree cannot be changed")
		tree.cmp = c
		return tree
	}
}

// From creates a tree from values, inserted one after the other. c may be nil to
// use the default comparator. From panics with a *MismatchError if values contain
// elements which cannot be ordered against each other.
func From[T any](c Comparator[T], values ...T) Tree[T] {
	return EmptyWith(c).WithAll(values...)
}

// --- API -------------------------------------------------------------------

// Insert returns a copy of tree with value inserted. If an element comparing equal to
// value is already present, tree is returned unchanged.
//
// Insert returns an error wrapping ErrTypeMismatch if value cannot be ordered against
// the elements of tree. tree itself is never modified.
func (tree Tree[T]) Insert(value T) (newTree Tree[T], err error) {
	if tree.cmp == nil {
		if tree.cmp, err = defaultComparator(value); err != nil {
			tracer().Errorf("insert: %v", err)
			return tree, err
		}
	}
	defer func() {
		if r := recover(); r != nil {
			mismatch, ok := r.(*MismatchError)
			if !ok {
				panic(r)
			}
			tracer().Errorf("insert: %v", mismatch)
			newTree, err = tree, mismatch
		}
	}()
	if tree.root == nil { // virgin tree => create the first node and return
		return tree.withRoot(&node[T]{value: value}), nil
	}
	found, path := tree.locate(value, nil)
	if found {
		tracer().Debugf("insert: %v already present, tree unchanged", value)
		return tree, nil
	}
	tracer().Debugf("insert: slot path = %s", path)
	leaf := &node[T]{value: value}
	return tree.withRoot(path.foldR(cloneSeam[T], leaf)), nil
}

// With returns a copy of tree with value inserted. It is a variant of Insert for clients
// which treat unorderable values as a programming error: With will panic with a
// *MismatchError instead of returning an error.
func (tree Tree[T]) With(value T) Tree[T] {
	newTree, err := tree.Insert(value)
	if err != nil {
		panic(err)
	}
	return newTree
}

// WithAll returns a copy of tree with all of values inserted, in order.
// It panics with a *MismatchError in the same situations as With does.
func (tree Tree[T]) WithAll(values ...T) Tree[T] {
	for _, v := range values {
		tree = tree.With(v)
	}
	return tree
}

// Contains returns true if an element comparing equal to value is present in tree.
//
// Contains will panic with a *MismatchError if value cannot be ordered against the
// elements of tree.
func (tree Tree[T]) Contains(value T) bool {
	return tree.find(value) != nil
}

// Find locates an element comparing equal to value and returns it, if present.
// This is useful for comparators which consider only part of a value, e.g. a key field.
func (tree Tree[T]) Find(value T) maybe.Maybe[T] {
	if n := tree.find(value); n != nil {
		return maybe.Just(n.value)
	}
	return maybe.Nothing[T]()
}

// Min returns the smallest element of tree, or Nothing for the empty tree.
func (tree Tree[T]) Min() maybe.Maybe[T] {
	if tree.root == nil {
		return maybe.Nothing[T]()
	}
	n := tree.root
	for n.left != nil {
		n = n.left
	}
	return maybe.Just(n.value)
}

// Max returns the largest element of tree, or Nothing for the empty tree.
func (tree Tree[T]) Max() maybe.Maybe[T] {
	if tree.root == nil {
		return maybe.Nothing[T]()
	}
	n := tree.root
	for n.right != nil {
		n = n.right
	}
	return maybe.Just(n.value)
}

// Size returns the number of elements in tree. It is not cached and takes time
// linear in the number of elements.
func (tree Tree[T]) Size() int {
	return size(tree.root)
}

func size[T any](n *node[T]) int {
	if n == nil {
		return 0
	}
	return 1 + size(n.left) + size(n.right)
}

// Depth returns the number of nodes on the longest path from the root to a leaf.
// The empty tree has depth 0.
func (tree Tree[T]) Depth() int {
	return depth(tree.root)
}

func depth[T any](n *node[T]) int {
	if n == nil {
		return 0
	}
	return 1 + max(depth(n.left), depth(n.right))
}

// IsEmpty returns true if tree does not contain any element.
func (tree Tree[T]) IsEmpty() bool {
	return tree.root == nil
}

// Comparator returns the comparator of tree. It is nil for an empty tree which has
// been created without a comparator.
func (tree Tree[T]) Comparator() Comparator[T] {
	return tree.cmp
}

// String renders tree in a canonical parenthesized form: the empty tree is "()",
// a node is "(" + left + value + right + ")", where empty children are omitted.
// For example, inserting b, a, c into an empty tree renders as "((a)b(c))".
func (tree Tree[T]) String() string {
	if tree.root == nil {
		return "()"
	}
	var sb strings.Builder
	render(&sb, tree.root)
	return sb.String()
}

func render[T any](sb *strings.Builder, n *node[T]) {
	if n == nil { // empty child in inner position
		return
	}
	sb.WriteByte('(')
	render(sb, n.left)
	sb.WriteString(fmt.Sprint(n.value))
	render(sb, n.right)
	sb.WriteByte(')')
}

func (tree Tree[T]) withRoot(root *node[T]) Tree[T] {
	return Tree[T]{root: root, cmp: tree.cmp}
}

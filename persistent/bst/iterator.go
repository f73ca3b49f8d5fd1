package bst

import (
	"iter"
)

// Iterator walks the elements of a tree in ascending order. It uses an explicit stack
// instead of recursion, so the depth of a degenerated tree does not matter.
//
// An iterator reflects the tree value it has been created for; trees derived from it
// later do not influence the iteration. Use it like this:
//
//     it := tree.Iterator()
//     for it.Next() {
//         fmt.Println(it.Value())
//     }
//
type Iterator[T any] struct {
	stack   []*node[T] // nodes whose value and right subtree are still pending
	current *node[T]
}

// Iterator returns a new in-order iterator for tree.
func (tree Tree[T]) Iterator() *Iterator[T] {
	it := &Iterator[T]{}
	it.pushLeftSpine(tree.root)
	return it
}

func (it *Iterator[T]) pushLeftSpine(n *node[T]) {
	for ; n != nil; n = n.left {
		it.stack = append(it.stack, n)
	}
}

// Next advances the iterator to the next element. It returns false if all elements
// have been visited.
func (it *Iterator[T]) Next() bool {
	if len(it.stack) == 0 {
		it.current = nil
		return false
	}
	it.current = it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	it.pushLeftSpine(it.current.right)
	return true
}

// Value returns the element the iterator is positioned at. It panics if Next has not
// been called or has returned false.
func (it *Iterator[T]) Value() T {
	assertThat(it.current != nil, "iterator is not positioned at an element")
	return it.current.value
}

// InOrder returns the elements of tree in ascending order. The sequence is lazy and
// may be ranged over any number of times, each time yielding the same elements:
//
//     for v := range tree.InOrder() {
//         fmt.Println(v)
//     }
//
func (tree Tree[T]) InOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := tree.Iterator()
		for it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// Values returns the elements of tree in ascending order.
func (tree Tree[T]) Values() []T {
	values := make([]T, 0, tree.Size())
	for v := range tree.InOrder() {
		values = append(values, v)
	}
	return values
}

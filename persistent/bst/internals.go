package bst

import (
	"fmt"
)

// locate searches for value, tracking the path of nodes walked. If value is found,
// the last slot of the path holds the node containing it. Otherwise the last slot
// points to the empty child where value would have to be inserted.
func (tree Tree[T]) locate(value T, pathBuf slotPath[T]) (found bool, path slotPath[T]) {
	path = pathBuf[:0] // we track the path to the value's slot
	var n *node[T] = tree.root // walking nodes, start search at the top
	for n != nil {
		c := tree.cmp(value, n.value)
		if c == 0 {
			path = append(path, slot[T]{node: n})
			return true, path
		}
		s := slot[T]{node: n, dir: toRight}
		if c < 0 {
			s.dir = toLeft
		}
		path = append(path, s)
		n = s.child()
	}
	return false, path
}

// find returns the node holding a value equal to value, or nil.
// Exactly one child is visited per level.
func (tree Tree[T]) find(value T) *node[T] {
	if tree.root == nil {
		return nil
	}
	assertThat(tree.cmp != nil, "non-empty tree without comparator")
	n := tree.root
	for n != nil {
		c := tree.cmp(value, n.value)
		switch {
		case c == 0:
			return n
		case c < 0:
			n = n.left
		default:
			n = n.right
		}
	}
	return nil
}

// cloneSeam creates a copy of the node in parent, linking child at the
// position parent's path continued with. The other child is shared.
func cloneSeam[T any](parent slot[T], child *node[T]) *node[T] {
	assertThat(parent.node != nil, "attempt to clone empty slot")
	cow := *parent.node
	if parent.dir == toLeft {
		cow.left = child
	} else {
		cow.right = child
	}
	return &cow
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("bst: "+msg, msgargs...)
		panic(msg)
	}
}

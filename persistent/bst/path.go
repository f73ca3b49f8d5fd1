package bst

import (
	"fmt"
	"strings"
)

// --- Slot ------------------------------------------------------------------

// direction tells which child of a node a search continues with.
type direction int8

const (
	toLeft  direction = -1
	toRight direction = +1
)

func (d direction) String() string {
	if d == toLeft {
		return "↙"
	}
	return "↘"
}

// slot holds a step of a path: a node and the child link which has been followed.
type slot[T any] struct {
	node *node[T]
	dir  direction
}

func (s slot[T]) String() string {
	return s.node.String() + s.dir.String()
}

func (s slot[T]) child() *node[T] {
	if s.dir == toLeft {
		return s.node.left
	}
	return s.node.right
}

// --- Path ------------------------------------------------------------------

type slotPath[T any] []slot[T]

func (path slotPath[T]) String() string {
	var sb = strings.Builder{}
	sb.WriteRune('[')
	for _, s := range path {
		sb.WriteString(fmt.Sprintf("⟨%s⟩", s))
	}
	sb.WriteRune(']')
	return sb.String()
}

func (path slotPath[T]) last() slot[T] {
	if len(path) == 0 {
		return slot[T]{}
	}
	return path[len(path)-1]
}

// foldR folds the path from the bottom up, starting with zero as the
// result for the position below the last slot.
func (path slotPath[T]) foldR(f func(slot[T], *node[T]) *node[T], zero *node[T]) *node[T] {
	r := zero
	for i := len(path) - 1; i >= 0; i-- {
		r = f(path[i], r)
	}
	return r
}

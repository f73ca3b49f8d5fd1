/*
Package bst implements a persistent (immutable) binary search tree.

Every “modification” of a tree creates a new incarnation, leaving the original untouched
and fully usable. Insertion clones only the nodes on the path from the root down to the
insertion point; all other subtrees are shared between the old and the new tree.
This makes trees inherently concurrency-safe: any number of goroutines may read a tree
value or derive new trees from it without coordination.

The tree is a plain, unbalanced search tree. Its shape depends on the order of
insertion, worst-case depth is linear in the number of elements.

Ordering

A tree is ordered by a comparator, which is fixed once for a tree and all the trees
derived from it. Clients may supply one explicitly:

    tree := bst.EmptyWith(bst.Ordered[int]())
    tree = tree.With(42).With(7)

If no comparator is given, a default one is derived from the first value inserted:
numbers ascending, text lexicographically, false before true.

    tree := bst.Tree[string]{}.With("b").With("a").With("c")
    fmt.Println(tree)    // prints ((a)b(c))

Values which the comparator cannot order against the tree's elements are a
programmer error, reported as ErrTypeMismatch.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package bst

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.bst'.
func tracer() tracing.Trace {
	return tracing.Select("fp.bst")
}

/*
Package persistent is the home of immutable persistent data structures.

Persistent data structures can be “modified” efficiently while leaving the original
unchanged: every modifying operation returns a new value and all prior values remain
intact and usable. Functional programming languages like Lisp have long relied on them.

Persistent structures in this module offer structural sharing, which means that if two
values are mostly copies of each other, most of the memory they take up will be shared
between them. Copying and deriving new versions is cheap in terms of space and time, and
values may be handed between goroutines without any locking.

Sub-packages:

    bst     persistent, unbalanced binary search tree with pluggable ordering

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package persistent

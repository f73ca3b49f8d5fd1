/*
Package maybe implements optional values.

A Maybe[T] either holds a value of type T (Just) or nothing at all (Nothing).
Lookups in the persistent data structures of this module return a Maybe instead of
a (value, found) pair, which lets clients chain operations on a result that may be
absent.

Clients may get at the value by matching:

    var v int
    switch m := tree.Min().Match(); m {
    case m.Just(&v):
        fmt.Printf("smallest is %d\n", v)
    case m.Nothing():
        fmt.Println("tree is empty")
    }

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package maybe

// Maybe is an optional value of type T.
type Maybe[T any] interface {
	Match() Matcher[T]
	Get() (T, bool)  // value and true for Just, zero value and false for Nothing
	IsNothing() bool
	WithDefault(T) T // value for Just, the default for Nothing
	Map(func(T) T) Maybe[T]
}

type maybe[T any] struct {
	value T
	just  bool
}

// Just wraps x into a Maybe.
func Just[T any](x T) Maybe[T] {
	return maybe[T]{value: x, just: true}
}

// Nothing returns an empty Maybe.
func Nothing[T any]() Maybe[T] {
	return maybe[T]{}
}

func (m maybe[T]) Match() Matcher[T] {
	return matcher[T]{m: m}
}

func (m maybe[T]) Get() (T, bool) {
	return m.value, m.just
}

func (m maybe[T]) IsNothing() bool {
	return !m.just
}

func (m maybe[T]) WithDefault(def T) T {
	if m.just {
		return m.value
	}
	return def
}

func (m maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.just {
		return Just(f(m.value))
	}
	return m
}

// AndThen chains a computation which may fail onto x.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	if v, ok := x.Get(); ok {
		return f(v)
	}
	return Nothing[S]()
}

// Map applies f to the value of x, changing its type.
func Map[T, S any](f func(T) S, x Maybe[T]) Maybe[S] {
	if v, ok := x.Get(); ok {
		return Just(f(v))
	}
	return Nothing[S]()
}

// --- Matching --------------------------------------------------------------

// Matcher is used in switch statements to destructure a Maybe, see the package
// documentation. Exactly one of its methods returns the matcher itself, the other
// returns nil.
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T any] struct {
	m maybe[T]
}

func (mm matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.just {
		*v = mm.m.value
		return mm
	}
	return nil
}

func (mm matcher[T]) Nothing() Matcher[T] {
	if !mm.m.just {
		return mm
	}
	return nil
}

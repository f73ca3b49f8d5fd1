package bst

import (
	"cmp"
	"errors"
	"fmt"
	"reflect"
)

// ErrTypeMismatch is flagged if a value cannot be ordered against the elements of a tree.
var ErrTypeMismatch = errors.New("value cannot be ordered against tree elements")

// MismatchError reports a pair of values which a comparator cannot relate.
// It unwraps to ErrTypeMismatch.
type MismatchError struct {
	Value   any // value inserted or looked up
	Against any // element it has been compared against, nil for a first value
}

func (e *MismatchError) Error() string {
	if e.Against == nil {
		return fmt.Sprintf("bst: no default order for %#v (%T)", e.Value, e.Value)
	}
	return fmt.Sprintf("bst: cannot order %#v (%T) against %#v (%T)",
		e.Value, e.Value, e.Against, e.Against)
}

func (e *MismatchError) Unwrap() error {
	return ErrTypeMismatch
}

// Comparator imposes a total order on values of type T. It returns a negative number
// if a < b, zero if a equals b and a positive number if a > b.
//
// A comparator which cannot relate a and b should panic with a *MismatchError; see
// Mismatch.
type Comparator[T any] func(a, b T) int

// Ordered returns a comparator for Go's ordered types.
func Ordered[T cmp.Ordered]() Comparator[T] {
	return cmp.Compare[T]
}

// Reverse returns a comparator with the order of c inverted.
func Reverse[T any](c Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		return c(b, a)
	}
}

// Mismatch is to be called by comparators to signal that a and b cannot be ordered.
// It never returns.
func Mismatch(a, b any) {
	panic(&MismatchError{Value: a, Against: b})
}

// --- Default ordering ------------------------------------------------------

// domain is a class of values the default comparator knows how to order.
type domain int

const (
	noDomain domain = iota
	numericDomain
	textDomain
	boolDomain
)

func (d domain) String() string {
	switch d {
	case numericDomain:
		return "numeric"
	case textDomain:
		return "text"
	case boolDomain:
		return "bool"
	}
	return "none"
}

func domainOf(v reflect.Value) domain {
	if !v.IsValid() {
		return noDomain
	}
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return numericDomain
	case reflect.String:
		return textDomain
	case reflect.Bool:
		return boolDomain
	}
	return noDomain
}

// defaultComparator derives a comparator from the dynamic type of sample.
// The comparator panics with a *MismatchError for any operand outside of
// sample's domain.
func defaultComparator[T any](sample T) (Comparator[T], error) {
	d := domainOf(reflect.ValueOf(any(sample)))
	if d == noDomain {
		return nil, &MismatchError{Value: sample}
	}
	tracer().Debugf("resolved default comparator: %s order for %T", d, sample)
	return func(a, b T) int {
		va, vb := reflect.ValueOf(any(a)), reflect.ValueOf(any(b))
		if domainOf(va) != d || domainOf(vb) != d {
			Mismatch(a, b)
		}
		switch d {
		case textDomain:
			return cmp.Compare(va.String(), vb.String())
		case boolDomain:
			return compareBool(va.Bool(), vb.Bool())
		}
		return compareNumeric(va, vb)
	}, nil
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	}
	return 1
}

type numKind int

const (
	signed numKind = iota
	unsigned
	float
)

func numKindOf(v reflect.Value) numKind {
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		return float
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return unsigned
	}
	return signed
}

// compareNumeric compares numbers of possibly different kinds by value.
func compareNumeric(a, b reflect.Value) int {
	ka, kb := numKindOf(a), numKindOf(b)
	switch {
	case ka == float || kb == float:
		return cmp.Compare(asFloat(a, ka), asFloat(b, kb))
	case ka == signed && kb == signed:
		return cmp.Compare(a.Int(), b.Int())
	case ka == unsigned && kb == unsigned:
		return cmp.Compare(a.Uint(), b.Uint())
	case ka == signed: // b is unsigned
		if a.Int() < 0 {
			return -1
		}
		return cmp.Compare(uint64(a.Int()), b.Uint())
	}
	// a is unsigned, b is signed
	if b.Int() < 0 {
		return 1
	}
	return cmp.Compare(a.Uint(), uint64(b.Int()))
}

func asFloat(v reflect.Value, k numKind) float64 {
	switch k {
	case signed:
		return float64(v.Int())
	case unsigned:
		return float64(v.Uint())
	}
	return v.Float()
}

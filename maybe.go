package main

import (
	"fmt"
	"reflect"
)

// Maybe holds either exactly one value (Just) or none (Nothing).
// The zero value is Nothing.
type Maybe[T any] struct {
	value T
	ok    bool
}

// Just wraps v. Unlike Of it never inspects v.
func Just[T any](v T) Maybe[T] {
	return Maybe[T]{value: v, ok: true}
}

// Nothing is the empty case.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// Of converts a possibly absent value: nil pointers, interfaces, maps,
// slices, funcs and chans become Nothing, everything else Just.
func Of[T any](v T) Maybe[T] {
	if isNil(v) {
		return Nothing[T]()
	}
	return Just(v)
}

// FromOk mirrors the comma-ok idiom of map lookups and type assertions.
func FromOk[T any](v T, ok bool) Maybe[T] {
	if !ok {
		return Nothing[T]()
	}
	return Just(v)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// GetOrElse returns the held value, or the result of supplier. supplier is
// only called for Nothing.
func (m Maybe[T]) GetOrElse(supplier func() T) T {
	if m.ok {
		return m.value
	}
	return supplier()
}

// Filter keeps a Just only when pred holds for its value.
func (m Maybe[T]) Filter(pred func(T) bool) Maybe[T] {
	if m.ok && pred(m.value) {
		return m
	}
	return Nothing[T]()
}

func (m Maybe[T]) String() string {
	if m.ok {
		return fmt.Sprintf("Just(%v)", m.value)
	}
	return "Nothing"
}

// MapMaybe applies f to the held value.
func MapMaybe[T, U any](m Maybe[T], f func(T) U) Maybe[U] {
	if !m.ok {
		return Nothing[U]()
	}
	return Just(f(m.value))
}

// BindMaybe feeds the held value to f, which decides presence itself.
func BindMaybe[T, U any](m Maybe[T], f func(T) Maybe[U]) Maybe[U] {
	if !m.ok {
		return Nothing[U]()
	}
	return f(m.value)
}

// MatchMaybe is the exhaustive dispatch over both cases.
func MatchMaybe[T, R any](m Maybe[T], onJust func(T) R, onNothing func() R) R {
	if m.ok {
		return onJust(m.value)
	}
	return onNothing()
}

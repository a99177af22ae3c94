package main

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func halfIfEven(n int) Maybe[int] {
	if n%2 == 0 {
		return Just(n / 2)
	}
	return Nothing[int]()
}

func TestMaybeFunctorIdentity(t *testing.T) {
	for _, m := range []Maybe[int]{Just(0), Just(42), Nothing[int]()} {
		require.Equal(t, m, MapMaybe(m, Identity[int]))
	}
}

func TestMaybeBindAssociative(t *testing.T) {
	inc := func(n int) Maybe[int] { return Just(n + 1) }
	for _, m := range []Maybe[int]{Just(10), Just(20), Just(7), Nothing[int]()} {
		left := BindMaybe(BindMaybe(m, halfIfEven), inc)
		right := BindMaybe(m, func(x int) Maybe[int] {
			return BindMaybe(halfIfEven(x), inc)
		})
		require.Equal(t, left, right, "m = %v", m)
	}
}

func TestMaybeBindChain(t *testing.T) {
	require.Equal(t, Nothing[int](), BindMaybe(BindMaybe(Just(10), halfIfEven), halfIfEven))
	require.Equal(t, Just(5), BindMaybe(BindMaybe(Just(20), halfIfEven), halfIfEven))
}

func TestMaybeMapChangesType(t *testing.T) {
	length := func(s string) int { return len(s) }
	square := func(n int) int { return n * n }

	require.Equal(t, Just(49), MapMaybe(MapMaybe(Just("abcdefg"), length), square))
	require.Equal(t, Nothing[int](), MapMaybe(MapMaybe(Nothing[string](), length), square))
}

func TestMaybeGetOrElse(t *testing.T) {
	called := false
	supplier := func() int {
		called = true
		return -1
	}

	require.Equal(t, 3, Just(3).GetOrElse(supplier))
	require.False(t, called)

	require.Equal(t, -1, Nothing[int]().GetOrElse(supplier))
	require.True(t, called)
}

func TestMaybeOf(t *testing.T) {
	var p *int
	var s []int
	var m map[string]int

	require.Equal(t, Nothing[*int](), Of(p))
	require.Equal(t, Nothing[[]int](), Of(s))
	require.Equal(t, Nothing[map[string]int](), Of(m))
	require.Equal(t, Nothing[any](), Of[any](nil))

	require.Equal(t, Just("Ben"), Of("Ben"))
	require.Equal(t, Just(0), Of(0))

	n := 4
	require.Equal(t, Just(&n), Of(&n))
}

func TestMaybeFromOk(t *testing.T) {
	ages := map[string]int{"Ben": 30}

	require.Equal(t, Just(30), FromOk(lookup(ages, "Ben")))
	require.Equal(t, Nothing[int](), FromOk(lookup(ages, "Adam")))
}

func lookup(m map[string]int, key string) (int, bool) {
	v, ok := m[key]
	return v, ok
}

func TestMaybeFilter(t *testing.T) {
	longerThan10 := func(s string) bool { return len(s) > 10 }

	require.Equal(t, Just("Kyrlach, Ben"), Just("Kyrlach, Ben").Filter(longerThan10))
	require.Equal(t, Nothing[string](), Just("Hope, Bob").Filter(longerThan10))
	require.Equal(t, Nothing[string](), Nothing[string]().Filter(longerThan10))
}

func TestMaybeMatch(t *testing.T) {
	show := func(m Maybe[string]) string {
		return MatchMaybe(m,
			func(s string) string { return s },
			func() string { return "Nothing here!" })
	}

	require.Equal(t, "Ben", show(Just("Ben")))
	require.Equal(t, "Nothing here!", show(Nothing[string]()))
}

func TestMaybeZeroValueIsNothing(t *testing.T) {
	var m Maybe[int]
	require.Equal(t, Nothing[int](), m)
	require.Equal(t, "Nothing", fmt.Sprint(m))
	require.Equal(t, "Just(5)", Just(5).String())
}

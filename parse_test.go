package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	cases := map[string]Command{
		"b":   Bid,
		"B":   Bid,
		"q":   Quit,
		"Q":   Quit,
		"x":   Unrecognized,
		"":    Unrecognized,
		"bid": Unrecognized,
		" b":  Unrecognized,
	}
	for line, want := range cases {
		require.Equal(t, want, parseCommand(line), "line %q", line)
	}
}

func TestParseFace(t *testing.T) {
	cases := map[string]Maybe[Face]{
		"h":     Just(Heads),
		"H":     Just(Heads),
		"t":     Just(Tails),
		"T":     Just(Tails),
		"z":     Nothing[Face](),
		"heads": Nothing[Face](),
		"":      Nothing[Face](),
	}
	for line, want := range cases {
		require.Equal(t, want, parseFace(line), "line %q", line)
	}
}

func TestParseAmount(t *testing.T) {
	cases := map[string]Maybe[int]{
		"42":   Just(42),
		" 42 ": Just(42),
		"-7":   Just(-7),
		"0":    Just(0),
		"abc":  Nothing[int](),
		"4.5":  Nothing[int](),
		"":     Nothing[int](),
	}
	for line, want := range cases {
		require.Equal(t, want, parseAmount(line), "line %q", line)
	}
}

func TestMatchCommand(t *testing.T) {
	name := func(c Command) string {
		return MatchCommand(c,
			func() string { return "bid" },
			func() string { return "quit" },
			func() string { return "unrecognized" })
	}
	require.Equal(t, "bid", name(Bid))
	require.Equal(t, "quit", name(Quit))
	require.Equal(t, "unrecognized", name(Unrecognized))
	require.Panics(t, func() { name(Command(7)) })
}

func TestMatchFace(t *testing.T) {
	letter := func(f Face) string {
		return MatchFace(f, func() string { return "H" }, func() string { return "T" })
	}
	require.Equal(t, "H", letter(Heads))
	require.Equal(t, "T", letter(Tails))
	require.Panics(t, func() { letter(Face("edge")) })
}

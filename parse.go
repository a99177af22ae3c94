package main

import (
	"strconv"
	"strings"
)

func parseCommand(line string) Command {
	switch {
	case strings.EqualFold(line, "b"):
		return Bid
	case strings.EqualFold(line, "q"):
		return Quit
	}
	return Unrecognized
}

func parseFace(line string) Maybe[Face] {
	switch {
	case strings.EqualFold(line, "h"):
		return Just(Heads)
	case strings.EqualFold(line, "t"):
		return Just(Tails)
	}
	return Nothing[Face]()
}

// parseAmount ignores blanks around the number
var parseAmount = Compose(safeAtoi, strings.TrimSpace)

func safeAtoi(s string) Maybe[int] {
	n, err := strconv.Atoi(s)
	return FromOk(n, err == nil)
}

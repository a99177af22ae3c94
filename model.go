package main

import (
	"fmt"

	"github.com/gofrs/uuid"
)

// Command is what the player asked for at the main prompt.
type Command int

const (
	Bid Command = iota
	Quit
	Unrecognized
)

// MatchCommand dispatches on every Command case.
func MatchCommand[R any](c Command, bid, quit, unrecognized func() R) R {
	switch c {
	case Bid:
		return bid()
	case Quit:
		return quit()
	case Unrecognized:
		return unrecognized()
	}
	panic(fmt.Sprintf("unknown command %d", c))
}

// Face is a side of the coin
type Face string

const (
	Heads Face = "heads"
	Tails Face = "tails"
)

// MatchFace dispatches on every Face case.
func MatchFace[R any](f Face, heads, tails func() R) R {
	switch f {
	case Heads:
		return heads()
	case Tails:
		return tails()
	}
	panic(fmt.Sprintf("unknown face %q", f))
}

// GambleResult for bet outcome representation (win / lost)
type GambleResult string

const (
	// Winning the called face came up
	Winning GambleResult = "win"
	// Losing the other face came up
	Losing GambleResult = "lost"
)

// MatchResult dispatches on every GambleResult case.
func MatchResult[R any](r GambleResult, winning, losing func() R) R {
	switch r {
	case Winning:
		return winning()
	case Losing:
		return losing()
	}
	panic(fmt.Sprintf("unknown gamble result %q", r))
}

// Player is replaced, never changed, when the balance moves.
type Player struct {
	Name  string
	Money int
}

// Bet is one call on one toss. Amount is not checked against anything.
type Bet struct {
	Amount int
	Face   Face
}

// LedgerPlayer contains ledger side player information
type LedgerPlayer struct {
	ID      uuid.UUID
	Name    string
	Balance int
}

// BalanceUpdate contains one resolved bet as stored in the ledger
type BalanceUpdate struct {
	ID          uuid.UUID
	Amount      int
	Face        Face
	Tossed      Face
	Result      GambleResult
	PrevBalance int
}

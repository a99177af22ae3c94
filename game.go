package main

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid"
)

type stage int

const (
	awaitingCommand stage = iota
	awaitingAmount
	awaitingFace
	resolving
)

// round is the loop state. Steps copy it, they never change it in place.
type round struct {
	stage  stage
	player Player
	rng    Sequence
	amount int
	bet    Bet
}

type game struct {
	ctx     context.Context
	manager Manager
	session uuid.UUID
}

func newGame(ctx context.Context, manager Manager, session uuid.UUID) *game {
	return &game{
		ctx:     ctx,
		manager: manager,
		session: session,
	}
}

// program is the whole run: ask for a name, then bet forever.
func (g *game) program(money int, rng Sequence) IO[Unit] {
	return BindIO(Then(WriteText("What is your name? "), ReadLine()), func(name string) IO[Unit] {
		return Then(WriteLine(fmt.Sprintf("Hello, %v", name)),
			BindIO(g.join(Player{Name: name, Money: money}), func(p Player) IO[Unit] {
				return Forever(round{stage: awaitingCommand, player: p, rng: rng}, g.step)
			}))
	})
}

func (g *game) step(r round) IO[round] {
	switch r.stage {
	case awaitingCommand:
		return g.awaitCommand(r)
	case awaitingAmount:
		return g.awaitAmount(r)
	case awaitingFace:
		return g.awaitFace(r)
	case resolving:
		return g.resolve(r)
	}
	panic(fmt.Sprintf("unknown stage %d", r.stage))
}

func (g *game) awaitCommand(r round) IO[round] {
	header := fmt.Sprintf("Hey %v, looks like you want to make a bet with that juicy $%v you're waving around!", r.player.Name, r.player.Money)
	prompt := Then(WriteLine(header), WriteText("Would you like to (B)id or (Q)uit? "))
	return BindIO(Then(prompt, MapIO(ReadLine(), parseCommand)), func(c Command) IO[round] {
		// quit has never left the loop
		invalid := func() IO[round] {
			return Then(WriteLine("I didn't recognize that command."), Pure(r))
		}
		return MatchCommand(c,
			func() IO[round] {
				next := r
				next.stage = awaitingAmount
				return Pure(next)
			},
			invalid,
			invalid)
	})
}

func (g *game) awaitAmount(r round) IO[round] {
	return BindIO(Then(WriteText("Amount to bet? "), MapIO(ReadLine(), parseAmount)), func(amount Maybe[int]) IO[round] {
		return MatchMaybe(amount,
			func(n int) IO[round] {
				next := r
				next.stage = awaitingFace
				next.amount = n
				return Pure(next)
			},
			func() IO[round] {
				return Then(WriteLine("Invalid amount there buddy. Try again!"), Pure(r))
			})
	})
}

func (g *game) awaitFace(r round) IO[round] {
	return BindIO(Then(WriteText("(H)eads or (T)ails? "), MapIO(ReadLine(), parseFace)), func(face Maybe[Face]) IO[round] {
		return MatchMaybe(face,
			func(f Face) IO[round] {
				next := r
				next.stage = resolving
				next.bet = Bet{Amount: r.amount, Face: f}
				return Pure(next)
			},
			func() IO[round] {
				return Then(WriteLine("Make a real call!"), Pure(r))
			})
	})
}

// resolve consumes exactly one element of the sequence per bet.
func (g *game) resolve(r round) IO[round] {
	drawn, rest := r.rng.Next()
	tossed := toss(drawn)
	update := BalanceUpdate{
		Amount:      r.bet.Amount,
		Face:        r.bet.Face,
		Tossed:      tossed,
		Result:      placeBet(r.bet, tossed),
		PrevBalance: r.player.Money,
	}
	next := round{
		stage:  awaitingCommand,
		player: Player{Name: r.player.Name, Money: calculateBalance(r.player.Money, update)},
		rng:    rest,
	}
	return Then(announce(r.bet, update.Result), Then(g.record(update), Pure(next)))
}

func announce(bet Bet, result GambleResult) IO[Unit] {
	return MatchResult(result,
		func() IO[Unit] { return WriteLine(fmt.Sprintf("You won $%v! Congratulations!\n", bet.Amount)) },
		func() IO[Unit] { return WriteLine(fmt.Sprintf("You lost $%v! Sucker!!!!\n", bet.Amount)) })
}

// join and record only feed the ledger; a ledger failure never stops play.
func (g *game) join(p Player) IO[Player] {
	return FromThunk(func() Player {
		if err := g.manager.Join(g.ctx, g.session, p); err != nil {
			Warn("failed to register player %v: %v", p.Name, err)
		}
		return p
	})
}

func (g *game) record(update BalanceUpdate) IO[Unit] {
	return FromThunk(func() Unit {
		id, err := uuid.NewV4()
		if err != nil {
			Warn("failed to generate bet id %v", err)
			return Unit{}
		}
		update.ID = id
		if err := g.manager.Record(g.ctx, g.session, update); err != nil {
			Warn("failed to record bet %v: %v", id, err)
		}
		return Unit{}
	})
}

package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gofrs/uuid"
)

// toss range: even is heads, odd is tails
const (
	tossMin = 1
	tossMax = 2
)

func toss(drawn int) Face {
	if drawn%2 == 0 {
		return Heads
	}
	return Tails
}

func placeBet(bet Bet, tossed Face) GambleResult {
	if bet.Face == tossed {
		return Winning
	}
	return Losing
}

// calculateBalance has no floor, a losing player can go below zero.
func calculateBalance(currentBalance int, update BalanceUpdate) int {
	return MatchResult(update.Result,
		func() int { return currentBalance + update.Amount },
		func() int { return currentBalance - update.Amount })
}

// Summary is what the ledger knows about one session
type Summary struct {
	Player LedgerPlayer
	Bets   int
	Wins   int
}

func (s Summary) String() string {
	return fmt.Sprintf("%v: %d bets, %d won, balance $%d", s.Player.Name, s.Bets, s.Wins, s.Player.Balance)
}

// Manager keeps the session ledger in step with the game
type Manager interface {
	Join(ctx context.Context, id uuid.UUID, player Player) error
	Record(ctx context.Context, playerID uuid.UUID, update BalanceUpdate) error
	Summary(ctx context.Context, playerID uuid.UUID) (Summary, error)
}

// NewStateManager ledger manager constructor
func NewStateManager(db *sql.DB) (Manager, error) {
	repo, err := NewRepo(db)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize repository %w", err)
	}
	return &stateManager{
		repo: repo,
	}, nil
}

type stateManager struct {
	repo Repo
}

func (m *stateManager) Join(ctx context.Context, id uuid.UUID, player Player) error {
	return m.repo.CreatePlayer(ctx, LedgerPlayer{
		ID:      id,
		Name:    player.Name,
		Balance: player.Money,
	})
}

// Record stores a resolved bet and moves the ledger balance with it
func (m *stateManager) Record(ctx context.Context, playerID uuid.UUID, update BalanceUpdate) error {
	return m.repo.RegisterNewOperation(ctx, playerID, update, calculateBalance)
}

func (m *stateManager) Summary(ctx context.Context, playerID uuid.UUID) (Summary, error) {
	player, err := m.repo.GetPlayer(ctx, playerID)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to load player %v: %w", playerID, err)
	}
	bets, wins, err := m.repo.CountOperations(ctx, playerID)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to count operations: %w", err)
	}
	return Summary{Player: *player, Bets: bets, Wins: wins}, nil
}

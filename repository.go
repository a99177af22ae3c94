package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/gofrs/uuid"
)

type storage struct {
	db *sql.DB
}

// Repo contains methods to interact with the ledger database
type Repo interface {
	CreatePlayer(ctx context.Context, player LedgerPlayer) error
	GetPlayer(ctx context.Context, playerID uuid.UUID) (*LedgerPlayer, error)
	RegisterNewOperation(ctx context.Context, playerID uuid.UUID, update BalanceUpdate, balanceCalc func(int, BalanceUpdate) int) error
	CountOperations(ctx context.Context, playerID uuid.UUID) (total int, wins int, err error)
}

// NewRepo is constructor for db layer accessor
func NewRepo(db *sql.DB) (Repo, error) {
	storage := storage{db: db}
	if err := migrate(storage.db); err != nil {
		return nil, fmt.Errorf("Database migration failed: %w", err)
	}
	return &storage, nil
}

func (st *storage) CreatePlayer(ctx context.Context, player LedgerPlayer) error {
	_, err := st.db.ExecContext(ctx, "INSERT INTO players (id, name, balance) VALUES (?,?,?)", player.ID, player.Name, player.Balance)
	if err != nil {
		return fmt.Errorf("failed to create player %w", err)
	}
	return nil
}

func (st *storage) GetPlayer(ctx context.Context, playerID uuid.UUID) (*LedgerPlayer, error) {
	player := LedgerPlayer{}
	row := st.db.QueryRowContext(ctx, "SELECT id, name, balance FROM players WHERE id = ?", playerID)
	if err := row.Scan(&player.ID, &player.Name, &player.Balance); err != nil {
		return nil, err
	}
	return &player, nil
}

func (st *storage) RegisterNewOperation(ctx context.Context, playerID uuid.UUID, update BalanceUpdate, balanceCalc func(int, BalanceUpdate) int) error {
	tx, err := st.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	var balance int
	Log("Update player %v balance %v", playerID, update)
	row := tx.QueryRowContext(ctx, "SELECT balance FROM players WHERE id = ?", playerID)
	if err = row.Scan(&balance); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to scan player data %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO operations (id, player_id, amount, face, tossed, game_state, prev_balance, created_at) VALUES (?,?,?,?,?,?,?,?)",
		update.ID, playerID, update.Amount, update.Face, update.Tossed, update.Result, balance, time.Now().Unix()); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to register operation %w", err)
	}

	newBalance := balanceCalc(balance, update)
	Log("Set player balance %v", newBalance)

	if _, err := tx.ExecContext(ctx, "UPDATE players SET balance = ? WHERE id = ?", newBalance, playerID); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to update player balance %w", err)
	}
	return tx.Commit()
}

func (st *storage) CountOperations(ctx context.Context, playerID uuid.UUID) (int, int, error) {
	var total, wins int
	row := st.db.QueryRowContext(ctx,
		"SELECT COUNT(*), COALESCE(SUM(CASE WHEN game_state = ? THEN 1 ELSE 0 END), 0) FROM operations WHERE player_id = ?",
		Winning, playerID)
	if err := row.Scan(&total, &wins); err != nil {
		return 0, 0, fmt.Errorf("failed to count operations %w", err)
	}
	return total, wins, nil
}

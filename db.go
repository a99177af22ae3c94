package main

import (
	"database/sql"
	"fmt"

	_ "rsc.io/sqlite"
)

// DbConfig contains necessary for database configuration information
type DbConfig struct {
	Conn   string `yaml:"connectionString"`
	Driver string `yaml:"driver"`
}

var schema = []string{
	"CREATE TABLE IF NOT EXISTS players (id VARCHAR(36) NOT NULL, name TEXT NOT NULL, balance INTEGER NOT NULL DEFAULT 0, PRIMARY KEY (id))",
	"CREATE TABLE IF NOT EXISTS operations (id VARCHAR(36) NOT NULL, player_id VARCHAR(36) NOT NULL, amount INTEGER NOT NULL, face TEXT NOT NULL, tossed TEXT NOT NULL, game_state TEXT NOT NULL, prev_balance INTEGER NOT NULL, created_at BIGINT NOT NULL, PRIMARY KEY (id))",
}

func migrate(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	for _, stmt := range schema {
		if _, err := tx.Exec(stmt); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

// NewDB build sql.DB instance from db config
func NewDB(cfg DbConfig) (*sql.DB, error) {
	Log("open db %v", cfg)
	db, err := sql.Open(cfg.Driver, cfg.Conn)
	if err != nil {
		return nil, fmt.Errorf("Failed to open database: %w", err)
	}
	// every :memory: connection is its own database
	db.SetMaxOpenConns(1)
	return db, nil
}

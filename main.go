package main

import (
	"context"
	"os"
	"time"

	"github.com/gofrs/uuid"
)

func main() {
	cfg, err := loadConfig(os.Args[1:], os.Stderr)
	if err != nil {
		Warn("failed to load configuration %v", err)
		os.Exit(2)
	}
	setupLogger(os.Stderr, cfg.Verbose)

	session, err := uuid.NewV4()
	if err != nil {
		Warn("failed to create session id %v", err)
		os.Exit(1)
	}

	db, err := NewDB(cfg.DB)
	if err != nil {
		Warn("failed to open database connection %v", err)
		os.Exit(1)
	}

	mgr, err := NewStateManager(db)
	if err != nil {
		Warn("failed to initialize state manager %v", err)
		db.Close()
		os.Exit(1)
	}

	seed := cfg.Game.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	Log("session %v seed %v", session, seed)

	ctx := context.Background()
	g := newGame(ctx, mgr, session)
	_, err = Execute(g.program(cfg.Game.Money, NewSequence(seed, tossMin, tossMax)), NewConsole(os.Stdin, os.Stdout))

	// the game only ever stops when input does
	if summary, serr := mgr.Summary(ctx, session); serr == nil {
		Log("session %v ended: %v", session, summary)
	}
	Warn("game stopped: %v", err)
	db.Close()
	os.Exit(1)
}

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// GameConfig contains the starting conditions of a session
type GameConfig struct {
	Money int `yaml:"money"`
	// Seed 0 picks a seed from the clock at startup
	Seed uint64 `yaml:"seed"`
}

type appConfig struct {
	DB      DbConfig   `yaml:"db"`
	Game    GameConfig `yaml:"game"`
	Verbose bool       `yaml:"verbose"`
}

func defaultConfig() appConfig {
	return appConfig{
		DB: DbConfig{
			Conn:   ":memory:",
			Driver: "sqlite3",
		},
		Game: GameConfig{
			Money: 100,
		},
	}
}

// loadConfig layers command line flags over an optional yaml file over
// the defaults.
func loadConfig(args []string, stderr io.Writer) (appConfig, error) {
	fs := flag.NewFlagSet("coinflip", flag.ContinueOnError)
	fs.SetOutput(stderr)
	path := fs.String("config", "", "path to a yaml config file")
	money := fs.Int("money", 0, "starting money (default 100)")
	seed := fs.Uint64("seed", 0, "random seed, 0 seeds from the clock")
	verbose := fs.Bool("v", false, "verbose logging on stderr")
	if err := fs.Parse(args); err != nil {
		return appConfig{}, err
	}

	cfg := defaultConfig()
	if *path != "" {
		data, err := os.ReadFile(*path)
		if err != nil {
			return appConfig{}, fmt.Errorf("reading config %s: %w", *path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return appConfig{}, fmt.Errorf("parsing %s: %w", *path, err)
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "money":
			cfg.Game.Money = *money
		case "seed":
			cfg.Game.Seed = *seed
		case "v":
			cfg.Verbose = *verbose
		}
	})
	return cfg, cfg.validate()
}

func (c appConfig) validate() error {
	if c.DB.Driver == "" {
		return errors.New("db driver must be set")
	}
	if c.DB.Conn == "" {
		return errors.New("db connection string must be set")
	}
	return nil
}

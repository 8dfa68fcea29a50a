package config

import (
	"github.com/hashicorp/go-multierror"

	"github.com/lgbarn/chess-arena-go/internal/engine"
)

// ArenaConfig holds settings for self-play games between automated players.
type ArenaConfig struct {
	// Games is the number of games to play; 0 disables self-play.
	Games int

	// Workers is the number of games played in parallel.
	Workers int

	// MaxPlies ends a game as a draw after this many half-moves.
	MaxPlies int

	// Seed seeds the random players. Game i seeds white with Seed+2i and
	// black with Seed+2i+1.
	Seed int64

	// StartFEN is the starting position; empty means the standard position.
	StartFEN string

	// Player names recorded with each game and used for statistics.
	White string
	Black string
}

// NewArenaConfig creates an ArenaConfig with default values.
func NewArenaConfig() *ArenaConfig {
	return &ArenaConfig{
		Workers:  1,
		MaxPlies: 300,
		Seed:     1,
		White:    "random-white",
		Black:    "random-black",
	}
}

// Validate checks that the arena configuration is valid.
func (a *ArenaConfig) Validate() error {
	var result *multierror.Error
	if a.Games < 0 {
		result = multierror.Append(result, invalid("game count %d is negative", a.Games))
	}
	if a.Workers < 1 {
		result = multierror.Append(result, invalid("workers (%d) must be at least 1", a.Workers))
	}
	if a.MaxPlies < 1 {
		result = multierror.Append(result, invalid("max plies (%d) must be at least 1", a.MaxPlies))
	}
	if a.White == "" || a.Black == "" {
		result = multierror.Append(result, invalid("player names must not be empty"))
	}
	if a.StartFEN != "" {
		if _, err := engine.ParseFEN(a.StartFEN); err != nil {
			result = multierror.Append(result, invalid("start position: %v", err))
		}
	}
	return result.ErrorOrNil()
}

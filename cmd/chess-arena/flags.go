// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chess-arena-go/internal/config"
)

var (
	// Position options
	fenString  = flag.String("fen", "", "Start from this FEN position instead of the standard start")
	moveList   = flag.String("moves", "", "Moves to apply, e.g. \"e2e4 e7e5 g1f3\"")
	showLegal  = flag.Bool("legal", false, "List the legal moves of the side to move")
	hideBoard  = flag.Bool("noboard", false, "Don't draw the board")
	jsonOutput = flag.Bool("J", false, "Output in JSON format")
	outputFile = flag.String("o", "", "Output file (default: stdout)")

	// Self-play options
	selfPlay  = flag.Int("selfplay", 0, "Play N games between random players")
	workers   = flag.Int("workers", 1, "Number of games played in parallel")
	maxPlies  = flag.Int("maxplies", 300, "End self-play games as a draw after N plies")
	seed      = flag.Int64("seed", 1, "Seed for the random players")
	whiteName = flag.String("white", "random-white", "Name recorded for the white player")
	blackName = flag.String("black", "random-black", "Name recorded for the black player")

	// Archive options
	dbDir       = flag.String("db", "", "Archive self-play games in this BadgerDB directory")
	historyN    = flag.Int("history", 0, "List the N most recent archived games")
	statsPlayer = flag.String("stats", "", "Show archived statistics for this player")
	leaderboard = flag.Bool("leaderboard", false, "Show all archived players by rating")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	verbosity = flag.Int("v", 1, "Verbosity: 0 silent, 1 summary, 2 running commentary")
	quiet     = flag.Bool("s", false, "Silent mode (same as -v 0)")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyOutputFlags(cfg)
	applyArenaFlags(cfg)
	applyStoreFlags(cfg)

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
}

// applyOutputFlags configures output settings.
func applyOutputFlags(cfg *config.Config) {
	if *jsonOutput {
		cfg.Output.Format = config.JSONFormat
	}
	cfg.Output.ShowBoard = !*hideBoard
	cfg.Output.ShowLegal = *showLegal
	cfg.Output.HistoryLimit = *historyN
	cfg.Output.Filename = *outputFile
}

// applyArenaFlags configures self-play settings.
func applyArenaFlags(cfg *config.Config) {
	cfg.Arena.Games = *selfPlay
	cfg.Arena.Workers = *workers
	cfg.Arena.MaxPlies = *maxPlies
	cfg.Arena.Seed = *seed
	cfg.Arena.StartFEN = *fenString
	cfg.Arena.White = *whiteName
	cfg.Arena.Black = *blackName
}

// applyStoreFlags configures the archive.
func applyStoreFlags(cfg *config.Config) {
	cfg.Store.Dir = *dbDir
	cfg.Store.StatsPlayer = *statsPlayer
	cfg.Store.Leaderboard = *leaderboard
}

// chess-arena replays and inspects chess positions, plays games between
// automated players and keeps an archive of the results.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/hashicorp/go-multierror"

	"github.com/lgbarn/chess-arena-go/internal/config"
	"github.com/lgbarn/chess-arena-go/internal/store"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-arena version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	logOut := setupLogFile(cfg)
	out := setupOutputFile(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, cfg, *moveList)
	stop()

	if closeErr := closeFiles(out, logOut); err == nil {
		err = closeErr
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags. It
// returns the created file, or nil when logging goes to stderr.
func setupLogFile(cfg *config.Config) *os.File {
	if *logFile == "" {
		return nil
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
	return file
}

// setupOutputFile configures the output file based on command-line flags.
// It returns the created file, or nil when output goes to stdout.
func setupOutputFile(cfg *config.Config) *os.File {
	if cfg.Output.Filename == "" {
		return nil
	}
	file, err := os.Create(cfg.Output.Filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", cfg.Output.Filename, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
	return file
}

// closeFiles closes every non-nil file and reports all failures.
func closeFiles(files ...*os.File) error {
	var result *multierror.Error
	for _, f := range files {
		if f == nil {
			continue
		}
		if err := f.Close(); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}

// run dispatches to the requested modes: self-play, archive listings, and
// otherwise the position after replaying moves.
func run(ctx context.Context, cfg *config.Config, moves string) (err error) {
	var st *store.Store
	if cfg.Store.Enabled() {
		if cfg.Store.InMemory {
			st, err = store.OpenInMemory()
		} else {
			st, err = store.Open(cfg.Store.Dir)
		}
		if err != nil {
			return err
		}
		defer func() {
			if closeErr := st.Close(); err == nil {
				err = closeErr
			}
		}()
	}

	ran := false
	if cfg.Arena.Games > 0 {
		if err := runSelfPlay(ctx, cfg, st); err != nil {
			return err
		}
		ran = true
	}
	if cfg.Output.HistoryLimit > 0 || cfg.Store.Queried() {
		if err := runArchive(cfg, st); err != nil {
			return err
		}
		ran = true
	}
	if !ran || moves != "" {
		return runPosition(cfg, moves)
	}
	return nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-arena [options]\n\n")
	fmt.Fprintf(os.Stderr, "Replays moves, lists legal moves, plays self-play games and\n")
	fmt.Fprintf(os.Stderr, "reports archived results.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  chess-arena -moves \"f2f3 e7e5 g2g4 d8h4\"\n")
	fmt.Fprintf(os.Stderr, "  chess-arena -fen \"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1\" -legal\n")
	fmt.Fprintf(os.Stderr, "  chess-arena -selfplay 100 -workers 4 -db games\n")
	fmt.Fprintf(os.Stderr, "  chess-arena -db games -history 10 -leaderboard\n")
}

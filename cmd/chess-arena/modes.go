package main

import (
	"context"

	"github.com/lgbarn/chess-arena-go/internal/arena"
	"github.com/lgbarn/chess-arena-go/internal/chess"
	"github.com/lgbarn/chess-arena-go/internal/config"
	"github.com/lgbarn/chess-arena-go/internal/errors"
	"github.com/lgbarn/chess-arena-go/internal/game"
	"github.com/lgbarn/chess-arena-go/internal/output"
	"github.com/lgbarn/chess-arena-go/internal/store"
)

// runPosition sets up the start position, applies moves and prints the
// result.
func runPosition(cfg *config.Config, moves string) error {
	session := game.NewSession()
	if cfg.Arena.StartFEN == "" {
		session.New()
	} else if _, err := session.Load(cfg.Arena.StartFEN); err != nil {
		return err
	}

	parsed, err := chess.ParseMoveList(moves)
	if err != nil {
		return err
	}
	for _, m := range parsed {
		result, err := session.ApplyMove(m)
		if err != nil {
			return err
		}
		if result.Checkmate || result.Stalemate {
			cfg.Logf(2, "%s ends the game\n", m)
		}
	}

	s := session.State()
	if cfg.Output.Format == config.JSONFormat {
		return output.WritePositionJSON(cfg.OutputFile, s, cfg.Output.ShowLegal)
	}
	if cfg.Output.ShowBoard {
		output.WritePosition(cfg.OutputFile, s)
	} else {
		output.WriteStatus(cfg.OutputFile, s)
	}
	if cfg.Output.ShowLegal {
		output.WriteLegalMoves(cfg.OutputFile, s)
	}
	return nil
}

// runSelfPlay plays the configured number of games between random players.
func runSelfPlay(ctx context.Context, cfg *config.Config, st *store.Store) error {
	results, _, err := arena.NewRunner(cfg, st).Run(ctx, arena.SelfPlayMatches(cfg))

	w := output.NewRecordWriter(cfg.OutputFile, cfg)
	for _, res := range results {
		if res.Err != nil {
			continue
		}
		if writeErr := w.WriteRecord(res.Record); writeErr != nil {
			return writeErr
		}
	}
	if closeErr := w.Close(); closeErr != nil {
		return closeErr
	}
	if err != nil {
		return err
	}
	return ctx.Err()
}

// runArchive prints the requested listings from the store.
func runArchive(cfg *config.Config, st *store.Store) error {
	if cfg.Output.HistoryLimit > 0 {
		games, err := st.RecentGames(cfg.Output.HistoryLimit)
		if err != nil {
			return err
		}
		if cfg.Output.Format == config.JSONFormat {
			if err := output.WriteJSON(cfg.OutputFile, &output.JSONOutput{Games: games}); err != nil {
				return err
			}
		} else {
			for _, rec := range games {
				output.WriteRecordLine(cfg.OutputFile, rec)
			}
		}
	}

	var stats []*store.Stats
	if cfg.Store.StatsPlayer != "" {
		s, err := st.PlayerStats(cfg.Store.StatsPlayer)
		if err != nil {
			return err
		}
		stats = append(stats, s)
	}
	if cfg.Store.Leaderboard {
		all, err := st.Leaderboard()
		if err != nil {
			return errors.Wrap(err, "leaderboard")
		}
		stats = append(stats, all...)
	}
	if len(stats) == 0 {
		return nil
	}
	if cfg.Output.Format == config.JSONFormat {
		return output.WriteStatsJSON(cfg.OutputFile, stats...)
	}
	output.WriteStats(cfg.OutputFile, stats...)
	return nil
}

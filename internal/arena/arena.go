// Package arena plays games between automated players and archives the
// results.
package arena

import (
	"context"

	"github.com/lgbarn/chess-arena-go/internal/agent"
	"github.com/lgbarn/chess-arena-go/internal/chess"
	"github.com/lgbarn/chess-arena-go/internal/config"
	"github.com/lgbarn/chess-arena-go/internal/engine"
	"github.com/lgbarn/chess-arena-go/internal/errors"
	"github.com/lgbarn/chess-arena-go/internal/game"
)

// StartState returns the arena's starting position: the configured FEN or
// the standard start.
func StartState(cfg *config.Config) (*game.State, error) {
	if cfg.Arena.StartFEN == "" {
		return game.NewGame(), nil
	}
	return game.FromFEN(cfg.Arena.StartFEN)
}

// PlayGame plays white against black until the game ends by checkmate,
// stalemate, insufficient material or the ply limit. A cancelled context
// ends the game between plies with reason "aborted"; the partial record is
// still returned.
func PlayGame(ctx context.Context, cfg *config.Config, white, black agent.Player) (*game.Record, error) {
	s, err := StartState(cfg)
	if err != nil {
		return nil, err
	}
	rec := game.NewRecord(s, white.Name(), black.Name())

	reason, err := playOut(ctx, cfg, s, white, black)
	if err != nil {
		return nil, err
	}
	rec.Finish(s, reason)

	cfg.Logf(2, "%s vs %s: %s, %s after %d plies\n",
		rec.White, rec.Black, rec.Result(), rec.Reason, rec.Plies())
	return rec, nil
}

// playOut drives s to the end of the game and returns the end reason.
func playOut(ctx context.Context, cfg *config.Config, s *game.State, white, black agent.Player) (string, error) {
	startPly := s.MoveCount
	for {
		switch {
		case s.Outcome.Status == engine.Checkmate:
			return game.ReasonCheckmate, nil
		case s.Outcome.Status == engine.Stalemate:
			return game.ReasonStalemate, nil
		case engine.HasInsufficientMaterial(s.Board):
			return game.ReasonInsufficient, nil
		case s.MoveCount-startPly >= cfg.Arena.MaxPlies:
			return game.ReasonMaxPlies, nil
		case ctx.Err() != nil:
			return game.ReasonAborted, nil
		}

		player := white
		if s.Turn == chess.Black {
			player = black
		}

		sel, err := agent.Select(ctx, s, player)
		if err != nil {
			if ctx.Err() != nil {
				return game.ReasonAborted, nil
			}
			return "", errors.Wrapf(err, "%s to move at ply %d", s.Turn, s.MoveCount+1)
		}
		if sel.Reason != "" {
			cfg.Logf(2, "ply %d %s (%s): %s\n", s.MoveCount+1, s.Turn, player.Name(), sel.Reason)
		}

		if _, err := s.ApplyMove(sel.Move); err != nil {
			return "", err
		}
	}
}

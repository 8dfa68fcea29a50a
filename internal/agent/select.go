package agent

import (
	"context"
	"fmt"

	"github.com/lgbarn/chess-arena-go/internal/chess"
	"github.com/lgbarn/chess-arena-go/internal/errors"
	"github.com/lgbarn/chess-arena-go/internal/game"
	"github.com/lgbarn/chess-arena-go/internal/repetition"
)

// Selection is the move to play for the side to move and how it was chosen.
type Selection struct {
	Move chess.Move
	// Substituted is true when the player's own move was replaced.
	Substituted bool
	// Reason explains a substitution or an allowed flagged move.
	Reason string
}

// Select asks the player for a move and returns one that is legal in s.
//   - A player error or a move outside the legal set is replaced by the
//     first legal move the repetition guard does not flag (or the first
//     legal move when all are flagged).
//   - A legal move that undoes the mover's own previous move or recreates
//     a position a third time is replaced by the first unflagged legal
//     move, or by the first legal move when every move is flagged.
//
// Select returns ErrGameOver when the side to move has no legal move, and
// the context's error when ctx is done. s is not modified.
func Select(ctx context.Context, s *game.State, player Player) (Selection, error) {
	legal := s.LegalMovesForSide(s.Turn)
	if len(legal) == 0 {
		return Selection{}, errors.ErrGameOver
	}

	chosen, err := player.ChooseMove(ctx, BuildView(s))
	if ctxErr := ctx.Err(); ctxErr != nil {
		return Selection{}, ctxErr
	}

	last := OwnLastMove(s)
	if err != nil {
		fallback, _ := repetition.Prefer(s.Board, s.Castling, legal, last, s.History)
		return Selection{
			Move:        fallback,
			Substituted: true,
			Reason:      fmt.Sprintf("%s failed: %v", player.Name(), err),
		}, nil
	}

	move, ok := findLegal(legal, chosen)
	if !ok {
		fallback, _ := repetition.Prefer(s.Board, s.Castling, legal, last, s.History)
		return Selection{
			Move:        fallback,
			Substituted: true,
			Reason:      fmt.Sprintf("%s chose illegal move %s", player.Name(), chosen),
		}, nil
	}

	flag := repetition.Check(s.Board, s.Castling, move, last, s.History)
	if flag == repetition.None {
		return Selection{Move: move}, nil
	}

	alt, _ := repetition.Prefer(s.Board, s.Castling, legal, last, s.History)
	sel := Selection{Move: alt, Substituted: alt != move}
	if repetition.Check(s.Board, s.Castling, alt, last, s.History) == repetition.None {
		sel.Reason = fmt.Sprintf("avoided %s %s", flag, move)
	} else {
		sel.Reason = fmt.Sprintf("every move flagged, playing %s", alt)
	}
	return sel, nil
}

// OwnLastMove returns the previous move of the side to move, or nil if it
// has not moved yet.
func OwnLastMove(s *game.State) *chess.Move {
	if len(s.Moves) < 2 {
		return nil
	}
	m := s.Moves[len(s.Moves)-2]
	return &m
}

// findLegal matches a chosen move against the legal list by squares and
// keeps the chosen promotion.
func findLegal(legal []chess.Move, chosen chess.Move) (chess.Move, bool) {
	for _, m := range legal {
		if m.From == chosen.From && m.To == chosen.To {
			m.Promotion = chosen.Promotion
			return m, true
		}
	}
	return chess.Move{}, false
}

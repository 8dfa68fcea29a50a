// Package agent connects automated move choosers to a game: it builds the
// view a player sees, asks the player for a move and substitutes a legal
// one when the answer cannot be played.
package agent

import (
	"encoding/json"

	"github.com/lgbarn/chess-arena-go/internal/chess"
	"github.com/lgbarn/chess-arena-go/internal/game"
)

// MovePair is a legal move as algebraic from/to squares.
type MovePair struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// View is everything a player is shown when asked for a move.
type View struct {
	Turn         string     `json:"turn"`
	Board        [][]string `json:"board_array"`
	LegalMoves   []MovePair `json:"legal_moves"`
	InCheck      bool       `json:"in_check"`
	OpponentKing string     `json:"opponent_king,omitempty"`
	LastMove     string     `json:"last_move,omitempty"`
	MoveCount    int        `json:"move_count"`
}

// BuildView describes the state from the side to move's point of view.
func BuildView(s *game.State) View {
	v := View{
		Turn:      s.Turn.String(),
		Board:     s.Board.Array(),
		InCheck:   s.InCheck,
		MoveCount: s.MoveCount,
	}
	for _, m := range s.LegalMovesForSide(s.Turn) {
		v.LegalMoves = append(v.LegalMoves, MovePair{From: m.From.String(), To: m.To.String()})
	}
	if sq, ok := s.Board.FindKing(s.Turn.Opposite()); ok {
		v.OpponentKing = sq.String()
	}
	if s.LastMove != nil {
		v.LastMove = s.LastMove.String()
	}
	return v
}

// JSON renders the view for prompt builders.
func (v View) JSON() ([]byte, error) {
	return json.Marshal(v)
}

// Moves returns the legal moves of the view as chess moves.
func (v View) Moves() []chess.Move {
	moves := make([]chess.Move, 0, len(v.LegalMoves))
	for _, p := range v.LegalMoves {
		from, err := chess.ParseSquare(p.From)
		if err != nil {
			continue
		}
		to, err := chess.ParseSquare(p.To)
		if err != nil {
			continue
		}
		moves = append(moves, chess.NewMove(from, to))
	}
	return moves
}

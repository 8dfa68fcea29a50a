package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-arena-go/internal/errors"
)

// Move is a from/to pair with an optional promotion kind. NoKind as the
// promotion means "use the default" when a pawn reaches the last rank.
type Move struct {
	From      Square
	To        Square
	Promotion Kind
}

// NewMove creates a move without a promotion choice.
func NewMove(from, to Square) Move {
	return Move{From: from, To: to}
}

// String returns the move in long algebraic form, e.g. "e2e4" or "a7a8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != NoKind {
		s += strings.ToLower(string(m.Promotion.Letter()))
	}
	return s
}

// Reverses reports whether m moves a piece straight back along other.
func (m Move) Reverses(other Move) bool {
	return m.From == other.To && m.To == other.From
}

// ParseMove parses long algebraic notation: "e2e4", "e2-e4" or "a7a8q".
// A trailing promotion letter of any case is accepted.
func ParseMove(text string) (Move, error) {
	text = strings.ReplaceAll(strings.TrimSpace(text), "-", "")
	if len(text) != 4 && len(text) != 5 {
		return Move{}, fmt.Errorf("move %q: %w", text, errors.ErrInvalidSquare)
	}
	from, err := ParseSquare(text[0:2])
	if err != nil {
		return Move{}, err
	}
	to, err := ParseSquare(text[2:4])
	if err != nil {
		return Move{}, err
	}
	move := Move{From: from, To: to}
	if len(text) == 5 {
		move.Promotion = KindFromLetter(text[4])
	}
	return move, nil
}

// ParseMoveList parses a whitespace-separated list of long algebraic moves.
func ParseMoveList(text string) ([]Move, error) {
	fields := strings.Fields(text)
	moves := make([]Move, 0, len(fields))
	for _, f := range fields {
		m, err := ParseMove(f)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

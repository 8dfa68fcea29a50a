package engine

import "github.com/lgbarn/chess-arena-go/internal/chess"

// Status is the terminal state of a position for the side to move.
type Status int

const (
	Ongoing Status = iota
	Checkmate
	Stalemate
)

// String returns the lower-case name of a status.
func (s Status) String() string {
	switch s {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	}
	return "ongoing"
}

// Evaluation is the result of Evaluate.
type Evaluation struct {
	Status  Status
	InCheck bool
}

// Evaluate determines whether colour is in check and whether it is
// checkmated or stalemated. It enumerates the colour's moves once; call it
// once per applied half-move.
func Evaluate(board *chess.Board, rights chess.CastlingRights, colour chess.Colour) Evaluation {
	eval := Evaluation{InCheck: IsInCheck(board, colour)}
	if HasLegalMoves(board, rights, colour) {
		return eval
	}
	if eval.InCheck {
		eval.Status = Checkmate
	} else {
		eval.Status = Stalemate
	}
	return eval
}

// IsCheckmate returns true if colour is in check and has no legal move.
func IsCheckmate(board *chess.Board, rights chess.CastlingRights, colour chess.Colour) bool {
	return IsInCheck(board, colour) && !HasLegalMoves(board, rights, colour)
}

// IsStalemate returns true if colour is not in check and has no legal move.
func IsStalemate(board *chess.Board, rights chess.CastlingRights, colour chess.Colour) bool {
	return !IsInCheck(board, colour) && !HasLegalMoves(board, rights, colour)
}

package engine

import (
	"github.com/lgbarn/chess-arena-go/internal/chess"
	"github.com/lgbarn/chess-arena-go/internal/errors"
)

// LegalMoves returns the pseudo-legal destinations of the piece on sq that
// do not leave its own king attacked. Candidates are tried on a scratch
// copy with apply-and-undo; the caller's board is not modified.
func LegalMoves(board *chess.Board, rights chess.CastlingRights, sq chess.Square) []chess.Square {
	piece := board.Get(sq)
	if piece.IsEmpty() {
		return nil
	}
	pseudo := PseudoLegalMoves(board, rights, sq)
	if len(pseudo) == 0 {
		return nil
	}

	scratch := board.Copy()
	var legal []chess.Square
	for _, to := range pseudo {
		if keepsKingSafe(scratch, rights, chess.NewMove(sq, to), piece.Colour) {
			legal = append(legal, to)
		}
	}
	return legal
}

// LegalMovesForSide returns every legal move of the colour, scanning the
// board in row-major order (a8 first) and each piece's destinations in
// generation order.
func LegalMovesForSide(board *chess.Board, rights chess.CastlingRights, colour chess.Colour) []chess.Move {
	scratch := board.Copy()
	var moves []chess.Move
	for _, from := range board.Occupied(colour) {
		for _, to := range PseudoLegalMoves(board, rights, from) {
			move := chess.NewMove(from, to)
			if keepsKingSafe(scratch, rights, move, colour) {
				moves = append(moves, move)
			}
		}
	}
	return moves
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(board *chess.Board, rights chess.CastlingRights, colour chess.Colour) bool {
	scratch := board.Copy()
	for _, from := range board.Occupied(colour) {
		for _, to := range PseudoLegalMoves(board, rights, from) {
			if keepsKingSafe(scratch, rights, chess.NewMove(from, to), colour) {
				return true
			}
		}
	}
	return false
}

// CheckMove classifies a candidate move without modifying the board:
// nil if legal, ErrNoPiece for an empty source, ErrIllegalMove when the
// destination is not reachable by the piece's movement rule, and
// ErrKingExposed when it is reachable but leaves the mover's king attacked.
// Turn order is the caller's concern.
func CheckMove(board *chess.Board, rights chess.CastlingRights, move chess.Move) error {
	piece := board.Get(move.From)
	if piece.IsEmpty() {
		return errors.ErrNoPiece
	}

	reachable := false
	for _, to := range PseudoLegalMoves(board, rights, move.From) {
		if to == move.To {
			reachable = true
			break
		}
	}
	if !reachable {
		return errors.ErrIllegalMove
	}

	if !keepsKingSafe(board.Copy(), rights, move, piece.Colour) {
		return errors.ErrKingExposed
	}
	return nil
}

// keepsKingSafe applies move to scratch, tests the mover's king and takes
// the move back. scratch is left as it was found.
func keepsKingSafe(scratch *chess.Board, rights chess.CastlingRights, move chess.Move, colour chess.Colour) bool {
	u := MakeMove(scratch, &rights, move)
	safe := !IsInCheck(scratch, colour)
	UnmakeMove(scratch, &rights, u)
	return safe
}

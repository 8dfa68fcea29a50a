// Package engine provides chess move generation, legality checking and game status.
package engine

import "github.com/lgbarn/chess-arena-go/internal/chess"

// Direction and offset tables as (row, col) deltas.
var (
	straightDirs = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	diagonalDirs = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	queenDirs    = append(append([][2]int{}, straightDirs...), diagonalDirs...)
	knightJumps  = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingSteps    = queenDirs
)

// PseudoLegalMoves returns the destinations the piece on sq can reach by its
// movement rule, ignoring whether the mover's own king would be left in
// check. Castling destinations are included when the rights and the
// emptiness/attack conditions allow. An empty square yields nil.
func PseudoLegalMoves(board *chess.Board, rights chess.CastlingRights, sq chess.Square) []chess.Square {
	piece := board.Get(sq)
	if piece.IsEmpty() {
		return nil
	}

	switch piece.Kind {
	case chess.Pawn:
		return pawnMoves(board, sq, piece.Colour)
	case chess.Knight:
		return leaperMoves(board, sq, piece.Colour, knightJumps)
	case chess.Bishop:
		return sliderMoves(board, sq, piece.Colour, diagonalDirs)
	case chess.Rook:
		return sliderMoves(board, sq, piece.Colour, straightDirs)
	case chess.Queen:
		return sliderMoves(board, sq, piece.Colour, queenDirs)
	case chess.King:
		moves := leaperMoves(board, sq, piece.Colour, kingSteps)
		return append(moves, castlingDestinations(board, rights, sq, piece.Colour)...)
	}
	return nil
}

// pawnMoves generates pushes and diagonal captures. There is no en passant.
func pawnMoves(board *chess.Board, from chess.Square, colour chess.Colour) []chess.Square {
	var moves []chess.Square
	dir := chess.PawnDirection(colour)

	one := from.Offset(dir, 0)
	if one.Valid() && board.Get(one).IsEmpty() {
		moves = append(moves, one)
		if from.Row == chess.PawnStartRow(colour) {
			two := from.Offset(2*dir, 0)
			if board.Get(two).IsEmpty() {
				moves = append(moves, two)
			}
		}
	}

	for _, dc := range []int{-1, 1} {
		to := from.Offset(dir, dc)
		if !to.Valid() {
			continue
		}
		target := board.Get(to)
		if !target.IsEmpty() && target.Colour != colour {
			moves = append(moves, to)
		}
	}
	return moves
}

// leaperMoves generates fixed-offset moves onto empty or enemy squares.
func leaperMoves(board *chess.Board, from chess.Square, colour chess.Colour, offsets [][2]int) []chess.Square {
	var moves []chess.Square
	for _, off := range offsets {
		to := from.Offset(off[0], off[1])
		if !to.Valid() {
			continue
		}
		target := board.Get(to)
		if target.IsEmpty() || target.Colour != colour {
			moves = append(moves, to)
		}
	}
	return moves
}

// sliderMoves walks each direction until blocked. An enemy blocker is
// included as a capture, a friendly one is not.
func sliderMoves(board *chess.Board, from chess.Square, colour chess.Colour, dirs [][2]int) []chess.Square {
	var moves []chess.Square
	for _, dir := range dirs {
		to := from.Offset(dir[0], dir[1])
		for to.Valid() {
			target := board.Get(to)
			if !target.IsEmpty() {
				if target.Colour != colour {
					moves = append(moves, to)
				}
				break // Blocked
			}
			moves = append(moves, to)
			to = to.Offset(dir[0], dir[1])
		}
	}
	return moves
}

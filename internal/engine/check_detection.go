package engine

import "github.com/lgbarn/chess-arena-go/internal/chess"

// AttackSquares returns every square the piece on sq threatens to capture
// on. Pawns attack diagonally forward only; sliders attack along full rays
// up to and including the first occupied square whatever its colour;
// knights and kings attack their fixed offsets. Castling destinations are
// never attacks. An empty square yields nil.
func AttackSquares(board *chess.Board, sq chess.Square) []chess.Square {
	piece := board.Get(sq)
	if piece.IsEmpty() {
		return nil
	}

	switch piece.Kind {
	case chess.Pawn:
		dir := chess.PawnDirection(piece.Colour)
		var attacks []chess.Square
		for _, dc := range []int{-1, 1} {
			if to := sq.Offset(dir, dc); to.Valid() {
				attacks = append(attacks, to)
			}
		}
		return attacks
	case chess.Knight:
		return offsetAttacks(sq, knightJumps)
	case chess.King:
		return offsetAttacks(sq, kingSteps)
	case chess.Bishop:
		return rayAttacks(board, sq, diagonalDirs)
	case chess.Rook:
		return rayAttacks(board, sq, straightDirs)
	case chess.Queen:
		return rayAttacks(board, sq, queenDirs)
	}
	return nil
}

// offsetAttacks returns the on-board squares at the given offsets.
func offsetAttacks(from chess.Square, offsets [][2]int) []chess.Square {
	attacks := make([]chess.Square, 0, len(offsets))
	for _, off := range offsets {
		if to := from.Offset(off[0], off[1]); to.Valid() {
			attacks = append(attacks, to)
		}
	}
	return attacks
}

// rayAttacks returns the squares along each direction up to the first blocker.
func rayAttacks(board *chess.Board, from chess.Square, dirs [][2]int) []chess.Square {
	var attacks []chess.Square
	for _, dir := range dirs {
		to := from.Offset(dir[0], dir[1])
		for to.Valid() {
			attacks = append(attacks, to)
			if !board.Get(to).IsEmpty() {
				break // Blocked
			}
			to = to.Offset(dir[0], dir[1])
		}
	}
	return attacks
}

// IsSquareAttacked returns true if any piece of byColour attacks the square.
func IsSquareAttacked(board *chess.Board, target chess.Square, byColour chess.Colour) bool {
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Squares[row][col]
			if piece.IsEmpty() || piece.Colour != byColour {
				continue
			}
			for _, sq := range AttackSquares(board, chess.Sq(row, col)) {
				if sq == target {
					return true
				}
			}
		}
	}
	return false
}

// IsInCheck returns true if the given colour's king is attacked.
// A board without that colour's king cannot arise in play; it reports false.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	kingSq, ok := board.FindKing(colour)
	if !ok {
		return false // No king found
	}
	return IsSquareAttacked(board, kingSq, colour.Opposite())
}

package engine

import "github.com/lgbarn/chess-arena-go/internal/chess"

// castlingDestinations returns the king squares reachable by castling from
// kingSq. Each side requires: the right still held, the own rook on its home
// corner, every square between king and rook empty, the king not in check,
// and neither the square the king crosses nor its destination attacked.
func castlingDestinations(board *chess.Board, rights chess.CastlingRights, kingSq chess.Square, colour chess.Colour) []chess.Square {
	if kingSq != chess.KingHome(colour) {
		return nil
	}
	if !rights.Has(colour, true) && !rights.Has(colour, false) {
		return nil
	}

	enemy := colour.Opposite()
	if IsSquareAttacked(board, kingSq, enemy) {
		return nil
	}

	var dests []chess.Square
	for _, kingside := range []bool{true, false} {
		if !rights.Has(colour, kingside) {
			continue
		}
		if !board.Get(chess.RookHome(colour, kingside)).Is(chess.Rook, colour) {
			continue
		}
		if !castlingPathEmpty(board, colour, kingside) {
			continue
		}

		row := chess.HomeRow(colour)
		transit, dest := chess.Sq(row, chess.KingsideRookTo), chess.Sq(row, chess.KingsideKingCol)
		if !kingside {
			transit, dest = chess.Sq(row, chess.QueensideRookTo), chess.Sq(row, chess.QueensideKingCol)
		}
		if IsSquareAttacked(board, transit, enemy) || IsSquareAttacked(board, dest, enemy) {
			continue
		}
		dests = append(dests, dest)
	}
	return dests
}

// castlingPathEmpty checks that every square strictly between king and rook is empty.
func castlingPathEmpty(board *chess.Board, colour chess.Colour, kingside bool) bool {
	row := chess.HomeRow(colour)
	lo, hi := chess.QueensideRookCol+1, chess.KingHomeCol-1
	if kingside {
		lo, hi = chess.KingHomeCol+1, chess.KingsideRookCol-1
	}
	for col := lo; col <= hi; col++ {
		if !board.Get(chess.Sq(row, col)).IsEmpty() {
			return false
		}
	}
	return true
}

// isCastlingMove reports whether moving piece from -> to is a castling move,
// and on which side.
func isCastlingMove(piece chess.Piece, from, to chess.Square) (castle, kingside bool) {
	if piece.Kind != chess.King || from != chess.KingHome(piece.Colour) || to.Row != from.Row {
		return false, false
	}
	switch to.Col {
	case chess.KingsideKingCol:
		return true, true
	case chess.QueensideKingCol:
		return true, false
	}
	return false, false
}

// UpdateCastlingRights applies the one-way castling transitions for a move of
// moved from -> to that captured captured (NoPiece if none):
//   - a king leaving its home square loses both rights of its colour;
//   - a rook leaving a home corner loses that corner's right;
//   - a rook captured on its own home corner loses that corner's right.
//
// No transition ever grants a right.
func UpdateCastlingRights(rights *chess.CastlingRights, moved chess.Piece, from chess.Square, captured chess.Piece, to chess.Square) {
	if moved.Kind == chess.King && from == chess.KingHome(moved.Colour) {
		rights.RevokeAll(moved.Colour)
	}

	for _, kingside := range []bool{true, false} {
		if moved.Kind == chess.Rook && from == chess.RookHome(moved.Colour, kingside) {
			rights.Revoke(moved.Colour, kingside)
		}
		if captured.Kind == chess.Rook && to == chess.RookHome(captured.Colour, kingside) {
			rights.Revoke(captured.Colour, kingside)
		}
	}
}

package engine

import "github.com/lgbarn/chess-arena-go/internal/chess"

// Undo records everything needed to take back a move applied with MakeMove.
type Undo struct {
	Move     chess.Move
	Moved    chess.Piece // Piece that stood on Move.From
	Captured chess.Piece // NoPiece if the move was not a capture
	Promoted chess.Kind  // NoKind unless a pawn promoted

	// Rook relocation for castling moves.
	Castled  bool
	Kingside bool
	RookFrom chess.Square
	RookTo   chess.Square

	PriorRights chess.CastlingRights
}

// PromotionKind returns the kind a pawn promotes to for a requested kind:
// the request itself when it is a knight, bishop, rook or queen, otherwise
// a queen.
func PromotionKind(requested chess.Kind) chess.Kind {
	if requested.IsPromotable() {
		return requested
	}
	return chess.Queen
}

// MakeMove applies move to the board without validating it, relocating the
// rook on castling, promoting pawns on the last rank and updating rights.
// The returned Undo restores the previous state via UnmakeMove.
func MakeMove(board *chess.Board, rights *chess.CastlingRights, move chess.Move) Undo {
	moved := board.Get(move.From)
	captured := board.Get(move.To)
	u := Undo{
		Move:        move,
		Moved:       moved,
		Captured:    captured,
		PriorRights: *rights,
	}

	board.Set(move.From, chess.NoPiece)
	board.Set(move.To, moved)

	if castle, kingside := isCastlingMove(moved, move.From, move.To); castle {
		row := chess.HomeRow(moved.Colour)
		u.Castled = true
		u.Kingside = kingside
		u.RookFrom = chess.RookHome(moved.Colour, kingside)
		u.RookTo = chess.Sq(row, chess.QueensideRookTo)
		if kingside {
			u.RookTo = chess.Sq(row, chess.KingsideRookTo)
		}
		board.Set(u.RookTo, board.Get(u.RookFrom))
		board.Set(u.RookFrom, chess.NoPiece)
	}

	if moved.Kind == chess.Pawn && move.To.Row == chess.PromotionRow(moved.Colour) {
		u.Promoted = PromotionKind(move.Promotion)
		board.Set(move.To, chess.Piece{Kind: u.Promoted, Colour: moved.Colour})
	}

	UpdateCastlingRights(rights, moved, move.From, captured, move.To)
	return u
}

// UnmakeMove reverts a move applied by MakeMove.
func UnmakeMove(board *chess.Board, rights *chess.CastlingRights, u Undo) {
	if u.Castled {
		board.Set(u.RookFrom, board.Get(u.RookTo))
		board.Set(u.RookTo, chess.NoPiece)
	}
	board.Set(u.Move.From, u.Moved)
	board.Set(u.Move.To, u.Captured)
	*rights = u.PriorRights
}

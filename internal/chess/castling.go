package chess

// CastlingRights holds the four castling flags of one game. Flags only ever
// go from true to false.
type CastlingRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// AllCastlingRights returns the rights at the start of a game.
func AllCastlingRights() CastlingRights {
	return CastlingRights{
		WhiteKingside:  true,
		WhiteQueenside: true,
		BlackKingside:  true,
		BlackQueenside: true,
	}
}

// Has reports whether the colour may still castle on the given side.
func (r CastlingRights) Has(colour Colour, kingside bool) bool {
	switch {
	case colour == White && kingside:
		return r.WhiteKingside
	case colour == White:
		return r.WhiteQueenside
	case kingside:
		return r.BlackKingside
	default:
		return r.BlackQueenside
	}
}

// Revoke clears one flag.
func (r *CastlingRights) Revoke(colour Colour, kingside bool) {
	switch {
	case colour == White && kingside:
		r.WhiteKingside = false
	case colour == White:
		r.WhiteQueenside = false
	case kingside:
		r.BlackKingside = false
	default:
		r.BlackQueenside = false
	}
}

// RevokeAll clears both flags of the colour.
func (r *CastlingRights) RevokeAll(colour Colour) {
	r.Revoke(colour, true)
	r.Revoke(colour, false)
}

// String returns the rights in FEN form ("KQkq", "-" when none remain).
func (r CastlingRights) String() string {
	var s []byte
	if r.WhiteKingside {
		s = append(s, 'K')
	}
	if r.WhiteQueenside {
		s = append(s, 'Q')
	}
	if r.BlackKingside {
		s = append(s, 'k')
	}
	if r.BlackQueenside {
		s = append(s, 'q')
	}
	if len(s) == 0 {
		return "-"
	}
	return string(s)
}

// Castling geometry for the standard starting array.
const (
	KingHomeCol      = 4
	KingsideRookCol  = 7
	QueensideRookCol = 0
	KingsideKingCol  = 6
	QueensideKingCol = 2
	KingsideRookTo   = 5
	QueensideRookTo  = 3
)

// KingHome returns the king's starting square for the colour.
func KingHome(colour Colour) Square {
	return Square{Row: HomeRow(colour), Col: KingHomeCol}
}

// RookHome returns the starting square of the colour's rook on the given side.
func RookHome(colour Colour, kingside bool) Square {
	if kingside {
		return Square{Row: HomeRow(colour), Col: KingsideRookCol}
	}
	return Square{Row: HomeRow(colour), Col: QueensideRookCol}
}

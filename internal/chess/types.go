// Package chess provides core chess types: colours, pieces, squares, moves and the board.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the lower-case name of a colour.
func (c Colour) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// ParseColour converts "white"/"w" or "black"/"b" to a Colour.
func ParseColour(s string) (Colour, bool) {
	switch s {
	case "white", "w", "White":
		return White, true
	case "black", "b", "Black":
		return Black, true
	}
	return White, false
}

// PawnDirection returns the row delta of a pawn push for the colour.
// Row 0 is rank 8, so white pawns move towards lower rows.
func PawnDirection(colour Colour) int {
	if colour == White {
		return -1
	}
	return 1
}

// HomeRow returns the back-rank row of the colour.
func HomeRow(colour Colour) int {
	if colour == White {
		return 7
	}
	return 0
}

// PawnStartRow returns the row pawns of the colour start on.
func PawnStartRow(colour Colour) int {
	if colour == White {
		return 6
	}
	return 1
}

// PromotionRow returns the row on which pawns of the colour promote.
func PromotionRow(colour Colour) int {
	return HomeRow(colour.Opposite())
}

// Kind represents a chess piece type.
type Kind int

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the name of a kind.
func (k Kind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the upper-case letter of a kind, or '.' for NoKind.
func (k Kind) Letter() byte {
	letters := []byte{'.', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// KindFromLetter converts a piece letter of either case to a Kind.
func KindFromLetter(c byte) Kind {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	}
	return NoKind
}

// IsPromotable reports whether a pawn may promote to the kind.
func (k Kind) IsPromotable() bool {
	switch k {
	case Knight, Bishop, Rook, Queen:
		return true
	}
	return false
}

// Piece is a kind tagged with its colour. The zero value is an empty cell.
type Piece struct {
	Kind   Kind
	Colour Colour
}

// NoPiece is an empty cell.
var NoPiece = Piece{}

// W creates a white piece.
func W(kind Kind) Piece {
	return Piece{Kind: kind, Colour: White}
}

// B creates a black piece.
func B(kind Kind) Piece {
	return Piece{Kind: kind, Colour: Black}
}

// IsEmpty reports whether the cell holds no piece.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoKind
}

// Is reports whether the piece has the given kind and colour.
func (p Piece) Is(kind Kind, colour Colour) bool {
	return p.Kind == kind && p.Colour == colour
}

// Letter returns the case-sensitive letter of the piece: upper case for
// white, lower case for black, '.' for an empty cell.
func (p Piece) Letter() byte {
	letter := p.Kind.Letter()
	if p.Kind != NoKind && p.Colour == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns the piece letter as a string.
func (p Piece) String() string {
	return string(p.Letter())
}

// PieceFromLetter converts a case-sensitive piece letter to a Piece.
// Unknown letters (including '.') yield NoPiece.
func PieceFromLetter(c byte) Piece {
	kind := KindFromLetter(c)
	if kind == NoKind {
		return NoPiece
	}
	if c >= 'a' && c <= 'z' {
		return B(kind)
	}
	return W(kind)
}

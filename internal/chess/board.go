package chess

import "strings"

// Board is an 8x8 grid of pieces. Squares[row][col] with row 0 = rank 8.
// A Board is plain data: move rules live in the engine package.
type Board struct {
	Squares [BoardSize][BoardSize]Piece
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	return &Board{}
}

// backRank is the piece order of both back ranks, a-file first.
var backRank = [BoardSize]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewInitialBoard creates a board holding the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition clears the board and sets up the starting position.
func (b *Board) SetupInitialPosition() {
	b.Clear()
	for col := 0; col < BoardSize; col++ {
		b.Squares[0][col] = B(backRank[col])
		b.Squares[1][col] = B(Pawn)
		b.Squares[6][col] = W(Pawn)
		b.Squares[7][col] = W(backRank[col])
	}
}

// Clear empties every square.
func (b *Board) Clear() {
	b.Squares = [BoardSize][BoardSize]Piece{}
}

// Get returns the piece on the square. Off-board squares read as empty.
func (b *Board) Get(sq Square) Piece {
	if !sq.Valid() {
		return NoPiece
	}
	return b.Squares[sq.Row][sq.Col]
}

// Set places a piece on the square. Off-board squares are ignored.
func (b *Board) Set(sq Square, piece Piece) {
	if sq.Valid() {
		b.Squares[sq.Row][sq.Col] = piece
	}
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// FindKing returns the square of the colour's king. ok is false when the
// board holds no such king.
func (b *Board) FindKing(colour Colour) (sq Square, ok bool) {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.Squares[row][col].Is(King, colour) {
				return Square{Row: row, Col: col}, true
			}
		}
	}
	return Square{}, false
}

// Occupied returns the squares holding pieces of the colour in row-major order.
func (b *Board) Occupied(colour Colour) []Square {
	var squares []Square
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			p := b.Squares[row][col]
			if !p.IsEmpty() && p.Colour == colour {
				squares = append(squares, Square{Row: row, Col: col})
			}
		}
	}
	return squares
}

// Count returns how many pieces of the kind and colour are on the board.
func (b *Board) Count(kind Kind, colour Colour) int {
	n := 0
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.Squares[row][col].Is(kind, colour) {
				n++
			}
		}
	}
	return n
}

// Canonical returns the 64-character placement string used for repetition
// bookkeeping: rows from rank 8 down, '.' for empty cells, upper case for
// white and lower case for black pieces.
func (b *Board) Canonical() string {
	var sb strings.Builder
	sb.Grow(BoardSize * BoardSize)
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			sb.WriteByte(b.Squares[row][col].Letter())
		}
	}
	return sb.String()
}

// Array returns the board as rows of single-letter strings ("." for empty).
func (b *Board) Array() [][]string {
	rows := make([][]string, BoardSize)
	for row := 0; row < BoardSize; row++ {
		rows[row] = make([]string, BoardSize)
		for col := 0; col < BoardSize; col++ {
			rows[row][col] = b.Squares[row][col].String()
		}
	}
	return rows
}

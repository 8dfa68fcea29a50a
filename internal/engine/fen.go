package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/lgbarn/chess-arena-go/internal/chess"
	"github.com/lgbarn/chess-arena-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Position is a board together with the side to move and castling rights,
// as read from or written to FEN. The en passant field is accepted on input
// and always written as "-".
type Position struct {
	Board         *chess.Board
	ToMove        chess.Colour
	Castling      chess.CastlingRights
	HalfmoveClock int
	MoveNumber    int
}

// ParseFEN parses a FEN string. Only the placement field is required; the
// side to move defaults to white, castling to none and the clocks to 0 1.
// The resulting board is checked with ValidateBoard, and the side that has
// just moved must not be left in check.
func ParseFEN(fen string) (*Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	pos := &Position{Board: chess.NewBoard(), MoveNumber: 1}
	if err := parsePlacement(pos.Board, parts[0]); err != nil {
		return nil, err
	}

	if len(parts) >= 2 {
		switch parts[1] {
		case "w":
			pos.ToMove = chess.White
		case "b":
			pos.ToMove = chess.Black
		default:
			return nil, fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
		}
	}

	if len(parts) >= 3 {
		rights, err := parseCastling(parts[2])
		if err != nil {
			return nil, err
		}
		pos.Castling = rights
	}

	if len(parts) >= 5 {
		n, err := strconv.Atoi(parts[4])
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid halfmove clock: %s: %w", parts[4], errors.ErrInvalidFEN)
		}
		pos.HalfmoveClock = n
	}
	if len(parts) >= 6 {
		n, err := strconv.Atoi(parts[5])
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid move number: %s: %w", parts[5], errors.ErrInvalidFEN)
		}
		pos.MoveNumber = n
	}

	if err := ValidateBoard(pos.Board); err != nil {
		return nil, err
	}
	if idle := pos.ToMove.Opposite(); IsInCheck(pos.Board, idle) {
		return nil, fmt.Errorf("%s is in check with %s to move: %w", idle, pos.ToMove, errors.ErrInvalidFEN)
	}
	return pos, nil
}

// parsePlacement parses the piece placement field, rank 8 first.
func parsePlacement(board *chess.Board, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != chess.BoardSize {
		return fmt.Errorf("expected %d ranks, got %d: %w", chess.BoardSize, len(ranks), errors.ErrInvalidFEN)
	}

	for row, rank := range ranks {
		col := 0
		for i := 0; i < len(rank); i++ {
			c := rank[i]
			if c >= '1' && c <= '8' {
				col += int(c - '0')
				continue
			}
			piece := chess.PieceFromLetter(c)
			if piece.IsEmpty() {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			if col >= chess.BoardSize {
				return fmt.Errorf("rank %d overflows: %w", chess.BoardSize-row, errors.ErrInvalidFEN)
			}
			board.Set(chess.Sq(row, col), piece)
			col++
		}
		if col != chess.BoardSize {
			return fmt.Errorf("rank %d has %d squares: %w", chess.BoardSize-row, col, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseCastling parses the castling availability field.
func parseCastling(field string) (chess.CastlingRights, error) {
	var rights chess.CastlingRights
	if field == "-" {
		return rights, nil
	}
	for _, c := range field {
		switch c {
		case 'K':
			rights.WhiteKingside = true
		case 'Q':
			rights.WhiteQueenside = true
		case 'k':
			rights.BlackKingside = true
		case 'q':
			rights.BlackQueenside = true
		default:
			return rights, fmt.Errorf("invalid castling field: %s: %w", field, errors.ErrInvalidFEN)
		}
	}
	return rights, nil
}

// ValidateBoard reports every structural problem with a board: each side
// needs exactly one king and no pawn may stand on the first or last rank.
// All problems are collected and each matches ErrInvalidFEN.
func ValidateBoard(board *chess.Board) error {
	var result *multierror.Error

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if n := board.Count(chess.King, colour); n != 1 {
			result = multierror.Append(result,
				fmt.Errorf("%s has %d kings: %w", colour, n, errors.ErrInvalidFEN))
		}
	}

	for _, row := range []int{0, chess.BoardSize - 1} {
		for col := 0; col < chess.BoardSize; col++ {
			sq := chess.Sq(row, col)
			if board.Get(sq).Kind == chess.Pawn {
				result = multierror.Append(result,
					fmt.Errorf("pawn on %s: %w", sq, errors.ErrInvalidFEN))
			}
		}
	}

	return result.ErrorOrNil()
}

// ToFEN converts a position to a FEN string.
func ToFEN(pos *Position) string {
	var sb strings.Builder

	writePlacement(&sb, pos.Board)
	sb.WriteByte(' ')
	if pos.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	sb.WriteString(pos.Castling.String())
	sb.WriteString(" - ")
	moveNumber := pos.MoveNumber
	if moveNumber < 1 {
		moveNumber = 1
	}
	fmt.Fprintf(&sb, "%d %d", pos.HalfmoveClock, moveNumber)

	return sb.String()
}

// writePlacement writes the piece placement field to the builder.
func writePlacement(sb *strings.Builder, board *chess.Board) {
	for row := 0; row < chess.BoardSize; row++ {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Squares[row][col]
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}

// MustParseFEN is like ParseFEN but panics on error. Intended for fixed
// positions in tests and tables.
func MustParseFEN(fen string) *Position {
	pos, err := ParseFEN(fen)
	if err != nil {
		panic(err)
	}
	return pos
}

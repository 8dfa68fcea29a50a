package engine

import (
	"testing"

	"github.com/lgbarn/chess-arena-go/internal/chess"
)

func TestAttackSquares(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		from string
		want []string
	}{
		{"white pawn attacks diagonals even when empty", "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1", "e2", []string{"d3", "f3"}},
		{"black pawn attacks downward", "4k3/4p3/8/8/8/8/8/4K3 w - - 0 1", "e7", []string{"d6", "f6"}},
		{"edge pawn", "4k3/8/8/8/8/8/P7/4K3 w - - 0 1", "a2", []string{"b3"}},
		{"slider includes own blocker", "4k3/8/8/8/8/8/8/R2QK3 w - - 0 1", "a1", []string{
			"a2", "a3", "a4", "a5", "a6", "a7", "a8", "b1", "c1", "d1",
		}},
		{"king never attacks castling squares", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1", []string{
			"d1", "d2", "e2", "f2", "f1",
		}},
		{"empty square", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", "d4", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := MustParseFEN(tt.fen)
			got := AttackSquares(pos.Board, chess.MustSquare(tt.from))
			assertSquareSet(t, got, sqs(tt.want...), "AttackSquares("+tt.from+")")
		})
	}
}

func TestPawnDoesNotAttackForward(t *testing.T) {
	pos := MustParseFEN("4k3/8/8/8/8/8/4P3/4K3 w - - 0 1")
	if IsSquareAttacked(pos.Board, chess.MustSquare("e3"), chess.White) {
		t.Error("e3 should not be attacked by the pawn on e2")
	}
	if !IsSquareAttacked(pos.Board, chess.MustSquare("f3"), chess.White) {
		t.Error("f3 should be attacked by the pawn on e2")
	}
}

func TestIsInCheck(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		colour chess.Colour
		want   bool
	}{
		{"initial white", InitialFEN, chess.White, false},
		{"initial black", InitialFEN, chess.Black, false},
		{"rook check", "4r1k1/8/8/8/8/8/8/4K3 w - - 0 1", chess.White, true},
		{"rook check blocked", "4r1k1/8/8/8/4N3/8/8/4K3 w - - 0 1", chess.White, false},
		{"knight check", "4k3/8/8/8/8/3n4/8/4K3 w - - 0 1", chess.White, true},
		{"pawn check", "4k3/8/8/8/8/8/3p4/4K3 w - - 0 1", chess.White, true},
		{"bishop check on black", "4k3/8/8/1B6/8/8/8/4K3 b - - 0 1", chess.Black, true},
		{"queen not aligned", "4k3/8/8/8/8/8/8/Q3K3 b - - 0 1", chess.Black, false},
		{"queen diagonal check", "4k3/8/8/8/Q7/8/8/4K3 b - - 0 1", chess.Black, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := MustParseFEN(tt.fen)
			if got := IsInCheck(pos.Board, tt.colour); got != tt.want {
				t.Errorf("IsInCheck(%s) = %v, want %v", tt.colour, got, tt.want)
			}
		})
	}
}

func TestIsInCheckWithoutKing(t *testing.T) {
	board := chess.NewBoard()
	board.Set(chess.MustSquare("e8"), chess.B(chess.Queen))
	if IsInCheck(board, chess.White) {
		t.Error("IsInCheck() with no white king = true, want false")
	}
}

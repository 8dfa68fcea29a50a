package engine

import (
	"testing"

	"github.com/lgbarn/chess-arena-go/internal/chess"
)

func TestMakeUnmakeRestores(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		move string
	}{
		{"quiet pawn push", InitialFEN, "e2e4"},
		{"capture", "4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1", "e4d5"},
		{"kingside castle", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1g1"},
		{"queenside castle", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", "e8c8"},
		{"promotion capture", "1r2k3/P7/8/8/8/8/8/4K3 w - - 0 1", "a7b8n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := MustParseFEN(tt.fen)
			before := pos.Board.Canonical()
			rights := pos.Castling

			u := MakeMove(pos.Board, &rights, mv(t, tt.move))
			if pos.Board.Canonical() == before {
				t.Fatal("MakeMove did not change the board")
			}
			UnmakeMove(pos.Board, &rights, u)

			if got := pos.Board.Canonical(); got != before {
				t.Errorf("board after undo:\n got %s\nwant %s", got, before)
			}
			if rights != pos.Castling {
				t.Errorf("rights after undo = %s, want %s", rights, pos.Castling)
			}
		})
	}
}

func TestCastlingMovesRook(t *testing.T) {
	tests := []struct {
		move     string
		fen      string
		kingTo   string
		rookFrom string
		rookTo   string
	}{
		{"e1g1", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "g1", "h1", "f1"},
		{"e1c1", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "c1", "a1", "d1"},
		{"e8g8", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", "g8", "h8", "f8"},
		{"e8c8", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", "c8", "a8", "d8"},
	}

	for _, tt := range tests {
		t.Run(tt.move, func(t *testing.T) {
			pos := MustParseFEN(tt.fen)
			rights := pos.Castling
			u := MakeMove(pos.Board, &rights, mv(t, tt.move))

			if !u.Castled {
				t.Error("Undo.Castled = false, want true")
			}
			if got := pos.Board.Get(chess.MustSquare(tt.kingTo)); got.Kind != chess.King {
				t.Errorf("%s holds %v, want king", tt.kingTo, got)
			}
			if got := pos.Board.Get(chess.MustSquare(tt.rookTo)); got.Kind != chess.Rook {
				t.Errorf("%s holds %v, want rook", tt.rookTo, got)
			}
			if got := pos.Board.Get(chess.MustSquare(tt.rookFrom)); !got.IsEmpty() {
				t.Errorf("%s holds %v, want empty", tt.rookFrom, got)
			}
		})
	}
}

func TestKingOneStepIsNotCastling(t *testing.T) {
	pos := MustParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	rights := pos.Castling
	u := MakeMove(pos.Board, &rights, mv(t, "e1f1"))
	if u.Castled {
		t.Error("e1f1 recorded as castling")
	}
	if got := pos.Board.Get(chess.MustSquare("h1")); !got.Is(chess.Rook, chess.White) {
		t.Errorf("h1 holds %v, want white rook", got)
	}
}

func TestPromotion(t *testing.T) {
	tests := []struct {
		name      string
		promotion chess.Kind
		want      chess.Kind
	}{
		{"knight", chess.Knight, chess.Knight},
		{"bishop", chess.Bishop, chess.Bishop},
		{"rook", chess.Rook, chess.Rook},
		{"queen", chess.Queen, chess.Queen},
		{"none defaults to queen", chess.NoKind, chess.Queen},
		{"king defaults to queen", chess.King, chess.Queen},
		{"pawn defaults to queen", chess.Pawn, chess.Queen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := MustParseFEN("8/P7/8/8/8/8/8/k6K w - - 0 1")
			rights := pos.Castling
			move := chess.Move{From: chess.MustSquare("a7"), To: chess.MustSquare("a8"), Promotion: tt.promotion}

			u := MakeMove(pos.Board, &rights, move)
			got := pos.Board.Get(chess.MustSquare("a8"))
			if !got.Is(tt.want, chess.White) {
				t.Errorf("a8 holds %v, want white %v", got, tt.want)
			}
			if u.Promoted != tt.want {
				t.Errorf("Undo.Promoted = %v, want %v", u.Promoted, tt.want)
			}

			UnmakeMove(pos.Board, &rights, u)
			if got := pos.Board.Get(chess.MustSquare("a7")); !got.Is(chess.Pawn, chess.White) {
				t.Errorf("a7 after undo holds %v, want white pawn", got)
			}
		})
	}
}

func TestBlackPromotion(t *testing.T) {
	pos := MustParseFEN("4k3/8/8/8/8/8/p7/4K3 b - - 0 1")
	rights := pos.Castling
	MakeMove(pos.Board, &rights, mv(t, "a2a1"))
	if got := pos.Board.Get(chess.MustSquare("a1")); !got.Is(chess.Queen, chess.Black) {
		t.Errorf("a1 holds %v, want black queen", got)
	}
}

func TestNonPawnIgnoresPromotion(t *testing.T) {
	pos := MustParseFEN("4k3/R7/8/8/8/8/8/4K3 w - - 0 1")
	rights := pos.Castling
	MakeMove(pos.Board, &rights, mv(t, "a7a8q"))
	if got := pos.Board.Get(chess.MustSquare("a8")); !got.Is(chess.Rook, chess.White) {
		t.Errorf("a8 holds %v, want white rook", got)
	}
}

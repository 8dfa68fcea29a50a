package engine

import (
	"testing"

	"github.com/lgbarn/chess-arena-go/internal/chess"
	chesserrors "github.com/lgbarn/chess-arena-go/internal/errors"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name        string
		fen         string
		moves       []string
		colour      chess.Colour
		wantStatus  Status
		wantInCheck bool
	}{
		{
			name:       "initial position",
			fen:        InitialFEN,
			colour:     chess.White,
			wantStatus: Ongoing,
		},
		{
			name:        "fool's mate",
			fen:         InitialFEN,
			moves:       []string{"f2f3", "e7e5", "g2g4", "d8h4"},
			colour:      chess.White,
			wantStatus:  Checkmate,
			wantInCheck: true,
		},
		{
			name:        "back rank mate",
			fen:         "3R2k1/5ppp/8/8/8/8/8/6K1 b - - 0 1",
			colour:      chess.Black,
			wantStatus:  Checkmate,
			wantInCheck: true,
		},
		{
			name:       "stalemate pawn and king",
			fen:        "k7/P7/1K6/8/8/8/8/8 b - - 0 1",
			colour:     chess.Black,
			wantStatus: Stalemate,
		},
		{
			name:       "stalemate queen",
			fen:        "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1",
			colour:     chess.Black,
			wantStatus: Stalemate,
		},
		{
			name:        "check with escape",
			fen:         "4r1k1/8/8/8/8/8/8/4K3 w - - 0 1",
			colour:      chess.White,
			wantStatus:  Ongoing,
			wantInCheck: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := MustParseFEN(tt.fen)
			rights := pos.Castling
			for _, text := range tt.moves {
				move := mv(t, text)
				if err := CheckMove(pos.Board, rights, move); err != nil {
					t.Fatalf("CheckMove(%s) error: %v", text, err)
				}
				MakeMove(pos.Board, &rights, move)
			}

			got := Evaluate(pos.Board, rights, tt.colour)
			if got.Status != tt.wantStatus {
				t.Errorf("Evaluate().Status = %v, want %v", got.Status, tt.wantStatus)
			}
			if got.InCheck != tt.wantInCheck {
				t.Errorf("Evaluate().InCheck = %v, want %v", got.InCheck, tt.wantInCheck)
			}
			if IsCheckmate(pos.Board, rights, tt.colour) != (tt.wantStatus == Checkmate) {
				t.Errorf("IsCheckmate() disagrees with Evaluate()")
			}
			if IsStalemate(pos.Board, rights, tt.colour) != (tt.wantStatus == Stalemate) {
				t.Errorf("IsStalemate() disagrees with Evaluate()")
			}
		})
	}
}

func TestStatusString(t *testing.T) {
	tests := map[Status]string{Ongoing: "ongoing", Checkmate: "checkmate", Stalemate: "stalemate"}
	for status, want := range tests {
		if got := status.String(); got != want {
			t.Errorf("Status(%d).String() = %q, want %q", int(status), got, want)
		}
	}
}

func TestCheckMove(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		move    string
		wantErr error
	}{
		{"legal push", InitialFEN, "e2e4", nil},
		{"empty source", InitialFEN, "e4e5", chesserrors.ErrNoPiece},
		{"unreachable", InitialFEN, "e2e5", chesserrors.ErrIllegalMove},
		{"own piece on target", InitialFEN, "a1a2", chesserrors.ErrIllegalMove},
		{"pinned piece", "4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1", "e2d3", chesserrors.ErrKingExposed},
		{"king into attack", "4r1k1/8/8/8/8/8/8/3K4 w - - 0 1", "d1e1", chesserrors.ErrKingExposed},
		{"ignores turn", InitialFEN, "e7e5", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := MustParseFEN(tt.fen)
			err := CheckMove(pos.Board, pos.Castling, mv(t, tt.move))
			if err != tt.wantErr {
				t.Errorf("CheckMove(%s) = %v, want %v", tt.move, err, tt.wantErr)
			}
		})
	}
}

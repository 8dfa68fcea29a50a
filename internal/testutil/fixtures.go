// Package testutil provides shared test utilities for the chess-arena-go project.
// These utilities reduce code duplication across test files and provide
// consistent test setup helpers.
package testutil

import (
	"testing"

	"github.com/lgbarn/chess-arena-go/internal/chess"
	"github.com/lgbarn/chess-arena-go/internal/game"
)

// Well-known positions used across tests.
const (
	// FoolsMate is the move list of the shortest checkmate.
	FoolsMate = "f2f3 e7e5 g2g4 d8h4"
	// StalemateFEN has black to move with no legal move and not in check.
	StalemateFEN = "k7/P7/1K6/8/8/8/8/8 b - - 0 1"
	// CastlingFEN has both kings and all four rooks on their home squares.
	CastlingFEN = "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"
	// KnightShuffle leaves black to move with f6g8 recreating the start
	// position for the third time.
	KnightShuffle = "g1f3 g8f6 f3g1 f6g8 g1f3 g8f6 f3g1"
)

// Squares converts algebraic names to squares, panicking on a bad name.
func Squares(names ...string) []chess.Square {
	out := make([]chess.Square, 0, len(names))
	for _, n := range names {
		out = append(out, chess.MustSquare(n))
	}
	return out
}

// MustMove parses a long algebraic move. It calls t.Fatal on error.
func MustMove(t *testing.T, text string) chess.Move {
	t.Helper()
	m, err := chess.ParseMove(text)
	if err != nil {
		t.Fatalf("failed to parse move %q: %v", text, err)
	}
	return m
}

// MustState creates a game from FEN. An empty FEN yields NewGame().
// It calls t.Fatal if the FEN is invalid.
func MustState(t *testing.T, fen string) *game.State {
	t.Helper()
	if fen == "" {
		return game.NewGame()
	}
	s, err := game.FromFEN(fen)
	if err != nil {
		t.Fatalf("failed to set up position %q: %v", fen, err)
	}
	return s
}

// MustPlay applies a whitespace-separated move list to the state and returns
// the result of the last move. It calls t.Fatal on the first rejected move.
func MustPlay(t *testing.T, s *game.State, moves string) game.MoveResult {
	t.Helper()
	list, err := chess.ParseMoveList(moves)
	if err != nil {
		t.Fatalf("failed to parse moves %q: %v", moves, err)
	}
	var result game.MoveResult
	for _, m := range list {
		result, err = s.ApplyMove(m)
		if err != nil {
			t.Fatalf("move %s rejected: %v", m, err)
		}
	}
	return result
}

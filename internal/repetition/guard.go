package repetition

import (
	"github.com/lgbarn/chess-arena-go/internal/chess"
	"github.com/lgbarn/chess-arena-go/internal/engine"
)

// RepeatThreshold is the number of prior occurrences at which reaching a
// position again is flagged.
const RepeatThreshold = 2

// Flag describes why a candidate move is discouraged.
type Flag int

const (
	// None means the move is not flagged
	None Flag = iota
	// Reversal means the move undoes the previous move
	Reversal
	// Repeat means the move recreates a position for the third time
	Repeat
)

// String returns a short description of the flag.
func (f Flag) String() string {
	switch f {
	case Reversal:
		return "reversal"
	case Repeat:
		return "repetition"
	}
	return "none"
}

// IsImmediateReversal reports whether candidate moves a piece straight back
// along the previous move. A nil last move never matches.
func IsImmediateReversal(candidate chess.Move, last *chess.Move) bool {
	return last != nil && candidate.Reverses(*last)
}

// WouldRepeat simulates candidate on a copy of the board and reports whether
// the resulting position already appears RepeatThreshold or more times in
// history. The board is not modified.
func WouldRepeat(board *chess.Board, rights chess.CastlingRights, candidate chess.Move, history *History) bool {
	if history.Len() == 0 {
		return false
	}
	scratch := board.Copy()
	engine.MakeMove(scratch, &rights, candidate)
	return history.Count(scratch.Canonical()) >= RepeatThreshold
}

// Check returns the first flag that applies to candidate, reversal first.
func Check(board *chess.Board, rights chess.CastlingRights, candidate chess.Move, last *chess.Move, history *History) Flag {
	if IsImmediateReversal(candidate, last) {
		return Reversal
	}
	if WouldRepeat(board, rights, candidate, history) {
		return Repeat
	}
	return None
}

// Prefer returns the first candidate that is neither a reversal nor a
// repeat. When every candidate is flagged it falls back to the first one.
// ok is false only when candidates is empty.
func Prefer(board *chess.Board, rights chess.CastlingRights, candidates []chess.Move, last *chess.Move, history *History) (move chess.Move, ok bool) {
	if len(candidates) == 0 {
		return chess.Move{}, false
	}
	for _, c := range candidates {
		if Check(board, rights, c, last, history) == None {
			return c, true
		}
	}
	return candidates[0], true
}

package game

import (
	"sync"

	"github.com/lgbarn/chess-arena-go/internal/chess"
)

// Snapshot is a read-only view of a session's game.
type Snapshot struct {
	FEN       string `json:"fen"`
	Board     string `json:"board"`
	Turn      string `json:"turn"`
	LastMove  string `json:"last_move,omitempty"`
	MoveCount int    `json:"move_count"`
	InCheck   bool   `json:"check"`
	Status    string `json:"status"`
	Active    bool   `json:"active"`

	// Repetitions is how often the most repeated position has occurred.
	Repetitions int `json:"repetitions"`
}

// SnapshotOf builds a snapshot of a state.
func SnapshotOf(s *State) Snapshot {
	snap := Snapshot{
		FEN:       s.FEN(),
		Board:     s.Board.Canonical(),
		Turn:      s.Turn.String(),
		MoveCount: s.MoveCount,
		InCheck:   s.InCheck,
		Status:    s.Outcome.String(),
		Active:    s.Active,

		Repetitions: s.History.MaxCount(),
	}
	if s.LastMove != nil {
		snap.LastMove = s.LastMove.String()
	}
	return snap
}

// Session holds one game shared by concurrent callers. Every operation
// takes the session lock, so mutations are applied one at a time.
type Session struct {
	mu    sync.Mutex
	state *State
}

// NewSession creates a session holding a reset, inactive game.
func NewSession() *Session {
	return &Session{state: ResetGame()}
}

// New starts a fresh active game.
func (s *Session) New() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = NewGame()
	return SnapshotOf(s.state)
}

// Reset replaces the game with a reset, inactive one.
func (s *Session) Reset() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = ResetGame()
	return SnapshotOf(s.state)
}

// Load replaces the game with one set up from FEN. On error the current
// game is kept.
func (s *Session) Load(fen string) (Snapshot, error) {
	state, err := FromFEN(fen)
	if err != nil {
		return Snapshot{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
	return SnapshotOf(s.state), nil
}

// Snapshot returns the current game as a snapshot.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return SnapshotOf(s.state)
}

// LegalMovesForSquare returns the legal destinations of the piece on sq.
func (s *Session) LegalMovesForSquare(sq chess.Square) []chess.Square {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.LegalMovesForSquare(sq)
}

// LegalMovesForSide returns every legal move of the colour.
func (s *Session) LegalMovesForSide(colour chess.Colour) []chess.Move {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.LegalMovesForSide(colour)
}

// ApplyMove applies a move to the game.
func (s *Session) ApplyMove(move chess.Move) (MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.ApplyMove(move)
}

// State returns a deep copy of the current game.
func (s *Session) State() *State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

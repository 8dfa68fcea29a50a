package game

import (
	"time"

	"github.com/lgbarn/chess-arena-go/internal/chess"
	"github.com/lgbarn/chess-arena-go/internal/engine"
)

// End reasons for a finished game.
const (
	ReasonCheckmate    = "checkmate"
	ReasonStalemate    = "stalemate"
	ReasonInsufficient = "insufficient material"
	ReasonMaxPlies     = "max plies"
	ReasonAborted      = "aborted"
)

// Record is a completed game as archived and reported.
type Record struct {
	ID        uint64        `json:"id,omitempty"`
	White     string        `json:"white"`
	Black     string        `json:"black"`
	StartFEN  string        `json:"start_fen"`
	FinalFEN  string        `json:"final_fen"`
	Moves     []string      `json:"moves"`
	Winner    string        `json:"winner,omitempty"` // "white", "black" or empty for a draw
	Reason    string        `json:"end_reason"`
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration"`

	// StartPly is the state's move count when the record began.
	StartPly int `json:"-"`
}

// Plies returns the number of half-moves played.
func (r *Record) Plies() int {
	return len(r.Moves)
}

// IsDraw reports whether the game finished without a winner.
func (r *Record) IsDraw() bool {
	return r.Winner == ""
}

// Result returns the game result in PGN notation.
func (r *Record) Result() string {
	switch r.Winner {
	case chess.White.String():
		return "1-0"
	case chess.Black.String():
		return "0-1"
	}
	if r.Reason == ReasonAborted {
		return "*"
	}
	return "1/2-1/2"
}

// NewRecord starts a record for the given players from the state's current
// position.
func NewRecord(s *State, white, black string) *Record {
	return &Record{
		White:     white,
		Black:     black,
		StartFEN:  s.FEN(),
		StartedAt: time.Now(),
		StartPly:  len(s.Moves),
	}
}

// Finish completes the record from the final state.
func (r *Record) Finish(s *State, reason string) {
	played := s.Moves[r.StartPly:]
	r.Moves = make([]string, 0, len(played))
	for _, m := range played {
		r.Moves = append(r.Moves, m.String())
	}
	r.FinalFEN = s.FEN()
	r.Reason = reason
	if s.Outcome.Status == engine.Checkmate {
		r.Winner = s.Outcome.Winner.String()
	}
	r.Duration = time.Since(r.StartedAt)
}

// Summary totals a batch of finished games.
type Summary struct {
	Games     int            `json:"games"`
	WhiteWins int            `json:"white_wins"`
	BlackWins int            `json:"black_wins"`
	Draws     int            `json:"draws"`
	ByReason  map[string]int `json:"by_reason"`
}

// Summarize totals the records, skipping nil entries.
func Summarize(records []*Record) *Summary {
	sum := &Summary{ByReason: make(map[string]int)}
	for _, rec := range records {
		if rec == nil {
			continue
		}
		sum.Games++
		switch rec.Winner {
		case chess.White.String():
			sum.WhiteWins++
		case chess.Black.String():
			sum.BlackWins++
		default:
			sum.Draws++
		}
		sum.ByReason[rec.Reason]++
	}
	return sum
}

package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chess-arena-go/internal/game"
	"github.com/lgbarn/chess-arena-go/internal/store"
)

// JSONPosition is a position with its status and, optionally, the legal
// moves of the side to move.
type JSONPosition struct {
	game.Snapshot
	StatusLine string   `json:"status_line"`
	LegalMoves []string `json:"legal_moves,omitempty"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games   []*game.Record `json:"games"`
	Summary *game.Summary  `json:"summary,omitempty"`
}

// PositionToJSON converts a state to its JSON form.
func PositionToJSON(s *game.State, withLegal bool) *JSONPosition {
	pos := &JSONPosition{
		Snapshot:   game.SnapshotOf(s),
		StatusLine: StatusLine(s),
	}
	if withLegal {
		for _, m := range s.LegalMovesForSide(s.Turn) {
			pos.LegalMoves = append(pos.LegalMoves, m.String())
		}
	}
	return pos
}

// WriteJSON writes v as indented JSON.
func WriteJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WritePositionJSON writes a state as JSON.
func WritePositionJSON(w io.Writer, s *game.State, withLegal bool) error {
	return WriteJSON(w, PositionToJSON(s, withLegal))
}

// WriteStatsJSON writes player statistics as JSON.
func WriteStatsJSON(w io.Writer, stats ...*store.Stats) error {
	return WriteJSON(w, struct {
		Players []*store.Stats `json:"players"`
	}{stats})
}

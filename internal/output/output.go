// Package output renders boards, game status and finished games as text
// or JSON.
package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/lgbarn/chess-arena-go/internal/chess"
	"github.com/lgbarn/chess-arena-go/internal/engine"
	"github.com/lgbarn/chess-arena-go/internal/game"
)

// DefaultLineLength is the wrap column for move text.
const DefaultLineLength = 80

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = DefaultLineLength
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// WriteBoard draws the board with rank 8 at the top and a file footer.
func WriteBoard(w io.Writer, board *chess.Board) {
	for row := 0; row < 8; row++ {
		fmt.Fprintf(w, "%d", 8-row)
		for col := 0; col < 8; col++ {
			fmt.Fprintf(w, " %s", board.Get(chess.Sq(row, col)))
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, "  a b c d e f g h")
}

// BoardString returns the board drawing as a string.
func BoardString(board *chess.Board) string {
	var sb strings.Builder
	WriteBoard(&sb, board)
	return sb.String()
}

// StatusLine describes the game for a human: the result once it is over,
// otherwise whose turn it is and whether they are in check.
func StatusLine(s *game.State) string {
	if s.Outcome.Over() {
		return s.Outcome.String()
	}
	line := s.Turn.String() + " to move"
	if s.InCheck {
		line += ", check"
	}
	if engine.HasInsufficientMaterial(s.Board) {
		line += ", insufficient material"
	}
	return line
}

// WritePosition writes the board, FEN and status of a state.
func WritePosition(w io.Writer, s *game.State) {
	WriteBoard(w, s.Board)
	fmt.Fprintln(w)
	if s.LastMove != nil {
		fmt.Fprintf(w, "Last move: %s\n", s.LastMove)
	}
	WriteStatus(w, s)
}

// WriteStatus writes the FEN and status of a state without the board.
func WriteStatus(w io.Writer, s *game.State) {
	fmt.Fprintf(w, "FEN: %s\n", s.FEN())
	fmt.Fprintf(w, "Status: %s\n", StatusLine(s))
}

// WriteLegalMoves writes the legal moves of the side to move on one
// wrapped line.
func WriteLegalMoves(w io.Writer, s *game.State) {
	moves := s.LegalMovesForSide(s.Turn)
	fmt.Fprintf(w, "Legal moves (%d):\n", len(moves))
	ow := NewOutputWriter(w, DefaultLineLength)
	for _, m := range moves {
		ow.Write(m.String())
	}
	if len(moves) > 0 {
		ow.NewLine()
	}
}

// WriteRecordText writes a finished game as tag pairs followed by numbered
// move text and the result.
func WriteRecordText(w io.Writer, rec *game.Record) {
	writeTag(w, "White", rec.White)
	writeTag(w, "Black", rec.Black)
	writeTag(w, "Result", rec.Result())
	writeTag(w, "Termination", rec.Reason)
	writeTag(w, "PlyCount", fmt.Sprint(rec.Plies()))
	if rec.ID != 0 {
		writeTag(w, "GameId", fmt.Sprint(rec.ID))
	}
	if !rec.StartedAt.IsZero() {
		writeTag(w, "Date", rec.StartedAt.Format("2006.01.02"))
	}
	if rec.StartFEN != "" && rec.StartFEN != engine.InitialFEN {
		writeTag(w, "SetUp", "1")
		writeTag(w, "FEN", rec.StartFEN)
	}
	fmt.Fprintln(w)

	ow := NewOutputWriter(w, DefaultLineLength)
	writeMoveText(ow, rec)
	ow.Write(rec.Result())
	ow.NewLine()
	fmt.Fprintln(w)
}

// writeMoveText numbers the moves from the record's start position.
func writeMoveText(ow *OutputWriter, rec *game.Record) {
	turn, number := chess.White, 1
	if rec.StartFEN != "" {
		if pos, err := engine.ParseFEN(rec.StartFEN); err == nil {
			turn, number = pos.ToMove, pos.MoveNumber
		}
	}
	for i, m := range rec.Moves {
		switch {
		case turn == chess.White:
			ow.Write(fmt.Sprintf("%d.", number))
		case i == 0:
			ow.Write(fmt.Sprintf("%d...", number))
		}
		ow.Write(m)
		if turn == chess.Black {
			number++
		}
		turn = turn.Opposite()
	}
}

func writeTag(w io.Writer, name, value string) {
	fmt.Fprintf(w, "[%s \"%s\"]\n", name, escapeTagValue(value))
}

// escapeTagValue escapes special characters in tag values.
func escapeTagValue(s string) string {
	if !strings.ContainsAny(s, "\\\"") {
		return s
	}
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	return s
}

// WriteRecordLine writes a one-line summary of a finished game.
func WriteRecordLine(w io.Writer, rec *game.Record) {
	fmt.Fprintf(w, "#%d %s vs %s: %s (%s, %d plies, %s)\n",
		rec.ID, rec.White, rec.Black, rec.Result(), rec.Reason, rec.Plies(),
		rec.Duration.Round(time.Millisecond))
}

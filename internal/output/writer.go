package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/chess-arena-go/internal/config"
	"github.com/lgbarn/chess-arena-go/internal/game"
	"github.com/lgbarn/chess-arena-go/internal/store"
)

// RecordWriter is the interface for writing finished games.
type RecordWriter interface {
	// WriteRecord writes a single game to the output.
	WriteRecord(rec *game.Record) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer. Batch writers write pending output here.
	Close() error
}

// NewRecordWriter returns the writer for the configured output format.
func NewRecordWriter(w io.Writer, cfg *config.Config) RecordWriter {
	if cfg.Output.Format == config.JSONFormat {
		return NewJSONWriter(w)
	}
	return NewTextWriter(w)
}

// TextWriter writes games as tag pairs and move text.
type TextWriter struct {
	w       io.Writer
	records []*game.Record
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

// WriteRecord writes a game immediately.
func (tw *TextWriter) WriteRecord(rec *game.Record) error {
	WriteRecordText(tw.w, rec)
	tw.records = append(tw.records, rec)
	return nil
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close writes a totals line for the games written.
func (tw *TextWriter) Close() error {
	if len(tw.records) == 0 {
		return nil
	}
	WriteSummary(tw.w, game.Summarize(tw.records))
	return nil
}

// WriteSummary writes batch totals as one line.
func WriteSummary(w io.Writer, sum *game.Summary) {
	fmt.Fprintf(w, "%d games: white %d, black %d, draws %d\n",
		sum.Games, sum.WhiteWins, sum.BlackWins, sum.Draws)
}

// JSONWriter buffers games and writes them as one JSON document with a
// summary on Flush or Close.
type JSONWriter struct {
	w       io.Writer
	records []*game.Record
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// WriteRecord buffers a game.
func (jw *JSONWriter) WriteRecord(rec *game.Record) error {
	jw.records = append(jw.records, rec)
	return nil
}

// Flush writes all buffered games.
func (jw *JSONWriter) Flush() error {
	if len(jw.records) == 0 {
		return nil
	}
	err := WriteJSON(jw.w, &JSONOutput{
		Games:   jw.records,
		Summary: game.Summarize(jw.records),
	})
	jw.records = jw.records[:0]
	return err
}

// Close flushes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}

// WriteStats writes player statistics as text, one player per line.
func WriteStats(w io.Writer, stats ...*store.Stats) {
	for _, s := range stats {
		fmt.Fprintf(w, "%-20s rating %4d  games %3d  +%d -%d =%d  win rate %.1f%%\n",
			s.Name, s.Rating, s.GamesPlayed, s.Wins, s.Losses, s.Draws, s.WinRate())
	}
}

package config

// OutputFormat selects how results are written.
type OutputFormat int

const (
	TextFormat OutputFormat = iota // ASCII board and plain lines
	JSONFormat                     // One JSON document
)

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	Format OutputFormat

	// ShowBoard prints the board after replaying moves.
	ShowBoard bool

	// ShowLegal lists the legal moves of the side to move.
	ShowLegal bool

	// HistoryLimit is the number of stored games to list; 0 disables listing.
	HistoryLimit int

	// Filename is the output file; empty means standard output.
	Filename string
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:    TextFormat,
		ShowBoard: true,
	}
}

// Validate checks that the output configuration is valid.
func (o *OutputConfig) Validate() error {
	if o.Format != TextFormat && o.Format != JSONFormat {
		return invalid("unknown output format %d", o.Format)
	}
	if o.HistoryLimit < 0 {
		return invalid("history limit %d is negative", o.HistoryLimit)
	}
	return nil
}

package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithJSONOutput switches output to JSON.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	if enabled {
		b.cfg.Output.Format = JSONFormat
	} else {
		b.cfg.Output.Format = TextFormat
	}
	return b
}

// WithLegalMoves enables listing of legal moves.
func (b *ConfigBuilder) WithLegalMoves(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowLegal = enabled
	return b
}

// WithHistory lists the given number of stored games.
func (b *ConfigBuilder) WithHistory(limit int) *ConfigBuilder {
	b.cfg.Output.HistoryLimit = limit
	return b
}

// WithSelfPlay sets the number of arena games and the number played at once.
func (b *ConfigBuilder) WithSelfPlay(games, workers int) *ConfigBuilder {
	b.cfg.Arena.Games = games
	b.cfg.Arena.Workers = workers
	return b
}

// WithMaxPlies sets the ply limit for arena games.
func (b *ConfigBuilder) WithMaxPlies(plies int) *ConfigBuilder {
	b.cfg.Arena.MaxPlies = plies
	return b
}

// WithSeed sets the seed for random players.
func (b *ConfigBuilder) WithSeed(seed int64) *ConfigBuilder {
	b.cfg.Arena.Seed = seed
	return b
}

// WithStartFEN sets the arena starting position.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.Arena.StartFEN = fen
	return b
}

// WithPlayers sets the recorded player names.
func (b *ConfigBuilder) WithPlayers(white, black string) *ConfigBuilder {
	b.cfg.Arena.White = white
	b.cfg.Arena.Black = black
	return b
}

// WithStoreDir archives games in dir.
func (b *ConfigBuilder) WithStoreDir(dir string) *ConfigBuilder {
	b.cfg.Store.Dir = dir
	return b
}

// WithInMemoryStore archives games in memory.
func (b *ConfigBuilder) WithInMemoryStore() *ConfigBuilder {
	b.cfg.Store.InMemory = true
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

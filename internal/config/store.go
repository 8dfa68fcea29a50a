package config

// StoreConfig holds settings for the game archive.
type StoreConfig struct {
	// Dir is the BadgerDB directory; empty disables the archive unless
	// InMemory is set.
	Dir string

	// InMemory keeps the archive in memory for the life of the process.
	InMemory bool

	// StatsPlayer names the player whose statistics are printed.
	StatsPlayer string

	// Leaderboard prints every player's statistics by rating.
	Leaderboard bool
}

// NewStoreConfig creates a StoreConfig with default values.
func NewStoreConfig() *StoreConfig {
	return &StoreConfig{}
}

// Enabled reports whether games should be archived.
func (s *StoreConfig) Enabled() bool {
	return s.Dir != "" || s.InMemory
}

// Queried reports whether any archive listing was requested.
func (s *StoreConfig) Queried() bool {
	return s.StatsPlayer != "" || s.Leaderboard
}

// Validate checks that the store configuration is valid.
func (s *StoreConfig) Validate() error {
	if s.Dir != "" && s.InMemory {
		return invalid("store directory %q given for an in-memory store", s.Dir)
	}
	return nil
}

// Package config provides configuration for chess-arena.
package config

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/hashicorp/go-multierror"

	"github.com/lgbarn/chess-arena-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=summary, 2=running commentary

	Output *OutputConfig
	Arena  *ArenaConfig
	Store  *StoreConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer

	logMu sync.Mutex
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Output:     NewOutputConfig(),
		Arena:      NewArenaConfig(),
		Store:      NewStoreConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the writer for normal output.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the writer for log output.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Logf writes a log line when the configured verbosity is at least level.
// It is safe for concurrent use.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	c.logMu.Lock()
	defer c.logMu.Unlock()
	fmt.Fprintf(c.LogFile, format, args...)
}

// Validate checks every sub-configuration and reports all problems found.
func (c *Config) Validate() error {
	var result *multierror.Error
	if c.Verbosity < 0 {
		result = multierror.Append(result, invalid("verbosity %d is negative", c.Verbosity))
	}
	if err := c.Output.Validate(); err != nil {
		result = multierror.Append(result, err)
	}
	if err := c.Arena.Validate(); err != nil {
		result = multierror.Append(result, err)
	}
	if err := c.Store.Validate(); err != nil {
		result = multierror.Append(result, err)
	}
	if (c.Store.Queried() || c.Output.HistoryLimit > 0) && !c.Store.Enabled() {
		result = multierror.Append(result, invalid("archive listing needs a store directory"))
	}
	return result.ErrorOrNil()
}

// invalid formats an error wrapping ErrInvalidConfig.
func invalid(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, errors.ErrInvalidConfig)...)
}

// Package config provides configuration for the chess rules engine and its CLI.
package config

import (
	"io"
	"os"

	"github.com/apex/log"
	"github.com/apex/log/handlers/text"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Verbosity levels.
const (
	Quiet   = 0 // errors only
	Normal  = 1 // match outcomes
	Verbose = 2 // running commentary: every ply and rejection
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=errors, 1=outcomes, 2=running commentary

	Rules  *RulesConfig
	Output *OutputConfig
	Store  *StoreConfig

	// Output streams
	OutputFile io.Writer // prompts and boards
	LogFile    io.Writer // structured log
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  Normal,
		Rules:      NewRulesConfig(),
		Output:     NewOutputConfig(),
		Store:      NewStoreConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate checks every section of the configuration.
func (c *Config) Validate() error {
	if c.Verbosity < Quiet || c.Verbosity > Verbose {
		return errors.Wrapf(errors.ErrInvalidConfig, "verbosity %d out of range %d..%d", c.Verbosity, Quiet, Verbose)
	}
	if c.Rules == nil || c.Output == nil || c.Store == nil {
		return errors.Wrap(errors.ErrInvalidConfig, "missing section")
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	return c.Store.Validate()
}

// LogLevel maps Verbosity onto a log level.
func (c *Config) LogLevel() log.Level {
	switch {
	case c.Verbosity <= Quiet:
		return log.ErrorLevel
	case c.Verbosity == Normal:
		return log.InfoLevel
	}
	return log.DebugLevel
}

// Logger returns a text logger writing to LogFile at the configured level.
func (c *Config) Logger() *log.Logger {
	w := c.LogFile
	if w == nil {
		w = io.Discard
	}
	return &log.Logger{
		Handler: text.New(w),
		Level:   c.LogLevel(),
	}
}

// SetOutput sets the writer for prompts and boards.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Package config provides configuration for chessmen.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chessmen-go/internal/errors"
)

// Config holds all configuration for a chessmen run.
type Config struct {
	// Verbosity: 0 silent, 1 turns and results, 2 every move
	Verbosity int

	// Sub-configurations
	Storage *StorageConfig
	Game    *GameConfig
	Audit   *AuditConfig

	// I/O streams
	OutputFile io.Writer
	LogFile    io.Writer
	InputFile  io.Reader
}

// NewConfig creates a Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Storage:    NewStorageConfig(),
		Game:       NewGameConfig(),
		Audit:      NewAuditConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
		InputFile:  os.Stdin,
	}
}

// SetOutput sets the output stream.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLogFile sets the diagnostics stream.
func (c *Config) SetLogFile(w io.Writer) {
	c.LogFile = w
}

// SetInput sets the stream moves are read from.
func (c *Config) SetInput(r io.Reader) {
	c.InputFile = r
}

// Validate checks the configuration and all sub-configurations.
func (c *Config) Validate() error {
	if c.Verbosity < 0 || c.Verbosity > 2 {
		return fmt.Errorf("verbosity %d not in 0..2: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if c.OutputFile == nil || c.LogFile == nil || c.InputFile == nil {
		return fmt.Errorf("missing I/O stream: %w", errors.ErrInvalidConfig)
	}
	if err := c.Storage.Validate(); err != nil {
		return err
	}
	if err := c.Game.Validate(); err != nil {
		return err
	}
	return c.Audit.Validate()
}

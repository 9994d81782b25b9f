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

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithDataDir sets the directory games are stored in.
func (b *ConfigBuilder) WithDataDir(dir string) *ConfigBuilder {
	b.cfg.Storage.DataDir = dir
	return b
}

// WithInMemoryStorage keeps games in memory only.
func (b *ConfigBuilder) WithInMemoryStorage(enabled bool) *ConfigBuilder {
	b.cfg.Storage.InMemory = enabled
	return b
}

// WithStrictDestinations sets whether illegal destinations are rejected.
func (b *ConfigBuilder) WithStrictDestinations(strict bool) *ConfigBuilder {
	b.cfg.Game.StrictDestinations = strict
	return b
}

// WithShowControl prints enemy control with each prompt.
func (b *ConfigBuilder) WithShowControl(enabled bool) *ConfigBuilder {
	b.cfg.Game.ShowControl = enabled
	return b
}

// WithStartFEN starts new games from a FEN layout.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.Game.StartFEN = fen
	return b
}

// WithResume continues the saved game with the given ID.
func (b *ConfigBuilder) WithResume(id string) *ConfigBuilder {
	b.cfg.Game.ResumeID = id
	return b
}

// WithAuditWorkers sets the number of audit workers.
func (b *ConfigBuilder) WithAuditWorkers(n int) *ConfigBuilder {
	b.cfg.Audit.Workers = n
	return b
}

// WithOutput sets the output stream.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLogFile sets the diagnostics stream.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithInput sets the stream moves are read from.
func (b *ConfigBuilder) WithInput(r io.Reader) *ConfigBuilder {
	b.cfg.InputFile = r
	return b
}

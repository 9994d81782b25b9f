package config

import (
	"bytes"
	"errors"
	"runtime"
	"strings"
	"testing"

	chesserrors "github.com/lgbarn/chessmen-go/internal/errors"
)

// TestConfig_Defaults verifies NewConfig has sensible defaults
func TestConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Verbosity != 1 {
		t.Errorf("Verbosity = %d, want 1", cfg.Verbosity)
	}
	if cfg.Storage.DataDir != DefaultDataDir {
		t.Errorf("Storage.DataDir = %q, want %q", cfg.Storage.DataDir, DefaultDataDir)
	}
	if cfg.Storage.InMemory {
		t.Error("Storage.InMemory should be false by default")
	}
	if !cfg.Game.StrictDestinations {
		t.Error("Game.StrictDestinations should be true by default")
	}
	if cfg.Game.ShowControl {
		t.Error("Game.ShowControl should be false by default")
	}
	if cfg.Audit.Workers != runtime.NumCPU() {
		t.Errorf("Audit.Workers = %d, want %d", cfg.Audit.Workers, runtime.NumCPU())
	}
	if cfg.OutputFile == nil || cfg.LogFile == nil || cfg.InputFile == nil {
		t.Error("I/O streams should be set by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

// TestConfig_Validate verifies configuration validation
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "defaults are valid",
			modify:  func(*Config) {},
			wantErr: false,
		},
		{
			name:    "silent is valid",
			modify:  func(c *Config) { c.Verbosity = 0 },
			wantErr: false,
		},
		{
			name:    "verbosity too high",
			modify:  func(c *Config) { c.Verbosity = 3 },
			wantErr: true,
		},
		{
			name:    "negative verbosity",
			modify:  func(c *Config) { c.Verbosity = -1 },
			wantErr: true,
		},
		{
			name:    "missing input",
			modify:  func(c *Config) { c.InputFile = nil },
			wantErr: true,
		},
		{
			name:    "empty data dir",
			modify:  func(c *Config) { c.Storage.DataDir = "" },
			wantErr: true,
		},
		{
			name: "empty data dir in memory",
			modify: func(c *Config) {
				c.Storage.DataDir = ""
				c.Storage.InMemory = true
			},
			wantErr: false,
		},
		{
			name:    "no audit workers",
			modify:  func(c *Config) { c.Audit.Workers = 0 },
			wantErr: true,
		},
		{
			name:    "negative audit buffer",
			modify:  func(c *Config) { c.Audit.BufferSize = -1 },
			wantErr: true,
		},
		{
			name: "fen with resume",
			modify: func(c *Config) {
				c.Game.StartFEN = "8/8/8/8/8/8/8/8 w - - 0 1"
				c.Game.ResumeID = "abc"
			},
			wantErr: true,
		},
		{
			name:    "missing sub-config",
			modify:  func(c *Config) { c.Game = nil },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, chesserrors.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

// TestConfig_SetStreams verifies stream setters
func TestConfig_SetStreams(t *testing.T) {
	cfg := NewConfig()
	out := &bytes.Buffer{}
	logBuf := &bytes.Buffer{}
	in := strings.NewReader("e2\n")

	cfg.SetOutput(out)
	cfg.SetLogFile(logBuf)
	cfg.SetInput(in)

	if cfg.OutputFile != out {
		t.Error("SetOutput did not set OutputFile")
	}
	if cfg.LogFile != logBuf {
		t.Error("SetLogFile did not set LogFile")
	}
	if cfg.InputFile != in {
		t.Error("SetInput did not set InputFile")
	}
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	out := &bytes.Buffer{}
	cfg := NewConfigBuilder().
		WithVerbosity(2).
		WithDataDir("/tmp/games").
		WithInMemoryStorage(true).
		WithStrictDestinations(false).
		WithShowControl(true).
		WithStartFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1").
		WithAuditWorkers(3).
		WithOutput(out).
		Build()

	if cfg.Verbosity != 2 {
		t.Errorf("Verbosity = %d, want 2", cfg.Verbosity)
	}
	if cfg.Storage.DataDir != "/tmp/games" {
		t.Errorf("DataDir = %q, want /tmp/games", cfg.Storage.DataDir)
	}
	if !cfg.Storage.InMemory {
		t.Error("Storage.InMemory should be true")
	}
	if cfg.Game.StrictDestinations {
		t.Error("Game.StrictDestinations should be false")
	}
	if !cfg.Game.ShowControl {
		t.Error("Game.ShowControl should be true")
	}
	if cfg.Game.StartFEN == "" {
		t.Error("Game.StartFEN should be set")
	}
	if cfg.Audit.Workers != 3 {
		t.Errorf("Audit.Workers = %d, want 3", cfg.Audit.Workers)
	}
	if cfg.OutputFile != out {
		t.Error("WithOutput did not set OutputFile")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("built config invalid: %v", err)
	}
}

// TestConfigBuilder_Resume verifies resume settings
func TestConfigBuilder_Resume(t *testing.T) {
	cfg := NewConfigBuilder().WithResume("game-1").Build()
	if cfg.Game.ResumeID != "game-1" {
		t.Errorf("ResumeID = %q, want game-1", cfg.Game.ResumeID)
	}
}

package config

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/chessmen-go/internal/errors"
)

// AuditConfig holds settings for auditing stored games.
type AuditConfig struct {
	// Workers is the number of goroutines checking games
	Workers int

	// BufferSize is the capacity of the work and result channels
	BufferSize int
}

// NewAuditConfig creates an AuditConfig with default values.
func NewAuditConfig() *AuditConfig {
	return &AuditConfig{
		Workers:    runtime.NumCPU(),
		BufferSize: 0,
	}
}

// Validate checks that the audit configuration is valid.
func (a *AuditConfig) Validate() error {
	if a == nil {
		return fmt.Errorf("missing audit config: %w", errors.ErrInvalidConfig)
	}
	if a.Workers < 1 {
		return fmt.Errorf("audit workers (%d) < 1: %w", a.Workers, errors.ErrInvalidConfig)
	}
	if a.BufferSize < 0 {
		return fmt.Errorf("audit buffer size (%d) < 0: %w", a.BufferSize, errors.ErrInvalidConfig)
	}
	return nil
}

package config

import (
	"fmt"

	"github.com/lgbarn/chessmen-go/internal/errors"
)

// DefaultDataDir is where games are stored unless told otherwise.
const DefaultDataDir = "chessmen-data"

// StorageConfig holds settings for the game store.
type StorageConfig struct {
	// DataDir is the badger directory for saved games
	DataDir string

	// InMemory keeps games in memory only; nothing survives the process
	InMemory bool
}

// NewStorageConfig creates a StorageConfig with default values.
func NewStorageConfig() *StorageConfig {
	return &StorageConfig{
		DataDir: DefaultDataDir,
	}
}

// Validate checks that the storage configuration is valid.
func (s *StorageConfig) Validate() error {
	if s == nil {
		return fmt.Errorf("missing storage config: %w", errors.ErrInvalidConfig)
	}
	if !s.InMemory && s.DataDir == "" {
		return fmt.Errorf("empty data directory: %w", errors.ErrInvalidConfig)
	}
	return nil
}

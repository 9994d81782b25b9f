package config

import (
	"fmt"

	"github.com/lgbarn/chessmen-go/internal/errors"
)

// GameConfig holds settings for how a game is played.
type GameConfig struct {
	// StrictDestinations rejects destinations outside the legal set
	StrictDestinations bool

	// ShowControl prints the squares the opponent controls with each prompt
	ShowControl bool

	// StartFEN starts new games from this layout instead of the standard one
	StartFEN string

	// ResumeID continues a saved game instead of starting a new one
	ResumeID string
}

// NewGameConfig creates a GameConfig with default values.
func NewGameConfig() *GameConfig {
	return &GameConfig{
		StrictDestinations: true,
	}
}

// Validate checks that the game configuration is valid.
func (g *GameConfig) Validate() error {
	if g == nil {
		return fmt.Errorf("missing game config: %w", errors.ErrInvalidConfig)
	}
	if g.StartFEN != "" && g.ResumeID != "" {
		return fmt.Errorf("start layout and resume are exclusive: %w", errors.ErrInvalidConfig)
	}
	return nil
}

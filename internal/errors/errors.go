// Package errors provides sentinel errors and error types for chessmen.
// It defines the common failure conditions of the rule engine and structured
// error types that keep move and game context while allowing inspection
// with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrOutOfBounds indicates a coordinate outside the 8x8 board.
	ErrOutOfBounds = errors.New("square out of bounds")

	// ErrSquareOccupied indicates a piece was placed on an occupied square.
	ErrSquareOccupied = errors.New("square occupied")

	// ErrNoPiece indicates a move was requested from an empty square.
	ErrNoPiece = errors.New("no piece on square")

	// ErrInvalidDestination indicates a destination outside the legal set.
	ErrInvalidDestination = errors.New("invalid destination")

	// ErrInvalidPromotion indicates a promotion kind other than Q, N, B or R.
	ErrInvalidPromotion = errors.New("invalid promotion choice")

	// ErrNotSelectable indicates a piece the current player may not select.
	ErrNotSelectable = errors.New("piece not selectable")

	// ErrWrongPhase indicates an action not allowed in the current turn phase.
	ErrWrongPhase = errors.New("action not allowed in current phase")

	// ErrGameOver indicates an action on a finished game.
	ErrGameOver = errors.New("game is over")

	// ErrInvalidSnapshot indicates a persisted board that cannot be restored.
	ErrInvalidSnapshot = errors.New("invalid snapshot")

	// ErrUnpersistableHook indicates a queued hook that cannot be serialized.
	ErrUnpersistableHook = errors.New("hook cannot be persisted")

	// ErrGameNotFound indicates an unknown game ID.
	ErrGameNotFound = errors.New("game not found")

	// ErrInvalidFEN indicates a malformed FEN layout string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps errors with move context: the ply, the player to move and
// the squares involved. It supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err    error  // The underlying error
	Ply    int    // 1-based half-move number (0 if not applicable)
	Player string // Player to move (if known)
	From   string // Source square name (if known)
	To     string // Destination square name (if known)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.Player != "" {
		parts = append(parts, e.Player)
	}

	switch {
	case e.From != "" && e.To != "":
		parts = append(parts, fmt.Sprintf("move %s-%s", e.From, e.To))
	case e.From != "":
		parts = append(parts, fmt.Sprintf("square %s", e.From))
	case e.To != "":
		parts = append(parts, fmt.Sprintf("square %s", e.To))
	}

	context := strings.Join(parts, ", ")
	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	if context == "" {
		return "move error"
	}
	return context
}

// Unwrap returns the underlying error.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// GameError wraps errors with the ID of the game and the operation that failed.
type GameError struct {
	Err    error  // The underlying error
	GameID string // Game identifier (if known)
	Op     string // Operation, e.g. "save", "load", "resume"
}

// Error returns a formatted error message.
func (e *GameError) Error() string {
	var parts []string
	if e.Op != "" {
		parts = append(parts, e.Op)
	}
	if e.GameID != "" {
		parts = append(parts, fmt.Sprintf("game %s", e.GameID))
	}
	context := strings.Join(parts, " ")

	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	if context == "" {
		return "game error"
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the GameError wrapper.
func (e *GameError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

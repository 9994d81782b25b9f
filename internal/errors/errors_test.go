package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors_Are verifies that sentinel errors are properly defined
// and can be checked with errors.Is()
func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrOutOfBounds", ErrOutOfBounds, ErrOutOfBounds},
		{"ErrSquareOccupied", ErrSquareOccupied, ErrSquareOccupied},
		{"ErrNoPiece", ErrNoPiece, ErrNoPiece},
		{"ErrInvalidDestination", ErrInvalidDestination, ErrInvalidDestination},
		{"ErrInvalidPromotion", ErrInvalidPromotion, ErrInvalidPromotion},
		{"ErrNotSelectable", ErrNotSelectable, ErrNotSelectable},
		{"ErrWrongPhase", ErrWrongPhase, ErrWrongPhase},
		{"ErrGameOver", ErrGameOver, ErrGameOver},
		{"ErrInvalidSnapshot", ErrInvalidSnapshot, ErrInvalidSnapshot},
		{"ErrUnpersistableHook", ErrUnpersistableHook, ErrUnpersistableHook},
		{"ErrGameNotFound", ErrGameNotFound, ErrGameNotFound},
		{"ErrInvalidFEN", ErrInvalidFEN, ErrInvalidFEN},
		{"ErrInvalidConfig", ErrInvalidConfig, ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

// TestSentinelErrors_Distinct verifies no two sentinels match each other
func TestSentinelErrors_Distinct(t *testing.T) {
	all := []error{
		ErrOutOfBounds, ErrSquareOccupied, ErrNoPiece, ErrInvalidDestination,
		ErrInvalidPromotion, ErrNotSelectable, ErrWrongPhase, ErrGameOver,
		ErrInvalidSnapshot, ErrUnpersistableHook, ErrGameNotFound, ErrInvalidFEN,
		ErrInvalidConfig,
	}
	for i, a := range all {
		for j, b := range all {
			if i != j && errors.Is(a, b) {
				t.Errorf("errors.Is(%v, %v) = true, want false", a, b)
			}
		}
	}
}

// TestSentinelErrors_Wrapping verifies wrapped sentinel errors can still be detected
func TestSentinelErrors_Wrapping(t *testing.T) {
	wrapped := fmt.Errorf("restoring board: %w", ErrInvalidSnapshot)

	if !errors.Is(wrapped, ErrInvalidSnapshot) {
		t.Errorf("errors.Is(wrapped, ErrInvalidSnapshot) = false, want true")
	}
}

// TestMoveError_Error verifies the error message format
func TestMoveError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *MoveError
		contains []string
	}{
		{
			name: "full context",
			err: &MoveError{
				Err:    ErrInvalidDestination,
				Ply:    7,
				Player: "White",
				From:   "e2",
				To:     "e5",
			},
			contains: []string{"ply 7", "White", "e2-e5", "invalid destination"},
		},
		{
			name: "source only",
			err: &MoveError{
				Err:  ErrNoPiece,
				From: "d4",
			},
			contains: []string{"square d4", "no piece"},
		},
		{
			name:     "no context",
			err:      &MoveError{Err: ErrWrongPhase},
			contains: []string{"not allowed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("MoveError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

// TestMoveError_As verifies that errors.As works with MoveError
func TestMoveError_As(t *testing.T) {
	moveErr := &MoveError{
		Err:  ErrInvalidDestination,
		Ply:  12,
		From: "a1",
		To:   "h8",
	}

	wrapped := fmt.Errorf("turn failed: %w", moveErr)

	var extracted *MoveError
	if !errors.As(wrapped, &extracted) {
		t.Fatal("errors.As() could not extract MoveError")
	}
	if extracted.Ply != 12 {
		t.Errorf("extracted.Ply = %d, want 12", extracted.Ply)
	}
	if !errors.Is(wrapped, ErrInvalidDestination) {
		t.Error("errors.Is(wrapped, ErrInvalidDestination) = false, want true")
	}
}

// TestGameError_Error verifies GameError formatting
func TestGameError_Error(t *testing.T) {
	err := &GameError{
		Err:    ErrGameNotFound,
		GameID: "0b0e4c1e",
		Op:     "resume",
	}

	msg := err.Error()
	for _, s := range []string{"resume", "0b0e4c1e", "game not found"} {
		if !containsIgnoreCase(msg, s) {
			t.Errorf("GameError.Error() = %q, should contain %q", msg, s)
		}
	}
}

// TestGameError_Unwrap verifies that GameError properly implements Unwrap
func TestGameError_Unwrap(t *testing.T) {
	gameErr := &GameError{Err: ErrInvalidSnapshot, GameID: "x"}

	unwrapped := errors.Unwrap(gameErr)
	if !errors.Is(unwrapped, ErrInvalidSnapshot) {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, ErrInvalidSnapshot)
	}
	if !errors.Is(gameErr, ErrInvalidSnapshot) {
		t.Error("errors.Is(gameErr, ErrInvalidSnapshot) = false, want true")
	}
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrSquareOccupied, "placing rook")

	if !errors.Is(wrapped, ErrSquareOccupied) {
		t.Error("Wrap should preserve the underlying error")
	}
	if msg := wrapped.Error(); !containsIgnoreCase(msg, "placing rook") {
		t.Errorf("Wrap should include context, got %q", msg)
	}
	if Wrap(nil, "ignored") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrOutOfBounds, "piece %d at row %d", 15, 9)

	if !errors.Is(wrapped, ErrOutOfBounds) {
		t.Error("Wrapf should preserve the underlying error")
	}
	if msg := wrapped.Error(); !containsIgnoreCase(msg, "piece 15") {
		t.Errorf("Wrapf should include formatted context, got %q", msg)
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func TestIsAs(t *testing.T) {
	err := Wrap(&GameError{Err: ErrGameNotFound, GameID: "g1", Op: "load"}, "resume")

	if !Is(err, ErrGameNotFound) {
		t.Error("Is(err, ErrGameNotFound) = false, want true")
	}
	if Is(err, ErrGameOver) {
		t.Error("Is(err, ErrGameOver) = true, want false")
	}

	var gameErr *GameError
	if !As(err, &gameErr) {
		t.Fatal("As() could not extract GameError")
	}
	if gameErr.GameID != "g1" {
		t.Errorf("gameErr.GameID = %q, want %q", gameErr.GameID, "g1")
	}
}

package arbiter

import (
	"fmt"

	"github.com/lgbarn/chessmen-go/internal/chess"
)

// Phase is the stage of the current turn.
type Phase int

const (
	// Idle is the phase before Start or Resume.
	Idle Phase = iota
	// AwaitingSelection waits for the current player to pick a piece.
	AwaitingSelection
	// AwaitingDestination waits for a destination for the selected piece.
	AwaitingDestination
	// TurnComplete is entered while the move's hooks run.
	TurnComplete
	// GameOver is final.
	GameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case Idle:
		return "Idle"
	case AwaitingSelection:
		return "AwaitingSelection"
	case AwaitingDestination:
		return "AwaitingDestination"
	case TurnComplete:
		return "TurnComplete"
	case GameOver:
		return "GameOver"
	}
	return "Unknown"
}

// State is a snapshot of the arbiter's state machine.
//
// Piece, Legal and Advisory are set in AwaitingDestination only. Winner is
// meaningful in GameOver only.
type State struct {
	Phase  Phase
	Player chess.Player

	Piece    *chess.Piece
	Legal    []chess.Position
	Advisory []chess.Position

	Winner chess.Player
}

// String returns e.g. "AwaitingSelection(White)".
func (s State) String() string {
	switch s.Phase {
	case AwaitingSelection:
		return fmt.Sprintf("%s(%s)", s.Phase, s.Player)
	case AwaitingDestination:
		return fmt.Sprintf("%s(%s, %s)", s.Phase, s.Player, s.Piece)
	case GameOver:
		return fmt.Sprintf("%s(%s)", s.Phase, s.Winner)
	}
	return s.Phase.String()
}

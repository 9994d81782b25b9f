package arbiter

import (
	"context"

	"github.com/lgbarn/chessmen-go/internal/chess"
	"github.com/lgbarn/chessmen-go/internal/engine"
)

// Selector asks the current player for a piece and a destination.
type Selector interface {
	RequestPieceSelection(ctx context.Context, player chess.Player, selectable []*chess.Piece) (*chess.Piece, error)
	// RequestDestinationSelection may return the piece's own square to cancel
	// the selection.
	RequestDestinationSelection(ctx context.Context, piece *chess.Piece, legal, advisory []chess.Position) (chess.Position, error)
}

// PromotionChooser supplies the kind a pawn promotes to.
type PromotionChooser = engine.PromotionChooser

// Notifier receives game events.
type Notifier interface {
	NotifyTurnStarted(player chess.Player)
	NotifyPieceRemoved(piece *chess.Piece)
	NotifyGameOver(winner chess.Player)
}

// Interactor is everything Play needs from a front end.
type Interactor interface {
	Selector
	PromotionChooser
	Notifier
}

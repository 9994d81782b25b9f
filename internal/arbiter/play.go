package arbiter

import (
	"context"

	"github.com/lgbarn/chessmen-go/internal/chess"
	"github.com/lgbarn/chessmen-go/internal/errors"
)

// Play drives the game to its end through ia and returns the winner.
//
// An Idle arbiter is started first. ia becomes the notifier and, unless one
// was configured, the promotion chooser. Play returns ctx's error if it is
// cancelled at a selection boundary; the board is left as it was after the
// last completed turn. Unselectable pieces and rejected destinations are
// logged and asked for again; any other error from ia ends Play.
func (a *Arbiter) Play(ctx context.Context, ia Interactor) (chess.Player, error) {
	a.notifier = ia
	if a.chooser == nil {
		a.chooser = ia
	}
	if a.state.Phase == Idle {
		if err := a.Start(); err != nil {
			return chess.White, err
		}
	}

	for {
		if a.state.Phase == GameOver {
			return a.state.Winner, nil
		}
		if err := ctx.Err(); err != nil {
			a.Deselect()
			return chess.White, err
		}

		switch a.state.Phase {
		case AwaitingSelection:
			pc, err := ia.RequestPieceSelection(ctx, a.state.Player, a.Selectable())
			if err != nil {
				return chess.White, err
			}
			ok, err := a.Select(pc)
			switch {
			case errors.Is(err, errors.ErrNotSelectable):
				a.logf(1, "%v", err)
			case err != nil:
				return chess.White, err
			case !ok:
				a.logf(1, "%s has no legal move", pc)
			}

		case AwaitingDestination:
			st := a.state
			dst, err := ia.RequestDestinationSelection(ctx, st.Piece, st.Legal, st.Advisory)
			if err != nil {
				a.Deselect()
				return chess.White, err
			}
			if err := a.Choose(ctx, dst); err != nil {
				if !retryable(err) {
					a.Deselect()
					return chess.White, err
				}
				a.logf(1, "%v", err)
			}

		default:
			return chess.White, errors.Wrapf(errors.ErrWrongPhase, "play in %s", a.state)
		}
	}
}

// retryable reports whether a failed Choose should prompt for another
// destination.
func retryable(err error) bool {
	return errors.Is(err, errors.ErrInvalidDestination) ||
		errors.Is(err, errors.ErrInvalidPromotion) ||
		errors.Is(err, errors.ErrSquareOccupied)
}

package engine

import (
	"context"

	"github.com/lgbarn/chessmen-go/internal/chess"
	"github.com/lgbarn/chessmen-go/internal/errors"
)

// PromotionChooser supplies the kind a pawn promotes to.
type PromotionChooser interface {
	RequestPromotionChoice(ctx context.Context, player chess.Player) (chess.PieceKind, error)
}

// MoveResult describes what a single executed move did to the board.
type MoveResult struct {
	Piece           *chess.Piece
	From            chess.Position
	To              chess.Position
	Captured        *chess.Piece // Occupant of To before the move
	EnPassantVictim *chess.Piece

	Castled    bool
	CastleRook *chess.Piece
	RookFrom   chess.Position
	RookTo     chess.Position

	// PromotionPending is set when a promotion hook was queued. The pawn is
	// replaced when the turn-completion hooks run.
	PromotionPending bool
	Promotion        chess.PieceKind
}

// Removed returns the pieces the move took off the board.
func (r *MoveResult) Removed() []*chess.Piece {
	var out []*chess.Piece
	if r.Captured != nil {
		out = append(out, r.Captured)
	}
	if r.EnPassantVictim != nil {
		out = append(out, r.EnPassantVictim)
	}
	return out
}

// ExecuteMove moves the piece on from to to and applies every side effect of
// the move: capture, en passant, castling rook and promotion hook.
//
// The destination is not checked against LegalDestinations; callers are
// expected to pass a legal move. All failures are detected before the board
// is touched, so a failed call leaves the board unchanged.
func ExecuteMove(ctx context.Context, board *chess.Board, from, to chess.Position, chooser PromotionChooser) (*MoveResult, error) {
	if !chess.InBoard(from) || !chess.InBoard(to) {
		return nil, moveError(errors.ErrOutOfBounds, board, from, to)
	}
	pc := board.At(from)
	if pc == nil {
		return nil, moveError(errors.ErrNoPiece, board, from, to)
	}
	if from == to {
		return nil, moveError(errors.ErrInvalidDestination, board, from, to)
	}
	captured := board.At(to)
	if captured != nil && captured.Owner == pc.Owner {
		return nil, moveError(errors.ErrSquareOccupied, board, from, to)
	}

	res := &MoveResult{Piece: pc, From: from, To: to, Captured: captured}

	// Validate the castling rook before any mutation.
	if pc.Kind == chess.King && abs(to.Col-from.Col) > 1 {
		rookFrom, rookTo := castleRookSquares(from, to)
		rook := board.At(rookFrom)
		if rook == nil || rook.Kind != chess.Rook || rook.Owner != pc.Owner || board.HasPiece(rookTo) || captured != nil {
			return nil, moveError(errors.ErrInvalidDestination, board, from, to)
		}
		res.Castled = true
		res.CastleRook = rook
		res.RookFrom = rookFrom
		res.RookTo = rookTo
	}

	if isPromotion(pc, to, captured) {
		kind, err := choosePromotion(ctx, chooser, pc.Owner)
		if err != nil {
			return nil, moveError(err, board, from, to)
		}
		res.PromotionPending = true
		res.Promotion = kind
	}

	if captured != nil {
		board.RemovePiece(captured)
	}

	switch pc.Kind {
	case chess.Pawn:
		applyPawnEffects(board, pc, to, captured, res)
	case chess.King:
		pc.HasMoved = true
		if res.Castled {
			// Both squares were checked above.
			_ = board.Relocate(res.RookFrom, res.RookTo)
			res.CastleRook.HasMoved = true
		}
	case chess.Rook:
		pc.HasMoved = true
	}

	// The destination is empty: either it was or its occupant was removed.
	_ = board.Relocate(from, to)
	return res, nil
}

// choosePromotion asks chooser for a promotion kind. A nil chooser promotes
// to a queen.
func choosePromotion(ctx context.Context, chooser PromotionChooser, player chess.Player) (chess.PieceKind, error) {
	if chooser == nil {
		return chess.Queen, nil
	}
	kind, err := chooser.RequestPromotionChoice(ctx, player)
	if err != nil {
		return 0, err
	}
	if !kind.IsPromotionChoice() {
		return 0, errors.Wrapf(errors.ErrInvalidPromotion, "%s", kind)
	}
	return kind, nil
}

func moveError(err error, board *chess.Board, from, to chess.Position) error {
	return &errors.MoveError{
		Err:    err,
		Player: board.Turn.String(),
		From:   from.String(),
		To:     to.String(),
	}
}

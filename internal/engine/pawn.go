package engine

import "github.com/lgbarn/chessmen-go/internal/chess"

// pawnDestinations generates pawn pushes, captures and en passant captures.
func pawnDestinations(board *chess.Board, pawn *chess.Piece, from chess.Position) []chess.Position {
	dir := pawn.Owner.Direction()
	var out []chess.Position

	one := from.Offset(dir, 0)
	if chess.InBoard(one) && !board.HasPiece(one) {
		out = append(out, one)
		// Double push on the first move
		two := from.Offset(2*dir, 0)
		if !pawn.HasMoved && chess.InBoard(two) && !board.HasPiece(two) {
			out = append(out, two)
		}
	}

	for _, dc := range []int{-1, 1} {
		diag := from.Offset(dir, dc)
		if !chess.InBoard(diag) {
			continue
		}
		if owner, ok := board.OwnerAt(diag); ok {
			if owner != pawn.Owner {
				out = append(out, diag)
			}
			continue
		}
		if enPassantVictim(board, pawn.Owner, from.Offset(0, dc)) != nil {
			out = append(out, diag)
		}
	}
	return out
}

// pawnControl returns the diagonal-forward squares regardless of occupancy.
func pawnControl(pawn *chess.Piece, from chess.Position) []chess.Position {
	dir := pawn.Owner.Direction()
	var out []chess.Position
	for _, dc := range []int{-1, 1} {
		if diag := from.Offset(dir, dc); chess.InBoard(diag) {
			out = append(out, diag)
		}
	}
	return out
}

// enPassantVictim returns the enemy pawn on beside that may be taken en
// passant by a pawn of mover, or nil.
func enPassantVictim(board *chess.Board, mover chess.Player, beside chess.Position) *chess.Piece {
	pc := board.At(beside)
	if pc == nil || pc.Kind != chess.Pawn || pc.Owner == mover || !pc.EnPassantEligible {
		return nil
	}
	return pc
}

// isPromotion reports whether moving pawn to to reaches its far row. A pawn
// that captures a king does not promote: the game is already decided.
func isPromotion(pawn *chess.Piece, to chess.Position, captured *chess.Piece) bool {
	if pawn.Kind != chess.Pawn || to.Row != pawn.Owner.FarRow() {
		return false
	}
	return captured == nil || captured.Kind != chess.King
}

// applyPawnEffects performs the pawn side effects of a move to to.
// captured is the piece that stood on to before the move, if any.
func applyPawnEffects(board *chess.Board, pawn *chess.Piece, to chess.Position, captured *chess.Piece, res *MoveResult) {
	from := pawn.Position

	if !pawn.HasMoved {
		pawn.HasMoved = true
		pawn.EnPassantEligible = true
		board.Enqueue(chess.Hook{Kind: chess.HookArmEnPassantExpiry, PieceID: pawn.ID})
	}

	// A diagonal step onto an empty square is an en passant capture.
	if to.Col != from.Col && captured == nil {
		if victim := enPassantVictim(board, pawn.Owner, chess.Pos(from.Row, to.Col)); victim != nil {
			res.EnPassantVictim = board.RemovePiece(victim)
		}
	}

	if res.PromotionPending {
		board.EnqueueFront(chess.Hook{Kind: chess.HookPromote, PieceID: pawn.ID, Promotion: res.Promotion})
	}
}

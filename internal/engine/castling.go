package engine

import "github.com/lgbarn/chessmen-go/internal/chess"

// castleSide describes one castling direction.
type castleSide struct {
	rookCol int // Corner the rook starts on
	step    int // Column direction the king travels
}

var (
	kingside    = castleSide{rookCol: chess.BoardSize - 1, step: 1}
	queenside   = castleSide{rookCol: 0, step: -1}
	castleSides = []castleSide{kingside, queenside}
)

// sideFor returns the castling side for a king move of dc columns.
func sideFor(dc int) castleSide {
	if dc > 0 {
		return kingside
	}
	return queenside
}

// castlingTargets returns the castling destinations available to king.
func castlingTargets(board *chess.Board, king *chess.Piece) []chess.Position {
	if king.HasMoved {
		return nil
	}
	var out []chess.Position
	var control []chess.Position
	computed := false
	for _, side := range castleSides {
		if !castlePathClear(board, king, side) {
			continue
		}
		if !computed {
			control = EnemyControl(board, king.Owner)
			computed = true
		}
		if castlePathSafe(king, side, control) {
			out = append(out, king.Position.Offset(0, 2*side.step))
		}
	}
	return out
}

// castlePathClear checks the rook and the squares between king and rook.
func castlePathClear(board *chess.Board, king *chess.Piece, side castleSide) bool {
	from := king.Position
	if abs(side.rookCol-from.Col) <= 2 {
		return false
	}
	rook := board.At(chess.Pos(from.Row, side.rookCol))
	if rook == nil || rook.Kind != chess.Rook || rook.Owner != king.Owner || rook.HasMoved {
		return false
	}
	for col := from.Col + side.step; col != side.rookCol; col += side.step {
		if board.HasPiece(chess.Pos(from.Row, col)) {
			return false
		}
	}
	return true
}

// castlePathSafe reports whether none of the squares the king stands on,
// crosses or lands on is controlled by the opponent.
func castlePathSafe(king *chess.Piece, side castleSide, control []chess.Position) bool {
	from := king.Position
	for i := 0; i <= 2; i++ {
		if ContainsPosition(control, from.Offset(0, i*side.step)) {
			return false
		}
	}
	return true
}

// castleRookSquares returns where the rook starts and lands for a king moving
// from from to to. The rook lands beside the king's new square.
func castleRookSquares(from, to chess.Position) (rookFrom, rookTo chess.Position) {
	side := sideFor(to.Col - from.Col)
	return chess.Pos(from.Row, side.rookCol), to.Offset(0, -side.step)
}

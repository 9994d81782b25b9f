package engine

import (
	"slices"

	"github.com/lgbarn/chessmen-go/internal/chess"
)

// ComparePositions orders positions by row, then column.
func ComparePositions(a, b chess.Position) int {
	if a.Row != b.Row {
		return a.Row - b.Row
	}
	return a.Col - b.Col
}

// UniqueControlledSquares sorts positions by (row, col) and drops duplicates.
// The input slice is not modified.
func UniqueControlledSquares(positions []chess.Position) []chess.Position {
	out := make([]chess.Position, len(positions))
	copy(out, positions)
	slices.SortFunc(out, ComparePositions)
	return slices.Compact(out)
}

// ContainsPosition reports whether p is in a slice sorted by ComparePositions.
func ContainsPosition(sorted []chess.Position, p chess.Position) bool {
	_, found := slices.BinarySearchFunc(sorted, p, ComparePositions)
	return found
}

// EnemyControl returns the sorted, duplicate-free union of the squares
// controlled by every piece of player's opponent.
func EnemyControl(board *chess.Board, player chess.Player) []chess.Position {
	var all []chess.Position
	for _, pc := range board.PiecesOf(player.Opposite()) {
		all = append(all, ControlledSquares(board, pc)...)
	}
	return UniqueControlledSquares(all)
}

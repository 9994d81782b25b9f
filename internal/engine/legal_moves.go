// Package engine provides move generation and move execution for the
// chessmen rule engine.
package engine

import "github.com/lgbarn/chessmen-go/internal/chess"

var (
	knightOffsets = [][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	kingOffsets   = [][2]int{{0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1}}
	diagonalDirs  = [][2]int{{1, 1}, {1, -1}, {-1, -1}, {-1, 1}}
	straightDirs  = [][2]int{{1, 0}, {-1, 0}, {0, -1}, {0, 1}}
	queenDirs     = append(append([][2]int{}, straightDirs...), diagonalDirs...)
)

// LegalDestinations returns the squares pc may move to this turn.
func LegalDestinations(board *chess.Board, pc *chess.Piece) []chess.Position {
	return LegalDestinationsFrom(board, pc, pc.Position)
}

// LegalDestinationsFrom returns the squares pc could move to if it stood on
// from. Castling is only offered from the king's actual square.
func LegalDestinationsFrom(board *chess.Board, pc *chess.Piece, from chess.Position) []chess.Position {
	switch pc.Kind {
	case chess.Knight:
		return stepTargets(board, pc.Owner, from, knightOffsets)
	case chess.Bishop:
		return slideTargets(board, pc.Owner, from, diagonalDirs)
	case chess.Rook:
		return slideTargets(board, pc.Owner, from, straightDirs)
	case chess.Queen:
		return slideTargets(board, pc.Owner, from, queenDirs)
	case chess.King:
		out := stepTargets(board, pc.Owner, from, kingOffsets)
		if from == pc.Position {
			out = append(out, castlingTargets(board, pc)...)
		}
		return out
	case chess.Pawn:
		return pawnDestinations(board, pc, from)
	}
	return nil
}

// ControlledSquares returns the squares pc attacks or defends. It is used
// for castling safety only.
func ControlledSquares(board *chess.Board, pc *chess.Piece) []chess.Position {
	return ControlledSquaresFrom(board, pc, pc.Position)
}

// ControlledSquaresFrom returns the squares pc would control from from.
// Kings never control their castling targets.
func ControlledSquaresFrom(board *chess.Board, pc *chess.Piece, from chess.Position) []chess.Position {
	switch pc.Kind {
	case chess.King:
		return stepTargets(board, pc.Owner, from, kingOffsets)
	case chess.Pawn:
		return pawnControl(pc, from)
	}
	return LegalDestinationsFrom(board, pc, from)
}

// stepTargets returns the in-board squares at the given offsets that are not
// occupied by owner's pieces.
func stepTargets(board *chess.Board, owner chess.Player, from chess.Position, offsets [][2]int) []chess.Position {
	var out []chess.Position
	for _, off := range offsets {
		to := from.Offset(off[0], off[1])
		if !chess.InBoard(to) {
			continue
		}
		if o, ok := board.OwnerAt(to); ok && o == owner {
			continue
		}
		out = append(out, to)
	}
	return out
}

// slideTargets casts a ray along each direction until the board edge, an own
// piece (excluded) or an enemy piece (included).
func slideTargets(board *chess.Board, owner chess.Player, from chess.Position, dirs [][2]int) []chess.Position {
	var out []chess.Position
	for _, dir := range dirs {
		for to := from.Offset(dir[0], dir[1]); chess.InBoard(to); to = to.Offset(dir[0], dir[1]) {
			o, occupied := board.OwnerAt(to)
			if occupied && o == owner {
				break
			}
			out = append(out, to)
			if occupied {
				break // Captures end the ray
			}
		}
	}
	return out
}

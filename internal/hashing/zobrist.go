package hashing

import (
	"sync"

	"github.com/lgbarn/chessmen-go/internal/chess"
)

const (
	numSquares = chess.BoardSize * chess.BoardSize
	numKinds   = 6
)

var (
	zobristOnce sync.Once

	zobristPieces    [2][numKinds][numSquares]uint64
	zobristUnmoved   [2][numSquares]uint64
	zobristEnPassant [numSquares]uint64
	zobristSide      uint64
)

func initZobrist() {
	zobristOnce.Do(func() {
		seed := uint64(0x9E3779B97F4A7C15)
		next := func() uint64 {
			seed += 0x9E3779B97F4A7C15
			z := seed
			z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
			z = (z ^ (z >> 27)) * 0x94D049BB133111EB
			return z ^ (z >> 31)
		}

		for side := 0; side < 2; side++ {
			for kind := 0; kind < numKinds; kind++ {
				for sq := 0; sq < numSquares; sq++ {
					zobristPieces[side][kind][sq] = next()
				}
			}
			for sq := 0; sq < numSquares; sq++ {
				zobristUnmoved[side][sq] = next()
			}
		}
		for sq := 0; sq < numSquares; sq++ {
			zobristEnPassant[sq] = next()
		}
		zobristSide = next()
	})
}

func square(p chess.Position) int {
	return p.Row*chess.BoardSize + p.Col
}

// GenerateZobristHash hashes the position: the pieces, the side to move,
// which kings, rooks and pawns are still unmoved, and which pawns may be
// taken en passant. Piece IDs and queued hooks are not part of it.
func GenerateZobristHash(board *chess.Board) uint64 {
	initZobrist()

	var h uint64
	for _, pc := range board.Pieces() {
		side, sq := int(pc.Owner), square(pc.Position)
		h ^= zobristPieces[side][pc.Kind][sq]
		switch pc.Kind {
		case chess.King, chess.Rook, chess.Pawn:
			if !pc.HasMoved {
				h ^= zobristUnmoved[side][sq]
			}
		}
		if pc.EnPassantEligible {
			h ^= zobristEnPassant[sq]
		}
	}
	if board.Turn == chess.Black {
		h ^= zobristSide
	}
	return h
}

// WeakHash is a cheap order-independent checksum of piece placement.
func WeakHash(board *chess.Board) uint64 {
	var h uint64
	for _, pc := range board.Pieces() {
		code := uint64(pc.Kind+1) + uint64(pc.Owner)*numKinds
		h += code * uint64(square(pc.Position)+1)
	}
	return h
}

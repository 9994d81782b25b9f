// Package hashing provides duplicate detection for stored games.
package hashing

import (
	"github.com/lgbarn/chessmen-go/internal/chess"
)

// DuplicateDetector tracks seen positions for duplicate game detection.
// It is not safe for concurrent use.
type DuplicateDetector struct {
	// hashTable maps Zobrist hashes to the games that reached them
	hashTable map[uint64][]GameSignature
	// useExactMatch also requires equal ply counts
	useExactMatch bool
	// duplicateCount tracks number of duplicates found
	duplicateCount int
}

// GameSignature stores identifying information about a game.
type GameSignature struct {
	// GameID identifies the stored game
	GameID string
	// Hash is the Zobrist hash of the current position
	Hash uint64
	// Plies is the number of half-moves played
	Plies int
	// WeakHash is a fast hash for a second comparison
	WeakHash uint64
}

// NewDuplicateDetector creates a new duplicate detector.
func NewDuplicateDetector(exactMatch bool) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:     make(map[uint64][]GameSignature),
		useExactMatch: exactMatch,
	}
}

// NewSignature computes the signature of a game's board.
func NewSignature(id string, board *chess.Board, plies int) GameSignature {
	return GameSignature{
		GameID:   id,
		Hash:     GenerateZobristHash(board),
		Plies:    plies,
		WeakHash: WeakHash(board),
	}
}

// CheckAndAdd records sig and returns the signature of an earlier game in
// the same position, if there is one.
func (d *DuplicateDetector) CheckAndAdd(sig GameSignature) (GameSignature, bool) {
	for _, existing := range d.hashTable[sig.Hash] {
		if d.signaturesMatch(sig, existing) {
			d.duplicateCount++
			return existing, true
		}
	}
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	return GameSignature{}, false
}

// signaturesMatch checks if two game signatures match.
func (d *DuplicateDetector) signaturesMatch(a, b GameSignature) bool {
	if a.Hash != b.Hash || a.WeakHash != b.WeakHash {
		return false
	}
	if d.useExactMatch && a.Plies != b.Plies {
		return false
	}
	return true
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique games.
func (d *DuplicateDetector) UniqueCount() int {
	count := 0
	for _, sigs := range d.hashTable {
		count += len(sigs)
	}
	return count
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]GameSignature)
	d.duplicateCount = 0
}

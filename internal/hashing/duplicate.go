package hashing

import (
	"github.com/lgbarn/chessai-go/internal/engine"
)

// GameSignature stores identifying information about a finished game.
type GameSignature struct {
	// Hash is the Zobrist hash of the final position.
	Hash uint64
	// MoveHash hashes the full move sequence.
	MoveHash uint64
	// Plies is the number of half-moves played.
	Plies int
}

// Signature computes the signature of g in its current state.
func Signature(g *engine.Game) GameSignature {
	return GameSignature{
		Hash:     PositionHash(g),
		MoveHash: MoveSequenceHash(g),
		Plies:    g.Ply(),
	}
}

// DuplicateDetector tracks seen games. Two games are duplicates when they
// reach the same final position after the same number of plies; in exact
// mode the move sequences must match as well.
type DuplicateDetector struct {
	hashTable      map[uint64][]GameSignature
	useExactMatch  bool
	duplicateCount int
}

// NewDuplicateDetector creates a new duplicate detector.
func NewDuplicateDetector(exactMatch bool) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:     make(map[uint64][]GameSignature),
		useExactMatch: exactMatch,
	}
}

// CheckAndAdd records g and reports whether an equivalent game was already
// seen. Duplicates are counted but not stored again.
func (d *DuplicateDetector) CheckAndAdd(g *engine.Game) bool {
	sig := Signature(g)
	for _, seen := range d.hashTable[sig.Hash] {
		if d.signaturesMatch(sig, seen) {
			d.duplicateCount++
			return true
		}
	}
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	return false
}

func (d *DuplicateDetector) signaturesMatch(a, b GameSignature) bool {
	if a.Hash != b.Hash || a.Plies != b.Plies {
		return false
	}
	return !d.useExactMatch || a.MoveHash == b.MoveHash
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

package hashing

import (
	"sync"

	"github.com/lgbarn/chessai-go/internal/engine"
)

// ThreadSafeDuplicateDetector wraps DuplicateDetector with mutex protection for concurrent access.
type ThreadSafeDuplicateDetector struct {
	detector *DuplicateDetector
	mu       sync.RWMutex
}

// NewThreadSafeDuplicateDetector creates a new thread-safe detector.
func NewThreadSafeDuplicateDetector(exactMatch bool) *ThreadSafeDuplicateDetector {
	return &ThreadSafeDuplicateDetector{
		detector: NewDuplicateDetector(exactMatch),
	}
}

// CheckAndAdd atomically checks whether g is a duplicate and records it.
// The caller must not mutate g concurrently.
func (d *ThreadSafeDuplicateDetector) CheckAndAdd(g *engine.Game) bool {
	sig := Signature(g)
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, seen := range d.detector.hashTable[sig.Hash] {
		if d.detector.signaturesMatch(sig, seen) {
			d.detector.duplicateCount++
			return true
		}
	}
	d.detector.hashTable[sig.Hash] = append(d.detector.hashTable[sig.Hash], sig)
	return false
}

// DuplicateCount returns the number of duplicates detected.
func (d *ThreadSafeDuplicateDetector) DuplicateCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.detector.DuplicateCount()
}

// UniqueCount returns the number of unique games.
func (d *ThreadSafeDuplicateDetector) UniqueCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.detector.UniqueCount()
}

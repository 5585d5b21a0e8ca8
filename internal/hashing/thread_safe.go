package hashing

import "sync"

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

// Add atomically records sig and reports whether it duplicates an earlier one.
func (d *ThreadSafeDuplicateDetector) Add(sig Signature) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.detector.Add(sig)
}

// Duplicates returns the groups of matching games.
func (d *ThreadSafeDuplicateDetector) Duplicates() [][]string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.detector.Duplicates()
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

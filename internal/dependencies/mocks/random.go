package mocks

import (
	"sync"

	"github.com/mcoot/scrabb-go/internal/dependencies/random"
)

// MockRandom is a queue-driven Random for tests. Intn results are clamped
// into [0, n) so a queued value can never index past a shrinking bag.
type MockRandom struct {
	mu sync.Mutex

	intnResults []int
	intnIndex   int
	intnBounds  []int

	stringResults []string
	stringIndex   int
}

var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a new MockRandom
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// Intn returns the next queued result, or 0 if none remaining
func (r *MockRandom) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.intnBounds = append(r.intnBounds, n)
	if r.intnIndex >= len(r.intnResults) || n <= 0 {
		return 0
	}
	result := r.intnResults[r.intnIndex]
	r.intnIndex++
	if result >= n {
		result = n - 1
	}
	return result
}

// String returns the next queued result, or empty string if none remaining
func (r *MockRandom) String(length int, alphabet string) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.stringIndex >= len(r.stringResults) {
		return ""
	}
	result := r.stringResults[r.stringIndex]
	r.stringIndex++
	return result
}

// QueueIntn adds values to the Intn result queue
func (r *MockRandom) QueueIntn(values ...int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.intnResults = append(r.intnResults, values...)
}

// QueueString adds values to the String result queue
func (r *MockRandom) QueueString(values ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stringResults = append(r.stringResults, values...)
}

// IntnBounds returns the n passed to each Intn call so far
func (r *MockRandom) IntnBounds() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int(nil), r.intnBounds...)
}

// Reset clears all queued results and recorded calls
func (r *MockRandom) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.intnResults = nil
	r.intnIndex = 0
	r.intnBounds = nil
	r.stringResults = nil
	r.stringIndex = 0
}

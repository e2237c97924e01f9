package quiz

import (
	"math/rand/v2"
	"sync"
)

// Source yields uniformly distributed numbers in [0, 1).
// Every random decision of the generator goes through it.
type Source interface {
	Float64() float64
}

// SourceFunc adapts a function to Source.
type SourceFunc func() float64

func (f SourceFunc) Float64() float64 { return f() }

// DefaultSource returns a non-deterministic source that is safe for concurrent use.
func DefaultSource() Source {
	return SourceFunc(rand.Float64)
}

// NewSeededSource returns a deterministic source. It must not be shared between goroutines.
func NewSeededSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// SequenceSource replays a fixed list of values, wrapping around at the end.
// It is meant for tests that need reproducible shuffles and kind selection.
type SequenceSource struct {
	mu     sync.Mutex
	values []float64
	next   int
}

// NewSequenceSource creates a source replaying values. An empty list always yields 0.
func NewSequenceSource(values ...float64) *SequenceSource {
	return &SequenceSource{values: values}
}

func (s *SequenceSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

// intn returns a number in [0, n) drawn from src. n must be positive.
func intn(src Source, n int) int {
	i := int(src.Float64() * float64(n))
	return min(max(i, 0), n-1)
}

// shuffle permutes s in place (Fisher-Yates).
func shuffle[T any](src Source, s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := intn(src, i+1)
		s[i], s[j] = s[j], s[i]
	}
}

// coin returns true with probability 1/2.
func coin(src Source) bool {
	return src.Float64() < 0.5
}

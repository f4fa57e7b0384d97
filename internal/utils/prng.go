// internal/utils/prng.go
package utils

import (
	"math"
	"math/rand"
	"time"
)

// PRNGService wraps a seeded generator so every random draw in the
// simulation (spawn angle, enemy type) is reproducible.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService creates a service with the given seed.
// A zero seed uses the current time.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Intn returns an int in [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 returns a float in [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Angle returns a uniform angle in [0, 2π).
func (s *PRNGService) Angle() float64 {
	return s.rng.Float64() * 2 * math.Pi
}

// ChooseWeighted picks an index by cumulative-weight roulette over one
// uniform [0,1) draw scaled by the total weight. Non-positive weights are
// never chosen. Returns -1 if nothing can be chosen or the total is not
// finite.
func (s *PRNGService) ChooseWeighted(weights []float64) int {
	total := 0.0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 || math.IsInf(total, 1) {
		return -1
	}

	r := s.Float64() * total
	upto := 0.0
	last := -1
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		upto += w
		last = i
		if r < upto {
			return i
		}
	}

	// float rounding can leave r == total
	return last
}

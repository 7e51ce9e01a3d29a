// internal/solver/partition.go
//
// Groups a candidate set into buckets keyed by the feedback pattern one
// guess would receive against each candidate. Used both to score a guess
// (bucket-size distribution) and to generate child subproblems.

package solver

import (
	"sort"

	"github.com/aetimmes/wordle-minimax/internal/feedback"
)

// partition buckets cs by the feedback pattern of guess against each
// candidate. By construction the buckets exactly partition cs: their union
// equals cs, they are pairwise disjoint, and no empty bucket is created.
// Cost is O(|cs| · WordLen).
func (s *Solver) partition(guess string, cs candidateSet) map[feedback.Pattern]candidateSet {
	buckets := make(map[feedback.Pattern]candidateSet)
	for _, idx := range cs {
		p := feedback.Score(guess, s.answers[idx])
		buckets[p] = append(buckets[p], idx)
	}
	return buckets
}

// sortedPatterns returns the bucket keys in ascending order so callers walk
// buckets deterministically.
func sortedPatterns(buckets map[feedback.Pattern]candidateSet) []feedback.Pattern {
	out := make([]feedback.Pattern, 0, len(buckets))
	for p := range buckets {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

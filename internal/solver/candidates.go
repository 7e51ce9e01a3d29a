// internal/solver/candidates.go
//
// Candidate set representation and the solver's error taxonomy.
// A candidate set is an immutable snapshot of the answer indices still
// consistent with all feedback observed so far: created whole by the
// orchestrator or as a partition bucket, consumed by one recursive call,
// never mutated in place.

package solver

import "errors"

var (
	// ErrWordLength reports a prefix word that is not the required length.
	ErrWordLength = errors.New("word has wrong length")

	// ErrUnknownGuess reports a prefix word outside the legal-guess vocabulary.
	ErrUnknownGuess = errors.New("word is not in the legal-guess vocabulary")

	// ErrExhausted reports that no guess resolves a candidate set within the
	// remaining attempt budget. Surfaced per leaf, not fatal to a whole run.
	ErrExhausted = errors.New("unsolvable within the remaining attempts")

	// ErrEmptyBucket reports a partition that failed to cover its input.
	// This is an internal invariant violation and is fatal.
	ErrEmptyBucket = errors.New("partition lost candidates")
)

// candidateSet holds sorted indices into the answer vocabulary. Indices are
// uint16; answer lists are a few thousand words.
type candidateSet []uint16

// words maps the set back to answer words. The result is lexicographically
// sorted because the answer list is sorted and indices are ascending.
func (c candidateSet) words(answers []string) []string {
	out := make([]string, len(c))
	for i, idx := range c {
		out[i] = answers[idx]
	}
	return out
}

// internal/solver/minimax.go
//
// Exhaustive minimax over feedback partitions.
//
// search(cs, budget) returns the minimal worst-case number of further
// guesses needed to identify the secret when cs candidates remain, together
// with the guess achieving it. Guesses are drawn from the full legal-guess
// vocabulary, not just cs: probing with a non-candidate can split the set
// more evenly.
//
// Pruning (both are required to keep the search tractable):
//   - Depth floor: once some guess's worst case matches the
//     information-theoretic floor for |cs|, no other guess can do better
//     and the scan stops.
//   - Branch-and-bound: while scanning one guess's buckets, the running
//     bucket maximum is compared against the incumbent best; a guess that
//     can no longer win (or tie and out-rank) is abandoned mid-scan. The
//     incumbent is plain local state threaded through the scan, never
//     shared mutable state across the call tree.

package solver

import (
	"fmt"

	"github.com/aetimmes/wordle-minimax/internal/feedback"
)

// SearchResult is the outcome of a minimax search over one candidate set.
type SearchResult struct {
	// Depth is the worst-case number of further guesses needed to identify
	// the secret uniquely.
	Depth int
	// Guess is the optimal guess after tie-breaking.
	Guess string
	// Singletons is the number of single-candidate buckets Guess produces.
	Singletons int
	// InSet reports whether Guess is itself a member of the candidate set.
	InSet bool
}

// search resolves one (candidate set, budget) subproblem through the memo.
func (s *Solver) search(cs candidateSet, budget int) (SearchResult, error) {
	if len(cs) == 1 {
		// The sole remaining candidate is already identified.
		return SearchResult{Depth: 0, Guess: s.answers[cs[0]], InSet: true}, nil
	}
	if budget <= 0 {
		return SearchResult{}, fmt.Errorf("%d candidates left: %w", len(cs), ErrExhausted)
	}
	return s.memo.do(memoKey(cs, budget), func() (SearchResult, error) {
		return s.minimax(cs, budget)
	})
}

// minimax runs the uncached recurrence: min over legal guesses of the max
// over feedback buckets of the per-bucket cost. A singleton bucket costs 1
// (the secret is identified by this guess, or is this guess); a larger
// bucket costs 1 plus its own worst case with one less attempt.
//
// Candidate-set members are scanned before the rest of the vocabulary, each
// group in lexicographic order. Together with the tie-break in better(),
// this makes the chosen guess deterministic and lets the depth-floor stop
// land on a member whenever a member achieves the floor.
func (s *Solver) minimax(cs candidateSet, budget int) (SearchResult, error) {
	floor := depthFloor(len(cs))
	members := cs.words(s.answers)
	memberSet := make(map[string]struct{}, len(members))
	for _, w := range members {
		memberSet[w] = struct{}{}
	}

	var best SearchResult
	found := false

	try := func(g string, inSet bool) (stop bool) {
		worst, singles, ok := s.evalGuess(g, cs, budget, best, found, inSet)
		if !ok {
			return false
		}
		cand := SearchResult{Depth: worst, Guess: g, Singletons: singles, InSet: inSet}
		if !found || better(cand, best) {
			best = cand
			found = true
		}
		return best.Depth == floor
	}

	stopped := false
	for _, g := range members {
		if try(g, true) {
			stopped = true
			break
		}
	}
	if !stopped {
		for _, g := range s.guesses {
			if _, ok := memberSet[g]; ok {
				continue
			}
			if try(g, false) {
				break
			}
		}
	}

	if !found {
		return SearchResult{}, fmt.Errorf("%d candidates, %d attempts: %w", len(cs), budget, ErrExhausted)
	}
	return best, nil
}

// evalGuess computes the worst-case cost of one guess over cs. ok is false
// when the guess was abandoned: it yields no information, some bucket is
// unsolvable within the budget, or branch-and-bound proved it cannot beat
// the incumbent best.
func (s *Solver) evalGuess(g string, cs candidateSet, budget int, best SearchResult, haveBest bool, inSet bool) (worst, singles int, ok bool) {
	buckets := s.partition(g, cs)
	if len(buckets) == 1 {
		// A single bucket spanning the whole set means the guess cannot
		// distinguish anything; recursing would only burn budget.
		return 0, 0, false
	}
	for _, p := range sortedPatterns(buckets) {
		b := buckets[p]
		d := 1
		if len(b) > 1 {
			sub, err := s.search(b, budget-1)
			if err != nil {
				return 0, 0, false
			}
			d = 1 + sub.Depth
		} else {
			singles++
		}
		if d > worst {
			worst = d
		}
		if haveBest && (worst > best.Depth || (worst == best.Depth && best.InSet && !inSet)) {
			// Already at least as deep as the incumbent and unable to win
			// the membership tie-break: the remaining buckets cannot help.
			return 0, 0, false
		}
	}
	return worst, singles, true
}

// better applies the fixed tie-break policy: lower depth, then candidate-set
// membership, then more singleton buckets, then lexicographic order.
func better(cand, best SearchResult) bool {
	if cand.Depth != best.Depth {
		return cand.Depth < best.Depth
	}
	if cand.InSet != best.InSet {
		return cand.InSet
	}
	if cand.Singletons != best.Singletons {
		return cand.Singletons > best.Singletons
	}
	return cand.Guess < best.Guess
}

// depthFloor is the information-theoretic minimum number of guesses that
// can split n candidates: one guess yields at most NumPatterns distinct
// outcomes, so d guesses distinguish at most NumPatterns^d candidates.
func depthFloor(n int) int {
	d := 0
	reach := 1
	for reach < n {
		d++
		reach *= feedback.NumPatterns
	}
	return d
}

// internal/solver/greedy.go
//
// One-ply greedy policy, kept as a fast comparison mode: at each step pick
// the guess whose largest feedback bucket is smallest, then follow the
// adversary's hardest response into that bucket. This is the legacy
// selection policy; it is not a true minimax and can land on deeper lines
// than Solve. The guess scan is spread over a worker pool.

package solver

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

// GreedyStep records one step along the hardest-response chain.
type GreedyStep struct {
	Guess     string `json:"guess"`
	Feedback  string `json:"feedback"`
	Remaining int    `json:"remaining"`
}

// GreedyReport is the outcome of a greedy descent.
type GreedyReport struct {
	Prefix       []string      `json:"prefix"`
	Steps        []GreedyStep  `json:"steps"`
	Secret       string        `json:"secret"`
	TotalGuesses int           `json:"totalGuesses"`
	Elapsed      time.Duration `json:"elapsed"`
}

// Greedy runs the one-ply policy from the full answer vocabulary, spending
// any prefix guesses first. The chain always terminates: a candidate-set
// member splits off at least its own all-hit bucket, so every step shrinks
// the set.
func (s *Solver) Greedy(ctx context.Context, prefix ...string) (*GreedyReport, error) {
	prefix, err := s.normalizePrefix(prefix)
	if err != nil {
		return nil, err
	}
	start := time.Now()

	cs := make(candidateSet, len(s.answers))
	for i := range cs {
		cs[i] = uint16(i)
	}
	forced := append([]string{}, prefix...)

	rep := &GreedyReport{Prefix: prefix}
	for len(cs) > 1 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		var g string
		if len(forced) > 0 {
			g, forced = forced[0], forced[1:]
		} else {
			g, err = s.greedyBest(ctx, cs)
			if err != nil {
				return nil, err
			}
		}

		buckets := s.partition(g, cs)
		var hardest candidateSet
		hardestPattern := ""
		for _, p := range sortedPatterns(buckets) {
			if len(buckets[p]) > len(hardest) {
				hardest = buckets[p]
				hardestPattern = p.String()
			}
		}
		rep.Steps = append(rep.Steps, GreedyStep{
			Guess:     g,
			Feedback:  hardestPattern,
			Remaining: len(hardest),
		})
		cs = hardest
	}

	rep.Secret = s.answers[cs[0]]
	rep.TotalGuesses = len(rep.Steps)
	rep.Elapsed = time.Since(start)
	return rep, nil
}

// greedyBest scans the legal-guess vocabulary in parallel chunks for the
// guess minimizing its largest bucket, ties broken lexicographically.
func (s *Solver) greedyBest(ctx context.Context, cs candidateSet) (string, error) {
	type scored struct {
		guess   string
		largest int
	}

	nw := s.workers
	if nw > len(s.guesses) {
		nw = len(s.guesses)
	}
	locals := make([]scored, nw)
	chunk := (len(s.guesses) + nw - 1) / nw

	eg, ectx := errgroup.WithContext(ctx)
	for w := 0; w < nw; w++ {
		w := w
		eg.Go(func() error {
			if err := ectx.Err(); err != nil {
				return err
			}
			lo, hi := w*chunk, (w+1)*chunk
			if hi > len(s.guesses) {
				hi = len(s.guesses)
			}
			local := scored{largest: len(cs) + 1}
			for _, g := range s.guesses[lo:hi] {
				buckets := s.partition(g, cs)
				if len(buckets) == 1 {
					continue // no information
				}
				largest := 0
				for _, b := range buckets {
					if len(b) > largest {
						largest = len(b)
					}
				}
				if largest < local.largest || (largest == local.largest && g < local.guess) {
					local = scored{guess: g, largest: largest}
				}
			}
			locals[w] = local
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return "", err
	}

	best := scored{largest: len(cs) + 1}
	for _, l := range locals {
		if l.guess == "" {
			continue
		}
		if l.largest < best.largest || (l.largest == best.largest && l.guess < best.guess) {
			best = l
		}
	}
	return best.guess, nil
}

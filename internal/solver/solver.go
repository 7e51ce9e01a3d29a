// internal/solver/solver.go
//
// Orchestrates a solve: applies an optional fixed prefix of pre-chosen
// guesses to the full answer vocabulary, runs the minimax search on every
// resulting leaf, and reports the global worst case with one example guess
// line achieving it.
//
// Leaves are independent subproblems over immutable candidate-set
// snapshots; they are solved concurrently by an errgroup worker pool. The
// only shared state is the memoizer, which coalesces duplicate subproblems.

package solver

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/aetimmes/wordle-minimax/internal/feedback"
	"github.com/aetimmes/wordle-minimax/internal/words"
)

// DefaultMaxAttempts is the standard total attempt allowance of the game.
const DefaultMaxAttempts = 6

// Config tunes a Solver.
type Config struct {
	// MaxAttempts is the total attempt allowance, prefix included.
	// Defaults to DefaultMaxAttempts.
	MaxAttempts int
	// Workers bounds concurrent leaf searches. Defaults to NumCPU.
	Workers int
}

// Solver computes worst-case-optimal guess sequences over a fixed pair of
// vocabularies. Safe for concurrent use.
type Solver struct {
	lists       *words.Lists
	answers     []string // sorted answer vocabulary
	guesses     []string // sorted legal-guess vocabulary (superset of answers)
	maxAttempts int
	workers     int
	memo        *memo
}

// New constructs a Solver over the given vocabularies.
func New(lists *words.Lists, cfg Config) *Solver {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	return &Solver{
		lists:       lists,
		answers:     lists.Answers,
		guesses:     lists.Guesses,
		maxAttempts: cfg.MaxAttempts,
		workers:     cfg.Workers,
		memo:        newMemo(),
	}
}

// Stats returns the vocabulary sizes: (answers, legal guesses).
func (s *Solver) Stats() (answerCount, guessCount int) {
	return s.lists.Stats()
}

// LeafReport describes one candidate set reachable after the prefix.
type LeafReport struct {
	// Feedback holds one g/y/r pattern per prefix guess.
	Feedback []string `json:"feedback"`
	// Candidates is the size of the leaf's candidate set.
	Candidates int `json:"candidates"`
	// Depth is the number of further guesses needed in the worst case,
	// or -1 if the leaf is unsolvable within the budget.
	Depth int `json:"depth"`
}

// Report is the outcome of a full solve.
type Report struct {
	Prefix      []string     `json:"prefix"`
	MaxAttempts int          `json:"maxAttempts"`
	// WorstCase is the overall worst-case total attempt count
	// (prefix length + deepest leaf).
	WorstCase   int          `json:"worstCase"`
	// ExampleLine is one guess sequence achieving WorstCase, prefix included.
	ExampleLine []string     `json:"exampleLine"`
	// Secret is the hidden word identified at the end of ExampleLine.
	Secret      string       `json:"secret"`
	Leaves      []LeafReport `json:"leaves"`
	// Unsolvable counts leaves that cannot be resolved within the budget.
	Unsolvable  int          `json:"unsolvable"`
	AnswerCount int          `json:"answerCount"`
	GuessCount  int          `json:"guessCount"`
	Elapsed     time.Duration `json:"elapsed"`
}

// Solve validates the prefix, expands it into leaves, and searches each
// leaf with the remaining attempt budget. Unsolvable leaves are reported,
// not fatal. Identical inputs always produce an identical report.
func (s *Solver) Solve(ctx context.Context, prefix ...string) (*Report, error) {
	prefix, err := s.normalizePrefix(prefix)
	if err != nil {
		return nil, err
	}
	start := time.Now()

	type leafState struct {
		pats []feedback.Pattern
		cs   candidateSet
	}
	all := make(candidateSet, len(s.answers))
	for i := range all {
		all[i] = uint16(i)
	}
	leaves := []leafState{{cs: all}}
	for _, g := range prefix {
		var next []leafState
		for _, lf := range leaves {
			buckets := s.partition(g, lf.cs)
			covered := 0
			for _, p := range sortedPatterns(buckets) {
				b := buckets[p]
				covered += len(b)
				pats := append(append([]feedback.Pattern{}, lf.pats...), p)
				next = append(next, leafState{pats: pats, cs: b})
			}
			if covered != len(lf.cs) {
				return nil, fmt.Errorf("guess %q covered %d of %d candidates: %w",
					g, covered, len(lf.cs), ErrEmptyBucket)
			}
		}
		leaves = next
	}

	budget := s.maxAttempts - len(prefix)
	log.Debug().
		Strs("prefix", prefix).
		Int("leaves", len(leaves)).
		Int("budget", budget).
		Msg("prefix expanded")

	depths := make([]int, len(leaves))
	eg, ectx := errgroup.WithContext(ctx)
	eg.SetLimit(s.workers)
	for i, lf := range leaves {
		i, lf := i, lf
		eg.Go(func() error {
			if err := ectx.Err(); err != nil {
				return err
			}
			res, err := s.search(lf.cs, budget)
			if err != nil {
				if errors.Is(err, ErrExhausted) {
					depths[i] = -1
					return nil
				}
				return err
			}
			depths[i] = res.Depth
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	rep := &Report{
		Prefix:      prefix,
		MaxAttempts: s.maxAttempts,
		AnswerCount: len(s.answers),
		GuessCount:  len(s.guesses),
	}
	worstIdx := -1
	for i, lf := range leaves {
		fb := make([]string, len(lf.pats))
		for j, p := range lf.pats {
			fb[j] = p.String()
		}
		rep.Leaves = append(rep.Leaves, LeafReport{
			Feedback:   fb,
			Candidates: len(lf.cs),
			Depth:      depths[i],
		})
		if depths[i] < 0 {
			rep.Unsolvable++
			continue
		}
		if total := len(prefix) + depths[i]; total > rep.WorstCase {
			rep.WorstCase = total
			worstIdx = i
		}
	}
	if worstIdx >= 0 {
		line, secret := s.exampleLine(leaves[worstIdx].cs, budget)
		rep.ExampleLine = append(append([]string{}, prefix...), line...)
		rep.Secret = secret
	} else if len(prefix) == 0 && len(leaves) == 1 && depths[0] == 0 {
		// A one-word answer vocabulary: identified without guessing.
		rep.Secret = s.answers[leaves[0].cs[0]]
	}
	rep.Elapsed = time.Since(start)

	log.Info().
		Strs("prefix", prefix).
		Int("worst_case", rep.WorstCase).
		Int("leaves", len(rep.Leaves)).
		Int("unsolvable", rep.Unsolvable).
		Int("memo_entries", s.memo.size()).
		Dur("elapsed", rep.Elapsed).
		Msg("solve complete")
	return rep, nil
}

// exampleLine reconstructs one optimal guess sequence achieving the
// worst-case depth for cs, following a deepest bucket at every level. All
// searches hit the memo, so reconstruction costs almost nothing.
func (s *Solver) exampleLine(cs candidateSet, budget int) (line []string, secret string) {
	for len(cs) > 1 {
		res, err := s.search(cs, budget)
		if err != nil {
			return line, ""
		}
		line = append(line, res.Guess)

		buckets := s.partition(res.Guess, cs)
		var worstBucket candidateSet
		worstCost := -1
		for _, p := range sortedPatterns(buckets) {
			b := buckets[p]
			cost := 1
			if len(b) > 1 {
				sub, err := s.search(b, budget-1)
				if err != nil {
					continue
				}
				cost = 1 + sub.Depth
			}
			if cost > worstCost {
				worstCost = cost
				worstBucket = b
			}
		}
		cs = worstBucket
		budget--
	}
	return line, s.answers[cs[0]]
}

// normalizePrefix lowercases and validates the prefix guesses.
func (s *Solver) normalizePrefix(prefix []string) ([]string, error) {
	if len(prefix) > s.maxAttempts {
		return nil, fmt.Errorf("%d prefix guesses exceed the %d-attempt allowance", len(prefix), s.maxAttempts)
	}
	out := make([]string, len(prefix))
	for i, w := range prefix {
		w = strings.ToLower(strings.TrimSpace(w))
		if len(w) != feedback.WordLen {
			return nil, fmt.Errorf("prefix guess %q: %w", w, ErrWordLength)
		}
		if !s.lists.IsLegalGuess(w) {
			return nil, fmt.Errorf("prefix guess %q: %w", w, ErrUnknownGuess)
		}
		out[i] = w
	}
	return out, nil
}

// internal/store/store.go
//
// Persistence for solve reports.
// Implementations may be backed by memory (ephemeral, tests) or SQLite.

package store

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/aetimmes/wordle-minimax/internal/solver"
)

// SavedReport is a persisted solve outcome.
type SavedReport struct {
	ID          int64     `json:"id"`
	Prefix      string    `json:"prefix"`      // space-joined prefix guesses
	WorstCase   int       `json:"worstCase"`
	ExampleLine string    `json:"exampleLine"` // space-joined guess sequence
	Secret      string    `json:"secret"`
	AnswerCount int       `json:"answerCount"`
	GuessCount  int       `json:"guessCount"`
	Unsolvable  int       `json:"unsolvable"`
	ElapsedMs   int64     `json:"elapsedMs"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Store defines the persistence interface for solve reports.
type Store interface {
	// SaveReport persists a report and returns its row ID.
	SaveReport(ctx context.Context, rep *solver.Report) (int64, error)

	// ListReports returns the most recent reports, newest first.
	ListReports(ctx context.Context, limit int) ([]SavedReport, error)

	Close() error
}

// fromReport flattens a solver report into its stored shape.
func fromReport(rep *solver.Report) SavedReport {
	return SavedReport{
		Prefix:      strings.Join(rep.Prefix, " "),
		WorstCase:   rep.WorstCase,
		ExampleLine: strings.Join(rep.ExampleLine, " "),
		Secret:      rep.Secret,
		AnswerCount: rep.AnswerCount,
		GuessCount:  rep.GuessCount,
		Unsolvable:  rep.Unsolvable,
		ElapsedMs:   rep.Elapsed.Milliseconds(),
	}
}

// memory is an in-memory Store used for development and tests.
// Concurrency-safe via RWMutex; state is lost when the process exits.
type memory struct {
	mu      sync.RWMutex
	nextID  int64
	reports []SavedReport
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{nextID: 1}
}

func (m *memory) SaveReport(ctx context.Context, rep *solver.Report) (int64, error) {
	if rep == nil {
		return 0, errors.New("nil report")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	r := fromReport(rep)
	r.ID = m.nextID
	r.CreatedAt = time.Now().UTC()
	m.nextID++
	m.reports = append(m.reports, r)
	return r.ID, nil
}

func (m *memory) ListReports(ctx context.Context, limit int) ([]SavedReport, error) {
	if limit <= 0 {
		limit = 20
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]SavedReport, 0, limit)
	for i := len(m.reports) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.reports[i])
	}
	return out, nil
}

func (m *memory) Close() error { return nil }

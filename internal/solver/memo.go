// internal/solver/memo.go
//
// Cache for recursive search results, keyed by (canonical candidate set,
// remaining budget). Identical subproblems are reached via many different
// guess branches; the cache collapses them. Under concurrent leaf workers,
// singleflight coalesces in-flight computations of the same key so the
// exponential work behind a subproblem runs at most once.
//
// No eviction: a solve is a single batch run, so retention is bounded by
// the search itself.

package solver

import (
	"sync"

	"golang.org/x/sync/singleflight"
)

type memoEntry struct {
	res SearchResult
	err error
}

type memo struct {
	mu sync.RWMutex
	m  map[string]memoEntry
	sf singleflight.Group
}

func newMemo() *memo {
	return &memo{m: make(map[string]memoEntry)}
}

// do returns the cached result for key, or computes and stores it. Both
// successful results and exhausted outcomes are cached; they are equally
// deterministic for a given key.
func (m *memo) do(key string, compute func() (SearchResult, error)) (SearchResult, error) {
	m.mu.RLock()
	e, ok := m.m[key]
	m.mu.RUnlock()
	if ok {
		return e.res, e.err
	}

	v, _, _ := m.sf.Do(key, func() (interface{}, error) {
		res, err := compute()
		ent := memoEntry{res: res, err: err}
		m.mu.Lock()
		m.m[key] = ent
		m.mu.Unlock()
		return ent, nil
	})
	ent := v.(memoEntry)
	return ent.res, ent.err
}

// size reports the number of cached subproblems.
func (m *memo) size() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.m)
}

// memoKey packs the candidate indices (two bytes each) and the budget into
// a compact string key. The set is already canonical: sorted, deduplicated
// indices into the answer vocabulary.
func memoKey(cs candidateSet, budget int) string {
	b := make([]byte, 0, 2*len(cs)+1)
	for _, idx := range cs {
		b = append(b, byte(idx>>8), byte(idx))
	}
	b = append(b, byte(budget))
	return string(b)
}

package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aetimmes/wordle-minimax/internal/solver"
	"github.com/aetimmes/wordle-minimax/internal/store"
	"github.com/aetimmes/wordle-minimax/internal/words"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	l, err := words.FromSlices([]string{"babes", "banes", "bases"}, nil)
	require.NoError(t, err)
	return New(solver.New(l, solver.Config{}), store.NewMemoryStore())
}

func do(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, path, nil)
	} else {
		r = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, r)
	return w
}

func TestHealth(t *testing.T) {
	w := do(t, newTestServer(t), http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
}

func TestRoot_ListsEndpoints(t *testing.T) {
	w := do(t, newTestServer(t), http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/solve")
}

func TestNotFound(t *testing.T) {
	w := do(t, newTestServer(t), http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "not_found")
}

func TestSolve(t *testing.T) {
	s := newTestServer(t)
	w := do(t, s, http.MethodPost, "/solve", `{"prefix":["babes"]}`)
	require.Equal(t, http.StatusOK, w.Code)

	var rep solver.Report
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rep))
	assert.Equal(t, 2, rep.WorstCase)
	assert.Equal(t, []string{"babes", "banes"}, rep.ExampleLine)
	assert.Equal(t, "bases", rep.Secret)

	// The report is persisted and visible through /reports.
	w = do(t, s, http.MethodGet, "/reports", "")
	require.Equal(t, http.StatusOK, w.Code)
	var saved []store.SavedReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &saved))
	require.Len(t, saved, 1)
	assert.Equal(t, "babes", saved[0].Prefix)
	assert.Equal(t, 2, saved[0].WorstCase)
}

func TestSolve_Greedy(t *testing.T) {
	w := do(t, newTestServer(t), http.MethodPost, "/solve", `{"greedy":true}`)
	require.Equal(t, http.StatusOK, w.Code)

	var rep solver.GreedyReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rep))
	assert.NotEmpty(t, rep.Steps)
	assert.NotEmpty(t, rep.Secret)
}

func TestSolve_BadPrefix(t *testing.T) {
	s := newTestServer(t)

	w := do(t, s, http.MethodPost, "/solve", `{"prefix":["crane"]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "crane")

	w = do(t, s, http.MethodPost, "/solve", `{"prefix":["toolong"]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSolve_BadJSON(t *testing.T) {
	w := do(t, newTestServer(t), http.MethodPost, "/solve", `{"prefix":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "bad_json")
}

func TestSolve_TooManyPrefixGuesses(t *testing.T) {
	w := do(t, newTestServer(t), http.MethodPost, "/solve",
		`{"prefix":["babes","banes","bases"]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReports_NoStore(t *testing.T) {
	l, err := words.FromSlices([]string{"crane"}, nil)
	require.NoError(t, err)
	s := New(solver.New(l, solver.Config{}), nil)

	w := do(t, s, http.MethodGet, "/reports", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestDebugWords(t *testing.T) {
	w := do(t, newTestServer(t), http.MethodGet, "/debug/words", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"answers":3,"guesses":3}`, w.Body.String())
}

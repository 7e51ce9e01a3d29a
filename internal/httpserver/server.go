// internal/httpserver/server.go
//
// HTTP wiring for the solver.
// Responsibilities:
//   - Router + middleware (request IDs, real IP, panic recovery, timeouts, JSON).
//   - Diagnostics: "/", "/health", "/debug/words".
//   - POST /solve: run a minimax (or greedy) solve for a prefix.
//   - GET /reports: recent persisted reports.
//
// Solves are CPU-bound and can take a while on large vocabularies; the
// handler runs them synchronously under a generous timeout.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/aetimmes/wordle-minimax/internal/solver"
	"github.com/aetimmes/wordle-minimax/internal/store"
)

// Server bundles router, solver, and report store.
type Server struct {
	r  *chi.Mux
	sv *solver.Solver
	st store.Store
}

// New constructs a Server, installs middleware, and registers routes.
func New(sv *solver.Solver, st store.Store) *Server {
	s := &Server{r: chi.NewRouter(), sv: sv, st: st}

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(10 * time.Minute))
	s.r.Use(jsonContentType)

	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wordle-minimax","endpoints":["/health","POST /solve","/reports","/debug/words"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	s.r.Post("/solve", s.handleSolve)
	s.r.Get("/reports", s.handleReports)
	s.r.Get("/debug/words", s.handleWords)

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// solveReq is the payload for POST /solve.
type solveReq struct {
	Prefix []string `json:"prefix"`
	Greedy bool     `json:"greedy"`
}

// handleSolve validates the prefix, runs the requested search, persists the
// minimax report (best effort), and returns it.
func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	if len(req.Prefix) > 2 {
		http.Error(w, `{"error":"at most two prefix guesses"}`, http.StatusBadRequest)
		return
	}

	if req.Greedy {
		rep, err := s.sv.Greedy(r.Context(), req.Prefix...)
		if err != nil {
			writeSolveErr(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(rep)
		return
	}

	rep, err := s.sv.Solve(r.Context(), req.Prefix...)
	if err != nil {
		writeSolveErr(w, err)
		return
	}
	if s.st != nil {
		if _, err := s.st.SaveReport(r.Context(), rep); err != nil {
			log.Warn().Err(err).Msg("save report")
		}
	}
	_ = json.NewEncoder(w).Encode(rep)
}

// writeSolveErr maps solver errors to HTTP statuses: bad prefixes are the
// client's fault, anything else is ours.
func writeSolveErr(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, solver.ErrWordLength) || errors.Is(err, solver.ErrUnknownGuess) {
		status = http.StatusBadRequest
	}
	http.Error(w, `{"error":`+jsonQuote(err.Error())+`}`, status)
}

func jsonQuote(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

// handleReports lists recent persisted reports.
func (s *Server) handleReports(w http.ResponseWriter, r *http.Request) {
	if s.st == nil {
		_ = json.NewEncoder(w).Encode([]store.SavedReport{})
		return
	}
	reports, err := s.st.ListReports(r.Context(), 50)
	if err != nil {
		log.Error().Err(err).Msg("list reports")
		http.Error(w, `{"error":"db_error"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(reports)
}

// handleWords reports vocabulary sizes.
func (s *Server) handleWords(w http.ResponseWriter, r *http.Request) {
	a, g := s.sv.Stats()
	_ = json.NewEncoder(w).Encode(map[string]int{"answers": a, "guesses": g})
}

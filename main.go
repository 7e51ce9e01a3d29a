// main.go
//
// wordle-minimax computes worst-case-optimal guess sequences for the
// 5-letter word game.
//
// Usage:
//
//	wordle-minimax solve [prefix words...]   compute the worst case for a prefix
//	wordle-minimax serve                     run the HTTP solve API
//
// Word lists default to small embedded samples; point -a/-g (or
// WORDS_ANSWERS_FILE / WORDS_GUESSES_FILE) at the full lists for real runs.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/aetimmes/wordle-minimax/internal/solver"
	"github.com/aetimmes/wordle-minimax/internal/words"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootFlags struct {
	answersFile string
	guessesFile string
	attempts    int
	workers     int
	logLevel    string
}

var rootCmd = &cobra.Command{
	Use:   "wordle-minimax",
	Short: "Minimax solver for Wordle",
	Long: "wordle-minimax searches the game tree induced by feedback partitioning\n" +
		"for the guess sequence minimizing the worst-case number of attempts.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		_ = godotenv.Load()
		level := rootFlags.logLevel
		if level == "" {
			level = getEnv("LOG_LEVEL", "info")
		}
		if lvl, err := zerolog.ParseLevel(level); err == nil {
			zerolog.SetGlobalLevel(lvl)
		}
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&rootFlags.answersFile, "answers-file", "a", "", "File containing legal answers")
	pf.StringVarP(&rootFlags.guessesFile, "guesses-file", "g", "", "File containing legal guesses")
	pf.IntVar(&rootFlags.attempts, "attempts", solver.DefaultMaxAttempts, "Total attempt allowance, prefix included")
	pf.IntVar(&rootFlags.workers, "workers", 0, "Concurrent workers (default: number of CPUs)")
	pf.StringVar(&rootFlags.logLevel, "log-level", "", "Log level (default: $LOG_LEVEL or info)")

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.Version = version
}

// loadSolver builds a Solver from the configured word lists.
func loadSolver() (*solver.Solver, error) {
	lists, err := words.Load(rootFlags.answersFile, rootFlags.guessesFile)
	if err != nil {
		return nil, err
	}
	return solver.New(lists, solver.Config{
		MaxAttempts: rootFlags.attempts,
		Workers:     rootFlags.workers,
	}), nil
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

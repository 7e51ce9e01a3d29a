// cmd_solve.go
//
// The solve command: run a minimax (or greedy) solve for an optional fixed
// prefix of guesses and print the worst-case report.
package main

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/aetimmes/wordle-minimax/internal/store"
)

var solveFlags struct {
	greedy bool
	dbPath string
}

var solveCmd = &cobra.Command{
	Use:   "solve [prefix words...]",
	Short: "Compute the worst-case attempt count for a prefix",
	Long: `Compute the minimal worst-case number of attempts needed to identify the
hidden word, after forcing zero, one, or two pre-chosen prefix guesses.

Each prefix word must be exactly 5 letters and in the legal-guess
vocabulary. With --greedy the legacy one-ply policy is reported instead
of the exhaustive minimax.`,
	Args: cobra.MaximumNArgs(2),
	RunE: runSolve,
}

func init() {
	f := solveCmd.Flags()
	f.BoolVar(&solveFlags.greedy, "greedy", false, "Use the legacy one-ply policy instead of exhaustive minimax")
	f.StringVar(&solveFlags.dbPath, "db", "", "Persist the report to this SQLite database (e.g. "+store.DefaultDBPath+")")
}

func runSolve(cmd *cobra.Command, args []string) error {
	sv, err := loadSolver()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	if solveFlags.greedy {
		rep, err := sv.Greedy(ctx, args...)
		if err != nil {
			return err
		}
		for _, step := range rep.Steps {
			fmt.Printf("%s %s %d\n", step.Guess, step.Feedback, step.Remaining)
		}
		fmt.Printf("greedy line: %d guesses, hardest secret %q\n", rep.TotalGuesses, rep.Secret)
		return nil
	}

	rep, err := sv.Solve(ctx, args...)
	if err != nil {
		return err
	}

	fmt.Printf("answers=%d guesses=%d leaves=%d\n", rep.AnswerCount, rep.GuessCount, len(rep.Leaves))
	if rep.Unsolvable > 0 {
		fmt.Printf("%d leaves unsolvable within %d attempts\n", rep.Unsolvable, rep.MaxAttempts)
	}
	fmt.Printf("worst case: %d attempts\n", rep.WorstCase)
	if len(rep.ExampleLine) > 0 {
		fmt.Printf("example line: %s -> %s\n", strings.Join(rep.ExampleLine, " "), rep.Secret)
	}

	if solveFlags.dbPath != "" {
		st, err := store.Open(solveFlags.dbPath)
		if err != nil {
			return fmt.Errorf("open report store: %w", err)
		}
		defer st.Close()
		id, err := st.SaveReport(ctx, rep)
		if err != nil {
			return fmt.Errorf("save report: %w", err)
		}
		log.Info().Int64("id", id).Str("db", solveFlags.dbPath).Msg("report saved")
	}
	return nil
}

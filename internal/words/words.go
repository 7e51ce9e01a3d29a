// internal/words/words.go
//
// Word list management for the solver.
//
// Responsibilities:
//   - Load answer and legal-guess lists from explicit paths, environment
//     variables, or fall back to embedded defaults.
//   - Normalize, validate, sort, and deduplicate the lists.
//   - Maintain the legal-guess set (guesses ∪ answers) for quick lookups.
//
// Word Lists:
//   - "answers": words the hidden secret may be drawn from.
//   - "guesses": words that may be submitted as a guess. The legal-guess
//     vocabulary always includes the answers.
//
// Resolution order for each list (Load):
//   1. Explicit path argument, if non-empty.
//   2. WORDS_ANSWERS_FILE / WORDS_GUESSES_FILE environment variables.
//   3. Embedded small defaults.
//
// Constraints:
//   • Words must be exactly 5 lowercase ASCII letters; a malformed line is
//     an error, not silently dropped.
//   • Lists are lowercased, sorted, and deduplicated so iteration order is
//     deterministic across runs.

package words

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
)

// WordLen is the required word length.
const WordLen = 5

//go:embed default_small_answers.txt
var embeddedAnswers string

//go:embed default_small_guesses.txt
var embeddedGuesses string

// Lists holds the two vocabularies used by the solver.
type Lists struct {
	// Answers is the sorted, deduplicated answer vocabulary.
	Answers []string
	// Guesses is the sorted, deduplicated legal-guess vocabulary.
	// Always a superset of Answers.
	Guesses []string

	guessSet map[string]struct{}
}

// Load resolves and reads both word lists. Empty paths fall back to the
// WORDS_ANSWERS_FILE / WORDS_GUESSES_FILE environment variables and then to
// the embedded defaults.
func Load(answersPath, guessesPath string) (*Lists, error) {
	if answersPath == "" {
		answersPath = os.Getenv("WORDS_ANSWERS_FILE")
	}
	if guessesPath == "" {
		guessesPath = os.Getenv("WORDS_GUESSES_FILE")
	}

	answers, err := readList(answersPath, embeddedAnswers)
	if err != nil {
		return nil, fmt.Errorf("answers list: %w", err)
	}
	guesses, err := readList(guessesPath, embeddedGuesses)
	if err != nil {
		return nil, fmt.Errorf("guesses list: %w", err)
	}
	if len(answers) == 0 {
		return nil, errors.New("words: answers list is empty")
	}

	// The legal-guess vocabulary always includes the answers.
	guesses = append(guesses, answers...)

	l := &Lists{
		Answers: sortUnique(answers),
		Guesses: sortUnique(guesses),
	}
	l.guessSet = toSet(l.Guesses)
	return l, nil
}

// FromSlices builds Lists directly from in-memory vocabularies. Used by
// tests and callers that already hold word data.
func FromSlices(answers, guesses []string) (*Lists, error) {
	ans, err := parseLines(answers)
	if err != nil {
		return nil, fmt.Errorf("answers list: %w", err)
	}
	gs, err := parseLines(guesses)
	if err != nil {
		return nil, fmt.Errorf("guesses list: %w", err)
	}
	if len(ans) == 0 {
		return nil, errors.New("words: answers list is empty")
	}
	gs = append(gs, ans...)
	l := &Lists{
		Answers: sortUnique(ans),
		Guesses: sortUnique(gs),
	}
	l.guessSet = toSet(l.Guesses)
	return l, nil
}

// readList loads words from path, or parses the embedded fallback when path
// is empty.
func readList(path, fallback string) ([]string, error) {
	if path == "" {
		return parseLines(strings.Split(fallback, "\n"))
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	out, err := parseLines(lines)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return out, nil
}

// parseLines normalizes raw lines into validated words. Blank lines and
// "#" comments are skipped; anything else must be a valid word.
func parseLines(lines []string) ([]string, error) {
	var out []string
	for i, line := range lines {
		w := strings.TrimSpace(strings.ToLower(line))
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		if len(w) != WordLen {
			return nil, fmt.Errorf("line %d: %q is not %d letters", i+1, w, WordLen)
		}
		if !isAlpha(w) {
			return nil, fmt.Errorf("line %d: %q contains non a-z characters", i+1, w)
		}
		out = append(out, w)
	}
	return out, nil
}

// sortUnique returns a sorted copy of list with duplicates removed.
func sortUnique(list []string) []string {
	out := append([]string{}, list...)
	sort.Strings(out)
	n := 0
	for _, w := range out {
		if n == 0 || out[n-1] != w {
			out[n] = w
			n++
		}
	}
	return out[:n]
}

// toSet converts a list of strings into a lookup set.
func toSet(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// IsLegalGuess reports whether w may be submitted as a guess.
func (l *Lists) IsLegalGuess(w string) bool {
	_, ok := l.guessSet[strings.ToLower(w)]
	return ok
}

// Stats returns counts of loaded words: (answers, legal guesses).
func (l *Lists) Stats() (answerCount, guessCount int) {
	return len(l.Answers), len(l.Guesses)
}

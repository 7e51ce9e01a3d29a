package words

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeList(t *testing.T, name string, lines string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(lines), 0o644))
	return path
}

func TestLoad_FromFiles(t *testing.T) {
	answers := writeList(t, "answers.txt", "CRANE\nslate\n\n# comment\ncrane\n")
	guesses := writeList(t, "guesses.txt", "soare\n")

	l, err := Load(answers, guesses)
	require.NoError(t, err)

	// Lowercased, deduplicated, sorted.
	assert.Equal(t, []string{"crane", "slate"}, l.Answers)
	// Legal guesses always include the answers.
	assert.Equal(t, []string{"crane", "slate", "soare"}, l.Guesses)
	assert.True(t, l.IsLegalGuess("soare"))
	assert.True(t, l.IsLegalGuess("CRANE"))
	assert.False(t, l.IsLegalGuess("query"))

	a, g := l.Stats()
	assert.Equal(t, 2, a)
	assert.Equal(t, 3, g)
}

func TestLoad_MalformedLine(t *testing.T) {
	answers := writeList(t, "answers.txt", "crane\nslates\n")
	_, err := Load(answers, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "slates")
}

func TestLoad_NonAlpha(t *testing.T) {
	answers := writeList(t, "answers.txt", "cr4ne\n")
	_, err := Load(answers, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cr4ne")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"), "")
	require.Error(t, err)
}

func TestLoad_EmptyAnswers(t *testing.T) {
	answers := writeList(t, "answers.txt", "# nothing here\n")
	_, err := Load(answers, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestLoad_EmbeddedDefaults(t *testing.T) {
	t.Setenv("WORDS_ANSWERS_FILE", "")
	t.Setenv("WORDS_GUESSES_FILE", "")

	l, err := Load("", "")
	require.NoError(t, err)
	assert.NotEmpty(t, l.Answers)
	assert.Greater(t, len(l.Guesses), len(l.Answers))
	assert.True(t, sort.StringsAreSorted(l.Answers))
	assert.True(t, sort.StringsAreSorted(l.Guesses))
	for _, w := range l.Answers {
		assert.Len(t, w, WordLen)
		assert.True(t, l.IsLegalGuess(w))
	}
}

func TestLoad_EnvFallback(t *testing.T) {
	answers := writeList(t, "answers.txt", "crane\n")
	t.Setenv("WORDS_ANSWERS_FILE", answers)
	t.Setenv("WORDS_GUESSES_FILE", "")

	l, err := Load("", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"crane"}, l.Answers)
}

func TestFromSlices(t *testing.T) {
	l, err := FromSlices([]string{"crane"}, []string{"soare", "crane"})
	require.NoError(t, err)
	assert.Equal(t, []string{"crane"}, l.Answers)
	assert.Equal(t, []string{"crane", "soare"}, l.Guesses)

	_, err = FromSlices(nil, nil)
	assert.Error(t, err)
}

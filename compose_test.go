package backronym

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// loadFixtures builds a word index and template library from testdata/.
func loadFixtures(t *testing.T) (*WordIndex, *TemplateLibrary) {
	t.Helper()

	wf, err := os.Open(filepath.Join("testdata", WordListFile))
	require.NoError(t, err)
	defer wf.Close()
	records, err := parseWordList(wf)
	require.NoError(t, err)
	idx := NewWordIndex(0)
	require.NoError(t, idx.Load(records))

	tf, err := os.Open(filepath.Join("testdata", TemplateFile))
	require.NoError(t, err)
	defer tf.Close()
	lib := NewTemplateLibrary()
	require.NoError(t, lib.Load(tf))

	return idx, lib
}

func TestPlanChunks(t *testing.T) {
	rng := testRand()
	for length := 4; length <= 40; length++ {
		chunks := planChunks(rng, length, 3)
		sum := 0
		for _, n := range chunks {
			require.GreaterOrEqual(t, n, 1)
			require.LessOrEqual(t, n, 3)
			sum += n
		}
		require.Equal(t, length, sum, "chunks for length %d must sum to it", length)
	}
}

func TestComposeTemplateCoveredLengths(t *testing.T) {
	words, lib := loadFixtures(t)
	rng := testRand()
	for length := 1; length <= lib.MaxLength(); length++ {
		tmpl, err := composeTemplate(rng, lib, words, length)
		require.NoError(t, err)
		require.Equal(t, length, tmpl.LetterCount())
	}
}

func TestComposeTemplateSplicedLengths(t *testing.T) {
	words, lib := loadFixtures(t)
	rng := testRand()
	for length := lib.MaxLength() + 1; length <= 25; length++ {
		// several rounds per length since chunking is random
		for round := 0; round < 20; round++ {
			tmpl, err := composeTemplate(rng, lib, words, length)
			require.NoError(t, err)
			require.Equal(t, length, tmpl.LetterCount(),
				"length %d round %d: fillers must not consume letters", length, round)
		}
	}
}

func TestComposeTemplateFillersBetweenChunks(t *testing.T) {
	words, _ := loadFixtures(t)
	lib := NewTemplateLibrary()
	require.NoError(t, lib.Load(strings.NewReader("N\nA N\nA A N\n")))

	tmpl, err := composeTemplate(testRand(), lib, words, 10)
	require.NoError(t, err)
	require.Equal(t, 10, tmpl.LetterCount())

	// with literal-free source templates, every literal slot is a filler:
	// a preposition sitting strictly between sampled chunks
	require.False(t, tmpl[0].IsLiteral())
	require.False(t, tmpl[len(tmpl)-1].IsLiteral())
	require.GreaterOrEqual(t, len(tmpl)-10, 3) // at least ceil(10/3)-1 splices
	for i, s := range tmpl {
		if s.IsLiteral() {
			require.Contains(t, []string{"of", "over", "under"}, s.Literal)
			require.False(t, tmpl[i-1].IsLiteral(), "fillers never adjoin")
		}
	}
}

func TestComposeTemplateZeroLength(t *testing.T) {
	words, lib := loadFixtures(t)
	tmpl, err := composeTemplate(testRand(), lib, words, 0)
	require.NoError(t, err)
	require.Empty(t, tmpl)
}

func TestComposeTemplateEmptyLibrary(t *testing.T) {
	words, _ := loadFixtures(t)
	lib := NewTemplateLibrary()
	_, err := composeTemplate(testRand(), lib, words, 5)
	var nerr *NoTemplateError
	require.ErrorAs(t, err, &nerr)
}

package backronym

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func TestWordIndexLoad(t *testing.T) {
	idx := NewWordIndex(0)
	err := idx.Load([]WordRecord{
		{Word: "orbit", Codes: "VN"},
		{Word: "a lot", Codes: "h"},
		{Word: "the", Codes: "D"},
	})
	require.NoError(t, err)

	// "a lot" carries internal whitespace and is skipped silently
	assert.Equal(t, 2, idx.Entries())
	// "orbit" enters both the verb and noun categories
	assert.Equal(t, 3, idx.Size())
}

func TestWordIndexLoadBadCode(t *testing.T) {
	idx := NewWordIndex(0)
	require.NoError(t, idx.Load([]WordRecord{{Word: "cloud", Codes: "N"}}))

	err := idx.Load([]WordRecord{
		{Word: "cloud", Codes: "N"},
		{Word: "bogus", Codes: "Z"},
	})
	var derr *DecodeError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, "bogus", derr.Word)
	assert.Equal(t, 'Z', derr.Code)

	// a failed load leaves the previous contents readable
	assert.Equal(t, 1, idx.Entries())
}

func TestWordIndexPickConstrained(t *testing.T) {
	idx := NewWordIndex(0)
	require.NoError(t, idx.Load([]WordRecord{
		{Word: "cloud", Codes: "N"},
		{Word: "ocean", Codes: "N"},
		{Word: "ember", Codes: "N"},
	}))

	rng := testRand()
	for i := 0; i < 200; i++ {
		w, ok := idx.Pick(rng, POSNoun, 'o')
		require.True(t, ok)
		assert.Equal(t, "Ocean", w)
	}
	// lowercase letter matches case-insensitively, result is capitalized
	w, ok := idx.Pick(rng, POSNoun, 'E')
	require.True(t, ok)
	assert.Equal(t, "Ember", w)
}

func TestWordIndexPickExhaustsBound(t *testing.T) {
	idx := NewWordIndex(16)
	require.NoError(t, idx.Load([]WordRecord{{Word: "cloud", Codes: "N"}}))

	w, ok := idx.Pick(testRand(), POSNoun, 'x')
	assert.False(t, ok)
	assert.Empty(t, w)
}

func TestWordIndexPickEmptyCategory(t *testing.T) {
	idx := NewWordIndex(0)
	require.NoError(t, idx.Load(nil))

	_, ok := idx.Pick(testRand(), POSNoun, 'a')
	assert.False(t, ok)

	_, err := idx.PickAny(testRand(), POSPreposition)
	var eerr *EmptyCategoryError
	require.ErrorAs(t, err, &eerr)
	assert.Equal(t, POSPreposition, eerr.Tag)
}

func TestWordIndexPickAny(t *testing.T) {
	idx := NewWordIndex(0)
	require.NoError(t, idx.Load([]WordRecord{
		{Word: "of", Codes: "P"},
		{Word: "over", Codes: "P"},
	}))

	seen := map[string]bool{}
	rng := testRand()
	for i := 0; i < 100; i++ {
		w, err := idx.PickAny(rng, POSPreposition)
		require.NoError(t, err)
		seen[w] = true
	}
	assert.Len(t, seen, 2)
}

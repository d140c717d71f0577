package backronym

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPhraseLiteralAndTagSlots(t *testing.T) {
	words, _ := loadFixtures(t)
	tmpl := Template{
		LiteralSlot("the"),
		TagSlot(POSAdjective),
		TagSlot(POSNoun),
	}
	phrase := buildPhrase(testRand(), words, tmpl, "CO")
	tokens := strings.Fields(phrase)
	require.Len(t, tokens, 3)
	assert.Equal(t, "the", tokens[0])
	assert.Equal(t, "Crimson", tokens[1]) // only C adjective in the fixture
	assert.True(t, strings.HasPrefix(tokens[2], "O"))
}

func TestBuildPhraseTrailingSlotsUnfilled(t *testing.T) {
	words, _ := loadFixtures(t)
	tmpl := Template{
		TagSlot(POSAdjective),
		TagSlot(POSNoun),
		TagSlot(POSVerb),
	}
	// only two letters: the trailing verb slot stays empty
	phrase := buildPhrase(testRand(), words, tmpl, "CE")
	tokens := strings.Fields(phrase)
	require.Len(t, tokens, 2)
	assert.True(t, strings.HasPrefix(tokens[0], "C"))
	assert.True(t, strings.HasPrefix(tokens[1], "E"))
}

func TestBuildPhraseDegradesOnMiss(t *testing.T) {
	idx := NewWordIndex(8)
	require.NoError(t, idx.Load([]WordRecord{{Word: "cloud", Codes: "N"}}))

	tmpl := Template{TagSlot(POSAdjective), TagSlot(POSNoun)}
	// no adjectives loaded at all: the first slot is omitted, not fatal
	phrase := buildPhrase(testRand(), idx, tmpl, "XC")
	assert.Equal(t, "Cloud", phrase)
}

func TestBuildPhraseEmptyTemplate(t *testing.T) {
	words, _ := loadFixtures(t)
	assert.Equal(t, "", buildPhrase(testRand(), words, Template{}, ""))
}

package backronym

import (
	"math/rand"
	"strings"
	"unicode"
)

// DefaultPickBound is the number of independent random draws a
// letter-constrained Pick makes before giving up. Drawing from the whole
// category keeps the choice uniform without a per-letter sub-index; the
// bound keeps pathological (letter, category) pairs — no preposition starts
// with "x" — from looping forever.
const DefaultPickBound = 12800

// WordRecord is one entry from the word-list source: a word and the raw
// run of single-character part-of-speech codes it was tagged with.
type WordRecord struct {
	Word  string
	Codes string
}

// WordIndex maps each part of speech to the words known under that tag.
// Load fully replaces the contents; afterwards the index is read-only.
type WordIndex struct {
	words    map[PartOfSpeech][]string
	entries  int
	maxDraws int
}

// NewWordIndex creates an empty index. maxDraws bounds letter-constrained
// picks; 0 means DefaultPickBound.
func NewWordIndex(maxDraws int) *WordIndex {
	if maxDraws <= 0 {
		maxDraws = DefaultPickBound
	}
	return &WordIndex{
		words:    make(map[PartOfSpeech][]string, len(allPOS)),
		maxDraws: maxDraws,
	}
}

// Load replaces the index contents with the given records, inserting each
// word under every tag its codes name. Words containing whitespace are
// skipped: only single words can head a backronym slot. An unrecognized
// code aborts the load with a DecodeError and leaves the prior contents
// untouched.
func (x *WordIndex) Load(records []WordRecord) error {
	fresh := make(map[PartOfSpeech][]string, len(allPOS))
	entries := 0
	for _, rec := range records {
		if rec.Word == "" || strings.ContainsFunc(rec.Word, unicode.IsSpace) {
			continue
		}
		for _, c := range rec.Codes {
			tag, ok := ParsePOS(c)
			if !ok {
				return &DecodeError{Word: rec.Word, Code: c}
			}
			fresh[tag] = append(fresh[tag], rec.Word)
		}
		entries++
	}
	x.words = fresh
	x.entries = entries
	return nil
}

// PickAny returns a uniformly random word from the category.
func (x *WordIndex) PickAny(rng *rand.Rand, tag PartOfSpeech) (string, error) {
	pool := x.words[tag]
	if len(pool) == 0 {
		return "", &EmptyCategoryError{Tag: tag}
	}
	return pool[rng.Intn(len(pool))], nil
}

// Pick draws random words from the category until one starts with letter
// (case-insensitively), returning it with its first character capitalized.
// After maxDraws misses it gives up and returns ok=false; callers treat
// that as an expected outcome, not a failure.
func (x *WordIndex) Pick(rng *rand.Rand, tag PartOfSpeech, letter rune) (word string, ok bool) {
	pool := x.words[tag]
	if len(pool) == 0 {
		return "", false
	}
	want := unicode.ToUpper(letter)
	for i := 0; i < x.maxDraws; i++ {
		w := pool[rng.Intn(len(pool))]
		if unicode.ToUpper(firstRune(w)) == want {
			return capitalize(w), true
		}
	}
	return "", false
}

// Size returns the total word count across all categories. A word tagged
// with several parts of speech counts once per category.
func (x *WordIndex) Size() int {
	total := 0
	for _, pool := range x.words {
		total += len(pool)
	}
	return total
}

// Entries returns the number of word records loaded, regardless of how
// many categories each entered.
func (x *WordIndex) Entries() int {
	return x.entries
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}

// capitalize upper-cases the first character of w.
func capitalize(w string) string {
	runes := []rune(w)
	if len(runes) == 0 {
		return w
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

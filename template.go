package backronym

import (
	"io"
	"math/rand"
)

// TemplateSlot is one position in a sentence template: either a literal
// word emitted verbatim, or a part-of-speech tag to be resolved against
// the word index. Literal slots do not consume acronym letters.
type TemplateSlot struct {
	// Tag is the part of speech for a tag slot. Meaningful only when
	// Literal is empty.
	Tag PartOfSpeech
	// Literal is the verbatim word for a literal slot, or "" for a tag slot.
	Literal string
}

// TagSlot returns a slot to be filled from the given category.
func TagSlot(tag PartOfSpeech) TemplateSlot {
	return TemplateSlot{Tag: tag}
}

// LiteralSlot returns a slot emitting word verbatim.
func LiteralSlot(word string) TemplateSlot {
	return TemplateSlot{Literal: word}
}

// IsLiteral reports whether the slot emits a fixed word.
func (s TemplateSlot) IsLiteral() bool {
	return s.Literal != ""
}

// Template is an ordered sequence of slots describing a sentence skeleton.
type Template []TemplateSlot

// LetterCount returns the number of tag slots, i.e. how many acronym
// letters the template consumes.
func (t Template) LetterCount() int {
	n := 0
	for _, s := range t {
		if !s.IsLiteral() {
			n++
		}
	}
	return n
}

// TemplateLibrary holds precomposed templates bucketed by the number of
// acronym letters each consumes. Load fully replaces the contents;
// afterwards the library is read-only.
type TemplateLibrary struct {
	buckets map[int][]Template
	count   int
	max     int
}

// NewTemplateLibrary creates an empty library.
func NewTemplateLibrary() *TemplateLibrary {
	return &TemplateLibrary{buckets: make(map[int][]Template)}
}

// Load replaces the library with templates parsed from r, bucketed by
// letter-consuming length. On a ParseError the prior contents are left
// untouched.
func (lib *TemplateLibrary) Load(r io.Reader) error {
	templates, err := parseTemplates(r)
	if err != nil {
		return err
	}
	buckets := make(map[int][]Template)
	count, max := 0, 0
	for _, t := range templates {
		n := t.LetterCount()
		buckets[n] = append(buckets[n], t)
		count++
		if n > max {
			max = n
		}
	}
	lib.buckets = buckets
	lib.count = count
	lib.max = max
	return nil
}

// Sample returns a uniformly random template consuming exactly length
// letters.
func (lib *TemplateLibrary) Sample(rng *rand.Rand, length int) (Template, error) {
	bucket := lib.buckets[length]
	if length < 1 || len(bucket) == 0 {
		return nil, &NoTemplateError{Length: length}
	}
	return bucket[rng.Intn(len(bucket))], nil
}

// MaxLength returns the largest length with at least one template.
func (lib *TemplateLibrary) MaxLength() int {
	return lib.max
}

// Count returns the total number of templates across all buckets.
func (lib *TemplateLibrary) Count() int {
	return lib.count
}

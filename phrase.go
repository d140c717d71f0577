package backronym

import (
	"math/rand"
	"strings"
)

// Sanitize reduces raw to the acronym it spells: every A–Z/a–z character
// upper-cased, in order, everything else discarded.
func Sanitize(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		switch {
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r)
		case r >= 'a' && r <= 'z':
			b.WriteRune(r - 'a' + 'A')
		}
	}
	return b.String()
}

// buildPhrase walks the template's slots in order, emitting literal slots
// verbatim and filling each tag slot with a random word constrained to
// start with the next acronym letter. A slot whose category has no word
// for its letter within the pick bound is omitted; the phrase degrades
// rather than aborts. Tag slots beyond the last letter are not filled.
func buildPhrase(rng *rand.Rand, words *WordIndex, tmpl Template, letters string) string {
	tokens := make([]string, 0, len(tmpl))
	cursor := 0
	runes := []rune(letters)
	for _, slot := range tmpl {
		if slot.IsLiteral() {
			tokens = append(tokens, slot.Literal)
			continue
		}
		if cursor >= len(runes) {
			break
		}
		if w, ok := words.Pick(rng, slot.Tag, runes[cursor]); ok {
			tokens = append(tokens, w)
		}
		cursor++
	}
	return strings.Join(tokens, " ")
}

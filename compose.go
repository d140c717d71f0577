package backronym

import "math/rand"

// planChunks splits length into a list of chunk lengths, each in [1, max],
// summing to length. Chunk sizes are drawn at random, so the number of
// chunks varies run to run for the same length. The plan is materialized
// up front so composition can be inspected before any template is sampled.
func planChunks(rng *rand.Rand, length, max int) []int {
	var chunks []int
	remaining := length
	for remaining > max {
		n := 1 + rng.Intn(max)
		chunks = append(chunks, n)
		remaining -= n
	}
	return append(chunks, remaining)
}

// composeTemplate builds a template consuming exactly length letters.
// Lengths the library covers are sampled directly. Longer acronyms are
// split into chunks, each resolved to a sampled template, spliced together
// with a random preposition as a literal filler between chunks. Length 0
// yields the empty template. Negative lengths never reach here: every
// caller sanitizes the acronym first.
func composeTemplate(rng *rand.Rand, lib *TemplateLibrary, words *WordIndex, length int) (Template, error) {
	if length < 1 {
		return Template{}, nil
	}
	max := lib.MaxLength()
	if length <= max {
		return lib.Sample(rng, length)
	}
	if max < 1 {
		return nil, &NoTemplateError{Length: length}
	}

	var out Template
	for i, n := range planChunks(rng, length, max) {
		if i > 0 {
			filler, err := words.PickAny(rng, POSPreposition)
			if err != nil {
				return nil, err
			}
			out = append(out, LiteralSlot(filler))
		}
		part, err := lib.Sample(rng, n)
		if err != nil {
			return nil, err
		}
		out = append(out, part...)
	}
	return out, nil
}

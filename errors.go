package backronym

import "fmt"

// DecodeError reports an unrecognized part-of-speech code in a word record.
// It aborts the load; the previously loaded index stays in place.
type DecodeError struct {
	// Word is the word whose record carried the bad code.
	Word string
	// Code is the unrecognized part-of-speech character.
	Code rune
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode word %q: unrecognized part-of-speech code %q", e.Word, e.Code)
}

// ParseError reports a malformed line in the template source.
type ParseError struct {
	// Line is the 1-based line number in the source.
	Line int
	// Token is the offending token.
	Token string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse templates: line %d: bad slot token %q", e.Line, e.Token)
}

// EmptyCategoryError reports an unconstrained pick against a category with
// no words. It signals a data problem: a well-formed word list populates
// every category an installed template refers to.
type EmptyCategoryError struct {
	Tag PartOfSpeech
}

func (e *EmptyCategoryError) Error() string {
	return fmt.Sprintf("no words loaded for category %s", e.Tag)
}

// NoTemplateError reports a template request for a length outside the
// library's buckets.
type NoTemplateError struct {
	Length int
}

func (e *NoTemplateError) Error() string {
	return fmt.Sprintf("no template of length %d", e.Length)
}

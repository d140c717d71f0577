package backronym

import (
	"bufio"
	"io"
	"strings"
)

// wordSeparator is the Moby convention delimiter between a word and its
// part-of-speech codes. A tab is accepted as an alternative.
const wordSeparator = "×"

// parseWordList reads word records from r, one per line. Blank lines and
// lines starting with "!" are skipped. Each remaining line is a word and
// its code run, split on the first × or tab.
func parseWordList(r io.Reader) ([]WordRecord, error) {
	var records []WordRecord
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "!") {
			continue
		}
		word, codes := splitWordLine(line)
		if word == "" {
			continue
		}
		records = append(records, WordRecord{Word: word, Codes: codes})
	}
	return records, sc.Err()
}

// splitWordLine splits a word-list line into the word and its code run.
// A line with no separator yields an empty code run.
func splitWordLine(line string) (word, codes string) {
	if idx := strings.Index(line, wordSeparator); idx >= 0 {
		return line[:idx], line[idx+len(wordSeparator):]
	}
	if idx := strings.IndexByte(line, '\t'); idx >= 0 {
		return line[:idx], line[idx+1:]
	}
	return line, ""
}

// parseTemplates reads templates from r, one per line, tokens separated by
// whitespace. A single-character token is a part-of-speech code (tag slot);
// a longer token is a literal word. Blank lines and lines starting with "#"
// are skipped ("!" is a live code — the interjection tag — so it cannot
// mark comments here).
func parseTemplates(r io.Reader) ([]Template, error) {
	var templates []Template
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		var tmpl Template
		for _, tok := range strings.Fields(line) {
			runes := []rune(tok)
			if len(runes) == 1 {
				tag, ok := ParsePOS(runes[0])
				if !ok {
					return nil, &ParseError{Line: lineNo, Token: tok}
				}
				tmpl = append(tmpl, TagSlot(tag))
			} else {
				tmpl = append(tmpl, LiteralSlot(tok))
			}
		}
		if tmpl.LetterCount() == 0 {
			// a template consuming no letters can never be sampled
			continue
		}
		templates = append(templates, tmpl)
	}
	return templates, sc.Err()
}

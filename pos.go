package backronym

// PartOfSpeech represents the grammatical category of a word or template slot.
// The underlying value is the single-character code used in the word-list and
// template files (the Moby part-of-speech convention).
type PartOfSpeech rune

const (
	POSNoun              PartOfSpeech = 'N'
	POSPlural            PartOfSpeech = 'p'
	POSNounPhrase        PartOfSpeech = 'h'
	POSVerb              PartOfSpeech = 'V'
	POSTransitiveVerb    PartOfSpeech = 't'
	POSIntransitiveVerb  PartOfSpeech = 'i'
	POSAdjective         PartOfSpeech = 'A'
	POSAdverb            PartOfSpeech = 'v'
	POSConjunction       PartOfSpeech = 'C'
	POSPreposition       PartOfSpeech = 'P'
	POSInterjection      PartOfSpeech = '!'
	POSPronoun           PartOfSpeech = 'r'
	POSDefiniteArticle   PartOfSpeech = 'D'
	POSIndefiniteArticle PartOfSpeech = 'I'
	POSNominative        PartOfSpeech = 'o'
)

// allPOS lists every recognized category, in file-code order.
var allPOS = []PartOfSpeech{
	POSNoun,
	POSPlural,
	POSNounPhrase,
	POSVerb,
	POSTransitiveVerb,
	POSIntransitiveVerb,
	POSAdjective,
	POSAdverb,
	POSConjunction,
	POSPreposition,
	POSInterjection,
	POSPronoun,
	POSDefiniteArticle,
	POSIndefiniteArticle,
	POSNominative,
}

// posNames maps each category to its display name.
var posNames = map[PartOfSpeech]string{
	POSNoun:              "noun",
	POSPlural:            "plural",
	POSNounPhrase:        "noun-phrase",
	POSVerb:              "verb",
	POSTransitiveVerb:    "transitive-verb",
	POSIntransitiveVerb:  "intransitive-verb",
	POSAdjective:         "adjective",
	POSAdverb:            "adverb",
	POSConjunction:       "conjunction",
	POSPreposition:       "preposition",
	POSInterjection:      "interjection",
	POSPronoun:           "pronoun",
	POSDefiniteArticle:   "definite-article",
	POSIndefiniteArticle: "indefinite-article",
	POSNominative:        "nominative",
}

// ParsePOS maps a single-character file code to its category.
// The second return value is false for unrecognized codes.
func ParsePOS(c rune) (PartOfSpeech, bool) {
	p := PartOfSpeech(c)
	_, ok := posNames[p]
	return p, ok
}

// String returns the display name for the category, or "unknown".
func (p PartOfSpeech) String() string {
	if name, ok := posNames[p]; ok {
		return name
	}
	return "unknown"
}

// Package backronym generates backronyms: grammatically plausible phrases
// whose words' initial letters spell out a given acronym, driven by a
// part-of-speech tagged word list and a library of sentence templates.
// The output is part-of-speech consistent, not guaranteed to make sense.
package backronym

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// File names expected inside the data directory.
const (
	WordListFile = "words.txt"
	TemplateFile = "templates.txt"
)

// Generator holds the loaded word index and template library and provides
// the public API. Reloads swap in a freshly built structure under the
// write lock, so concurrent readers never observe a half-loaded state.
type Generator struct {
	dataDir string

	mu        sync.RWMutex
	words     *WordIndex
	templates *TemplateLibrary

	// rngMu serializes draws from the shared source; math/rand.Rand is
	// not safe for concurrent use.
	rngMu sync.Mutex
	rng   *rand.Rand

	pickBound int
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed makes every random choice deterministic for the given seed.
// Two generators built over the same data with the same seed produce
// identical phrase sequences.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// WithPickBound overrides the number of draws a letter-constrained pick
// attempts before giving up. See DefaultPickBound.
func WithPickBound(n int) Option {
	return func(g *Generator) {
		g.pickBound = n
	}
}

// New loads words.txt and templates.txt from dataDir and returns a
// ready-to-use Generator.
func New(dataDir string, opts ...Option) (*Generator, error) {
	g := &Generator{
		dataDir:   dataDir,
		pickBound: DefaultPickBound,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(g)
	}
	if err := g.ReloadWords(); err != nil {
		return nil, err
	}
	if err := g.ReloadTemplates(); err != nil {
		return nil, err
	}
	return g, nil
}

// Expand generates one backronym for raw. Non-letter characters in raw
// are discarded; an empty sanitized acronym yields an empty phrase.
func (g *Generator) Expand(raw string) (string, error) {
	phrases, err := g.ExpandN(raw, 1)
	if err != nil {
		return "", err
	}
	return phrases[0], nil
}

// ExpandN generates n independent backronyms for raw. Each phrase is built
// from a freshly composed template; nothing is shared between repeats.
func (g *Generator) ExpandN(raw string, n int) ([]string, error) {
	letters := Sanitize(raw)

	g.mu.RLock()
	words, templates := g.words, g.templates
	g.mu.RUnlock()

	phrases := make([]string, 0, n)
	for i := 0; i < n; i++ {
		g.rngMu.Lock()
		tmpl, err := composeTemplate(g.rng, templates, words, len(letters))
		if err != nil {
			g.rngMu.Unlock()
			return nil, err
		}
		phrase := buildPhrase(g.rng, words, tmpl, letters)
		g.rngMu.Unlock()
		phrases = append(phrases, phrase)
	}
	return phrases, nil
}

// ReloadWords re-reads the word list and swaps it in atomically. On
// failure the previous index stays in place.
func (g *Generator) ReloadWords() error {
	path := filepath.Join(g.dataDir, WordListFile)
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	records, err := parseWordList(f)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	idx := NewWordIndex(g.pickBound)
	if err := idx.Load(records); err != nil {
		return err
	}

	g.mu.Lock()
	g.words = idx
	g.mu.Unlock()
	return nil
}

// ReloadTemplates re-reads the template file and swaps it in atomically.
// On failure the previous library stays in place.
func (g *Generator) ReloadTemplates() error {
	path := filepath.Join(g.dataDir, TemplateFile)
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	lib := NewTemplateLibrary()
	if err := lib.Load(f); err != nil {
		return err
	}

	g.mu.Lock()
	g.templates = lib
	g.mu.Unlock()
	return nil
}

// WordCount returns the number of word entries loaded from the source.
// Entries skipped at load time (multi-word phrases) are not counted.
func (g *Generator) WordCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.words.Entries()
}

// TemplateCount returns the number of loaded templates.
func (g *Generator) TemplateCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.templates.Count()
}

// MaxTemplateLength returns the longest precomposed template length.
// Longer acronyms are handled by splicing templates together.
func (g *Generator) MaxTemplateLength() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.templates.MaxLength()
}

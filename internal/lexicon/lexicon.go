// Package lexicon loads the static lexical resources the analyzers read:
// a sentiment polarity lexicon and a stop-word set.
//
// Resources are loaded once at start-up, either from YAML files or from the
// embedded English defaults, and are read-only afterwards. All lookups are
// map-backed and safe for concurrent use.
package lexicon

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"textanalyzer/internal/normalize"
)

// Entry is the sentiment contribution of one lexicon word.
type Entry struct {
	Polarity     float64 `yaml:"polarity"`
	Subjectivity float64 `yaml:"subjectivity"`
}

// Lexicon maps lowercased words to their sentiment entries.
type Lexicon struct {
	entries  map[string]Entry
	negators map[string]struct{}
}

// New builds a Lexicon. Keys are normalized and entry values clamped to
// polarity [-1,1] and subjectivity [0,1].
func New(entries map[string]Entry, negators []string) *Lexicon {
	l := &Lexicon{
		entries:  make(map[string]Entry, len(entries)),
		negators: make(map[string]struct{}, len(negators)),
	}
	fold := normalize.NewFolder()
	for w, e := range entries {
		key := fold.Lower(w)
		if key == "" {
			continue
		}
		l.entries[key] = Entry{
			Polarity:     clamp(e.Polarity, -1, 1),
			Subjectivity: clamp(e.Subjectivity, 0, 1),
		}
	}
	for _, n := range negators {
		if key := fold.Lower(n); key != "" {
			l.negators[key] = struct{}{}
		}
	}
	return l
}

// Lookup returns the entry for an already normalized word.
func (l *Lexicon) Lookup(word string) (Entry, bool) {
	e, ok := l.entries[word]
	return e, ok
}

// IsNegator reports whether an already normalized word flips the next match.
func (l *Lexicon) IsNegator(word string) bool {
	_, ok := l.negators[word]
	return ok
}

// Len returns the number of scored words.
func (l *Lexicon) Len() int { return len(l.entries) }

type lexiconFile struct {
	Negators []string         `yaml:"negators"`
	Words    map[string]Entry `yaml:"words"`
}

// ParseLexicon decodes a YAML lexicon:
//
//	negators: [not, never]
//	words:
//	  good: {polarity: 0.7, subjectivity: 0.6}
func ParseLexicon(data []byte) (*Lexicon, error) {
	var f lexiconFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse lexicon: %w", err)
	}
	if len(f.Words) == 0 {
		return nil, fmt.Errorf("parse lexicon: no words")
	}
	return New(f.Words, f.Negators), nil
}

// LoadLexicon reads a YAML lexicon from path, or the embedded default when
// path is empty.
func LoadLexicon(path string) (*Lexicon, error) {
	if path == "" {
		return ParseLexicon(defaultLexicon)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load lexicon: %w", err)
	}
	return ParseLexicon(data)
}

// Default returns the embedded English lexicon.
func Default() *Lexicon {
	l, err := ParseLexicon(defaultLexicon)
	if err != nil {
		panic(err)
	}
	return l
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

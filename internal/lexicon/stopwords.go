package lexicon

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"textanalyzer/internal/normalize"
)

// StopWords is a set of lowercased words ignored by keyword extraction.
type StopWords struct {
	set map[string]struct{}
}

// NewStopWords builds a set from words; entries are lowercased.
func NewStopWords(words []string) *StopWords {
	s := &StopWords{set: make(map[string]struct{}, len(words))}
	fold := normalize.NewFolder()
	for _, w := range words {
		if key := fold.Lower(w); key != "" {
			s.set[key] = struct{}{}
		}
	}
	return s
}

// Contains reports whether an already lowercased term is a stop word.
// A nil set contains nothing.
func (s *StopWords) Contains(term string) bool {
	if s == nil {
		return false
	}
	_, ok := s.set[term]
	return ok
}

// Len returns the number of stop words.
func (s *StopWords) Len() int {
	if s == nil {
		return 0
	}
	return len(s.set)
}

// ParseStopWords decodes `stopwords: [a, an, the]`.
func ParseStopWords(data []byte) (*StopWords, error) {
	var f struct {
		StopWords []string `yaml:"stopwords"`
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse stopwords: %w", err)
	}
	return NewStopWords(f.StopWords), nil
}

// LoadStopWords reads a YAML stop-word list from path, or the embedded
// default when path is empty.
func LoadStopWords(path string) (*StopWords, error) {
	if path == "" {
		return ParseStopWords(defaultStopWords)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load stopwords: %w", err)
	}
	return ParseStopWords(data)
}

// DefaultStopWords returns the embedded English stop words.
func DefaultStopWords() *StopWords {
	s, err := ParseStopWords(defaultStopWords)
	if err != nil {
		panic(err)
	}
	return s
}

package lexicon

import "fmt"

// Resources bundles the read-only lexical data handed to the analyzers.
type Resources struct {
	Lexicon   *Lexicon
	StopWords *StopWords
}

// Load reads both resources. Empty paths select the embedded defaults.
func Load(lexiconPath, stopWordsPath string) (*Resources, error) {
	lex, err := LoadLexicon(lexiconPath)
	if err != nil {
		return nil, fmt.Errorf("load resources: %w", err)
	}
	stops, err := LoadStopWords(stopWordsPath)
	if err != nil {
		return nil, fmt.Errorf("load resources: %w", err)
	}
	return &Resources{Lexicon: lex, StopWords: stops}, nil
}

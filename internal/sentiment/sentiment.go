// Package sentiment scores text polarity and subjectivity against a word
// lexicon.
//
// Each word is trimmed of surrounding punctuation and lowercased before the
// lookup. Polarity and subjectivity are the means over the words found in
// the lexicon; words the lexicon does not know are ignored entirely. A
// negator ("not", "never") directly before a matched word scales that word's
// polarity by -0.5.
//
// Text with no lexicon words scores as Neutral with zero polarity and
// subjectivity. Scoring never fails.
package sentiment

import (
	"textanalyzer/internal/domain"
	"textanalyzer/internal/lexicon"
	"textanalyzer/internal/normalize"
	"textanalyzer/internal/tokenizer"
)

// negationFactor scales the polarity of a negated word.
const negationFactor = -0.5

// Scorer is safe for concurrent use; it only reads its lexicon.
type Scorer struct {
	lex *lexicon.Lexicon
}

// NewScorer returns a Scorer over lex.
func NewScorer(lex *lexicon.Lexicon) *Scorer {
	return &Scorer{lex: lex}
}

// Score analyzes raw text.
func (s *Scorer) Score(text string) domain.SentimentResult {
	return s.ScoreWords(tokenizer.Words(text))
}

// ScoreWords analyzes an already tokenized word sequence.
func (s *Scorer) ScoreWords(words []string) domain.SentimentResult {
	var (
		polaritySum     float64
		subjectivitySum float64
		matched         int
		negated         bool
	)
	fold := normalize.NewFolder()
	for _, w := range words {
		key := fold.Key(w)
		if key == "" {
			continue
		}
		if s.lex.IsNegator(key) {
			negated = true
			continue
		}
		e, ok := s.lex.Lookup(key)
		if !ok {
			negated = false
			continue
		}
		p := e.Polarity
		if negated {
			p *= negationFactor
			negated = false
		}
		polaritySum += p
		subjectivitySum += e.Subjectivity
		matched++
	}
	if matched == 0 {
		return domain.SentimentResult{Label: domain.Neutral}
	}
	polarity := clamp(polaritySum/float64(matched), -1, 1)
	return domain.SentimentResult{
		Polarity:     polarity,
		Subjectivity: clamp(subjectivitySum/float64(matched), 0, 1),
		Label:        domain.LabelFor(polarity),
		Matched:      matched,
	}
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

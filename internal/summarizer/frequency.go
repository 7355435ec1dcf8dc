package summarizer

import (
	"math"

	"textanalyzer/internal/domain"
	"textanalyzer/internal/lexicon"
	"textanalyzer/internal/normalize"
)

// Frequency ranks sentences by the normalized frequency of their terms
// (stop words filtered), dampened by sentence length.
type Frequency struct {
	stopwords *lexicon.StopWords
}

// NewFrequency creates a frequency-based sentence ranker.
func NewFrequency(stopwords *lexicon.StopWords) *Frequency {
	return &Frequency{stopwords: stopwords}
}

// Name returns the identifier of this summarizer.
func (s *Frequency) Name() string { return "frequency" }

// Summarize returns up to n sentences in document order.
func (s *Frequency) Summarize(sentences []string, n int) ([]domain.SummarySentence, error) {
	if len(sentences) <= 1 {
		return leading(sentences, len(sentences)), nil
	}
	n = clampCount(n, len(sentences))

	terms := make([][]string, len(sentences))
	freq := map[string]float64{}
	fold := normalize.NewFolder()
	for i, sent := range sentences {
		terms[i] = fold.Terms(sent)
		for _, tok := range terms[i] {
			if s.stopwords.Contains(tok) {
				continue
			}
			freq[tok]++
		}
	}
	maxF := 0.0
	for _, v := range freq {
		if v > maxF {
			maxF = v
		}
	}
	if maxF == 0 {
		return leading(sentences, n), nil
	}
	for k, v := range freq {
		freq[k] = v / maxF
	}

	scores := make([]float64, len(sentences))
	for i := range sentences {
		score := 0.0
		for _, tok := range terms[i] {
			score += freq[tok]
		}
		// Normalize by sentence length to avoid bias
		if l := float64(len(terms[i])); l > 0 {
			score /= math.Sqrt(l)
		}
		scores[i] = score
	}
	return selectInOrder(sentences, scores, n), nil
}

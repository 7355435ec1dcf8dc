// Package summarizer picks the most salient sentences of a document.
//
// Summarizers rank sentences by score and keep the best n, but always emit
// the chosen sentences in their original document order.
package summarizer

import (
	"slices"

	"textanalyzer/internal/domain"
)

// DefaultSentences is the summary length used when n <= 0.
const DefaultSentences = 3

// clampCount resolves the requested summary length against the number of
// available sentences.
func clampCount(n, available int) int {
	if n <= 0 {
		n = DefaultSentences
	}
	return min(n, available)
}

// selectInOrder keeps the n highest scoring sentences and returns them in
// document order. Equal scores prefer the earlier sentence.
func selectInOrder(sentences []string, scores []float64, n int) []domain.SummarySentence {
	idx := make([]int, len(sentences))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		switch {
		case scores[a] > scores[b]:
			return -1
		case scores[a] < scores[b]:
			return 1
		}
		return 0
	})
	idx = idx[:n]
	slices.Sort(idx)
	out := make([]domain.SummarySentence, 0, n)
	for _, i := range idx {
		out = append(out, domain.SummarySentence{Index: i, Text: sentences[i], Score: scores[i]})
	}
	return out
}

// leading returns the first n sentences unscored.
func leading(sentences []string, n int) []domain.SummarySentence {
	out := make([]domain.SummarySentence, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, domain.SummarySentence{Index: i, Text: sentences[i]})
	}
	return out
}

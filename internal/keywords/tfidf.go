// Package keywords ranks the terms of a single document by TF-IDF.
//
// Scoring one document means every vocabulary term has document frequency 1
// in a corpus of size 1, so the smoothed IDF is the constant 1 and the score
// reduces to plain term frequency. The IDF step is still applied so the
// formula stays the standard one; callers should read the scores as
// relative term frequencies, not as corpus-level salience.
//
// Terms shorter than two runes ("x", "3") are not part of the vocabulary.
package keywords

import (
	"math"
	"slices"
	"strings"
	"unicode/utf8"

	"textanalyzer/internal/domain"
	"textanalyzer/internal/lexicon"
	"textanalyzer/internal/normalize"
)

// DefaultTopK is the number of keywords returned when none is configured.
const DefaultTopK = 10

// minTermRunes is the shortest term kept in the vocabulary.
const minTermRunes = 2

// singleDocument is the corpus size for one document.
const singleDocument = 1

// Engine extracts keywords. It holds only read-only state and is safe for
// concurrent use.
type Engine struct {
	topK      int
	stopwords *lexicon.StopWords
}

// NewEngine returns an Engine keeping topK terms; topK <= 0 selects DefaultTopK.
// A nil stop-word set filters nothing.
func NewEngine(stopwords *lexicon.StopWords, topK int) *Engine {
	if topK <= 0 {
		topK = DefaultTopK
	}
	return &Engine{topK: topK, stopwords: stopwords}
}

// Extract scores the terms in words and returns the top K, highest score
// first, ties in lexicographic order. A document without vocabulary terms
// yields an empty slice.
func (e *Engine) Extract(words []string) []domain.KeywordScore {
	tf := make(map[string]int)
	total := 0
	fold := normalize.NewFolder()
	for _, w := range words {
		for _, term := range fold.Terms(w) {
			if utf8.RuneCountInString(term) < minTermRunes || e.stopwords.Contains(term) {
				continue
			}
			tf[term]++
			total++
		}
	}
	if total == 0 {
		return []domain.KeywordScore{}
	}
	idf := IDF(singleDocument, singleDocument)
	out := make([]domain.KeywordScore, 0, len(tf))
	for term, count := range tf {
		out = append(out, domain.KeywordScore{
			Term:  term,
			Score: float64(count) / float64(total) * idf,
			Count: count,
		})
	}
	slices.SortFunc(out, func(a, b domain.KeywordScore) int {
		if a.Score != b.Score {
			if a.Score > b.Score {
				return -1
			}
			return 1
		}
		return strings.Compare(a.Term, b.Term)
	})
	if len(out) > e.topK {
		out = out[:e.topK]
	}
	return out
}

// IDF is the smoothed inverse document frequency ln((1+n)/(1+df)) + 1 for a
// term found in df of n documents.
func IDF(n, df int) float64 {
	return math.Log(float64(1+n)/float64(1+df)) + 1.0
}

package summarizer

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"textanalyzer/internal/domain"
	"textanalyzer/internal/lexicon"
	"textanalyzer/internal/normalize"
)

// rankTolerance is the relative size below which a singular value counts as zero.
const rankTolerance = 1e-10

// LSA ranks sentences by latent semantic analysis. It builds a term-by-sentence
// count matrix, factorizes it with a thin SVD and scores sentence j as
//
//	sqrt(sum_i (sigma_i * V[j,i])^2)
//
// over the top singular dimensions.
type LSA struct {
	stopwords  *lexicon.StopWords
	dimensions int
}

// NewLSA returns an LSA summarizer. dimensions <= 0 uses every non-zero
// singular value. A nil stop-word set keeps every term.
func NewLSA(stopwords *lexicon.StopWords, dimensions int) *LSA {
	return &LSA{stopwords: stopwords, dimensions: dimensions}
}

// Name returns the identifier of this summarizer.
func (s *LSA) Name() string { return "lsa" }

// Summarize returns up to n sentences in document order.
func (s *LSA) Summarize(sentences []string, n int) ([]domain.SummarySentence, error) {
	if len(sentences) <= 1 {
		return leading(sentences, len(sentences)), nil
	}
	n = clampCount(n, len(sentences))

	a := s.termMatrix(sentences)
	if a == nil {
		return leading(sentences, n), nil
	}
	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDThin); !ok {
		return nil, fmt.Errorf("lsa: singular value decomposition did not converge")
	}
	sigma := svd.Values(nil)
	rank := effectiveRank(sigma)
	if rank == 0 {
		return leading(sentences, n), nil
	}
	k := rank
	if s.dimensions > 0 && s.dimensions < k {
		k = s.dimensions
	}
	var v mat.Dense
	svd.VTo(&v)

	scores := make([]float64, len(sentences))
	for j := range sentences {
		sum := 0.0
		for i := 0; i < k; i++ {
			x := sigma[i] * v.At(j, i)
			sum += x * x
		}
		scores[j] = math.Sqrt(sum)
	}
	return selectInOrder(sentences, scores, n), nil
}

// termMatrix builds the term-by-sentence count matrix, or nil when the
// sentences share no terms at all.
func (s *LSA) termMatrix(sentences []string) *mat.Dense {
	rows := make(map[string]int)
	perSentence := make([]map[int]float64, len(sentences))
	fold := normalize.NewFolder()
	for j, sent := range sentences {
		counts := make(map[int]float64)
		for _, term := range fold.Terms(sent) {
			if s.stopwords.Contains(term) {
				continue
			}
			r, ok := rows[term]
			if !ok {
				r = len(rows)
				rows[term] = r
			}
			counts[r]++
		}
		perSentence[j] = counts
	}
	if len(rows) == 0 {
		return nil
	}
	a := mat.NewDense(len(rows), len(sentences), nil)
	for j, counts := range perSentence {
		for r, c := range counts {
			a.Set(r, j, c)
		}
	}
	return a
}

func effectiveRank(sigma []float64) int {
	if len(sigma) == 0 || sigma[0] == 0 {
		return 0
	}
	tol := sigma[0] * rankTolerance
	rank := 0
	for _, v := range sigma {
		if v > tol {
			rank++
		}
	}
	return rank
}

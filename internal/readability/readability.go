// Package readability computes a Flesch reading-ease score.
//
// Syllables are approximated by the character count of each word. This is a
// deliberate simplification kept so scores stay comparable with earlier
// output; it is not a phonetic syllable count.
package readability

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"textanalyzer/internal/domain"
	"textanalyzer/internal/tokenizer"
)

// Flesch reading-ease coefficients.
const (
	base              = 206.835
	sentenceLenWeight = 1.015
	syllableWeight    = 84.6
)

// Score computes the reading-ease score of text. Sentences are counted as
// '.', '!' and '?' characters and words as whitespace-delimited tokens, so
// "Wait..." counts three sentences. It fails with domain.ErrDivisionByZero
// when either count is zero.
func Score(text string) (domain.ReadabilityResult, error) {
	sentences := CountSentences(text)
	words := tokenizer.Words(text)
	syllables := 0
	for _, w := range words {
		syllables += utf8.RuneCountInString(w)
	}
	res := domain.ReadabilityResult{
		Sentences: sentences,
		Words:     len(words),
		Syllables: syllables,
	}
	if sentences == 0 {
		return res, fmt.Errorf("readability: no sentence terminators: %w", domain.ErrDivisionByZero)
	}
	if len(words) == 0 {
		return res, fmt.Errorf("readability: no words: %w", domain.ErrDivisionByZero)
	}
	res.Score = Formula(len(words), sentences, syllables)
	return res, nil
}

// Formula applies the reading-ease formula to raw counts. Callers must
// ensure words and sentences are non-zero.
func Formula(words, sentences, syllables int) float64 {
	w := float64(words)
	return base - sentenceLenWeight*(w/float64(sentences)) - syllableWeight*(float64(syllables)/w)
}

// CountSentences counts sentence terminator characters.
func CountSentences(text string) int {
	return strings.Count(text, ".") + strings.Count(text, "!") + strings.Count(text, "?")
}

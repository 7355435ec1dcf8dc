package domain

import (
	"fmt"
	"strings"
	"time"
)

// Feature identifies one analysis a caller can request.
type Feature int

const (
	WordFrequency Feature = iota
	Sentiment
	Keywords
	Summary
	Readability
	WordCloud
)

// AllFeatures lists every feature in canonical order.
var AllFeatures = []Feature{WordFrequency, Sentiment, Keywords, Summary, Readability, WordCloud}

var featureNames = map[Feature]string{
	WordFrequency: "WordFrequency",
	Sentiment:     "Sentiment",
	Keywords:      "Keywords",
	Summary:       "Summary",
	Readability:   "Readability",
	WordCloud:     "WordCloud",
}

// featureAliases maps folded spellings, including the menu labels
// ("Sentiment Analysis", "Word Cloud"), to features.
var featureAliases = map[string]Feature{
	"wordfrequency":     WordFrequency,
	"frequency":         WordFrequency,
	"sentiment":         Sentiment,
	"sentimentanalysis": Sentiment,
	"keywords":          Keywords,
	"keywordextraction": Keywords,
	"summary":           Summary,
	"textsummarization": Summary,
	"summarization":     Summary,
	"readability":       Readability,
	"readabilityscore":  Readability,
	"wordcloud":         WordCloud,
	"cloud":             WordCloud,
}

func (f Feature) String() string {
	if name, ok := featureNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Feature(%d)", int(f))
}

// ParseFeature resolves a feature name. Case, spaces, dashes and
// underscores are ignored, so "Word Frequency" and "word-frequency" both work.
func ParseFeature(name string) (Feature, error) {
	folded := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_', '\t':
			return -1
		}
		return r
	}, strings.ToLower(name))
	if f, ok := featureAliases[folded]; ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFeature, name)
}

// ParseFeatures resolves a list of names, dropping duplicates and keeping
// canonical order.
func ParseFeatures(names []string) ([]Feature, error) {
	seen := make(map[Feature]struct{}, len(names))
	for _, n := range names {
		if strings.TrimSpace(n) == "" {
			continue
		}
		f, err := ParseFeature(n)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrValidation, err)
		}
		seen[f] = struct{}{}
	}
	out := make([]Feature, 0, len(seen))
	for _, f := range AllFeatures {
		if _, ok := seen[f]; ok {
			out = append(out, f)
		}
	}
	return out, nil
}

// Outcome is the success-or-error slot of one feature.
type Outcome[T any] struct {
	Value    T
	Err      error
	Duration time.Duration
}

// OK reports whether the feature produced a value.
func (o *Outcome[T]) OK() bool { return o != nil && o.Err == nil }

// AnalysisResult aggregates the outcome of every requested feature.
// Slots for features that were not requested are nil.
type AnalysisResult struct {
	ID        string
	Requested []Feature

	WordFrequency *Outcome[[]WordCount]
	Sentiment     *Outcome[SentimentResult]
	Keywords      *Outcome[[]KeywordScore]
	Summary       *Outcome[[]SummarySentence]
	Readability   *Outcome[ReadabilityResult]
	WordCloud     *Outcome[string]
}

// Err returns the error recorded for f, or nil when f succeeded or was not requested.
func (r *AnalysisResult) Err(f Feature) error {
	switch f {
	case WordFrequency:
		return slotErr(r.WordFrequency)
	case Sentiment:
		return slotErr(r.Sentiment)
	case Keywords:
		return slotErr(r.Keywords)
	case Summary:
		return slotErr(r.Summary)
	case Readability:
		return slotErr(r.Readability)
	case WordCloud:
		return slotErr(r.WordCloud)
	}
	return nil
}

// Failed lists requested features whose slot holds an error.
func (r *AnalysisResult) Failed() []Feature {
	var out []Feature
	for _, f := range r.Requested {
		if r.Err(f) != nil {
			out = append(out, f)
		}
	}
	return out
}

func slotErr[T any](o *Outcome[T]) error {
	if o == nil {
		return nil
	}
	return o.Err
}

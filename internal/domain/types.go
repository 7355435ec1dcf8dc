package domain

import (
	"encoding/json"
	"fmt"
)

// Document is the tokenized form of one input text.
// Words keep their original case and any attached punctuation.
type Document struct {
	Text      string
	Sentences []string
	Words     []string
}

// Label is the coarse sentiment class derived from polarity.
type Label int

const (
	Negative Label = -1
	Neutral  Label = 0
	Positive Label = 1
)

var labelNames = map[Label]string{
	Negative: "Negative",
	Neutral:  "Neutral",
	Positive: "Positive",
}

func (l Label) String() string {
	if name, ok := labelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("Label(%d)", int(l))
}

// MarshalJSON encodes the label as its name.
func (l Label) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// LabelFor maps a polarity onto its label.
func LabelFor(polarity float64) Label {
	switch {
	case polarity > 0:
		return Positive
	case polarity < 0:
		return Negative
	default:
		return Neutral
	}
}

// SentimentResult holds the aggregate polarity of a text.
type SentimentResult struct {
	Polarity     float64 `json:"polarity"`     // -1.0 to +1.0
	Subjectivity float64 `json:"subjectivity"` // 0.0 to 1.0
	Label        Label   `json:"label"`
	Matched      int     `json:"matched"` // words found in the lexicon
}

// KeywordScore is a vocabulary term with its weight.
type KeywordScore struct {
	Term  string  `json:"term"`
	Score float64 `json:"score"`
	Count int     `json:"count"`
}

// SummarySentence is a sentence picked for the summary. Index is its
// position in Document.Sentences.
type SummarySentence struct {
	Index int     `json:"index"`
	Text  string  `json:"text"`
	Score float64 `json:"score"`
}

// ReadabilityResult is a Flesch reading-ease score and the counts behind it.
type ReadabilityResult struct {
	Score     float64 `json:"score"`
	Sentences int     `json:"sentences"`
	Words     int     `json:"words"`
	Syllables int     `json:"syllables"` // character-count approximation
}

// Band names the reading-ease band the score falls into.
func (r ReadabilityResult) Band() string {
	switch {
	case r.Score >= 90:
		return "very easy"
	case r.Score >= 80:
		return "easy"
	case r.Score >= 70:
		return "fairly easy"
	case r.Score >= 60:
		return "standard"
	case r.Score >= 50:
		return "fairly difficult"
	case r.Score >= 30:
		return "difficult"
	default:
		return "very confusing"
	}
}

// WordCount is one row of a frequency table.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

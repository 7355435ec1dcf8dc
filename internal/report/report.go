// Package report renders an AnalysisResult for people (text tables) and for
// programs (JSON).
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"textanalyzer/internal/domain"
)

// Titles of each feature section.
var titles = map[domain.Feature]string{
	domain.WordFrequency: "Word Frequency",
	domain.Sentiment:     "Sentiment Analysis",
	domain.Keywords:      "Keyword Extraction",
	domain.Summary:       "Text Summarization",
	domain.Readability:   "Readability Score",
	domain.WordCloud:     "Word Cloud",
}

// Title returns the display title of f.
func Title(f domain.Feature) string {
	if t, ok := titles[f]; ok {
		return t
	}
	return f.String()
}

// Text writes every requested feature as a titled section.
func Text(w io.Writer, res *domain.AnalysisResult) error {
	var b strings.Builder
	for i, f := range res.Requested {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("== " + Title(f) + " ==\n")
		b.WriteString(Section(res, f))
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// Section renders the body of one feature: its value, or its error.
func Section(res *domain.AnalysisResult, f domain.Feature) string {
	if err := res.Err(f); err != nil {
		return "error: " + err.Error()
	}
	switch f {
	case domain.WordFrequency:
		if res.WordFrequency != nil {
			return frequencyTable(res.WordFrequency.Value)
		}
	case domain.Sentiment:
		if res.Sentiment != nil {
			return sentimentText(res.Sentiment.Value)
		}
	case domain.Keywords:
		if res.Keywords != nil {
			return keywordTable(res.Keywords.Value)
		}
	case domain.Summary:
		if res.Summary != nil {
			return summaryText(res.Summary.Value)
		}
	case domain.Readability:
		if res.Readability != nil {
			r := res.Readability.Value
			return fmt.Sprintf("Flesch-Kincaid Readability Score: %.2f (%s)\n%d sentences, %d words, %d characters",
				r.Score, r.Band(), r.Sentences, r.Words, r.Syllables)
		}
	case domain.WordCloud:
		if res.WordCloud != nil {
			return res.WordCloud.Value
		}
	}
	return "not computed"
}

func frequencyTable(counts []domain.WordCount) string {
	rows := make([][]string, len(counts))
	for i, c := range counts {
		rows[i] = []string{c.Word, strconv.Itoa(c.Count)}
	}
	return newTable("Word", "Frequency").Rows(rows...).Render()
}

func keywordTable(kws []domain.KeywordScore) string {
	if len(kws) == 0 {
		return "no keywords (text has no terms outside the stop-word list)"
	}
	rows := make([][]string, len(kws))
	for i, k := range kws {
		rows[i] = []string{k.Term, strconv.FormatFloat(k.Score, 'f', 4, 64)}
	}
	return newTable("Keyword", "TF-IDF Score").Rows(rows...).Render()
}

func sentimentText(s domain.SentimentResult) string {
	return fmt.Sprintf("Polarity: %.4f (Range: -1 to 1)\nSubjectivity: %.4f (Range: 0 to 1)\nSentiment: %s",
		s.Polarity, s.Subjectivity, s.Label)
}

func summaryText(sentences []domain.SummarySentence) string {
	if len(sentences) == 0 {
		return "no sentences"
	}
	lines := make([]string, len(sentences))
	for i, s := range sentences {
		lines[i] = "- " + s.Text
	}
	return "Summary:\n" + strings.Join(lines, "\n")
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...)
}

type jsonOutcome struct {
	Value      any     `json:"value,omitempty"`
	Error      string  `json:"error,omitempty"`
	DurationMS float64 `json:"duration_ms"`
}

type jsonResult struct {
	ID       string                 `json:"id"`
	Features []string               `json:"features"`
	Results  map[string]jsonOutcome `json:"results"`
}

// JSON writes res as an indented JSON document. Errors become strings.
func JSON(w io.Writer, res *domain.AnalysisResult) error {
	out := jsonResult{ID: res.ID, Results: make(map[string]jsonOutcome, len(res.Requested))}
	for _, f := range res.Requested {
		out.Features = append(out.Features, f.String())
		out.Results[f.String()] = outcomeOf(res, f)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func outcomeOf(res *domain.AnalysisResult, f domain.Feature) jsonOutcome {
	switch f {
	case domain.WordFrequency:
		return toJSON(res.WordFrequency)
	case domain.Sentiment:
		return toJSON(res.Sentiment)
	case domain.Keywords:
		return toJSON(res.Keywords)
	case domain.Summary:
		return toJSON(res.Summary)
	case domain.Readability:
		return toJSON(res.Readability)
	case domain.WordCloud:
		return toJSON(res.WordCloud)
	}
	return jsonOutcome{}
}

func toJSON[T any](o *domain.Outcome[T]) jsonOutcome {
	if o == nil {
		return jsonOutcome{Error: "not computed"}
	}
	j := jsonOutcome{DurationMS: float64(o.Duration.Microseconds()) / 1000}
	if o.Err != nil {
		j.Error = o.Err.Error()
		return j
	}
	j.Value = o.Value
	return j
}

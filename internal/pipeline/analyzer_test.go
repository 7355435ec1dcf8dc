package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"

	"textanalyzer/internal/domain"
	"textanalyzer/internal/keywords"
	"textanalyzer/internal/lexicon"
	"textanalyzer/internal/sentiment"
	"textanalyzer/internal/summarizer"
)

type panicSummarizer struct{}

func (panicSummarizer) Name() string { return "panic" }
func (panicSummarizer) Summarize([]string, int) ([]domain.SummarySentence, error) {
	panic("matrix exploded")
}

type failingSummarizer struct{}

func (failingSummarizer) Name() string { return "failing" }
func (failingSummarizer) Summarize([]string, int) ([]domain.SummarySentence, error) {
	return nil, errors.New("vectorization failed")
}

type joinRenderer struct{}

func (joinRenderer) RenderCloud(counts []domain.WordCount) (string, error) {
	words := make([]string, len(counts))
	for i, c := range counts {
		words[i] = c.Word
	}
	return strings.Join(words, ","), nil
}

func newAnalyzer(sum domain.Summarizer, cloud domain.CloudRenderer, parallel bool) *Analyzer {
	res, err := lexicon.Load("", "")
	if err != nil {
		panic(err)
	}
	if sum == nil {
		sum = summarizer.NewLSA(nil, 0)
	}
	return NewAnalyzer(
		sentiment.NewScorer(res.Lexicon),
		keywords.NewEngine(res.StopWords, 0),
		sum,
		cloud,
		nil,
		Options{Parallel: parallel},
	)
}

func TestAnalyzeRejectsBlankText(t *testing.T) {
	a := newAnalyzer(nil, nil, false)
	for _, text := range []string{"", "   ", "\n\t "} {
		res, err := a.Analyze(context.Background(), text, []domain.Feature{domain.Readability})
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("Analyze(%q) err = %v, want ErrValidation", text, err)
		}
		if res != nil {
			t.Errorf("Analyze(%q) returned a result", text)
		}
	}
}

func TestAnalyzeRejectsEmptyOrUnknownFeatures(t *testing.T) {
	a := newAnalyzer(nil, nil, false)
	if _, err := a.Analyze(context.Background(), "text.", nil); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("no features: err = %v", err)
	}
	if _, err := a.Analyze(context.Background(), "text.", []domain.Feature{domain.Feature(42)}); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("unknown feature: err = %v", err)
	}
	if _, err := a.AnalyzeNames(context.Background(), "text.", []string{"Sentiment", "Telepathy"}); !errors.Is(err, domain.ErrUnknownFeature) {
		t.Errorf("unknown name: err = %v", err)
	}
}

func TestReadabilityFailureIsolated(t *testing.T) {
	for _, parallel := range []bool{false, true} {
		a := newAnalyzer(nil, nil, parallel)
		res, err := a.Analyze(context.Background(), "I love this wonderful day", []domain.Feature{domain.Sentiment, domain.Readability})
		if err != nil {
			t.Fatalf("Analyze: %v", err)
		}
		if !res.Sentiment.OK() {
			t.Fatalf("sentiment failed: %v", res.Sentiment.Err)
		}
		if res.Sentiment.Value.Label != domain.Positive {
			t.Errorf("sentiment label = %v", res.Sentiment.Value.Label)
		}
		if res.Readability == nil || !errors.Is(res.Readability.Err, domain.ErrComputation) || !errors.Is(res.Readability.Err, domain.ErrDivisionByZero) {
			t.Errorf("readability err = %v", res.Readability)
		}
		if got := res.Failed(); len(got) != 1 || got[0] != domain.Readability {
			t.Errorf("Failed() = %v", got)
		}
	}
}

func TestPanicAndErrorIsolated(t *testing.T) {
	text := "Go is fast. Go is simple. Tests are good."
	features := []domain.Feature{domain.Summary, domain.WordFrequency, domain.Keywords}
	for _, sum := range []domain.Summarizer{panicSummarizer{}, failingSummarizer{}} {
		res, err := newAnalyzer(sum, nil, true).Analyze(context.Background(), text, features)
		if err != nil {
			t.Fatalf("%s: %v", sum.Name(), err)
		}
		if !errors.Is(res.Err(domain.Summary), domain.ErrComputation) {
			t.Errorf("%s: summary err = %v", sum.Name(), res.Err(domain.Summary))
		}
		if !res.WordFrequency.OK() || !res.Keywords.OK() {
			t.Errorf("%s: siblings failed: %v / %v", sum.Name(), res.WordFrequency.Err, res.Keywords.Err)
		}
	}
}

func TestEndToEnd(t *testing.T) {
	a := newAnalyzer(nil, nil, false)
	res, err := a.AnalyzeNames(context.Background(), "I love this. It is great! I hate bugs.", []string{"Sentiment Analysis", "Word Frequency"})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(res.Requested) != 2 || res.Requested[0] != domain.WordFrequency || res.Requested[1] != domain.Sentiment {
		t.Errorf("Requested = %v", res.Requested)
	}
	if !res.WordFrequency.OK() {
		t.Fatal(res.WordFrequency.Err)
	}
	counts := map[string]int{}
	for _, wc := range res.WordFrequency.Value {
		counts[wc.Word] = wc.Count
	}
	if counts["I"] != 2 {
		t.Errorf(`count("I") = %d, want 2`, counts["I"])
	}
	if res.WordFrequency.Value[0].Word != "I" {
		t.Errorf("top word = %q, want I", res.WordFrequency.Value[0].Word)
	}
	if !res.Sentiment.OK() || res.Sentiment.Value.Polarity <= 0 || res.Sentiment.Value.Label != domain.Positive {
		t.Errorf("sentiment = %+v", res.Sentiment)
	}
	if res.Keywords != nil || res.Summary != nil || res.Readability != nil || res.WordCloud != nil {
		t.Error("unrequested features produced slots")
	}
	if res.ID == "" {
		t.Error("missing result ID")
	}
}

func TestAllFeatures(t *testing.T) {
	text := "The engine parses text. The engine scores text quickly! Readers like short sentences. Long ones are harder."
	for _, parallel := range []bool{false, true} {
		a := NewAnalyzer(
			sentiment.NewScorer(lexicon.Default()),
			keywords.NewEngine(lexicon.DefaultStopWords(), 5),
			summarizer.NewLSA(nil, 0),
			joinRenderer{},
			nil,
			Options{SummarySentences: 2, Parallel: parallel},
		)
		res, err := a.Analyze(context.Background(), text, domain.AllFeatures)
		if err != nil {
			t.Fatal(err)
		}
		if failed := res.Failed(); len(failed) != 0 {
			t.Fatalf("failed features: %v", failed)
		}
		if len(res.Summary.Value) != 2 {
			t.Errorf("summary has %d sentences", len(res.Summary.Value))
		}
		if len(res.Keywords.Value) == 0 || len(res.Keywords.Value) > 5 {
			t.Errorf("keywords = %v", res.Keywords.Value)
		}
		if res.Keywords.Value[0].Term != "engine" && res.Keywords.Value[0].Term != "text" {
			t.Errorf("top keyword = %q", res.Keywords.Value[0].Term)
		}
		if !strings.HasPrefix(res.WordCloud.Value, "The,") {
			t.Errorf("cloud = %q", res.WordCloud.Value)
		}
		if res.Readability.Value.Sentences != 4 {
			t.Errorf("readability sentences = %d", res.Readability.Value.Sentences)
		}
	}
}

func TestWordCloudWithoutRenderer(t *testing.T) {
	res, err := newAnalyzer(nil, nil, false).Analyze(context.Background(), "words words.", []domain.Feature{domain.WordCloud, domain.WordFrequency})
	if err != nil {
		t.Fatal(err)
	}
	if !errors.Is(res.WordCloud.Err, domain.ErrNoRenderer) {
		t.Errorf("cloud err = %v", res.WordCloud.Err)
	}
	if !res.WordFrequency.OK() {
		t.Errorf("frequency err = %v", res.WordFrequency.Err)
	}
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, parallel := range []bool{false, true} {
		res, err := newAnalyzer(nil, nil, parallel).Analyze(ctx, "Some text.", []domain.Feature{domain.Sentiment, domain.Readability})
		if err != nil {
			t.Fatalf("parallel=%v: %v", parallel, err)
		}
		for _, f := range res.Requested {
			if err := res.Err(f); !errors.Is(err, context.Canceled) || !errors.Is(err, domain.ErrComputation) {
				t.Errorf("parallel=%v: %s err = %v", parallel, f, err)
			}
		}
	}
}

func TestDuplicateFeaturesCollapse(t *testing.T) {
	res, err := newAnalyzer(nil, nil, false).Analyze(context.Background(), "a b.", []domain.Feature{domain.Readability, domain.Readability, domain.Sentiment})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Requested) != 2 || res.Requested[0] != domain.Sentiment {
		t.Errorf("Requested = %v", res.Requested)
	}
}

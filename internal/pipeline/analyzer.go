// Package pipeline runs the requested analyses over one input text and
// collects their outcomes.
//
// Every feature runs in isolation: an error or panic in one feature is
// recorded in that feature's slot of the AnalysisResult and never reaches
// the others. Only input validation fails a whole request.
package pipeline

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"golang.org/x/sync/errgroup"

	"textanalyzer/internal/domain"
	"textanalyzer/internal/frequency"
	"textanalyzer/internal/keywords"
	"textanalyzer/internal/logger"
	"textanalyzer/internal/readability"
	"textanalyzer/internal/sentiment"
	"textanalyzer/internal/tokenizer"
)

// Options tunes how an Analyzer runs.
type Options struct {
	// SummarySentences is the summary length; <= 0 uses the summarizer default.
	SummarySentences int
	// Parallel runs the requested features concurrently.
	Parallel bool
}

// Analyzer wires the analysis components together. It keeps no per-request
// state, so one Analyzer may serve concurrent calls.
type Analyzer struct {
	sentiment  *sentiment.Scorer
	keywords   *keywords.Engine
	summarizer domain.Summarizer
	cloud      domain.CloudRenderer
	log        *logger.Logger
	opts       Options
}

// NewAnalyzer assembles an Analyzer. cloud may be nil, in which case word
// cloud requests fail with domain.ErrNoRenderer. A nil log discards output.
func NewAnalyzer(scorer *sentiment.Scorer, kw *keywords.Engine, sum domain.Summarizer, cloud domain.CloudRenderer, log *logger.Logger, opts Options) *Analyzer {
	if log == nil {
		log = logger.NewDiscard()
	}
	return &Analyzer{sentiment: scorer, keywords: kw, summarizer: sum, cloud: cloud, log: log, opts: opts}
}

// AnalyzeNames parses feature names and runs Analyze.
func (a *Analyzer) AnalyzeNames(ctx context.Context, text string, names []string) (*domain.AnalysisResult, error) {
	features, err := domain.ParseFeatures(names)
	if err != nil {
		return nil, err
	}
	return a.Analyze(ctx, text, features)
}

// Analyze validates text and runs each requested feature. The returned error
// is non-nil only for validation failures (wrapping domain.ErrValidation);
// per-feature failures live in the result slots.
func (a *Analyzer) Analyze(ctx context.Context, text string, features []domain.Feature) (*domain.AnalysisResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: input text is blank", domain.ErrValidation)
	}
	requested, err := canonical(features)
	if err != nil {
		return nil, err
	}

	doc := tokenizer.Tokenize(text)
	res := &domain.AnalysisResult{ID: ulid.Make().String(), Requested: requested}
	a.log.Debug("analysis %s: %d words, %d sentences, features %v", res.ID, len(doc.Words), len(doc.Sentences), requested)

	tasks := make([]func(), 0, len(requested))
	for _, f := range requested {
		tasks = append(tasks, a.task(ctx, f, doc, res))
	}
	if a.opts.Parallel {
		// Tasks record their own failures; the group only reports cancellation.
		var g errgroup.Group
		g.SetLimit(runtime.GOMAXPROCS(0))
		for _, t := range tasks {
			t := t
			g.Go(func() error {
				t()
				return ctx.Err()
			})
		}
		if err := g.Wait(); err != nil {
			a.log.Info("analysis %s: interrupted: %v", res.ID, err)
		}
	} else {
		for _, t := range tasks {
			t()
		}
	}

	if failed := res.Failed(); len(failed) > 0 {
		a.log.Info("analysis %s: %d of %d features failed: %v", res.ID, len(failed), len(requested), failed)
	} else {
		a.log.Debug("analysis %s: all %d features succeeded", res.ID, len(requested))
	}
	return res, nil
}

// task returns the closure computing feature f. Each closure writes only its
// own slot of res.
func (a *Analyzer) task(ctx context.Context, f domain.Feature, doc domain.Document, res *domain.AnalysisResult) func() {
	switch f {
	case domain.WordFrequency:
		return func() {
			res.WordFrequency = run(ctx, a.log, f, func() ([]domain.WordCount, error) {
				return frequency.Count(doc.Words).Entries(), nil
			})
		}
	case domain.Sentiment:
		return func() {
			res.Sentiment = run(ctx, a.log, f, func() (domain.SentimentResult, error) {
				return a.sentiment.Score(doc.Text), nil
			})
		}
	case domain.Keywords:
		return func() {
			res.Keywords = run(ctx, a.log, f, func() ([]domain.KeywordScore, error) {
				return a.keywords.Extract(doc.Words), nil
			})
		}
	case domain.Summary:
		return func() {
			res.Summary = run(ctx, a.log, f, func() ([]domain.SummarySentence, error) {
				return a.summarizer.Summarize(doc.Sentences, a.opts.SummarySentences)
			})
		}
	case domain.Readability:
		return func() {
			res.Readability = run(ctx, a.log, f, func() (domain.ReadabilityResult, error) {
				return readability.Score(doc.Text)
			})
		}
	case domain.WordCloud:
		return func() {
			res.WordCloud = run(ctx, a.log, f, func() (string, error) {
				if a.cloud == nil {
					return "", domain.ErrNoRenderer
				}
				return a.cloud.RenderCloud(frequency.Count(doc.Words).Entries())
			})
		}
	}
	// canonical rejects unknown features before tasks are built.
	panic(fmt.Sprintf("pipeline: no task for %v", f))
}

// run executes fn, converting returned errors and panics into a
// domain.ErrComputation recorded on the outcome.
func run[T any](ctx context.Context, log *logger.Logger, f domain.Feature, fn func() (T, error)) (out *domain.Outcome[T]) {
	out = &domain.Outcome[T]{}
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			out.Err = fmt.Errorf("%w: %s: panic: %v", domain.ErrComputation, f, r)
		}
		out.Duration = time.Since(start)
		if out.Err != nil {
			log.Error("%s: %v", f, out.Err)
			return
		}
		log.Debug("%s: done in %s", f, out.Duration)
	}()
	if err := ctx.Err(); err != nil {
		out.Err = fmt.Errorf("%w: %s: %w", domain.ErrComputation, f, err)
		return out
	}
	v, err := fn()
	if err != nil {
		out.Err = fmt.Errorf("%w: %s: %w", domain.ErrComputation, f, err)
		return out
	}
	out.Value = v
	return out
}

// canonical deduplicates features into canonical order and rejects an empty
// or unknown selection.
func canonical(features []domain.Feature) ([]domain.Feature, error) {
	seen := make(map[domain.Feature]struct{}, len(features))
	for _, f := range features {
		if _, err := domain.ParseFeature(f.String()); err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrValidation, err)
		}
		seen[f] = struct{}{}
	}
	if len(seen) == 0 {
		return nil, fmt.Errorf("%w: no features requested", domain.ErrValidation)
	}
	out := make([]domain.Feature, 0, len(seen))
	for _, f := range domain.AllFeatures {
		if _, ok := seen[f]; ok {
			out = append(out, f)
		}
	}
	return out, nil
}

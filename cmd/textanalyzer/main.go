package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	flag "github.com/spf13/pflag"

	"textanalyzer/internal/config"
	"textanalyzer/internal/domain"
	"textanalyzer/internal/keywords"
	"textanalyzer/internal/lexicon"
	"textanalyzer/internal/logger"
	"textanalyzer/internal/pipeline"
	"textanalyzer/internal/report"
	"textanalyzer/internal/sentiment"
	"textanalyzer/internal/source"
	"textanalyzer/internal/summarizer"
	"textanalyzer/internal/tui"
)

func main() {
	_ = godotenv.Load()

	var (
		cfgPath   string
		text      string
		format    string
		features  []string
		useTUI    bool
		topK      int
		sentences int
	)
	flag.StringVarP(&cfgPath, "config", "c", "", "Path to YAML config file (optional; uses ./textanalyzer.yaml or ~/.config/textanalyzer/config.yaml)")
	flag.StringVarP(&text, "text", "t", "", "Text to analyze (otherwise read from files or stdin)")
	flag.StringVarP(&format, "format", "f", "text", "Output format: text or json")
	flag.StringSliceVar(&features, "features", nil, "Comma-separated features to run (default from config)")
	flag.BoolVar(&useTUI, "tui", false, "Start the interactive terminal UI")
	flag.IntVar(&topK, "top-k", 0, "Number of keywords to report (overrides config)")
	flag.IntVar(&sentences, "sentences", 0, "Summary length in sentences (overrides config)")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: textanalyzer [flags] [file.txt|file.md ...]")
		flag.PrintDefaults()
	}
	flag.Parse()

	var cfg *config.AppConfig
	var err error
	if cfgPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(cfgPath)
	}
	log := newLogger("info", false, os.Stderr)
	if err != nil {
		log.Fatal("failed to load config: %v", err)
	}
	log = newLogger(cfg.Log.Level, false, os.Stderr)

	if topK > 0 {
		cfg.Keywords.TopK = topK
	}
	if sentences > 0 {
		cfg.Summarizer.MaxSentences = sentences
	}
	if len(features) == 0 {
		features = cfg.Pipeline.Features
	}
	if format != "text" && format != "json" {
		log.Fatal("unknown format: %s", format)
	}

	res, err := lexicon.Load(cfg.Resources.LexiconPath, cfg.Resources.StopWordsPath)
	if err != nil {
		log.Fatal("%v", err)
	}
	log.Debug("loaded %d lexicon entries, %d stop words", res.Lexicon.Len(), res.StopWords.Len())

	analyzer, err := newAnalyzer(cfg, res, newLogger(cfg.Log.Level, useTUI, os.Stderr))
	if err != nil {
		log.Fatal("%v", err)
	}

	input, err := readInput(text, flag.Args(), useTUI)
	if err != nil {
		log.Fatal("%v", err)
	}

	if useTUI {
		selected, err := domain.ParseFeatures(features)
		if err != nil {
			log.Fatal("%v", err)
		}
		m := tui.New(analyzer, input, selected)
		if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
			log.Fatal("%v", err)
		}
		return
	}

	result, err := analyzer.AnalyzeNames(context.Background(), input, features)
	if err != nil {
		log.Error("%v", err)
		if errors.Is(err, domain.ErrValidation) {
			os.Exit(2)
		}
		os.Exit(1)
	}
	if err := emit(os.Stdout, log, format, result); err != nil {
		log.Fatal("write report: %v", err)
	}
}

// newLogger builds the logger for the chosen mode. Logs never share stdout
// with the report, and the TUI owns the whole terminal, so interactive runs
// log nothing.
func newLogger(level string, interactive bool, stderr io.Writer) *logger.Logger {
	if interactive {
		return logger.NewDiscard()
	}
	return logger.NewWithWriters(level, stderr, stderr)
}

// newAnalyzer assembles the pipeline from config.
func newAnalyzer(cfg *config.AppConfig, res *lexicon.Resources, log *logger.Logger) (*pipeline.Analyzer, error) {
	var sum domain.Summarizer
	switch cfg.Summarizer.Type {
	case "lsa", "":
		var stops *lexicon.StopWords
		if cfg.Summarizer.FilterStopWords {
			stops = res.StopWords
		}
		sum = summarizer.NewLSA(stops, cfg.Summarizer.Dimensions)
	case "frequency":
		sum = summarizer.NewFrequency(res.StopWords)
	default:
		return nil, fmt.Errorf("unknown summarizer: %s", cfg.Summarizer.Type)
	}
	return pipeline.NewAnalyzer(
		sentiment.NewScorer(res.Lexicon),
		keywords.NewEngine(res.StopWords, cfg.Keywords.TopK),
		sum,
		report.TextCloud{MaxWords: cfg.Cloud.MaxWords, Width: cfg.Cloud.Width},
		log,
		pipeline.Options{SummarySentences: cfg.Summarizer.MaxSentences, Parallel: cfg.Pipeline.Parallel},
	), nil
}

// emit writes the report to out and notes failed features on the log.
func emit(out io.Writer, log *logger.Logger, format string, result *domain.AnalysisResult) error {
	var err error
	if format == "json" {
		err = report.JSON(out, result)
	} else {
		err = report.Text(out, result)
	}
	if err != nil {
		return err
	}
	if failed := result.Failed(); len(failed) > 0 {
		log.Info("%d of %d features failed", len(failed), len(result.Requested))
	}
	return nil
}

// readInput picks the text source: --text, then file arguments, then piped
// stdin. The TUI may start with an empty editor.
func readInput(text string, paths []string, interactive bool) (string, error) {
	if text != "" {
		return text, nil
	}
	if len(paths) > 0 {
		return source.Load(paths)
	}
	if fi, err := os.Stdin.Stat(); err == nil && fi.Mode()&os.ModeCharDevice == 0 {
		return source.ReadAll(os.Stdin)
	}
	if interactive {
		return "", nil
	}
	flag.Usage()
	os.Exit(1)
	return "", nil
}

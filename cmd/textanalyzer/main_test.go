package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"textanalyzer/internal/config"
	"textanalyzer/internal/lexicon"
)

func TestReportOwnsStdout(t *testing.T) {
	res, err := lexicon.Load("", "")
	if err != nil {
		t.Fatal(err)
	}
	for _, format := range []string{"json", "text"} {
		t.Run(format, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			log := newLogger("debug", false, &stderr)
			a, err := newAnalyzer(config.Default(), res, log)
			if err != nil {
				t.Fatal(err)
			}
			// No terminator, so Readability fails and the failure is logged.
			result, err := a.AnalyzeNames(context.Background(), "I love this wonderful day", []string{"Sentiment", "Readability"})
			if err != nil {
				t.Fatal(err)
			}
			if err := emit(&stdout, log, format, result); err != nil {
				t.Fatal(err)
			}

			if strings.Contains(stdout.String(), "INFO: ") || strings.Contains(stdout.String(), "DEBUG: ") {
				t.Errorf("log lines on stdout:\n%s", stdout.String())
			}
			if !strings.Contains(stderr.String(), "1 of 2 features failed") {
				t.Errorf("stderr = %q", stderr.String())
			}
			if format == "json" {
				var doc map[string]any
				if err := json.Unmarshal(stdout.Bytes(), &doc); err != nil {
					t.Errorf("stdout is not JSON: %v\n%s", err, stdout.String())
				}
			}
		})
	}
}

func TestInteractiveLoggerIsSilent(t *testing.T) {
	var stderr bytes.Buffer
	log := newLogger("debug", true, &stderr)
	log.Info("x")
	log.Error("y")
	if stderr.Len() != 0 {
		t.Errorf("interactive logger wrote %q", stderr.String())
	}
}

func TestNewAnalyzerRejectsUnknownSummarizer(t *testing.T) {
	res, err := lexicon.Load("", "")
	if err != nil {
		t.Fatal(err)
	}
	cfg := config.Default()
	cfg.Summarizer.Type = "textrank"
	if _, err := newAnalyzer(cfg, res, newLogger("error", false, &bytes.Buffer{})); err == nil {
		t.Error("expected error for unknown summarizer")
	}
}

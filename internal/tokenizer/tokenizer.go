// Package tokenizer splits raw text into whitespace-delimited words and
// punctuation-terminated sentences.
//
// Words keep any attached punctuation ("great!" stays one token) because the
// counting and readability consumers treat such tokens as whole words.
package tokenizer

import (
	"strings"

	"textanalyzer/internal/domain"
)

// Tokenize builds a Document from raw text. Blank text yields a Document
// with no words and no sentences.
func Tokenize(text string) domain.Document {
	return domain.Document{
		Text:      text,
		Sentences: Sentences(text),
		Words:     Words(text),
	}
}

// Words splits text on runs of whitespace.
func Words(text string) []string {
	return strings.Fields(text)
}

// Sentences splits text on '.', '!' and '?'. Terminators are dropped, each
// sentence is trimmed and empty fragments ("...", "?!") are skipped. Text
// after the last terminator still forms a sentence.
func Sentences(text string) []string {
	var out []string
	start := 0
	for i := 0; i < len(text); i++ {
		if !IsTerminator(text[i]) {
			continue
		}
		if s := strings.TrimSpace(text[start:i]); s != "" {
			out = append(out, s)
		}
		start = i + 1
	}
	if s := strings.TrimSpace(text[start:]); s != "" {
		out = append(out, s)
	}
	return out
}

// IsTerminator reports whether b ends a sentence.
func IsTerminator(b byte) bool {
	return b == '.' || b == '!' || b == '?'
}

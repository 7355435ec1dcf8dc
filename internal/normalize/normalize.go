// Package normalize holds the case folding and term extraction shared by the
// components that compare words case-insensitively.
package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var termPattern = regexp.MustCompile(`[\p{L}\p{N}]+(?:['’][\p{L}\p{N}]+)*`)

// Folder lowercases many words with a single Caser. A Caser keeps state
// between calls, so a Folder must not be shared between goroutines; build one
// per scoring call.
type Folder struct {
	caser cases.Caser
}

// NewFolder returns a Folder with language-neutral lowercasing rules.
func NewFolder() *Folder {
	return &Folder{caser: cases.Lower(language.Und)}
}

// Lower lowercases s.
func (f *Folder) Lower(s string) string {
	return f.caser.String(s)
}

// Key returns the lookup form of a single word: trimmed and lowercased.
func (f *Folder) Key(word string) string {
	return f.Lower(Trim(word))
}

// Terms extracts lowercased letter/digit runs from text.
func (f *Folder) Terms(text string) []string {
	return termPattern.FindAllString(f.Lower(text), -1)
}

// Lower lowercases s with Unicode-aware rules. Loops over many words should
// use a Folder instead.
func Lower(s string) string {
	return NewFolder().Lower(s)
}

// Trim strips leading and trailing punctuation and symbols from a word.
func Trim(word string) string {
	return strings.TrimFunc(word, func(r rune) bool {
		return unicode.IsPunct(r) || unicode.IsSymbol(r)
	})
}

// Key returns the lookup form of a single word: trimmed and lowercased.
func Key(word string) string {
	return NewFolder().Key(word)
}

// Terms extracts lowercased letter/digit runs from text. Apostrophes inside
// a run are kept ("don't").
func Terms(text string) []string {
	return NewFolder().Terms(text)
}

// Package source gathers input text from files and streams.
package source

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// maxInputBytes caps a single input so one request stays bounded.
const maxInputBytes = 8 << 20

// Load expands each path as a glob and reads every supported file, joining
// documents with a blank line. Plain text files (.txt, .text) are read
// verbatim; Markdown files (.md, .markdown) are reduced to their prose.
// Other extensions are skipped.
func Load(paths []string) (string, error) {
	var docs []string
	for _, p := range paths {
		matches, err := filepath.Glob(p)
		if err != nil {
			return "", fmt.Errorf("glob %s: %w", p, err)
		}
		if matches == nil {
			matches = []string{p}
		}
		for _, m := range matches {
			kind := kindOf(m)
			if kind == unsupported {
				continue
			}
			data, err := os.ReadFile(m)
			if err != nil {
				return "", err
			}
			if len(data) > maxInputBytes {
				return "", fmt.Errorf("%s: input exceeds %d bytes", m, maxInputBytes)
			}
			if kind == markdown {
				data = []byte(MarkdownText(data))
			}
			docs = append(docs, strings.TrimSpace(string(data)))
		}
	}
	if len(docs) == 0 {
		return "", fmt.Errorf("no .txt or .md documents found")
	}
	return strings.Join(docs, "\n\n"), nil
}

// ReadAll reads text from r, such as standard input.
func ReadAll(r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxInputBytes+1))
	if err != nil {
		return "", err
	}
	if len(data) > maxInputBytes {
		return "", fmt.Errorf("input exceeds %d bytes", maxInputBytes)
	}
	return string(data), nil
}

type fileKind int

const (
	unsupported fileKind = iota
	plain
	markdown
)

func kindOf(path string) fileKind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".text":
		return plain
	case ".md", ".markdown":
		return markdown
	}
	return unsupported
}

// MarkdownText extracts the prose of a Markdown document. Code blocks and
// raw HTML are dropped; every block ends on its own line.
func MarkdownText(src []byte) string {
	doc := goldmark.DefaultParser().Parse(text.NewReader(src))
	var buf bytes.Buffer
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch n := n.(type) {
		case *ast.FencedCodeBlock, *ast.CodeBlock, *ast.HTMLBlock, *ast.RawHTML:
			return ast.WalkSkipChildren, nil
		case *ast.Text:
			if entering {
				buf.Write(n.Segment.Value(src))
				if n.SoftLineBreak() || n.HardLineBreak() {
					buf.WriteByte(' ')
				}
			}
		case *ast.String:
			if entering {
				buf.Write(n.Value)
			}
		case *ast.AutoLink:
			if entering {
				buf.Write(n.Label(src))
			}
		case *ast.Paragraph, *ast.Heading, *ast.TextBlock:
			if !entering {
				buf.WriteByte('\n')
			}
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(buf.String())
}

package source

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func write(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestMarkdownText(t *testing.T) {
	src := "# Title\n\nFirst *emphasis* line\ncontinues here.\n\n```go\nfmt.Println(\"skip\")\n```\n\n- item one\n- item two\n\n<div>raw</div>\n"
	got := MarkdownText([]byte(src))
	for _, want := range []string{"Title", "First emphasis line continues here.", "item one", "item two"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in %q", want, got)
		}
	}
	for _, unwanted := range []string{"Println", "<div>", "#", "*", "```"} {
		if strings.Contains(got, unwanted) {
			t.Errorf("unexpected %q in %q", unwanted, got)
		}
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "a.txt", "Plain text here.\n")
	write(t, dir, "b.md", "## Heading\n\nMarkdown **body**.\n")
	write(t, dir, "c.csv", "ignored,file\n")

	got, err := Load([]string{filepath.Join(dir, "*")})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "Plain text here.") || !strings.Contains(got, "Markdown body.") {
		t.Errorf("Load = %q", got)
	}
	if strings.Contains(got, "ignored") {
		t.Errorf("csv should be skipped: %q", got)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "only.csv", "x")
	if _, err := Load([]string{filepath.Join(dir, "*.csv")}); err == nil {
		t.Error("expected error when no supported files match")
	}
	if _, err := Load([]string{filepath.Join(dir, "missing.txt")}); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestReadAll(t *testing.T) {
	got, err := ReadAll(strings.NewReader("from stdin"))
	if err != nil || got != "from stdin" {
		t.Errorf("ReadAll = %q, %v", got, err)
	}
}

func TestLoadBadPattern(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "a.txt", "text.")
	_, err := Load([]string{filepath.Join(dir, "[a.txt")})
	if !errors.Is(err, filepath.ErrBadPattern) {
		t.Errorf("err = %v, want filepath.ErrBadPattern", err)
	}
}

package normalize

import (
	"reflect"
	"testing"
)

func TestKey(t *testing.T) {
	tests := map[string]string{
		"Great!":   "great",
		"(Love)":   "love",
		"\"HATE,\"": "hate",
		"don't":    "don't",
		"ÇOX":      "çox",
		"...":      "",
	}
	for in, want := range tests {
		if got := Key(in); got != want {
			t.Errorf("Key(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTerms(t *testing.T) {
	got := Terms("The cat's hat, 42 times! Don't—stop.")
	want := []string{"the", "cat's", "hat", "42", "times", "don't", "stop"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Terms = %q, want %q", got, want)
	}
}

func TestFolderReuse(t *testing.T) {
	f := NewFolder()
	words := []string{"Great!", "ÇOX", "(Love)", "don't", "İstanbul", "HATE,"}
	// Reusing one Folder across words must match fresh per-word folding.
	for round := 0; round < 2; round++ {
		for _, w := range words {
			if got, want := f.Key(w), Key(w); got != want {
				t.Errorf("round %d: Folder.Key(%q) = %q, want %q", round, w, got, want)
			}
		}
	}
	if got := f.Terms("Cat CAT cat"); !reflect.DeepEqual(got, []string{"cat", "cat", "cat"}) {
		t.Errorf("Folder.Terms = %q", got)
	}
}

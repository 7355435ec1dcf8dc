package frequency

import (
	"slices"

	"textanalyzer/internal/domain"
)

// Table counts exact word occurrences. Words are case-sensitive and
// unstemmed; "The" and "the" are different entries.
type Table struct {
	counts map[string]int
	order  map[string]int // first encounter position
	total  int
}

// Count builds a Table from a word sequence.
func Count(words []string) *Table {
	t := &Table{
		counts: make(map[string]int, len(words)),
		order:  make(map[string]int, len(words)),
	}
	for _, w := range words {
		if _, ok := t.order[w]; !ok {
			t.order[w] = len(t.order)
		}
		t.counts[w]++
		t.total++
	}
	return t
}

// Get returns the count for word.
func (t *Table) Get(word string) int { return t.counts[word] }

// Len returns the number of distinct words.
func (t *Table) Len() int { return len(t.counts) }

// Total returns the sum of all counts, which equals the number of words counted.
func (t *Table) Total() int { return t.total }

// Entries returns every word ordered by descending count, ties by first
// encounter in the input.
func (t *Table) Entries() []domain.WordCount {
	out := make([]domain.WordCount, 0, len(t.counts))
	for w, c := range t.counts {
		out = append(out, domain.WordCount{Word: w, Count: c})
	}
	slices.SortFunc(out, func(a, b domain.WordCount) int {
		if a.Count != b.Count {
			return b.Count - a.Count
		}
		return t.order[a.Word] - t.order[b.Word]
	})
	return out
}

// Top returns the first n entries of Entries. n <= 0 returns all of them.
func (t *Table) Top(n int) []domain.WordCount {
	entries := t.Entries()
	if n > 0 && n < len(entries) {
		entries = entries[:n]
	}
	return entries
}

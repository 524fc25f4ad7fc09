package predict

import (
	"fmt"
	"testing"

	"github.com/bastiangx/nextword/pkg/ngram"
)

func buildIndex(tokens ...string) *Index {
	return NewIndex(ngram.Count(ngram.Extract(tokens)))
}

// ranking is descending count; equal counts order by descending
// lexicographic (first, second)
func TestNewIndexRanking(t *testing.T) {
	ix := buildIndex("a", "b", "a", "b", "a", "c")

	expected := []RankedEntry{
		{Count: 2, Bigram: ngram.Bigram{First: "b", Second: "a"}},
		{Count: 2, Bigram: ngram.Bigram{First: "a", Second: "b"}},
		{Count: 1, Bigram: ngram.Bigram{First: "a", Second: "c"}},
	}

	entries := ix.Entries()
	if len(entries) != len(expected) {
		t.Fatalf("expected %d entries, got %d (%v)", len(expected), len(entries), entries)
	}
	for i := range expected {
		if entries[i] != expected[i] {
			t.Errorf("entry %d: expected %v, got %v", i, expected[i], entries[i])
		}
	}
}

// all counts equal: order must be fully determined by the pair itself
func TestNewIndexTieBreak(t *testing.T) {
	table := ngram.CountTable{
		{First: "c", Second: "a"}: 1,
		{First: "c", Second: "d"}: 1,
		{First: "a", Second: "c"}: 1,
		{First: "c", Second: "b"}: 1,
		{First: "b", Second: "c"}: 1,
	}
	ix := NewIndex(table)

	expected := []ngram.Bigram{
		{First: "c", Second: "d"},
		{First: "c", Second: "b"},
		{First: "c", Second: "a"},
		{First: "b", Second: "c"},
		{First: "a", Second: "c"},
	}
	for i, e := range ix.Entries() {
		if e.Bigram != expected[i] {
			t.Errorf("entry %d: expected %v, got %v", i, expected[i], e.Bigram)
		}
	}
}

// map iteration order varies between runs; the ranking must not
func TestNewIndexDeterministic(t *testing.T) {
	table := ngram.Count(ngram.Extract([]string{
		"the", "cat", "sat", "on", "the", "mat", "the", "cat", "ran",
		"a", "cat", "a", "dog", "a", "rat",
	}))

	first := NewIndex(table).Entries()
	for run := 0; run < 50; run++ {
		again := NewIndex(table).Entries()
		if len(again) != len(first) {
			t.Fatalf("run %d: length %d, want %d", run, len(again), len(first))
		}
		for i := range first {
			if again[i] != first[i] {
				t.Fatalf("run %d: entry %d is %v, want %v", run, i, again[i], first[i])
			}
		}
	}
}

func TestTotalStartingWith(t *testing.T) {
	ix := buildIndex("a", "b", "a", "b", "a", "c")

	testCases := []struct {
		word        string
		expected    int64
		description string
	}{
		{"a", 3, "two distinct successors"},
		{"b", 2, "single successor with repeats"},
		{"c", 0, "word occurs only as second"},
		{"zzz", 0, "word not in corpus"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			if got := ix.TotalStartingWith(tc.word); got != tc.expected {
				t.Errorf("TotalStartingWith(%q): expected %d, got %d", tc.word, tc.expected, got)
			}
		})
	}
}

// results keep ranked order, stay under the limit, and are a prefix of
// the unlimited listing
func TestTopSuccessors(t *testing.T) {
	ix := buildIndex("a", "b", "a", "b", "a", "c", "a", "d")

	all := ix.TopSuccessors("a", 0)
	if len(all) != 3 {
		t.Fatalf("expected 3 successors of a, got %d", len(all))
	}
	for _, e := range all {
		if e.Bigram.First != "a" {
			t.Errorf("entry %v does not start with a", e)
		}
	}

	for k := 1; k <= len(all)+2; k++ {
		got := ix.TopSuccessors("a", k)
		want := k
		if want > len(all) {
			want = len(all)
		}
		if len(got) != want {
			t.Errorf("limit %d: expected %d entries, got %d", k, want, len(got))
		}
		for i := range got {
			if got[i] != all[i] {
				t.Errorf("limit %d: entry %d is %v, want %v", k, i, got[i], all[i])
			}
		}
	}

	if got := ix.TopSuccessors("zzz", 5); len(got) != 0 {
		t.Errorf("expected no successors for unknown word, got %v", got)
	}
}

// MostFrequentSuccessor must agree with TopSuccessors(w, 1) everywhere
func TestMostFrequentSuccessor(t *testing.T) {
	ix := buildIndex("a", "b", "a", "b", "a", "c")

	next, ok := ix.MostFrequentSuccessor("a")
	if !ok || next != "b" {
		t.Errorf("MostFrequentSuccessor(a): expected (b, true), got (%q, %v)", next, ok)
	}

	if next, ok := ix.MostFrequentSuccessor("c"); ok {
		t.Errorf("expected no successor for c, got %q", next)
	}
	if next, ok := ix.MostFrequentSuccessor(""); ok {
		t.Errorf("expected no successor for empty word, got %q", next)
	}

	for _, e := range ix.Entries() {
		w := e.Bigram.First
		top := ix.TopSuccessors(w, 1)
		next, ok := ix.MostFrequentSuccessor(w)
		if !ok || len(top) != 1 || next != top[0].Bigram.Second {
			t.Errorf("word %q: MostFrequentSuccessor=(%q,%v) disagrees with TopSuccessors=%v", w, next, ok, top)
		}
	}
}

func TestStats(t *testing.T) {
	ix := buildIndex("a", "b", "a", "b", "a", "c")
	st := ix.Stats()

	if st.TotalBigrams != 5 {
		t.Errorf("TotalBigrams: expected 5, got %d", st.TotalBigrams)
	}
	if st.DistinctBigrams != 3 {
		t.Errorf("DistinctBigrams: expected 3, got %d", st.DistinctBigrams)
	}
	if st.FirstWords != 2 {
		t.Errorf("FirstWords: expected 2, got %d", st.FirstWords)
	}
	if st.MaxCount != 2 {
		t.Errorf("MaxCount: expected 2, got %d", st.MaxCount)
	}

	empty := NewIndex(ngram.CountTable{}).Stats()
	if empty.TotalBigrams != 0 || empty.DistinctBigrams != 0 || empty.MaxCount != 0 {
		t.Errorf("empty model stats not zero: %+v", empty)
	}
}

func syntheticTokens(n int) []string {
	tokens := make([]string, n)
	for i := range tokens {
		tokens[i] = fmt.Sprintf("w%d", (i*7919)%251)
	}
	return tokens
}

func BenchmarkNewIndex(b *testing.B) {
	table := ngram.Count(ngram.Extract(syntheticTokens(50000)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		NewIndex(table)
	}
}

func BenchmarkTopSuccessors(b *testing.B) {
	ix := NewIndex(ngram.Count(ngram.Extract(syntheticTokens(50000))))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ix.TopSuccessors(fmt.Sprintf("w%d", i%251), DefaultSuggestLimit)
	}
}

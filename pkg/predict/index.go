package predict

import (
	"sort"

	"github.com/bastiangx/nextword/pkg/ngram"
)

// Default query parameters used by the CLI and server when a request
// does not say otherwise.
const (
	DefaultSuggestLimit   = 5
	DefaultSequenceLength = 5
)

// RankedEntry is one bigram with its occurrence count.
type RankedEntry struct {
	Count  int64
	Bigram ngram.Bigram
}

// Index is the ranked, queryable form of a bigram count table.
//
// Entries are ordered by descending count; equal counts fall back to
// descending lexicographic order of the (first, second) pair. That
// order is total since bigram keys are distinct, so building from the
// same table always yields the same ranking no matter how the map
// iterates. Entries are also grouped by first word at build time,
// which answers lookups without scanning the full list while keeping
// the exact order a full scan would produce.
type Index struct {
	entries []RankedEntry
	byFirst map[string][]RankedEntry
	totals  map[string]int64
	total   int64
}

// NewIndex ranks a count table into an immutable Index.
func NewIndex(table ngram.CountTable) *Index {
	entries := make([]RankedEntry, 0, len(table))
	for bg, n := range table {
		entries = append(entries, RankedEntry{Count: n, Bigram: bg})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		if entries[i].Bigram.First != entries[j].Bigram.First {
			return entries[i].Bigram.First > entries[j].Bigram.First
		}
		return entries[i].Bigram.Second > entries[j].Bigram.Second
	})

	ix := &Index{
		entries: entries,
		byFirst: make(map[string][]RankedEntry),
		totals:  make(map[string]int64),
	}
	for _, e := range entries {
		ix.byFirst[e.Bigram.First] = append(ix.byFirst[e.Bigram.First], e)
		ix.totals[e.Bigram.First] += e.Count
		ix.total += e.Count
	}
	return ix
}

// Entries returns the full ranked list. Callers must not modify it.
func (ix *Index) Entries() []RankedEntry {
	return ix.entries
}

// TotalStartingWith sums the counts of every bigram starting with word.
// Zero means the word starts no bigram.
func (ix *Index) TotalStartingWith(word string) int64 {
	return ix.totals[word]
}

// TopSuccessors returns the best ranked bigrams starting with word, at
// most limit of them, in ranked order. A non-positive limit returns
// every match.
func (ix *Index) TopSuccessors(word string, limit int) []RankedEntry {
	matches := ix.byFirst[word]
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

// MostFrequentSuccessor returns the second word of the best ranked
// bigram starting with word. ok is false when word starts none;
// callers must check it before chaining the result into further
// lookups.
func (ix *Index) MostFrequentSuccessor(word string) (string, bool) {
	matches := ix.byFirst[word]
	if len(matches) == 0 {
		return "", false
	}
	return matches[0].Bigram.Second, true
}

// Stats holds counters describing a built model.
type Stats struct {
	TotalBigrams    int64 // pair occurrences counted, including repeats
	DistinctBigrams int
	FirstWords      int // distinct words starting at least one bigram
	MaxCount        int64
}

// Stats returns counters describing the model.
func (ix *Index) Stats() Stats {
	st := Stats{
		TotalBigrams:    ix.total,
		DistinctBigrams: len(ix.entries),
		FirstWords:      len(ix.byFirst),
	}
	if len(ix.entries) > 0 {
		st.MaxCount = ix.entries[0].Count
	}
	return st
}

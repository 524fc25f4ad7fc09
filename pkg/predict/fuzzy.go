package predict

import (
	"sort"
	"strings"
)

// maxEditDistance caps how far a correction may drift from the input.
const maxEditDistance = 2

// FuzzyMatcher suggests spelling corrections against the vocabulary.
// Preference: exact match, then smallest edit distance, then the more
// frequent word. Candidates must share the input's first character.
type FuzzyMatcher struct {
	words  []string
	counts map[string]int64
}

// NewFuzzyMatcher builds a matcher over per-word occurrence counts.
func NewFuzzyMatcher(counts map[string]int64) *FuzzyMatcher {
	words := make([]string, 0, len(counts))
	for word := range counts {
		words = append(words, word)
	}
	// fixed scan order so equal candidates resolve the same way every run
	sort.Strings(words)

	return &FuzzyMatcher{words: words, counts: counts}
}

// SuggestCorrection returns the closest known word within
// maxEditDistance of input. The second return is false when the input
// is already a known word, too short to correct, or nothing in the
// vocabulary is close enough.
func (fm *FuzzyMatcher) SuggestCorrection(input string) (string, bool) {
	if len(input) <= 2 {
		return input, false
	}
	lower := strings.ToLower(input)
	if _, ok := fm.counts[lower]; ok {
		return lower, false
	}

	best := ""
	bestDist := maxEditDistance + 1
	var bestCount int64 = -1

	for _, word := range fm.words {
		if word == "" || word[0] != lower[0] {
			continue
		}
		if diff := len(word) - len(lower); diff > maxEditDistance || diff < -maxEditDistance {
			continue
		}
		d := levenshteinDistance(lower, word)
		if d > maxEditDistance {
			continue
		}
		if d < bestDist || (d == bestDist && fm.counts[word] > bestCount) {
			best = word
			bestDist = d
			bestCount = fm.counts[word]
		}
	}

	if best == "" {
		return input, false
	}
	return best, true
}

// levenshteinDistance is the minimum number of single-character edits
// (insertions, deletions, substitutions) turning a into b.
func levenshteinDistance(a, b string) int {
	if a == b {
		return 0
	}
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

// Package ngram extracts adjacent word pairs from a token stream and
// aggregates them into occurrence counts.
package ngram

// Bigram is an ordered pair of consecutive tokens. Two bigrams are
// equal iff both words match, which makes Bigram usable as a map key.
type Bigram struct {
	First  string
	Second string
}

// Extract returns the N-1 adjacent pairs of a token sequence, in order.
// Sequences of one token or fewer have no pairs.
func Extract(tokens []string) []Bigram {
	if len(tokens) < 2 {
		return nil
	}
	pairs := make([]Bigram, 0, len(tokens)-1)
	for i := 1; i < len(tokens); i++ {
		pairs = append(pairs, Bigram{First: tokens[i-1], Second: tokens[i]})
	}
	return pairs
}

// CountTable maps each observed bigram to its occurrence count.
// Every key has a count of at least 1. Counts are int64 so very large
// corpora do not overflow 32-bit ranges.
type CountTable map[Bigram]int64

// Count aggregates a pair sequence into a CountTable.
func Count(pairs []Bigram) CountTable {
	table := make(CountTable)
	for _, p := range pairs {
		table[p]++
	}
	return table
}

// Total returns the sum of all counts, which equals the number of
// pair occurrences the table was built from.
func (t CountTable) Total() int64 {
	var sum int64
	for _, n := range t {
		sum += n
	}
	return sum
}

// Package predict is the core, ranking bigram counts into a queryable index and deriving next-word predictions from it.
package predict

// Predictor answers next-word queries against a ranked bigram model.
type Predictor interface {
	// TotalStartingWith sums the counts of every bigram whose first
	// word matches. Zero means the word starts no bigram.
	TotalStartingWith(word string) int64

	// TopSuccessors returns the highest ranked bigrams starting with
	// word, at most limit of them. A non-positive limit returns all.
	TopSuccessors(word string, limit int) []RankedEntry

	// MostFrequentSuccessor returns the second word of the best ranked
	// bigram starting with word. ok is false when word starts none.
	MostFrequentSuccessor(word string) (next string, ok bool)

	// Sequence chains MostFrequentSuccessor length times from start.
	Sequence(start string, length int) []string

	// Stats returns counters describing the built model.
	Stats() Stats
}

// Completer finds known words by prefix.
type Completer interface {
	// Complete returns words beginning with prefix ranked by how often
	// they occur, at most limit of them.
	Complete(prefix string, limit int) []WordCount

	// Len reports the vocabulary size.
	Len() int
}

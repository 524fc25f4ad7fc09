package predict

// Sequence predicts a chain of words: start followed by length
// applications of MostFrequentSuccessor, each applied to the previous
// word. A word with no recorded successor contributes the empty marker,
// and since the empty marker starts no bigram every later position
// stays empty too. Negative lengths are treated as zero, so the result
// always holds at least the start word.
func (ix *Index) Sequence(start string, length int) []string {
	if length < 0 {
		length = 0
	}
	chain := make([]string, 0, length+1)
	chain = append(chain, start)

	current := start
	for i := 0; i < length; i++ {
		next, ok := ix.MostFrequentSuccessor(current)
		if !ok {
			next = ""
		}
		chain = append(chain, next)
		current = next
	}
	return chain
}

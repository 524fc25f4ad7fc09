package predict

import (
	"sort"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// WordCount is one vocabulary word with its corpus occurrence count.
type WordCount struct {
	Word  string
	Count int64
}

// Vocab indexes the corpus vocabulary in a patricia trie for prefix
// lookups. Keys are the (already lowercase) tokens the model was built
// from; the payload is each word's occurrence count.
type Vocab struct {
	trie  *patricia.Trie
	words int
}

// NewVocab builds a Vocab from per-word occurrence counts.
func NewVocab(counts map[string]int64) *Vocab {
	v := &Vocab{trie: patricia.NewTrie()}
	for word, n := range counts {
		v.trie.Insert(patricia.Prefix(word), n)
		v.words++
	}
	return v
}

// Len reports the vocabulary size.
func (v *Vocab) Len() int {
	return v.words
}

// Complete returns words starting with prefix ranked by descending
// occurrence count; equal counts order alphabetically. At most limit
// words are returned, all matches when limit is non-positive. An empty
// prefix matches the entire vocabulary.
func (v *Vocab) Complete(prefix string, limit int) []WordCount {
	var matches []WordCount
	err := v.trie.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, item patricia.Item) error {
		n, ok := item.(int64)
		if !ok {
			log.Errorf("Unknown item type: %T for word %s", item, p)
			n = 1
		}
		matches = append(matches, WordCount{Word: string(p), Count: n})
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting trie subtree: %v", err)
		return nil
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Count != matches[j].Count {
			return matches[i].Count > matches[j].Count
		}
		return matches[i].Word < matches[j].Word
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

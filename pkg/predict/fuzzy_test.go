package predict

import (
	"fmt"
	"testing"
)

// Tests the corrector against our expected preferences.
//
// IMPORTANT to know:
// preference: `exact match > smallest edit distance > most frequent word`
func TestFuzzyMatcher(t *testing.T) {
	vocabulary := map[string]int64{
		"apple":      100,
		"banana":     90,
		"orange":     80,
		"pear":       70,
		"grape":      60,
		"strawberry": 50,

		// similar spellings
		"there":   1000,
		"their":   950,
		"they're": 900,

		// simpler short words
		"car": 500,
		"cat": 490,
		"dog": 480,
		"the": 2000,

		// longer words
		"university":      300,
		"international":   290,
		"congratulations": 100,

		// tokens with digits and punctuation survive whitespace
		// tokenization, so correction must cope with them too
		"word2vec":   50,
		"utf8":       45,
		"3dprinting": 40,
		"user-name":  25,

		"algorithm": 200,
		"function":  190,
		"variable":  180,
	}

	matcher := NewFuzzyMatcher(vocabulary)

	// corrected is true if the input should be corrected, false if it's
	// already correct or nothing qualifies
	testCases := []struct {
		input          string
		expectedOutput string
		corrected      bool
		description    string
	}{
		// exact matches
		{"apple", "apple", false, "Exact match"},
		{"banana", "banana", false, "Exact match"},

		// case insensitive
		{"Apple", "apple", false, "Case insensitive match"},
		{"ORANGE", "orange", false, "Uppercase word"},

		// 1 char typo
		{"appl", "apple", true, "Missing character at end"},
		{"aple", "apple", true, "Missing character in middle"},
		{"appke", "apple", true, "Character substitution"},
		{"applez", "apple", true, "Extra character at end"},

		// 2 char typos
		{"appel", "apple", true, "Character transposition"},
		{"aplpe", "apple", true, "Two errors"},
		{"orunge", "orange", true, "Vowel substitution"},

		// similar words: smallest distance wins, frequency breaks ties
		{"ther", "the", true, "Closest by one edit"},
		{"thelr", "their", true, "Similar to multiple words"},

		// short words, min 3 chars rule
		{"ca", "ca", false, "Too short to correct"},
		{"do", "do", false, "Too short to correct"},

		// digits and punctuation
		{"word2vec", "word2vec", false, "Word with numbers"},
		{"wrd2vec", "word2vec", true, "Word with numbers - correction"},
		{"utf7", "utf8", true, "Number correction"},
		{"3dpronting", "3dprinting", true, "Number at beginning"},
		{"user-nme", "user-name", true, "Hyphenated word"},

		// longer words
		{"univeristy", "university", true, "Transposition in longer word"},
		{"internationl", "international", true, "Missing letter"},
		{"congratilations", "congratulations", true, "Vowel substitution"},

		// maxEditDistance boundary
		{"axxle", "apple", true, "Exactly two edits"},
		{"bananana", "banana", true, "Boundary insertion"},

		// above max edit distance: no correction
		{"axxxle", "axxxle", false, "Three edits is too far"},
		{"banananas", "banananas", false, "Too many edits"},

		// gibberish
		{"xyzabc", "xyzabc", false, "No match in vocabulary"},
		{"zzzzzzzzz", "zzzzzzzzz", false, "No match"},

		// first letter heuristic
		{"orange", "orange", false, "Correct word"},
		{"prange", "prange", false, "Different first letter - no match"},

		{"algrithm", "algorithm", true, "Missing vowel"},
		{"fnction", "function", true, "Missing vowel"},
		{"varriable", "variable", true, "Extra character"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			result, corrected := matcher.SuggestCorrection(tc.input)
			if result != tc.expectedOutput {
				t.Errorf("Input '%s': expected '%s', got '%s'", tc.input, tc.expectedOutput, result)
			}
			if corrected != tc.corrected {
				t.Errorf("Input '%s': expected corrected=%v, got %v", tc.input, tc.corrected, corrected)
			}
		})
	}
}

// check for empty vocabulary
func TestFuzzyEmptyVocabulary(t *testing.T) {
	matcher := NewFuzzyMatcher(map[string]int64{})
	result, corrected := matcher.SuggestCorrection("test")

	if result != "test" || corrected {
		t.Errorf("Empty vocabulary should return original word uncorrected")
	}
}

// check for diff first letter
func TestFuzzyFirstLetterHeuristic(t *testing.T) {
	matcher := NewFuzzyMatcher(map[string]int64{
		"apple":  100,
		"orange": 90,
	})
	result, corrected := matcher.SuggestCorrection("opple")

	// one edit from apple, but the first letters differ
	if result == "apple" || corrected {
		t.Errorf("First letter heuristic not working: matched '%s'", result)
	}
}

// equal distances fall back to the most frequent word
func TestFuzzyFrequencyTieBreak(t *testing.T) {
	matcher := NewFuzzyMatcher(map[string]int64{
		"their": 950,
		"there": 500,
		"the":   2000,
	})
	result, _ := matcher.SuggestCorrection("ther")

	if result != "the" {
		t.Errorf("Expected 'ther' to correct to 'the', got '%s'", result)
	}
}

// check if our lev distance impl returns correct distance int
func TestLevenshteinDistance(t *testing.T) {
	testCases := []struct {
		a        string
		b        string
		expected int
	}{
		{"", "", 0},
		{"a", "", 1},
		{"", "a", 1},
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},
		{"book", "back", 2},
		{"book", "books", 1},
		{"hello", "hallo", 1},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%s→%s", tc.a, tc.b), func(t *testing.T) {
			dist := levenshteinDistance(tc.a, tc.b)
			if dist != tc.expected {
				t.Errorf("Expected distance %d, got %d", tc.expected, dist)
			}
		})
	}
}

// 1000 words in the vocabulary, mixed typo inputs
func BenchmarkSuggestCorrection(b *testing.B) {
	vocabulary := make(map[string]int64, 1000)
	for i := 0; i < 1000; i++ {
		vocabulary[fmt.Sprintf("word%d", i)] = int64(i)
	}
	matcher := NewFuzzyMatcher(vocabulary)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		inputs := []string{"wrd123", "word1", "wordd2", "woord3", "wird4"}
		matcher.SuggestCorrection(inputs[i%len(inputs)])
	}
}

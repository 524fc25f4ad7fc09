// Package cli implements the interactive prompt for exploring a bigram model.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/bastiangx/nextword/internal/utils"
	"github.com/bastiangx/nextword/pkg/predict"
	"github.com/charmbracelet/log"
)

// QueryLoop reads commands from stdin and answers them against a
// ranked bigram index: successor listings with their share of a word's
// total, predicted word chains, and vocabulary prefix lookups.
type QueryLoop struct {
	predictor    predict.Predictor
	vocab        predict.Completer
	matcher      *predict.FuzzyMatcher
	suggestLimit int
	seqLength    int
}

// NewQueryLoop handles initialization of the QueryLoop with basic parameters.
// vocab and matcher may be nil, the commands needing them degrade gracefully.
func NewQueryLoop(predictor predict.Predictor, vocab predict.Completer, matcher *predict.FuzzyMatcher, suggestLimit, seqLength int) *QueryLoop {
	return &QueryLoop{
		predictor:    predictor,
		vocab:        vocab,
		matcher:      matcher,
		suggestLimit: suggestLimit,
		seqLength:    seqLength,
	}
}

// Start begins the interface loop.
// It continuously prompts for input, reads a line from stdin,
// and hands the line to handleLine for dispatch.
// The loop ends on 'quit', on EOF, or on a read error.
func (q *QueryLoop) Start() error {
	log.Print("NextWord CLI")
	reader := bufio.NewReader(os.Stdin)
	log.Print("type a command and press Enter ('help' lists commands, 'quit' exits):")

	for {
		log.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		if q.handleLine(line) {
			return nil
		}
	}
}

// handleLine interprets a single command line. Input is lowercased
// before splitting so both keywords and word arguments are
// case-insensitive, matching the lowercased model. The returned state
// is whether the loop should terminate.
func (q *QueryLoop) handleLine(line string) bool {
	terms := strings.Fields(strings.ToLower(line))

	switch len(terms) {
	case 1:
		switch terms[0] {
		case "quit":
			log.Print("bye")
			return true
		case "stats":
			q.showStats()
		case "help":
			q.showHelp()
		default:
			log.Errorf("Unknown command: '%s'", terms[0])
		}
	case 2:
		switch terms[0] {
		case "info":
			q.showInfo(terms[1])
		case "seq":
			q.showSequence(terms[1])
		case "words":
			q.showWords(terms[1])
		default:
			log.Errorf("Unknown command: '%s'", terms[0])
		}
	default:
		log.Error("Invalid command: expected a keyword and at most one argument")
	}
	return false
}

// showInfo prints how often a word starts a bigram and its ranked
// successors, each with its share of the word's total.
func (q *QueryLoop) showInfo(word string) {
	total := q.predictor.TotalStartingWith(word)
	if total == 0 {
		log.Warnf("No bigrams recorded for '%s'", word)
		if q.matcher != nil {
			if corrected, ok := q.matcher.SuggestCorrection(word); ok {
				log.Printf("did you mean '%s'?", corrected)
			}
		}
		return
	}

	start := time.Now()
	entries := q.predictor.TopSuccessors(word, q.suggestLimit)
	elapsed := time.Since(start)
	log.Debugf("Took [ %v ] for word '%s'", elapsed, word)

	log.Printf("%s bigrams start with '%s':", utils.FormatWithCommas(total), word)
	for i, e := range entries {
		pct := float64(e.Count) * 100 / float64(total)
		fmtFreq := utils.FormatWithCommas(e.Count)
		clWord := fmt.Sprintf("\033[38;5;75m%s\033[0m", e.Bigram.Second)
		log.Printf("%2d. %s %-40s (%5.1f%%, freq: %8s)", i+1, e.Bigram.First, clWord, pct, fmtFreq)
	}
}

// showSequence prints the predicted chain starting from a word,
// space-joined on a single line.
func (q *QueryLoop) showSequence(word string) {
	words := q.predictor.Sequence(word, q.seqLength)
	log.Print(strings.Join(words, " "))
}

// showWords lists vocabulary completions for a prefix, most frequent first.
func (q *QueryLoop) showWords(prefix string) {
	if q.vocab == nil {
		log.Warn("No vocabulary loaded")
		return
	}

	start := time.Now()
	matches := q.vocab.Complete(prefix, q.suggestLimit)
	elapsed := time.Since(start)
	log.Debugf("Took [ %v ] for prefix '%s'", elapsed, prefix)

	if len(matches) == 0 {
		log.Warnf("No words found for prefix: '%s'", prefix)
		return
	}
	log.Printf("Found %d words for prefix '%s':", len(matches), prefix)
	for i, m := range matches {
		fmtFreq := utils.FormatWithCommas(m.Count)
		clWord := fmt.Sprintf("\033[38;5;75m%s\033[0m", m.Word)
		log.Printf("%2d. %-40s (freq: %8s)", i+1, clWord, fmtFreq)
	}
}

func (q *QueryLoop) showStats() {
	stats := q.predictor.Stats()
	log.Printf("bigrams counted:  %s", utils.FormatWithCommas(stats.TotalBigrams))
	log.Printf("distinct bigrams: %s", utils.FormatWithCommas(int64(stats.DistinctBigrams)))
	log.Printf("first words:      %s", utils.FormatWithCommas(int64(stats.FirstWords)))
	log.Printf("highest count:    %s", utils.FormatWithCommas(stats.MaxCount))
	if q.vocab != nil {
		log.Printf("vocabulary:       %s", utils.FormatWithCommas(int64(q.vocab.Len())))
	}
}

func (q *QueryLoop) showHelp() {
	log.Print("info <word>   ranked successors of a word with counts and shares")
	log.Print("seq <word>    most likely word chain starting from a word")
	log.Print("words <pfx>   vocabulary entries matching a prefix")
	log.Print("stats         model counters")
	log.Print("help          this message")
	log.Print("quit          exit")
}

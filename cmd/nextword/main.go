// Copyright 2025 The NextWord Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the next-word prediction CLI and IPC server.

Note: This is a BETA release. APIs and functionality may rapidly change.

NextWord builds a bigram frequency model from a plain text corpus and
answers two kinds of questions about it: which words most often follow a
given word, and what chain of words is most likely to continue from a
starting word. It runs as an interactive CLI by default, or as a
MessagePack IPC server for integration with text editors.

The model is built once at startup in a single pass over the corpus:
lowercase, split on whitespace, count adjacent pairs, rank them by
frequency. Everything after that is read-only lookups, so queries stay
fast regardless of session length.

# Usage

Explore a corpus interactively:

	nextword corpus.txt

Run the IPC server over the same corpus:

	nextword -serve -corpus corpus.txt

Enable debug mode for detailed logging:

	nextword -d corpus.txt

Interactive commands: 'info <word>' lists the ranked successors of a
word with counts and shares, 'seq <word>' prints the most likely chain
starting at a word, 'words <prefix>' searches the vocabulary, 'stats'
shows model counters, 'quit' exits.

# Configuration

Runtime configuration is managed through a TOML file that supports
server parameters and CLI defaults:

	[server]
	max_limit = 64
	max_word_length = 60

	[cli]
	suggest_limit = 5
	sequence_length = 5

The config file is automatically created with defaults if it doesn't
exist. The -limit and -len flags override the file when given.

# IPC Protocol

The server communicates via MessagePack over stdin/stdout. Requests
are processed synchronously with microsecond timing information
included in responses.

Ask for the successors of a word:

	{"id": "req1", "op": "info", "w": "the", "l": 5}

Receive them ranked by frequency with their share of the word's total:

	{"id": "req1", "w": "the", "n": 1042, "s": [{"w": "quick", "c": 312, "p": 29.9}], "c": 1, "t": 145}

Ask for a predicted chain:

	{"id": "req2", "op": "seq", "w": "the", "n": 3}

# Server Mode

With -serve the process reads MessagePack requests from stdin and
writes responses to stdout. All logging goes to stderr so the stdout
stream stays clean for frames.

	srv := server.NewServer(index, vocab, matcher, appConfig)
	err := srv.Start()

# CLI Mode

The default mode provides an interactive prompt for exploring the
model. It is also the place to test new features before deploying them
to server mode.

	loop := cli.NewQueryLoop(index, vocab, matcher, limit, seqLen)
	err := loop.Start()

# Prediction Engine

The core pipeline is provided by the corpus, ngram and predict
packages:

	tokens, _ := corpus.Load("corpus.txt")
	index := predict.NewIndex(ngram.Count(ngram.Extract(tokens)))
	entries := index.TopSuccessors("the", 5)

The index pre-groups entries by first word at build time, so per-word
lookups avoid scanning the full ranked list.

# Command Line Flags

The following flags control application behavior:

	-corpus string
	    Path to the plain text corpus file (or pass it as the first argument)
	-serve
	    Run the MessagePack IPC server instead of the interactive CLI
	-d  Enable debug mode with detailed logging
	-limit int
	    Number of suggestions to return (default from config)
	-len int
	    Number of words predicted by 'seq' (default from config)
	-config string
	    Path to a custom config.toml
	-version
	    Show current version
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/nextword/internal/cli"
	"github.com/bastiangx/nextword/internal/utils"
	"github.com/bastiangx/nextword/pkg/config"
	"github.com/bastiangx/nextword/pkg/corpus"
	"github.com/bastiangx/nextword/pkg/ngram"
	"github.com/bastiangx/nextword/pkg/predict"
	"github.com/bastiangx/nextword/pkg/server"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.2.0-beta"
	AppName = "nextword"
	gh      = "https://github.com/bastiangx/nextword"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main calls other packages to build the model and start the chosen
// interface. main() does not implement logic for them and only manages
// the flow.
func main() {
	sigHandler()
	defaultConfig := config.DefaultConfig()

	// custom Flags
	showVersion := flag.Bool("version", false, "Show current version")
	corpusPath := flag.String("corpus", "", "Path to the plain text corpus file")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	serveMode := flag.Bool("serve", false, "Run the msgpack IPC server instead of the interactive CLI")
	limit := flag.Int("limit", defaultConfig.CLI.SuggestLimit, "Number of suggestions to return")
	seqLen := flag.Int("len", defaultConfig.CLI.SequenceLength, "Number of words predicted by 'seq'")
	configPath := flag.String("config", "", "Path to a custom config.toml")

	flag.Parse()

	if *showVersion {
		logger := log.NewWithOptions(os.Stderr, log.Options{
			ReportCaller:    false,
			ReportTimestamp: false,
			Prefix:          "",
		})

		styles := log.DefaultStyles()

		styles.Values["version"] = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"}).
			Background(lipgloss.AdaptiveColor{Light: "#f2e9e1", Dark: "#26233a"})

		styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})

		logger.SetStyles(styles)

		logger.Print("")
		logger.Print("[ NextWord ] Predicts what comes next!")
		logger.Print("", "version", Version)
		logger.Print("")
		logger.Print("use -h or --help to see available options")
		logger.Print("Github Repo", "gh", gh)

		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	appConfig, loadedPath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if loadedPath != "" {
		log.Debugf("Using config file: (%s)", loadedPath)
	}

	// explicit flags win over the config file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "limit":
			appConfig.CLI.SuggestLimit = *limit
		case "len":
			appConfig.CLI.SequenceLength = *seqLen
		}
	})

	path := *corpusPath
	if path == "" {
		path = flag.Arg(0)
	}
	if path == "" {
		log.Error("No corpus file given")
		log.Print("usage: nextword [flags] <corpus.txt>")
		log.Print("use -h or --help to see available options")
		os.Exit(1)
	}

	tokens, err := corpus.Load(path)
	if err != nil {
		log.Fatalf("Failed to read corpus: %v", err)
	}
	log.Debugf("Read [%d] tokens from (%s)", len(tokens), path)

	wordCounts := corpus.CountWords(tokens)
	table := ngram.Count(ngram.Extract(tokens))

	log.Debug("Ranking bigram counts")
	index := predict.NewIndex(table)
	vocab := predict.NewVocab(wordCounts)
	matcher := predict.NewFuzzyMatcher(wordCounts)

	if *serveMode {
		log.Debug("spawning IPC")
		srv := server.NewServer(index, vocab, matcher, appConfig)

		showStartupInfo(path, len(tokens), vocab.Len(), index.Stats())

		if err := srv.Start(); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
		return
	}

	log.SetReportTimestamp(false)
	showStartupInfo(path, len(tokens), vocab.Len(), index.Stats())
	log.Debug("Input info:",
		"limit", appConfig.CLI.SuggestLimit,
		"seqLen", appConfig.CLI.SequenceLength)

	loop := cli.NewQueryLoop(index, vocab, matcher, appConfig.CLI.SuggestLimit, appConfig.CLI.SequenceLength)
	if err := loop.Start(); err != nil {
		log.Fatalf("CLI error: %v", err)
	}
}

// showStartupInfo displays some basic info about the loaded model.
func showStartupInfo(corpusPath string, tokenCount, vocabSize int, stats predict.Stats) {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	println("==========")
	println(" NextWord ")
	println("==========")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Info("init: OK")
	log.Infof("corpus: ( %s )", corpusPath)
	log.Infof("words read: %s", utils.FormatWithCommas(int64(tokenCount)))
	log.Infof("distinct words: %s", utils.FormatWithCommas(int64(vocabSize)))
	log.Infof("bigrams counted: %s", utils.FormatWithCommas(stats.TotalBigrams))
	log.Infof("distinct bigrams: %s", utils.FormatWithCommas(int64(stats.DistinctBigrams)))
	log.Info("status: ready")
	println("==========")
	println("Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}

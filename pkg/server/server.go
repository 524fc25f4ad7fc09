package server

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/bastiangx/nextword/internal/logger"
	"github.com/bastiangx/nextword/pkg/config"
	"github.com/bastiangx/nextword/pkg/predict"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles the IPC for bigram predictions
type Server struct {
	predictor predict.Predictor
	vocab     predict.Completer
	matcher   *predict.FuzzyMatcher
	config    *config.Config
	decoder   *msgpack.Decoder
	encoder   *msgpack.Encoder
	logger    *log.Logger
}

// NewServer creates a new prediction server using stdin/stdout for IPC.
// All logging goes to stderr, stdout carries only msgpack frames.
func NewServer(predictor predict.Predictor, vocab predict.Completer, matcher *predict.FuzzyMatcher, cfg *config.Config) *Server {
	return &Server{
		predictor: predictor,
		vocab:     vocab,
		matcher:   matcher,
		config:    cfg,
		decoder:   msgpack.NewDecoder(os.Stdin),
		encoder:   msgpack.NewEncoder(os.Stdout),
		logger:    logger.New("ipc"),
	}
}

// Start begins listening for IPC requests
func (s *Server) Start() error {
	s.logger.Debug("Starting server.")

	// Signal that the server is ready
	if err := s.encoder.Encode(map[string]string{"status": "ready"}); err != nil {
		return err
	}

	for {
		var request Request
		if err := s.decoder.Decode(&request); err != nil {
			if err == io.EOF {
				return nil
			}
			// the stream position is unknown after a bad frame,
			// report and shut down rather than decode garbage
			s.logger.Errorf("Decoding request: %v", err)
			s.sendError("", "Invalid msgpack request", 400)
			return err
		}
		s.handleRequest(request)
	}
}

// handleRequest dispatches one decoded request by op.
// Words are lowercased here so clients need not care about case,
// the model itself only holds lowercase tokens.
func (s *Server) handleRequest(request Request) {
	word := strings.ToLower(strings.TrimSpace(request.Word))

	switch request.Op {
	case "", "info":
		s.handleInfo(request.ID, word, request.Limit)
	case "seq":
		s.handleSequence(request.ID, word, request.Length)
	case "words":
		s.handleWords(request.ID, word, request.Limit)
	case "stats":
		s.handleStats(request.ID)
	default:
		s.sendError(request.ID, fmt.Sprintf("Unknown op: %s", request.Op), 400)
	}
}

// validateWord rejects requests whose word argument is absent or
// oversized before any lookup runs
func (s *Server) validateWord(id, word string) bool {
	if word == "" {
		s.sendError(id, "Missing 'w' parameter", 400)
		s.logger.Debug("Word is empty in request")
		return false
	}
	if len(word) > s.config.Server.MaxWordLength {
		s.sendError(id, fmt.Sprintf("Word exceeds maximum length of %d characters", s.config.Server.MaxWordLength), 400)
		s.logger.Debug("Word is too long in request")
		return false
	}
	return true
}

// clampLimit applies the configured default and ceiling to a
// client-supplied result limit
func (s *Server) clampLimit(limit int) int {
	if limit < 1 {
		limit = s.config.CLI.SuggestLimit
	}
	if limit > s.config.Server.MaxLimit {
		limit = s.config.Server.MaxLimit
	}
	return limit
}

// handleInfo answers a successor listing for one word. A word that
// starts no bigram is not an error: the response carries total 0, no
// suggestions, and a correction hint when the matcher has one.
func (s *Server) handleInfo(id, word string, limit int) {
	if !s.validateWord(id, word) {
		return
	}
	limit = s.clampLimit(limit)

	start := time.Now()
	total := s.predictor.TotalStartingWith(word)
	entries := s.predictor.TopSuccessors(word, limit)
	elapsed := time.Since(start)

	response := InfoResponse{
		ID:        id,
		Word:      word,
		Total:     total,
		Count:     len(entries),
		TimeTaken: elapsed.Microseconds(),
	}
	if total == 0 {
		if s.matcher != nil {
			if corrected, ok := s.matcher.SuggestCorrection(word); ok {
				response.WasCorrected = true
				response.Corrected = corrected
			}
		}
		s.sendResponse(response)
		return
	}

	response.Suggestions = make([]Suggestion, len(entries))
	for i, e := range entries {
		response.Suggestions[i] = Suggestion{
			Word:  e.Bigram.Second,
			Count: e.Count,
			Share: float64(e.Count) * 100 / float64(total),
		}
	}
	s.sendResponse(response)
}

// handleSequence runs the chain predictor from a start word
func (s *Server) handleSequence(id, word string, length int) {
	if !s.validateWord(id, word) {
		return
	}
	if length < 1 {
		length = s.config.CLI.SequenceLength
	}
	if length > s.config.Server.MaxLimit {
		length = s.config.Server.MaxLimit
	}

	start := time.Now()
	words := s.predictor.Sequence(word, length)
	elapsed := time.Since(start)

	s.sendResponse(SequenceResponse{
		ID:        id,
		Words:     words,
		TimeTaken: elapsed.Microseconds(),
	})
}

// handleWords answers a vocabulary prefix lookup
func (s *Server) handleWords(id, prefix string, limit int) {
	if !s.validateWord(id, prefix) {
		return
	}
	if s.vocab == nil {
		s.sendError(id, "No vocabulary loaded", 500)
		return
	}
	limit = s.clampLimit(limit)

	start := time.Now()
	matches := s.vocab.Complete(prefix, limit)
	elapsed := time.Since(start)

	response := WordsResponse{
		ID:        id,
		Prefix:    prefix,
		Words:     make([]VocabEntry, len(matches)),
		Count:     len(matches),
		TimeTaken: elapsed.Microseconds(),
	}
	for i, m := range matches {
		response.Words[i] = VocabEntry{Word: m.Word, Count: m.Count}
	}
	s.sendResponse(response)
}

// handleStats reports model counters
func (s *Server) handleStats(id string) {
	start := time.Now()
	stats := s.predictor.Stats()
	elapsed := time.Since(start)

	response := StatsResponse{
		ID:              id,
		TotalBigrams:    stats.TotalBigrams,
		DistinctBigrams: stats.DistinctBigrams,
		FirstWords:      stats.FirstWords,
		TimeTaken:       elapsed.Microseconds(),
	}
	if s.vocab != nil {
		response.VocabSize = s.vocab.Len()
	}
	s.sendResponse(response)
}

// sendResponse encodes one msgpack frame onto the output stream
func (s *Server) sendResponse(response interface{}) {
	if err := s.encoder.Encode(response); err != nil {
		s.logger.Errorf("Encoding response: %v", err)
	}
}

// sendError sends an error response
func (s *Server) sendError(id, message string, code int) {
	s.logger.Debugf("Request error (%d): %s", code, message)
	s.sendResponse(RequestError{
		ID:    id,
		Error: message,
		Code:  code,
	})
}

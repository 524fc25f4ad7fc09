/*
Package server implements msgpack IPC for bigram prediction services.

The server package provides a minimal interface for next-word prediction using msgpack serialization over stdin/stdout.

The protocol uses binary msgpack encoding and supports successor listings, chain predictions, vocabulary prefix lookups and model counters.
Messages are processed synchronously with timing info included in responses.

# IPC

The server operates on a request response model where clients send structured messages via stdin and receive responses through stdout.
Each message contains an ID field and other fields based on the operation type.
On startup the server emits a single {"status": "ready"} frame before reading the first request.

Successor requests use mainly this structure (op defaults to "info" when omitted):

	{"id": "req_001", "op": "info", "w": "the", "l": 5}

The server responds with successors ranked by freq, each carrying its share of the word's total:

	{"id": "req_001", "w": "the", "n": 1042, "s": [{"w": "quick", "c": 312, "p": 29.9}], "c": 1, "t": 145}

A word that starts no bigram is answered with total 0 and no suggestions, never an error.
When the fuzzy matcher knows a close spelling, the response carries it in "cw" so clients can offer a correction.

Chain prediction walks the most frequent successor repeatedly:

	{"id": "req_002", "op": "seq", "w": "the", "n": 3}
	{"id": "req_002", "ws": ["the", "quick", "brown", "fox"], "t": 89}

Vocabulary lookups reuse the "w" field for the prefix:

	{"id": "req_003", "op": "words", "w": "th", "l": 10}

Counter snapshots take no arguments:

	{"id": "req_004", "op": "stats"}

Malformed requests are answered with an error frame holding a code in the HTTP convention, 400 for bad input and 500 for internal failures.

msgpack encoding has ~30 to 50% smaller message sizes compared to JSON.
binary format enables faster parsing and generation, less errors and reducing latency by ~40 to 70% in most cases.
*/
package server

// Request - incoming op envelope, decoded per frame
type Request struct {
	ID     string `msgpack:"id"`
	Op     string `msgpack:"op,omitempty"` // "info", "seq", "words", "stats"
	Word   string `msgpack:"w,omitempty"`  // word for info/seq, prefix for words
	Limit  int    `msgpack:"l,omitempty"`
	Length int    `msgpack:"n,omitempty"` // chain length for "seq"
}

// Suggestion - one ranked successor
type Suggestion struct {
	Word  string  `msgpack:"w"`
	Count int64   `msgpack:"c"`
	Share float64 `msgpack:"p"` // percentage of the word's total
}

// InfoResponse - ranked successors of a single word
type InfoResponse struct {
	ID           string       `msgpack:"id"`
	Word         string       `msgpack:"w"`
	Total        int64        `msgpack:"n"`
	Suggestions  []Suggestion `msgpack:"s,omitempty"`
	Count        int          `msgpack:"c"`
	TimeTaken    int64        `msgpack:"t"`
	WasCorrected bool         `msgpack:"fx,omitempty"`
	Corrected    string       `msgpack:"cw,omitempty"`
}

// SequenceResponse - predicted chain, start word included
type SequenceResponse struct {
	ID        string   `msgpack:"id"`
	Words     []string `msgpack:"ws"`
	TimeTaken int64    `msgpack:"t"`
}

// VocabEntry - one vocabulary word with its corpus frequency
type VocabEntry struct {
	Word  string `msgpack:"w"`
	Count int64  `msgpack:"c"`
}

// WordsResponse - vocabulary prefix lookup response
type WordsResponse struct {
	ID        string       `msgpack:"id"`
	Prefix    string       `msgpack:"p"`
	Words     []VocabEntry `msgpack:"ws,omitempty"`
	Count     int          `msgpack:"c"`
	TimeTaken int64        `msgpack:"t"`
}

// StatsResponse - model counter snapshot
type StatsResponse struct {
	ID              string `msgpack:"id"`
	TotalBigrams    int64  `msgpack:"n"`
	DistinctBigrams int    `msgpack:"d"`
	FirstWords      int    `msgpack:"f"`
	VocabSize       int    `msgpack:"v"`
	TimeTaken       int64  `msgpack:"t"`
}

// RequestError holds basic error information for failed requests
type RequestError struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"crosswarped.com/interlock"
	"crosswarped.com/interlock/internal"
)

const (
	maxCrosswordsLimit = 100
	// The search is exhaustive; larger word sets do not finish in a request.
	maxWords = 12
)

var errInvalidRequest = errors.New("invalid request")

type GenerateCrosswordsRequest struct {
	Words         []string           `json:"words"`
	WordSet       string             `json:"wordSet"`
	ExcludedWords []string           `json:"excludedWords"`
	Settings      interlock.Settings `json:"settings"`
	MaxCrosswords int                `json:"maxCrosswords"`
}

type CrosswordResult struct {
	Words  interlock.Crossword `json:"words"`
	Width  int                 `json:"width"`
	Height int                 `json:"height"`
	Render string              `json:"render"`
}

type GenerateCrosswordsResponse struct {
	Success    bool              `json:"success"`
	RequestID  string            `json:"requestId"`
	Crosswords []CrosswordResult `json:"crosswords"`
	Count      int               `json:"count"`
	Error      string            `json:"error,omitempty"`
}

// wordSets looks up a stored list of words by name.
type wordSets interface {
	Words(ctx context.Context, name string) ([]string, error)
}

type server struct {
	wordSets wordSets
	log      *logrus.Logger
}

func (s *server) execute(ctx context.Context, log *logrus.Entry, req GenerateCrosswordsRequest) ([]CrosswordResult, error) {
	if req.MaxCrosswords <= 0 {
		return nil, fmt.Errorf("maxCrosswords must be at least 1: %w", errInvalidRequest)
	}
	if req.MaxCrosswords > maxCrosswordsLimit {
		return nil, fmt.Errorf("maxCrosswords must be at most %d: %w", maxCrosswordsLimit, errInvalidRequest)
	}
	if err := internal.ValidateSettings(req.Settings); err != nil {
		return nil, err
	}

	words := req.Words
	if req.WordSet != "" {
		if s.wordSets == nil {
			return nil, fmt.Errorf("word sets are not configured: %w", errInvalidRequest)
		}
		stored, err := s.wordSets.Words(ctx, req.WordSet)
		if err != nil {
			return nil, fmt.Errorf("loading word set %q: %w", req.WordSet, err)
		}
		log.WithField("word_set", req.WordSet).Infof("Loaded %d words", len(stored))
		words = append(words, stored...)
	}

	words, err := internal.NormalizeWordList(internal.WordListParams{
		Words:         words,
		ExcludedWords: req.ExcludedWords,
	})
	if err != nil {
		return nil, err
	}
	if len(words) > maxWords {
		return nil, fmt.Errorf("at most %d words are supported, got %d: %w", maxWords, len(words), errInvalidRequest)
	}

	generator := interlock.CreateGenerator(interlock.Request{Words: words, Settings: req.Settings}, interlock.GeneratorParams{})

	deadline, ok := ctx.Deadline()
	timeout := 1 * time.Minute
	if ok {
		timeout = time.Until(deadline) - 5*time.Second
		log.Debugf("Setting timeout to %v", timeout)
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var results []CrosswordResult
	for cw := range generator.PossibleCrosswords(ctx) {
		log.Debugf("Generated crossword %d of %d", 1+len(results), req.MaxCrosswords)

		width, height := cw.Size()
		results = append(results, CrosswordResult{
			Words:  cw,
			Width:  width,
			Height: height,
			Render: cw.Render(),
		})
		if len(results) >= req.MaxCrosswords {
			break
		}
	}

	return results, ctx.Err()
}

func setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Content-Type", "application/json")
}

// statusFor maps request problems to 400 and everything else to 500. Running
// out of time still returns what was found.
func statusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusOK
	case errors.Is(err, errInvalidRequest),
		errors.Is(err, internal.ErrNoWords),
		errors.Is(err, internal.ErrInvalidWord),
		errors.Is(err, internal.ErrInvalidSettings):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	setCORSHeaders(w)

	// Handle OPTIONS request for CORS preflight
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	requestID := uuid.NewString()
	w.Header().Set("X-Request-Id", requestID)
	log := s.log.WithField("request_id", requestID)

	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		s.writeJSON(w, log, GenerateCrosswordsResponse{
			RequestID: requestID,
			Error:     fmt.Sprintf("Method %s not allowed", r.Method),
		})
		return
	}

	req := GenerateCrosswordsRequest{Settings: interlock.DefaultSettings()}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("Error parsing JSON body")
		w.WriteHeader(http.StatusBadRequest)
		s.writeJSON(w, log, GenerateCrosswordsResponse{
			RequestID: requestID,
			Error:     fmt.Sprintf("Invalid JSON: %v", err),
		})
		return
	}

	start := time.Now()
	results, err := s.execute(r.Context(), log, req)

	response := GenerateCrosswordsResponse{
		Success:    err == nil,
		RequestID:  requestID,
		Crosswords: results,
		Count:      len(results),
	}
	if err != nil {
		response.Error = err.Error()
	} else if len(results) == 0 {
		response.Error = "No crosswords could be generated with the given parameters"
	}

	entry := log.WithFields(logrus.Fields{
		"count":   len(results),
		"elapsed": time.Since(start).Round(time.Millisecond),
	})
	if status := statusFor(err); status != http.StatusOK {
		entry.WithError(err).Warn("Generation failed")
		w.WriteHeader(status)
	} else {
		entry.Info("Generation finished")
	}
	s.writeJSON(w, log, response)
}

func (s *server) writeJSON(w http.ResponseWriter, log *logrus.Entry, response GenerateCrosswordsResponse) {
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.WithError(err).Error("Error marshaling response")
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func newServer() *server {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	if envOr("LOG_LEVEL", "") == "debug" {
		log.SetLevel(logrus.DebugLevel)
	}
	return &server{
		wordSets: &bigQueryWordSets{
			project: envOr("BIGQUERY_PROJECT", "xword-x"),
			table:   envOr("BIGQUERY_TABLE", "xword-x.interlock.word_sets"),
		},
		log: log,
	}
}

func main() {
	s := newServer()
	funcframework.RegisterHTTPFunction("/generate-crosswords", s.ServeHTTP)

	port := "8080"
	if envPort := os.Getenv("PORT"); envPort != "" {
		port = envPort
	}
	hostname := ""
	if localOnly := os.Getenv("LOCAL_ONLY"); localOnly == "true" {
		hostname = "127.0.0.1"
	}
	if err := funcframework.StartHostPort(hostname, port); err != nil {
		s.log.Fatalf("funcframework.StartHostPort: %v", err)
	}
}

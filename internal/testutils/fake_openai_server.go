package testutils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
)

const (
	// FailMarker in a user message makes the fake completion endpoint fail.
	FailMarker = "Team FAIL"
	// EmptyMarker in a user message produces a response with no choices.
	EmptyMarker = "Team EMPTY"

	FakeCompletion = "What a season. Back-back-back-back!"
)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float32       `json:"temperature"`
}

// ChatRequest is what the fake server saw for one completion call.
type ChatRequest struct {
	Model       string
	System      string
	User        string
	MaxTokens   int
	Temperature float32
}

type FakeOpenAIServer struct {
	s        *httptest.Server
	mu       sync.Mutex
	requests []ChatRequest
}

func NewFakeOpenAIServer() *FakeOpenAIServer {
	f := &FakeOpenAIServer{}

	r := chi.NewRouter()
	r.Post("/v1/chat/completions", f.chatCompletionsHandler)

	f.s = httptest.NewServer(r)
	return f
}

func (f *FakeOpenAIServer) Close() {
	f.s.Close()
}

// URL is the base url the openai client should be configured with.
func (f *FakeOpenAIServer) URL() string {
	return f.s.URL + "/v1"
}

func (f *FakeOpenAIServer) Requests() []ChatRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	res := make([]ChatRequest, len(f.requests))
	copy(res, f.requests)
	return res
}

func (f *FakeOpenAIServer) chatCompletionsHandler(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeOpenAIError(w, http.StatusBadRequest, "invalid_request_error", err.Error())
		return
	}

	seen := ChatRequest{Model: req.Model, MaxTokens: req.MaxTokens, Temperature: req.Temperature}
	for _, m := range req.Messages {
		switch m.Role {
		case "system":
			seen.System = m.Content
		case "user":
			seen.User = m.Content
		}
	}

	f.mu.Lock()
	f.requests = append(f.requests, seen)
	f.mu.Unlock()

	if strings.Contains(seen.User, FailMarker) {
		writeOpenAIError(w, http.StatusInternalServerError, "server_error", "the model is on a bye week")
		return
	}

	choices := []map[string]any{}
	if !strings.Contains(seen.User, EmptyMarker) {
		choices = append(choices, map[string]any{
			"index":         0,
			"finish_reason": "stop",
			"message": map[string]any{
				"role":    "assistant",
				"content": "\n  " + FakeCompletion + "  \n",
			},
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1700000000,
		"model":   req.Model,
		"choices": choices,
	})
}

func writeOpenAIError(w http.ResponseWriter, status int, kind, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{
			"message": message,
			"type":    kind,
		},
	})
}

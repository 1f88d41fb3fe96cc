package testutils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
)

const TelegramToken = "telegram-test-token"

// SentMessage is one sendMessage call accepted by the fake Telegram server.
type SentMessage struct {
	ChatID    string
	Text      string
	ParseMode string
}

// FakeTelegramServer answers getMe and sendMessage. Markdown messages with an
// unescaped, unbalanced entity marker are rejected the way Telegram does.
type FakeTelegramServer struct {
	s *httptest.Server

	mu       sync.Mutex
	sent     []SentMessage
	rejected int
}

func NewFakeTelegramServer() *FakeTelegramServer {
	f := &FakeTelegramServer{}

	r := chi.NewRouter()
	r.Route("/bot"+TelegramToken, func(r chi.Router) {
		r.Post("/getMe", getMeHandler)
		r.Post("/sendMessage", f.sendMessageHandler)
	})
	f.s = httptest.NewServer(r)
	return f
}

func (f *FakeTelegramServer) Close() {
	f.s.Close()
}

// Endpoint is the format string tgbotapi.NewBotAPIWithClient expects.
func (f *FakeTelegramServer) Endpoint() string {
	return f.s.URL + "/bot%s/%s"
}

func (f *FakeTelegramServer) Client() *http.Client {
	return f.s.Client()
}

func (f *FakeTelegramServer) Sent() []SentMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]SentMessage(nil), f.sent...)
}

func (f *FakeTelegramServer) Rejected() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.rejected
}

func getMeHandler(w http.ResponseWriter, r *http.Request) {
	writeTelegram(w, map[string]any{"ok": true, "result": map[string]any{
		"id": 1, "is_bot": true, "first_name": "RoastBot", "username": "roastbot",
	}})
}

func (f *FakeTelegramServer) sendMessageHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	msg := SentMessage{
		ChatID:    r.PostForm.Get("chat_id"),
		Text:      r.PostForm.Get("text"),
		ParseMode: r.PostForm.Get("parse_mode"),
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if msg.ParseMode == "Markdown" {
		if marker, ok := unbalancedMarker(msg.Text); ok {
			f.rejected++
			writeTelegram(w, map[string]any{
				"ok":          false,
				"error_code":  400,
				"description": fmt.Sprintf("Bad Request: can't parse entities: can't find end of the entity starting with %q", marker),
			})
			return
		}
	}

	f.sent = append(f.sent, msg)
	writeTelegram(w, map[string]any{"ok": true, "result": map[string]any{
		"message_id": len(f.sent),
		"date":       0,
		"chat":       map[string]any{"id": 1, "type": "group"},
		"text":       msg.Text,
	}})
}

func unbalancedMarker(text string) (string, bool) {
	for _, marker := range []string{"_", "*", "`"} {
		unescaped := strings.Count(text, marker) - strings.Count(text, `\`+marker)
		if unescaped%2 != 0 {
			return marker, true
		}
	}
	return "", false
}

func writeTelegram(w http.ResponseWriter, body map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(body)
}

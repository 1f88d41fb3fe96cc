package testutils

import (
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
)

const (
	GiphyAPIKey = "giphy-test-key"

	// GiphyNoResultsQuery returns an empty result set.
	GiphyNoResultsQuery = "nothing to see here"
	// GiphyBrokenQuery returns a 500.
	GiphyBrokenQuery = "broken"
	// GiphyGarbageQuery returns a body that is not json.
	GiphyGarbageQuery = "garbage"
)

var GiphyURLs = []string{
	"https://media.giphy.com/media/celebration/giphy.gif",
	"https://media.giphy.com/media/touchdown/giphy.gif",
}

type FakeGiphyServer struct {
	s *httptest.Server
}

func NewFakeGiphyServer() *FakeGiphyServer {
	r := chi.NewRouter()
	r.Get("/v1/gifs/search", gifSearchHandler)

	return &FakeGiphyServer{
		s: httptest.NewServer(r),
	}
}

func (f *FakeGiphyServer) Close() {
	f.s.Close()
}

func (f *FakeGiphyServer) URL() string {
	return f.s.URL
}

func gifSearchHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if q.Get("api_key") != GiphyAPIKey {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	switch q.Get("q") {
	case GiphyNoResultsQuery:
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"data": []}`))
	case GiphyBrokenQuery:
		w.WriteHeader(http.StatusInternalServerError)
	case GiphyGarbageQuery:
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`<html>`))
	default:
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"data": [
			{"images": {"original": {"url": "` + GiphyURLs[0] + `"}}},
			{"images": {"original": {"url": ""}}},
			{"images": {"original": {"url": "` + GiphyURLs[1] + `"}}}
		]}`))
	}
}

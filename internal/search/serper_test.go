package search

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/meetingmind/meetingmind/internal/apperrors"
	"github.com/meetingmind/meetingmind/internal/config"
	"github.com/meetingmind/meetingmind/internal/logger"
)

func newTestSearcher(t *testing.T, handler http.HandlerFunc) Searcher {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return New(config.SerperConfig{
		APIKey:   "test-key",
		Endpoint: srv.URL,
		TopN:     3,
	}, logger.New("error", "text"))
}

func TestSearch(t *testing.T) {
	var gotKey string
	var gotBody []byte

	s := newTestSearcher(t, func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-API-KEY")
		gotBody, _ = io.ReadAll(r.Body)
		json.NewEncoder(w).Encode(map[string]any{
			"organic": []map[string]string{
				{"title": "A", "link": "https://a.example", "snippet": "first"},
				{"title": "B", "link": "https://b.example", "snippet": "second"},
				{"title": "C", "link": "https://c.example", "snippet": "third"},
				{"title": "D", "link": "https://d.example", "snippet": "fourth"},
			},
		})
	})

	results, err := s.Search(context.Background(), "what is NPS")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	if gotKey != "test-key" {
		t.Errorf("X-API-KEY = %q, want test-key", gotKey)
	}

	var q map[string]string
	if err := json.Unmarshal(gotBody, &q); err != nil || q["q"] != "what is NPS" {
		t.Errorf("request body = %s", gotBody)
	}

	if len(results) != 3 {
		t.Fatalf("len(results) = %d, want top 3", len(results))
	}
	if results[0].Title != "A" || results[0].Link != "https://a.example" {
		t.Errorf("first result = %+v", results[0])
	}
}

func TestSearchEmptyResults(t *testing.T) {
	s := newTestSearcher(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"organic": []any{}})
	})

	results, err := s.Search(context.Background(), "obscure term")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(results) != 0 {
		t.Errorf("len(results) = %d, want 0", len(results))
	}
}

func TestSearchServerError(t *testing.T) {
	s := newTestSearcher(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := s.Search(context.Background(), "anything")
	if err == nil {
		t.Fatal("Search() expected error")
	}
	if !apperrors.IsCapability(err) {
		t.Errorf("error %v is not a capability error", err)
	}
}

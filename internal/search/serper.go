package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/meetingmind/meetingmind/internal/apperrors"
	"github.com/meetingmind/meetingmind/internal/config"
	"github.com/meetingmind/meetingmind/internal/logger"
)

type implSearcher struct {
	apiKey   string
	endpoint string
	topN     int
	client   *http.Client
	logger   logger.Logger
}

// New creates a Serper-backed Searcher returning the top organic results
func New(cfg config.SerperConfig, log logger.Logger) Searcher {
	return &implSearcher{
		apiKey:   cfg.APIKey,
		endpoint: cfg.Endpoint,
		topN:     cfg.TopN,
		client:   &http.Client{Timeout: 30 * time.Second},
		logger:   log,
	}
}

type serperResponse struct {
	Organic []Result `json:"organic"`
}

// Search posts the query to Serper and returns up to topN organic results
func (s *implSearcher) Search(ctx context.Context, query string) ([]Result, error) {
	payload, err := json.Marshal(map[string]string{"q": query})
	if err != nil {
		return nil, fmt.Errorf("encode query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build search request: %w", err)
	}
	req.Header.Set("X-API-KEY", s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search %q: %v: %w", query, err, apperrors.ErrCapability)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search %q: status %d: %w", query, resp.StatusCode, apperrors.ErrCapability)
	}

	var parsed serperResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("parse search results: %v: %w", err, apperrors.ErrCapability)
	}

	results := parsed.Organic
	if len(results) > s.topN {
		results = results[:s.topN]
	}

	s.logger.Debug(ctx, "Search %q returned %d results", query, len(results))
	return results, nil
}

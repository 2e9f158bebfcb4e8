package search

import "context"

// Result is one web search hit
type Result struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

// Searcher is the web search capability used to clarify statements and
// research terminology
type Searcher interface {
	Search(ctx context.Context, query string) ([]Result, error)
}

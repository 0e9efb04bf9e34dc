// Package queryengine defines the retrieval surface chat engines consume.
// Indexing and retrieval themselves live outside this module; implementations
// adapt whatever knowledge source they sit on (vector store, search API,
// plain function) to the QueryEngine interface.
package queryengine

import "context"

// SourceNode is a retrieved chunk that contributed to a query response.
type SourceNode struct {
	ID       string         `json:"id,omitempty"`
	Text     string         `json:"text"`
	Score    float64        `json:"score,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// Response is the result of a natural language query.
type Response struct {
	Response    string         `json:"response"`
	SourceNodes []SourceNode   `json:"source_nodes,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

// String returns the response text.
func (r *Response) String() string { return r.Response }

// QueryEngine answers natural language queries against some knowledge
// source.
type QueryEngine interface {
	Query(ctx context.Context, query string) (*Response, error)
}

// Func adapts an ordinary function to the QueryEngine interface.
type Func func(ctx context.Context, query string) (*Response, error)

// Query implements QueryEngine.
func (f Func) Query(ctx context.Context, query string) (*Response, error) {
	return f(ctx, query)
}

// Static is a QueryEngine that answers every query with a fixed response.
// Useful for tests and examples.
type Static struct {
	Answer string
}

// Query implements QueryEngine.
func (s Static) Query(_ context.Context, _ string) (*Response, error) {
	return &Response{Response: s.Answer}, nil
}

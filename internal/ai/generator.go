package ai

import "context"

// Request is a single prompt submitted to a model provider. A non-nil Schema
// asks for JSON output constrained to that schema; otherwise free text is
// expected.
type Request struct {
	Prompt      string
	Schema      *Schema
	Temperature *float32
}

// Structured reports whether the request asks for schema-constrained output.
func (r *Request) Structured() bool {
	return r != nil && r.Schema != nil
}

// Generator submits requests to a model provider and returns the response text.
type Generator interface {
	Generate(ctx context.Context, req *Request) (string, error)
}

// GeneratorFunc adapts an ordinary function to the Generator interface.
type GeneratorFunc func(ctx context.Context, req *Request) (string, error)

func (f GeneratorFunc) Generate(ctx context.Context, req *Request) (string, error) {
	return f(ctx, req)
}

// Temperature returns a pointer suitable for Request.Temperature.
func Temperature(v float32) *float32 {
	return &v
}

// Package ollama provides a completion-style language-model handle backed by
// a local Ollama server's generate endpoint.
package ollama

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/ollama/ollama/api"

	"github.com/chatmesh/chatmesh/llm"
)

// Options configure the Ollama handle.
type Options struct {
	// Model is the Ollama model tag to generate with.
	Model string
	// BaseURL overrides the OLLAMA_HOST environment configuration.
	BaseURL string
	// Options holds raw model parameters (temperature, num_ctx, ...) passed
	// through to the generate request.
	Options map[string]any
	// Client overrides the constructed API client.
	Client *api.Client
}

// Model is a completion-style handle over the Ollama generate API. Ollama's
// prompt-in / text-out surface has no structured tool calling, so engines
// built on it use the completion agent variant.
type Model struct {
	client *api.Client
	opts   Options
}

var _ llm.CompletionModel = (*Model)(nil)

// New creates an Ollama handle. Without an explicit client or base URL the
// client is configured from the environment (OLLAMA_HOST).
func New(optFns ...func(o *Options)) (*Model, error) {
	opts := Options{Model: "llama3.2"}
	for _, fn := range optFns {
		fn(&opts)
	}

	client := opts.Client
	if client == nil {
		if opts.BaseURL != "" {
			u, err := url.Parse(opts.BaseURL)
			if err != nil {
				return nil, fmt.Errorf("invalid base URL: %w", err)
			}
			client = api.NewClient(u, http.DefaultClient)
		} else {
			var err error
			client, err = api.ClientFromEnvironment()
			if err != nil {
				return nil, fmt.Errorf("ollama client from environment: %w", err)
			}
		}
	}

	return &Model{client: client, opts: opts}, nil
}

// Info implements llm.Model.
func (m *Model) Info() llm.Info {
	return llm.Info{Name: m.opts.Model, Provider: "ollama"}
}

// Complete implements llm.CompletionModel using a non-streaming generate
// call.
func (m *Model) Complete(ctx context.Context, prompt string) (string, error) {
	stream := false
	req := &api.GenerateRequest{
		Model:   m.opts.Model,
		Prompt:  prompt,
		Stream:  &stream,
		Options: m.opts.Options,
	}

	var sb strings.Builder
	err := m.client.Generate(ctx, req, func(resp api.GenerateResponse) error {
		sb.WriteString(resp.Response)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("ollama generate: %w", err)
	}

	return sb.String(), nil
}

// Package gemini provides a chat-style language-model handle backed by the
// Google Gemini API. Unlike the OpenAI and Anthropic handles there is no
// upstream agentmesh binding to wrap, so this package carries its own
// adapter from the normalized agentmesh request/response structures onto the
// genai SDK.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	meshcore "github.com/hupe1980/agentmesh/core"
	meshmodel "github.com/hupe1980/agentmesh/model"
	"google.golang.org/genai"

	"github.com/chatmesh/chatmesh/llm"
)

// Options configure the Gemini handle.
type Options struct {
	Model       string
	APIKey      string
	Temperature float64
	Client      *genai.Client
}

// Model is a chat-style handle over the Gemini API implementing the
// agentmesh model interface directly.
type Model struct {
	client *genai.Client
	opts   Options
}

var _ llm.ChatModel = (*Model)(nil)

// New creates a Gemini handle. Without an explicit client the SDK client is
// constructed against the Gemini API backend using the configured key.
func New(ctx context.Context, optFns ...func(o *Options)) (*Model, error) {
	opts := Options{
		Model:       "gemini-2.0-flash",
		Temperature: 0.7,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	client := opts.Client
	if client == nil {
		var err error
		client, err = genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  opts.APIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("create gemini client: %w", err)
		}
	}

	return &Model{client: client, opts: opts}, nil
}

// Info implements llm.Model.
func (m *Model) Info() llm.Info {
	return llm.Info{Name: m.opts.Model, Provider: "gemini"}
}

// MeshModel implements llm.ChatModel. The mesh-facing Info return type
// differs from llm.Info, so the binding is a thin wrapper rather than the
// handle itself.
func (m *Model) MeshModel() meshmodel.Model { return meshBinding{m} }

type meshBinding struct{ m *Model }

func (b meshBinding) Info() meshmodel.Info {
	return meshmodel.Info{Name: b.m.opts.Model, Provider: "gemini", SupportsTools: true}
}

func (b meshBinding) Generate(ctx context.Context, req meshmodel.Request) (<-chan meshmodel.Response, <-chan error) {
	return b.m.generate(ctx, req)
}

// generate answers requests non-incrementally; a single final response is
// emitted.
func (m *Model) generate(ctx context.Context, req meshmodel.Request) (<-chan meshmodel.Response, <-chan error) {
	out := make(chan meshmodel.Response, 1)
	errCh := make(chan error, 1)

	go func() {
		defer close(out)
		defer close(errCh)

		contents := buildContents(req)
		config := m.buildConfig(req)

		resp, err := m.client.Models.GenerateContent(ctx, m.opts.Model, contents, config)
		if err != nil {
			errCh <- fmt.Errorf("gemini api error: %w", err)
			return
		}
		if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
			errCh <- fmt.Errorf("no candidates returned")
			return
		}

		candidate := resp.Candidates[0]
		parts := make([]meshcore.Part, 0, len(candidate.Content.Parts))
		for _, p := range candidate.Content.Parts {
			if p.Text != "" {
				parts = append(parts, meshcore.TextPart{Text: p.Text})
			}
			if p.FunctionCall != nil {
				args, _ := json.Marshal(p.FunctionCall.Args)
				parts = append(parts, meshcore.FunctionCallPart{FunctionCall: meshcore.FunctionCall{
					ID:        p.FunctionCall.ID,
					Name:      p.FunctionCall.Name,
					Arguments: string(args),
				}})
			}
		}

		out <- meshmodel.Response{
			Content:      meshcore.Content{Role: "assistant", Parts: parts},
			FinishReason: strings.ToLower(string(candidate.FinishReason)),
		}
	}()

	return out, errCh
}

// buildConfig assembles generation config including system instruction and
// tool declarations.
func (m *Model) buildConfig(req meshmodel.Request) *genai.GenerateContentConfig {
	temp := float32(m.opts.Temperature)
	config := &genai.GenerateContentConfig{Temperature: &temp}

	if req.Instructions != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.Instructions}},
		}
	}

	if len(req.Tools) > 0 {
		fds := make([]*genai.FunctionDeclaration, 0, len(req.Tools))
		for _, t := range req.Tools {
			fd := &genai.FunctionDeclaration{
				Name:        t.Function.Name,
				Description: t.Function.Description,
			}
			if t.Function.Parameters != nil {
				raw, err := json.Marshal(t.Function.Parameters)
				if err == nil {
					var schema genai.Schema
					if err := json.Unmarshal(raw, &schema); err == nil {
						fd.Parameters = &schema
					}
				}
			}
			fds = append(fds, fd)
		}
		config.Tools = []*genai.Tool{{FunctionDeclarations: fds}}
	}

	return config
}

// buildContents converts normalized contents into Gemini contents. Tool
// responses become function response parts under the user role; assistant
// turns are echoed under the model role with any tool call parts rebuilt.
func buildContents(req meshmodel.Request) []*genai.Content {
	var contents []*genai.Content
	for _, c := range req.Contents {
		switch c.Role {
		case "tool":
			for _, p := range c.Parts {
				fr, ok := p.(meshcore.FunctionResponsePart)
				if !ok {
					continue
				}
				contents = append(contents, &genai.Content{
					Role: "user",
					Parts: []*genai.Part{{
						FunctionResponse: &genai.FunctionResponse{
							ID:       fr.FunctionResponse.ID,
							Name:     fr.FunctionResponse.Name,
							Response: map[string]any{"result": fmt.Sprintf("%v", fr.FunctionResponse.Response)},
						},
					}},
				})
			}
		case "assistant":
			contents = appendTurn(contents, "model", c)
		default:
			contents = appendTurn(contents, "user", c)
		}
	}
	return contents
}

func appendTurn(contents []*genai.Content, role string, c meshcore.Content) []*genai.Content {
	var parts []*genai.Part
	for _, p := range c.Parts {
		switch part := p.(type) {
		case meshcore.TextPart:
			if part.Text != "" {
				parts = append(parts, &genai.Part{Text: part.Text})
			}
		case meshcore.FunctionCallPart:
			var args map[string]any
			_ = json.Unmarshal([]byte(part.FunctionCall.Arguments), &args)
			parts = append(parts, &genai.Part{
				FunctionCall: &genai.FunctionCall{
					ID:   part.FunctionCall.ID,
					Name: part.FunctionCall.Name,
					Args: args,
				},
			})
		}
	}
	if len(parts) == 0 {
		return contents
	}
	return append(contents, &genai.Content{Role: role, Parts: parts})
}

package llm

import (
	"context"
	"fmt"
	"sync"

	meshcore "github.com/hupe1980/agentmesh/core"
	meshmodel "github.com/hupe1980/agentmesh/model"
)

// MockChatModel is an in-memory chat-style handle for tests and examples.
// Canned responses are keyed by the text of the last user content; unknown
// inputs get a deterministic fallback. GenerateCalls reports how often the
// wrapped framework actually invoked the model.
type MockChatModel struct {
	info Info
	mesh *mockMeshModel
}

// NewMockChatModel creates a mock chat handle with the given model name.
func NewMockChatModel(name string) *MockChatModel {
	return &MockChatModel{
		info: Info{Name: name, Provider: "mock"},
		mesh: &mockMeshModel{name: name, responses: map[string]string{}},
	}
}

// AddResponse registers a canned completion for an input prompt.
func (m *MockChatModel) AddResponse(input, response string) {
	m.mesh.mu.Lock()
	defer m.mesh.mu.Unlock()
	m.mesh.responses[input] = response
}

// GenerateCalls returns the number of generations performed.
func (m *MockChatModel) GenerateCalls() int {
	m.mesh.mu.Lock()
	defer m.mesh.mu.Unlock()
	return m.mesh.calls
}

// Info implements Model.
func (m *MockChatModel) Info() Info { return m.info }

// MeshModel implements ChatModel.
func (m *MockChatModel) MeshModel() meshmodel.Model { return m.mesh }

type mockMeshModel struct {
	mu        sync.Mutex
	name      string
	responses map[string]string
	calls     int
}

func (m *mockMeshModel) Info() meshmodel.Info {
	return meshmodel.Info{Name: m.name, Provider: "mock", SupportsTools: true}
}

func (m *mockMeshModel) Generate(ctx context.Context, req meshmodel.Request) (<-chan meshmodel.Response, <-chan error) {
	out := make(chan meshmodel.Response, 1)
	errCh := make(chan error, 1)

	go func() {
		defer close(out)
		defer close(errCh)

		m.mu.Lock()
		m.calls++
		var input string
		if len(req.Contents) > 0 {
			last := req.Contents[len(req.Contents)-1]
			for _, p := range last.Parts {
				if tp, ok := p.(meshcore.TextPart); ok {
					input += tp.Text
				}
			}
		}
		full, ok := m.responses[input]
		m.mu.Unlock()
		if !ok {
			full = fmt.Sprintf("mock response to: %s", input)
		}

		select {
		case <-ctx.Done():
			errCh <- ctx.Err()
		case out <- meshmodel.Response{
			Content: meshcore.Content{
				Role:  "assistant",
				Parts: []meshcore.Part{meshcore.TextPart{Text: full}},
			},
			FinishReason: "stop",
		}:
		}
	}()

	return out, errCh
}

// MockCompletionModel is an in-memory completion-style handle for tests.
// It records every prompt it receives so tests can assert on the rendered
// prompt shape.
type MockCompletionModel struct {
	mu       sync.Mutex
	info     Info
	response string
	prompts  []string
	err      error
}

// NewMockCompletionModel creates a mock completion handle with the given
// model name.
func NewMockCompletionModel(name string) *MockCompletionModel {
	return &MockCompletionModel{info: Info{Name: name, Provider: "mock"}}
}

// SetResponse fixes the text returned by every Complete call.
func (m *MockCompletionModel) SetResponse(text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.response = text
}

// SetError makes every Complete call fail with err.
func (m *MockCompletionModel) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Prompts returns the prompts received so far.
func (m *MockCompletionModel) Prompts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.prompts))
	copy(out, m.prompts)
	return out
}

// Info implements Model.
func (m *MockCompletionModel) Info() Info { return m.info }

// Complete implements CompletionModel.
func (m *MockCompletionModel) Complete(_ context.Context, prompt string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prompts = append(m.prompts, prompt)
	if m.err != nil {
		return "", m.err
	}
	if m.response == "" {
		return "mock completion", nil
	}
	return m.response, nil
}

package llm

import (
	"context"

	meshmodel "github.com/hupe1980/agentmesh/model"
)

// Info contains metadata about a language-model handle.
type Info struct {
	Name     string `json:"name"`
	Provider string `json:"provider"` // "openai", "anthropic", "gemini", "ollama", ...
}

// Model is the minimal handle supplied to engine constructors. Concrete
// handles additionally satisfy ChatModel or CompletionModel; a handle that
// satisfies neither is rejected at engine construction time.
type Model interface {
	Info() Info
}

// ChatModel marks providers whose native surface is message-based chat with
// structured tool calling. MeshModel exposes the agentmesh binding the chat
// agent variant is built on.
type ChatModel interface {
	Model
	MeshModel() meshmodel.Model
}

// CompletionModel marks providers with a prompt-in / text-out surface. The
// completion agent variant wraps the handle in a CompletionAdapter that
// flattens the conversation into a single prompt.
type CompletionModel interface {
	Model
	Complete(ctx context.Context, prompt string) (string, error)
}

// IsChatModel reports whether the handle exposes the chat-style interface.
// Chat capability wins when a handle implements both.
func IsChatModel(m Model) bool {
	_, ok := m.(ChatModel)
	return ok
}

// IsCompletionModel reports whether the handle exposes the completion-style
// interface.
func IsCompletionModel(m Model) bool {
	_, ok := m.(CompletionModel)
	return ok
}

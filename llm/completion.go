package llm

import (
	"context"
	"fmt"
	"strings"

	meshcore "github.com/hupe1980/agentmesh/core"
	meshmodel "github.com/hupe1980/agentmesh/model"

	"github.com/chatmesh/chatmesh/core"
)

// CompletionAdapterOptions configures a CompletionAdapter.
type CompletionAdapterOptions struct {
	// PromptPrefix is prepended to every rendered prompt. When set it
	// replaces the instruction text supplied by the agent, mirroring how the
	// completion agent variant attaches its system prompt.
	PromptPrefix string
}

// CompletionAdapter bridges a CompletionModel into the agentmesh model
// interface. Each generation flattens the instructions and conversation into
// a single text prompt, calls Complete once and emits the result as a final
// assistant response. The adapter reports SupportsTools false since a plain
// completion surface cannot express structured function calls.
type CompletionAdapter struct {
	cm   CompletionModel
	opts CompletionAdapterOptions
}

// NewCompletionAdapter wraps a completion-style handle for use by agentmesh
// agents.
func NewCompletionAdapter(cm CompletionModel, optFns ...func(o *CompletionAdapterOptions)) *CompletionAdapter {
	opts := CompletionAdapterOptions{}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &CompletionAdapter{cm: cm, opts: opts}
}

// Info implements meshmodel.Model.
func (a *CompletionAdapter) Info() meshmodel.Info {
	info := a.cm.Info()
	return meshmodel.Info{
		Name:          info.Name,
		Provider:      info.Provider,
		SupportsTools: false,
	}
}

// Generate implements meshmodel.Model. Streaming requests degrade to a
// single final response; the completion surface has no incremental form.
func (a *CompletionAdapter) Generate(ctx context.Context, req meshmodel.Request) (<-chan meshmodel.Response, <-chan error) {
	out := make(chan meshmodel.Response, 1)
	errCh := make(chan error, 1)

	go func() {
		defer close(out)
		defer close(errCh)

		text, err := a.cm.Complete(ctx, a.buildPrompt(req))
		if err != nil {
			errCh <- fmt.Errorf("completion failed: %w", err)
			return
		}

		out <- meshmodel.Response{
			Content: meshcore.Content{
				Role:  string(core.RoleAssistant),
				Parts: []meshcore.Part{meshcore.TextPart{Text: strings.TrimSpace(text)}},
			},
			FinishReason: "stop",
		}
	}()

	return out, errCh
}

// buildPrompt renders the request into the flat prompt handed to Complete.
func (a *CompletionAdapter) buildPrompt(req meshmodel.Request) string {
	var sb strings.Builder

	prefix := a.opts.PromptPrefix
	if prefix == "" {
		prefix = req.Instructions
	}
	if prefix != "" {
		sb.WriteString(prefix)
		sb.WriteString("\n\n")
	}

	for _, c := range req.Contents {
		if m, ok := core.FromMeshContent(c); ok {
			sb.WriteString(m.String())
			sb.WriteString("\n")
		}
	}
	sb.WriteString(fmt.Sprintf("%s:", core.RoleAssistant))

	return sb.String()
}

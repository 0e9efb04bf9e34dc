package llm

import (
	"context"
	"errors"
	"testing"

	meshcore "github.com/hupe1980/agentmesh/core"
	meshmodel "github.com/hupe1980/agentmesh/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsChatModel(t *testing.T) {
	assert.True(t, IsChatModel(NewMockChatModel("chat")))
	assert.False(t, IsChatModel(NewMockCompletionModel("completion")))

	assert.True(t, IsCompletionModel(NewMockCompletionModel("completion")))
	assert.False(t, IsCompletionModel(NewMockChatModel("chat")))
}

func drainGenerate(t *testing.T, m meshmodel.Model, req meshmodel.Request) (string, error) {
	t.Helper()
	out, errCh := m.Generate(context.Background(), req)
	var text string
	for resp := range out {
		for _, p := range resp.Content.Parts {
			if tp, ok := p.(meshcore.TextPart); ok {
				text += tp.Text
			}
		}
	}
	return text, <-errCh
}

func userContent(text string) meshcore.Content {
	return meshcore.Content{Role: "user", Parts: []meshcore.Part{meshcore.TextPart{Text: text}}}
}

func TestCompletionAdapterGenerate(t *testing.T) {
	cm := NewMockCompletionModel("test-completion")
	cm.SetResponse("Paris.")

	adapter := NewCompletionAdapter(cm)
	text, err := drainGenerate(t, adapter, meshmodel.Request{
		Instructions: "Answer concisely.",
		Contents:     []meshcore.Content{userContent("Capital of France?")},
	})

	require.NoError(t, err)
	assert.Equal(t, "Paris.", text)

	prompts := cm.Prompts()
	require.Len(t, prompts, 1)
	assert.Contains(t, prompts[0], "Answer concisely.")
	assert.Contains(t, prompts[0], "user: Capital of France?")
	assert.Contains(t, prompts[0], "assistant:")
}

func TestCompletionAdapterPromptPrefixReplacesInstructions(t *testing.T) {
	cm := NewMockCompletionModel("test-completion")

	adapter := NewCompletionAdapter(cm, func(o *CompletionAdapterOptions) {
		o.PromptPrefix = "You are a pirate."
	})
	_, err := drainGenerate(t, adapter, meshmodel.Request{
		Instructions: "default instruction",
		Contents:     []meshcore.Content{userContent("hi")},
	})
	require.NoError(t, err)

	prompts := cm.Prompts()
	require.Len(t, prompts, 1)
	assert.Contains(t, prompts[0], "You are a pirate.")
	assert.NotContains(t, prompts[0], "default instruction")
}

func TestCompletionAdapterReportsNoToolSupport(t *testing.T) {
	adapter := NewCompletionAdapter(NewMockCompletionModel("test-completion"))
	assert.False(t, adapter.Info().SupportsTools)
}

func TestCompletionAdapterError(t *testing.T) {
	cm := NewMockCompletionModel("test-completion")
	cm.SetError(errors.New("backend down"))

	adapter := NewCompletionAdapter(cm)
	_, err := drainGenerate(t, adapter, meshmodel.Request{
		Contents: []meshcore.Content{userContent("hi")},
	})
	assert.ErrorContains(t, err, "backend down")
}

func TestMockChatModelGenerate(t *testing.T) {
	m := NewMockChatModel("test-chat")
	m.AddResponse("ping", "pong")

	text, err := drainGenerate(t, m.MeshModel(), meshmodel.Request{
		Contents: []meshcore.Content{userContent("ping")},
	})
	require.NoError(t, err)
	assert.Equal(t, "pong", text)
	assert.Equal(t, 1, m.GenerateCalls())
}

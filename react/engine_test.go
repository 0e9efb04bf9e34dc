package react

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chatmesh/chatmesh/core"
	"github.com/chatmesh/chatmesh/llm"
	"github.com/chatmesh/chatmesh/memory"
	"github.com/chatmesh/chatmesh/queryengine"
	"github.com/chatmesh/chatmesh/service"
	"github.com/chatmesh/chatmesh/tool"
)

// bareModel implements llm.Model without chat or completion capability.
type bareModel struct{}

func (bareModel) Info() llm.Info { return llm.Info{Name: "bare", Provider: "test"} }

func chatContext(model llm.Model) *service.Context {
	return service.NewContext(func(c *service.Context) { c.LLM = model })
}

func TestNewVariantSelection(t *testing.T) {
	chat, err := New(nil, llm.NewMockChatModel("chat"), nil)
	require.NoError(t, err)
	assert.Equal(t, chatAgentName, chat.agentName)

	completion, err := New(nil, llm.NewMockCompletionModel("completion"), nil)
	require.NoError(t, err)
	assert.Equal(t, completionAgentName, completion.agentName)
}

func TestNewUnsupportedModel(t *testing.T) {
	_, err := New(nil, bareModel{}, nil)
	assert.ErrorIs(t, err, ErrUnsupportedModel)
}

func TestNewPrefixMessagesRejected(t *testing.T) {
	_, err := New(nil, llm.NewMockChatModel("chat"), nil, func(o *Options) {
		o.PrefixMessages = []core.Message{core.NewSystemMessage("be brief")}
	})
	assert.ErrorIs(t, err, ErrPrefixMessagesNotSupported)
}

func TestFromDefaultsMemoryWithChatHistory(t *testing.T) {
	mem, err := memory.NewConversationBuffer()
	require.NoError(t, err)

	_, err = FromDefaults(chatContext(llm.NewMockChatModel("chat")), nil, func(o *Options) {
		o.Memory = mem
		o.ChatHistory = []core.Message{core.NewUserMessage("earlier")}
	})
	assert.ErrorIs(t, err, ErrMemoryWithChatHistory)
}

func TestFromDefaultsSeedsChatHistory(t *testing.T) {
	seed := []core.Message{
		core.NewUserMessage("earlier question"),
		core.NewAssistantMessage("earlier answer"),
	}

	engine, err := FromDefaults(chatContext(llm.NewMockChatModel("chat")), nil, func(o *Options) {
		o.ChatHistory = seed
	})
	require.NoError(t, err)

	history, err := engine.ChatHistory()
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, core.RoleUser, history[0].Role)
	assert.Equal(t, "earlier question", history[0].Content)
	assert.Equal(t, core.RoleAssistant, history[1].Role)
	assert.Equal(t, "earlier answer", history[1].Content)
}

func TestFromQueryEngine(t *testing.T) {
	engine, err := FromQueryEngine(chatContext(llm.NewMockChatModel("chat")), &queryengine.Static{Answer: "42"})
	require.NoError(t, err)

	require.Len(t, engine.tools, 1)
	assert.Equal(t, tool.DefaultName, engine.tools[0].Name())
}

func TestChatRejectsHistoryOverride(t *testing.T) {
	model := llm.NewMockChatModel("chat")

	engine, err := New(nil, model, nil)
	require.NoError(t, err)

	_, err = engine.Chat(context.Background(), "hello", []core.Message{})
	assert.ErrorIs(t, err, core.ErrChatHistoryOverride)

	_, _, err = engine.ChatAsync(context.Background(), "hello", []core.Message{core.NewUserMessage("x")})
	assert.ErrorIs(t, err, core.ErrChatHistoryOverride)

	assert.Zero(t, model.GenerateCalls())
}

func TestChat(t *testing.T) {
	model := llm.NewMockChatModel("chat")
	model.AddResponse("ping", "pong")

	engine, err := FromDefaults(chatContext(model), nil)
	require.NoError(t, err)

	resp, err := engine.Chat(context.Background(), "ping", nil)
	require.NoError(t, err)
	assert.Equal(t, "pong", resp.Response)
	assert.Empty(t, resp.Sources)
	assert.Equal(t, 1, model.GenerateCalls())

	history, err := engine.ChatHistory()
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, core.RoleUser, history[0].Role)
	assert.Equal(t, "ping", history[0].Content)
	assert.Equal(t, core.RoleAssistant, history[1].Role)
	assert.Equal(t, "pong", history[1].Content)
}

func TestChatAsync(t *testing.T) {
	model := llm.NewMockChatModel("chat")
	model.AddResponse("ping", "pong")

	engine, err := FromDefaults(chatContext(model), nil)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	respCh, errCh, err := engine.ChatAsync(ctx, "ping", nil)
	require.NoError(t, err)

	select {
	case resp := <-respCh:
		require.NotNil(t, resp)
		assert.Equal(t, "pong", resp.Response)
	case invErr := <-errCh:
		t.Fatalf("unexpected invocation error: %v", invErr)
	case <-ctx.Done():
		t.Fatal("timed out waiting for async response")
	}
}

func TestStreamChatNotSupported(t *testing.T) {
	engine, err := New(nil, llm.NewMockChatModel("chat"), nil)
	require.NoError(t, err)

	_, err = engine.StreamChat(context.Background(), "hello", nil)
	assert.ErrorIs(t, err, core.ErrStreamingNotSupported)

	_, err = engine.StreamChatAsync(context.Background(), "hello", nil)
	assert.ErrorIs(t, err, core.ErrStreamingNotSupported)
}

func TestReset(t *testing.T) {
	model := llm.NewMockChatModel("chat")

	engine, err := FromDefaults(chatContext(model), nil)
	require.NoError(t, err)

	_, err = engine.Chat(context.Background(), "remember this", nil)
	require.NoError(t, err)

	history, err := engine.ChatHistory()
	require.NoError(t, err)
	require.NotEmpty(t, history)

	oldAgent, oldMesh := engine.agent, engine.mesh

	require.NoError(t, engine.Reset())

	history, err = engine.ChatHistory()
	require.NoError(t, err)
	assert.Empty(t, history)

	assert.NotSame(t, oldAgent, engine.agent)
	assert.NotSame(t, oldMesh, engine.mesh)
}

func TestCompletionVariantPrompt(t *testing.T) {
	model := llm.NewMockCompletionModel("completion")
	model.SetResponse("a short answer")

	engine, err := New(nil, model, nil, func(o *Options) {
		o.SystemPrompt = "You are terse."
	})
	require.NoError(t, err)

	resp, err := engine.Chat(context.Background(), "hello there", nil)
	require.NoError(t, err)
	assert.Equal(t, "a short answer", resp.Response)

	prompts := model.Prompts()
	require.Len(t, prompts, 1)
	assert.True(t, strings.HasPrefix(prompts[0], "You are terse."))
	assert.Contains(t, prompts[0], "user: hello there")
	assert.True(t, strings.HasSuffix(prompts[0], "assistant:"))
}

func TestChatHistoryPersistsAcrossTurns(t *testing.T) {
	model := llm.NewMockChatModel("chat")
	model.AddResponse("first", "one")
	model.AddResponse("second", "two")

	engine, err := FromDefaults(chatContext(model), nil)
	require.NoError(t, err)

	_, err = engine.Chat(context.Background(), "first", nil)
	require.NoError(t, err)
	_, err = engine.Chat(context.Background(), "second", nil)
	require.NoError(t, err)

	history, err := engine.ChatHistory()
	require.NoError(t, err)
	require.Len(t, history, 4)
	assert.Equal(t, "first", history[0].Content)
	assert.Equal(t, "one", history[1].Content)
	assert.Equal(t, "second", history[2].Content)
	assert.Equal(t, "two", history[3].Content)
}

package tool

import (
	"context"
	"errors"
	"testing"

	"github.com/hupe1980/agentmesh/artifact"
	meshcore "github.com/hupe1980/agentmesh/core"
	"github.com/hupe1980/agentmesh/memory"
	"github.com/hupe1980/agentmesh/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chatmesh/chatmesh/queryengine"
)

func newToolContext(t *testing.T) *meshcore.ToolContext {
	t.Helper()
	emit := make(chan meshcore.Event, 16)
	runCtx := meshcore.NewRunContext(
		context.Background(),
		"session-test", "run-test",
		meshcore.AgentInfo{Name: "test-agent", Type: "model"},
		meshcore.Content{},
		0,
		emit,
		nil,
		meshcore.NewSession("session-test"),
		session.NewInMemoryStore(),
		artifact.NewInMemoryStore(),
		memory.NewInMemoryStore(),
		nil,
	)
	return meshcore.NewToolContext(runCtx, "fc-test")
}

func TestNewDefaults(t *testing.T) {
	qt := New(queryengine.Static{Answer: "42"})
	assert.Equal(t, DefaultName, qt.Name())
	assert.Equal(t, DefaultDescription, qt.Description())
}

func TestAsMeshToolCall(t *testing.T) {
	var gotQuery string
	engine := queryengine.Func(func(_ context.Context, query string) (*queryengine.Response, error) {
		gotQuery = query
		return &queryengine.Response{Response: "Paris is the capital."}, nil
	})

	mt := New(engine, func(o *Options) { o.Name = "geo" }).AsMeshTool()
	assert.Equal(t, "geo", mt.Name())

	result, err := mt.Call(newToolContext(t), map[string]any{"input": "capital of France?"})
	require.NoError(t, err)
	assert.Equal(t, "capital of France?", gotQuery)
	assert.Equal(t, "Paris is the capital.", result)
}

func TestAsMeshToolCallRejectsNonString(t *testing.T) {
	mt := New(queryengine.Static{Answer: "x"}).AsMeshTool()
	_, err := mt.Call(newToolContext(t), map[string]any{"input": 7})
	assert.Error(t, err)
}

func TestAsMeshToolCallPropagatesEngineError(t *testing.T) {
	engine := queryengine.Func(func(_ context.Context, _ string) (*queryengine.Response, error) {
		return nil, errors.New("index unavailable")
	})
	mt := New(engine).AsMeshTool()
	_, err := mt.Call(newToolContext(t), map[string]any{"input": "q"})
	assert.ErrorContains(t, err, "index unavailable")
}

func TestFormatObservationIncludesSources(t *testing.T) {
	engine := queryengine.Static{Answer: "x"}
	qt := New(engine, func(o *Options) { o.IncludeSources = true })

	obs := qt.formatObservation(&queryengine.Response{
		Response: "answer text",
		SourceNodes: []queryengine.SourceNode{
			{ID: "n1", Text: "chunk", Score: 0.9},
		},
	})
	assert.Contains(t, obs, "answer text")
	assert.Contains(t, obs, `"n1"`)
}

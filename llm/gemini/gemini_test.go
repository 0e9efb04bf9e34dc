package gemini

import (
	"testing"

	meshcore "github.com/hupe1980/agentmesh/core"
	meshmodel "github.com/hupe1980/agentmesh/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildContents(t *testing.T) {
	req := meshmodel.Request{
		Contents: []meshcore.Content{
			{Role: "user", Parts: []meshcore.Part{meshcore.TextPart{Text: "question"}}},
			{Role: "assistant", Parts: []meshcore.Part{
				meshcore.FunctionCallPart{FunctionCall: meshcore.FunctionCall{
					ID: "fc-1", Name: "query_engine_tool", Arguments: `{"input":"question"}`,
				}},
			}},
			{Role: "tool", Parts: []meshcore.Part{
				meshcore.FunctionResponsePart{FunctionResponse: meshcore.FunctionResponse{
					ID: "fc-1", Name: "query_engine_tool", Response: "observation",
				}},
			}},
		},
	}

	contents := buildContents(req)
	require.Len(t, contents, 3)

	assert.Equal(t, "user", contents[0].Role)
	assert.Equal(t, "question", contents[0].Parts[0].Text)

	assert.Equal(t, "model", contents[1].Role)
	require.NotNil(t, contents[1].Parts[0].FunctionCall)
	assert.Equal(t, "query_engine_tool", contents[1].Parts[0].FunctionCall.Name)
	assert.Equal(t, map[string]any{"input": "question"}, contents[1].Parts[0].FunctionCall.Args)

	assert.Equal(t, "user", contents[2].Role)
	require.NotNil(t, contents[2].Parts[0].FunctionResponse)
	assert.Equal(t, map[string]any{"result": "observation"}, contents[2].Parts[0].FunctionResponse.Response)
}

func TestBuildConfig(t *testing.T) {
	m := &Model{opts: Options{Model: "gemini-2.0-flash", Temperature: 0.2}}

	config := m.buildConfig(meshmodel.Request{
		Instructions: "Be brief.",
		Tools: []meshmodel.ToolDefinition{{
			Type: "function",
			Function: meshmodel.FunctionDefinition{
				Name:        "query_engine_tool",
				Description: "query a knowledge base",
				Parameters: map[string]any{
					"type": "object",
					"properties": map[string]any{
						"input": map[string]any{"type": "string"},
					},
					"required": []string{"input"},
				},
			},
		}},
	})

	require.NotNil(t, config.SystemInstruction)
	assert.Equal(t, "Be brief.", config.SystemInstruction.Parts[0].Text)

	require.Len(t, config.Tools, 1)
	require.Len(t, config.Tools[0].FunctionDeclarations, 1)
	fd := config.Tools[0].FunctionDeclarations[0]
	assert.Equal(t, "query_engine_tool", fd.Name)
	require.NotNil(t, fd.Parameters)
}

func TestMeshBindingInfo(t *testing.T) {
	m := &Model{opts: Options{Model: "gemini-2.0-flash"}}
	info := m.MeshModel().Info()
	assert.Equal(t, "gemini-2.0-flash", info.Name)
	assert.True(t, info.SupportsTools)
}

// Package tool adapts query engines to the tool-invocation protocol of the
// wrapped agent framework. A QueryEngineTool exposes a single natural
// language "input" argument and hands the query to the underlying engine.
package tool

import (
	"fmt"

	meshcore "github.com/hupe1980/agentmesh/core"
	meshtool "github.com/hupe1980/agentmesh/tool"
	jsoniter "github.com/json-iterator/go"

	"github.com/chatmesh/chatmesh/queryengine"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// DefaultName is used when no tool name is supplied.
	DefaultName = "query_engine_tool"
	// DefaultDescription is used when no tool description is supplied.
	DefaultDescription = "Useful for running a natural language query against a knowledge base and getting back a natural language response."
)

// Options configure a QueryEngineTool.
type Options struct {
	Name        string
	Description string
	// IncludeSources appends the retrieved source nodes to the observation
	// text handed back to the agent.
	IncludeSources bool
}

// QueryEngineTool wraps a QueryEngine for use by the wrapped agent
// framework's function calling protocol.
type QueryEngineTool struct {
	engine queryengine.QueryEngine
	opts   Options
}

// New creates a QueryEngineTool with defaulted name and description.
func New(engine queryengine.QueryEngine, optFns ...func(o *Options)) *QueryEngineTool {
	opts := Options{
		Name:        DefaultName,
		Description: DefaultDescription,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &QueryEngineTool{engine: engine, opts: opts}
}

// Name returns the tool name exposed to the agent.
func (t *QueryEngineTool) Name() string { return t.opts.Name }

// Description returns the tool description exposed to the agent.
func (t *QueryEngineTool) Description() string { return t.opts.Description }

// QueryEngine returns the wrapped engine.
func (t *QueryEngineTool) QueryEngine() queryengine.QueryEngine { return t.engine }

// AsMeshTool builds the agentmesh tool binding. The schema declares a single
// required "input" string; the implementation forwards it to the query
// engine under the invocation's context.
func (t *QueryEngineTool) AsMeshTool() meshtool.Tool {
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"input": map[string]any{
				"type":        "string",
				"description": "Natural language query to run against the knowledge base",
			},
		},
		"required": []string{"input"},
	}

	return meshtool.NewFunctionTool(
		t.opts.Name,
		t.opts.Description,
		schema,
		func(toolCtx *meshcore.ToolContext, args map[string]any) (any, error) {
			input, ok := args["input"].(string)
			if !ok {
				return nil, fmt.Errorf("input must be a string")
			}

			resp, err := t.engine.Query(toolCtx.Context(), input)
			if err != nil {
				return nil, fmt.Errorf("query engine %q: %w", t.opts.Name, err)
			}

			return t.formatObservation(resp), nil
		},
	)
}

// formatObservation renders the query response into the observation string
// returned to the agent.
func (t *QueryEngineTool) formatObservation(resp *queryengine.Response) string {
	if !t.opts.IncludeSources || len(resp.SourceNodes) == 0 {
		return resp.Response
	}
	sources, err := json.MarshalToString(resp.SourceNodes)
	if err != nil {
		return resp.Response
	}
	return fmt.Sprintf("%s\n\nSources: %s", resp.Response, sources)
}

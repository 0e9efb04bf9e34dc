// Package chatmesh provides conversational chat engines over query-engine
// tools, delegating all reasoning to the agentmesh framework. Most
// applications interact with this package by:
//  1. Implementing queryengine.QueryEngine over their knowledge source
//  2. Creating an engine via New() (optionally overriding the service context)
//  3. Chatting through Chat / ChatAsync and inspecting ChatHistory
//
// The façade delegates construction to react.FromQueryEngine while keeping
// setup ergonomics concise. Defaults are safe for local development; see the
// llm subpackages for the available model handles.
package chatmesh

import (
	"github.com/chatmesh/chatmesh/queryengine"
	"github.com/chatmesh/chatmesh/react"
	"github.com/chatmesh/chatmesh/service"
)

// Options configures the façade constructor.
type Options struct {
	// ServiceContext bundles the language model and logger. Defaults to
	// service.NewContext().
	ServiceContext *service.Context

	// SystemPrompt customizes the agent's instruction.
	SystemPrompt string

	// Verbose enables debug-level console logging.
	Verbose bool
}

// New builds a reason-and-act chat engine over a single query engine.
func New(engine queryengine.QueryEngine, optFns ...func(o *Options)) (*react.Engine, error) {
	opts := Options{}
	for _, fn := range optFns {
		fn(&opts)
	}

	return react.FromQueryEngine(opts.ServiceContext, engine, func(o *react.Options) {
		o.SystemPrompt = opts.SystemPrompt
		o.Verbose = opts.Verbose
	})
}

// Package service bundles the shared configuration chat engine factories
// accept: the language-model handle and the logger. Defaults are safe for
// local development (OpenAI handle configured from the environment, no-op
// logging).
package service

import (
	meshlogging "github.com/hupe1980/agentmesh/logging"

	"github.com/chatmesh/chatmesh/llm"
	"github.com/chatmesh/chatmesh/llm/openai"
)

// Context carries the service-level configuration handed to engine
// factories.
type Context struct {
	// LLM is the language-model handle.
	LLM llm.Model
	// Logger receives structured logs from the engine and the wrapped
	// framework.
	Logger meshlogging.Logger
}

// NewContext creates a Context with defaults for any unset field.
func NewContext(optFns ...func(c *Context)) *Context {
	c := &Context{}
	for _, fn := range optFns {
		fn(c)
	}
	if c.LLM == nil {
		c.LLM = openai.New()
	}
	if c.Logger == nil {
		c.Logger = meshlogging.NoOpLogger{}
	}
	return c
}

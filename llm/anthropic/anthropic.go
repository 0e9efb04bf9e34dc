// Package anthropic provides a chat-style language-model handle backed by
// the Anthropic Messages API via the agentmesh Anthropic model binding.
package anthropic

import (
	"github.com/anthropics/anthropic-sdk-go"
	meshanthropic "github.com/hupe1980/agentmesh/model/anthropic"
	meshmodel "github.com/hupe1980/agentmesh/model"

	"github.com/chatmesh/chatmesh/llm"
)

// Options configure the Anthropic handle.
type Options struct {
	Model       anthropic.Model
	Temperature float64
	MaxTokens   int64
	APIKey      string
	Client      *anthropic.Client
}

// Model is a chat-style handle over the Anthropic API.
type Model struct {
	mesh *meshanthropic.Model
	opts Options
}

var _ llm.ChatModel = (*Model)(nil)

// New creates an Anthropic handle. Without an explicit client or API key the
// SDK reads its configuration from the environment.
func New(optFns ...func(o *Options)) *Model {
	opts := Options{
		Model:       anthropic.ModelClaude3_5Sonnet20241022,
		Temperature: 0.7,
		MaxTokens:   4096,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	bind := func(o *meshanthropic.Options) {
		o.Model = opts.Model
		o.Temperature = opts.Temperature
		o.MaxTokens = opts.MaxTokens
		o.APIKey = opts.APIKey
	}

	var mesh *meshanthropic.Model
	if opts.Client != nil {
		mesh = meshanthropic.NewModelFromClient(opts.Client, bind)
	} else {
		mesh = meshanthropic.NewModel(bind)
	}

	return &Model{mesh: mesh, opts: opts}
}

// Info implements llm.Model.
func (m *Model) Info() llm.Info {
	return llm.Info{Name: string(m.opts.Model), Provider: "anthropic"}
}

// MeshModel implements llm.ChatModel.
func (m *Model) MeshModel() meshmodel.Model { return m.mesh }

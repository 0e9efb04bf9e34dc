// Package openai provides a chat-style language-model handle backed by the
// OpenAI Chat Completions API via the agentmesh OpenAI model binding.
package openai

import (
	meshopenai "github.com/hupe1980/agentmesh/model/openai"
	meshmodel "github.com/hupe1980/agentmesh/model"
	"github.com/openai/openai-go"

	"github.com/chatmesh/chatmesh/llm"
)

// Options configure the OpenAI handle. Fields mirror the underlying binding;
// Client overrides the default environment-configured SDK client.
type Options struct {
	Model               string
	Temperature         float64
	MaxCompletionTokens int64
	Client              *openai.Client
}

// Model is a chat-style handle over the OpenAI API.
type Model struct {
	mesh *meshopenai.Model
	opts Options
}

var _ llm.ChatModel = (*Model)(nil)

// New creates an OpenAI handle. Without an explicit client the SDK reads its
// configuration (API key, base URL) from the environment.
func New(optFns ...func(o *Options)) *Model {
	opts := Options{
		Model:               openai.ChatModelGPT4oMini,
		Temperature:         0.7,
		MaxCompletionTokens: 4096,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	bind := func(o *meshopenai.Options) {
		o.Model = opts.Model
		o.Temperature = opts.Temperature
		o.MaxCompletionTokens = opts.MaxCompletionTokens
	}

	var mesh *meshopenai.Model
	if opts.Client != nil {
		mesh = meshopenai.NewModelFromClient(opts.Client, bind)
	} else {
		mesh = meshopenai.NewModel(bind)
	}

	return &Model{mesh: mesh, opts: opts}
}

// Info implements llm.Model.
func (m *Model) Info() llm.Info {
	return llm.Info{Name: m.opts.Model, Provider: "openai"}
}

// MeshModel implements llm.ChatModel.
func (m *Model) MeshModel() meshmodel.Model { return m.mesh }

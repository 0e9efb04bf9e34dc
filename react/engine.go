package react

import (
	"context"
	"fmt"

	agentmesh "github.com/hupe1980/agentmesh"
	meshagent "github.com/hupe1980/agentmesh/agent"
	meshcore "github.com/hupe1980/agentmesh/core"
	meshlogging "github.com/hupe1980/agentmesh/logging"

	"github.com/chatmesh/chatmesh/core"
	"github.com/chatmesh/chatmesh/llm"
	"github.com/chatmesh/chatmesh/logging"
	"github.com/chatmesh/chatmesh/memory"
	"github.com/chatmesh/chatmesh/queryengine"
	"github.com/chatmesh/chatmesh/service"
	"github.com/chatmesh/chatmesh/tool"
)

// Agent names for the two construction variants. The name is part of the
// framework's default instruction, so the two variants stay distinguishable
// in logs and session events.
const (
	chatAgentName       = "chat_react_agent"
	completionAgentName = "react_agent"
)

// Options configure engine construction.
type Options struct {
	// Memory is the conversation buffer backing the engine. Mutually
	// exclusive with ChatHistory; when both are unset a fresh buffer is
	// created.
	Memory *memory.ConversationBuffer

	// ChatHistory seeds a fresh conversation buffer with prior turns.
	ChatHistory []core.Message

	// PrefixMessages is rejected at construction. The engine attaches a
	// single system prompt instead of a message prefix.
	PrefixMessages []core.Message

	// SystemPrompt is attached as the agent instruction (chat variant) or as
	// the completion adapter's prompt prefix (completion variant).
	SystemPrompt string

	// Verbose switches the default no-op logger for a debug-level console
	// logger. An explicitly supplied Logger always wins.
	Verbose bool

	// Logger receives structured logs from the engine and the wrapped
	// framework.
	Logger meshlogging.Logger
}

// Engine is a reason-and-act chat engine. It holds exactly one live agent at
// a time; Reset discards and reconstructs mesh and agent wholesale. All
// reasoning, tool invocation and session persistence happen inside the
// wrapped agentmesh engine.
type Engine struct {
	tools        []*tool.QueryEngineTool
	model        llm.Model
	memory       *memory.ConversationBuffer
	systemPrompt string
	logger       meshlogging.Logger

	mesh      *agentmesh.AgentMesh
	agent     *meshagent.ModelAgent
	agentName string
}

var _ core.ChatEngine = (*Engine)(nil)

// New creates an engine from tool wrappers, a language-model handle and an
// optional conversation buffer. The handle must be chat- or
// completion-capable; construction fails with ErrUnsupportedModel otherwise.
func New(tools []*tool.QueryEngineTool, model llm.Model, mem *memory.ConversationBuffer, optFns ...func(o *Options)) (*Engine, error) {
	opts := Options{}
	for _, fn := range optFns {
		fn(&opts)
	}

	if len(opts.PrefixMessages) > 0 {
		return nil, ErrPrefixMessagesNotSupported
	}

	if mem != nil && len(opts.ChatHistory) > 0 {
		return nil, ErrMemoryWithChatHistory
	}

	if mem == nil {
		var err error
		mem, err = memory.NewConversationBuffer(func(o *memory.Options) {
			o.InitialMessages = opts.ChatHistory
			o.ReturnMessages = llm.IsChatModel(model)
		})
		if err != nil {
			return nil, err
		}
	}

	logger := opts.Logger
	if logger == nil {
		logger = meshlogging.NoOpLogger{}
	}
	if _, noop := logger.(meshlogging.NoOpLogger); noop && opts.Verbose {
		logger = logging.NewVerbose()
	}

	e := &Engine{
		tools:        tools,
		model:        model,
		memory:       mem,
		systemPrompt: opts.SystemPrompt,
		logger:       logger,
	}

	if err := e.rebuild(); err != nil {
		return nil, err
	}

	return e, nil
}

// FromDefaults creates an engine from a service context, defaulting any
// unset piece. Memory and chat history are mutually exclusive; prefix
// messages are rejected.
func FromDefaults(svc *service.Context, tools []*tool.QueryEngineTool, optFns ...func(o *Options)) (*Engine, error) {
	opts := Options{}
	for _, fn := range optFns {
		fn(&opts)
	}

	if len(opts.PrefixMessages) > 0 {
		return nil, ErrPrefixMessagesNotSupported
	}

	if opts.Memory != nil && len(opts.ChatHistory) > 0 {
		return nil, ErrMemoryWithChatHistory
	}

	if svc == nil {
		svc = service.NewContext()
	}

	return New(tools, svc.LLM, opts.Memory, func(o *Options) {
		o.ChatHistory = opts.ChatHistory
		o.SystemPrompt = opts.SystemPrompt
		o.Verbose = opts.Verbose
		o.Logger = opts.Logger
		if o.Logger == nil {
			if _, noop := svc.Logger.(meshlogging.NoOpLogger); !noop {
				o.Logger = svc.Logger
			}
		}
	})
}

// FromQueryEngine wraps a single query engine in a default tool and builds an
// engine around it via FromDefaults.
func FromQueryEngine(svc *service.Context, engine queryengine.QueryEngine, optFns ...func(o *Options)) (*Engine, error) {
	return FromDefaults(svc, []*tool.QueryEngineTool{tool.New(engine)}, optFns...)
}

// Chat sends a user message and blocks until the wrapped agent produced its
// final response. A non-nil history override is rejected before any
// delegation; the engine's memory is the only conversation source.
func (e *Engine) Chat(ctx context.Context, message string, history []core.Message) (*core.Response, error) {
	if history != nil {
		return nil, core.ErrChatHistoryOverride
	}

	content := core.ToMeshContent(core.NewUserMessage(message))

	_, events, err := e.mesh.InvokeSync(ctx, e.memory.SessionID(), e.agentName, content)
	if err != nil {
		return nil, err
	}

	return buildResponse(events), nil
}

// ChatAsync sends a user message and returns channels carrying the final
// response and a terminal error. Both channels are closed when the
// invocation finishes; no concurrency beyond draining the framework's
// channels is introduced.
func (e *Engine) ChatAsync(ctx context.Context, message string, history []core.Message) (<-chan *core.Response, <-chan error, error) {
	if history != nil {
		return nil, nil, core.ErrChatHistoryOverride
	}

	content := core.ToMeshContent(core.NewUserMessage(message))

	_, eventCh, errCh, err := e.mesh.Invoke(ctx, e.memory.SessionID(), e.agentName, content)
	if err != nil {
		return nil, nil, err
	}

	out := make(chan *core.Response, 1)
	errOut := make(chan error, 1)

	go func() {
		defer close(out)
		defer close(errOut)

		var events []meshcore.Event

		for eventCh != nil || errCh != nil {
			select {
			case ev, ok := <-eventCh:
				if !ok {
					eventCh = nil
					continue
				}
				events = append(events, ev)

			case invErr, ok := <-errCh:
				if !ok {
					errCh = nil
					continue
				}
				if invErr != nil {
					errOut <- invErr
					return
				}

			case <-ctx.Done():
				errOut <- ctx.Err()
				return
			}
		}

		out <- buildResponse(events)
	}()

	return out, errOut, nil
}

// StreamChat always fails: the engine configures its agents without
// streaming and exposes no incremental surface.
func (e *Engine) StreamChat(_ context.Context, _ string, _ []core.Message) (*core.StreamResponse, error) {
	return nil, core.ErrStreamingNotSupported
}

// StreamChatAsync always fails, matching StreamChat.
func (e *Engine) StreamChatAsync(_ context.Context, _ string, _ []core.Message) (*core.StreamResponse, error) {
	return nil, core.ErrStreamingNotSupported
}

// Reset clears the conversation memory and reconstructs mesh and agent from
// scratch.
func (e *Engine) Reset() error {
	if err := e.memory.Clear(); err != nil {
		return err
	}

	return e.rebuild()
}

// ChatHistory returns the messages accumulated in the engine's memory.
func (e *Engine) ChatHistory() ([]core.Message, error) {
	return e.memory.Messages()
}

// Memory exposes the engine's conversation buffer.
func (e *Engine) Memory() *memory.ConversationBuffer { return e.memory }

// rebuild constructs a fresh mesh engine sharing the memory's session store
// and registers a fresh agent on it. The previous mesh and agent, if any,
// are dropped.
func (e *Engine) rebuild() error {
	agent, name, err := e.buildAgent()
	if err != nil {
		return err
	}

	mesh := agentmesh.New(func(o *agentmesh.Options) {
		o.SessionStore = e.memory.Store()
		o.Logger = e.logger
	})
	mesh.RegisterAgent(agent)

	e.mesh = mesh
	e.agent = agent
	e.agentName = name

	return nil
}

// buildAgent selects the agent variant by capability of the model handle.
// Chat-style handles get native function calling with the system prompt as
// the agent instruction; completion-style handles are bridged through the
// completion adapter with the system prompt as its prompt prefix and
// function calling disabled.
func (e *Engine) buildAgent() (*meshagent.ModelAgent, string, error) {
	var agent *meshagent.ModelAgent
	var name string

	switch m := e.model.(type) {
	case llm.ChatModel:
		name = chatAgentName
		agent = meshagent.NewModelAgent(name, m.MeshModel(), func(o *meshagent.ModelAgentOptions) {
			if e.systemPrompt != "" {
				o.Instruction = meshagent.NewInstructionFromText(e.systemPrompt)
			}
			o.EnableStreaming = false
			o.EnableFunctionCalling = true
			o.AllowTransfer = false
		})

	case llm.CompletionModel:
		name = completionAgentName
		adapter := llm.NewCompletionAdapter(m, func(o *llm.CompletionAdapterOptions) {
			o.PromptPrefix = e.systemPrompt
		})
		agent = meshagent.NewModelAgent(name, adapter, func(o *meshagent.ModelAgentOptions) {
			o.EnableStreaming = false
			o.EnableFunctionCalling = false
			o.AllowTransfer = false
		})

	default:
		return nil, "", ErrUnsupportedModel
	}

	for _, t := range e.tools {
		agent.RegisterTool(t.AsMeshTool())
	}

	return agent, name, nil
}

// buildResponse extracts the final assistant text and the tool outputs from
// an invocation's event trail. Function calls are paired with their
// responses by call id so each source carries its raw input.
func buildResponse(events []meshcore.Event) *core.Response {
	var final string
	var sources []core.ToolOutput

	inputs := make(map[string]string)

	for _, ev := range events {
		for _, fc := range ev.GetFunctionCalls() {
			inputs[fc.ID] = fc.Arguments
		}

		for _, fr := range ev.GetFunctionResponses() {
			out := core.ToolOutput{
				ToolName:  fr.Name,
				RawInput:  inputs[fr.ID],
				RawOutput: fr.Response,
			}
			if fr.Error != "" {
				out.Content = fr.Error
			} else {
				out.Content = fmt.Sprintf("%v", fr.Response)
			}
			sources = append(sources, out)
		}

		if !ev.IsFinalResponse() || ev.Content == nil {
			continue
		}
		if m, ok := core.FromMeshContent(*ev.Content); ok && m.Role == core.RoleAssistant {
			final = m.Content
		}
	}

	return &core.Response{Response: final, Sources: sources}
}

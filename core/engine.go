package core

import "context"

// ChatEngine is the conversational surface of chatmesh. Implementations hold
// a conversation memory and delegate reasoning to a wrapped agent framework.
//
// The history argument on the chat methods is a per-call override slot kept
// for interface symmetry; engines that manage their own memory reject a
// non-nil value with ErrChatHistoryOverride before touching the underlying
// agent.
type ChatEngine interface {
	// Chat sends a user message and blocks until the agent produced its
	// final response.
	Chat(ctx context.Context, message string, history []Message) (*Response, error)

	// ChatAsync sends a user message and returns channels carrying the final
	// response and a terminal error. Both channels are closed when the
	// underlying invocation finishes. Validation failures are reported via
	// the immediate error return.
	ChatAsync(ctx context.Context, message string, history []Message) (<-chan *Response, <-chan error, error)

	// StreamChat requests an incremental response.
	StreamChat(ctx context.Context, message string, history []Message) (*StreamResponse, error)

	// StreamChatAsync requests an incremental response asynchronously.
	StreamChatAsync(ctx context.Context, message string, history []Message) (*StreamResponse, error)

	// Reset clears the conversation memory and discards all agent state.
	Reset() error

	// ChatHistory returns the messages accumulated in the engine's memory.
	ChatHistory() ([]Message, error)
}

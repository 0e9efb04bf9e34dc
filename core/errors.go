package core

import "errors"

var (
	// ErrStreamingNotSupported is returned by the streaming chat entry points
	// of engines that only produce complete responses.
	ErrStreamingNotSupported = errors.New("streaming chat is not supported by this engine")

	// ErrChatHistoryOverride is returned when a per-call chat history is
	// supplied to an engine that manages its own conversation memory.
	ErrChatHistoryOverride = errors.New("per-call chat history is not supported; the engine manages its own memory")
)

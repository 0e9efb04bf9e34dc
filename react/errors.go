package react

import "errors"

var (
	// ErrMemoryWithChatHistory is returned when both a memory buffer and
	// initial chat history are supplied. The history must be seeded into the
	// buffer instead.
	ErrMemoryWithChatHistory = errors.New("react: memory and chat history cannot both be supplied, seed the history into the memory buffer")

	// ErrPrefixMessagesNotSupported is returned when prefix messages are
	// supplied. The engine carries a single system prompt instead.
	ErrPrefixMessagesNotSupported = errors.New("react: prefix messages are not supported, use a system prompt")

	// ErrUnsupportedModel is returned when the language model handle is
	// neither a chat model nor a completion model.
	ErrUnsupportedModel = errors.New("react: model must implement llm.ChatModel or llm.CompletionModel")
)

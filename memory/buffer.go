// Package memory holds conversation state for chat engines. The buffer does
// not store messages itself: it names a session inside an agentmesh session
// store, the same store the wrapped framework appends conversation events to
// during agent runs. Reading translates those events back into chatmesh
// messages; clearing recreates the session in place.
package memory

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	meshcore "github.com/hupe1980/agentmesh/core"
	"github.com/hupe1980/agentmesh/session"

	"github.com/chatmesh/chatmesh/core"
)

// Options configure a ConversationBuffer.
type Options struct {
	// Store is the framework session store backing the buffer. Defaults to a
	// fresh in-memory store.
	Store meshcore.SessionStore
	// SessionID names the conversation inside the store. Defaults to a new
	// UUID.
	SessionID string
	// InitialMessages seed the session with prior conversation turns.
	InitialMessages []core.Message
	// ReturnMessages marks the buffer for structured message consumption
	// (chat-style engines); when false the flattened Buffer form is intended
	// (completion-style engines).
	ReturnMessages bool
}

// ConversationBuffer tracks the turns of a single conversation owned by the
// wrapped framework.
type ConversationBuffer struct {
	store          meshcore.SessionStore
	sessionID      string
	returnMessages bool
}

// NewConversationBuffer creates a buffer, seeding any initial messages into
// the backing session.
func NewConversationBuffer(optFns ...func(o *Options)) (*ConversationBuffer, error) {
	opts := Options{}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Store == nil {
		opts.Store = session.NewInMemoryStore()
	}
	if opts.SessionID == "" {
		opts.SessionID = uuid.NewString()
	}

	b := &ConversationBuffer{
		store:          opts.Store,
		sessionID:      opts.SessionID,
		returnMessages: opts.ReturnMessages,
	}

	for _, m := range opts.InitialMessages {
		if err := b.store.AppendEvent(b.sessionID, core.ToMeshEvent(m)); err != nil {
			return nil, fmt.Errorf("seed message: %w", err)
		}
	}

	return b, nil
}

// Store returns the framework session store backing the buffer.
func (b *ConversationBuffer) Store() meshcore.SessionStore { return b.store }

// SessionID returns the conversation's session identifier.
func (b *ConversationBuffer) SessionID() string { return b.sessionID }

// ReturnMessages reports whether the buffer was built for structured message
// consumption.
func (b *ConversationBuffer) ReturnMessages() bool { return b.returnMessages }

// Messages returns the conversation translated into chatmesh messages.
func (b *ConversationBuffer) Messages() ([]core.Message, error) {
	sess, err := b.store.Get(b.sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session %q: %w", b.sessionID, err)
	}
	return core.FromMeshEvents(sess.GetEvents()), nil
}

// Buffer returns the conversation flattened into a single prompt string, one
// "role: content" line per turn.
func (b *ConversationBuffer) Buffer() (string, error) {
	messages, err := b.Messages()
	if err != nil {
		return "", err
	}
	lines := make([]string, 0, len(messages))
	for _, m := range messages {
		lines = append(lines, m.String())
	}
	return strings.Join(lines, "\n"), nil
}

// Append adds a message to the conversation.
func (b *ConversationBuffer) Append(m core.Message) error {
	if err := b.store.AppendEvent(b.sessionID, core.ToMeshEvent(m)); err != nil {
		return fmt.Errorf("append message: %w", err)
	}
	return nil
}

// Clear drops all conversation turns by recreating the session in place.
func (b *ConversationBuffer) Clear() error {
	if _, err := b.store.Create(b.sessionID); err != nil {
		return fmt.Errorf("clear session %q: %w", b.sessionID, err)
	}
	return nil
}

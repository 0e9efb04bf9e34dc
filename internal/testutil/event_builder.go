package testutil

import (
	"github.com/hupe1980/agentmesh/core"
)

// EventBuilder provides a fluent helper for constructing session events in
// tests. Example:
//
//	ev := NewEventBuilder().UserText("hello").Build()
//
// Chain only the parts you need; sensible defaults are applied.
type EventBuilder struct {
	author        string
	role          string
	textParts     []string
	metadata      map[string]any
	funcResponses []core.FunctionResponse
	partial       *bool
}

// NewEventBuilder creates a builder with default author "agent".
func NewEventBuilder() *EventBuilder { return &EventBuilder{author: "agent"} }

// Author sets the author name for the event (chainable).
func (b *EventBuilder) Author(a string) *EventBuilder { b.author = a; return b }

// Partial marks the event as a streaming fragment (chainable).
func (b *EventBuilder) Partial(p bool) *EventBuilder { b.partial = &p; return b }

// Metadata attaches metadata to the next text part (chainable).
func (b *EventBuilder) Metadata(md map[string]any) *EventBuilder { b.metadata = md; return b }

// SystemText appends a system role text part (chainable).
func (b *EventBuilder) SystemText(t string) *EventBuilder { return b.text("system", t) }

// UserText appends a user role text part (chainable).
func (b *EventBuilder) UserText(t string) *EventBuilder { return b.text("user", t) }

// AssistantText appends an assistant role text part (chainable).
func (b *EventBuilder) AssistantText(t string) *EventBuilder { return b.text("assistant", t) }

// ToolText appends a tool role text part (chainable).
func (b *EventBuilder) ToolText(t string) *EventBuilder { return b.text("tool", t) }

func (b *EventBuilder) text(role, t string) *EventBuilder {
	b.role = role
	b.textParts = append(b.textParts, t)
	return b
}

// FunctionResponse adds a function response part representing tool execution
// output (chainable).
func (b *EventBuilder) FunctionResponse(id, name string, result any, err error) *EventBuilder {
	fr := core.FunctionResponse{ID: id, Name: name, Response: result}
	if err != nil {
		fr.Error = err.Error()
	}
	b.funcResponses = append(b.funcResponses, fr)
	return b
}

// Build constructs the core.Event value.
func (b *EventBuilder) Build() core.Event {
	ev := core.NewEvent("", b.author)
	if b.partial != nil {
		ev.Partial = b.partial
	}

	parts := make([]core.Part, 0, len(b.textParts)+len(b.funcResponses))
	for _, t := range b.textParts {
		parts = append(parts, core.TextPart{Text: t, Metadata: b.metadata})
	}
	for _, fr := range b.funcResponses {
		parts = append(parts, core.FunctionResponsePart{FunctionResponse: fr})
	}

	if len(parts) > 0 {
		role := b.role
		if role == "" {
			role = "assistant"
		}
		ev.Content = &core.Content{Role: role, Parts: parts}
	}

	return ev
}

// Conversation builds an alternating user/assistant event history from pairs
// of turns. Odd indexes are assistant turns.
func Conversation(turns ...string) []core.Event {
	events := make([]core.Event, 0, len(turns))
	for i, t := range turns {
		b := NewEventBuilder()
		if i%2 == 0 {
			b.Author("user").UserText(t)
		} else {
			b.AssistantText(t)
		}
		events = append(events, b.Build())
	}
	return events
}

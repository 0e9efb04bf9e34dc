package core

import (
	"fmt"
	"strings"

	meshcore "github.com/hupe1980/agentmesh/core"
)

// Translation between chatmesh messages and the agentmesh content/event
// structures. The framework owns Content/Event; these helpers are the only
// place the two vocabularies meet, so a message must survive a round trip
// with role and content intact.

// ToMeshContent converts a message into agentmesh role-based content.
func ToMeshContent(m Message) meshcore.Content {
	return meshcore.Content{
		Role:  string(m.Role),
		Parts: []meshcore.Part{meshcore.TextPart{Text: m.Content, Metadata: m.Metadata}},
	}
}

// ToMeshEvent wraps a message into an agentmesh session event authored by
// its role, the shape the framework's session stores expect.
func ToMeshEvent(m Message) meshcore.Event {
	ev := meshcore.NewEvent("", string(m.Role))
	content := ToMeshContent(m)
	ev.Content = &content
	return ev
}

// FromMeshContent converts agentmesh content back into a message. The second
// return value is false when the content carries nothing renderable.
func FromMeshContent(c meshcore.Content) (Message, bool) {
	var sb strings.Builder
	var metadata map[string]any
	for _, p := range c.Parts {
		switch part := p.(type) {
		case meshcore.TextPart:
			sb.WriteString(part.Text)
			if metadata == nil {
				metadata = part.Metadata
			}
		case meshcore.FunctionResponsePart:
			fr := part.FunctionResponse
			if fr.Error != "" {
				fmt.Fprintf(&sb, "%s error: %s", fr.Name, fr.Error)
			} else {
				fmt.Fprintf(&sb, "%v", fr.Response)
			}
		}
	}
	if sb.Len() == 0 {
		return Message{}, false
	}
	return Message{Role: Role(c.Role), Content: sb.String(), Metadata: metadata}, true
}

// FromMeshEvents converts a session event history into messages, skipping
// partial streaming fragments and events without conversational content.
func FromMeshEvents(events []meshcore.Event) []Message {
	messages := make([]Message, 0, len(events))
	for _, ev := range events {
		if ev.Content == nil || ev.IsPartial() {
			continue
		}
		if m, ok := FromMeshContent(*ev.Content); ok {
			messages = append(messages, m)
		}
	}
	return messages
}

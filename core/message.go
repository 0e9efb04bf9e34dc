package core

import "fmt"

// Role identifies the conversational originator of a message.
type Role string

const (
	// RoleSystem marks system / instruction messages.
	RoleSystem Role = "system"
	// RoleUser marks end-user messages.
	RoleUser Role = "user"
	// RoleAssistant marks model-generated messages.
	RoleAssistant Role = "assistant"
	// RoleTool marks tool observation messages.
	RoleTool Role = "tool"
)

// Message is a single conversational turn. Metadata carries provider or
// engine specific extras that must survive translation untouched.
type Message struct {
	Role     Role           `json:"role"`
	Content  string         `json:"content"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// NewUserMessage creates a user-authored text message.
func NewUserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// NewAssistantMessage creates an assistant-authored text message.
func NewAssistantMessage(content string) Message {
	return Message{Role: RoleAssistant, Content: content}
}

// NewSystemMessage creates a system instruction message.
func NewSystemMessage(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}

// String renders the message in "role: content" form, the shape used when a
// conversation is flattened into a single completion prompt.
func (m Message) String() string {
	return fmt.Sprintf("%s: %s", m.Role, m.Content)
}

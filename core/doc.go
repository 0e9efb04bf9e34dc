// Package core defines the shared conversational types used across chatmesh:
// role-tagged messages, chat engine responses with their tool outputs, the
// ChatEngine interface every engine implementation satisfies, and the
// translation helpers that convert between chatmesh messages and the
// agentmesh Content/Event structures owned by the wrapped framework.
package core

// Package llm defines the language-model handles accepted by chatmesh
// engines. A handle is either chat-style (ChatModel, carrying a native
// agentmesh model binding) or completion-style (CompletionModel, a plain
// prompt-in / text-out surface bridged into agentmesh through
// CompletionAdapter). Engines pick their agent variant based on which
// capability interface the handle satisfies.
package llm

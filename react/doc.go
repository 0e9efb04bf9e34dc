// Package react implements a chat engine that delegates reasoning to an
// agentmesh reason-and-act agent over query-engine tools. The engine itself
// contains no reasoning: it assembles tool bindings, conversation memory and
// prompt configuration, hands them to the framework, and forwards chat calls
// to the resulting agent.
//
// Construction picks one of two agent variants based on the language-model
// handle. Chat-style handles get a function-calling agent with the system
// prompt attached as the agent instruction; completion-style handles get an
// agent over a prompt-flattening adapter with the system prompt attached as
// the adapter's prompt prefix.
package react

package core

// ToolOutput records a single tool invocation observed while the wrapped
// agent answered a chat message. RawOutput preserves the value returned by
// the tool before stringification.
type ToolOutput struct {
	ToolName  string `json:"tool_name"`
	Content   string `json:"content"`
	RawInput  string `json:"raw_input,omitempty"`
	RawOutput any    `json:"raw_output,omitempty"`
}

// Response is the result of a chat call: the final assistant text plus the
// tool outputs the agent gathered along the way.
type Response struct {
	Response string       `json:"response"`
	Sources  []ToolOutput `json:"sources,omitempty"`
}

// String returns the final assistant text.
func (r *Response) String() string { return r.Response }

// StreamResponse is the placeholder result type of the streaming chat
// surface. Engines that do not stream return ErrStreamingNotSupported
// instead of a value.
type StreamResponse struct {
	// Chunks yields incremental assistant text fragments.
	Chunks <-chan string
}

package core

// ToolCallResult is the outcome reported by a tool server for a single
// invocation. IsError is set by the tool server, never by this module.
type ToolCallResult struct {
	Content []Content `json:"content"`
	IsError *bool     `json:"isError,omitempty"`
}

// Failed reports whether the tool server flagged the result as an error.
func (r *ToolCallResult) Failed() bool {
	return r != nil && r.IsError != nil && *r.IsError
}

// Clone returns a shallow copy of the result with its own content slice.
// Content items are values and are safe to share.
func (r *ToolCallResult) Clone() *ToolCallResult {
	if r == nil {
		return nil
	}
	c := &ToolCallResult{Content: make([]Content, len(r.Content))}
	copy(c.Content, r.Content)
	if r.IsError != nil {
		c.IsError = Bool(*r.IsError)
	}
	return c
}

// NewTextResult is a convenience constructor for a single text item result.
func NewTextResult(text string) *ToolCallResult {
	return &ToolCallResult{Content: []Content{TextContent{Text: text}}}
}

// ReadResourceResult is the response of a resource read.
type ReadResourceResult struct {
	Contents []ResourceContents `json:"contents"`
}

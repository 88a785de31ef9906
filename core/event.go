package core

import (
	"encoding/json"

	"github.com/google/uuid"
)

// EventMsg is the closed set of lifecycle notifications emitted for a tool
// call: ToolCallBeginEvent and ToolCallEndEvent.
type EventMsg interface{ isEventMsg() }

// ToolCallBeginEvent announces that a tool call is about to be dispatched.
// Arguments is nil when the call carries no arguments.
type ToolCallBeginEvent struct {
	CallID    string          `json:"call_id"`
	Server    string          `json:"server"`
	Tool      string          `json:"tool"`
	Arguments json.RawMessage `json:"arguments,omitempty"`
}

func (ToolCallBeginEvent) isEventMsg() {}

// ToolCallEndEvent reports the outcome of a dispatched tool call. The result
// may have been enriched (e.g. an image resource inlined) and can therefore
// differ from the value returned to the calling transcript.
type ToolCallEndEvent struct {
	CallID string  `json:"call_id"`
	Result Outcome `json:"result"`
}

func (ToolCallEndEvent) isEventMsg() {}

// Event addresses a lifecycle message to the event stream identified by ID
// (the submission / subscription id that owns the call).
type Event struct {
	ID  string   `json:"id"`
	Msg EventMsg `json:"msg"`
}

// NewID generates a new unique identifier for subscriptions and calls.
func NewID() string { return uuid.NewString() }

// CallID returns the call id carried by the event message, or "".
func (e Event) CallID() string {
	switch m := e.Msg.(type) {
	case ToolCallBeginEvent:
		return m.CallID
	case ToolCallEndEvent:
		return m.CallID
	default:
		return ""
	}
}

// IsBegin reports whether the event is a Begin notification.
func (e Event) IsBegin() bool {
	_, ok := e.Msg.(ToolCallBeginEvent)
	return ok
}

// IsEnd reports whether the event is an End notification.
func (e Event) IsEnd() bool {
	_, ok := e.Msg.(ToolCallEndEvent)
	return ok
}

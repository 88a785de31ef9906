package core

import (
	"encoding/json"
	"fmt"
)

// Outcome wraps either a tool result or an error string. Only outcomes built
// with Ok succeed; the zero Outcome is a failure.
type Outcome struct {
	Result *ToolCallResult
	Err    string
	ok     bool
}

// Ok builds a successful outcome.
func Ok(result *ToolCallResult) Outcome { return Outcome{Result: result, ok: true} }

// Failed builds a failed outcome carrying msg.
func Failed(msg string) Outcome { return Outcome{Err: msg} }

// IsOk reports whether the outcome carries a result.
func (o Outcome) IsOk() bool { return o.ok }

// MarshalJSON encodes the outcome as {"Ok": result} or {"Err": message}.
func (o Outcome) MarshalJSON() ([]byte, error) {
	if o.IsOk() {
		return json.Marshal(struct {
			Ok *ToolCallResult `json:"Ok"`
		}{o.Result})
	}
	return json.Marshal(struct {
		Err string `json:"Err"`
	}{o.Err})
}

// ResponseItem is the closed set of values handed back to the calling
// transcript after a dispatch: FunctionCallOutput or ToolCallOutput.
type ResponseItem interface {
	isResponseItem()
	// ResponseCallID returns the id of the call this item answers.
	ResponseCallID() string
}

// FunctionCallOutputPayload is the model-facing payload of a function call.
type FunctionCallOutputPayload struct {
	Content string `json:"content"`
	Success *bool  `json:"success,omitempty"`
}

// FunctionCallOutput answers a call with a plain payload. The dispatcher
// returns it when the call never reached a tool server.
type FunctionCallOutput struct {
	CallID string                    `json:"call_id"`
	Output FunctionCallOutputPayload `json:"output"`
}

func (FunctionCallOutput) isResponseItem() {}

// ResponseCallID implements ResponseItem.
func (f FunctionCallOutput) ResponseCallID() string { return f.CallID }

// ToolCallOutput answers a call that was dispatched to a tool server. Result
// carries the original, unenriched tool result or the invocation error.
type ToolCallOutput struct {
	CallID string  `json:"call_id"`
	Result Outcome `json:"result"`
}

func (ToolCallOutput) isResponseItem() {}

// ResponseCallID implements ResponseItem.
func (t ToolCallOutput) ResponseCallID() string { return t.CallID }

// ErrorOutput builds the failure payload used for input errors.
func ErrorOutput(callID string, err error) FunctionCallOutput {
	return FunctionCallOutput{
		CallID: callID,
		Output: FunctionCallOutputPayload{
			Content: fmt.Sprintf("err: %s", err),
			Success: Bool(false),
		},
	}
}

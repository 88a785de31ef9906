// Package transcript converts dispatch responses into the payload a model
// sees for a completed function call. Provider specific renderings live in
// the anthropic and openai sub-packages.
package transcript

import (
	"encoding/json"
	"fmt"

	"github.com/hupe1980/mcpcall/core"
)

// Normalize flattens a response item into a FunctionCallOutput. A tool result
// is encoded as JSON with success mirroring the tool's is_error flag; an
// invocation error becomes "err: <message>" with success=false.
func Normalize(item core.ResponseItem) core.FunctionCallOutput {
	switch it := item.(type) {
	case core.FunctionCallOutput:
		return it
	case core.ToolCallOutput:
		if !it.Result.IsOk() {
			return failure(it.CallID, it.Result.Err)
		}
		if it.Result.Result == nil {
			return failure(it.CallID, "tool call returned no result")
		}
		data, err := json.Marshal(it.Result.Result)
		if err != nil {
			return failure(it.CallID, fmt.Sprintf("failed to serialize tool result: %v", err))
		}
		return core.FunctionCallOutput{
			CallID: it.CallID,
			Output: core.FunctionCallOutputPayload{
				Content: string(data),
				Success: core.Bool(!it.Result.Result.Failed()),
			},
		}
	default:
		return failure(responseCallID(item), fmt.Sprintf("unsupported response item %T", item))
	}
}

// Succeeded reports whether the normalized payload marks success. A missing
// success marker counts as success.
func Succeeded(out core.FunctionCallOutput) bool {
	return out.Output.Success == nil || *out.Output.Success
}

// Images returns the inline images of a successful tool call output.
func Images(item core.ResponseItem) []core.ImageContent {
	it, ok := item.(core.ToolCallOutput)
	if !ok || !it.Result.IsOk() || it.Result.Result == nil {
		return nil
	}
	var images []core.ImageContent
	for _, c := range it.Result.Result.Content {
		if img, ok := c.(core.ImageContent); ok {
			images = append(images, img)
		}
	}
	return images
}

// DataURL renders an inline image as a data URL.
func DataURL(img core.ImageContent) string {
	return fmt.Sprintf("data:%s;base64,%s", img.MIMEType, img.Data)
}

func failure(callID, msg string) core.FunctionCallOutput {
	return core.FunctionCallOutput{
		CallID: callID,
		Output: core.FunctionCallOutputPayload{
			Content: "err: " + msg,
			Success: core.Bool(false),
		},
	}
}

func responseCallID(item core.ResponseItem) string {
	if item == nil {
		return ""
	}
	return item.ResponseCallID()
}

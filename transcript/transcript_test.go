package transcript

import (
	"strings"
	"testing"

	"github.com/hupe1980/mcpcall/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_FunctionCallOutputPassesThrough(t *testing.T) {
	in := core.FunctionCallOutput{CallID: "c", Output: core.FunctionCallOutputPayload{Content: "err: bad", Success: core.Bool(false)}}
	assert.Equal(t, in, Normalize(in))
}

func TestNormalize_ToolResult(t *testing.T) {
	item := core.ToolCallOutput{CallID: "c", Result: core.Ok(core.NewTextResult("hi"))}

	out := Normalize(item)

	assert.Equal(t, "c", out.CallID)
	assert.JSONEq(t, `{"content":[{"type":"text","text":"hi"}]}`, out.Output.Content)
	assert.True(t, Succeeded(out))
}

func TestNormalize_ToolReportedError(t *testing.T) {
	res := core.NewTextResult("file missing")
	res.IsError = core.Bool(true)

	out := Normalize(core.ToolCallOutput{CallID: "c", Result: core.Ok(res)})

	assert.False(t, Succeeded(out))
	assert.Contains(t, out.Output.Content, "file missing")
}

func TestNormalize_InvocationError(t *testing.T) {
	out := Normalize(core.ToolCallOutput{CallID: "c", Result: core.Failed("tool call error: timeout")})

	assert.Equal(t, "err: tool call error: timeout", out.Output.Content)
	assert.False(t, Succeeded(out))
}

func TestNormalize_EmptyOutcomesFail(t *testing.T) {
	for _, res := range []core.Outcome{core.Failed(""), {}, core.Ok(nil)} {
		out := Normalize(core.ToolCallOutput{CallID: "c", Result: res})
		assert.False(t, Succeeded(out))
		assert.True(t, strings.HasPrefix(out.Output.Content, "err: "), out.Output.Content)
	}
}

func TestNormalize_Nil(t *testing.T) {
	out := Normalize(nil)
	assert.Equal(t, "", out.CallID)
	assert.False(t, Succeeded(out))
}

func TestImages(t *testing.T) {
	res := &core.ToolCallResult{Content: []core.Content{
		core.TextContent{Text: "caption"},
		core.ImageContent{Data: "QkJC", MIMEType: "image/png"},
	}}

	imgs := Images(core.ToolCallOutput{CallID: "c", Result: core.Ok(res)})
	require.Len(t, imgs, 1)
	assert.Equal(t, "data:image/png;base64,QkJC", DataURL(imgs[0]))

	assert.Nil(t, Images(core.ToolCallOutput{CallID: "c", Result: core.Failed("x")}))
	assert.Nil(t, Images(core.FunctionCallOutput{CallID: "c"}))
}

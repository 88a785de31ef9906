// Package anthropic renders dispatch responses as Anthropic Messages API
// tool_result blocks.
package anthropic

import (
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"

	"github.com/hupe1980/mcpcall/core"
	"github.com/hupe1980/mcpcall/transcript"
)

// supportedImageTypes lists the media types accepted in base64 image blocks.
var supportedImageTypes = map[string]anthropic.Base64ImageSourceMediaType{
	"image/jpeg": anthropic.Base64ImageSourceMediaTypeImageJPEG,
	"image/png":  anthropic.Base64ImageSourceMediaTypeImagePNG,
	"image/gif":  anthropic.Base64ImageSourceMediaTypeImageGIF,
	"image/webp": anthropic.Base64ImageSourceMediaTypeImageWebP,
}

// ToolResultBlock converts a response item into a tool_result content block
// answering the tool_use block with the same id.
func ToolResultBlock(item core.ResponseItem) anthropic.ContentBlockParamUnion {
	out := transcript.Normalize(item)

	block := anthropic.ToolResultBlockParam{
		ToolUseID: out.CallID,
		IsError:   anthropic.Bool(!transcript.Succeeded(out)),
	}

	if tc, ok := item.(core.ToolCallOutput); ok && tc.Result.IsOk() && tc.Result.Result != nil {
		block.Content = buildContent(tc.Result.Result.Content)
	}
	if len(block.Content) == 0 {
		block.Content = []anthropic.ToolResultBlockParamContentUnion{textBlock(out.Output.Content)}
	}

	return anthropic.ContentBlockParamUnion{OfToolResult: &block}
}

// ToolResultMessage wraps the tool_result blocks of items in a single user message.
func ToolResultMessage(items ...core.ResponseItem) anthropic.MessageParam {
	blocks := make([]anthropic.ContentBlockParamUnion, 0, len(items))
	for _, it := range items {
		blocks = append(blocks, ToolResultBlock(it))
	}
	return anthropic.NewUserMessage(blocks...)
}

// buildContent maps tool content items; resources without inline text are
// referenced by URI.
func buildContent(items []core.Content) []anthropic.ToolResultBlockParamContentUnion {
	content := make([]anthropic.ToolResultBlockParamContentUnion, 0, len(items))
	for _, c := range items {
		switch v := c.(type) {
		case core.TextContent:
			if v.Text != "" {
				content = append(content, textBlock(v.Text))
			}
		case core.ImageContent:
			mediaType, ok := supportedImageTypes[v.MIMEType]
			if !ok {
				content = append(content, textBlock(fmt.Sprintf("[image: unsupported type %s]", v.MIMEType)))
				continue
			}
			content = append(content, anthropic.ToolResultBlockParamContentUnion{
				OfImage: &anthropic.ImageBlockParam{
					Source: anthropic.ImageBlockParamSourceUnion{
						OfBase64: &anthropic.Base64ImageSourceParam{
							Data:      v.Data,
							MediaType: mediaType,
						},
					},
				},
			})
		case core.EmbeddedResource:
			switch r := v.Resource.(type) {
			case core.TextResourceContents:
				content = append(content, textBlock(r.Text))
			case core.BlobResourceContents:
				content = append(content, textBlock(fmt.Sprintf("[resource: %s]", r.URI)))
			}
		}
	}
	return content
}

func textBlock(text string) anthropic.ToolResultBlockParamContentUnion {
	return anthropic.ToolResultBlockParamContentUnion{OfText: &anthropic.TextBlockParam{Text: text}}
}

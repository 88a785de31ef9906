// Package openai renders dispatch responses as OpenAI Chat Completions
// messages. Tool messages only carry text, so inline images of a tool result
// are attached as a follow-up user message with image parts.
package openai

import (
	"github.com/openai/openai-go"

	"github.com/hupe1980/mcpcall/core"
	"github.com/hupe1980/mcpcall/transcript"
)

// Messages converts a response item into the tool message answering the
// call, followed by a user message carrying its images (if any).
func Messages(item core.ResponseItem) []openai.ChatCompletionMessageParamUnion {
	out := transcript.Normalize(item)
	messages := []openai.ChatCompletionMessageParamUnion{
		openai.ToolMessage(out.Output.Content, out.CallID),
	}

	images := transcript.Images(item)
	if len(images) == 0 {
		return messages
	}

	parts := make([]openai.ChatCompletionContentPartUnionParam, 0, len(images)+1)
	parts = append(parts, openai.TextContentPart("Images returned by tool call "+out.CallID+":"))
	for _, img := range images {
		parts = append(parts, openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{
			URL: transcript.DataURL(img),
		}))
	}
	return append(messages, openai.UserMessage(parts))
}

package mcp

import (
	"encoding/base64"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hupe1980/mcpcall/core"
)

// toToolCallResult converts an SDK tool result into the closed core content set.
// Resource links become embedded blob references so they can be inlined later.
func toToolCallResult(res *mcpsdk.CallToolResult) *core.ToolCallResult {
	if res == nil {
		return &core.ToolCallResult{Content: []core.Content{}}
	}
	out := &core.ToolCallResult{Content: make([]core.Content, 0, len(res.Content))}
	for _, c := range res.Content {
		if item, ok := toContent(c); ok {
			out.Content = append(out.Content, item)
		}
	}
	out.IsError = core.Bool(res.IsError)
	return out
}

func toContent(c mcpsdk.Content) (core.Content, bool) {
	switch v := c.(type) {
	case *mcpsdk.TextContent:
		return core.TextContent{Text: v.Text, Annotations: toAnnotations(v.Annotations)}, true
	case *mcpsdk.ImageContent:
		return core.ImageContent{
			Data:        base64.StdEncoding.EncodeToString(v.Data),
			MIMEType:    v.MIMEType,
			Annotations: toAnnotations(v.Annotations),
		}, true
	case *mcpsdk.EmbeddedResource:
		if v.Resource == nil {
			return nil, false
		}
		return core.EmbeddedResource{
			Resource:    toResourceContents(v.Resource),
			Annotations: toAnnotations(v.Annotations),
		}, true
	case *mcpsdk.ResourceLink:
		blob := core.BlobResourceContents{URI: v.URI}
		if v.MIMEType != "" {
			blob.MIMEType = core.String(v.MIMEType)
		}
		return core.EmbeddedResource{Resource: blob, Annotations: toAnnotations(v.Annotations)}, true
	case *mcpsdk.AudioContent:
		return core.TextContent{
			Text:        fmt.Sprintf("[audio content: %s, %d bytes]", v.MIMEType, len(v.Data)),
			Annotations: toAnnotations(v.Annotations),
		}, true
	default:
		return nil, false
	}
}

// toResourceContents maps SDK resource contents; a non-nil Blob marks binary content.
func toResourceContents(r *mcpsdk.ResourceContents) core.ResourceContents {
	var mimeType *string
	if r.MIMEType != "" {
		mimeType = core.String(r.MIMEType)
	}
	if r.Blob != nil {
		return core.BlobResourceContents{
			URI:      r.URI,
			MIMEType: mimeType,
			Blob:     base64.StdEncoding.EncodeToString(r.Blob),
		}
	}
	return core.TextResourceContents{URI: r.URI, MIMEType: mimeType, Text: r.Text}
}

func toReadResourceResult(res *mcpsdk.ReadResourceResult) *core.ReadResourceResult {
	out := &core.ReadResourceResult{}
	if res == nil {
		return out
	}
	out.Contents = make([]core.ResourceContents, 0, len(res.Contents))
	for _, c := range res.Contents {
		if c == nil {
			continue
		}
		out.Contents = append(out.Contents, toResourceContents(c))
	}
	return out
}

func toAnnotations(a *mcpsdk.Annotations) *core.Annotations {
	if a == nil {
		return nil
	}
	out := &core.Annotations{LastModified: a.LastModified}
	for _, r := range a.Audience {
		out.Audience = append(out.Audience, core.Role(r))
	}
	if a.Priority != 0 {
		p := a.Priority
		out.Priority = &p
	}
	return out
}

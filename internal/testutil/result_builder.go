package testutil

import "github.com/hupe1980/mcpcall/core"

// ResultBuilder provides a fluent helper for constructing tool results in tests.
// Example:
//
//	res := NewResultBuilder().ImageBlob("file:///a.png", "image/png").IsError(false).Build()
type ResultBuilder struct {
	content []core.Content
	isError *bool
}

// NewResultBuilder creates an empty builder.
func NewResultBuilder() *ResultBuilder { return &ResultBuilder{} }

// Text appends a text item (chainable).
func (b *ResultBuilder) Text(t string) *ResultBuilder {
	b.content = append(b.content, core.TextContent{Text: t})
	return b
}

// Image appends an inline image item (chainable).
func (b *ResultBuilder) Image(data, mimeType string) *ResultBuilder {
	b.content = append(b.content, core.ImageContent{Data: data, MIMEType: mimeType})
	return b
}

// Blob appends an embedded blob resource reference; an empty mimeType leaves
// the declared MIME type unset (chainable).
func (b *ResultBuilder) Blob(uri, mimeType string, ann *core.Annotations) *ResultBuilder {
	blob := core.BlobResourceContents{URI: uri}
	if mimeType != "" {
		blob.MIMEType = core.String(mimeType)
	}
	b.content = append(b.content, core.EmbeddedResource{Resource: blob, Annotations: ann})
	return b
}

// ImageBlob appends an embedded image blob reference without annotations (chainable).
func (b *ResultBuilder) ImageBlob(uri, mimeType string) *ResultBuilder {
	return b.Blob(uri, mimeType, nil)
}

// TextResource appends an embedded inline text resource (chainable).
func (b *ResultBuilder) TextResource(uri, mimeType, text string) *ResultBuilder {
	res := core.TextResourceContents{URI: uri, Text: text}
	if mimeType != "" {
		res.MIMEType = core.String(mimeType)
	}
	b.content = append(b.content, core.EmbeddedResource{Resource: res})
	return b
}

// IsError sets the tool-reported error flag (chainable).
func (b *ResultBuilder) IsError(v bool) *ResultBuilder { b.isError = &v; return b }

// Build constructs the result.
func (b *ResultBuilder) Build() *core.ToolCallResult {
	res := &core.ToolCallResult{Content: append([]core.Content{}, b.content...)}
	if b.isError != nil {
		res.IsError = core.Bool(*b.isError)
	}
	return res
}

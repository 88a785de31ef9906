package core

import (
	"encoding/json"
	"strings"
)

// Content represents a single item of a tool call result. Concrete content
// types implement the unexported isContent marker enabling a closed set:
// TextContent, ImageContent and EmbeddedResource.
type Content interface{ isContent() }

// Role identifies the intended audience of an annotated content item.
type Role string

const (
	// RoleUser marks content intended for the end user.
	RoleUser Role = "user"
	// RoleAssistant marks content intended for the model.
	RoleAssistant Role = "assistant"
)

// Annotations are optional producer hints attached to a content item.
type Annotations struct {
	Audience     []Role   `json:"audience,omitempty"`
	Priority     *float64 `json:"priority,omitempty"`
	LastModified string   `json:"lastModified,omitempty"`
}

// Clone returns a deep copy of the annotations (nil safe).
func (a *Annotations) Clone() *Annotations {
	if a == nil {
		return nil
	}
	c := *a
	if a.Audience != nil {
		c.Audience = append([]Role(nil), a.Audience...)
	}
	if a.Priority != nil {
		p := *a.Priority
		c.Priority = &p
	}
	return &c
}

// TextContent is a plain text item.
type TextContent struct {
	Text        string
	Annotations *Annotations
}

// isContent implements the Content interface for TextContent.
func (TextContent) isContent() {}

// MarshalJSON encodes the item in MCP wire shape.
func (c TextContent) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type        string       `json:"type"`
		Text        string       `json:"text"`
		Annotations *Annotations `json:"annotations,omitempty"`
	}{"text", c.Text, c.Annotations})
}

// ImageContent is an inline image. Data holds the base64 encoded bytes.
type ImageContent struct {
	Data        string
	MIMEType    string
	Annotations *Annotations
}

// isContent implements the Content interface for ImageContent.
func (ImageContent) isContent() {}

// MarshalJSON encodes the item in MCP wire shape.
func (c ImageContent) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type        string       `json:"type"`
		Data        string       `json:"data"`
		MIMEType    string       `json:"mimeType"`
		Annotations *Annotations `json:"annotations,omitempty"`
	}{"image", c.Data, c.MIMEType, c.Annotations})
}

// EmbeddedResource references a resource either inline (text) or as a blob.
type EmbeddedResource struct {
	Resource    ResourceContents
	Annotations *Annotations
}

// isContent implements the Content interface for EmbeddedResource.
func (EmbeddedResource) isContent() {}

// MarshalJSON encodes the item in MCP wire shape.
func (c EmbeddedResource) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type        string           `json:"type"`
		Resource    ResourceContents `json:"resource"`
		Annotations *Annotations     `json:"annotations,omitempty"`
	}{"resource", c.Resource, c.Annotations})
}

// ResourceContents is the closed set of resource payloads:
// TextResourceContents and BlobResourceContents.
type ResourceContents interface {
	isResourceContents()
	// ResourceURI returns the URI identifying the resource.
	ResourceURI() string
}

// TextResourceContents carries a resource inline as text.
type TextResourceContents struct {
	URI      string  `json:"uri"`
	MIMEType *string `json:"mimeType,omitempty"`
	Text     string  `json:"text"`
}

func (TextResourceContents) isResourceContents() {}

// ResourceURI implements ResourceContents.
func (r TextResourceContents) ResourceURI() string { return r.URI }

// BlobResourceContents references binary resource content. Blob holds the
// base64 encoded bytes when the content has been read; in a tool result it
// is commonly empty and the URI must be resolved through a resource read.
type BlobResourceContents struct {
	URI      string  `json:"uri"`
	MIMEType *string `json:"mimeType,omitempty"`
	Blob     string  `json:"blob"`
}

func (BlobResourceContents) isResourceContents() {}

// ResourceURI implements ResourceContents.
func (r BlobResourceContents) ResourceURI() string { return r.URI }

// IsImage reports whether the declared MIME type is an image type.
func (r BlobResourceContents) IsImage() bool {
	return r.MIMEType != nil && strings.HasPrefix(*r.MIMEType, "image/")
}

// String returns a pointer to s. Handy for optional MIME types.
func String(s string) *string { return &s }

// Bool returns a pointer to b.
func Bool(b bool) *bool { return &b }

package dispatch

import (
	"context"
	"time"

	"github.com/hupe1980/mcpcall/core"
	"github.com/hupe1980/mcpcall/logging"
)

// ReadResourceTimeout bounds the fetch of a resource referenced by a tool result.
const ReadResourceTimeout = 10 * time.Second

// ResourceInliner replaces an embedded image blob reference in a tool result
// with the fetched image content. Every failure degrades to "no enrichment".
type ResourceInliner struct {
	logger  logging.Logger
	timeout time.Duration
}

// NewResourceInliner creates an inliner logging through logger (nil = no-op).
func NewResourceInliner(logger logging.Logger) *ResourceInliner {
	if logger == nil {
		logger = logging.NoOpLogger{}
	}
	return &ResourceInliner{logger: logger, timeout: ReadResourceTimeout}
}

// Inline returns a replacement result whose single item is the fetched image,
// or (nil, false) when the result is not eligible or the fetch fails.
// Only the first content item of result and of the fetch response are considered.
func (ri *ResourceInliner) Inline(
	ctx context.Context,
	reader core.ResourceReader,
	server string,
	result *core.ToolCallResult,
) (*core.ToolCallResult, bool) {
	embedded, blob, ok := imageBlobReference(result)
	if !ok {
		return nil, false
	}

	fetchCtx, cancel := context.WithTimeout(ctx, ri.timeout)
	defer cancel()

	timeout := ri.timeout
	start := time.Now()
	read, err := reader.ReadResource(fetchCtx, server, blob.URI, &timeout)
	if err == nil && fetchCtx.Err() != nil {
		err = fetchCtx.Err()
	}
	if err != nil {
		ri.logger.Warn(
			"mcp.resource.read.failed",
			"server", server,
			"uri", blob.URI,
			"duration_ms", time.Since(start).Milliseconds(),
			"error", err.Error(),
		)
		return nil, false
	}
	if read == nil || len(read.Contents) == 0 {
		return nil, false
	}

	fetched, ok := read.Contents[0].(core.BlobResourceContents)
	if !ok {
		return nil, false
	}

	mimeType := *blob.MIMEType
	if fetched.MIMEType != nil {
		mimeType = *fetched.MIMEType
	}

	ri.logger.Debug(
		"mcp.resource.inlined",
		"server", server,
		"uri", blob.URI,
		"mime_type", mimeType,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	replacement := &core.ToolCallResult{
		Content: []core.Content{core.ImageContent{
			Data:        fetched.Blob,
			MIMEType:    mimeType,
			Annotations: embedded.Annotations.Clone(),
		}},
	}
	if result.IsError != nil {
		replacement.IsError = core.Bool(*result.IsError)
	}
	return replacement, true
}

// imageBlobReference applies the eligibility predicate: the first item must be
// an embedded blob resource whose declared MIME type starts with "image/".
func imageBlobReference(result *core.ToolCallResult) (core.EmbeddedResource, core.BlobResourceContents, bool) {
	if result == nil || len(result.Content) == 0 {
		return core.EmbeddedResource{}, core.BlobResourceContents{}, false
	}
	embedded, ok := result.Content[0].(core.EmbeddedResource)
	if !ok {
		return core.EmbeddedResource{}, core.BlobResourceContents{}, false
	}
	blob, ok := embedded.Resource.(core.BlobResourceContents)
	if !ok || !blob.IsImage() {
		return core.EmbeddedResource{}, core.BlobResourceContents{}, false
	}
	return embedded, blob, true
}

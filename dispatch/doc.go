// Package dispatch forwards a single MCP tool call through a core.Session and
// reports its lifecycle.
//
// A Dispatcher parses the raw argument string, emits a ToolCallBeginEvent,
// invokes the tool, optionally inlines an image resource referenced by the
// result (ResourceInliner) and finally emits a ToolCallEndEvent. Each call is
// a strictly sequential chain on the caller's goroutine; cancelling the
// context aborts whatever step is in flight.
//
// Enrichment is visible only in the End event. The ResponseItem returned to
// the calling transcript always carries the original tool result:
//
//	d := dispatch.New()
//	item := d.Dispatch(ctx, sess, subID, callID, "files", "read_image", `{"path":"a.png"}`, nil)
package dispatch

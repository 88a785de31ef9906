// Package logging provides a minimal logging interface and adapters for mcpcall.
//
// The Logger interface defines the standard logging methods (Debug, Info, Warn, Error)
// that the dispatcher, session and MCP manager use for observability. This package includes:
//
//   - Logger interface for dependency injection
//   - ToolLogger over Go's structured logging with contextual cloning
//   - LogToolCall emitting the per-call execution line
//   - NoOpLogger for silent operation (testing, minimal setups)
//
// Usage:
//
//	logger := logging.NewSlogLogger(logging.LogLevelInfo, "json", false)
//	d := dispatch.New(func(o *dispatch.Options) { o.Logger = logger })
package logging
